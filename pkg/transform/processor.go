package transform

import (
	"errors"
	"fmt"
)

// Pipeline applies transforms 0..N when encoding and N..0 when decoding.
type Pipeline struct {
	transforms []Transform
}

// NewPipeline requires at least one transform. Use NewNoOpTransform() for
// an explicitly empty pipeline.
func NewPipeline(transforms ...Transform) (*Pipeline, error) {
	if len(transforms) == 0 {
		return nil, errors.New("pipeline requires at least one transform; use NewNoOpTransform() for an empty pipeline")
	}
	s := make([]Transform, len(transforms))
	copy(s, transforms)
	return &Pipeline{transforms: s}, nil
}

// PipelineByName builds a pipeline from transform names.
func PipelineByName(names ...string) (*Pipeline, error) {
	if len(names) == 0 {
		names = []string{"noop"}
	}
	transforms := make([]Transform, 0, len(names))
	for _, name := range names {
		t, err := ByName(name)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	return NewPipeline(transforms...)
}

func (p *Pipeline) Encode(data []byte) ([]byte, error) {
	var err error
	for i, t := range p.transforms {
		data, err = t.Apply(data)
		if err != nil {
			return nil, fmt.Errorf("encode: transform %d (%T) Apply failed: %w", i, t, err)
		}
	}
	return data, nil
}

func (p *Pipeline) Decode(data []byte) ([]byte, error) {
	var err error
	for i := len(p.transforms) - 1; i >= 0; i-- {
		t := p.transforms[i]
		data, err = t.Reverse(data)
		if err != nil {
			return nil, fmt.Errorf("decode: transform %d (%T) Reverse failed: %w", i, t, err)
		}
	}
	return data, nil
}
