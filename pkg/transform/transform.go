// Package transform encodes assembled builder output, for example with
// compression, and decodes it back.
package transform

import (
	"fmt"
	"strings"

	"github.com/klauspost/compress/zstd"

	"strbuilder-go/pkg/strbuilder"
)

type Transform interface {
	Apply(data []byte) ([]byte, error)
	Reverse(data []byte) ([]byte, error)
}

type noOpTransform struct{}

func NewNoOpTransform() Transform                            { return &noOpTransform{} }
func (n *noOpTransform) Apply(data []byte) ([]byte, error)   { return data, nil }
func (n *noOpTransform) Reverse(data []byte) ([]byte, error) { return data, nil }

// ByName resolves "noop" (or ""), "gzip" and "zstd".
func ByName(name string) (Transform, error) {
	switch strings.ToLower(name) {
	case "", "noop", "none":
		return NewNoOpTransform(), nil
	case "gzip":
		return NewGzipTransform(), nil
	case "zstd":
		return NewZstdTransform(zstd.SpeedDefault)
	default:
		return nil, fmt.Errorf("unknown transform: %s", name)
	}
}

// outputBuilder sizes the destination of a transform after its input.
func outputBuilder(inputLen int) (*strbuilder.Builder, error) {
	return strbuilder.New(strbuilder.WithInitialCapacity(max(inputLen/2, 64)))
}
