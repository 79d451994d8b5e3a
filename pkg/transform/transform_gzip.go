package transform

import (
	"bytes"
	"compress/gzip"
	"fmt"
)

type gzipTransform struct{}

func NewGzipTransform() Transform { return &gzipTransform{} }

func (g *gzipTransform) Apply(data []byte) ([]byte, error) {
	out, err := outputBuilder(len(data))
	if err != nil {
		return nil, fmt.Errorf("gzip apply (compress): %w", err)
	}
	gz := gzip.NewWriter(out)
	if _, err := gz.Write(data); err != nil {
		_ = gz.Close()
		return nil, fmt.Errorf("gzip apply (compress): failed to write data: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("gzip apply (compress): failed to close writer: %w", err)
	}
	return out.Detach(), nil
}

func (g *gzipTransform) Reverse(data []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip reverse (decompress): failed to create reader: %w", err)
	}
	defer gz.Close()
	out, err := outputBuilder(len(data) * 2)
	if err != nil {
		return nil, fmt.Errorf("gzip reverse (decompress): %w", err)
	}
	if _, err := out.ReadFrom(gz); err != nil {
		return nil, fmt.Errorf("gzip reverse (decompress): failed to read data: %w", err)
	}
	return out.Detach(), nil
}
