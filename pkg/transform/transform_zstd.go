package transform

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

type zstdTransform struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewZstdTransform creates a Zstandard transform. Provide a level like
// zstd.SpeedFastest or zstd.SpeedBetterCompression.
func NewZstdTransform(level zstd.EncoderLevel) (Transform, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, fmt.Errorf("zstd: failed to initialize encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: failed to initialize decoder: %w", err)
	}
	return &zstdTransform{encoder: enc, decoder: dec}, nil
}

// Apply compresses data. The encoder is reused across calls.
func (s *zstdTransform) Apply(data []byte) ([]byte, error) {
	out, err := outputBuilder(len(data))
	if err != nil {
		return nil, fmt.Errorf("zstd apply (compress): %w", err)
	}
	s.encoder.Reset(out)
	if _, err := s.encoder.Write(data); err != nil {
		_ = s.encoder.Close()
		return nil, fmt.Errorf("zstd apply (compress): failed to write data: %w", err)
	}
	// Close flushes the last block.
	if err := s.encoder.Close(); err != nil {
		return nil, fmt.Errorf("zstd apply (compress): failed to close writer: %w", err)
	}
	return out.Detach(), nil
}

// Reverse decompresses data.
func (s *zstdTransform) Reverse(data []byte) ([]byte, error) {
	if err := s.decoder.Reset(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("zstd reverse (decompress): failed to reset decoder: %w", err)
	}
	out, err := outputBuilder(len(data) * 2)
	if err != nil {
		return nil, fmt.Errorf("zstd reverse (decompress): %w", err)
	}
	if _, err := out.ReadFrom(s.decoder); err != nil {
		return nil, fmt.Errorf("zstd reverse (decompress): failed to read data: %w", err)
	}
	return out.Detach(), nil
}
