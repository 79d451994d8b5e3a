//go:build !linux

package alloc

import (
	"errors"
	"fmt"
)

var errMmapUnsupported = errors.New("mmap allocator is only available on linux")

// Mmap is unavailable on this platform; NewMmap always fails.
type Mmap struct{}

func NewMmap() (*Mmap, error) {
	return nil, errMmapUnsupported
}

func (m *Mmap) Alloc(size int) ([]byte, error) {
	return nil, fmt.Errorf("%v: %w", errMmapUnsupported, ErrAllocation)
}

func (m *Mmap) Realloc(buf []byte, size int) ([]byte, error) {
	return nil, fmt.Errorf("%v: %w", errMmapUnsupported, ErrAllocation)
}

func (m *Mmap) Free(buf []byte) error {
	return errMmapUnsupported
}
