// Package alloc provides the storage backends a strbuilder.Builder draws its
// byte region from. Every backend reports refusal with ErrAllocation instead
// of panicking, so callers can keep a live buffer usable after a failed grow.
package alloc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAllocation is wrapped by every error an Allocator returns when it
// cannot satisfy a request.
var ErrAllocation = errors.New("alloc: allocation failed")

// Allocator hands out and reclaims contiguous byte regions.
//
// Realloc returns a region of exactly size bytes whose prefix holds the
// content of buf. If it fails, buf must still be valid and unchanged.
// Regions passed to Realloc and Free may be resliced to a shorter length,
// but must keep the capacity they were handed out with.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Realloc(buf []byte, size int) ([]byte, error)
	Free(buf []byte) error
}

// Heap allocates from the Go heap. A positive Limit caps the size of any
// single region.
type Heap struct {
	Limit int
}

// NewHeap returns an unbounded heap allocator.
func NewHeap() *Heap {
	return &Heap{}
}

func (h *Heap) check(size int) error {
	if size <= 0 {
		return fmt.Errorf("heap: invalid region size %d: %w", size, ErrAllocation)
	}
	if h.Limit > 0 && size > h.Limit {
		return fmt.Errorf("heap: region size %d exceeds limit %d: %w", size, h.Limit, ErrAllocation)
	}
	return nil
}

func (h *Heap) Alloc(size int) ([]byte, error) {
	if err := h.check(size); err != nil {
		return nil, err
	}
	return make([]byte, size), nil
}

func (h *Heap) Realloc(buf []byte, size int) ([]byte, error) {
	if err := h.check(size); err != nil {
		return nil, err
	}
	next := make([]byte, size)
	copy(next, buf[:cap(buf)])
	return next, nil
}

// Free is a no-op; the garbage collector reclaims heap regions.
func (h *Heap) Free(buf []byte) error {
	return nil
}

// ByName resolves an allocator from its configuration name.
func ByName(name string) (Allocator, error) {
	switch strings.ToLower(name) {
	case "", "heap":
		return NewHeap(), nil
	case "mmap":
		return NewMmap()
	default:
		return nil, fmt.Errorf("unknown allocator: %s", name)
	}
}
