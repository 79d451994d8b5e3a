//go:build linux

package alloc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mmap backs regions with anonymous private mappings. Growth goes through
// mremap, which may move the mapping but never loses its content.
type Mmap struct{}

// NewMmap returns an allocator backed by anonymous mappings.
func NewMmap() (*Mmap, error) {
	return &Mmap{}, nil
}

func (m *Mmap) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmap: invalid region size %d: %w", size, ErrAllocation)
	}
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap: map %d bytes: %v: %w", size, err, ErrAllocation)
	}
	return buf, nil
}

func (m *Mmap) Realloc(buf []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmap: invalid region size %d: %w", size, ErrAllocation)
	}
	next, err := unix.Mremap(buf[:cap(buf)], size, unix.MREMAP_MAYMOVE)
	if err != nil {
		return nil, fmt.Errorf("mmap: remap %d -> %d bytes: %v: %w", cap(buf), size, err, ErrAllocation)
	}
	return next, nil
}

func (m *Mmap) Free(buf []byte) error {
	if cap(buf) == 0 {
		return nil
	}
	if err := unix.Munmap(buf[:cap(buf)]); err != nil {
		return fmt.Errorf("mmap: unmap %d bytes: %w", cap(buf), err)
	}
	return nil
}
