package alloc

import "fmt"

// Limited enforces a byte budget over all regions currently handed out by
// the wrapped allocator.
type Limited struct {
	next   Allocator
	budget int
	inUse  int
}

// NewLimited wraps next so that the live regions never exceed budget bytes.
func NewLimited(next Allocator, budget int) *Limited {
	return &Limited{next: next, budget: budget}
}

// InUse reports the bytes currently accounted to live regions.
func (l *Limited) InUse() int {
	return l.inUse
}

func (l *Limited) Alloc(size int) ([]byte, error) {
	if l.inUse+size > l.budget {
		return nil, fmt.Errorf("limited: %d bytes requested with %d of %d in use: %w",
			size, l.inUse, l.budget, ErrAllocation)
	}
	buf, err := l.next.Alloc(size)
	if err != nil {
		return nil, err
	}
	l.inUse += size
	return buf, nil
}

func (l *Limited) Realloc(buf []byte, size int) ([]byte, error) {
	old := cap(buf)
	if l.inUse-old+size > l.budget {
		return nil, fmt.Errorf("limited: grow %d -> %d with %d of %d in use: %w",
			old, size, l.inUse, l.budget, ErrAllocation)
	}
	next, err := l.next.Realloc(buf, size)
	if err != nil {
		return nil, err
	}
	l.inUse += size - old
	return next, nil
}

func (l *Limited) Free(buf []byte) error {
	if err := l.next.Free(buf); err != nil {
		return err
	}
	l.inUse -= cap(buf)
	return nil
}
