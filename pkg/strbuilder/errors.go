package strbuilder

import (
	"errors"
	"fmt"

	"strbuilder-go/pkg/alloc"
)

var (
	// ErrAllocation is reported when storage cannot be created or grown.
	// It is the same value as alloc.ErrAllocation.
	ErrAllocation = alloc.ErrAllocation

	// ErrSpent is returned by operations on a builder whose storage was
	// released or detached.
	ErrSpent = errors.New("strbuilder: builder storage released or detached")

	// ErrShortSource is returned by AppendBytesN when the count does not fit
	// the source slice.
	ErrShortSource = errors.New("strbuilder: count exceeds source length")

	// ErrInvalidPolicy is returned by New for an unusable Policy.
	ErrInvalidPolicy = errors.New("strbuilder: invalid policy")
)

// allocError makes sure err matches ErrAllocation, whatever the allocator
// returned.
func allocError(op string, err error) error {
	if errors.Is(err, ErrAllocation) {
		return fmt.Errorf("strbuilder: %s: %w", op, err)
	}
	return fmt.Errorf("strbuilder: %s: %w: %w", op, ErrAllocation, err)
}
