// Package strbuilder implements a growable byte buffer for assembling
// strings incrementally.
//
// A Builder always keeps one zero byte after its content, so the written
// bytes can be handed to code expecting a NUL terminated string. Storage
// grows by repeated multiplication of the capacity (doubling by default) and
// is obtained from a pluggable alloc.Allocator. A failed growth leaves the
// builder exactly as it was.
//
// A Builder must not be used from more than one goroutine at a time.
package strbuilder

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"strbuilder-go/pkg/alloc"
	"strbuilder-go/pkg/log"
)

// Builder is a growable byte buffer.
type Builder struct {
	buf       []byte
	n         int
	reallocs  int
	policy    Policy
	allocator alloc.Allocator
	spent     bool
}

// New creates a zero-filled builder. Without options the builder has
// DefaultInitialCapacity bytes of heap storage and doubles on growth.
func New(opts ...Option) (*Builder, error) {
	o := options{policy: DefaultPolicy()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.allocator == nil {
		o.allocator = alloc.NewHeap()
	}
	if err := o.policy.Validate(); err != nil {
		return nil, err
	}

	size := o.policy.initialCapacity()
	buf, err := o.allocator.Alloc(size)
	if err != nil {
		log.Warn().Err(err).Int("capacity", size).Msg("builder storage allocation failed")
		return nil, allocError(fmt.Sprintf("create %d bytes", size), err)
	}
	clear(buf)

	return &Builder{
		buf:       buf,
		policy:    o.policy,
		allocator: o.allocator,
	}, nil
}

// NewWithSize creates a builder of at least size bytes (and at least one).
func NewWithSize(size int) (*Builder, error) {
	return New(WithInitialCapacity(size))
}

// Len returns the number of bytes written.
func (b *Builder) Len() int { return b.n }

// Cap returns the size of the storage region, terminator slot included.
func (b *Builder) Cap() int { return len(b.buf) }

// Reallocs returns how many times the storage has been grown.
func (b *Builder) Reallocs() int { return b.reallocs }

// Policy returns the sizing policy the builder was created with.
func (b *Builder) Policy() Policy { return b.policy }

// Reset empties the builder and zeroes the whole storage. Capacity is kept.
func (b *Builder) Reset() {
	b.n = 0
	clear(b.buf)
}

// EnsureCapacity grows the storage to at least need bytes, multiplying the
// capacity by the growth factor until it fits, with a single reallocation.
func (b *Builder) EnsureCapacity(need int) error {
	if b.spent {
		return ErrSpent
	}
	if len(b.buf) >= need {
		return nil
	}

	limit := b.limit()
	if need > limit {
		return fmt.Errorf("strbuilder: need %d bytes, limit is %d: %w", need, limit, ErrAllocation)
	}
	size := len(b.buf)
	for size < need {
		size = b.step(size, limit)
	}
	return b.resize(size)
}

// DoubleCapacity performs one growth step, multiplying the capacity by the
// growth factor (2 unless configured otherwise).
func (b *Builder) DoubleCapacity() error {
	if b.spent {
		return ErrSpent
	}
	limit := b.limit()
	if len(b.buf) >= limit {
		return fmt.Errorf("strbuilder: capacity %d is at limit: %w", len(b.buf), ErrAllocation)
	}
	return b.resize(b.step(len(b.buf), limit))
}

func (b *Builder) limit() int {
	if b.policy.MaxCapacity > 0 {
		return b.policy.MaxCapacity
	}
	return math.MaxInt
}

// step returns the next capacity after size, clamped to limit.
func (b *Builder) step(size, limit int) int {
	if size > limit/b.policy.GrowthFactor {
		return limit
	}
	return size * b.policy.GrowthFactor
}

func (b *Builder) resize(size int) error {
	old := len(b.buf)
	next, err := b.allocator.Realloc(b.buf, size)
	if err != nil {
		log.Warn().Err(err).Int("capacity", old).Int("requested", size).Msg("builder growth failed")
		return allocError(fmt.Sprintf("grow %d -> %d", old, size), err)
	}
	clear(next[b.n:])
	b.buf = next
	b.reallocs++
	log.Debug().Int("from", old).Int("to", size).Int("reallocs", b.reallocs).Msg("builder storage grown")
	return nil
}

// reserve makes room for n more bytes plus the terminator.
func (b *Builder) reserve(n int) error {
	if b.spent {
		return ErrSpent
	}
	if len(b.buf)-b.n-1 >= n {
		return nil
	}
	if n > math.MaxInt-b.n-1 {
		return fmt.Errorf("strbuilder: appending %d bytes overflows: %w", n, ErrAllocation)
	}
	return b.EnsureCapacity(b.n + n + 1)
}

// AppendByte appends c, growing by one step when only the terminator slot
// is left.
func (b *Builder) AppendByte(c byte) error {
	if b.spent {
		return ErrSpent
	}
	if b.n+1 >= len(b.buf) {
		if err := b.DoubleCapacity(); err != nil {
			return err
		}
	}
	b.buf[b.n] = c
	b.n++
	return nil
}

// AppendBytes appends all of src.
func (b *Builder) AppendBytes(src []byte) error {
	if err := b.reserve(len(src)); err != nil {
		return err
	}
	b.n += copy(b.buf[b.n:], src)
	return nil
}

// AppendBytesN appends the first n bytes of src.
func (b *Builder) AppendBytesN(src []byte, n int) error {
	if n < 0 || n > len(src) {
		return fmt.Errorf("append %d of %d bytes: %w", n, len(src), ErrShortSource)
	}
	return b.AppendBytes(src[:n])
}

// AppendString appends s up to, not including, its first NUL byte.
func (b *Builder) AppendString(s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	if err := b.reserve(len(s)); err != nil {
		return err
	}
	b.n += copy(b.buf[b.n:], s)
	return nil
}

// AppendCString appends src up to, not including, its first NUL byte.
func (b *Builder) AppendCString(src []byte) error {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	return b.AppendBytes(src)
}

// View returns the written bytes backed by the builder's own storage. The
// terminator is at View()[:Len()+1][Len()]. The slice is invalidated by any
// later append, Release or Detach.
func (b *Builder) View() []byte {
	if b.spent {
		return nil
	}
	return b.buf[:b.n:b.n+1]
}

// Owned returns a copy of the content in a fresh region of Len()+1 bytes
// ending with a terminator. It reports false, and allocates nothing, when
// the builder is empty.
func (b *Builder) Owned() ([]byte, bool) {
	if b.spent || b.n == 0 {
		return nil, false
	}
	out := make([]byte, b.n+1)
	copy(out, b.buf[:b.n])
	return out[:b.n], true
}

// String returns the content as a string.
func (b *Builder) String() string {
	if b.spent {
		return ""
	}
	return string(b.buf[:b.n])
}

// Release frees the storage through the allocator. The builder is spent
// afterwards; releasing a spent builder is a no-op.
func (b *Builder) Release() error {
	if b.spent {
		return nil
	}
	buf := b.buf
	b.buf, b.n, b.spent = nil, 0, true
	if err := b.allocator.Free(buf); err != nil {
		return fmt.Errorf("strbuilder: release storage: %w", err)
	}
	return nil
}

// Detach hands the storage over to the caller and leaves the builder spent.
// The returned slice holds the content and keeps the full storage capacity,
// so it can later be given back to the same allocator's Free.
func (b *Builder) Detach() []byte {
	if b.spent {
		return nil
	}
	buf := b.buf[:b.n]
	b.buf, b.n, b.spent = nil, 0, true
	return buf
}

// Spent reports whether Release or Detach has been called.
func (b *Builder) Spent() bool { return b.spent }
