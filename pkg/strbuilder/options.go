package strbuilder

import (
	"fmt"

	"strbuilder-go/pkg/alloc"
)

const (
	// DefaultInitialCapacity is the storage size of a builder created
	// without an explicit capacity.
	DefaultInitialCapacity = 1024

	// DefaultGrowthFactor multiplies the capacity on every growth step.
	DefaultGrowthFactor = 2
)

// Policy holds the sizing knobs of a Builder.
type Policy struct {
	// InitialCapacity is clamped to at least 1.
	InitialCapacity int
	// GrowthFactor must be 2 or more.
	GrowthFactor int
	// MaxCapacity bounds growth; 0 means unbounded.
	MaxCapacity int
}

// DefaultPolicy returns the 1024 byte, doubling policy.
func DefaultPolicy() Policy {
	return Policy{
		InitialCapacity: DefaultInitialCapacity,
		GrowthFactor:    DefaultGrowthFactor,
	}
}

func (p Policy) initialCapacity() int {
	return max(p.InitialCapacity, 1)
}

// Validate reports whether the policy can drive a Builder.
func (p Policy) Validate() error {
	if p.GrowthFactor < 2 {
		return fmt.Errorf("growth factor %d is below 2: %w", p.GrowthFactor, ErrInvalidPolicy)
	}
	if p.MaxCapacity < 0 {
		return fmt.Errorf("negative max capacity %d: %w", p.MaxCapacity, ErrInvalidPolicy)
	}
	if p.MaxCapacity > 0 && p.MaxCapacity < p.initialCapacity() {
		return fmt.Errorf("max capacity %d is below initial capacity %d: %w",
			p.MaxCapacity, p.initialCapacity(), ErrInvalidPolicy)
	}
	return nil
}

type options struct {
	policy    Policy
	allocator alloc.Allocator
}

// Option configures New.
type Option func(*options)

// WithInitialCapacity sets the starting storage size.
func WithInitialCapacity(n int) Option {
	return func(o *options) { o.policy.InitialCapacity = n }
}

// WithGrowthFactor sets the capacity multiplier used on growth.
func WithGrowthFactor(f int) Option {
	return func(o *options) { o.policy.GrowthFactor = f }
}

// WithMaxCapacity bounds the storage size; growth past it fails with
// ErrAllocation.
func WithMaxCapacity(n int) Option {
	return func(o *options) { o.policy.MaxCapacity = n }
}

// WithPolicy replaces the whole sizing policy.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithAllocator selects where storage comes from. The default is the Go heap.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) { o.allocator = a }
}
