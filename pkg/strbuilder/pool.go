package strbuilder

import (
	"sync"

	"strbuilder-go/pkg/log"
)

// Pool recycles builders to reduce allocation churn. Get and Put are safe
// for concurrent use; the builders themselves are not.
//
// Builders dropped by the pool are never released, so pools should only be
// used with allocators whose regions the garbage collector reclaims, such
// as the default heap allocator.
type Pool struct {
	pool sync.Pool
	opts []Option
	// MaxCapacity drops builders that grew past it instead of keeping them.
	// Zero keeps everything.
	MaxCapacity int
}

// NewPool creates a pool whose new builders are built with opts.
func NewPool(opts ...Option) *Pool {
	return &Pool{opts: opts}
}

// Get returns an empty builder, reusing a pooled one when available.
func (p *Pool) Get() (*Builder, error) {
	if v := p.pool.Get(); v != nil {
		b := v.(*Builder)
		b.Reset()
		return b, nil
	}
	return New(p.opts...)
}

// Put resets b and returns it to the pool.
func (p *Pool) Put(b *Builder) {
	if b == nil || b.spent {
		return
	}
	if p.MaxCapacity > 0 && b.Cap() > p.MaxCapacity {
		size := b.Cap()
		if err := b.Release(); err != nil {
			log.Warn().Err(err).Int("capacity", size).Msg("dropped pooled builder release failed")
		}
		return
	}
	b.Reset()
	p.pool.Put(b)
}
