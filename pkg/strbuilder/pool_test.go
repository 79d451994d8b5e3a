package strbuilder

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strbuilder-go/pkg/log"
)

func TestPoolGetReturnsEmptyBuilder(t *testing.T) {
	p := NewPool(WithInitialCapacity(32))

	b, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, 32, b.Cap())
	require.NoError(t, b.AppendString("dirty"))
	p.Put(b)

	again, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, 0, again.Len())
	assert.Equal(t, "", again.String())
}

func TestPoolDropsOversizedAndSpent(t *testing.T) {
	fa := &flakyAllocator{}
	p := NewPool(WithInitialCapacity(4), WithAllocator(fa))
	p.MaxCapacity = 8

	b, err := p.Get()
	require.NoError(t, err)
	require.NoError(t, b.AppendString("longer than eight bytes"))
	p.Put(b)
	assert.True(t, b.Spent())
	assert.Equal(t, 1, fa.frees)

	spent, err := p.Get()
	require.NoError(t, err)
	spent.Detach()
	p.Put(spent)
	p.Put(nil)
}

func TestPoolGetAllocationFailure(t *testing.T) {
	p := NewPool(WithAllocator(&flakyAllocator{failAlloc: true}))

	b, err := p.Get()
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestPoolLogsReleaseFailure(t *testing.T) {
	var out bytes.Buffer
	log.SetOutput(&out, zerolog.WarnLevel)
	defer log.Close()

	fa := &flakyAllocator{failFree: true}
	p := NewPool(WithInitialCapacity(4), WithAllocator(fa))
	p.MaxCapacity = 4

	b, err := p.Get()
	require.NoError(t, err)
	require.NoError(t, b.AppendString("grown"))
	p.Put(b)

	assert.True(t, b.Spent())
	assert.Equal(t, 1, fa.frees)
	assert.Contains(t, out.String(), `"level":"warn"`)
	assert.Contains(t, out.String(), "dropped pooled builder release failed")
	assert.Contains(t, out.String(), errOutOfMemory.Error())
	assert.Contains(t, out.String(), `"capacity":8`)
}
