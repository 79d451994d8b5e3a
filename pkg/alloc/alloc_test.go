package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap(t *testing.T) {
	h := NewHeap()

	buf, err := h.Alloc(4)
	require.NoError(t, err)
	copy(buf, "abcd")

	grown, err := h.Realloc(buf, 10)
	require.NoError(t, err)
	assert.Len(t, grown, 10)
	assert.Equal(t, []byte("abcd\x00\x00\x00\x00\x00\x00"), grown)
	assert.NoError(t, h.Free(grown))

	_, err = h.Alloc(0)
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestHeapLimit(t *testing.T) {
	h := &Heap{Limit: 8}

	buf, err := h.Alloc(8)
	require.NoError(t, err)

	_, err = h.Realloc(buf, 16)
	assert.ErrorIs(t, err, ErrAllocation)
	_, err = h.Alloc(9)
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestLimited(t *testing.T) {
	l := NewLimited(NewHeap(), 100)

	a, err := l.Alloc(40)
	require.NoError(t, err)
	b, err := l.Alloc(40)
	require.NoError(t, err)
	assert.Equal(t, 80, l.InUse())

	_, err = l.Alloc(30)
	assert.ErrorIs(t, err, ErrAllocation)

	_, err = l.Realloc(a, 80)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.Equal(t, 80, l.InUse())

	a, err = l.Realloc(a, 60)
	require.NoError(t, err)
	assert.Equal(t, 100, l.InUse())

	require.NoError(t, l.Free(b))
	require.NoError(t, l.Free(a[:10]))
	assert.Equal(t, 0, l.InUse())
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "heap", "HEAP"} {
		a, err := ByName(name)
		require.NoError(t, err)
		assert.IsType(t, &Heap{}, a)
	}

	_, err := ByName("arena")
	assert.Error(t, err)
}
