//go:build linux

package alloc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmap(t *testing.T) {
	m, err := NewMmap()
	require.NoError(t, err)

	buf, err := m.Alloc(100)
	require.NoError(t, err)
	assert.Len(t, buf, 100)
	assert.Equal(t, make([]byte, 100), buf)
	copy(buf, "mapped content")

	grown, err := m.Realloc(buf[:14], 1<<20)
	require.NoError(t, err)
	assert.Len(t, grown, 1<<20)
	assert.True(t, bytes.HasPrefix(grown, []byte("mapped content")))

	require.NoError(t, m.Free(grown[:3]))

	_, err = m.Alloc(0)
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestByNameMmap(t *testing.T) {
	a, err := ByName("mmap")
	require.NoError(t, err)
	assert.IsType(t, &Mmap{}, a)
}
