package strbuilder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strbuilder-go/pkg/alloc"
)

func TestBuilderOnLimitedAllocator(t *testing.T) {
	l := alloc.NewLimited(alloc.NewHeap(), 64)
	b := newBuilder(t, WithInitialCapacity(16), WithAllocator(l))

	require.NoError(t, b.AppendString(strings.Repeat("a", 40)))
	assert.Equal(t, 64, b.Cap())

	err := b.AppendString(strings.Repeat("b", 40))
	assert.ErrorIs(t, err, ErrAllocation)
	assert.Equal(t, strings.Repeat("a", 40), b.String())

	require.NoError(t, b.Release())
	assert.Equal(t, 0, l.InUse())
}
