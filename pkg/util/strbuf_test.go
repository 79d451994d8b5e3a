package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strbuilder-go/pkg/strbuilder"
)

func TestStrBuf(t *testing.T) {
	buf, err := NewStrBuf(strbuilder.WithInitialCapacity(4))
	require.NoError(t, err)

	require.NoError(t, buf.Write("Hello, "))
	require.NoError(t, buf.WriteLine("World!"))
	require.NoError(t, buf.Write("Number: 42"))

	assert.Equal(t, "Hello, World!\nNumber: 42", buf.String())
	assert.Equal(t, 24, buf.Len())
	assert.Positive(t, buf.Builder().Reallocs())

	buf.Reset()
	assert.Equal(t, "", buf.String())
}

func TestStrBufAllocationFailure(t *testing.T) {
	buf, err := NewStrBuf(strbuilder.WithInitialCapacity(4), strbuilder.WithMaxCapacity(8))
	require.NoError(t, err)

	require.NoError(t, buf.WriteLine("abcdef"))
	assert.ErrorIs(t, buf.WriteLine("g"), strbuilder.ErrAllocation)
	assert.Equal(t, "abcdef\n", buf.String())
}
