package strbuilder

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	b := newBuilder(t, WithInitialCapacity(4))
	require.NoError(t, b.AppendString("abcdef"))

	s := b.Stats()
	assert.Equal(t, Stats{Len: 6, Cap: 8, Reallocs: 1}, s)

	var out bytes.Buffer
	l := zerolog.New(&out)
	l.Info().Object("stats", s).Send()
	assert.JSONEq(t, `{"level":"info","stats":{"len":6,"cap":8,"reallocs":1}}`, out.String())
}
