package transform

import (
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformsRoundTrip(t *testing.T) {
	data := []byte(strings.Repeat("assembled output line\n", 500))
	zs, err := NewZstdTransform(zstd.SpeedFastest)
	require.NoError(t, err)

	testCases := []struct {
		name      string
		transform Transform
	}{
		{name: "noop", transform: NewNoOpTransform()},
		{name: "gzip", transform: NewGzipTransform()},
		{name: "zstd", transform: zs},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := tc.transform.Apply(data)
			require.NoError(t, err)
			if tc.name != "noop" {
				assert.Less(t, len(encoded), len(data))
			}

			decoded, err := tc.transform.Reverse(encoded)
			require.NoError(t, err)
			assert.Equal(t, data, decoded)
		})
	}
}

func TestPipelineByName(t *testing.T) {
	p, err := PipelineByName("zstd", "gzip")
	require.NoError(t, err)

	data := []byte(strings.Repeat("abc", 1000))
	encoded, err := p.Encode(data)
	require.NoError(t, err)
	decoded, err := p.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)

	_, err = PipelineByName("rot13")
	assert.Error(t, err)

	_, err = NewPipeline()
	assert.Error(t, err)
}

func TestPipelineDecodeGarbage(t *testing.T) {
	p, err := PipelineByName("gzip")
	require.NoError(t, err)

	_, err = p.Decode([]byte("not gzip"))
	assert.Error(t, err)
}
