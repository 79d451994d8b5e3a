package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strbuilder-go/pkg/alloc"
	"strbuilder-go/pkg/strbuilder"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strbuilder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfigPolicy(t *testing.T) {
	p, err := DefaultConfig().Policy()
	require.NoError(t, err)
	assert.Equal(t, strbuilder.DefaultPolicy(), p)
	assert.Equal(t, zerolog.WarnLevel, DefaultConfig().Level())
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
initial_capacity: 4KiB
growth_factor: 3
max_capacity: 1MiB
allocator: heap
compression: zstd
log_level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "zstd", cfg.Compression)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())

	p, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, strbuilder.Policy{InitialCapacity: 4096, GrowthFactor: 3, MaxCapacity: 1 << 20}, p)

	opts, err := cfg.BuilderOptions()
	require.NoError(t, err)
	b, err := strbuilder.New(opts...)
	require.NoError(t, err)
	assert.Equal(t, 4096, b.Cap())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, "initial_capacity: 64\n")
	t.Setenv("STRBUILDER_GROWTH_FACTOR", "4")
	t.Setenv("STRBUILDER_ALLOCATOR", "nope")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.GrowthFactor)

	p, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, 64, p.InitialCapacity)

	_, err = cfg.BuilderOptions()
	assert.Error(t, err)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPolicyErrors(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
	}{
		{name: "bad size", cfg: Config{InitialCapacity: "lots", GrowthFactor: 2}},
		{name: "bad max", cfg: Config{InitialCapacity: "1", MaxCapacity: "-3", GrowthFactor: 2}},
		{name: "factor too small", cfg: Config{InitialCapacity: "1KiB", GrowthFactor: 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cfg.Policy()
			assert.Error(t, err)
		})
	}
}

func TestBuilderOptionsAllocator(t *testing.T) {
	cfg := DefaultConfig()
	opts, err := cfg.BuilderOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	_, err = alloc.ByName(cfg.Allocator)
	assert.NoError(t, err)
}
