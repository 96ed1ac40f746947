package renderer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 16*1024*1024, cfg.TextureCacheSize)
	assert.False(t, cfg.ReportSelfIntersections)
	assert.Equal(t, 3, cfg.MinimumPathLength)
	assert.Equal(t, 0, cfg.MaxPathLength)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.toml")
	content := `
width = 800
height = 600
paths_per_pixel = 16
minimum_path_length = 5
seed = 1234
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 16, cfg.PathsPerPixel)
	assert.Equal(t, 5, cfg.MinimumPathLength)
	assert.Equal(t, uint64(1234), cfg.Seed)

	// Unset fields keep their defaults.
	assert.Equal(t, 16*1024*1024, cfg.TextureCacheSize)
	assert.Equal(t, 0, cfg.MaxPathLength)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = = 3"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero paths", func(c *Config) { c.PathsPerPixel = 0 }},
		{"negative minimum path length", func(c *Config) { c.MinimumPathLength = -1 }},
		{"negative max path length", func(c *Config) { c.MaxPathLength = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigPathCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 20
	cfg.PathsPerPixel = 3

	assert.Equal(t, uint64(600), cfg.PathCount())
}
