package renderer

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-facing render settings
type Config struct {
	// Image dimensions in pixels
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Number of light paths to trace per pixel of the output image
	PathsPerPixel int `toml:"paths_per_pixel"`

	// Number of worker goroutines, zero means one per CPU
	Workers int `toml:"workers"`

	// Base seed for deterministic sample generation
	Seed uint64 `toml:"seed"`

	// Size in bytes of each worker's texture cache
	TextureCacheSize int `toml:"texture_cache_size"`

	// Log rays that re-hit the surface they originate from
	ReportSelfIntersections bool `toml:"report_self_intersections"`

	// Path length at which Russian Roulette termination starts
	MinimumPathLength int `toml:"minimum_path_length"`

	// Hard bound on path length, zero means unbounded
	MaxPathLength int `toml:"max_path_length"`
}

// DefaultConfig returns the default render settings
func DefaultConfig() Config {
	return Config{
		Width:                   400,
		Height:                  400,
		PathsPerPixel:           64,
		Workers:                 0,
		Seed:                    0,
		TextureCacheSize:        16 * 1024 * 1024,
		ReportSelfIntersections: false,
		MinimumPathLength:       3,
		MaxPathLength:           0,
	}
}

// LoadConfig reads a TOML config file, filling unset fields with
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the settings for consistency
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: image dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.PathsPerPixel <= 0 {
		return fmt.Errorf("config: paths_per_pixel must be positive, got %d", c.PathsPerPixel)
	}
	if c.MinimumPathLength < 0 {
		return fmt.Errorf("config: minimum_path_length must not be negative, got %d", c.MinimumPathLength)
	}
	if c.MaxPathLength < 0 {
		return fmt.Errorf("config: max_path_length must not be negative, got %d", c.MaxPathLength)
	}
	return nil
}

// PathCount returns the total number of light paths a render of this
// configuration traces.
func (c Config) PathCount() uint64 {
	return uint64(c.Width) * uint64(c.Height) * uint64(c.PathsPerPixel)
}
