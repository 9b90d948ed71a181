// Package config loads game settings from an optional .env file and MAZE_*
// environment variables, with sensible built-in defaults.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the game settings.
type Config struct {
	WindowWidth  int
	WindowHeight int

	// TilesPerAxis is the number of tiles along the bigger screen axis.
	TilesPerAxis int

	// Seed drives maze generation; 0 means seed from the wall clock.
	Seed int64

	// BraidMin/BraidMax bound the random fraction of internal walls removed
	// after carving, opening loops in the perfect maze.
	BraidMin float64
	BraidMax float64
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 800,
		TilesPerAxis: 30,
		Seed:         0,
		BraidMin:     0.01,
		BraidMax:     0.05,
	}
}

// Load reads an optional .env file and applies MAZE_* environment overrides
// over the defaults. A missing .env is not an error; malformed values are
// ignored.
func Load() *Config {
	// Populates the environment from .env if present.
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("MAZE_WINDOW_WIDTH"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.WindowWidth = val
		}
	}
	if v := os.Getenv("MAZE_WINDOW_HEIGHT"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.WindowHeight = val
		}
	}
	if v := os.Getenv("MAZE_TILES_PER_AXIS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 1 {
			cfg.TilesPerAxis = val
		}
	}
	if v := os.Getenv("MAZE_SEED"); v != "" {
		if val, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = val
		}
	}
	if v := os.Getenv("MAZE_BRAID_MIN"); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil && val >= 0 && val <= 1 {
			cfg.BraidMin = val
		}
	}
	if v := os.Getenv("MAZE_BRAID_MAX"); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil && val >= 0 && val <= 1 {
			cfg.BraidMax = val
		}
	}
	if cfg.BraidMax < cfg.BraidMin {
		cfg.BraidMax = cfg.BraidMin
	}

	return cfg
}
