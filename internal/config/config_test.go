package config

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MAZE_WINDOW_WIDTH",
		"MAZE_WINDOW_HEIGHT",
		"MAZE_TILES_PER_AXIS",
		"MAZE_SEED",
		"MAZE_BRAID_MIN",
		"MAZE_BRAID_MAX",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.WindowWidth != 1280 || cfg.WindowHeight != 800 {
		t.Errorf("Expected 1280x800 window, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.TilesPerAxis != 30 {
		t.Errorf("Expected 30 tiles per axis, got %d", cfg.TilesPerAxis)
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected seed 0 (wall clock), got %d", cfg.Seed)
	}
	if cfg.BraidMin != 0.01 || cfg.BraidMax != 0.05 {
		t.Errorf("Expected braid range [0.01, 0.05], got [%v, %v]", cfg.BraidMin, cfg.BraidMax)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_WINDOW_WIDTH", "640")
	t.Setenv("MAZE_WINDOW_HEIGHT", "480")
	t.Setenv("MAZE_TILES_PER_AXIS", "20")
	t.Setenv("MAZE_SEED", "12345")
	t.Setenv("MAZE_BRAID_MIN", "0.02")
	t.Setenv("MAZE_BRAID_MAX", "0.1")

	cfg := Load()
	if cfg.WindowWidth != 640 || cfg.WindowHeight != 480 {
		t.Errorf("Expected 640x480 window, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.TilesPerAxis != 20 {
		t.Errorf("Expected 20 tiles per axis, got %d", cfg.TilesPerAxis)
	}
	if cfg.Seed != 12345 {
		t.Errorf("Expected seed 12345, got %d", cfg.Seed)
	}
	if cfg.BraidMin != 0.02 || cfg.BraidMax != 0.1 {
		t.Errorf("Expected braid range [0.02, 0.1], got [%v, %v]", cfg.BraidMin, cfg.BraidMax)
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_WINDOW_WIDTH", "banana")
	t.Setenv("MAZE_TILES_PER_AXIS", "1")
	t.Setenv("MAZE_BRAID_MIN", "1.5")

	cfg := Load()
	if cfg.WindowWidth != 1280 {
		t.Errorf("Expected malformed width to keep the default, got %d", cfg.WindowWidth)
	}
	if cfg.TilesPerAxis != 30 {
		t.Errorf("Expected degenerate tile count rejected, got %d", cfg.TilesPerAxis)
	}
	if cfg.BraidMin != 0.01 {
		t.Errorf("Expected out-of-range braid fraction rejected, got %v", cfg.BraidMin)
	}
}

func TestLoadNormalizesBraidRange(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_BRAID_MIN", "0.2")
	t.Setenv("MAZE_BRAID_MAX", "0.1")

	cfg := Load()
	if cfg.BraidMax < cfg.BraidMin {
		t.Errorf("Expected braid max raised to min, got [%v, %v]", cfg.BraidMin, cfg.BraidMax)
	}
}
