package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Wall.CabinetsWide != 36 {
		t.Errorf("expected 36 cabinets wide, got %d", cfg.Wall.CabinetsWide)
	}
	if cfg.Wall.CabinetsHigh != 8 {
		t.Errorf("expected 8 cabinets high, got %d", cfg.Wall.CabinetsHigh)
	}
	if cfg.Wall.TiltAngle != 5 {
		t.Errorf("expected 5 degree tilt, got %v", cfg.Wall.TiltAngle)
	}
	if cfg.Wall.CabinetWidth != 500 || cfg.Wall.CabinetHeight != 500 {
		t.Errorf("expected 500mm cabinets, got %vx%v", cfg.Wall.CabinetWidth, cfg.Wall.CabinetHeight)
	}
	if cfg.Output.OBJ != "wall.obj" {
		t.Errorf("expected default OBJ output wall.obj, got %q", cfg.Output.OBJ)
	}
	if cfg.Output.STL != "" || cfg.Output.Preview != "" || cfg.Output.Pattern != "" {
		t.Error("expected optional outputs to default off")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected info log level, got %q", cfg.Logging.Level)
	}
	if err := cfg.Params().Validate(); err != nil {
		t.Errorf("default config should produce valid params: %v", err)
	}
}

func TestLoadFromFileMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledwall.yaml")
	data := []byte("wall:\n  cabinets_wide: 12\n  tilt_angle: 2.5\noutput:\n  stl: wall.stl\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatal(err)
	}
	if cfg.Wall.CabinetsWide != 12 {
		t.Errorf("expected file to override cabinets wide to 12, got %d", cfg.Wall.CabinetsWide)
	}
	if cfg.Wall.TiltAngle != 2.5 {
		t.Errorf("expected file to override tilt to 2.5, got %v", cfg.Wall.TiltAngle)
	}
	if cfg.Output.STL != "wall.stl" {
		t.Errorf("expected file to set STL output, got %q", cfg.Output.STL)
	}
	// Untouched fields keep their defaults.
	if cfg.Wall.CabinetsHigh != 8 {
		t.Errorf("expected cabinets high to keep default 8, got %d", cfg.Wall.CabinetsHigh)
	}
	if cfg.Output.OBJ != "wall.obj" {
		t.Errorf("expected OBJ output to keep default, got %q", cfg.Output.OBJ)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestParamsConversion(t *testing.T) {
	cfg := Default()
	cfg.Wall.CabinetsWide = 3
	cfg.Wall.TiltAngle = -4

	p := cfg.Params()
	if p.CabinetsWide != 3 {
		t.Errorf("expected 3 cabinets wide, got %d", p.CabinetsWide)
	}
	if p.TiltAngle != -4 {
		t.Errorf("expected -4 degree tilt, got %v", p.TiltAngle)
	}
	if p.TileWidth != cfg.Wall.TileWidth || p.TileHeight != cfg.Wall.TileHeight {
		t.Error("tile resolution not carried into params")
	}
}
