// Package config handles wall generator configuration loading and merging.
package config

import "github.com/ledsurface/ledwall"

// Config holds all generator settings.
type Config struct {
	Wall    WallConfig    `yaml:"wall"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// WallConfig mirrors ledwall.Params in YAML form.
type WallConfig struct {
	CabinetsWide  int     `yaml:"cabinets_wide"`
	CabinetsHigh  int     `yaml:"cabinets_high"`
	TiltAngle     float64 `yaml:"tilt_angle"`
	CabinetWidth  float64 `yaml:"cabinet_width_mm"`
	CabinetHeight float64 `yaml:"cabinet_height_mm"`
	TileWidth     int     `yaml:"tile_width_px"`
	TileHeight    int     `yaml:"tile_height_px"`
}

// OutputConfig names the files to write. Empty fields are skipped.
type OutputConfig struct {
	OBJ     string `yaml:"obj"`
	STL     string `yaml:"stl"`
	Preview string `yaml:"preview"`
	Pattern string `yaml:"pattern"`
	Quiet   bool   `yaml:"quiet"` // suppress the summary block on stdout
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config for a common 36×8 touring wall of 500mm cabinets
// at 5° tilt, writing only the OBJ.
func Default() *Config {
	return &Config{
		Wall: WallConfig{
			CabinetsWide:  36,
			CabinetsHigh:  8,
			TiltAngle:     5,
			CabinetWidth:  500,
			CabinetHeight: 500,
			TileWidth:     64,
			TileHeight:    64,
		},
		Output: OutputConfig{
			OBJ: "wall.obj",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Params converts the wall section to engine parameters. The result still
// needs ledwall.Params.Validate before use.
func (c *Config) Params() ledwall.Params {
	return ledwall.Params{
		CabinetsWide:  c.Wall.CabinetsWide,
		CabinetsHigh:  c.Wall.CabinetsHigh,
		TiltAngle:     c.Wall.TiltAngle,
		CabinetWidth:  c.Wall.CabinetWidth,
		CabinetHeight: c.Wall.CabinetHeight,
		TileWidth:     c.Wall.TileWidth,
		TileHeight:    c.Wall.TileHeight,
	}
}
