package config

import "flag"

var (
	flagConfig        = flag.String("config", "", "Path to YAML config file.")
	flagWide          = flag.Int("wide", 0, "Number of cabinets in the horizontal direction.")
	flagHigh          = flag.Int("high", 0, "Number of cabinets in the vertical direction.")
	flagTilt          = flag.Float64("tilt", 0, "Tilt angle between cabinet columns in degrees.")
	flagTiltSet       = false
	flagCabinetWidth  = flag.Float64("cabinet-width", 0, "Width of each cabinet in millimetres.")
	flagCabinetHeight = flag.Float64("cabinet-height", 0, "Height of each cabinet in millimetres.")
	flagTileWidth     = flag.Int("tile-width", 0, "Pixel width of each cabinet tile.")
	flagTileHeight    = flag.Int("tile-height", 0, "Pixel height of each cabinet tile.")
	flagOBJ           = flag.String("obj", "", "Output OBJ mesh path.")
	flagSTL           = flag.String("stl", "", "Output STL mesh path.")
	flagPreview       = flag.String("preview", "", "Output preview PNG path.")
	flagPattern       = flag.String("pattern", "", "Output addressing test image PNG path.")
	flagQuiet         = flag.Bool("quiet", false, "Suppress the summary block on stdout.")
	flagDebug         = flag.Bool("debug", false, "Enable debug logging.")
	flagLogFile       = flag.String("log-file", "", "Write logs to this file as well as the console.")
)

// ParseFlags parses command-line flags. Call early in main().
func ParseFlags() {
	flag.Parse()
	// Zero is a meaningful tilt, so overriding it needs an explicit check
	// rather than the nonzero convention the other flags use.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "tilt" {
			flagTiltSet = true
		}
	})
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides onto cfg.
func applyFlags(cfg *Config) {
	if *flagWide > 0 {
		cfg.Wall.CabinetsWide = *flagWide
	}
	if *flagHigh > 0 {
		cfg.Wall.CabinetsHigh = *flagHigh
	}
	if flagTiltSet {
		cfg.Wall.TiltAngle = *flagTilt
	}
	if *flagCabinetWidth > 0 {
		cfg.Wall.CabinetWidth = *flagCabinetWidth
	}
	if *flagCabinetHeight > 0 {
		cfg.Wall.CabinetHeight = *flagCabinetHeight
	}
	if *flagTileWidth > 0 {
		cfg.Wall.TileWidth = *flagTileWidth
	}
	if *flagTileHeight > 0 {
		cfg.Wall.TileHeight = *flagTileHeight
	}
	if *flagOBJ != "" {
		cfg.Output.OBJ = *flagOBJ
	}
	if *flagSTL != "" {
		cfg.Output.STL = *flagSTL
	}
	if *flagPreview != "" {
		cfg.Output.Preview = *flagPreview
	}
	if *flagPattern != "" {
		cfg.Output.Pattern = *flagPattern
	}
	if *flagQuiet {
		cfg.Output.Quiet = true
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
