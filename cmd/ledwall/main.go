// Command ledwall generates the 3D surface mesh of a curved LED cabinet
// wall as an OBJ file, with optional STL export, preview render and cabinet
// addressing test image.
package main

import (
	"fmt"
	"os"

	"github.com/ledsurface/ledwall"
	"github.com/ledsurface/ledwall/internal/config"
	"github.com/ledsurface/ledwall/internal/logger"
	"github.com/ledsurface/ledwall/pattern"
	"github.com/ledsurface/ledwall/render"
)

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func realMain() error {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	params := cfg.Params()
	if err := params.Validate(); err != nil {
		return err
	}

	if !cfg.Output.Quiet {
		fmt.Print(ledwall.Summarize(params))
	}

	curve := params.Curve()
	logger.Sugar.Infow("solved wall curve",
		"radius_m", curve.Radius,
		"arc_length_m", curve.ArcLength,
		"chord_length_m", curve.ChordLength,
		"central_angle_rad", curve.CentralAngle,
	)

	mesh := render.Build(params, curve)
	logger.Sugar.Debugw("built mesh",
		"vertices", len(mesh.Vertices),
		"faces", len(mesh.Faces),
	)

	if cfg.Output.OBJ != "" {
		if err := render.CreateOBJ(cfg.Output.OBJ, mesh); err != nil {
			return fmt.Errorf("writing OBJ: %w", err)
		}
		logger.Sugar.Infow("wrote OBJ mesh", "path", cfg.Output.OBJ)
	}
	if cfg.Output.STL != "" {
		if err := render.CreateSTL(cfg.Output.STL, mesh); err != nil {
			return fmt.Errorf("writing STL: %w", err)
		}
		logger.Sugar.Infow("wrote STL mesh", "path", cfg.Output.STL)
	}
	if cfg.Output.Preview != "" {
		if err := render.SavePreviewPNG(cfg.Output.Preview, mesh, render.DefaultView()); err != nil {
			return fmt.Errorf("rendering preview: %w", err)
		}
		logger.Sugar.Infow("wrote preview render", "path", cfg.Output.Preview)
	}
	if cfg.Output.Pattern != "" {
		if err := pattern.Create(cfg.Output.Pattern, params); err != nil {
			return fmt.Errorf("writing test pattern: %w", err)
		}
		logger.Sugar.Infow("wrote addressing test image", "path", cfg.Output.Pattern)
	}
	return nil
}
