package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"rtscam/internal/config"
	"rtscam/internal/logging"
	"rtscam/internal/sandbox"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	logger := logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Console)
	logger.Info().
		Float64("fov", cfg.Camera.FieldOfView).
		Float64("min_zoom", cfg.Rig.MinimumZoomLength).
		Float64("max_zoom", cfg.Rig.MaximumZoomLength).
		Bool("boundary", cfg.Boundary.Enabled).
		Msg("config loaded")

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.Display.TPS > 0 {
		ebiten.SetTPS(cfg.Display.TPS)
	}

	g := sandbox.NewGame(cfg, logger)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal().Err(err).Msg("game loop exited")
	}
}
