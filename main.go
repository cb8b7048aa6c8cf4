package main

import (
	"log/slog"
	"time"

	"github.com/soocke/image-cropper-go/app"
	"github.com/soocke/image-cropper-go/config"
	"github.com/soocke/image-cropper-go/debug"
)

func main() {
	// Config file is optional; any problem falls back to defaults.
	cfgPath := config.Locate()
	cfg, cfgErr := config.Load(cfgPath)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if cfgErr != nil {
		logger.Warn("config read failed, using defaults", "path", cfgPath, "error", cfgErr)
	}
	if cfg.Debug {
		debug.StartMemLogger(5*time.Second, logger)
	}

	application := app.NewApp("Image Cropper", 900, 1100, cfg, logger)
	application.Start()
}
