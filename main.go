package main

import (
	"flag"
	"log/slog"

	"github.com/soocke/focus-timer-go/app"
	"github.com/soocke/focus-timer-go/config"
)

func main() {
	var (
		configPath = flag.String("config", "focus_timer.json", "path to the config file")
		debugMode  = flag.Bool("debug", false, "enable debug logging and diagnostics")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debugMode {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *configPath, "error", err)
	}
	if *debugMode {
		cfg.Debug = true
	}

	application := app.NewApp("Focus Timer", 480, 360, cfg, logger, *configPath)
	application.Start()
}
