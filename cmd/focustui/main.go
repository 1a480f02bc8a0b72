// Command focustui runs the focus timer in a terminal instead of a Tk
// window. With -sim the screen capture pipeline is replaced by a presence
// simulator toggled from the keyboard, which makes the engine easy to
// exercise over ssh or in a headless checkout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/soocke/focus-timer-go/capture"
	"github.com/soocke/focus-timer-go/config"
	"github.com/soocke/focus-timer-go/domain/action"
	"github.com/soocke/focus-timer-go/domain/focus"
	"github.com/soocke/focus-timer-go/domain/presence"
)

func main() {
	var (
		simulated  = flag.Bool("sim", false, "simulate presence instead of capturing the screen")
		minutes    = flag.Int("minutes", 0, "session length in minutes, overrides the config file")
		configPath = flag.String("config", "focus_timer.json", "path to the config file")
		debugMode  = flag.Bool("debug", false, "write debug logs to focustui.log")
	)
	flag.Parse()

	logger := newLogger(*debugMode)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *configPath, "error", err)
	}
	if *minutes > 0 {
		cfg.SessionMinutes = *minutes
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		os.Exit(1)
	}

	var (
		sim *presence.Simulator
		svc *presence.Service
	)

	fsm := focus.NewSessionFSM(logger, cfg, nil, focus.ActionCallbacks{
		RequestCaptureAccess: func(result func(granted bool)) {
			if *simulated {
				result(true)
				return
			}
			_, err := capture.Grab()
			if err != nil {
				logger.Warn("capture probe failed", "error", err)
			}
			result(err == nil)
		},
		StartCapture: func() {
			if sim != nil {
				sim.Start()
			} else if svc != nil {
				svc.Start()
			}
		},
		StopCapture: func() {
			if sim != nil {
				sim.Stop()
			} else if svc != nil {
				svc.Stop()
			}
		},
		KeepAwake: func(on bool) {
			if err := action.SetKeepAwake(on); err != nil {
				logger.Debug("keep-awake unavailable", "error", err)
			}
		},
	})

	if *simulated {
		sim = presence.NewSimulator(logger, nil, cfg.CaptureInterval(), fsm)
	} else {
		detector := presence.NewActivityDetector(cfg, logger)
		svc = presence.NewService(logger, nil, cfg.CaptureInterval(), nil, detector, fsm)
	}

	p := tea.NewProgram(newModel(fsm, sim, cfg.SessionMinutes, cfg.WarningMode), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "focustui:", err)
		os.Exit(1)
	}

	fsm.Close()
	if sim != nil {
		sim.Stop()
	}
	if svc != nil {
		svc.Stop()
	}
}

// newLogger returns a discard logger unless debug is set. Logging to stderr
// would bleed through the alternate screen, so debug output goes to a file.
func newLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	f, err := os.OpenFile("focustui.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
