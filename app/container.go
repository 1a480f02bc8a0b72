package app

import (
	"log/slog"

	"github.com/soocke/focus-timer-go/clock"
	"github.com/soocke/focus-timer-go/config"
	"github.com/soocke/focus-timer-go/domain/focus"
	"github.com/soocke/focus-timer-go/domain/presence"
	"github.com/soocke/focus-timer-go/ui/model"
	"github.com/soocke/focus-timer-go/ui/presenter"
	"github.com/soocke/focus-timer-go/ui/view"
)

// AppContainer assembles the session engine, services, presenters and the
// root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Meter    *model.MeterModel
	FSM      focus.SessionFSMContract
	Presence *presence.Service
	RootView *view.RootView
	UI       view.UI

	// Presenters
	SessionPresenter *presenter.SessionPresenter
	Control          *presenter.ControlPresenter
	Lifecycle        *presenter.LifecycleWatcher
}

// BuildContainer constructs all components. The engine drives the presence
// service through its capture callbacks; the lifecycle watcher feeds
// foreground changes back into the engine.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath, appTitle string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Meter = model.NewMeterModel()

	feedback := NewFeedback(logger)
	c.FSM = focus.NewSessionFSM(logger, cfg, clock.SystemClock{}, focus.ActionCallbacks{
		RequestCaptureAccess: RequestCaptureAccess(logger),
		StartCapture:         func() { c.Presence.Start() },
		StopCapture:          func() { c.Presence.Stop() },
		Haptic:               feedback.Haptic,
		Sound:                feedback.Sound,
		KeepAwake:            feedback.KeepAwake,
	})
	detector := presence.NewActivityDetector(cfg, logger)
	c.Presence = presence.NewService(logger, clock.SystemClock{}, cfg.CaptureInterval(), nil, detector, c.FSM)

	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView

	// Presenters
	c.SessionPresenter = presenter.NewSessionPresenter(c.FSM, c.Meter, c.UI)
	c.Control = presenter.NewControlPresenter(c.FSM, logger)
	c.Lifecycle = presenter.NewLifecycleWatcher(c.FSM, logger, nil, func() string { return appTitle })
	c.FSM.AddListener(c.Lifecycle.OnState)
	return c
}
