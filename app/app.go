package app

import (
	"fmt"
	"log/slog"
	"time"

	. "modernc.org/tk9.0"

	"github.com/soocke/focus-timer-go/config"
	"github.com/soocke/focus-timer-go/debug"
	"github.com/soocke/focus-timer-go/ui/presenter"
	"github.com/soocke/focus-timer-go/ui/theme"
)

const (
	tick = 100 * time.Millisecond
)

type app struct {
	container *AppContainer
	logger    *slog.Logger
	width     int
	height    int
	afterID   string
	loop      *presenter.Loop
}

// NewApp wires the container and window chrome for the given geometry.
func NewApp(title string, width, height int, cfg *config.Config, logger *slog.Logger, cfgPath string) *app {
	a := &app{logger: logger, width: width, height: height}
	a.container = BuildContainer(cfg, logger, cfgPath, title)

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the UI and runs the Tk event loop until the window closes.
func (a *app) Start() {
	theme.InitStyles()
	c := a.container
	c.RootView.Build(c.Control.Toggle, c.Control.SetWarningMode, c.Control.ApplyDuration, a.exitHandler)

	if c.Config != nil && c.Config.Debug {
		debug.Start(a.logger)
	}

	// Kick off update loop.
	a.loop = presenter.NewLoop(c.SessionPresenter, a.scheduleUpdate)
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.container.FSM.Close()
	a.container.Presence.Stop()
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.loop.Tick() })
}
