package view

import (
	"log/slog"
	"time"

	"github.com/soocke/focus-timer-go/config"
	"github.com/soocke/focus-timer-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Stats    SessionStats
	Settings SettingsPanel

	// Widgets
	CountdownLabel *LabelWidget
	StatusLabel    *LabelWidget
	WarningLabel   *LabelWidget
	startBtn       *ButtonWidget
	darkBtn        *ButtonWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	SetCountdown(remaining, total time.Duration)
	SetStatus(text string)
	SetWarning(on bool)
	SetMeter(run, total time.Duration)
	SetStats(text string)
	SetActive(active bool)
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(onToggle func(), onWarningMode func(on bool), onApplyDuration func(text string) bool, onExit func()) {
	if rv == nil {
		return
	}
	initial := 25 * time.Minute
	if rv.cfg != nil {
		initial = rv.cfg.SessionDuration()
	}

	// Row 0: countdown, buttons frame
	rv.CountdownLabel = Label(Txt(clockFormat(initial)), Width(12), Anchor("w"))
	Grid(rv.CountdownLabel, Row(0), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(2), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.startBtn = Button(Txt("Start"), Command(onToggle))
	Grid(rv.startBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.darkBtn = Button(Txt("Dark Mode"), Command(func() { rv.toggleDark() }))
	Grid(rv.darkBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: status line
	rv.StatusLabel = Label(Txt("Ready"), Borderwidth(1), Relief("ridge"), Anchor("w"))
	Grid(rv.StatusLabel, Row(1), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	// Row 2: absence warning banner, empty while presence holds
	rv.WarningLabel = Label(Txt(""), Foreground(theme.CurrentPalette().Warning), Anchor("w"))
	Grid(rv.WarningLabel, Row(2), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.15m"))

	// Rows 3-4: focus meter and daily totals
	rv.Stats = NewSessionStats(3)

	// Settings rows
	rv.Settings = NewSettingsPanel(rv.cfg, rv.cfgPath, rv.logger, onWarningMode, onApplyDuration)
	rv.Settings.Build(5)
}

func (rv *RootView) toggleDark() {
	theme.ToggleDark()
	if rv.darkBtn != nil {
		if theme.IsDark() {
			rv.darkBtn.Configure(Txt("Light Mode"))
		} else {
			rv.darkBtn.Configure(Txt("Dark Mode"))
		}
	}
	if rv.WarningLabel != nil {
		rv.WarningLabel.Configure(Foreground(theme.CurrentPalette().Warning))
	}
}

// SetCountdown updates the remaining time display.
func (rv *RootView) SetCountdown(remaining, total time.Duration) {
	if rv != nil && rv.CountdownLabel != nil {
		rv.CountdownLabel.Configure(Txt(clockFormat(remaining)))
	}
}

// SetStatus updates the status line text.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// SetWarning shows or clears the absence warning banner.
func (rv *RootView) SetWarning(on bool) {
	if rv == nil || rv.WarningLabel == nil {
		return
	}
	if on {
		rv.WarningLabel.Configure(Txt("Come back to focus!"))
		return
	}
	rv.WarningLabel.Configure(Txt(""))
}

// SetMeter proxies focused run and session totals to the stats subview.
func (rv *RootView) SetMeter(run, total time.Duration) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetMeter(run, total)
	}
}

// SetStats proxies the daily totals line to the stats subview.
func (rv *RootView) SetStats(text string) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetStats(text)
	}
}

// SetActive flips the start button label and locks the settings while a
// session runs.
func (rv *RootView) SetActive(active bool) {
	if rv == nil {
		return
	}
	if rv.startBtn != nil {
		if active {
			rv.startBtn.Configure(Txt("Stop"))
		} else {
			rv.startBtn.Configure(Txt("Start"))
		}
	}
	if rv.Settings != nil {
		rv.Settings.SetEditable(!active)
	}
}
