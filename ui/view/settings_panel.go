package view

import (
	"strconv"
	"strings"

	"log/slog"

	"github.com/soocke/focus-timer-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsPanel encapsulates the session settings widgets and apply logic.
// It owns its widgets and writes back into *config.Config when changes apply.
type SettingsPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
}

type settingsPanel struct {
	cfg             *config.Config
	cfgPath         string
	logger          *slog.Logger
	onWarningMode   func(on bool)
	onApplyDuration func(text string) bool
	minutes         *TextWidget
	warningBtn      *ButtonWidget
	applyBtn        *ButtonWidget
	warningOn       bool
}

// NewSettingsPanel creates the view bound to cfg.
func NewSettingsPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onWarningMode func(on bool), onApplyDuration func(text string) bool) SettingsPanel {
	v := &settingsPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onWarningMode: onWarningMode, onApplyDuration: onApplyDuration}
	if cfg != nil {
		v.warningOn = cfg.WarningMode
	}
	return v
}

func (v *settingsPanel) Build(startRow int) (row int) {
	row = startRow

	lbl := Label(Txt("Session Minutes"), Anchor("w"))
	Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	v.minutes = Text(Height(1), Width(16))
	Grid(v.minutes, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	v.minutes.Delete("1.0", END)
	if v.cfg != nil {
		v.minutes.Insert("1.0", strconv.Itoa(v.cfg.SessionMinutes))
	}
	row++

	warnLbl := Label(Txt("Absence Warning"), Anchor("w"))
	Grid(warnLbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	v.warningBtn = Button(Txt(warningText(v.warningOn)), Command(func() { v.toggleWarning() }))
	Grid(v.warningBtn, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	row++

	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.applyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *settingsPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	if v.minutes != nil {
		v.minutes.Configure(State(state))
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
	// The warning toggle stays enabled; the mode may change mid-session.
}

func (v *settingsPanel) toggleWarning() {
	v.warningOn = !v.warningOn
	if v.warningBtn != nil {
		v.warningBtn.Configure(Txt(warningText(v.warningOn)))
	}
	if v.onWarningMode != nil {
		v.onWarningMode(v.warningOn)
	}
	if v.cfg == nil {
		return
	}
	v.cfg.WarningMode = v.warningOn
	v.save()
}

func (v *settingsPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *settingsPanel) applyChanges() {
	if v.cfg == nil {
		return
	}
	raw := strings.TrimSpace(v.text(v.minutes))
	if v.onApplyDuration != nil && !v.onApplyDuration(raw) {
		return
	}
	cfg := *v.cfg // copy
	if i, ok := parseIntField(raw); ok {
		cfg.SessionMinutes = i
	}
	cfg.WarningMode = v.warningOn
	if verr := cfg.Validate(); verr != nil {
		return
	}
	*v.cfg = cfg
	v.save()
}

func (v *settingsPanel) save() {
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
		return
	}
	if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
}

func warningText(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}

// parsing helper (unexported)
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
