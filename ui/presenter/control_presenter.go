package presenter

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// SessionCommands narrows the engine contract needed by user controls.
type SessionCommands interface {
	ToggleStartStop()
	SetWarningMode(on bool)
	SetCustomDuration(d time.Duration)
}

// ControlPresenter routes control actions from the view to the session engine.
type ControlPresenter struct {
	commands SessionCommands
	logger   *slog.Logger
}

// NewControlPresenter returns a new ControlPresenter.
func NewControlPresenter(commands SessionCommands, logger *slog.Logger) *ControlPresenter {
	return &ControlPresenter{commands: commands, logger: logger}
}

// Toggle starts or stops the session.
func (c *ControlPresenter) Toggle() {
	if c == nil || c.commands == nil {
		return
	}
	c.commands.ToggleStartStop()
}

// SetWarningMode switches between warned and immediate auto-pause.
func (c *ControlPresenter) SetWarningMode(on bool) {
	if c == nil || c.commands == nil {
		return
	}
	c.commands.SetWarningMode(on)
}

// ApplyDuration parses a session length in minutes from the settings panel
// and applies it. Reports whether the value was accepted.
func (c *ControlPresenter) ApplyDuration(minutesText string) bool {
	if c == nil || c.commands == nil {
		return false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(minutesText))
	if err != nil {
		if c.logger != nil {
			c.logger.Error("invalid session length", "value", minutesText, "error", err)
		}
		return false
	}
	if minutes < 1 || minutes > 480 {
		if c.logger != nil {
			c.logger.Error("session length out of range", "minutes", minutes)
		}
		return false
	}
	c.commands.SetCustomDuration(time.Duration(minutes) * time.Minute)
	return true
}
