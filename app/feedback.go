package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/soocke/focus-timer-go/domain/action"
	"github.com/soocke/focus-timer-go/domain/focus"
)

// Feedback plays attention cues for session transitions.
//
// Haptics have no desktop equivalent, so they are logged only. Sounds use
// the terminal bell, which most desktops map to the system alert sound.
type Feedback struct {
	logger *slog.Logger
	bell   io.Writer
}

func NewFeedback(logger *slog.Logger) *Feedback {
	return &Feedback{logger: logger, bell: os.Stdout}
}

// Haptic logs the cue kind.
func (f *Feedback) Haptic(kind focus.HapticKind) {
	if f == nil {
		return
	}
	if f.logger != nil {
		f.logger.Debug("haptic cue", "kind", kind.String())
	}
}

// Sound rings the terminal bell.
func (f *Feedback) Sound(kind focus.SoundKind) {
	if f == nil {
		return
	}
	if f.bell != nil {
		_, _ = f.bell.Write([]byte("\a"))
	}
	if f.logger != nil {
		f.logger.Debug("sound cue", "kind", kind.String())
	}
}

// KeepAwake toggles the display sleep block while a session runs.
func (f *Feedback) KeepAwake(on bool) {
	if f == nil {
		return
	}
	if err := action.SetKeepAwake(on); err != nil {
		if f.logger != nil {
			f.logger.Debug("keep-awake unavailable", "error", err)
		}
		return
	}
	if f.logger != nil {
		f.logger.Debug("keep-awake", "on", on)
	}
}
