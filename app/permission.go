package app

import (
	"log/slog"

	"github.com/soocke/focus-timer-go/capture"
)

// RequestCaptureAccess returns a callback that probes the screen capture
// backend once and reports whether frames can be grabbed. There is no
// permission prompt on Windows; a failing probe means capture is
// unavailable, e.g. a locked desktop or missing display.
func RequestCaptureAccess(logger *slog.Logger) func(result func(granted bool)) {
	return func(result func(granted bool)) {
		_, err := capture.Grab()
		if err != nil && logger != nil {
			logger.Warn("capture probe failed", "error", err)
		}
		result(err == nil)
	}
}
