package presenter

import (
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/soocke/focus-timer-go/domain/action"
	"github.com/soocke/focus-timer-go/domain/focus"
)

// LifecycleFSM narrows the engine contract needed by the lifecycle watcher.
type LifecycleFSM interface {
	Current() focus.SessionState
	AppBackgrounded()
	AppForegrounded()
}

// LifecycleWatcher watches which window is in the foreground while a session
// is active and tells the engine when the app loses or regains it.
type LifecycleWatcher struct {
	FSM        LifecycleFSM
	Logger     *slog.Logger
	Foreground func() (string, error)
	OwnTitle   func() string // this app's window title (normalized by provider)
	interval   time.Duration
	running    atomic.Bool
	done       chan struct{}
}

// NewLifecycleWatcher constructs a lifecycle watcher polling the platform
// foreground window.
func NewLifecycleWatcher(fsm LifecycleFSM, logger *slog.Logger, fg func() (string, error), own func() string) *LifecycleWatcher {
	if fg == nil {
		fg = action.ForegroundWindowTitle
	}
	if own == nil {
		own = func() string { return "" }
	}
	return &LifecycleWatcher{FSM: fsm, Logger: logger, Foreground: fg, OwnTitle: own, interval: 250 * time.Millisecond}
}

// OnState should be called from an FSM listener; it starts/stops polling with
// session activity.
func (w *LifecycleWatcher) OnState(prev, next focus.SessionState) {
	if w == nil {
		return
	}
	if next.Active() {
		w.start()
		return
	}
	// session ended
	w.stop()
}

func (w *LifecycleWatcher) start() {
	if w.running.Load() {
		return
	}
	w.done = make(chan struct{})
	w.running.Store(true)
	go w.loop(w.done)
}

func (w *LifecycleWatcher) stop() {
	if !w.running.Load() {
		return
	}
	close(w.done)
	w.running.Store(false)
}

func (w *LifecycleWatcher) loop(done chan struct{}) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	// Edge state is local to the loop; each session starts in the foreground.
	background := false
	disabled := false
	for {
		select {
		case <-ticker.C:
			background, disabled = w.poll(background, disabled)
		case <-done:
			return
		}
	}
}

func (w *LifecycleWatcher) poll(background, disabled bool) (bool, bool) {
	if disabled || w.FSM == nil {
		return background, disabled
	}
	if !w.FSM.Current().Active() { // safety
		return background, disabled
	}
	title, err := w.Foreground()
	if err != nil {
		if errors.Is(err, action.ErrUnsupported) {
			if w.Logger != nil {
				w.Logger.Debug("foreground polling unavailable", "error", err)
			}
			return background, true
		}
		// Transient, e.g. no foreground window during a switch.
		return background, disabled
	}
	own := strings.TrimSpace(strings.ToLower(w.OwnTitle()))
	if own == "" {
		return background, disabled
	}
	current := strings.TrimSpace(strings.ToLower(title))
	if current == "" {
		return background, disabled
	}
	if current != own && !background { // only react on change
		w.FSM.AppBackgrounded()
		if w.Logger != nil {
			w.Logger.Debug("app lost foreground", "window", title)
		}
		return true, disabled
	}
	if current == own && background {
		w.FSM.AppForegrounded()
		if w.Logger != nil {
			w.Logger.Debug("app regained foreground")
		}
		return false, disabled
	}
	return background, disabled
}
