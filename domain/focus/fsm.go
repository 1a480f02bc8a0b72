package focus

import (
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/soocke/focus-timer-go/clock"
	"github.com/soocke/focus-timer-go/config"
)

// SessionFSM manages focus session state transitions and side-effect actions.
// All state is owned by a single event loop; public methods post events and
// return immediately. Reads go through the published Snapshot.
type SessionFSM struct {
	logger *slog.Logger
	clk    clock.Clock

	state     SessionState
	countdown *Countdown
	debouncer *PresenceDebouncer
	recorder  *Recorder
	sched     *taskScheduler

	tickInterval     time.Duration
	warningDelay     time.Duration
	autoPauseDelay   time.Duration
	resumeDelay      time.Duration
	calibrationTicks int
	calibrationStep  time.Duration
	minRecord        time.Duration

	warningMode       bool
	warning           bool
	calibration       int
	interruptions     int
	absenceStarted    time.Time
	resumePending     bool
	permissionPending bool
	permissionDenied  bool
	backgrounded      bool
	permissionEpoch   uint64

	actions   ActionCallbacks
	listeners []SessionStateListener

	events chan interface{}
	closed atomic.Bool
	snap   atomic.Pointer[Snapshot]
}

// NewSessionFSM constructs the engine and starts its event loop. A nil cfg
// uses defaults, a nil clk uses the system clock.
func NewSessionFSM(logger *slog.Logger, cfg *config.Config, clk clock.Clock, actions ActionCallbacks) *SessionFSM {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if clk == nil {
		clk = clock.SystemClock{}
	}
	f := &SessionFSM{
		logger:           logger,
		clk:              clk,
		state:            StateInactive,
		countdown:        NewCountdown(cfg.SessionDuration()),
		debouncer:        NewPresenceDebouncer(cfg.BlinkThreshold()),
		recorder:         NewRecorder(logger, cfg.InterruptionPenalty, cfg.ShortSession()),
		tickInterval:     cfg.TickInterval(),
		warningDelay:     cfg.WarningDelay(),
		autoPauseDelay:   cfg.AutoPauseDelay(),
		resumeDelay:      cfg.ResumeDelay(),
		calibrationTicks: cfg.CalibrationTicks,
		calibrationStep:  cfg.CalibrationStep(),
		minRecord:        cfg.MinRecord(),
		warningMode:      cfg.WarningMode,
		calibration:      -1,
		actions:          actions,
		events:           make(chan interface{}, 64),
	}
	f.sched = newTaskScheduler(func(key taskKey, gen uint64) {
		f.post(evtTaskFired{key: key, gen: gen})
	})
	f.publish()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				if logger != nil {
					logger.Error("session fsm panic", "error", r, "stack", stack)
				}
			}
		}()
		f.loop()
	}()
	return f
}

func (f *SessionFSM) loop() {
	for ev := range f.events {
		switch e := ev.(type) {
		case evtAddListener:
			f.listeners = append(f.listeners, e.l)
		case evtToggle:
			f.handleToggle()
		case evtSetWarningMode:
			f.warningMode = e.on
		case evtSetDuration:
			f.handleSetDuration(e.d)
		case evtPresence:
			f.handlePresence(e.detected, e.now)
		case evtPermission:
			f.handlePermission(e.granted, e.epoch)
		case evtBackgrounded:
			f.handleBackgrounded()
		case evtForegrounded:
			f.backgrounded = false
		case evtTaskFired:
			if f.sched.fired(e.key, e.gen) {
				f.handleTask(e.key)
			}
		case evtClose:
			f.abandon()
			return
		}
		f.publish()
	}
}

// events
type (
	evtToggle         struct{}
	evtSetWarningMode struct{ on bool }
	evtSetDuration    struct{ d time.Duration }
	evtPresence       struct {
		detected bool
		now      time.Time
	}
	evtPermission struct {
		granted bool
		epoch   uint64
	}
	evtBackgrounded struct{}
	evtForegrounded struct{}
	evtTaskFired    struct {
		key taskKey
		gen uint64
	}
	evtAddListener struct{ l SessionStateListener }
	evtClose       struct{}
)

func (f *SessionFSM) handleToggle() {
	if f.state.Active() {
		f.finalize()
		return
	}
	if f.permissionPending {
		return
	}
	f.permissionPending = true
	f.permissionDenied = false
	epoch := f.permissionEpoch
	request := f.actions.RequestCaptureAccess
	if request == nil {
		f.handlePermission(true, epoch)
		return
	}
	go func() {
		defer recoverLog(f.logger, "permission goroutine panic")
		request(func(granted bool) {
			f.post(evtPermission{granted: granted, epoch: epoch})
		})
	}()
}

func (f *SessionFSM) handlePermission(granted bool, epoch uint64) {
	if epoch != f.permissionEpoch || f.state != StateInactive {
		return
	}
	f.permissionPending = false
	if !granted {
		f.permissionDenied = true
		if f.logger != nil {
			f.logger.Info("capture access denied")
		}
		return
	}
	f.beginCalibration()
}

func (f *SessionFSM) beginCalibration() {
	f.resetContext()
	f.backgrounded = false
	f.calibration = f.calibrationTicks
	f.startCapture()
	f.feedback(HapticLight, SoundTick)
	f.sched.schedule(taskCalibration, f.calibrationStep)
	f.transition(StateCalibrating)
}

func (f *SessionFSM) handleTask(key taskKey) {
	switch key {
	case taskCalibration:
		f.handleCalibrationStep()
	case taskTick:
		f.handleTick()
	case taskAbsence:
		f.handleAbsence()
	case taskResume:
		f.handleResume()
	}
}

func (f *SessionFSM) handleCalibrationStep() {
	if f.state != StateCalibrating {
		return
	}
	f.calibration--
	if f.calibration > 0 {
		f.feedback(HapticLight, SoundTick)
		f.sched.schedule(taskCalibration, f.calibrationStep)
		return
	}
	f.startRunning()
}

func (f *SessionFSM) startRunning() {
	now := f.clk.Now()
	f.calibration = -1
	f.countdown.Start(now)
	f.debouncer.Reset()
	f.debouncer.Observe(true, now)
	f.setKeepAwake(true)
	f.feedback(HapticMedium, SoundResume)
	f.sched.schedule(taskTick, f.tickInterval)
	if f.logger != nil {
		f.logger.Info("session started", "total", f.countdown.Total())
	}
	f.transition(StatePresent)
}

func (f *SessionFSM) handlePresence(detected bool, now time.Time) {
	if !f.state.Active() || f.state == StateCalibrating || f.backgrounded {
		return
	}
	switch f.debouncer.Observe(detected, now) {
	case EdgeLost:
		f.handleLost(now)
	case EdgeRegained:
		f.handleRegained()
	}
}

func (f *SessionFSM) handleLost(now time.Time) {
	switch f.state {
	case StatePresent:
		f.absenceStarted = now
		if !f.warningMode {
			f.autoPause(now)
			return
		}
		f.sched.schedule(taskAbsence, f.warningDelay)
		f.transition(StateAbsentGrace)
	case StateAbsentGrace, StateAutoPaused:
		if !f.resumePending {
			return
		}
		// Presence dropped again before the resume debounce elapsed.
		f.resumePending = false
		f.sched.cancel(taskResume)
		f.absenceStarted = now
		if f.state == StateAbsentGrace {
			if f.warning {
				f.sched.schedule(taskAbsence, f.autoPauseDelay-f.warningDelay)
			} else {
				f.sched.schedule(taskAbsence, f.warningDelay)
			}
		}
	}
}

func (f *SessionFSM) handleRegained() {
	if f.state != StateAbsentGrace && f.state != StateAutoPaused {
		return
	}
	if f.resumePending {
		return
	}
	f.resumePending = true
	f.sched.cancel(taskAbsence)
	f.sched.schedule(taskResume, f.resumeDelay)
}

func (f *SessionFSM) handleAbsence() {
	if f.state != StateAbsentGrace {
		return
	}
	if !f.warning {
		f.warning = true
		f.feedback(HapticWarning, SoundWarning)
		f.sched.schedule(taskAbsence, f.autoPauseDelay-f.warningDelay)
		return
	}
	f.autoPause(f.clk.Now())
}

func (f *SessionFSM) autoPause(now time.Time) {
	f.sched.cancel(taskAbsence)
	f.sched.cancel(taskResume)
	f.sched.cancel(taskTick)
	f.resumePending = false
	f.countdown.Pause(now)
	f.interruptions++
	f.warning = true
	f.feedback(HapticMedium, SoundPause)
	if f.logger != nil {
		if f.absenceStarted.IsZero() {
			f.logger.Info("session auto-paused", "interruptions", f.interruptions)
		} else {
			f.logger.Info("session auto-paused", "away", now.Sub(f.absenceStarted), "interruptions", f.interruptions)
		}
	}
	f.transition(StateAutoPaused)
}

func (f *SessionFSM) handleResume() {
	if !f.resumePending {
		return
	}
	f.resumePending = false
	if f.backgrounded || !f.debouncer.Stable() {
		return
	}
	switch f.state {
	case StateAutoPaused:
		now := f.clk.Now()
		f.countdown.Start(now)
		f.warning = false
		f.absenceStarted = time.Time{}
		f.sched.schedule(taskTick, f.tickInterval)
		f.feedback(HapticMedium, SoundResume)
		f.transition(StatePresent)
	case StateAbsentGrace:
		f.warning = false
		f.absenceStarted = time.Time{}
		f.sched.cancel(taskAbsence)
		f.transition(StatePresent)
	}
}

func (f *SessionFSM) handleTick() {
	if f.countdown.Status() != TimerRunning {
		return
	}
	now := f.clk.Now()
	if f.countdown.Tick(now) {
		if f.logger != nil {
			f.logger.Info("session complete", "focused", f.countdown.Elapsed())
		}
		f.feedback(HapticSuccess, SoundComplete)
		f.finalize()
		return
	}
	f.sched.schedule(taskTick, f.tickInterval)
}

func (f *SessionFSM) handleBackgrounded() {
	if f.backgrounded {
		return
	}
	f.backgrounded = true
	switch f.state {
	case StateCalibrating:
		if f.logger != nil {
			f.logger.Info("session cancelled, app in background")
		}
		f.finalize()
	case StatePresent, StateAbsentGrace:
		f.autoPause(f.clk.Now())
		f.debouncer.Reset()
	case StateAutoPaused:
		f.resumePending = false
		f.sched.cancel(taskResume)
		f.debouncer.Reset()
	}
}

func (f *SessionFSM) handleSetDuration(d time.Duration) {
	if f.state != StateInactive || d <= 0 {
		return
	}
	f.countdown.Configure(d)
}

// finalize ends the current session, recording it when enough focus time was
// collected, and returns the engine to Inactive.
func (f *SessionFSM) finalize() {
	now := f.clk.Now()
	if f.countdown.Status() == TimerRunning {
		f.countdown.Tick(now)
	}
	focused := f.countdown.Elapsed()
	interruptions := f.interruptions
	f.sched.cancelAll()
	if focused > f.minRecord {
		f.recorder.Record(now, focused, interruptions)
	} else if f.logger != nil {
		f.logger.Debug("session discarded", "focused", focused)
	}
	f.countdown.Stop()
	f.resetContext()
	f.stopCapture()
	f.setKeepAwake(false)
	f.permissionEpoch++
	f.transition(StateInactive)
}

// resetContext clears per-session bookkeeping. The backgrounded flag is
// deliberately left alone; it tracks the app, not the session.
func (f *SessionFSM) resetContext() {
	f.warning = false
	f.calibration = -1
	f.interruptions = 0
	f.absenceStarted = time.Time{}
	f.resumePending = false
	f.permissionPending = false
	f.debouncer.Reset()
}

func (f *SessionFSM) abandon() {
	f.sched.cancelAll()
	if f.state.Active() {
		f.stopCapture()
		f.setKeepAwake(false)
	}
	f.transition(StateInactive)
	f.publish()
}

func (f *SessionFSM) transition(next SessionState) {
	prev := f.state
	if prev == next {
		return
	}
	f.state = next
	if f.logger != nil {
		f.logger.Debug("session state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range f.listeners {
		l(prev, next)
	}
}

func (f *SessionFSM) publish() {
	snap := Snapshot{
		State:            f.state,
		Timer:            f.countdown.Status(),
		Remaining:        f.countdown.Remaining(),
		Total:            f.countdown.Total(),
		Warning:          f.warning,
		Calibration:      f.calibration,
		Interruptions:    f.interruptions,
		PermissionDenied: f.permissionDenied,
		Backgrounded:     f.backgrounded,
		Stats:            f.recorder.Stats(),
	}
	f.snap.Store(&snap)
}

func (f *SessionFSM) post(ev interface{}) {
	if f.closed.Load() {
		return
	}
	f.events <- ev
}

// side-effect helpers, each off the loop goroutine

func (f *SessionFSM) feedback(h HapticKind, s SoundKind) {
	haptic, sound := f.actions.Haptic, f.actions.Sound
	if haptic == nil && sound == nil {
		return
	}
	go func() {
		defer recoverLog(f.logger, "feedback goroutine panic")
		if haptic != nil {
			haptic(h)
		}
		if sound != nil {
			sound(s)
		}
	}()
}

func (f *SessionFSM) startCapture() {
	start := f.actions.StartCapture
	if start == nil {
		return
	}
	go func() {
		defer recoverLog(f.logger, "capture goroutine panic")
		start()
	}()
}

func (f *SessionFSM) stopCapture() {
	stop := f.actions.StopCapture
	if stop == nil {
		return
	}
	go func() {
		defer recoverLog(f.logger, "capture goroutine panic")
		stop()
	}()
}

func (f *SessionFSM) setKeepAwake(on bool) {
	keep := f.actions.KeepAwake
	if keep == nil {
		return
	}
	go func() {
		defer recoverLog(f.logger, "keep-awake goroutine panic")
		keep(on)
	}()
}

// Public API implements contracts
func (f *SessionFSM) Current() SessionState { return f.snap.Load().State }
func (f *SessionFSM) Snapshot() Snapshot    { return *f.snap.Load() }
func (f *SessionFSM) ToggleStartStop()      { f.post(evtToggle{}) }
func (f *SessionFSM) SetWarningMode(on bool) {
	f.post(evtSetWarningMode{on: on})
}
func (f *SessionFSM) SetCustomDuration(d time.Duration) { f.post(evtSetDuration{d: d}) }
func (f *SessionFSM) ObservePresence(detected bool, now time.Time) {
	f.post(evtPresence{detected: detected, now: now})
}
func (f *SessionFSM) AppBackgrounded()                   { f.post(evtBackgrounded{}) }
func (f *SessionFSM) AppForegrounded()                   { f.post(evtForegrounded{}) }
func (f *SessionFSM) AddListener(l SessionStateListener) { f.post(evtAddListener{l: l}) }

// Records returns the sessions recorded since startup.
func (f *SessionFSM) Records() []SessionRecord { return f.recorder.Records() }

// Close shuts the event loop down. Any session in progress is abandoned
// without being recorded. Safe to call more than once.
func (f *SessionFSM) Close() {
	if !f.closed.CompareAndSwap(false, true) {
		return
	}
	f.events <- evtClose{}
}

func recoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil {
		if logger != nil {
			logger.Error(msg, "error", r)
		}
	}
}

// Ensure contract satisfaction
var _ SessionFSMContract = (*SessionFSM)(nil)
