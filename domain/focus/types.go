package focus

import (
	"time"
)

// SessionState represents the high-level state of a focus session.
type SessionState int

const (
	// StateInactive means no session is in progress.
	StateInactive SessionState = iota
	// StateCalibrating means the countdown to the first focus interval is running.
	StateCalibrating
	// StatePresent means the session is running and the user is at the screen.
	StatePresent
	// StateAbsentGrace means presence was lost but the session is still running.
	StateAbsentGrace
	// StateAutoPaused means the session was paused because the user stayed away.
	StateAutoPaused
)

func (s SessionState) String() string {
	switch s {
	case StateInactive:
		return "Inactive"
	case StateCalibrating:
		return "Calibrating"
	case StatePresent:
		return "Present"
	case StateAbsentGrace:
		return "AbsentGrace"
	case StateAutoPaused:
		return "AutoPaused"
	default:
		return "Unknown"
	}
}

// Active reports whether a session is in progress in this state.
func (s SessionState) Active() bool {
	return s != StateInactive
}

// TimerStatus is the lifecycle state of the countdown clock.
type TimerStatus int

const (
	TimerIdle TimerStatus = iota
	TimerRunning
	TimerPaused
	TimerFinished
)

func (s TimerStatus) String() string {
	switch s {
	case TimerIdle:
		return "Idle"
	case TimerRunning:
		return "Running"
	case TimerPaused:
		return "Paused"
	case TimerFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// PresenceEdge is the debounced result of a raw presence observation.
type PresenceEdge int

const (
	// EdgeNone means the stable presence value did not change.
	EdgeNone PresenceEdge = iota
	// EdgeRegained means the user came back after a stable absence.
	EdgeRegained
	// EdgeLost means the user has been away longer than the blink threshold.
	EdgeLost
)

// HapticKind selects a haptic pulse pattern for session feedback.
type HapticKind int

const (
	HapticLight HapticKind = iota
	HapticMedium
	HapticSuccess
	HapticWarning
)

func (k HapticKind) String() string {
	switch k {
	case HapticLight:
		return "light"
	case HapticMedium:
		return "medium"
	case HapticSuccess:
		return "success"
	case HapticWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// SoundKind selects a sound cue for session feedback.
type SoundKind int

const (
	SoundTick SoundKind = iota
	SoundWarning
	SoundPause
	SoundResume
	SoundComplete
)

func (k SoundKind) String() string {
	switch k {
	case SoundTick:
		return "tick"
	case SoundWarning:
		return "warning"
	case SoundPause:
		return "pause"
	case SoundResume:
		return "resume"
	case SoundComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// ActionCallbacks bundles the side effects the session engine can trigger.
// Any callback may be nil, in which case the action is skipped.
type ActionCallbacks struct {
	// RequestCaptureAccess asks the platform for screen capture permission and
	// reports the outcome through result. Implementations may call result
	// asynchronously from any goroutine.
	RequestCaptureAccess func(result func(granted bool))
	// StartCapture begins presence capture for an active session.
	StartCapture func()
	// StopCapture ends presence capture.
	StopCapture func()
	// Haptic plays a haptic pulse.
	Haptic func(kind HapticKind)
	// Sound plays a sound cue.
	Sound func(kind SoundKind)
	// KeepAwake prevents or allows display sleep while a session runs.
	KeepAwake func(on bool)
}

// SessionStateListener is notified on session state transitions.
type SessionStateListener func(prev, next SessionState)

// RunningStats is the aggregate of all sessions recorded since startup.
type RunningStats struct {
	// TotalFocus is the sum of focused time across recorded sessions.
	TotalFocus time.Duration
	// Interruptions is the total interruption count across recorded sessions.
	Interruptions int
	// Sessions is the number of recorded sessions.
	Sessions int
	// Score is the integer mean of recorded session scores, 0 when empty.
	Score int
}

// Snapshot is an immutable view of the session engine state, safe to read
// from any goroutine.
type Snapshot struct {
	State            SessionState
	Timer            TimerStatus
	Remaining        time.Duration
	Total            time.Duration
	Warning          bool
	Calibration      int
	Interruptions    int
	PermissionDenied bool
	Backgrounded     bool
	Stats            RunningStats
}

// SessionStateSource exposes the current session state.
type SessionStateSource interface {
	Current() SessionState
}

// SnapshotSource exposes a consistent view of the whole engine state.
type SnapshotSource interface {
	Snapshot() Snapshot
}

// SessionCommands are the user-facing controls of the session engine.
type SessionCommands interface {
	ToggleStartStop()
	SetWarningMode(on bool)
	SetCustomDuration(d time.Duration)
}

// PresenceSink receives raw presence observations from a capture pipeline.
type PresenceSink interface {
	ObservePresence(detected bool, now time.Time)
}

// LifecycleEvents receives application foreground/background notifications.
type LifecycleEvents interface {
	AppBackgrounded()
	AppForegrounded()
}

// SessionLifecycle shuts the engine down.
type SessionLifecycle interface {
	Close()
}

// SessionFSMContract is the full behavior of the session engine.
type SessionFSMContract interface {
	SessionStateSource
	SnapshotSource
	SessionCommands
	PresenceSink
	LifecycleEvents
	SessionLifecycle
	AddListener(l SessionStateListener)
}
