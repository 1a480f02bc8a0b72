package presence

import (
	"image"
	"time"
)

// Detector decides whether a user is present from a captured frame.
type Detector interface {
	Detect(frame *image.RGBA, now time.Time) bool
	Reset()
}

// Sink consumes raw presence observations.
type Sink interface {
	ObservePresence(detected bool, now time.Time)
}

// Source drives a presence pipeline that feeds a Sink.
type Source interface {
	Start()
	Stop()
	Running() bool
}

// Stats is instrumentation data for a presence pipeline.
type Stats struct {
	Frames       uint64
	Failures     uint64
	Detections   uint64
	AvgAnalysis  time.Duration
	LastObserved time.Time
}
