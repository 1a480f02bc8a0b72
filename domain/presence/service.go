package presence

import (
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/soocke/focus-timer-go/capture"
	"github.com/soocke/focus-timer-go/clock"
)

const presenceStatsLogInterval = 5 * time.Second

// Frames are bounded before analysis so large screens cost the same as
// small ones.
const (
	maxAnalysisWidth  = 960
	maxAnalysisHeight = 600
)

// Service grabs screen frames at a fixed cadence, runs them through a
// Detector and reports the raw result to the Sink. A capture failure is
// reported as absence so an unattended session still pauses.
type Service struct {
	running  atomic.Bool
	logger   *slog.Logger
	clk      clock.Clock
	interval time.Duration
	grab     func() (*image.RGBA, error)
	detector Detector
	sink     Sink

	frames        atomic.Uint64
	failures      atomic.Uint64
	detections    atomic.Uint64
	analysisNanos atomic.Uint64
	lastObserved  atomic.Int64
}

// NewService constructs a presence service. A nil grab uses the screen
// capture backend, a nil clk the system clock.
func NewService(logger *slog.Logger, clk clock.Clock, interval time.Duration, grab func() (*image.RGBA, error), detector Detector, sink Sink) *Service {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	if grab == nil {
		grab = capture.Grab
	}
	return &Service{
		logger:   logger,
		clk:      clk,
		interval: interval,
		grab:     grab,
		detector: detector,
		sink:     sink,
	}
}

func (s *Service) Running() bool { return s.running.Load() }

func (s *Service) Start() {
	if s.running.Load() {
		return
	}
	s.running.Store(true)
	go s.loop()
}

func (s *Service) Stop() {
	if !s.running.Load() {
		return
	}
	s.running.Store(false)
}

// Stats returns pipeline instrumentation counters.
func (s *Service) Stats() Stats {
	frames := s.frames.Load()
	total := s.analysisNanos.Load()
	var avg time.Duration
	if frames > 0 {
		avg = time.Duration(total / frames)
	}
	var last time.Time
	if ns := s.lastObserved.Load(); ns > 0 {
		last = time.Unix(0, ns)
	}
	return Stats{
		Frames:       frames,
		Failures:     s.failures.Load(),
		Detections:   s.detections.Load(),
		AvgAnalysis:  avg,
		LastObserved: last,
	}
}

func (s *Service) loop() {
	s.detector.Reset()
	logTicker := time.NewTicker(presenceStatsLogInterval)
	defer logTicker.Stop()
	for s.running.Load() {
		start := time.Now()
		detected := false
		frame, err := s.grab()
		if err != nil {
			s.failures.Add(1)
			if s.logger != nil {
				s.logger.Error("presence capture", "error", err)
			}
		} else {
			scaled := capture.ScaleToFit(frame, maxAnalysisWidth, maxAnalysisHeight)
			if scaled != frame {
				capture.RecycleFrame(frame)
			}
			detected = s.detector.Detect(scaled, s.clk.Now())
			capture.RecycleFrame(scaled)
		}
		s.analysisNanos.Add(uint64(time.Since(start).Nanoseconds()))
		s.frames.Add(1)
		if detected {
			s.detections.Add(1)
		}

		now := s.clk.Now()
		s.lastObserved.Store(now.UnixNano())
		if s.sink != nil {
			s.sink.ObservePresence(detected, now)
		}

		select {
		case <-logTicker.C:
			s.logStats()
		default:
		}

		time.Sleep(s.interval)
	}
}

func (s *Service) logStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("presence.stats",
		"frames", stats.Frames,
		"failures", stats.Failures,
		"detections", stats.Detections,
		"avg_analysis", stats.AvgAnalysis,
	)
}

var _ Source = (*Service)(nil)
