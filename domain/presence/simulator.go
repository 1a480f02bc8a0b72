package presence

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/soocke/focus-timer-go/clock"
)

// Simulator is a presence source with a manually controlled detection value,
// for demos and scripted runs without screen capture.
type Simulator struct {
	running  atomic.Bool
	detected atomic.Bool
	logger   *slog.Logger
	clk      clock.Clock
	interval time.Duration
	sink     Sink
}

// NewSimulator constructs a simulator reporting presence until told
// otherwise. A nil clk uses the system clock.
func NewSimulator(logger *slog.Logger, clk clock.Clock, interval time.Duration, sink Sink) *Simulator {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	s := &Simulator{logger: logger, clk: clk, interval: interval, sink: sink}
	s.detected.Store(true)
	return s
}

// SetDetected overrides the simulated presence value.
func (s *Simulator) SetDetected(detected bool) {
	if s.detected.Swap(detected) != detected && s.logger != nil {
		s.logger.Debug("presence override", "detected", detected)
	}
}

// Detected returns the current simulated presence value.
func (s *Simulator) Detected() bool { return s.detected.Load() }

func (s *Simulator) Running() bool { return s.running.Load() }

func (s *Simulator) Start() {
	if s.running.Load() {
		return
	}
	s.running.Store(true)
	go s.loop()
}

func (s *Simulator) Stop() {
	if !s.running.Load() {
		return
	}
	s.running.Store(false)
}

func (s *Simulator) loop() {
	for s.running.Load() {
		if s.sink != nil {
			s.sink.ObservePresence(s.detected.Load(), s.clk.Now())
		}
		time.Sleep(s.interval)
	}
}

var _ Source = (*Simulator)(nil)
