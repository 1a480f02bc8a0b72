package focus

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultInterruptionPenalty = 5
	defaultShortSession        = 30 * time.Second
	maxScore                   = 100
)

// SessionRecord is one completed (or stopped) focus session.
type SessionRecord struct {
	ID            string
	EndedAt       time.Time
	Focused       time.Duration
	Interruptions int
	Score         int
}

// Recorder keeps the sessions recorded since startup and their aggregate
// stats. Safe for concurrent use.
type Recorder struct {
	logger       *slog.Logger
	penalty      int
	shortSession time.Duration

	mu            sync.Mutex
	records       []SessionRecord
	totalFocus    time.Duration
	interruptions int
	scoreSum      int
}

// NewRecorder returns a recorder scoring sessions with the given interruption
// penalty. Sessions at or under shortSession always score full marks; a zero
// shortSession disables that rule.
func NewRecorder(logger *slog.Logger, penalty int, shortSession time.Duration) *Recorder {
	if penalty <= 0 {
		penalty = defaultInterruptionPenalty
	}
	if shortSession < 0 {
		shortSession = defaultShortSession
	}
	return &Recorder{
		logger:       logger,
		penalty:      penalty,
		shortSession: shortSession,
	}
}

// Score computes the focus score for a session.
func (r *Recorder) Score(focused time.Duration, interruptions int) int {
	if r.shortSession > 0 && focused <= r.shortSession {
		return maxScore
	}
	score := maxScore - r.penalty*interruptions
	if score < 0 {
		score = 0
	}
	return score
}

// Record stores a finished session and returns the resulting record.
func (r *Recorder) Record(endedAt time.Time, focused time.Duration, interruptions int) SessionRecord {
	rec := SessionRecord{
		ID:            uuid.New().String(),
		EndedAt:       endedAt,
		Focused:       focused,
		Interruptions: interruptions,
		Score:         r.Score(focused, interruptions),
	}

	r.mu.Lock()
	r.records = append(r.records, rec)
	r.totalFocus += focused
	r.interruptions += interruptions
	r.scoreSum += rec.Score
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Info("session recorded", "id", rec.ID, "focused", rec.Focused, "interruptions", rec.Interruptions, "score", rec.Score)
	}
	return rec
}

// Stats returns the aggregate over all recorded sessions. The score is the
// integer mean, 0 when nothing has been recorded yet.
func (r *Recorder) Stats() RunningStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := RunningStats{
		TotalFocus:    r.totalFocus,
		Interruptions: r.interruptions,
		Sessions:      len(r.records),
	}
	if len(r.records) > 0 {
		stats.Score = r.scoreSum / len(r.records)
	}
	return stats
}

// Records returns a copy of all recorded sessions in order.
func (r *Recorder) Records() []SessionRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]SessionRecord, len(r.records))
	copy(out, r.records)
	return out
}
