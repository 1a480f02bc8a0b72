package presence

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/focus-timer-go/config"
)

const (
	activitySampleStride = 2
	activityPixelDelta   = 10
	activityLogEvery     = 50
)

// ActivityDetector reports presence from inter-frame motion. Frames are
// reduced to a sampled luma grid and compared against the previous frame;
// when the ratio of changed samples reaches the threshold the user is
// considered present. Call from a single goroutine.
type ActivityDetector struct {
	threshold float64
	logger    *slog.Logger
	prev      []byte
	cur       []byte
	w, h      int
	frameCnt  uint64
}

// NewActivityDetector constructs a detector using the configured change
// threshold. Pass nil cfg for defaults.
func NewActivityDetector(cfg *config.Config, logger *slog.Logger) *ActivityDetector {
	threshold := 0.02
	if cfg != nil && cfg.ActivityThreshold > 0 {
		threshold = cfg.ActivityThreshold
	}
	return &ActivityDetector{threshold: threshold, logger: logger}
}

// Reset clears the frame baseline.
func (d *ActivityDetector) Reset() {
	d.prev, d.cur = nil, nil
	d.w, d.h = 0, 0
	d.frameCnt = 0
}

// Detect processes one frame sampled at time now and reports presence.
func (d *ActivityDetector) Detect(frame *image.RGBA, now time.Time) bool {
	if frame == nil {
		return false
	}
	fb := frame.Bounds()
	w, h := fb.Dx(), fb.Dy()
	if w <= 0 || h <= 0 {
		return false
	}
	gw := (w + activitySampleStride - 1) / activitySampleStride
	gh := (h + activitySampleStride - 1) / activitySampleStride
	n := gw * gh
	if d.prev == nil || w != d.w || h != d.h {
		d.prev = make([]byte, n)
		d.cur = make([]byte, n)
		d.w, d.h = w, h
		d.frameCnt = 0
	}
	pix := frame.Pix
	stride := frame.Stride
	idx := 0
	for y := 0; y < h; y += activitySampleStride {
		row := pix[y*stride : y*stride+w*4]
		for x := 0; x < w; x += activitySampleStride {
			i := x * 4
			r, g, b := row[i], row[i+1], row[i+2]
			d.cur[idx] = byte((77*uint32(r) + 150*uint32(g) + 29*uint32(b)) >> 8)
			idx++
		}
	}
	if d.frameCnt == 0 {
		copy(d.prev, d.cur)
		d.frameCnt++
		return false
	}
	changed := 0
	for i := 0; i < n; i++ {
		diff := int(d.cur[i]) - int(d.prev[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > activityPixelDelta {
			changed++
		}
	}
	copy(d.prev, d.cur)
	d.frameCnt++
	ratio := float64(changed) / float64(n)
	if d.logger != nil && d.frameCnt%activityLogEvery == 0 {
		d.logger.Debug("activity metrics", "ratio", ratio, "changed", changed, "samples", n)
	}
	return ratio >= d.threshold
}

var _ Detector = (*ActivityDetector)(nil)
