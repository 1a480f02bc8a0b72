package debug

// Debug diagnostics logger. Started only when config.Debug is true.
// Emits goroutine count, heap stats and RSS at a fixed interval to rule out
// leaks in the capture and session loops.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

const defaultInterval = 2 * time.Second

// Start launches a ticker goroutine that logs runtime diagnostics.
// It is lightweight; disable by running without the debug flag.
func Start(logger *slog.Logger) { StartWithInterval(defaultInterval, logger) }

// StartWithInterval is Start with a custom cadence.
func StartWithInterval(interval time.Duration, logger *slog.Logger) {
	if logger == nil {
		return
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		var rssErrLogged bool
		for range t.C {
			metrics.Read(samples)
			goroutines := samples[0].Value.Uint64()
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss, err := workingSet()
			if err != nil && !rssErrLogged {
				logger.Warn("diagnostics: working set query failed", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			logger.Info("diagnostics",
				slog.Uint64("goroutines", goroutines),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("stack_inuse", uint64(ms.StackInuse)),
				slog.Uint64("rss", rss),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}
