package debug

// Memory logger enabled when config.Debug is true. Decoded photos are large
// and every resize allocates a new rendition, so heap figures and the peak
// resident set are logged side by side to spot renditions that are never
// released.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// StartMemLogger launches a goroutine that logs memory stats every interval.
// It only reads runtime counters and never touches UI or session state.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var rssErrLogged bool
		for range ticker.C {
			peak, err := peakResidentSet()
			if err != nil && !rssErrLogged {
				logger.Warn("memlog: resident set query failed", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			logMemStats(logger, peak)
		}
	}()
}

// logMemStats writes one memstats record. maxRSS is the peak resident set in
// bytes, not the current one.
func logMemStats(logger *slog.Logger, maxRSS uint64) {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	logger.Debug("memstats",
		slog.Uint64("goroutines", samples[0].Value.Uint64()),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("heap_inuse", ms.HeapInuse),
		slog.Uint64("heap_sys", ms.HeapSys),
		slog.Uint64("next_gc", ms.NextGC),
		slog.Uint64("max_rss", maxRSS),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
	)
}
