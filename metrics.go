package goalseek

import (
	"errors"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting seek metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSeek is called after each seek. iterations counts every compute
	// call, skipped the ones that returned NaN or Inf. err is nil on convergence.
	RecordSeek(iterations, skipped int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSeek(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use, so one collector can serve SeekAll.
type BasicMetricsCollector struct {
	SeekCount        atomic.Int64
	ConvergedCount   atomic.Int64
	NotFoundCount    atomic.Int64
	ErrorCount       atomic.Int64
	IterationsTotal  atomic.Int64
	SkippedTotal     atomic.Int64
	SeekTotalNanos   atomic.Int64
	MaxIterationsRun atomic.Int64
}

// RecordSeek implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSeek(iterations, skipped int, duration time.Duration, err error) {
	b.SeekCount.Add(1)
	b.IterationsTotal.Add(int64(iterations))
	b.SkippedTotal.Add(int64(skipped))
	b.SeekTotalNanos.Add(duration.Nanoseconds())

	switch {
	case err == nil:
		b.ConvergedCount.Add(1)
	case errors.Is(err, ErrGoalNotFound):
		b.NotFoundCount.Add(1)
	default:
		b.ErrorCount.Add(1)
	}

	for {
		cur := b.MaxIterationsRun.Load()
		if int64(iterations) <= cur || b.MaxIterationsRun.CompareAndSwap(cur, int64(iterations)) {
			break
		}
	}
}

// BasicMetricsStats is a point-in-time copy of BasicMetricsCollector.
type BasicMetricsStats struct {
	SeekCount        int64
	ConvergedCount   int64
	NotFoundCount    int64
	ErrorCount       int64
	IterationsTotal  int64
	SkippedTotal     int64
	AvgIterations    int64
	AvgNanos         int64
	MaxIterationsRun int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	count := b.SeekCount.Load()
	stats := BasicMetricsStats{
		SeekCount:        count,
		ConvergedCount:   b.ConvergedCount.Load(),
		NotFoundCount:    b.NotFoundCount.Load(),
		ErrorCount:       b.ErrorCount.Load(),
		IterationsTotal:  b.IterationsTotal.Load(),
		SkippedTotal:     b.SkippedTotal.Load(),
		MaxIterationsRun: b.MaxIterationsRun.Load(),
	}
	if count > 0 {
		stats.AvgIterations = stats.IterationsTotal / count
		stats.AvgNanos = b.SeekTotalNanos.Load() / count
	}
	return stats
}
