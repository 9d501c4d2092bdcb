package homr

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLoad is called after each split load.
	// examples is the number of decoded examples, err is nil if successful.
	RecordLoad(examples int, duration time.Duration, err error)

	// RecordFetch is called after each file download attempt.
	RecordFetch(bytes int64, duration time.Duration, err error)

	// RecordEvaluate is called after each evaluation.
	RecordEvaluate(examples int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordFetch(int64, time.Duration, error)  {}
func (NoopMetricsCollector) RecordEvaluate(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
	LoadExamples     atomic.Int64
	LoadTotalNanos   atomic.Int64
	FetchCount       atomic.Int64
	FetchErrors      atomic.Int64
	FetchBytes       atomic.Int64
	EvaluateCount    atomic.Int64
	EvaluateErrors   atomic.Int64
	EvaluateExamples atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(examples int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadExamples.Add(int64(examples))
}

// RecordFetch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFetch(bytes int64, _ time.Duration, err error) {
	b.FetchCount.Add(1)
	b.FetchBytes.Add(bytes)
	if err != nil {
		b.FetchErrors.Add(1)
	}
}

// RecordEvaluate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluate(examples int, _ time.Duration, err error) {
	b.EvaluateCount.Add(1)
	if err != nil {
		b.EvaluateErrors.Add(1)
		return
	}
	b.EvaluateExamples.Add(int64(examples))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:        b.LoadCount.Load(),
		LoadErrors:       b.LoadErrors.Load(),
		LoadExamples:     b.LoadExamples.Load(),
		LoadAvgNanos:     b.getAvgLoadNanos(),
		FetchCount:       b.FetchCount.Load(),
		FetchErrors:      b.FetchErrors.Load(),
		FetchBytes:       b.FetchBytes.Load(),
		EvaluateCount:    b.EvaluateCount.Load(),
		EvaluateErrors:   b.EvaluateErrors.Load(),
		EvaluateExamples: b.EvaluateExamples.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgLoadNanos() int64 {
	count := b.LoadCount.Load()
	if count == 0 {
		return 0
	}
	return b.LoadTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount        int64
	LoadErrors       int64
	LoadExamples     int64
	LoadAvgNanos     int64
	FetchCount       int64
	FetchErrors      int64
	FetchBytes       int64
	EvaluateCount    int64
	EvaluateErrors   int64
	EvaluateExamples int64
}
