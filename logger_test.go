package homr

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	logger.LogLoad(ctx, Dev, 5027, time.Second, nil)
	assert.Contains(t, buf.String(), `"msg":"split loaded"`)
	assert.Contains(t, buf.String(), `"split":"dev"`)
	assert.Contains(t, buf.String(), `"examples":5027`)

	buf.Reset()
	logger.LogFetch(ctx, "homr.dev.tfrecord", "/data/homr.dev.tfrecord", true, nil)
	assert.Contains(t, buf.String(), `"msg":"file downloaded"`)

	buf.Reset()
	logger.LogFetch(ctx, "homr.dev.tfrecord", "", false, errors.New("boom"))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)

	buf.Reset()
	logger.WithSplit(Test).LogEvaluate(ctx, 3, 12.5, nil)
	assert.Contains(t, buf.String(), `"split":"test"`)
	assert.Contains(t, buf.String(), `"edit_distance":12.5`)
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	logger.LogLoad(context.Background(), Train, 0, 0, errors.New("ignored"))
}

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	m.RecordLoad(10, 2*time.Millisecond, nil)
	m.RecordLoad(0, 4*time.Millisecond, errors.New("fail"))
	m.RecordFetch(1024, time.Millisecond, nil)
	m.RecordEvaluate(7, time.Millisecond, nil)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.LoadCount)
	assert.Equal(t, int64(1), stats.LoadErrors)
	assert.Equal(t, int64(10), stats.LoadExamples)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.LoadAvgNanos)
	assert.Equal(t, int64(1024), stats.FetchBytes)
	assert.Equal(t, int64(7), stats.EvaluateExamples)

	var _ MetricsCollector = NoopMetricsCollector{}
}
