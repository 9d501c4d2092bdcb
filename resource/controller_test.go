package resource

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	require.NoError(t, c.AcquireMemory(context.Background(), 50))
	require.NoError(t, c.AcquireMemory(context.Background(), 40))
	assert.Equal(t, int64(90), c.MemoryUsage())

	assert.False(t, c.TryAcquireMemory(20))
	assert.Equal(t, int64(90), c.MemoryUsage())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireMemory(ctx, 20), context.DeadlineExceeded)

	c.ReleaseMemory(50)
	assert.Equal(t, int64(40), c.MemoryUsage())

	require.NoError(t, c.AcquireMemory(context.Background(), 20))
	assert.Equal(t, int64(60), c.MemoryUsage())
}

func TestControllerMemoryOverLimit(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	err := c.AcquireMemory(context.Background(), 101)
	assert.ErrorIs(t, err, ErrMemoryLimit)
	assert.Zero(t, c.MemoryUsage())
}

func TestControllerUnlimitedMemory(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.AcquireMemory(context.Background(), 1000))
	assert.Equal(t, int64(1000), c.MemoryUsage())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
}

func TestControllerLoads(t *testing.T) {
	c := NewController(Config{MaxParallelLoads: 2})

	require.NoError(t, c.AcquireLoad(context.Background()))
	require.NoError(t, c.AcquireLoad(context.Background()))
	assert.False(t, c.TryAcquireLoad())

	c.ReleaseLoad()
	assert.True(t, c.TryAcquireLoad())
	assert.Equal(t, int64(2), c.Config().MaxParallelLoads)
}

func TestNilController(t *testing.T) {
	var c *Controller

	require.NoError(t, c.AcquireMemory(context.Background(), 1<<40))
	assert.True(t, c.TryAcquireMemory(1))
	c.ReleaseMemory(1)
	assert.Zero(t, c.MemoryUsage())
	require.NoError(t, c.AcquireLoad(context.Background()))
	assert.True(t, c.TryAcquireLoad())
	c.ReleaseLoad()
	require.NoError(t, c.AcquireIO(context.Background(), 1<<20))
}

func TestAcquireIOAboveBurst(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1000})

	// 2.5 bursts: the first is free, the rest refill at 1000 B/s.
	start := time.Now()
	require.NoError(t, c.AcquireIO(context.Background(), 2500))
	assert.GreaterOrEqual(t, time.Since(start), time.Second)
}

func TestAcquireIOCancelled(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 10})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, c.AcquireIO(ctx, 100))
}

func TestRateLimitedWriter(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})
	data := bytes.Repeat([]byte("x"), 4096)

	var out bytes.Buffer
	n, err := io.Copy(NewRateLimitedWriter(context.Background(), &out, c), bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, data, out.Bytes())
}

func TestRateLimitedWriterCancelled(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 10})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	n, err := NewRateLimitedWriter(ctx, &out, c).Write([]byte("abc"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
	assert.Zero(t, out.Len())
}
