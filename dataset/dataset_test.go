package dataset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/homr/feature"
	"github.com/hupe1980/homr/tfrecord"
	"github.com/hupe1980/homr/testutil"
)

func strategies() map[string][]Option {
	return map[string][]Option{
		"eager":     {WithConcurrency(3)},
		"on-demand": {WithDecodeOnDemand(true)},
	}
}

func TestLoadStrategiesAgree(t *testing.T) {
	corpus := testutil.NewRNG(4711).Corpus(10000, 32, 12)
	stream := corpus.Stream()

	for name, opts := range strategies() {
		t.Run(name, func(t *testing.T) {
			ds, err := Load(context.Background(), bytes.NewReader(stream), corpus.Len(), opts...)
			require.NoError(t, err)
			require.Equal(t, corpus.Len(), ds.Len())
			assert.Equal(t, name == "on-demand", ds.OnDemand())

			for i := range corpus.Len() {
				ex, err := ds.Get(i)
				require.NoError(t, err)
				require.NotNil(t, ex.Marks)
				assert.Equal(t, len(corpus.Images[i]), ex.Image.Length)
				assert.True(t, bytes.Equal(corpus.Images[i], ex.Image.Bytes()), "image %d", i)
				assert.Equal(t, len(corpus.Marks[i]), len(ex.Marks))
				if len(ex.Marks) > 0 {
					assert.Equal(t, corpus.Marks[i], ex.Marks)
				}
			}
		})
	}
}

func TestImageRangesAreContiguous(t *testing.T) {
	stream := testutil.Stream(
		testutil.HOMRExample([]byte("abc"), []int64{3, 1, 4}),
		testutil.NewExample().Bytes("image", []byte("de")).Build(),
	)

	ds, err := Load(context.Background(), bytes.NewReader(stream), 2)
	require.NoError(t, err)

	first, err := ds.Get(0)
	require.NoError(t, err)
	second, err := ds.Get(1)
	require.NoError(t, err)

	assert.Equal(t, 0, first.Image.Offset)
	assert.Equal(t, 3, first.Image.Length)
	assert.Equal(t, 3, second.Image.Offset)
	assert.Equal(t, 2, second.Image.Length)
	assert.Equal(t, []int64{3, 1, 4}, first.Marks)
	assert.Equal(t, []int64{}, second.Marks)

	marks, ok := ds.Store().Feature(DefaultMarksKey)
	require.True(t, ok)
	assert.Equal(t, []int{0, 3, 3}, marks.Index())
}

func TestGetOutOfRange(t *testing.T) {
	stream := testutil.Stream(testutil.HOMRExample([]byte("a"), nil))

	for name, opts := range strategies() {
		t.Run(name, func(t *testing.T) {
			ds, err := Load(context.Background(), bytes.NewReader(stream), 1, opts...)
			require.NoError(t, err)

			for _, i := range []int{-1, 1} {
				_, err := ds.Get(i)
				assert.ErrorIs(t, err, ErrIndexOutOfRange)
			}
		})
	}
}

func TestLoadFailures(t *testing.T) {
	good := testutil.HOMRExample([]byte("img"), []int64{1})
	bad := testutil.NewExample().Raw("weird", 0xFF, nil).Build()

	t.Run("short stream", func(t *testing.T) {
		ds, err := Load(context.Background(), bytes.NewReader(testutil.Stream(good)), 2)
		assert.Nil(t, ds)
		assert.ErrorIs(t, err, tfrecord.ErrTruncatedStream)
	})

	t.Run("bad payload", func(t *testing.T) {
		ds, err := Load(context.Background(), bytes.NewReader(testutil.Stream(good, bad)), 2)
		assert.Nil(t, ds)
		require.ErrorIs(t, err, feature.ErrUnsupportedKind)
		assert.Contains(t, err.Error(), "record 1")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ds, err := Load(ctx, bytes.NewReader(testutil.Stream(good)), 1)
		assert.Nil(t, ds)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("checksum", func(t *testing.T) {
		stream := testutil.Stream(good)
		stream[len(stream)-1] ^= 0xFF

		_, err := Load(context.Background(), bytes.NewReader(stream), 1, WithChecksumVerification(true))
		assert.ErrorIs(t, err, tfrecord.ErrChecksumMismatch)
	})

	t.Run("wrong marks kind", func(t *testing.T) {
		stream := testutil.Stream(testutil.NewExample().Bytes("marks", []byte("x")).Build())

		_, err := Load(context.Background(), bytes.NewReader(stream), 1)
		assert.ErrorIs(t, err, feature.ErrKindMismatch)
	})
}

func TestLoadSizeUnknown(t *testing.T) {
	corpus := testutil.NewRNG(1).Corpus(17, 8, 4)

	ds, err := Load(context.Background(), bytes.NewReader(corpus.Stream()), SizeUnknown)
	require.NoError(t, err)
	assert.Equal(t, 17, ds.Len())
}

func TestLoadIgnoresTrailingRecords(t *testing.T) {
	corpus := testutil.NewRNG(2).Corpus(5, 8, 4)

	ds, err := Load(context.Background(), bytes.NewReader(corpus.Stream()), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
}

func TestCustomKeys(t *testing.T) {
	stream := testutil.Stream(testutil.NewExample().Bytes("png", []byte("x")).Int64s("labels", 7).Build())

	ds, err := Load(context.Background(), bytes.NewReader(stream), 1, WithImageKey("png"), WithMarksKey("labels"))
	require.NoError(t, err)

	ex, err := ds.Get(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), ex.Image.Bytes())
	assert.Equal(t, []int64{7}, ex.Marks)
}

func TestOpen(t *testing.T) {
	corpus := testutil.NewRNG(4711).Corpus(50, 16, 8)
	dir := t.TempDir()

	plain := filepath.Join(dir, "homr.dev.tfrecord")
	require.NoError(t, os.WriteFile(plain, corpus.Stream(), 0o600))

	var compressed bytes.Buffer
	enc, err := zstd.NewWriter(&compressed)
	require.NoError(t, err)
	_, err = enc.Write(corpus.Stream())
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	zst := filepath.Join(dir, "homr.dev.tfrecord.zst")
	require.NoError(t, os.WriteFile(zst, compressed.Bytes(), 0o600))

	for _, path := range []string{plain, zst} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			ds, err := Open(context.Background(), path, corpus.Len(), WithDecodeOnDemand(true))
			require.NoError(t, err)
			assert.Equal(t, corpus.Len(), ds.Len())

			ex, err := ds.Get(corpus.Len() - 1)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(corpus.Images[corpus.Len()-1], ex.Image.Bytes()))
		})
	}

	_, err = Open(context.Background(), filepath.Join(dir, "missing.tfrecord"), 1)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConcurrentGet(t *testing.T) {
	corpus := testutil.NewRNG(9).Corpus(500, 16, 8)

	for name, opts := range strategies() {
		t.Run(name, func(t *testing.T) {
			ds, err := Load(context.Background(), bytes.NewReader(corpus.Stream()), corpus.Len(), opts...)
			require.NoError(t, err)

			var wg sync.WaitGroup
			for w := range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := w; i < ds.Len(); i += 8 {
						ex, err := ds.Get(i)
						assert.NoError(t, err)
						assert.Equal(t, len(corpus.Marks[i]), len(ex.Marks))
					}
				}()
			}
			wg.Wait()
		})
	}
}

func BenchmarkGet(b *testing.B) {
	corpus := testutil.NewRNG(4711).Corpus(4096, 256, 32)

	for name, opts := range strategies() {
		ds, err := Load(context.Background(), bytes.NewReader(corpus.Stream()), corpus.Len(), opts...)
		require.NoError(b, err)

		b.Run(name, func(b *testing.B) {
			i := 0
			for b.Loop() {
				_, _ = ds.Get(i % ds.Len())
				i++
			}
		})
	}
}
