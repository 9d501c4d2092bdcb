package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/homr/feature"
	"github.com/hupe1980/homr/internal/mmap"
	"github.com/hupe1980/homr/tfrecord"
)

// SizeUnknown makes Load read records until the stream ends.
const SizeUnknown = -1

// Dataset is an immutable, randomly indexable collection of examples.
// It is safe for concurrent use.
type Dataset struct {
	src      Source
	store    *feature.Store
	onDemand bool
}

// New wraps an already decoded store.
func New(ctx context.Context, store *feature.Store, optFns ...Option) (*Dataset, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return newDataset(ctx, store, opts)
}

func newDataset(ctx context.Context, store *feature.Store, opts options) (*Dataset, error) {
	cols, err := newColumns(store, opts.imageKey, opts.marksKey)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{store: store, onDemand: opts.onDemand}
	if opts.onDemand {
		ds.src = &onDemand{cols: cols}
		return ds, nil
	}

	src, err := newEager(ctx, cols, opts.concurrency)
	if err != nil {
		return nil, err
	}
	ds.src = src
	return ds, nil
}

// Load decodes exactly size records from r. With SizeUnknown it reads until
// the stream ends at a record boundary. Any failure discards the partial
// result.
func Load(ctx context.Context, r io.Reader, size int, optFns ...Option) (*Dataset, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.hasCompression {
		rc, err := tfrecord.NewDecompressor(r, opts.compression)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		r = rc
	}

	store, err := decodeStream(ctx, tfrecord.NewReader(r, opts.recordOpts...), size)
	if err != nil {
		return nil, err
	}
	return newDataset(ctx, store, opts)
}

// Open memory-maps the record file at path and decodes it like Load.
// Compression is inferred from the extension unless WithCompression is given.
// The mapping is released before Open returns.
func Open(ctx context.Context, path string, size int, optFns ...Option) (*Dataset, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer m.Close()

	_ = m.Advise(mmap.AccessSequential)

	opts := append([]Option{WithCompression(tfrecord.CompressionFromPath(path))}, optFns...)
	ds, err := Load(ctx, m.Reader(), size, opts...)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return ds, nil
}

func decodeStream(ctx context.Context, r *tfrecord.Reader, size int) (*feature.Store, error) {
	store := feature.NewStore()
	dec := feature.NewDecoder(store)

	for i := 0; size < 0 || i < size; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		payload, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if size < 0 {
					break
				}
				return nil, fmt.Errorf("%w: expected %d records, stream ended after %d", tfrecord.ErrTruncatedStream, size, i)
			}
			return nil, fmt.Errorf("dataset: record %d: %w", i, err)
		}
		if err := dec.Decode(payload); err != nil {
			return nil, fmt.Errorf("dataset: record %d: %w", i, err)
		}
	}
	return store, nil
}

// Len returns the number of examples.
func (d *Dataset) Len() int { return d.src.Len() }

// Get returns example i.
func (d *Dataset) Get(i int) (Example, error) { return d.src.Get(i) }

// Store returns the underlying feature store.
func (d *Dataset) Store() *feature.Store { return d.store }

// OnDemand reports whether examples are recomputed on every Get.
func (d *Dataset) OnDemand() bool { return d.onDemand }
