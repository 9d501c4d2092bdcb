package homr

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/homr/blobstore"
	"github.com/hupe1980/homr/dataset"
	"github.com/hupe1980/homr/resource"
)

// Corpus holds the loaded splits.
type Corpus struct {
	splits [len(splitNames)]*dataset.Dataset
}

// Split returns the dataset of s, or nil if it was not loaded.
func (c *Corpus) Split(s Split) *dataset.Dataset {
	if !s.valid() {
		return nil
	}
	return c.splits[s]
}

// Get is like Split but reports excluded splits as an error.
func (c *Corpus) Get(s Split) (*dataset.Dataset, error) {
	if ds := c.Split(s); ds != nil {
		return ds, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrSplitNotLoaded, s)
}

// Load makes sure every requested split file exists in the data directory,
// downloading missing ones from the remote, and decodes the splits in
// parallel.
func Load(ctx context.Context, optFns ...Option) (*Corpus, error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	for _, s := range o.splits {
		if !s.valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSplit, s)
		}
	}
	l := newLoader(o)

	var corpus Corpus
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range o.splits {
		g.Go(func() error {
			ds, err := l.load(ctx, s)
			if err != nil {
				return err
			}
			corpus.splits[s] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &corpus, nil
}

// LoadSplit loads a single split.
func LoadSplit(ctx context.Context, s Split, optFns ...Option) (*dataset.Dataset, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSplit, s)
	}
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	return newLoader(o).load(ctx, s)
}

// Fetch makes sure the requested split files exist locally without decoding
// them and returns their paths in split order.
func Fetch(ctx context.Context, optFns ...Option) ([]string, error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	l := newLoader(o)

	paths := make([]string, 0, len(o.splits))
	for _, s := range o.splits {
		if !s.valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSplit, s)
		}
		path, err := l.ensure(ctx, s)
		if err != nil {
			return nil, &LoadError{Split: s, cause: err}
		}
		paths = append(paths, path)
	}
	return paths, nil
}

type loader struct {
	opts   options
	local  *blobstore.LocalStore
	mirror *blobstore.Mirror
}

func newLoader(o options) *loader {
	l := &loader{
		opts:  o,
		local: blobstore.NewLocalStore(o.dataDir),
	}
	if o.remote != nil {
		l.mirror = blobstore.NewMirror(o.remote, l.local, blobstore.WithResourceController(o.rc))
	}
	return l
}

func (l *loader) ensure(ctx context.Context, s Split) (string, error) {
	name := s.FileName()

	ok, err := l.local.Exists(name)
	if err != nil {
		return "", err
	}
	path := l.local.Path(name)
	if ok {
		l.opts.logger.LogFetch(ctx, name, path, false, nil)
		return path, nil
	}
	if l.mirror == nil {
		return "", fmt.Errorf("%w: %s", blobstore.ErrNotFound, path)
	}

	start := time.Now()
	n, err := l.mirror.Fetch(ctx, name)
	l.opts.metricsCollector.RecordFetch(n, time.Since(start), err)
	l.opts.logger.LogFetch(ctx, name, path, err == nil, err)
	if err != nil {
		return "", err
	}
	return path, nil
}

func (l *loader) load(ctx context.Context, s Split) (ds *dataset.Dataset, err error) {
	start := time.Now()
	defer func() {
		n := 0
		if ds != nil {
			n = ds.Len()
		}
		l.opts.metricsCollector.RecordLoad(n, time.Since(start), err)
		l.opts.logger.LogLoad(ctx, s, n, time.Since(start), err)
		if err != nil {
			err = &LoadError{Split: s, cause: err}
		}
	}()

	path, err := l.ensure(ctx, s)
	if err != nil {
		return nil, err
	}

	release, err := acquire(ctx, l.opts.rc, path)
	if err != nil {
		return nil, err
	}
	defer release()

	return dataset.Open(ctx, path, l.opts.size(s), l.opts.datasetOpts...)
}

// acquire reserves a load slot and the file size in memory for the duration
// of one decode.
func acquire(ctx context.Context, rc *resource.Controller, path string) (func(), error) {
	if rc == nil {
		return func() {}, nil
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if err := rc.AcquireLoad(ctx); err != nil {
		return nil, err
	}
	if err := rc.AcquireMemory(ctx, fi.Size()); err != nil {
		rc.ReleaseLoad()
		return nil, err
	}
	return func() {
		rc.ReleaseMemory(fi.Size())
		rc.ReleaseLoad()
	}, nil
}
