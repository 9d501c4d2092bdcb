package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/homr/resource"
)

// Mirror copies blobs from a remote Store into a LocalStore on demand.
type Mirror struct {
	remote Store
	local  *LocalStore
	rc     *resource.Controller
}

// MirrorOption configures a Mirror.
type MirrorOption func(*Mirror)

// WithResourceController throttles downloads with the controller's IO limit.
func WithResourceController(rc *resource.Controller) MirrorOption {
	return func(m *Mirror) {
		m.rc = rc
	}
}

// NewMirror creates a mirror from remote into local.
func NewMirror(remote Store, local *LocalStore, optFns ...MirrorOption) *Mirror {
	m := &Mirror{remote: remote, local: local}
	for _, fn := range optFns {
		fn(m)
	}
	return m
}

// Local returns the destination store.
func (m *Mirror) Local() *LocalStore { return m.local }

// Ensure returns the local path of name, downloading it first if it is not
// present. fetched reports whether a download happened.
func (m *Mirror) Ensure(ctx context.Context, name string) (path string, fetched bool, err error) {
	ok, err := m.local.Exists(name)
	if err != nil {
		return "", false, err
	}
	if ok {
		return m.local.Path(name), false, nil
	}
	if _, err := m.Fetch(ctx, name); err != nil {
		return "", false, err
	}
	return m.local.Path(name), true, nil
}

// Fetch downloads name unconditionally, replacing any local copy, and
// returns the number of bytes written.
func (m *Mirror) Fetch(ctx context.Context, name string) (n int64, err error) {
	pending, err := m.local.Create(ctx, name)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = pending.Abort()
		}
	}()

	if d, ok := m.remote.(Downloader); ok {
		n, err = d.Download(ctx, name, &limitedWriterAt{ctx: ctx, w: pending, rc: m.rc})
	} else {
		n, err = m.stream(ctx, name, pending)
	}
	if err != nil {
		return n, fmt.Errorf("blobstore: fetch %s: %w", name, err)
	}
	return n, pending.Commit()
}

func (m *Mirror) stream(ctx context.Context, name string, w io.Writer) (int64, error) {
	blob, err := m.remote.Open(ctx, name)
	if err != nil {
		return 0, err
	}
	defer blob.Close()

	body, err := blob.ReadRange(ctx, 0, -1)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	n, err := io.Copy(resource.NewRateLimitedWriter(ctx, w, m.rc), body)
	if err != nil {
		return n, err
	}
	if size := blob.Size(); size >= 0 && n != size {
		return n, fmt.Errorf("%w: %d of %d bytes", ErrIncomplete, n, size)
	}
	return n, nil
}

type limitedWriterAt struct {
	ctx context.Context
	w   io.WriterAt
	rc  *resource.Controller
}

func (l *limitedWriterAt) WriteAt(p []byte, off int64) (int, error) {
	if err := l.rc.AcquireIO(l.ctx, len(p)); err != nil {
		return 0, err
	}
	return l.w.WriteAt(p, off)
}

// IsNotFound reports whether err means a blob does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
