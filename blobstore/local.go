package blobstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/homr/internal/mmap"
)

// LocalStore implements Store on a local directory.
type LocalStore struct {
	root string
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Root returns the store directory.
func (s *LocalStore) Root() string { return s.root }

// Path returns the file path of name.
func (s *LocalStore) Path(name string) string {
	return filepath.Join(s.root, name)
}

// Exists reports whether name is present.
func (s *LocalStore) Exists(name string) (bool, error) {
	_, err := os.Stat(s.Path(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Open maps the blob into memory.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	m, err := mmap.Open(s.Path(name))
	if err != nil {
		return nil, err
	}
	return &localBlob{m: m}, nil
}

// Create starts writing name. The content is published under name only
// when the returned blob is committed.
func (s *LocalStore) Create(ctx context.Context, name string) (*PendingBlob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	final := s.Path(name)
	if err := os.MkdirAll(filepath.Dir(final), 0o755); err != nil {
		return nil, err
	}
	f, err := os.CreateTemp(filepath.Dir(final), filepath.Base(final)+".*.tmp")
	if err != nil {
		return nil, err
	}
	return &PendingBlob{f: f, final: final}, nil
}

type localBlob struct {
	m *mmap.Mapping
}

func (b *localBlob) ReadAt(p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return b.m.ReadAt(p, off)
}

func (b *localBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	off, length, err := clampRange(b.Size(), off, length)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(b.m.Bytes()[off : off+length])), nil
}

func (b *localBlob) Close() error {
	return b.m.Close()
}

func (b *localBlob) Size() int64 {
	return int64(b.m.Size())
}

func (b *localBlob) Bytes() ([]byte, error) {
	return b.m.Bytes(), nil
}

// PendingBlob is a blob being written to a temporary file next to its
// final location.
type PendingBlob struct {
	f     *os.File
	final string
	done  bool
}

// Write appends p.
func (p *PendingBlob) Write(b []byte) (int, error) {
	return p.f.Write(b)
}

// WriteAt writes b at off.
func (p *PendingBlob) WriteAt(b []byte, off int64) (int, error) {
	return p.f.WriteAt(b, off)
}

// Commit flushes the file and renames it to its final name.
func (p *PendingBlob) Commit() error {
	if p.done {
		return os.ErrClosed
	}
	p.done = true

	if err := p.f.Sync(); err != nil {
		_ = p.f.Close()
		_ = os.Remove(p.f.Name())
		return err
	}
	if err := p.f.Close(); err != nil {
		_ = os.Remove(p.f.Name())
		return err
	}
	if err := os.Rename(p.f.Name(), p.final); err != nil {
		_ = os.Remove(p.f.Name())
		return err
	}
	return nil
}

// Abort discards the temporary file. It is a no-op after Commit.
func (p *PendingBlob) Abort() error {
	if p.done {
		return nil
	}
	p.done = true
	_ = p.f.Close()
	return os.Remove(p.f.Name())
}
