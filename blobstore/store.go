package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrIncomplete is returned when a transfer ends before the advertised size.
var ErrIncomplete = errors.New("blobstore: incomplete transfer")

// Store opens immutable blobs by name.
type Store interface {
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the size of the blob in bytes, or -1 if unknown.
	Size() int64
	// ReadRange streams length bytes starting at off. A negative length
	// reads to the end of the blob.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
}

// Mappable is an optional interface for Blobs that support memory mapping.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// Downloader is an optional interface for Stores that can transfer a whole
// blob faster than a single sequential stream, e.g. with parallel ranged
// requests.
type Downloader interface {
	Download(ctx context.Context, name string, w io.WriterAt) (int64, error)
}

// clampRange resolves a ReadRange request against a blob of the given size.
func clampRange(size, off, length int64) (int64, int64, error) {
	if off < 0 || off > size {
		return 0, 0, io.EOF
	}
	if length < 0 || off+length > size {
		length = size - off
	}
	return off, length, nil
}
