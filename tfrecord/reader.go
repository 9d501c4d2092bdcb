package tfrecord

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/hupe1980/homr/internal/hash"
)

const (
	lengthSize = 8
	crcSize    = 4
	headerSize = lengthSize + crcSize
)

// Reader reads framed records sequentially from an io.Reader.
// It is not safe for concurrent use.
type Reader struct {
	r      io.Reader
	opts   options
	header [headerSize]byte
	footer [crcSize]byte
	count  int
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader, optFns ...Option) *Reader {
	opts := options{maxRecordSize: DefaultMaxRecordSize}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Reader{r: r, opts: opts}
}

// Count returns the number of records read so far.
func (r *Reader) Count() int { return r.count }

// Next reads the next record and returns its payload in a freshly allocated
// buffer. It returns io.EOF only if the stream ends exactly at a record boundary.
func (r *Reader) Next() ([]byte, error) {
	n, err := io.ReadFull(r.r, r.header[:])
	if err != nil {
		if n == 0 && errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, r.truncated("header", err)
	}

	length := binary.LittleEndian.Uint64(r.header[:lengthSize])
	if r.opts.verifyChecksums {
		if err := verify("length", r.header[:lengthSize], r.header[lengthSize:]); err != nil {
			return nil, err
		}
	}
	if length > r.opts.maxRecordSize {
		return nil, fmt.Errorf("%w: record %d declares %d bytes (max %d)", ErrRecordTooLarge, r.count, length, r.opts.maxRecordSize)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r.r, payload); err != nil {
		return nil, r.truncated("payload", err)
	}

	if _, err := io.ReadFull(r.r, r.footer[:]); err != nil {
		return nil, r.truncated("payload checksum", err)
	}
	if r.opts.verifyChecksums {
		if err := verify("payload", payload, r.footer[:]); err != nil {
			return nil, err
		}
	}

	r.count++
	return payload, nil
}

// Records yields exactly n payloads. Reaching the end of the stream early is
// reported as ErrTruncatedStream. Iteration stops after the first error.
func (r *Reader) Records(n int) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for range n {
			payload, err := r.Next()
			if errors.Is(err, io.EOF) {
				err = fmt.Errorf("%w: expected %d records, stream ended after %d", ErrTruncatedStream, n, r.count)
			}
			if !yield(payload, err) || err != nil {
				return
			}
		}
	}
}

func (r *Reader) truncated(field string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: record %d: short %s", ErrTruncatedStream, r.count, field)
	}
	return fmt.Errorf("tfrecord: record %d: reading %s: %w", r.count, field, err)
}

func verify(field string, data, stored []byte) error {
	expected := binary.LittleEndian.Uint32(stored)
	actual := hash.MaskedCRC32C(data)
	if expected != actual {
		return &ChecksumMismatchError{Field: field, Expected: expected, Actual: actual}
	}
	return nil
}
