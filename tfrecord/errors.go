package tfrecord

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedStream is returned when a record field is shorter than declared.
	ErrTruncatedStream = errors.New("tfrecord: truncated stream")
	// ErrRecordTooLarge is returned when a declared payload length exceeds the configured maximum.
	ErrRecordTooLarge = errors.New("tfrecord: record too large")
	// ErrChecksumMismatch is matched by every ChecksumMismatchError.
	ErrChecksumMismatch = errors.New("tfrecord: checksum mismatch")
	// ErrUnknownCompression is returned for an unsupported compression type.
	ErrUnknownCompression = errors.New("tfrecord: unknown compression")
)

// ChecksumMismatchError is returned when checksum verification fails.
type ChecksumMismatchError struct {
	Field    string
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("tfrecord: %s checksum mismatch: expected 0x%08x, got 0x%08x", e.Field, e.Expected, e.Actual)
}

func (e *ChecksumMismatchError) Unwrap() error { return ErrChecksumMismatch }
