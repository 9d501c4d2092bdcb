package feature

import (
	"errors"
	"fmt"
)

var (
	// ErrKindMismatch is matched by every KindMismatchError.
	ErrKindMismatch = errors.New("feature: kind mismatch")
	// ErrDuplicateKey is returned when a key occurs twice in one record.
	ErrDuplicateKey = errors.New("feature: duplicate key in record")
	// ErrIndexOutOfRange is returned for example indices outside [0, Examples()).
	ErrIndexOutOfRange = errors.New("feature: example index out of range")
	// ErrUnknownKey is returned when a key has not been discovered.
	ErrUnknownKey = errors.New("feature: unknown key")
	// ErrLengthMismatch is matched by every LengthMismatchError.
	ErrLengthMismatch = errors.New("feature: length mismatch")
	// ErrUnsupportedKind is matched by every UnsupportedKindError.
	ErrUnsupportedKind = errors.New("feature: unsupported kind")
	// ErrFloatAlignment is returned when a packed float span is not a multiple of 4 bytes.
	ErrFloatAlignment = errors.New("feature: float span not a multiple of 4")
)

// KindMismatchError is returned when a key is used with a kind other than
// the one fixed at its first sight.
type KindMismatchError struct {
	Key  string
	Want Kind
	Got  Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("feature: key %q has kind %s, got %s", e.Key, e.Want, e.Got)
}

func (e *KindMismatchError) Unwrap() error { return ErrKindMismatch }

// LengthMismatchError is returned when a declared length disagrees with the
// bytes actually available.
type LengthMismatchError struct {
	What     string
	Declared uint64
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("feature: %s declares %d bytes, %d available", e.What, e.Declared, e.Actual)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// UnsupportedKindError is returned for a value whose list tag is not one of
// TagBytes, TagInt64 or TagFloat32.
type UnsupportedKindError struct {
	Key string
	Tag byte
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("feature: key %q has unsupported value tag 0x%02x", e.Key, e.Tag)
}

func (e *UnsupportedKindError) Unwrap() error { return ErrUnsupportedKind }
