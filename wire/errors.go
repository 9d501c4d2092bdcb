package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput is returned when the buffer ends before a declared length or varint.
	ErrTruncatedInput = errors.New("wire: truncated input")
	// ErrVarintOverflow is returned when a varint does not fit into 64 bits.
	ErrVarintOverflow = errors.New("wire: varint overflows 64 bits")
	// ErrUnexpectedTag is matched by every UnexpectedTagError.
	ErrUnexpectedTag = errors.New("wire: unexpected tag")
)

// UnexpectedTagError reports a structural byte that did not match the expected tag.
type UnexpectedTagError struct {
	Offset int
	Want   byte
	Got    byte
}

func (e *UnexpectedTagError) Error() string {
	return fmt.Sprintf("wire: unexpected tag 0x%02x at offset %d (want 0x%02x)", e.Got, e.Offset, e.Want)
}

func (e *UnexpectedTagError) Unwrap() error { return ErrUnexpectedTag }
