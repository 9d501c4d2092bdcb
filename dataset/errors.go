package dataset

import "errors"

var (
	// ErrIndexOutOfRange is returned for indices outside [0, Len()).
	ErrIndexOutOfRange = errors.New("dataset: index out of range")
	// ErrInvalidSelection is returned when a selection refers to missing examples.
	ErrInvalidSelection = errors.New("dataset: selection exceeds source")
)
