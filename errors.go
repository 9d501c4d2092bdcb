package homr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSplit is returned for a split name other than train, dev or test.
	ErrUnknownSplit = errors.New("homr: unknown split")

	// ErrSplitNotLoaded is returned when a split was excluded with WithSplits.
	ErrSplitNotLoaded = errors.New("homr: split not loaded")

	// ErrNoGold is returned by Evaluate when the gold dataset is nil.
	ErrNoGold = errors.New("homr: nil gold dataset")
)

// LoadError reports which split failed to load.
//
// The underlying error can be accessed via errors.Unwrap.
type LoadError struct {
	Split Split
	cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("homr: load %s: %v", e.Split, e.cause)
}

func (e *LoadError) Unwrap() error { return e.cause }
