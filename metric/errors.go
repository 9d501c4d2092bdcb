package metric

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch is matched by every SizeMismatchError.
var ErrSizeMismatch = errors.New("metric: predictions and gold differ in size")

// SizeMismatchError is returned when the number of predictions differs from
// the number of gold sequences.
type SizeMismatchError struct {
	Predictions int
	Gold        int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("metric: %d predictions for %d gold sequences", e.Predictions, e.Gold)
}

func (e *SizeMismatchError) Unwrap() error { return ErrSizeMismatch }
