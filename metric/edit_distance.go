package metric

import "sync"

type options[T comparable] struct {
	ignore    T
	hasIgnore bool
}

// Option configures an EditDistance.
type Option[T comparable] func(*options[T])

// WithIgnore removes every occurrence of tok from both sequences before
// scoring. Padding tokens are the usual candidate.
func WithIgnore[T comparable](tok T) Option[T] {
	return func(o *options[T]) {
		o.ignore = tok
		o.hasIgnore = true
	}
}

// EditDistance accumulates normalized edit distances.
// It is safe for concurrent use.
type EditDistance[T comparable] struct {
	opts options[T]

	mu    sync.Mutex
	sum   float64
	count int
}

// NewEditDistance creates an empty accumulator.
func NewEditDistance[T comparable](optFns ...Option[T]) *EditDistance[T] {
	var opts options[T]
	for _, fn := range optFns {
		fn(&opts)
	}
	return &EditDistance[T]{opts: opts}
}

// Score returns the normalized distance of one pair without recording it:
// Levenshtein(pred, gold) / max(len(gold), 1), after filtering.
func (e *EditDistance[T]) Score(pred, gold []T) float64 {
	pred, gold = e.filter(pred), e.filter(gold)
	return float64(Levenshtein(pred, gold)) / float64(max(len(gold), 1))
}

// Add records one pair and returns its score.
func (e *EditDistance[T]) Add(pred, gold []T) float64 {
	s := e.Score(pred, gold)

	e.mu.Lock()
	e.sum += s
	e.count++
	e.mu.Unlock()

	return s
}

// Update records a batch of pairs. Batches of unequal size are rejected
// without recording anything.
func (e *EditDistance[T]) Update(preds, golds [][]T) error {
	if len(preds) != len(golds) {
		return &SizeMismatchError{Predictions: len(preds), Gold: len(golds)}
	}

	var sum float64
	for i := range preds {
		sum += e.Score(preds[i], golds[i])
	}

	e.mu.Lock()
	e.sum += sum
	e.count += len(preds)
	e.mu.Unlock()

	return nil
}

// Compute returns the mean score, or 0 when nothing has been recorded.
func (e *EditDistance[T]) Compute() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.count == 0 {
		return 0
	}
	return e.sum / float64(e.count)
}

// Percent returns Compute scaled to percent.
func (e *EditDistance[T]) Percent() float64 {
	return 100 * e.Compute()
}

// Count returns the number of recorded pairs.
func (e *EditDistance[T]) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.count
}

// Reset clears all recorded pairs.
func (e *EditDistance[T]) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sum, e.count = 0, 0
}

func (e *EditDistance[T]) filter(seq []T) []T {
	if !e.opts.hasIgnore {
		return seq
	}
	out := make([]T, 0, len(seq))
	for _, v := range seq {
		if v != e.opts.ignore {
			out = append(out, v)
		}
	}
	return out
}
