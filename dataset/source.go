package dataset

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Source produces examples by position.
type Source interface {
	Len() int
	Get(i int) (Example, error)
}

// onDemand recomputes every example from the feature index.
type onDemand struct {
	cols *columns
}

func (s *onDemand) Len() int { return s.cols.n }

func (s *onDemand) Get(i int) (Example, error) { return s.cols.example(i) }

// eager holds every example materialized at construction.
type eager struct {
	examples []Example
}

const eagerChunk = 4096

func newEager(ctx context.Context, cols *columns, concurrency int) (*eager, error) {
	examples := make([]Example, cols.n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(concurrency, 1))

	for lo := 0; lo < cols.n; lo += eagerChunk {
		hi := min(lo+eagerChunk, cols.n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				ex, err := cols.example(i)
				if err != nil {
					return fmt.Errorf("dataset: example %d: %w", i, err)
				}
				examples[i] = ex
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &eager{examples: examples}, nil
}

func (s *eager) Len() int { return len(s.examples) }

func (s *eager) Get(i int) (Example, error) {
	if i < 0 || i >= len(s.examples) {
		return Example{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(s.examples))
	}
	return s.examples[i], nil
}
