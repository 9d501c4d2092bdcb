package dataset

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Indexed is a finite collection addressable by position.
type Indexed[T any] interface {
	Len() int
	Get(i int) (T, error)
}

// Mapped applies a function to each element of its source on access.
type Mapped[T, U any] struct {
	src Indexed[T]
	fn  func(T) (U, error)
}

// Map returns a lazy view of src transformed by fn. Nothing is cached; fn
// runs on every Get. Views compose: Map(Map(src, f), g).
func Map[T, U any](src Indexed[T], fn func(T) (U, error)) *Mapped[T, U] {
	return &Mapped[T, U]{src: src, fn: fn}
}

// Len returns the length of the source.
func (m *Mapped[T, U]) Len() int { return m.src.Len() }

// Get returns fn applied to element i of the source.
func (m *Mapped[T, U]) Get(i int) (U, error) {
	v, err := m.src.Get(i)
	if err != nil {
		var zero U
		return zero, err
	}
	return m.fn(v)
}

// All iterates src in order. The sequence may be ranged over repeatedly and
// stops after yielding the first error.
func All[T any](src Indexed[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i := range src.Len() {
			v, err := src.Get(i)
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Filter returns the positions of the elements keep accepts.
func Filter[T any](src Indexed[T], keep func(T) bool) (*roaring.Bitmap, error) {
	ids := roaring.New()
	for i := range src.Len() {
		v, err := src.Get(i)
		if err != nil {
			return nil, err
		}
		if keep(v) {
			ids.Add(uint32(i))
		}
	}
	return ids, nil
}

// Selection is a subset view of a source in ascending position order.
type Selection[T any] struct {
	src Indexed[T]
	ids *roaring.Bitmap
}

// Select returns the elements of src at the positions in ids.
func Select[T any](src Indexed[T], ids *roaring.Bitmap) (*Selection[T], error) {
	if !ids.IsEmpty() && int(ids.Maximum()) >= src.Len() {
		return nil, fmt.Errorf("%w: position %d, length %d", ErrInvalidSelection, ids.Maximum(), src.Len())
	}
	return &Selection[T]{src: src, ids: ids}, nil
}

// Len returns the number of selected elements.
func (s *Selection[T]) Len() int { return int(s.ids.GetCardinality()) }

// Get returns the i-th selected element.
func (s *Selection[T]) Get(i int) (T, error) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, s.Len())
	}
	pos, err := s.ids.Select(uint32(i))
	if err != nil {
		var zero T
		return zero, err
	}
	return s.src.Get(int(pos))
}

// Positions returns the selected source positions.
func (s *Selection[T]) Positions() []uint32 { return s.ids.ToArray() }
