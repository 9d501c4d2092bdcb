package dataset

import (
	"fmt"

	"github.com/hupe1980/homr/feature"
)

// ImageRange locates one encoded image inside the shared image buffer.
type ImageRange struct {
	Offset int
	Length int

	buf []byte
}

// Bytes returns the encoded image. The slice aliases the shared buffer and
// must not be modified.
func (r ImageRange) Bytes() []byte {
	end := r.Offset + r.Length
	return r.buf[r.Offset:end:end]
}

// Example is one decoded record.
type Example struct {
	Image ImageRange
	Marks []int64
}

// columns resolves examples from the feature store.
type columns struct {
	n     int
	image *feature.Feature
	marks *feature.Feature
}

func newColumns(store *feature.Store, imageKey, marksKey string) (*columns, error) {
	c := &columns{n: store.Examples()}

	if f, ok := store.Feature(imageKey); ok {
		if f.Kind() != feature.KindBytes {
			return nil, &feature.KindMismatchError{Key: imageKey, Want: feature.KindBytes, Got: f.Kind()}
		}
		c.image = f
	}
	if f, ok := store.Feature(marksKey); ok {
		if f.Kind() != feature.KindInt64 {
			return nil, &feature.KindMismatchError{Key: marksKey, Want: feature.KindInt64, Got: f.Kind()}
		}
		c.marks = f
	}
	return c, nil
}

func (c *columns) example(i int) (Example, error) {
	if i < 0 || i >= c.n {
		return Example{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, c.n)
	}

	var ex Example
	if c.image != nil {
		start, end, err := c.image.Bounds(i)
		if err != nil {
			return Example{}, err
		}
		ex.Image = ImageRange{Offset: start, Length: end - start, buf: c.image.Bytes()}
	}

	ex.Marks = []int64{}
	if c.marks != nil {
		m, err := c.marks.ExampleInt64s(i)
		if err != nil {
			return Example{}, err
		}
		if len(m) > 0 {
			ex.Marks = m
		}
	}
	return ex, nil
}
