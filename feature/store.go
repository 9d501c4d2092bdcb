package feature

import (
	"fmt"
	"slices"
)

// Feature is the columnar storage of one key.
type Feature struct {
	key      string
	kind     Kind
	bytes    []byte
	int64s   []int64
	float32s []float32
	index    []int
}

// Key returns the feature key.
func (f *Feature) Key() string { return f.key }

// Kind returns the element kind fixed at first sight.
func (f *Feature) Kind() Kind { return f.kind }

// Len returns the total number of stored elements.
func (f *Feature) Len() int {
	switch f.kind {
	case KindInt64:
		return len(f.int64s)
	case KindFloat32:
		return len(f.float32s)
	default:
		return len(f.bytes)
	}
}

// Examples returns the number of examples covered by the index.
func (f *Feature) Examples() int { return len(f.index) - 1 }

// Index returns the cumulative element counts, starting with the 0 sentinel.
// The returned slice must not be modified.
func (f *Feature) Index() []int { return f.index }

// Bounds returns the element range [start, end) of example i.
func (f *Feature) Bounds(i int) (start, end int, err error) {
	if i < 0 || i >= f.Examples() {
		return 0, 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, f.Examples())
	}
	return f.index[i], f.index[i+1], nil
}

// Bytes returns the shared byte buffer. It must not be modified.
func (f *Feature) Bytes() []byte { return f.bytes }

// Int64s returns the shared int64 buffer. It must not be modified.
func (f *Feature) Int64s() []int64 { return f.int64s }

// Float32s returns the shared float32 buffer. It must not be modified.
func (f *Feature) Float32s() []float32 { return f.float32s }

// ExampleBytes returns the bytes of example i as a view into the shared buffer.
func (f *Feature) ExampleBytes(i int) ([]byte, error) {
	if err := f.expect(KindBytes); err != nil {
		return nil, err
	}
	start, end, err := f.Bounds(i)
	if err != nil {
		return nil, err
	}
	return f.bytes[start:end:end], nil
}

// ExampleInt64s returns the integers of example i as a view into the shared buffer.
func (f *Feature) ExampleInt64s(i int) ([]int64, error) {
	if err := f.expect(KindInt64); err != nil {
		return nil, err
	}
	start, end, err := f.Bounds(i)
	if err != nil {
		return nil, err
	}
	return f.int64s[start:end:end], nil
}

// ExampleFloat32s returns the floats of example i as a view into the shared buffer.
func (f *Feature) ExampleFloat32s(i int) ([]float32, error) {
	if err := f.expect(KindFloat32); err != nil {
		return nil, err
	}
	start, end, err := f.Bounds(i)
	if err != nil {
		return nil, err
	}
	return f.float32s[start:end:end], nil
}

func (f *Feature) expect(k Kind) error {
	if f.kind != k {
		return &KindMismatchError{Key: f.key, Want: f.kind, Got: k}
	}
	return nil
}

func (f *Feature) truncate(examples int) {
	f.index = f.index[:examples+1]
	n := f.index[examples]
	switch f.kind {
	case KindInt64:
		f.int64s = f.int64s[:n]
	case KindFloat32:
		f.float32s = f.float32s[:n]
	default:
		f.bytes = f.bytes[:n]
	}
}

// Store holds every feature discovered while decoding a corpus.
//
// Writes happen record by record: values are appended, each key present in
// the record is closed once with CloseExample, and the record is finished
// with Commit or discarded with Rollback.
type Store struct {
	features map[string]*Feature
	keys     []string
	examples int

	closed  map[string]struct{}
	created int // keys[len(keys)-created:] were discovered in the pending record
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		features: make(map[string]*Feature),
		closed:   make(map[string]struct{}),
	}
}

// Examples returns the number of committed examples.
func (s *Store) Examples() int { return s.examples }

// Keys returns the feature keys in discovery order.
func (s *Store) Keys() []string { return slices.Clone(s.keys) }

// Feature returns the feature stored under key.
func (s *Store) Feature(key string) (*Feature, bool) {
	f, ok := s.features[key]
	return f, ok
}

// GetOrCreate returns the feature for key, creating it with kind hint if it
// does not exist yet. A new feature is back-filled with one empty entry per
// committed example. The hint is ignored for existing keys.
func (s *Store) GetOrCreate(key string, hint Kind) *Feature {
	if f, ok := s.features[key]; ok {
		return f
	}
	f := &Feature{
		key:   key,
		kind:  hint,
		index: make([]int, s.examples+1, s.examples+2),
	}
	s.features[key] = f
	s.keys = append(s.keys, key)
	s.created++
	return f
}

// AppendBytes appends data to the pending example of key.
func (s *Store) AppendBytes(key string, data []byte) error {
	f, err := s.writable(key, KindBytes)
	if err != nil {
		return err
	}
	f.bytes = append(f.bytes, data...)
	return nil
}

// AppendInt64s appends values to the pending example of key.
func (s *Store) AppendInt64s(key string, values ...int64) error {
	f, err := s.writable(key, KindInt64)
	if err != nil {
		return err
	}
	f.int64s = append(f.int64s, values...)
	return nil
}

// AppendFloat32s appends values to the pending example of key.
func (s *Store) AppendFloat32s(key string, values ...float32) error {
	f, err := s.writable(key, KindFloat32)
	if err != nil {
		return err
	}
	f.float32s = append(f.float32s, values...)
	return nil
}

// CloseExample ends the pending example of key by recording its current
// element total in the index.
func (s *Store) CloseExample(key string) error {
	f, ok := s.features[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if _, dup := s.closed[key]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	s.closed[key] = struct{}{}
	f.index = append(f.index, f.Len())
	return nil
}

// Commit finishes the pending record. Keys the record did not close get a
// zero-width entry, and anything appended to them without CloseExample is
// dropped.
func (s *Store) Commit() {
	for _, key := range s.keys {
		if _, ok := s.closed[key]; ok {
			continue
		}
		f := s.features[key]
		f.truncate(s.examples)
		f.index = append(f.index, f.index[s.examples])
	}
	s.examples++
	s.reset()
}

// Rollback discards everything appended since the last Commit, including
// keys discovered in the pending record.
func (s *Store) Rollback() {
	for _, key := range s.keys[len(s.keys)-s.created:] {
		delete(s.features, key)
	}
	s.keys = s.keys[:len(s.keys)-s.created]
	for _, f := range s.features {
		f.truncate(s.examples)
	}
	s.reset()
}

func (s *Store) writable(key string, k Kind) (*Feature, error) {
	f, ok := s.features[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if f.kind != k {
		return nil, &KindMismatchError{Key: key, Want: f.kind, Got: k}
	}
	if _, dup := s.closed[key]; dup {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	return f, nil
}

func (s *Store) reset() {
	clear(s.closed)
	s.created = 0
}
