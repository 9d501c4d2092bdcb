package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bytes returns n random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := make([]byte, n)
	_, _ = r.rand.Read(b)
	return b
}

// Marks returns n mark ids drawn uniformly from [0, vocabSize).
func (r *RNG) Marks(n, vocabSize int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	marks := make([]int64, n)
	for i := range marks {
		marks[i] = int64(r.rand.Intn(vocabSize))
	}
	return marks
}

// Corpus is a synthetic set of records along with the values encoded in them.
type Corpus struct {
	Images   [][]byte
	Marks    [][]int64
	Payloads [][]byte
}

// Stream returns the framed record stream of the corpus.
func (c *Corpus) Stream() []byte {
	return Stream(c.Payloads...)
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	return len(c.Payloads)
}

// Corpus generates n records with images up to maxImage bytes and up to
// maxMarks marks each. Image and mark lengths may be zero.
func (r *RNG) Corpus(n, maxImage, maxMarks int) *Corpus {
	c := &Corpus{
		Images:   make([][]byte, n),
		Marks:    make([][]int64, n),
		Payloads: make([][]byte, n),
	}
	for i := range n {
		img := r.Bytes(r.Intn(maxImage + 1))
		marks := r.Marks(r.Intn(maxMarks+1), 128)
		c.Images[i] = img
		c.Marks[i] = marks
		c.Payloads[i] = HOMRExample(img, marks)
	}
	return c
}
