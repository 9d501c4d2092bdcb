package testutil

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/homr/internal/hash"
)

func TestAppendVarint(t *testing.T) {
	tests := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xAC, 0x02}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AppendVarint(nil, tt.v), "v=%d", tt.v)
	}
}

func TestHOMRExampleLayout(t *testing.T) {
	got := HOMRExample([]byte{0xDE, 0xAD}, []int64{3, 1, 4})

	want := []byte{
		0x0A, 0x23, // features
		0x0A, 0x0F, // entry
		0x0A, 0x05, 'i', 'm', 'a', 'g', 'e',
		0x12, 0x06, 0x0A, 0x04, 0x0A, 0x02, 0xDE, 0xAD,
		0x0A, 0x10, // entry
		0x0A, 0x05, 'm', 'a', 'r', 'k', 's',
		0x12, 0x07, 0x1A, 0x05, 0x0A, 0x03, 0x03, 0x01, 0x04,
	}
	assert.Equal(t, want, got)
}

func TestEmptyLists(t *testing.T) {
	got := NewExample().Bytes("image", nil).Int64s("marks").Float32s("f").Build()
	// Each empty list has a zero outer length directly after its kind tag.
	assert.Contains(t, string(got), string([]byte{0x12, 0x02, 0x0A, 0x00}))
	assert.Contains(t, string(got), string([]byte{0x12, 0x02, 0x1A, 0x00}))
	assert.Contains(t, string(got), string([]byte{0x12, 0x02, 0x12, 0x00}))
}

func TestFrame(t *testing.T) {
	payload := []byte("hello")
	framed := Frame(payload)

	require.Len(t, framed, 8+4+len(payload)+4)
	assert.Equal(t, uint64(len(payload)), binary.LittleEndian.Uint64(framed[:8]))
	assert.Equal(t, hash.MaskedCRC32C(framed[:8]), binary.LittleEndian.Uint32(framed[8:12]))
	assert.Equal(t, payload, framed[12:17])
	assert.Equal(t, hash.MaskedCRC32C(payload), binary.LittleEndian.Uint32(framed[17:]))
}

func TestCorpusDeterministic(t *testing.T) {
	a := NewRNG(4711).Corpus(10, 16, 8)
	b := NewRNG(4711).Corpus(10, 16, 8)

	assert.Equal(t, a.Payloads, b.Payloads)
	assert.Equal(t, 10, a.Len())
	assert.Equal(t, a.Stream(), b.Stream())
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Bytes(10)
	rng.Reset()
	v2 := rng.Bytes(10)
	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}
