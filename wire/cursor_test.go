package wire

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadVarint_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		size  int
	}{
		{"Zero", 0, 1},
		{"OneByteMax", 127, 1},
		{"TwoBytesMin", 128, 2},
		{"TwoBytesMax", 1<<14 - 1, 2},
		{"FiveBytesMin", 1 << 28, 5},
		{"FiveBytesMax", 1<<35 - 1, 5},
		{"TenBytesMin", 1 << 63, 10},
		{"MaxUint64", math.MaxUint64, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := binary.AppendUvarint(nil, tt.value)
			require.Len(t, enc, tt.size)

			c := NewCursor(enc)
			got, err := c.ReadVarint()
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
			assert.True(t, c.Done())
		})
	}
}

func TestReadVarint_Sequence(t *testing.T) {
	values := []uint64{3, 1, 4, 1 << 40, 0, 300}
	var buf []byte
	for _, v := range values {
		buf = binary.AppendUvarint(buf, v)
	}

	c := NewCursor(buf)
	for _, want := range values {
		got, err := c.ReadVarint()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, c.Remaining())
}

func TestReadVarint_Truncated(t *testing.T) {
	c := NewCursor([]byte{0x80, 0x80})
	_, err := c.ReadVarint()
	assert.ErrorIs(t, err, ErrTruncatedInput)
	assert.Equal(t, 0, c.Offset(), "failed read must not advance")

	_, err = NewCursor(nil).ReadVarint()
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestReadVarint_Overflow(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x02}
	_, err := NewCursor(buf).ReadVarint()
	assert.ErrorIs(t, err, ErrVarintOverflow)

	buf = []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	_, err = NewCursor(buf).ReadVarint()
	assert.ErrorIs(t, err, ErrVarintOverflow)
}

func TestExpectTag(t *testing.T) {
	buf := append([]byte{0x0A}, binary.AppendUvarint(nil, 300)...)
	buf = append(buf, 0x12, 0x05)

	c := NewCursor(buf)
	n, err := c.ExpectTag(0x0A)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), n)

	_, err = c.ExpectTag(0x1A)
	var tagErr *UnexpectedTagError
	require.ErrorAs(t, err, &tagErr)
	assert.ErrorIs(t, err, ErrUnexpectedTag)
	assert.Equal(t, byte(0x1A), tagErr.Want)
	assert.Equal(t, byte(0x12), tagErr.Got)
	assert.Equal(t, 3, tagErr.Offset)
	assert.Equal(t, 3, c.Offset())

	n, err = c.ExpectTag(0x12)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), n)
	assert.True(t, c.Done())

	_, err = c.ExpectTag(0x0A)
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestExpectTag_TruncatedHeader(t *testing.T) {
	c := NewCursor([]byte{0x0A, 0x80})
	_, err := c.ExpectTag(0x0A)
	assert.ErrorIs(t, err, ErrTruncatedInput)
	assert.Equal(t, 0, c.Offset())
}

func TestNext(t *testing.T) {
	c := NewCursor([]byte("image"))
	b, err := c.Next(3)
	require.NoError(t, err)
	assert.Equal(t, "ima", string(b))

	_, err = c.Next(3)
	assert.ErrorIs(t, err, ErrTruncatedInput)

	_, err = c.Next(-1)
	assert.ErrorIs(t, err, ErrTruncatedInput)

	b, err = c.Next(2)
	require.NoError(t, err)
	assert.Equal(t, "ge", string(b))

	b, err = c.Next(0)
	require.NoError(t, err)
	assert.Empty(t, b)

	_, err = c.Peek()
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func BenchmarkReadVarint(b *testing.B) {
	var buf []byte
	for i := range 1024 {
		buf = binary.AppendUvarint(buf, uint64(i*i))
	}
	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	for b.Loop() {
		c := NewCursor(buf)
		for !c.Done() {
			if _, err := c.ReadVarint(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
