package wire

import "fmt"

// MaxVarintLen is the maximum encoded length of a 64-bit varint.
const MaxVarintLen = 10

// Cursor provides bounds-checked sequential reads over an immutable buffer.
type Cursor struct {
	b   []byte
	off int
}

// NewCursor returns a cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.b) - c.off }

// Done reports whether the whole buffer has been consumed.
func (c *Cursor) Done() bool { return c.off >= len(c.b) }

// Peek returns the byte at the current position without consuming it.
func (c *Cursor) Peek() (byte, error) {
	if c.off >= len(c.b) {
		return 0, fmt.Errorf("%w: peek at offset %d", ErrTruncatedInput, c.off)
	}
	return c.b[c.off], nil
}

// Next consumes n bytes and returns them as a view into the buffer.
func (c *Cursor) Next(n int) ([]byte, error) {
	if n < 0 || n > len(c.b)-c.off {
		return nil, fmt.Errorf("%w: %d bytes at offset %d, %d left", ErrTruncatedInput, n, c.off, len(c.b)-c.off)
	}
	out := c.b[c.off : c.off+n]
	c.off += n
	return out, nil
}

// ReadVarint decodes one base-128 varint.
func (c *Cursor) ReadVarint() (uint64, error) {
	var v uint64
	start := c.off
	for i := 0; ; i++ {
		if c.off >= len(c.b) {
			c.off = start
			return 0, fmt.Errorf("%w: varint at offset %d", ErrTruncatedInput, start)
		}
		b := c.b[c.off]
		if i == MaxVarintLen-1 && b > 1 {
			c.off = start
			return 0, fmt.Errorf("%w: at offset %d", ErrVarintOverflow, start)
		}
		c.off++
		v |= uint64(b&0x7F) << (7 * i)
		if b&0x80 == 0 {
			return v, nil
		}
	}
}

// ExpectTag checks that the next byte equals tag, consumes it and returns the
// varint sub-header that follows it.
func (c *Cursor) ExpectTag(tag byte) (uint64, error) {
	got, err := c.Peek()
	if err != nil {
		return 0, err
	}
	if got != tag {
		return 0, &UnexpectedTagError{Offset: c.off, Want: tag, Got: got}
	}
	c.off++
	v, err := c.ReadVarint()
	if err != nil {
		c.off--
		return 0, err
	}
	return v, nil
}
