// Package wire decodes the tag/varint primitives of the record payload format.
//
// A Cursor wraps an immutable byte slice and a read position. All reads are
// bounds-checked and return slices that alias the underlying buffer:
//
//	c := wire.NewCursor(payload)
//	n, err := c.ExpectTag(0x0A) // tag byte followed by a varint length
//	key, err := c.Next(int(n))
//
// Varints use the base-128 little-endian group encoding with a continuation
// bit in the high bit of every byte. Values are limited to 64 bits.
package wire
