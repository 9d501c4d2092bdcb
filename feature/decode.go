package feature

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/homr/wire"
)

// Structural tags of the payload tree.
const (
	tagFeatures = 0x0A // Example.features
	tagEntry    = 0x0A // Features.feature map entry
	tagKey      = 0x0A // entry key
	tagValue    = 0x12 // entry value
	tagList     = 0x0A // packed or repeated list body
)

// Decoder walks payloads and appends their features to a Store.
type Decoder struct {
	store *Store
}

// NewDecoder returns a Decoder that writes into store.
func NewDecoder(store *Store) *Decoder {
	return &Decoder{store: store}
}

// Store returns the destination store.
func (d *Decoder) Store() *Store { return d.store }

// Decode parses one payload as a single example. On success the example is
// committed; on error the store is left as it was before the call.
func (d *Decoder) Decode(payload []byte) error {
	if err := d.decode(wire.NewCursor(payload)); err != nil {
		d.store.Rollback()
		return err
	}
	d.store.Commit()
	return nil
}

func (d *Decoder) decode(c *wire.Cursor) error {
	n, err := c.ExpectTag(tagFeatures)
	if err != nil {
		return fmt.Errorf("feature: envelope: %w", err)
	}
	if n != uint64(c.Remaining()) {
		return &LengthMismatchError{What: "envelope", Declared: n, Actual: c.Remaining()}
	}

	for !c.Done() {
		if _, err := c.ExpectTag(tagEntry); err != nil {
			return fmt.Errorf("feature: entry: %w", err)
		}
		keyLen, err := c.ExpectTag(tagKey)
		if err != nil {
			return fmt.Errorf("feature: key: %w", err)
		}
		raw, err := take(c, keyLen, "key")
		if err != nil {
			return err
		}
		key := string(raw)

		if _, err := c.ExpectTag(tagValue); err != nil {
			return fmt.Errorf("feature: %q: value: %w", key, err)
		}
		tag, err := c.Peek()
		if err != nil {
			return fmt.Errorf("feature: %q: kind: %w", key, err)
		}
		kind, _ := KindFromTag(tag)
		d.store.GetOrCreate(key, kind)

		switch tag {
		case TagBytes:
			err = d.decodeBytes(c, key)
		case TagInt64:
			err = d.decodeInt64s(c, key)
		case TagFloat32:
			err = d.decodeFloat32s(c, key)
		default:
			err = &UnsupportedKindError{Key: key, Tag: tag}
		}
		if err != nil {
			return err
		}

		if err := d.store.CloseExample(key); err != nil {
			return err
		}
	}
	return nil
}

func (d *Decoder) decodeBytes(c *wire.Cursor, key string) error {
	span, err := list(c, TagBytes, key)
	if err != nil {
		return err
	}
	return d.store.AppendBytes(key, span)
}

func (d *Decoder) decodeInt64s(c *wire.Cursor, key string) error {
	span, err := list(c, TagInt64, key)
	if err != nil {
		return err
	}
	values := make([]int64, 0, len(span))
	sc := wire.NewCursor(span)
	for !sc.Done() {
		v, err := sc.ReadVarint()
		if err != nil {
			if errors.Is(err, wire.ErrTruncatedInput) {
				return &LengthMismatchError{What: fmt.Sprintf("%q int64 span", key), Declared: uint64(len(span)), Actual: sc.Offset()}
			}
			return fmt.Errorf("feature: %q: %w", key, err)
		}
		values = append(values, int64(v))
	}
	return d.store.AppendInt64s(key, values...)
}

func (d *Decoder) decodeFloat32s(c *wire.Cursor, key string) error {
	span, err := list(c, TagFloat32, key)
	if err != nil {
		return err
	}
	if len(span)%4 != 0 {
		return fmt.Errorf("%w: %q spans %d bytes", ErrFloatAlignment, key, len(span))
	}
	values := make([]float32, len(span)/4)
	for i := range values {
		values[i] = math.Float32frombits(binary.LittleEndian.Uint32(span[4*i:]))
	}
	return d.store.AppendFloat32s(key, values...)
}

// list reads a value list under kind tag. A zero outer length is an empty
// list and has no inner body.
func list(c *wire.Cursor, tag byte, key string) ([]byte, error) {
	outer, err := c.ExpectTag(tag)
	if err != nil {
		return nil, fmt.Errorf("feature: %q: list: %w", key, err)
	}
	if outer == 0 {
		return nil, nil
	}
	inner, err := c.ExpectTag(tagList)
	if err != nil {
		return nil, fmt.Errorf("feature: %q: list body: %w", key, err)
	}
	return take(c, inner, fmt.Sprintf("%q list body", key))
}

func take(c *wire.Cursor, n uint64, what string) ([]byte, error) {
	if n > uint64(c.Remaining()) {
		return nil, fmt.Errorf("%w: %s needs %d bytes, %d left", wire.ErrTruncatedInput, what, n, c.Remaining())
	}
	return c.Next(int(n))
}
