package testutil

import (
	"encoding/binary"
	"math"
)

const (
	tagLenField1 = 0x0A
	tagLenField2 = 0x12
	tagLenField3 = 0x1A
)

// AppendVarint appends v as a base-128 varint.
func AppendVarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// AppendField appends a length-delimited field: tag, varint length, body.
func AppendField(dst []byte, tag byte, body []byte) []byte {
	dst = append(dst, tag)
	dst = AppendVarint(dst, uint64(len(body)))
	return append(dst, body...)
}

// ExampleBuilder assembles a tf.train.Example payload with features in
// insertion order.
type ExampleBuilder struct {
	entries [][]byte
}

// NewExample returns an empty builder.
func NewExample() *ExampleBuilder {
	return &ExampleBuilder{}
}

// Bytes adds a bytes_list feature holding a single value.
// A nil data adds an empty list.
func (b *ExampleBuilder) Bytes(key string, data []byte) *ExampleBuilder {
	var list []byte
	if data != nil {
		list = AppendField(nil, tagLenField1, data)
	}
	return b.Raw(key, tagLenField1, list)
}

// Int64s adds an int64_list feature with packed values.
func (b *ExampleBuilder) Int64s(key string, values ...int64) *ExampleBuilder {
	var list []byte
	if len(values) > 0 {
		var packed []byte
		for _, v := range values {
			packed = AppendVarint(packed, uint64(v))
		}
		list = AppendField(nil, tagLenField1, packed)
	}
	return b.Raw(key, tagLenField3, list)
}

// Float32s adds a float_list feature with packed little-endian values.
func (b *ExampleBuilder) Float32s(key string, values ...float32) *ExampleBuilder {
	var list []byte
	if len(values) > 0 {
		packed := make([]byte, 0, 4*len(values))
		for _, v := range values {
			packed = binary.LittleEndian.AppendUint32(packed, math.Float32bits(v))
		}
		list = AppendField(nil, tagLenField1, packed)
	}
	return b.Raw(key, tagLenField2, list)
}

// Raw adds a feature whose list body is given verbatim under kindTag.
func (b *ExampleBuilder) Raw(key string, kindTag byte, list []byte) *ExampleBuilder {
	value := AppendField(nil, kindTag, list)

	var entry []byte
	entry = AppendField(entry, tagLenField1, []byte(key))
	entry = AppendField(entry, tagLenField2, value)

	b.entries = append(b.entries, entry)
	return b
}

// Build returns the serialized payload.
func (b *ExampleBuilder) Build() []byte {
	var features []byte
	for _, e := range b.entries {
		features = AppendField(features, tagLenField1, e)
	}
	return AppendField(nil, tagLenField1, features)
}

// HOMRExample builds the payload of one corpus record.
func HOMRExample(image []byte, marks []int64) []byte {
	return NewExample().Bytes("image", image).Int64s("marks", marks...).Build()
}
