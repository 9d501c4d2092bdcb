package feature

import "fmt"

// Kind is the element type of a feature.
type Kind uint8

const (
	// KindBytes stores raw bytes.
	KindBytes Kind = iota
	// KindInt64 stores signed 64-bit integers.
	KindInt64
	// KindFloat32 stores 32-bit floats.
	KindFloat32
)

// Wire tags selecting the list variant of a feature value.
const (
	TagBytes   byte = 0x0A
	TagFloat32 byte = 0x12
	TagInt64   byte = 0x1A
)

// KindFromTag maps a list tag to its Kind. Unknown tags report false and
// yield KindBytes.
func KindFromTag(tag byte) (Kind, bool) {
	switch tag {
	case TagBytes:
		return KindBytes, true
	case TagInt64:
		return KindInt64, true
	case TagFloat32:
		return KindFloat32, true
	default:
		return KindBytes, false
	}
}

// Tag returns the list tag of k.
func (k Kind) Tag() byte {
	switch k {
	case KindInt64:
		return TagInt64
	case KindFloat32:
		return TagFloat32
	default:
		return TagBytes
	}
}

func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}
