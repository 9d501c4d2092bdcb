package homr

import (
	"fmt"
	"strings"
)

// Split names one of the three corpus partitions.
type Split int

const (
	Train Split = iota
	Dev
	Test
)

// Splits lists all partitions in file order.
var Splits = []Split{Train, Dev, Test}

var splitSizes = [...]int{
	Train: 51365,
	Dev:   5027,
	Test:  5023,
}

var splitNames = [...]string{
	Train: "train",
	Dev:   "dev",
	Test:  "test",
}

func (s Split) valid() bool {
	return s >= Train && s <= Test
}

// String returns "train", "dev" or "test".
func (s Split) String() string {
	if !s.valid() {
		return fmt.Sprintf("Split(%d)", int(s))
	}
	return splitNames[s]
}

// Size returns the number of examples in the published split file.
func (s Split) Size() int {
	if !s.valid() {
		return 0
	}
	return splitSizes[s]
}

// FileName returns the record file name, e.g. "homr.dev.tfrecord".
func (s Split) FileName() string {
	return "homr." + s.String() + ".tfrecord"
}

// ParseSplit parses a split name case-insensitively.
func ParseSplit(name string) (Split, error) {
	for i, n := range splitNames {
		if strings.EqualFold(name, n) {
			return Split(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSplit, name)
}
