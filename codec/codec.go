// Package codec selects the encoding used for machine-readable reports
// (evaluation results, dataset summaries) written by the homr command.
package codec

import (
	"fmt"
	"io"
	"slices"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Names lists the built-in codec names.
func Names() []string {
	names := []string{JSON{}.Name(), GoJSON{}.Name()}
	slices.Sort(names)
	return names
}

// Write marshals v with c and writes it to w followed by a newline.
func Write(w io.Writer, c Codec, v any) error {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("codec %s: marshal: %w", c.Name(), err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("codec %s: write: %w", c.Name(), err)
	}
	return nil
}
