// Package codec encodes seek results and traces for output.
package codec

import (
	"fmt"
	"io"
	"sort"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

var builtin = map[string]Codec{
	"json":    JSON{},
	"go-json": GoJSON{},
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	c, ok := builtin[name]
	return c, ok
}

// Names returns the names of the built-in codecs, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encode marshals v with c and writes it to w followed by a newline.
// A nil codec selects Default.
func Encode(w io.Writer, c Codec, v any) error {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("codec %s marshal failed: %w", c.Name(), err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// MustMarshal is a helper for tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
