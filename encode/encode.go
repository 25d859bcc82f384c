package encode

import (
	"errors"
	"io"

	"github.com/nestac/go-nestac/format"
	"github.com/nestac/go-nestac/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent  int
	depth   int
	compact bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in the configured format (JSON by default),
// preserving the tree's field order. A trailing newline is always
// written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	var err error
	switch es.format {
	case format.JSONFormat:
		err = encodeJSON(node, w, es)
	case format.TOMLFormat:
		err = encodeTOML(node, w, es)
	case format.YAMLFormat:
		// the YAML encoder terminates its own document
		return encodeYAML(node, w, es)
	default:
		return format.ErrBadFormat
	}
	if err != nil {
		return err
	}
	return writeString(w, "\n")
}

// MustString renders node in the given format, panicking on encoding
// failure. Intended for tests and debug output.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	var buf writerBuffer
	if err := Encode(node, &buf, opts...); err != nil {
		panic(err)
	}
	return string(buf)
}

type writerBuffer []byte

func (b *writerBuffer) Write(p []byte) (int, error) {
	*b = append(*b, p...)
	return len(p), nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}
