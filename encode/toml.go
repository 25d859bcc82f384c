package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/nestac/go-nestac/ir"
)

// encodeTOML writes an object node as a TOML document. Within each table,
// plain key-values are written first and sub-tables after, as TOML
// requires; both groups keep the tree's insertion order.
func encodeTOML(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type != ir.ObjectType {
		return fmt.Errorf("%w: TOML document root must be an object, got %s", ErrEncoding, node.Type)
	}
	return encodeTOMLTable(node, w, es, nil, true)
}

func encodeTOMLTable(node *ir.Node, w io.Writer, es *EncState, prefix []string, first bool) error {
	for i := range node.Fields {
		key := node.Fields[i].String
		val := node.Values[i]
		if isTOMLTable(val) || isTOMLTableArray(val) {
			continue
		}
		line := es.color(ir.ObjectType, FieldColor, tomlKey(key)) +
			es.color(ir.ObjectType, SepColor, " = ")
		v, err := tomlInlineValue(val, es)
		if err != nil {
			return err
		}
		if err := writeString(w, line+v+"\n"); err != nil {
			return err
		}
		first = false
	}
	for i := range node.Fields {
		key := node.Fields[i].String
		val := node.Values[i]
		path := append(append([]string{}, prefix...), key)
		switch {
		case isTOMLTable(val):
			if !first {
				if err := writeString(w, "\n"); err != nil {
					return err
				}
			}
			header := es.color(ir.ObjectType, SepColor, "[") +
				es.color(ir.ObjectType, FieldColor, tomlKeyPath(path)) +
				es.color(ir.ObjectType, SepColor, "]")
			if err := writeString(w, header+"\n"); err != nil {
				return err
			}
			if err := encodeTOMLTable(val, w, es, path, true); err != nil {
				return err
			}
			first = false
		case isTOMLTableArray(val):
			for _, elem := range val.Values {
				if !first {
					if err := writeString(w, "\n"); err != nil {
						return err
					}
				}
				header := es.color(ir.ObjectType, SepColor, "[[") +
					es.color(ir.ObjectType, FieldColor, tomlKeyPath(path)) +
					es.color(ir.ObjectType, SepColor, "]]")
				if err := writeString(w, header+"\n"); err != nil {
					return err
				}
				if err := encodeTOMLTable(elem, w, es, path, true); err != nil {
					return err
				}
				first = false
			}
		}
	}
	return nil
}

// isTOMLTable reports whether val renders as a [table] section rather
// than an inline value. Empty objects stay inline so they are not lost.
func isTOMLTable(val *ir.Node) bool {
	return val.Type == ir.ObjectType && len(val.Fields) > 0
}

// isTOMLTableArray reports whether val renders as [[table]] sections:
// a non-empty array whose elements are all non-empty objects.
func isTOMLTableArray(val *ir.Node) bool {
	if val.Type != ir.ArrayType || len(val.Values) == 0 {
		return false
	}
	for _, v := range val.Values {
		if !isTOMLTable(v) {
			return false
		}
	}
	return true
}

func tomlInlineValue(node *ir.Node, es *EncState) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "", fmt.Errorf("%w: TOML cannot represent null", ErrEncoding)
	case ir.BoolType:
		return es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)), nil
	case ir.NumberType:
		return es.color(ir.NumberType, ValueColor, tomlNumber(node)), nil
	case ir.StringType:
		return es.color(ir.StringType, ValueColor, tomlString(node.String)), nil
	case ir.ArrayType:
		parts := make([]string, 0, len(node.Values))
		for _, v := range node.Values {
			p, err := tomlInlineValue(v, es)
			if err != nil {
				return "", err
			}
			parts = append(parts, p)
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case ir.ObjectType:
		parts := make([]string, 0, len(node.Fields))
		for i := range node.Fields {
			v, err := tomlInlineValue(node.Values[i], es)
			if err != nil {
				return "", err
			}
			parts = append(parts, tomlKey(node.Fields[i].String)+" = "+v)
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	}
	return "", fmt.Errorf("%w: type %s", ErrEncoding, node.Type)
}

func tomlNumber(n *ir.Node) string {
	if n.Int64 != nil {
		return strconv.FormatInt(*n.Int64, 10)
	}
	if n.Float64 != nil {
		f := *n.Float64
		switch {
		case math.IsInf(f, 1):
			return "inf"
		case math.IsInf(f, -1):
			return "-inf"
		case math.IsNaN(f):
			return "nan"
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	}
	return n.Number
}

func tomlString(s string) string {
	return strconv.Quote(s)
}

func tomlKey(key string) string {
	if key == "" {
		return `""`
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return strconv.Quote(key)
		}
	}
	return key
}

func tomlKeyPath(path []string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = tomlKey(p)
	}
	return strings.Join(parts, ".")
}
