package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nestac/go-nestac/ir"
)

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, es.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		return writeString(w, es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		return writeString(w, es.color(ir.NumberType, ValueColor, numberText(node)))
	case ir.StringType:
		return writeString(w, es.color(ir.StringType, ValueColor, jsonQuote(node.String)))
	case ir.ArrayType:
		return encodeJSONArray(node, w, es)
	case ir.ObjectType:
		return encodeJSONObject(node, w, es)
	}
	return fmt.Errorf("%w: type %s", ErrEncoding, node.Type)
}

func encodeJSONArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, es.color(ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, es.color(ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeJSONNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeJSONNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(ir.ArrayType, SepColor, "]"))
}

func encodeJSONObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, es.color(ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i := range node.Fields {
		if i > 0 {
			if err := writeString(w, es.color(ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeJSONNL(w, es); err != nil {
			return err
		}
		key := es.color(ir.ObjectType, FieldColor, jsonQuote(node.Fields[i].String))
		sep := ": "
		if es.compact {
			sep = ":"
		}
		if err := writeString(w, key+es.color(ir.ObjectType, SepColor, sep)); err != nil {
			return err
		}
		if err := encodeJSON(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeJSONNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(ir.ObjectType, SepColor, "}"))
}

func writeJSONNL(w io.Writer, es *EncState) error {
	if es.compact {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func jsonQuote(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		// strings always marshal
		panic(err)
	}
	return string(d)
}

func numberText(n *ir.Node) string {
	if n.Int64 != nil {
		return strconv.FormatInt(*n.Int64, 10)
	}
	if n.Float64 != nil {
		return strconv.FormatFloat(*n.Float64, 'g', -1, 64)
	}
	return n.Number
}
