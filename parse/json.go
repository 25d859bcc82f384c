package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/nestac/go-nestac/ir"
)

// parseJSON decodes JSON token by token rather than into Go maps so that
// object field order survives into the IR.
func parseJSON(data []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	n, err := jsonValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return n, nil
}

func jsonValue(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var kvs []ir.KeyVal
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrParse, err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("%w: object key %v", ErrParse, keyTok)
				}
				valTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrParse, err)
				}
				val, err := jsonValue(dec, valTok)
				if err != nil {
					return nil, err
				}
				kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
			return ir.FromKeyVals(kvs), nil
		case '[':
			var vs []*ir.Node
			for dec.More() {
				valTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrParse, err)
				}
				v, err := jsonValue(dec, valTok)
				if err != nil {
					return nil, err
				}
				vs = append(vs, v)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
			return ir.FromSlice(vs), nil
		}
		return nil, fmt.Errorf("%w: unexpected delimiter %v", ErrParse, t)
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case json.Number:
		return numberNode(t.String()), nil
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
}

// numberNode keeps the source text in Number when neither int64 nor
// float64 represents the value.
func numberNode(s string) *ir.Node {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ir.FromInt(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return ir.FromFloat(f)
	}
	return &ir.Node{Type: ir.NumberType, Number: s}
}
