package gomap

import (
	"fmt"
	"math"

	"github.com/nestac/go-nestac/ir"
)

// FromGo converts a plain Go value (the shapes produced by
// encoding/json-style unmarshaling: nil, bool, numbers, string,
// []any, map[string]any) into an ir.Node. Map keys are sorted, since Go
// maps carry no order of their own; callers needing a specific field
// order should build nodes with ir.FromKeyVals.
func FromGo(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int8:
		return ir.FromInt(int64(t)), nil
	case int16:
		return ir.FromInt(int64(t)), nil
	case int32:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return ir.FromInt(int64(t)), nil
	case uint16:
		return ir.FromInt(int64(t)), nil
	case uint32:
		return ir.FromInt(int64(t)), nil
	case uint64:
		return fromUint(t)
	case float32:
		return ir.FromFloat(float64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case []any:
		vs := make([]*ir.Node, len(t))
		for i, item := range t {
			n, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return ir.FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(t))
		for k, item := range t {
			n, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	case *ir.Node:
		return t, nil
	default:
		return nil, fmt.Errorf("gomap: cannot map %T", v)
	}
}

func fromUint(u uint64) (*ir.Node, error) {
	if u <= math.MaxInt64 {
		return ir.FromInt(int64(u)), nil
	}
	return &ir.Node{Type: ir.NumberType, Number: fmt.Sprintf("%d", u)}, nil
}

// ToGo converts an ir.Node into plain Go values. Object field order is
// lost: objects become map[string]any.
func ToGo(n *ir.Node) any {
	switch n.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return n.Bool
	case ir.StringType:
		return n.String
	case ir.NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		if n.Float64 != nil {
			return *n.Float64
		}
		return n.Number
	case ir.ArrayType:
		vs := make([]any, len(n.Values))
		for i, v := range n.Values {
			vs[i] = ToGo(v)
		}
		return vs
	case ir.ObjectType:
		m := make(map[string]any, len(n.Fields))
		for i := range n.Fields {
			m[n.Fields[i].String] = ToGo(n.Values[i])
		}
		return m
	}
	return nil
}
