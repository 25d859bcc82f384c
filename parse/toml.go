package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nestac/go-nestac/ir"

	"github.com/pelletier/go-toml/v2/unstable"
)

// parseTOML walks go-toml's low-level expression stream instead of
// unmarshaling into Go maps, so table and key order survive into the IR.
func parseTOML(data []byte) (*ir.Node, error) {
	root := &ir.Node{Type: ir.ObjectType}
	cur := root

	p := &unstable.Parser{}
	p.Reset(data)
	for p.NextExpression() {
		e := p.Expression()
		switch e.Kind {
		case unstable.KeyValue:
			val, err := tomlValue(e.Value())
			if err != nil {
				return nil, err
			}
			if err := tomlInsert(cur, tomlKeys(e), val); err != nil {
				return nil, err
			}
		case unstable.Table:
			t, err := tomlOpenTable(root, tomlKeys(e))
			if err != nil {
				return nil, err
			}
			cur = t
		case unstable.ArrayTable:
			t, err := tomlAppendTable(root, tomlKeys(e))
			if err != nil {
				return nil, err
			}
			cur = t
		}
	}
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return root, nil
}

func tomlKeys(e *unstable.Node) []string {
	var keys []string
	it := e.Key()
	for it.Next() {
		keys = append(keys, string(it.Node().Data))
	}
	return keys
}

func tomlValue(n *unstable.Node) (*ir.Node, error) {
	switch n.Kind {
	case unstable.String:
		return ir.FromString(string(n.Data)), nil
	case unstable.Bool:
		return ir.FromBool(string(n.Data) == "true"), nil
	case unstable.Integer:
		s := strings.ReplaceAll(string(n.Data), "_", "")
		i, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: integer %q: %v", ErrParse, n.Data, err)
		}
		return ir.FromInt(i), nil
	case unstable.Float:
		s := strings.ReplaceAll(string(n.Data), "_", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: float %q: %v", ErrParse, n.Data, err)
		}
		return ir.FromFloat(f), nil
	case unstable.DateTime, unstable.LocalDateTime, unstable.LocalDate, unstable.LocalTime:
		// the IR has no date kind; dates stay strings
		return ir.FromString(string(n.Data)), nil
	case unstable.Array:
		res := &ir.Node{Type: ir.ArrayType}
		it := n.Children()
		for it.Next() {
			v, err := tomlValue(it.Node())
			if err != nil {
				return nil, err
			}
			arrAppend(res, v)
		}
		return res, nil
	case unstable.InlineTable:
		res := &ir.Node{Type: ir.ObjectType}
		it := n.Children()
		for it.Next() {
			kv := it.Node()
			if kv.Kind != unstable.KeyValue {
				return nil, fmt.Errorf("%w: %s in inline table", ErrParse, kv.Kind)
			}
			v, err := tomlValue(kv.Value())
			if err != nil {
				return nil, err
			}
			if err := tomlInsert(res, tomlKeys(kv), v); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: unsupported TOML node %s", ErrParse, n.Kind)
}

// tomlInsert places val at the (possibly dotted) key path under obj,
// creating intermediate tables as the TOML syntax implies.
func tomlInsert(obj *ir.Node, keys []string, val *ir.Node) error {
	if len(keys) == 0 {
		return fmt.Errorf("%w: key-value with no key", ErrParse)
	}
	target, err := tomlDescend(obj, keys[:len(keys)-1])
	if err != nil {
		return err
	}
	last := keys[len(keys)-1]
	if ir.Get(target, last) != nil {
		return fmt.Errorf("%w: duplicate key %q", ErrParse, last)
	}
	objAppend(target, last, val)
	return nil
}

// tomlOpenTable resolves a [a.b.c] header, creating tables as needed.
func tomlOpenTable(root *ir.Node, keys []string) (*ir.Node, error) {
	return tomlDescend(root, keys)
}

// tomlAppendTable resolves a [[a.b.c]] header: the value at the path is
// an array of tables, and a fresh table is appended to it.
func tomlAppendTable(root *ir.Node, keys []string) (*ir.Node, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: array table with no key", ErrParse)
	}
	parent, err := tomlDescend(root, keys[:len(keys)-1])
	if err != nil {
		return nil, err
	}
	last := keys[len(keys)-1]
	arr := ir.Get(parent, last)
	if arr == nil {
		arr = &ir.Node{Type: ir.ArrayType}
		objAppend(parent, last, arr)
	}
	if arr.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: %q is not an array of tables", ErrParse, last)
	}
	t := &ir.Node{Type: ir.ObjectType}
	arrAppend(arr, t)
	return t, nil
}

// tomlDescend walks keys from obj, creating implicit tables for missing
// keys and stepping into the last element of arrays of tables.
func tomlDescend(obj *ir.Node, keys []string) (*ir.Node, error) {
	cur := obj
	for _, key := range keys {
		next := ir.Get(cur, key)
		if next == nil {
			next = &ir.Node{Type: ir.ObjectType}
			objAppend(cur, key, next)
		}
		switch next.Type {
		case ir.ObjectType:
			cur = next
		case ir.ArrayType:
			if len(next.Values) == 0 || next.Values[len(next.Values)-1].Type != ir.ObjectType {
				return nil, fmt.Errorf("%w: cannot extend array %q", ErrParse, key)
			}
			cur = next.Values[len(next.Values)-1]
		default:
			return nil, fmt.Errorf("%w: key %q is not a table", ErrParse, key)
		}
	}
	return cur, nil
}

// objAppend and arrAppend grow containers in place while keeping parent
// links consistent; the ir constructors build only complete containers.

func objAppend(obj *ir.Node, key string, val *ir.Node) {
	i := len(obj.Fields)
	field := &ir.Node{
		Parent:      obj,
		ParentIndex: i,
		ParentField: key,
		Type:        ir.StringType,
		String:      key,
	}
	val.Parent = obj
	val.ParentIndex = i
	val.ParentField = key
	obj.Fields = append(obj.Fields, field)
	obj.Values = append(obj.Values, val)
}

func arrAppend(arr *ir.Node, val *ir.Node) {
	val.Parent = arr
	val.ParentIndex = len(arr.Values)
	arr.Values = append(arr.Values, val)
}
