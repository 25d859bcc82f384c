package ir

import (
	"maps"
	"slices"
)

// Node is a single value in a document tree. It is a tagged union: the
// Type field says which of the remaining fields carry the value.
//
// For ObjectType nodes, Fields[i] is the key node for the value at
// Values[i]; the two slices always have the same length and keep the
// insertion order of the source document. For ArrayType nodes only
// Values is used.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.ParentField = n.ParentField
	dst.Type = n.Type
	dst.Values = make([]*Node, len(n.Values))
	dst.Fields = make([]*Node, len(n.Fields))
	for i, nv := range n.Values {
		dstI := &Node{}
		nv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = nv.ParentField
		dst.Values[i] = dstI
	}
	for i, nf := range n.Fields {
		dstI := &Node{}
		nf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = nf.String
		dst.Fields[i] = dstI
	}
	dst.String = n.String
	dst.Number = n.Number
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	dst.Bool = n.Bool
	return dst
}

// Detach severs n from its parent, making it a root. It returns n.
func (n *Node) Detach() *Node {
	n.Parent = nil
	n.ParentIndex = 0
	n.ParentField = ""
	return n
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds an object node from a Go map. Go maps have no iteration
// order, so keys are sorted; use FromKeyVals to control field order.
func FromMap(m map[string]*Node) *Node {
	kvs := make([]KeyVal, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		kvs = append(kvs, KeyVal{Key: key, Val: m[key]})
	}
	return FromKeyVals(kvs)
}

// ToMap returns the fields of an object node as a Go map, or nil if the
// node is not an object. Insertion order is lost.
func ToMap(n *Node) map[string]*Node {
	if n.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(n.Fields))
	for i := range n.Fields {
		res[n.Fields[i].String] = n.Values[i]
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object node whose field order is the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		field := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: kv.Key,
			Type:        StringType,
			String:      kv.Key,
		}
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Fields[i] = field
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		res.Values[i] = v
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

// Get returns the value of the named field, or nil if n is not an object
// or has no such field.
func Get(n *Node, field string) *Node {
	for i := range n.Fields {
		if n.Fields[i].String == field {
			return n.Values[i]
		}
	}
	return nil
}

// Visit walks the subtree rooted at n. f is called once before and once
// after each node's children; returning false from the pre call skips the
// children. Recursion depth is bounded by the document's nesting depth.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, nn := range n.Values {
			if err := nn.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
