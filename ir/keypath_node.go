package ir

import "strconv"

// KeyPath returns the node's address from the root as a separator-joined
// key path. The root itself has the empty path. Array positions appear as
// decimal index segments.
//
// Examples with separator ".":
//   - root → ""
//   - object field "a" → "a"
//   - nested object "a"→"b" → "a.b"
//   - array element 1 under "arr" → "arr.1"
//
// There is no escaping: a field name containing the separator produces a
// path that Read cannot resolve with that same separator.
func (n *Node) KeyPath(sep string) string {
	if n.Parent == nil {
		return ""
	}
	var seg string
	switch n.Parent.Type {
	case ObjectType:
		seg = n.ParentField
	case ArrayType:
		seg = strconv.Itoa(n.ParentIndex)
	default:
		panic("parent but not in container")
	}
	prefix := n.Parent.KeyPath(sep)
	if prefix == "" {
		return seg
	}
	return prefix + sep + seg
}
