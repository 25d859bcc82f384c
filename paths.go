package nestac

import (
	"strconv"

	"github.com/nestac/go-nestac/ir"
)

// Paths returns every key path addressable under root, in depth-first
// pre-order: each child's path is emitted immediately before the paths of
// its own subtree. Objects are walked in insertion order, arrays in index
// order. The root itself is not emitted, so an empty container root
// yields no paths.
//
// Every returned path resolves under Read with the same separator. The
// result is computed fresh on each call.
func Paths(root *ir.Node, opts ...Option) []string {
	cfg := newConfig(opts)
	var res []string
	switch root.Type {
	case ir.ObjectType:
		for i := range root.Fields {
			res = appendPaths(res, root.Values[i], root.Fields[i].String, cfg.Separator)
		}
	case ir.ArrayType:
		for i, v := range root.Values {
			res = appendPaths(res, v, strconv.Itoa(i), cfg.Separator)
		}
	}
	return res
}

func appendPaths(dst []string, n *ir.Node, path, sep string) []string {
	dst = append(dst, path)
	switch n.Type {
	case ir.ObjectType:
		for i := range n.Fields {
			dst = appendPaths(dst, n.Values[i], path+sep+n.Fields[i].String, sep)
		}
	case ir.ArrayType:
		for i, v := range n.Values {
			dst = appendPaths(dst, v, path+sep+strconv.Itoa(i), sep)
		}
	}
	return dst
}
