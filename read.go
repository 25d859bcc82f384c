package nestac

import (
	"github.com/nestac/go-nestac/ir"
	"github.com/nestac/go-nestac/keypath"
)

// Read resolves path against root and returns the addressed node, or nil
// if any segment fails to resolve. A miss is not an error: the only error
// Read returns wraps keypath.ErrInvalidPath.
//
// The returned node is the node inside root's tree, not a copy; it is
// valid as long as root is and must not be mutated by callers holding
// only read access to the tree.
func Read(root *ir.Node, path string, opts ...Option) (*ir.Node, error) {
	cfg := newConfig(opts)
	p, err := keypath.Parse(path, cfg.Separator)
	if err != nil {
		return nil, err
	}
	return descend(root, p), nil
}

// descend walks p from n one segment per level. It returns nil as soon as
// a segment fails to resolve. Descent never creates containers.
func descend(n *ir.Node, p keypath.Path) *ir.Node {
	cur := n
	for _, seg := range p {
		switch cur.Type {
		case ir.ObjectType:
			cur = ir.Get(cur, seg)
			if cur == nil {
				return nil
			}
		case ir.ArrayType:
			idx, ok := keypath.Index(seg)
			if !ok || idx >= len(cur.Values) {
				return nil
			}
			cur = cur.Values[idx]
		default:
			// scalar or null with segments remaining
			return nil
		}
	}
	return cur
}
