package nestac

import (
	"github.com/nestac/go-nestac/ir"
	"github.com/nestac/go-nestac/keypath"
)

// Update replaces the node addressed by path with newValue and returns
// the value previously in that slot, detached from the tree. If any
// segment fails to resolve, Update returns nil and the tree is left
// completely unmodified: there is no partial mutation and no creation of
// missing keys or containers.
//
// Update requires exclusive access to root for its duration. The only
// error returned wraps keypath.ErrInvalidPath.
func Update(root *ir.Node, path string, newValue *ir.Node, opts ...Option) (*ir.Node, error) {
	cfg := newConfig(opts)
	p, err := keypath.Parse(path, cfg.Separator)
	if err != nil {
		return nil, err
	}

	last := len(p) - 1
	parent := descend(root, p[:last])
	if parent == nil {
		return nil, nil
	}

	seg := p[last]
	switch parent.Type {
	case ir.ObjectType:
		for i := range parent.Fields {
			if parent.Fields[i].String != seg {
				continue
			}
			old := parent.Values[i]
			newValue.Parent = parent
			newValue.ParentIndex = i
			newValue.ParentField = seg
			parent.Values[i] = newValue
			return old.Detach(), nil
		}
		return nil, nil
	case ir.ArrayType:
		idx, ok := keypath.Index(seg)
		if !ok || idx >= len(parent.Values) {
			return nil, nil
		}
		old := parent.Values[idx]
		newValue.Parent = parent
		newValue.ParentIndex = idx
		newValue.ParentField = ""
		parent.Values[idx] = newValue
		return old.Detach(), nil
	default:
		return nil, nil
	}
}
