package parse

import (
	"fmt"
	"math"

	"github.com/nestac/go-nestac/ir"

	"github.com/goccy/go-yaml"
)

// parseYAML decodes into goccy's ordered map representation so mapping
// key order survives into the IR.
func parseYAML(data []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return yamlNode(v)
}

func yamlNode(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t <= math.MaxInt64 {
			return ir.FromInt(int64(t)), nil
		}
		return &ir.Node{Type: ir.NumberType, Number: fmt.Sprintf("%d", t)}, nil
	case float32:
		return ir.FromFloat(float64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(t))
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			val, err := yamlNode(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		vs := make([]*ir.Node, 0, len(t))
		for _, item := range t {
			v, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			vs = append(vs, v)
		}
		return ir.FromSlice(vs), nil
	default:
		// timestamps and other YAML-specific scalars stay strings
		return ir.FromString(fmt.Sprint(t)), nil
	}
}
