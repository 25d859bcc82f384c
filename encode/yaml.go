package encode

import (
	"fmt"
	"io"

	"github.com/nestac/go-nestac/ir"

	"github.com/goccy/go-yaml"
)

// encodeYAML renders through goccy's ordered map type, so field order is
// preserved. Colors do not apply to YAML output.
func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := yamlValue(node)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func yamlValue(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		return node.Number, nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		vs := make([]any, len(node.Values))
		for i, v := range node.Values {
			var err error
			vs[i], err = yamlValue(v)
			if err != nil {
				return nil, err
			}
		}
		return vs, nil
	case ir.ObjectType:
		ms := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			v, err := yamlValue(node.Values[i])
			if err != nil {
				return nil, err
			}
			ms[i] = yaml.MapItem{Key: node.Fields[i].String, Value: v}
		}
		return ms, nil
	}
	return nil, fmt.Errorf("%w: type %s", ErrEncoding, node.Type)
}
