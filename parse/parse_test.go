package parse

import (
	"errors"
	"testing"

	"github.com/nestac/go-nestac/ir"

	"github.com/google/go-cmp/cmp"
)

// fieldOrder returns the top-level field names of an object node.
func fieldOrder(t *testing.T, n *ir.Node) []string {
	t.Helper()
	if n.Type != ir.ObjectType {
		t.Fatalf("node is %s, want Object", n.Type)
	}
	res := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		res[i] = f.String
	}
	return res
}

func TestParseJSON(t *testing.T) {
	n, err := Parse([]byte(`{
		"z": "last first",
		"a": [1, 2.5, true, null],
		"m": {"nested": "yes"},
		"big": 123456789012345678901234567890
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"z", "a", "m", "big"}, fieldOrder(t, n)); d != "" {
		t.Errorf("field order (-want +got):\n%s", d)
	}

	arr := ir.Get(n, "a")
	if arr.Type != ir.ArrayType || len(arr.Values) != 4 {
		t.Fatalf("a = %v", arr)
	}
	if v := arr.Values[0]; v.Int64 == nil || *v.Int64 != 1 {
		t.Errorf("a[0] = %v, want int 1", v)
	}
	if v := arr.Values[1]; v.Float64 == nil || *v.Float64 != 2.5 {
		t.Errorf("a[1] = %v, want float 2.5", v)
	}
	if v := arr.Values[2]; v.Type != ir.BoolType || !v.Bool {
		t.Errorf("a[2] = %v, want true", v)
	}
	if v := arr.Values[3]; v.Type != ir.NullType {
		t.Errorf("a[3] = %v, want null", v)
	}

	// integers beyond int64 keep their source text
	big := ir.Get(n, "big")
	if big.Type != ir.NumberType || big.Int64 != nil {
		t.Fatalf("big = %+v", big)
	}
}

func TestParseJSONScalarRoots(t *testing.T) {
	for data, want := range map[string]ir.Type{
		`"s"`:  ir.StringType,
		`3`:    ir.NumberType,
		`true`: ir.BoolType,
		`null`: ir.NullType,
		`[]`:   ir.ArrayType,
		`{}`:   ir.ObjectType,
	} {
		n, err := Parse([]byte(data))
		if err != nil {
			t.Errorf("Parse(%s): %v", data, err)
			continue
		}
		if n.Type != want {
			t.Errorf("Parse(%s).Type = %s, want %s", data, n.Type, want)
		}
	}
}

func TestParseJSONErrors(t *testing.T) {
	for _, data := range []string{
		``,
		`{`,
		`{"a": }`,
		`[1, 2] trailing`,
		`{"a": 1} {"b": 2}`,
	} {
		if _, err := Parse([]byte(data)); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) err = %v, want ErrParse", data, err)
		}
	}
}

func TestParseTOML(t *testing.T) {
	n, err := Parse([]byte(`
title = "example"
count = 1_000
ratio = 2.5
ok = true
when = 2026-01-02T15:04:05Z

[owner]
name = "pat"
dotted.key = "deep"

[servers]

[servers.alpha]
ip = "10.0.0.1"

[servers.beta]
ip = "10.0.0.2"

[[points]]
x = 1

[[points]]
x = 2
`), ParseTOML())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"title", "count", "ratio", "ok", "when", "owner", "servers", "points"}
	if d := cmp.Diff(want, fieldOrder(t, n)); d != "" {
		t.Errorf("top-level order (-want +got):\n%s", d)
	}

	if v := ir.Get(n, "count"); v.Int64 == nil || *v.Int64 != 1000 {
		t.Errorf("count = %v, want 1000", v)
	}
	if v := ir.Get(n, "ratio"); v.Float64 == nil || *v.Float64 != 2.5 {
		t.Errorf("ratio = %v, want 2.5", v)
	}
	if v := ir.Get(n, "when"); v.Type != ir.StringType || v.String != "2026-01-02T15:04:05Z" {
		t.Errorf("when = %v, want datetime as string", v)
	}

	owner := ir.Get(n, "owner")
	if v := ir.Get(owner, "name"); v == nil || v.String != "pat" {
		t.Errorf("owner.name = %v", v)
	}
	dotted := ir.Get(owner, "dotted")
	if dotted == nil || ir.Get(dotted, "key") == nil {
		t.Error("dotted key did not create an intermediate table")
	}

	servers := ir.Get(n, "servers")
	if d := cmp.Diff([]string{"alpha", "beta"}, fieldOrder(t, servers)); d != "" {
		t.Errorf("servers order (-want +got):\n%s", d)
	}

	points := ir.Get(n, "points")
	if points.Type != ir.ArrayType || len(points.Values) != 2 {
		t.Fatalf("points = %v", points)
	}
	if v := ir.Get(points.Values[1], "x"); v == nil || v.Int64 == nil || *v.Int64 != 2 {
		t.Errorf("points[1].x = %v, want 2", v)
	}
}

func TestParseTOMLInlineAndArrays(t *testing.T) {
	n, err := Parse([]byte(`
point = { x = 1, y = 2 }
nums = [1, 2, 3]
mixed = [[1], ["a"]]
`), ParseTOML())
	if err != nil {
		t.Fatal(err)
	}
	point := ir.Get(n, "point")
	if d := cmp.Diff([]string{"x", "y"}, fieldOrder(t, point)); d != "" {
		t.Errorf("inline table order (-want +got):\n%s", d)
	}
	nums := ir.Get(n, "nums")
	if nums.Type != ir.ArrayType || len(nums.Values) != 3 {
		t.Fatalf("nums = %v", nums)
	}
	mixed := ir.Get(n, "mixed")
	if mixed.Values[1].Values[0].String != "a" {
		t.Errorf("mixed[1][0] = %v", mixed.Values[1].Values[0])
	}
}

func TestParseTOMLErrors(t *testing.T) {
	for _, data := range []string{
		`a = `,
		"a = 1\na = 2",
		"a = 1\n[a]\nb = 2",
	} {
		if _, err := Parse([]byte(data), ParseTOML()); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) err = %v, want ErrParse", data, err)
		}
	}
}

func TestParseYAML(t *testing.T) {
	n, err := Parse([]byte(`
zebra: stripes
apple:
  - 1
  - 2.5
  - inner: nested
mango: null
`), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"zebra", "apple", "mango"}, fieldOrder(t, n)); d != "" {
		t.Errorf("key order (-want +got):\n%s", d)
	}
	apple := ir.Get(n, "apple")
	if apple.Type != ir.ArrayType || len(apple.Values) != 3 {
		t.Fatalf("apple = %v", apple)
	}
	if v := apple.Values[0]; v.Int64 == nil || *v.Int64 != 1 {
		t.Errorf("apple[0] = %v, want 1", v)
	}
	if v := apple.Values[1]; v.Float64 == nil || *v.Float64 != 2.5 {
		t.Errorf("apple[1] = %v, want 2.5", v)
	}
	if apple.Values[2].Type != ir.ObjectType {
		t.Errorf("apple[2] = %v, want object", apple.Values[2])
	}
	if v := ir.Get(n, "mango"); v.Type != ir.NullType {
		t.Errorf("mango = %v, want null", v)
	}
}

func TestParseYAMLError(t *testing.T) {
	if _, err := Parse([]byte("a: [1, 2\n"), ParseYAML()); !errors.Is(err, ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
}

func TestParseDefaultIsJSON(t *testing.T) {
	n, err := Parse([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	if ir.Get(n, "a") == nil {
		t.Error("default format did not parse JSON")
	}
}
