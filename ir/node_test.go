package ir

import (
	"testing"
)

func obj(kvs ...KeyVal) *Node { return FromKeyVals(kvs) }

func TestFromKeyValsOrder(t *testing.T) {
	n := obj(
		KeyVal{Key: "z", Val: FromInt(1)},
		KeyVal{Key: "a", Val: FromInt(2)},
		KeyVal{Key: "m", Val: FromInt(3)},
	)
	want := []string{"z", "a", "m"}
	if len(n.Fields) != len(want) || len(n.Values) != len(want) {
		t.Fatalf("got %d fields, %d values", len(n.Fields), len(n.Values))
	}
	for i, key := range want {
		if n.Fields[i].String != key {
			t.Errorf("field %d = %q, want %q", i, n.Fields[i].String, key)
		}
		if n.Values[i].Parent != n || n.Values[i].ParentField != key || n.Values[i].ParentIndex != i {
			t.Errorf("value %d has bad parent links", i)
		}
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	n := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
	})
	if n.Fields[0].String != "a" || n.Fields[1].String != "z" {
		t.Errorf("fields = %q, %q, want sorted", n.Fields[0].String, n.Fields[1].String)
	}
}

func TestGet(t *testing.T) {
	n := obj(
		KeyVal{Key: "a", Val: FromString("x")},
		KeyVal{Key: "b", Val: FromString("y")},
	)
	if got := Get(n, "b"); got == nil || got.String != "y" {
		t.Errorf("Get(b) = %v", got)
	}
	if got := Get(n, "c"); got != nil {
		t.Errorf("Get(c) = %v, want nil", got)
	}
	if got := Get(FromString("scalar"), "a"); got != nil {
		t.Errorf("Get on scalar = %v, want nil", got)
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := obj(
		KeyVal{Key: "a", Val: FromSlice([]*Node{FromInt(1), FromInt(2)})},
	)
	cl := orig.Clone()
	if Compare(orig, cl) != 0 {
		t.Fatal("clone differs from original")
	}
	cl.Values[0].Values[0] = FromInt(99)
	if got := orig.Values[0].Values[0]; got.Int64 == nil || *got.Int64 != 1 {
		t.Error("mutating the clone reached the original")
	}
	// children of the clone point at the clone
	if cl.Values[0].Parent != cl {
		t.Error("clone child parent is not the clone")
	}
}

func TestDetach(t *testing.T) {
	n := obj(KeyVal{Key: "a", Val: FromString("x")})
	child := n.Values[0]
	if child.Detach() != child {
		t.Fatal("Detach did not return its receiver")
	}
	if child.Parent != nil || child.ParentIndex != 0 || child.ParentField != "" {
		t.Error("Detach left parent links behind")
	}
}

func TestRoot(t *testing.T) {
	n := obj(KeyVal{Key: "a", Val: obj(KeyVal{Key: "b", Val: FromInt(1)})})
	leaf := n.Values[0].Values[0]
	if leaf.Root() != n {
		t.Error("Root did not reach the top")
	}
	if n.Root() != n {
		t.Error("Root of a root is not itself")
	}
}

func TestVisit(t *testing.T) {
	n := obj(
		KeyVal{Key: "a", Val: FromInt(1)},
		KeyVal{Key: "b", Val: FromSlice([]*Node{FromInt(2), FromInt(3)})},
	)
	var pre, post int
	err := n.Visit(func(v *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root, a, b, and b's two elements
	if pre != 5 || post != 5 {
		t.Errorf("pre=%d post=%d, want 5/5", pre, post)
	}

	var skipped int
	err = n.Visit(func(v *Node, isPost bool) (bool, error) {
		if !isPost {
			skipped++
		}
		return v.Type != ArrayType, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// array children skipped
	if skipped != 3 {
		t.Errorf("pre visits with skip = %d, want 3", skipped)
	}
}
