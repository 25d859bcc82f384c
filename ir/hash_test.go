package ir

import (
	"testing"
)

func TestHashEqualTrees(t *testing.T) {
	mk := func() *Node {
		return FromKeyVals([]KeyVal{
			{Key: "a", Val: FromInt(1)},
			{Key: "b", Val: FromSlice([]*Node{FromString("x"), Null()})},
		})
	}
	a, b := mk(), mk()
	if a.Hash() != b.Hash() {
		t.Error("structurally equal trees hash differently")
	}
	if a.Hash() != a.Hash() {
		t.Error("hash is not stable across calls")
	}
}

func TestHashDistinguishes(t *testing.T) {
	base := FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}})
	for name, other := range map[string]*Node{
		"different value": FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
		"different key":   FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
		"different type":  FromKeyVals([]KeyVal{{Key: "a", Val: FromString("1")}}),
		"field order": FromKeyVals([]KeyVal{
			{Key: "x", Val: FromInt(1)},
			{Key: "a", Val: FromInt(1)},
		}),
	} {
		if base.Hash() == other.Hash() {
			t.Errorf("%s: hash collision with base", name)
		}
	}
}
