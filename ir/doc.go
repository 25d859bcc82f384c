// Package ir defines the generic tree representation shared by every
// document format nestac can address.
//
// # Overview
//
// A document, whatever its source syntax, is represented as a tree of
// ir.Node values. The IR is a simple recursive tagged union: each node is
// null, a bool, a number, a string, an array, or an object. Objects keep
// their fields in insertion order, which is what makes path enumeration
// over them deterministic.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "key", Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// FromKeyVals preserves the given field order; FromMap sorts keys since Go
// maps have no order of their own.
//
// # Navigating Nodes
//
// Nodes maintain parent links (Parent, ParentIndex, ParentField), so any
// node can report its own address with KeyPath. Path-string lookup and
// replacement over a tree live in the parent package,
// github.com/nestac/go-nestac.
//
// # Numbers
//
// Number values are placed under Int64 if integral, Float64 if floating
// point, and the Number string field as a fallback for values neither can
// represent exactly.
//
// # Thread Safety
//
// Node structures are not thread-safe. Concurrent readers are fine;
// a writer requires exclusive access to the whole tree.
package ir
