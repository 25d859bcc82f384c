// Package nestac addresses nodes inside tree-shaped documents with
// separator-delimited key paths such as "foo.bar".
//
// It is meant for bulk edits over many semi-structured documents where
// hand-writing per-field traversal is not practical: parse a document
// into an ir.Node tree (package parse covers JSON, TOML, and YAML), then
// Read, Update, or enumerate with Paths.
//
//	root, _ := parse.Parse(data, parse.ParseJSON())
//	val, err := nestac.Read(root, "foo.bar")
//	old, err := nestac.Update(root, "foo.bar", ir.FromString("updated!"))
//	all := nestac.Paths(root)
//
// The separator defaults to "." and can be overridden per call:
//
//	val, err := nestac.Read(root, "networks@192.168.0.1", nestac.Separator("@"))
//
// A path that does not resolve is a miss, not an error: Read and Update
// return nil for it and Update leaves the tree untouched. The only error
// these functions return wraps keypath.ErrInvalidPath, for path strings
// that are empty or contain empty segments.
//
// Array elements are addressed by plain decimal segments ("items.0"), the
// same syntax Paths emits, so every enumerated path reads back.
package nestac
