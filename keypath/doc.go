// Package keypath parses separator-delimited key paths such as "foo.bar"
// into segment sequences. Parsing is pure string splitting: segments have
// no kinds, wildcards, or escapes; whether a segment names an object field
// or an array index is decided during descent by the node it is applied to.
package keypath
