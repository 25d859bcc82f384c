// Package gomap bridges plain Go values and ir.Node trees for callers
// that already hold decoded data rather than document text.
package gomap
