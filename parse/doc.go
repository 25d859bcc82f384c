// Package parse converts document text (JSON, TOML, or YAML) into ir.Node
// trees. All three adapters preserve the source document's field order,
// which the path enumerator depends on. Parsing here is the external
// document layer: the addressing core in the module root never touches
// document syntax itself.
package parse
