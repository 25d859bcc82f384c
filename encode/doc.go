// Package encode renders ir.Node trees back to document text in JSON,
// TOML, or YAML, keeping field order. JSON output supports ANSI colors
// for terminals.
package encode
