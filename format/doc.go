// Package format names the document syntaxes nestac adapters understand.
package format
