package parse

import (
	"errors"
	"fmt"

	"github.com/nestac/go-nestac/format"
	"github.com/nestac/go-nestac/ir"
)

var ErrParse = errors.New("parse error")

// Parse converts document text into an ir.Node tree, preserving the
// document's field order. The input format defaults to JSON; override it
// with ParseTOML, ParseYAML, or ParseFormat.
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat:
		return parseJSON(data)
	case format.TOMLFormat:
		return parseTOML(data)
	case format.YAMLFormat:
		return parseYAML(data)
	}
	return nil, fmt.Errorf("%w: unknown format %d", format.ErrBadFormat, pOpts.format)
}
