package encode

import "github.com/nestac/go-nestac/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeJSON() EncodeOption {
	return EncodeFormat(format.JSONFormat)
}
func EncodeTOML() EncodeOption {
	return EncodeFormat(format.TOMLFormat)
}
func EncodeYAML() EncodeOption {
	return EncodeFormat(format.YAMLFormat)
}

// EncodeIndent sets the indent width for JSON output (default 2).
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeCompact suppresses whitespace in JSON output.
func EncodeCompact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}
