package keypath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultSeparator is the segment separator used when callers do not
// supply one.
const DefaultSeparator = "."

// ErrInvalidPath reports a malformed path string: empty input, or a split
// that yields an empty segment (leading, trailing, or doubled separator).
var ErrInvalidPath = errors.New("invalid path")

// Path is an ordered, non-empty sequence of segments. The first segment
// names a child of the root.
type Path []string

// Parse splits path on sep into a Path. There is no escaping: a key that
// contains sep cannot be addressed with that separator; callers address
// such keys by choosing a different separator for the call.
func Parse(path, sep string) (Path, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if sep == "" {
		sep = DefaultSeparator
	}
	segs := strings.Split(path, sep)
	for _, seg := range segs {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment in %q with separator %q", ErrInvalidPath, path, sep)
		}
	}
	return Path(segs), nil
}

// String joins the path back with sep. Parse(p.String(sep), sep) yields p
// for any p produced by Parse.
func (p Path) String(sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}
	return strings.Join(p, sep)
}

// Index interprets seg as a non-negative array index. ok is false for
// anything that is not a plain decimal number.
func Index(seg string) (idx int, ok bool) {
	if seg == "" || seg[0] == '+' || seg[0] == '-' {
		return 0, false
	}
	idx, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return idx, true
}
