package keypath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		sep     string
		want    Path
		wantErr bool
	}{
		{name: "single segment", path: "foo", sep: ".", want: Path{"foo"}},
		{name: "nested", path: "foo.bar.baz", sep: ".", want: Path{"foo", "bar", "baz"}},
		{name: "numeric segments", path: "items.0.name", sep: ".", want: Path{"items", "0", "name"}},
		{name: "empty sep uses default", path: "a.b", sep: "", want: Path{"a", "b"}},
		{name: "custom separator", path: "networks@192.168.0.1", sep: "@", want: Path{"networks", "192.168.0.1"}},
		{name: "multi-rune separator", path: "a::b::c", sep: "::", want: Path{"a", "b", "c"}},
		{name: "empty path", path: "", sep: ".", wantErr: true},
		{name: "lone separator", path: ".", sep: ".", wantErr: true},
		{name: "leading separator", path: ".a", sep: ".", wantErr: true},
		{name: "trailing separator", path: "a.", sep: ".", wantErr: true},
		{name: "doubled separator", path: "a..b", sep: ".", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.path, tt.sep)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPath) {
					t.Fatalf("Parse(%q, %q) err = %v, want ErrInvalidPath", tt.path, tt.sep, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q, %q): %v", tt.path, tt.sep, err)
			}
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("Parse(%q, %q) (-want +got):\n%s", tt.path, tt.sep, d)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	for _, tt := range []struct {
		path string
		sep  string
	}{
		{"foo.bar", "."},
		{"a/b/c", "/"},
		{"one", "."},
	} {
		p, err := Parse(tt.path, tt.sep)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.String(tt.sep); got != tt.path {
			t.Errorf("round trip of %q with %q = %q", tt.path, tt.sep, got)
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		seg string
		idx int
		ok  bool
	}{
		{"0", 0, true},
		{"17", 17, true},
		{"", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"1.5", 0, false},
		{"abc", 0, false},
		{"1a", 0, false},
	}
	for _, tt := range tests {
		idx, ok := Index(tt.seg)
		if idx != tt.idx || ok != tt.ok {
			t.Errorf("Index(%q) = (%d, %v), want (%d, %v)", tt.seg, idx, ok, tt.idx, tt.ok)
		}
	}
}
