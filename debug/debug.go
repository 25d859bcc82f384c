// Package debug provides env-gated diagnostics for nestac tooling. The
// library core never logs; these switches only affect the CLI and are
// read once at process start.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Paths bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("NESTAC_DEBUG_PARSE")
	d.Paths = boolEnv("NESTAC_DEBUG_PATHS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Paths() bool {
	return d.Paths
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
