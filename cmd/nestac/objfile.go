package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nestac/go-nestac/debug"
	"github.com/nestac/go-nestac/ir"
	"github.com/nestac/go-nestac/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	n, err := parse.Parse(d, opts...)
	if debug.Parse() {
		if err != nil {
			debug.Logf("parse %q: %s", path, err)
		} else {
			debug.Logf("parse %q: %d bytes -> %s root", path, len(d), n.Type)
		}
	}
	return n, err
}
