package main

import (
	"fmt"

	nestac "github.com/nestac/go-nestac"
	"github.com/nestac/go-nestac/debug"
	"github.com/nestac/go-nestac/ir"
	"github.com/nestac/go-nestac/keypath"

	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func paths(cfg *PathsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Paths.Parse(cc, args)
	if err != nil {
		cfg.Paths.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := pathsFile(cfg, cc, arg); err != nil {
			return fmt.Errorf("error listing paths of %s: %w", arg, err)
		}
	}
	return nil
}

func pathsFile(cfg *PathsConfig, cc *cli.Context, file string) error {
	root, err := getObjFile(cc, file, cfg.parseOpts(file)...)
	if err != nil {
		return err
	}
	all := nestac.Paths(root, cfg.pathOpts()...)
	if debug.Paths() {
		debug.Logf("paths %q: %d paths", file, len(all))
	}
	for _, path := range all {
		if cfg.program != nil {
			ok, err := matchPath(cfg, root, path)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}
		if _, err := fmt.Fprintln(cc.Out, path); err != nil {
			return err
		}
	}
	return nil
}

func matchPath(cfg *PathsConfig, root *ir.Node, path string) (bool, error) {
	p, err := keypath.Parse(path, cfg.separator())
	if err != nil {
		return false, err
	}
	val, err := nestac.Read(root, path, cfg.pathOpts()...)
	if err != nil {
		return false, err
	}
	env := pathEnv{
		Path:  path,
		Depth: len(p),
		Leaf:  val != nil && val.Type.IsLeaf(),
	}
	res, err := vm.Run(cfg.program, env)
	if err != nil {
		return false, fmt.Errorf("match expression: %w", err)
	}
	ok, isBool := res.(bool)
	if !isBool {
		return false, fmt.Errorf("match expression did not evaluate to a bool")
	}
	return ok, nil
}
