package main

import (
	"bytes"
	"fmt"
	"os"

	nestac "github.com/nestac/go-nestac"
	"github.com/nestac/go-nestac/encode"
	"github.com/nestac/go-nestac/ir"
	"github.com/nestac/go-nestac/parse"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a key path and a value", cli.ErrUsage)
	}
	path, valArg := args[0], args[1]
	args = args[2:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := setFile(cfg, cc, arg, path, valArg); err != nil {
			return fmt.Errorf("error updating %s at %s: %w", arg, path, err)
		}
	}
	return nil
}

// setValue interprets the value argument as a JSON document unless -s is
// given or it does not parse, in which case it is a plain string.
func setValue(cfg *SetConfig, valArg string) *ir.Node {
	if cfg.String {
		return ir.FromString(valArg)
	}
	n, err := parse.Parse([]byte(valArg), parse.ParseJSON())
	if err != nil {
		return ir.FromString(valArg)
	}
	return n
}

func setFile(cfg *SetConfig, cc *cli.Context, file, path, valArg string) error {
	root, err := getObjFile(cc, file, cfg.parseOpts(file)...)
	if err != nil {
		return err
	}
	old, err := nestac.Update(root, path, setValue(cfg, valArg), cfg.pathOpts()...)
	if err != nil {
		return err
	}
	if old == nil {
		return fmt.Errorf("no value at %q", path)
	}
	if !cfg.Write || file == "-" {
		return encode.Encode(root, cc.Out, cfg.encOpts(cc.Out, cfg.inFormat(file))...)
	}
	buf := bytes.NewBuffer(nil)
	// no colors when writing back to the file
	if err := encode.Encode(root, buf,
		encode.EncodeFormat(cfg.outFormat(cfg.inFormat(file))),
		encode.EncodeCompact(cfg.Compact)); err != nil {
		return err
	}
	return os.WriteFile(file, buf.Bytes(), 0o644)
}
