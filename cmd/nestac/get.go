package main

import (
	"fmt"

	nestac "github.com/nestac/go-nestac"
	"github.com/nestac/go-nestac/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := getFile(cfg, cc, arg, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, file, path string) error {
	root, err := getObjFile(cc, file, cfg.parseOpts(file)...)
	if err != nil {
		return err
	}
	val, err := nestac.Read(root, path, cfg.pathOpts()...)
	if err != nil {
		return err
	}
	if val == nil {
		return fmt.Errorf("no value at %q", path)
	}
	return encode.Encode(val, cc.Out, cfg.encOpts(cc.Out, cfg.inFormat(file))...)
}
