package main

import (
	"fmt"
	"io"
	"os"

	nestac "github.com/nestac/go-nestac"
	"github.com/nestac/go-nestac/encode"
	"github.com/nestac/go-nestac/format"
	"github.com/nestac/go-nestac/keypath"
	"github.com/nestac/go-nestac/parse"

	"github.com/scott-cotton/cli"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=compact desc='compact JSON output'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	T bool `cli:"name=t aliases=toml desc='do i/o in toml'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Sep string

	Main *cli.Command
}

func (cfg *MainConfig) sepOpt(_ *cli.Context, v string) (any, error) {
	if v == "" {
		return nil, fmt.Errorf("%w: empty separator", cli.ErrUsage)
	}
	cfg.Sep = v
	return v, nil
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) separator() string {
	if cfg.Sep == "" {
		return keypath.DefaultSeparator
	}
	return cfg.Sep
}

func (cfg *MainConfig) pathOpts() []nestac.Option {
	return []nestac.Option{nestac.Separator(cfg.separator())}
}

// inFormat resolves the input format for a file: explicit flags first,
// then the file extension, then JSON.
func (cfg *MainConfig) inFormat(file string) format.Format {
	fmat := format.JSONFormat
	if f, err := format.FromPath(file); err == nil {
		fmat = f
	}
	switch {
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.T:
		fmat = format.TOMLFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return fmat
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat(file))}
}

// outFormat defaults to the input format so documents round-trip in
// their own syntax unless overridden.
func (cfg *MainConfig) outFormat(in format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return in
}

func (cfg *MainConfig) encOpts(w io.Writer, in format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat(in)),
		encode.EncodeCompact(cfg.Compact),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='treat value argument as a plain string'"`
	Write  bool `cli:"name=w desc='write the result back to the file'"`

	Set *cli.Command
}

type PathsConfig struct {
	*MainConfig

	Match   string
	program *vm.Program

	Paths *cli.Command
}

func (cfg *PathsConfig) matchOpt(_ *cli.Context, v string) (any, error) {
	prg, err := expr.Compile(v, expr.AsBool(), expr.Env(pathEnv{}))
	if err != nil {
		return nil, fmt.Errorf("%w: bad match expression: %w", cli.ErrUsage, err)
	}
	cfg.Match = v
	cfg.program = prg
	return v, nil
}

// pathEnv is the environment a paths -m expression evaluates in.
type pathEnv struct {
	Path  string `expr:"path"`
	Depth int    `expr:"depth"`
	Leaf  bool   `expr:"leaf"`
}
