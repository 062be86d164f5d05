package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-hepmc2/encode"
	"github.com/signadot/go-hepmc2/format"
	"github.com/signadot/go-hepmc2/libdiff"
	"github.com/signadot/go-hepmc2/stream"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='colour record prefixes'"`
	Gops   bool `cli:"name=gops desc='start a gops diagnostics agent'"`
	Resync bool `cli:"name=resync desc='skip malformed events instead of stopping'"`

	Ctx context.Context

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) context() context.Context {
	if cfg.Ctx == nil {
		return context.Background()
	}
	return cfg.Ctx
}

func (cfg *MainConfig) readOpts() []stream.StreamOption {
	res := []stream.StreamOption{stream.WithLogger(theLog)}
	if cfg.Resync {
		res = append(res, stream.WithResync())
	}
	return res
}

func (cfg *MainConfig) writeOpts(w io.Writer) []stream.StreamOption {
	return []stream.StreamOption{
		stream.WithLogger(theLog),
		stream.WithEncodeOptions(encode.EncodeColors(cfg.colors(w))),
	}
}

// useColor reports whether output to w is coloured: -color when given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorSet = opt.Value != nil
			break
		}
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if !cfg.useColor(w) {
		return nil
	}
	return encode.NewColors()
}

func (cfg *MainConfig) diffColor(w io.Writer) func(libdiff.Op, string) string {
	if !cfg.useColor(w) {
		return nil
	}
	red, green := color.New(color.FgRed), color.New(color.FgGreen)
	red.EnableColor()
	green.EnableColor()
	return func(op libdiff.Op, s string) string {
		switch op {
		case libdiff.Delete:
			return red.Sprint(s)
		case libdiff.Insert:
			return green.Sprint(s)
		default:
			return s
		}
	}
}

type CatConfig struct {
	*MainConfig
	N int `cli:"name=n desc='stop after n events (default all)'"`

	Cat *cli.Command
}

type DumpConfig struct {
	*MainConfig
	OutFormat format.Format

	Dump *cli.Command
}

func (cfg *DumpConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.OutFormat = f
		return f, nil
	})
}

type StatConfig struct {
	*MainConfig
	J int `cli:"name=j desc='number of files read concurrently'"`

	Stat *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='boolean expression over event, see hepmc2.Where'"`
	N     int    `cli:"name=n desc='stop after n matching events (default all)'"`

	Filter *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p desc='file holding a JSON patch (RFC 6902)'"`

	Patch *cli.Command
}
