package main

import (
	"fmt"

	hepmc2 "github.com/signadot/go-hepmc2"
	"github.com/signadot/go-hepmc2/event"

	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Where == "" {
		return fmt.Errorf("%w: filter requires -where", cli.ErrUsage)
	}
	where, err := hepmc2.CompileWhere(cfg.Where)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return pipe(cfg.MainConfig, cc.Out, cc.In, args, cfg.N, whereTransform(where))
}

func whereTransform(where *hepmc2.Where) transform {
	return func(ev *event.Event) (*event.Event, error) {
		ok, err := where.Match(ev)
		if err != nil || !ok {
			return nil, err
		}
		return ev, nil
	}
}
