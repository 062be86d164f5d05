package main

import (
	"fmt"

	"github.com/signadot/go-hepmc2/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 files, got %d", cli.ErrUsage, len(args))
	}
	from, err := readInput(cfg.MainConfig, cc.In, args[0])
	if err != nil {
		return err
	}
	to, err := readInput(cfg.MainConfig, cc.In, args[1])
	if err != nil {
		return err
	}
	lines := libdiff.Events(from, to)
	if !libdiff.Differs(lines) {
		return nil
	}
	if err := libdiff.Write(cc.Out, lines, cfg.diffColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
