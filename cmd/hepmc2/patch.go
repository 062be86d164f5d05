package main

import (
	"fmt"
	"os"

	hepmc2 "github.com/signadot/go-hepmc2"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p", cli.ErrUsage)
	}
	d, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return err
	}
	p, err := hepmc2.DecodePatch(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", cfg.PatchFile, err)
	}
	return pipe(cfg.MainConfig, cc.Out, cc.In, args, -1, p.Apply)
}
