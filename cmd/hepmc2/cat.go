package main

import (
	"github.com/scott-cotton/cli"
)

func cat(cfg *CatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cat.Parse(cc, args)
	if err != nil {
		cfg.Cat.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return pipe(cfg.MainConfig, cc.Out, cc.In, args, cfg.N, nil)
}
