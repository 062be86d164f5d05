package main

import (
	"context"
	"runtime"

	"github.com/signadot/go-hepmc2/format"

	"github.com/scott-cotton/cli"
)

func MainCommand(ctx context.Context) *cli.Command {
	cfg := &MainConfig{Ctx: ctx}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "hepmc2").
		WithSynopsis("hepmc2 [opts] command [opts]").
		WithDescription("hepmc2 is a tool for working with HepMC2 IO_GenEvent event files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return hepmc2Main(cfg, cc, args)
		}).
		WithSubs(
			CatCommand(cfg),
			DumpCommand(cfg),
			StatCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			FilterCommand(cfg),
			PatchCommand(cfg))
}

func CatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CatConfig{MainConfig: mainCfg, N: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cat, "cat").
		WithAliases("c").
		WithSynopsis("cat [-n N] [files]").
		WithDescription("read events and write them back as one normalised listing").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cat(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg, OutFormat: format.JSONFormat}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [-O json|yaml|hepmc2] [files]").
		WithDescription("dump the event model, one JSON object per line or one YAML document per event").
		WithOpts(&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y, hepmc2/h",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func StatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatConfig{MainConfig: mainCfg, J: runtime.GOMAXPROCS(0)}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Stat, "stat").
		WithAliases("s").
		WithSynopsis("stat [-j N] [files]").
		WithDescription("print event, vertex and particle counts and the mean cross section of each file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return stat(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check [files]").
		WithDescription("check that events survive a write and read unchanged").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("diff the normalised listings of two event files, exit status 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg, N: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter -where <expr> [files]").
		WithDescription(`write the events for which expr is true, for example 'count(21) > 2 && event.Scale < 100'`).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch -p <patch.json> [files]").
		WithDescription("apply a JSON patch to every event").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
