package main

import (
	"github.com/scott-cotton/cli"

	"github.com/versodoc/markup/format"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "vmark").
		WithSynopsis("vmark [opts] command [opts]").
		WithDescription("vmark is a tool for working with verso documentation markup.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return vmarkMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			ViewCommand(cfg),
			VerifyCommand(cfg),
			FilterCommand(cfg),
			TranslateCommand(cfg),
			FixtureCommand(cfg))
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p", "pa").
		WithSynopsis("parse [-d dir] [files]").
		WithDescription("parse markup files and write input, token, tree, and report artifacts").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parseCmd(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg, Artifact: format.ReportArtifact}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "a",
		Aliases:     []string{"artifact"},
		Description: "artifact to view: tokens/k, tree/t, report/r, input/i",
		Type:        cli.NamedFuncOpt(cfg.artifactOpt, "(artifact)"),
	})
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-a artifact] [files]").
		WithDescription("parse markup files and view one artifact").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func VerifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VerifyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Verify, "verify").
		WithAliases("ver").
		WithSynopsis("verify [files]").
		WithDescription("check that token literals reconstruct each input exactly").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return verify(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter <expr> [files]").
		WithDescription("select token records matching an expression over type, value, line, column").
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

func TranslateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TranslateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Translate, "translate").
		WithAliases("tr").
		WithSynopsis("translate <patch> <tree.json>").
		WithDescription("apply a JSON patch or merge patch to a tree artifact, filling translated fields").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return translate(cfg, cc, args)
		})
}

func FixtureCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FixtureConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fixture, "fixture").
		WithSynopsis("fixture [-d dir]").
		WithDescription("write sample markup files for development").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fixture(cfg, cc, args)
		})
}
