package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/versodoc/markup/encode"
	"github.com/versodoc/markup/format"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := viewArg(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func viewArg(cfg *ViewConfig, cc *cli.Context, arg string) error {
	src, toks, nodes, diags, err := parseArg(arg)
	if err != nil {
		return err
	}
	switch cfg.Artifact {
	case format.RawArtifact:
		_, err := cc.Out.Write(src)
		return err
	case format.TokensArtifact:
		return encode.EncodeTokens(cc.Out, toks)
	case format.TreeArtifact:
		return encode.EncodeTree(cc.Out, nodes)
	case format.ReportArtifact:
		rep := encode.BuildReport(src, toks, nodes, diags)
		return encode.WriteReport(cc.Out, rep, cfg.colored(cc.Out))
	default:
		return fmt.Errorf("%w: %v", format.ErrBadArtifact, cfg.Artifact)
	}
}
