package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/versodoc/markup/encode"
	"github.com/versodoc/markup/format"
)

func parseCmd(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		cfg.Parse.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: parse requires at least one input file", cli.ErrUsage)
	}
	if cfg.Dir != "" && len(args) > 1 {
		return fmt.Errorf("%w: -d only applies to a single input file", cli.ErrUsage)
	}
	for _, arg := range args {
		if err := parseOne(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func parseOne(cfg *ParseConfig, cc *cli.Context, arg string) error {
	src, toks, nodes, diags, err := parseArg(arg)
	if err != nil {
		return err
	}
	dir := cfg.Dir
	if dir == "" {
		dir = artifactDir(arg)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, format.RawArtifact.Filename()), src, 0644); err != nil {
		return err
	}
	tf, err := os.Create(filepath.Join(dir, format.TokensArtifact.Filename()))
	if err != nil {
		return err
	}
	if err := encode.EncodeTokens(tf, toks); err != nil {
		tf.Close()
		return fmt.Errorf("error encoding tokens for %s: %w", arg, err)
	}
	if err := tf.Close(); err != nil {
		return err
	}
	nf, err := os.Create(filepath.Join(dir, format.TreeArtifact.Filename()))
	if err != nil {
		return err
	}
	if err := encode.EncodeTree(nf, nodes); err != nil {
		nf.Close()
		return fmt.Errorf("error encoding tree for %s: %w", arg, err)
	}
	if err := nf.Close(); err != nil {
		return err
	}
	rf, err := os.Create(filepath.Join(dir, format.ReportArtifact.Filename()))
	if err != nil {
		return err
	}
	rep := encode.BuildReport(src, toks, nodes, diags)
	if err := encode.WriteReport(rf, rep, false); err != nil {
		rf.Close()
		return err
	}
	if err := rf.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s: wrote %d artifacts to %s (%d tokens, %d nodes, %d diagnostics)\n",
		arg, len(format.AllArtifacts()), dir, len(toks), len(nodes), len(diags))
	return nil
}

func artifactDir(arg string) string {
	if arg == "-" {
		return "stdin"
	}
	base := filepath.Base(arg)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
