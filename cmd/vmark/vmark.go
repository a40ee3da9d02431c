package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/versodoc/markup/ast"
	"github.com/versodoc/markup/parse"
	"github.com/versodoc/markup/token"
)

func vmarkMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func readArg(arg string) ([]byte, error) {
	var rd io.Reader
	if arg == "-" {
		rd = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		rd = f
	}
	return io.ReadAll(rd)
}

func parseArg(arg string) ([]byte, []token.Token, []ast.Node, []parse.Diagnostic, error) {
	src, err := readArg(arg)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error tokenizing %s: %w", arg, err)
	}
	nodes, diags := parse.Build(toks)
	return src, toks, nodes, diags, nil
}
