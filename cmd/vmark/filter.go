package main

import (
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/versodoc/markup/encode"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires an expression argument", cli.ErrUsage)
	}
	prog, err := expr.Compile(args[0], expr.Env(map[string]any{}), expr.AsBool())
	if err != nil {
		return fmt.Errorf("%w: bad filter expression: %w", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := filterArg(cc, prog, arg); err != nil {
			return err
		}
	}
	return nil
}

func filterArg(cc *cli.Context, prog *vm.Program, arg string) error {
	_, toks, _, _, err := parseArg(arg)
	if err != nil {
		return err
	}
	kept := []encode.TokenRecord{}
	for _, rec := range encode.TokenRecords(toks) {
		env := map[string]any{
			"type":   rec.Type.String(),
			"value":  rec.Value,
			"line":   rec.Line,
			"column": rec.Column,
		}
		out, err := expr.Run(prog, env)
		if err != nil {
			return fmt.Errorf("error filtering %s: %w", arg, err)
		}
		if out.(bool) {
			kept = append(kept, rec)
		}
	}
	d, err := json.MarshalIndent(kept, "", "  ")
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = cc.Out.Write(d)
	return err
}
