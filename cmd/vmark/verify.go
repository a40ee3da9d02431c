package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/versodoc/markup/token"
)

func verify(cfg *VerifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Verify.Parse(cc, args)
	if err != nil {
		cfg.Verify.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, arg := range args {
		ok, err := verifyArg(cfg, cc, arg)
		if err != nil {
			return err
		}
		if !ok {
			bad++
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// verifyArg checks the coverage property: the token literals of a scan,
// concatenated in order, must reproduce the input byte for byte.
func verifyArg(cfg *VerifyConfig, cc *cli.Context, arg string) (bool, error) {
	src, err := readArg(arg)
	if err != nil {
		return false, err
	}
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		return false, fmt.Errorf("error tokenizing %s: %w", arg, err)
	}
	var buf bytes.Buffer
	for i := range toks {
		buf.Write(toks[i].Bytes)
	}
	if bytes.Equal(buf.Bytes(), src) {
		fmt.Fprintf(cc.Out, "%s: ok (%d tokens cover %d bytes)\n", arg, len(toks), len(src))
		return true, nil
	}
	fmt.Fprintf(cc.Out, "%s: token literals do not reconstruct input\n", arg)
	if !cfg.Quiet {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(src), buf.String(), false)
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
	}
	return false, nil
}
