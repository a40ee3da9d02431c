package main

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

// translate applies a patch document to a tree artifact. An array patch is
// taken as an RFC 6902 operation list; an object patch as an RFC 7386
// merge patch. This is how an external translation step fills the
// "translated" fields of directive nodes.
func translate(cfg *TranslateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Translate.Parse(cc, args)
	if err != nil {
		cfg.Translate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: translate requires a patch and a tree file", cli.ErrUsage)
	}
	var patch []byte
	if cfg.String {
		patch = []byte(args[0])
	} else {
		patch, err = readArg(args[0])
		if err != nil {
			return err
		}
	}
	doc, err := readArg(args[1])
	if err != nil {
		return err
	}
	trimmed := bytes.TrimLeft(patch, " \t\r\n")
	var res []byte
	if len(trimmed) > 0 && trimmed[0] == '[' {
		p, err := jsonpatch.DecodePatch(patch)
		if err != nil {
			return fmt.Errorf("error decoding patch: %w", err)
		}
		res, err = p.Apply(doc)
		if err != nil {
			return fmt.Errorf("error applying patch to %s: %w", args[1], err)
		}
	} else {
		res, err = jsonpatch.MergePatch(doc, patch)
		if err != nil {
			return fmt.Errorf("error merge patching %s: %w", args[1], err)
		}
	}
	res = append(res, '\n')
	_, err = cc.Out.Write(res)
	return err
}
