package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/scott-cotton/cli"
)

func fixture(cfg *FixtureConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fixture.Parse(cc, args)
	if err != nil {
		cfg.Fixture.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: fixture takes no arguments", cli.ErrUsage)
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "samples"
	}
	return writeSamples(dir, cc.Out)
}

// writeSamples writes the fixture documents in name order so runs are
// reproducible.
func writeSamples(dir string, out io.Writer) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(samples[name]), 0644); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", filepath.Join(dir, name))
	}
	return nil
}

var samples = map[string]string{
	"roles.md": `# Inline Roles

Text with {lean}` + "`Array`" + ` and {lean type:="Nat → Prop"}` + "`theorem`" + `.

Also {name}` + "`MyTheorem`" + ` and {keyword}` + "`simp`" + ` keyword.

{tech}[Mathematical induction] is important.

See {ref "array-syntax"}[array literal syntax] for details.
`,
	"blocks.md": `#doc (Manual) "Structured Blocks" =>

{include library.lean}

{docstring MyFunction}

:::: section (name := "definitions") "Definitions"

::: definition (formal := true) "Function Definition"
` + "```lean (name := \"my_function\")" + `
def myFunction (n : Nat) : Nat := n + 1
` + "```" + `
:::

::::

%%%
title: "Mathematics Foundation"
author: "Sample Author"
%%%
`,
	"deflist.md": `# Definitions

: term

  A word with a precise meaning.

: scope

  The region where a name is visible.

Plain paragraph after the list.
`,
}
