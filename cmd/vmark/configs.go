package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/versodoc/markup/format"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ParseConfig struct {
	*MainConfig
	Dir string `cli:"name=d aliases=dir desc='output directory (default derived from input name)'"`

	Parse *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Artifact format.Artifact

	View *cli.Command
}

func (cfg *ViewConfig) artifactOpt(_ *cli.Context, v string) (any, error) {
	a, err := format.ParseArtifact(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Artifact = a
	return a, nil
}

type VerifyConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='suppress diff output on mismatch'"`

	Verify *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}

type TranslateConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`

	Translate *cli.Command
}

type FixtureConfig struct {
	*MainConfig
	Dir string `cli:"name=d aliases=dir desc='directory to write samples to (default samples)'"`

	Fixture *cli.Command
}
