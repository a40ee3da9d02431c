package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/versodoc/markup/parse"
	"github.com/versodoc/markup/token"
)

func TestWriteSamplesOrdered(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if err := writeSamples(dir, &out); err != nil {
		t.Fatal(err)
	}
	var want strings.Builder
	for _, name := range []string{"blocks.md", "deflist.md", "roles.md"} {
		fmt.Fprintf(&want, "wrote %s\n", filepath.Join(dir, name))
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing sample: %v", err)
		}
	}
	if out.String() != want.String() {
		t.Errorf("output:\n%swant:\n%s", out.String(), want.String())
	}
}

func TestSamplesParseClean(t *testing.T) {
	for name, content := range samples {
		toks, err := token.Tokenize(nil, []byte(content))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		nodes, diags := parse.Build(toks)
		if len(nodes) == 0 {
			t.Errorf("%s: no nodes", name)
		}
		if len(diags) != 0 {
			t.Errorf("%s: diagnostics %v", name, diags)
		}
	}
}
