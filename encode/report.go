package encode

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/versodoc/markup/ast"
	"github.com/versodoc/markup/parse"
	"github.com/versodoc/markup/token"
)

// Report summarizes one parse run for the human-readable report artifact.
type Report struct {
	ContentLength int
	TokenTotal    int
	NodeTotal     int
	TokenCounts   map[string]int
	Roles         []RoleOccurrence
	NodeCounts    map[string]int
	CodeBlocks    []*ast.CodeBlock
	DefLists      []*ast.DefinitionList
	Containers    []*ast.Container
	Diagnostics   []parse.Diagnostic
}

// RoleOccurrence records one inline role marker and where it was found.
type RoleOccurrence struct {
	Literal string
	Line    int
}

func BuildReport(src []byte, toks []token.Token, nodes []ast.Node, diags []parse.Diagnostic) *Report {
	r := &Report{
		ContentLength: utf8.RuneCount(src),
		TokenTotal:    len(toks),
		NodeTotal:     len(nodes),
		TokenCounts:   map[string]int{},
		NodeCounts:    map[string]int{},
		Diagnostics:   diags,
	}
	for i := range toks {
		t := &toks[i]
		r.TokenCounts[t.Type.String()]++
		if t.Type == token.TRole {
			r.Roles = append(r.Roles, RoleOccurrence{
				Literal: t.String(),
				Line:    t.Pos.Line(),
			})
		}
	}
	for _, n := range nodes {
		ast.Walk(n, func(n ast.Node) {
			r.NodeCounts[n.Kind().String()]++
			switch n := n.(type) {
			case *ast.CodeBlock:
				if len(n.Params) > 0 {
					r.CodeBlocks = append(r.CodeBlocks, n)
				}
			case *ast.DefinitionList:
				r.DefLists = append(r.DefLists, n)
			case *ast.Container:
				r.Containers = append(r.Containers, n)
			}
		})
	}
	return r
}

// WriteReport renders the report as text. When colored is set, headings
// are bold and diagnostics yellow.
func WriteReport(w io.Writer, r *Report, colored bool) error {
	head := fmt.Sprint
	warn := fmt.Sprint
	if colored {
		head = color.New(color.Bold).Sprint
		warn = color.New(color.FgYellow).Sprint
	}
	var err error
	pf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	pf("%s\n\n", head("=== VERSO MARKUP REPORT ==="))

	pf("%s\n", head("Statistics:"))
	pf("- Content length: %d characters\n", r.ContentLength)
	pf("- Total tokens: %d\n", r.TokenTotal)
	pf("- Tree nodes: %d\n", r.NodeTotal)
	pf("- Diagnostics: %d\n\n", len(r.Diagnostics))

	pf("%s\n", head("Token types:"))
	for _, k := range sortedKeys(r.TokenCounts) {
		pf("- %s: %d\n", k, r.TokenCounts[k])
	}
	pf("\n")

	if len(r.Roles) > 0 {
		pf("%s\n", head("Inline roles detected:"))
		for _, ro := range r.Roles {
			pf("- %s (line %d)\n", strconv.Quote(ro.Literal), ro.Line)
		}
		pf("\n")
	}

	pf("%s\n", head("Node types:"))
	for _, k := range sortedKeys(r.NodeCounts) {
		pf("- %s: %d\n", k, r.NodeCounts[k])
	}
	pf("\n")

	if len(r.CodeBlocks) > 0 {
		pf("%s\n", head("Code blocks with parameters:"))
		for i, cb := range r.CodeBlocks {
			pf("- Block %d: language=%s, params=%s\n", i+1, cb.Language, paramString(cb.Params))
		}
		pf("\n")
	}

	if len(r.DefLists) > 0 {
		pf("%s\n", head("Definition lists:"))
		for i, dl := range r.DefLists {
			pf("- List %d: %d definitions\n", i+1, len(dl.Items))
		}
		pf("\n")
	}

	if len(r.Containers) > 0 {
		pf("%s\n", head("Containers:"))
		for i, c := range r.Containers {
			title := c.Title
			if title == "" {
				title = "No title"
			}
			pf("- Container %d: kind=%s, title=%q\n", i+1, c.BlockKind, title)
		}
		pf("\n")
	}

	if len(r.Diagnostics) > 0 {
		pf("%s\n", head("Diagnostics:"))
		for _, d := range r.Diagnostics {
			pf("- %s\n", warn(d.String()))
		}
	}
	return err
}

func sortedKeys(m map[string]int) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

func paramString(ps []ast.Param) string {
	s := "{"
	for i, p := range ps {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %q", p.Key, p.Value)
	}
	return s + "}"
}
