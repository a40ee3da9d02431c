package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/versodoc/markup/ast"
	"github.com/versodoc/markup/token"
)

func build(t *testing.T, in string, opts ...BuildOption) ([]ast.Node, []Diagnostic) {
	t.Helper()
	toks, err := token.Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return Build(toks, opts...)
}

func diagKinds(diags []Diagnostic) []DiagKind {
	res := make([]DiagKind, len(diags))
	for i, d := range diags {
		res[i] = d.Kind
	}
	return res
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		want      []ast.Node
		wantDiags []DiagKind
	}{
		{
			name: "directive",
			in:   "#doc (Manual) \"Intro\" =>\n",
			want: []ast.Node{
				&ast.DocDirective{
					Original:    "Intro",
					FullContent: `#doc (Manual) "Intro" =>`,
				},
			},
		},
		{
			name: "malformed directive keeps raw literal",
			in:   "#doc broken\n",
			want: []ast.Node{
				&ast.DocDirective{FullContent: "#doc broken"},
			},
			wantDiags: []DiagKind{MalformedDirective},
		},
		{
			name: "paragraph split at blank line",
			in:   "one\n\ntwo\n",
			want: []ast.Node{
				&ast.Paragraph{Children: []ast.Node{&ast.Text{Content: "one"}}},
				&ast.Paragraph{Children: []ast.Node{&ast.Text{Content: "two"}}},
			},
		},
		{
			name: "nested containers",
			in:   ":::: section \"Intro\"\n::: example\ninner\n:::\n::::\n",
			want: []ast.Node{
				&ast.Container{
					BlockKind: "section",
					Weight:    4,
					Title:     "Intro",
					Open:      `:::: section "Intro"`,
					Children: []ast.Node{
						&ast.Container{
							BlockKind: "example",
							Weight:    3,
							Open:      "::: example",
							Children: []ast.Node{
								&ast.Paragraph{Children: []ast.Node{&ast.Text{Content: "inner"}}},
							},
						},
					},
				},
			},
		},
		{
			name: "container header with params and trailing title",
			in:   "::: example (name := basic, keep := \"yes\") \"Basic\"\n:::\n",
			want: []ast.Node{
				&ast.Container{
					BlockKind: "example",
					Weight:    3,
					Title:     "Basic",
					Params: []ast.Param{
						{Key: "name", Value: "basic"},
						{Key: "keep", Value: "yes"},
					},
					Open: `::: example (name := basic, keep := "yes") "Basic"`,
				},
			},
		},
		{
			name: "weight mismatched close demoted",
			in:   "::: note\n::::\n",
			want: []ast.Node{
				&ast.Container{
					BlockKind: "note",
					Weight:    3,
					Open:      "::: note",
					Children:  []ast.Node{&ast.Text{Content: "::::"}},
				},
			},
			wantDiags: []DiagKind{StructuralImbalance, StructuralImbalance},
		},
		{
			name: "stray close at top level",
			in:   "hello\n:::\n",
			want: []ast.Node{
				&ast.Paragraph{Children: []ast.Node{&ast.Text{Content: "hello"}}},
				&ast.Text{Content: ":::"},
			},
			wantDiags: []DiagKind{StructuralImbalance},
		},
		{
			name: "unclosed container closed at end of input",
			in:   ":::: a\ntext\n",
			want: []ast.Node{
				&ast.Container{
					BlockKind: "a",
					Weight:    4,
					Open:      ":::: a",
					Children: []ast.Node{
						&ast.Paragraph{Children: []ast.Node{&ast.Text{Content: "text"}}},
					},
				},
			},
			wantDiags: []DiagKind{StructuralImbalance},
		},
		{
			name: "code block",
			in:   "```lean (name := \"ex1\", keep := true)\ntheorem t : True := trivial\n```\n",
			want: []ast.Node{
				&ast.CodeBlock{
					Language: "lean",
					Params: []ast.Param{
						{Key: "name", Value: "ex1"},
						{Key: "keep", Value: "true"},
					},
					Body:  "theorem t : True := trivial",
					Fence: 3,
				},
			},
		},
		{
			name: "metadata wraps next node",
			in:   "%%%\ntitle: \"Doc\"\n%%%\nHello\n",
			want: []ast.Node{
				&ast.MetadataBlock{
					Pairs: []ast.Pair{{Key: "title", Value: "Doc"}},
					Node: &ast.Paragraph{
						Children: []ast.Node{&ast.Text{Content: "Hello"}},
					},
				},
			},
		},
		{
			name: "dangling metadata has no node",
			in:   "%%%\na: 1\n%%%\n",
			want: []ast.Node{
				&ast.MetadataBlock{Pairs: []ast.Pair{{Key: "a", Value: "1"}}},
			},
		},
		{
			name: "inline roles",
			in:   "See {name}`Array.map` and {ref \"x\"}[link] end\n",
			want: []ast.Node{
				&ast.Paragraph{Children: []ast.Node{
					&ast.Text{Content: "See "},
					&ast.InlineRole{Role: "name", Arg: "Array.map"},
					&ast.Text{Content: " and "},
					&ast.InlineRole{
						Role:     "ref",
						Attrs:    `"x"`,
						Arg:      "link",
						Children: []ast.Node{&ast.Text{Content: "link"}},
					},
					&ast.Text{Content: " end"},
				}},
			},
		},
		{
			name: "nested role in bracket argument",
			in:   "{tech}[uses {lean}`Nat` inside]\n",
			want: []ast.Node{
				&ast.Paragraph{Children: []ast.Node{
					&ast.InlineRole{
						Role: "tech",
						Arg:  "uses {lean}`Nat` inside",
						Children: []ast.Node{
							&ast.Text{Content: "uses "},
							&ast.InlineRole{Role: "lean", Arg: "Nat"},
							&ast.Text{Content: " inside"},
						},
					},
				}},
			},
		},
		{
			name: "include and docstring markers",
			in:   "{include lib.lean}\n\n{docstring Foo.bar}\n",
			want: []ast.Node{
				&ast.Paragraph{Children: []ast.Node{&ast.Include{Target: "lib.lean"}}},
				&ast.Paragraph{Children: []ast.Node{&ast.Docstring{Target: "Foo.bar"}}},
			},
		},
		{
			name: "definition list",
			in:   ": term\n\n  A word.\n\n: scope\nVisible.\n\nAfter.\n",
			want: []ast.Node{
				&ast.DefinitionList{Items: []ast.DefItem{
					{Term: "term", Definition: []ast.Node{&ast.Text{Content: "A word."}}},
					{Term: "scope", Definition: []ast.Node{&ast.Text{Content: "Visible."}}},
				}},
				&ast.Paragraph{Children: []ast.Node{&ast.Text{Content: "After."}}},
			},
		},
		{
			name: "header",
			in:   "# Arrays and Indexing\n\nbody\n",
			want: []ast.Node{
				&ast.Header{Level: 1, Original: "Arrays and Indexing"},
				&ast.Paragraph{Children: []ast.Node{&ast.Text{Content: "body"}}},
			},
		},
		{
			name: "header level counts the marker run",
			in:   "### Sub Section\n",
			want: []ast.Node{
				&ast.Header{Level: 3, Original: "Sub Section"},
			},
		},
		{
			name: "doc comment",
			in:   "/- This is\n an intro.\n-/\n",
			want: []ast.Node{
				&ast.DocComment{Original: "This is\n an intro."},
			},
		},
		{
			name: "doc comment keeps delimiters as content",
			in:   "/-\n::: not a block\n-/\n",
			want: []ast.Node{
				&ast.DocComment{Original: "::: not a block"},
			},
		},
		{
			name: "unterminated doc comment closed at end of input",
			in:   "/- open\n",
			want: []ast.Node{
				&ast.DocComment{Original: "open"},
			},
			wantDiags: []DiagKind{StructuralImbalance},
		},
		{
			name: "code keyword lines",
			in:   "import Mathlib.Data\n\nprose\n",
			want: []ast.Node{
				&ast.CodeLine{Content: "import Mathlib.Data"},
				&ast.Paragraph{Children: []ast.Node{&ast.Text{Content: "prose"}}},
			},
		},
		{
			name: "chained metadata regions orphan the first",
			in:   "%%%\na: 1\n%%%\n%%%\nb: 2\n%%%\nText\n",
			want: []ast.Node{
				&ast.MetadataBlock{Pairs: []ast.Pair{{Key: "a", Value: "1"}}},
				&ast.MetadataBlock{
					Pairs: []ast.Pair{{Key: "b", Value: "2"}},
					Node: &ast.Paragraph{
						Children: []ast.Node{&ast.Text{Content: "Text"}},
					},
				},
			},
			wantDiags: []DiagKind{StructuralImbalance},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, diags := build(t, tc.in)
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", d)
			}
			var wantKinds []DiagKind
			if tc.wantDiags != nil {
				wantKinds = tc.wantDiags
			}
			gotKinds := diagKinds(diags)
			if len(gotKinds) == 0 {
				gotKinds = nil
			}
			if d := cmp.Diff(wantKinds, gotKinds); d != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestBuildDiagnosticPositions(t *testing.T) {
	_, diags := build(t, "text\n::::\n")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	d := diags[0]
	if d.Kind != StructuralImbalance {
		t.Errorf("got kind %s, want StructuralImbalance", d.Kind)
	}
	if d.Line != 2 || d.Column != 0 {
		t.Errorf("got position (%d, %d), want (2, 0)", d.Line, d.Column)
	}
}

func TestBuildPositions(t *testing.T) {
	positions := map[ast.Node]*token.Pos{}
	nodes, _ := build(t, ":::: a\ninner\n::::\n", BuildPositions(positions))
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	pos, ok := positions[nodes[0]]
	if !ok {
		t.Fatal("no position recorded for container")
	}
	if pos.Line() != 1 || pos.Col() != 0 {
		t.Errorf("container at (%d, %d), want (1, 0)", pos.Line(), pos.Col())
	}
}

func TestBuildMaxDepth(t *testing.T) {
	in := ":::: a\n:::: b\n::::\n::::\n"
	nodes, diags := build(t, in, BuildMaxDepth(1))
	if len(nodes) != 2 {
		t.Fatalf("got %d root nodes, want 2", len(nodes))
	}
	outer, ok := nodes[0].(*ast.Container)
	if !ok {
		t.Fatalf("got %T, want *ast.Container", nodes[0])
	}
	if len(outer.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(outer.Children))
	}
	if _, ok := outer.Children[0].(*ast.Text); !ok {
		t.Errorf("demoted open is %T, want *ast.Text", outer.Children[0])
	}
	if len(diags) != 2 {
		t.Errorf("got %d diagnostics, want 2", len(diags))
	}
}

func TestBuildNeverPanicsOnImbalance(t *testing.T) {
	inputs := []string{
		"::::\n",
		":::\n:::\n:::\n",
		"```\nnever closed",
		"%%%\nnever closed",
		":::: a\n::: b\n::::\n",
		"#doc\n",
	}
	for _, in := range inputs {
		nodes, _ := build(t, in)
		_ = nodes
	}
}
