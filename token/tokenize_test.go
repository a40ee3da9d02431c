package token

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokCheck struct {
	Type  TokenType
	Value string
}

func project(toks []Token) []tokCheck {
	res := make([]tokCheck, len(toks))
	for i := range toks {
		res[i] = tokCheck{toks[i].Type, toks[i].String()}
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []tokCheck
	}{
		{
			name: "plain text",
			in:   "plain text",
			want: []tokCheck{{TText, "plain text"}},
		},
		{
			name: "directive",
			in:   "#doc (Manual) \"Intro\" =>\nbody\n",
			want: []tokCheck{
				{TDirective, `#doc (Manual) "Intro" =>`},
				{TText, "\nbody\n"},
			},
		},
		{
			name: "directive without arrow ends at line",
			in:   "#doc broken\nrest\n",
			want: []tokCheck{
				{TDirective, "#doc broken"},
				{TText, "\nrest\n"},
			},
		},
		{
			name: "container and block nesting",
			in:   ":::: section \"Intro\"\n::: example\ninner\n:::\n::::\n",
			want: []tokCheck{
				{TContainerOpen, `:::: section "Intro"`},
				{TText, "\n"},
				{TBlockOpen, "::: example"},
				{TText, "\ninner\n"},
				{TBlockClose, ":::"},
				{TText, "\n"},
				{TContainerClose, "::::"},
				{TText, "\n"},
			},
		},
		{
			name: "five colons are text",
			in:   ":::::\n",
			want: []tokCheck{{TText, ":::::\n"}},
		},
		{
			name: "code fence",
			in:   "```lean (name := \"ex\")\ntheorem t\n```\n",
			want: []tokCheck{
				{TCodeFenceOpen, "```lean (name := \"ex\")"},
				{TText, "\ntheorem t\n"},
				{TCodeFenceClose, "```"},
				{TText, "\n"},
			},
		},
		{
			name: "fence content is opaque",
			in:   "```\n::: not a block\n{r}`x`\n```\n",
			want: []tokCheck{
				{TCodeFenceOpen, "```"},
				{TText, "\n::: not a block\n{r}`x`\n"},
				{TCodeFenceClose, "```"},
				{TText, "\n"},
			},
		},
		{
			name: "metadata region",
			in:   "%%%\nk: v\n%%%\n",
			want: []tokCheck{
				{TMetaFence, "%%%"},
				{TText, "\nk: v\n"},
				{TMetaFence, "%%%"},
				{TText, "\n"},
			},
		},
		{
			name: "roles",
			in:   "See {name}`Array.map` and {ref \"x\"}[link] end\n",
			want: []tokCheck{
				{TText, "See "},
				{TRole, "{name}"},
				{TBacktickSpan, "`Array.map`"},
				{TText, " and "},
				{TRole, `{ref "x"}`},
				{TBracketArg, "[link]"},
				{TText, " end\n"},
			},
		},
		{
			name: "unterminated role is text",
			in:   "a {not closed\n",
			want: []tokCheck{{TText, "a {not closed\n"}},
		},
		{
			name: "role cannot start inside backtick span",
			in:   "a `{r}` b\n",
			want: []tokCheck{{TText, "a `{r}` b\n"}},
		},
		{
			name: "include and docstring stand alone",
			in:   "{include lib.lean}\n{docstring Foo.bar}\n",
			want: []tokCheck{
				{TRole, "{include lib.lean}"},
				{TText, "\n"},
				{TRole, "{docstring Foo.bar}"},
				{TText, "\n"},
			},
		},
		{
			name: "definition marker",
			in:   ": term\n  body\n",
			want: []tokCheck{
				{TDefMarker, ": term"},
				{TText, "\n  body\n"},
			},
		},
		{
			name: "bare colon line is text",
			in:   ":\n: \n",
			want: []tokCheck{{TText, ":\n: \n"}},
		},
		{
			name: "header line",
			in:   "# Arrays and Indexing\n\nbody\n",
			want: []tokCheck{
				{THeader, "# Arrays and Indexing"},
				{TText, "\n\nbody\n"},
			},
		},
		{
			name: "header run sets the level",
			in:   "### Sub\n",
			want: []tokCheck{
				{THeader, "### Sub"},
				{TText, "\n"},
			},
		},
		{
			name: "doc comment region",
			in:   "/- intro\nmore\n-/\ntail\n",
			want: []tokCheck{
				{TCommentOpen, "/-"},
				{TText, " intro\nmore\n"},
				{TCommentClose, "-/"},
				{TText, "\ntail\n"},
			},
		},
		{
			name: "indented doc comment markers",
			in:   "  /- a\n  -/\n",
			want: []tokCheck{
				{TCommentOpen, "  /-"},
				{TText, " a\n"},
				{TCommentClose, "  -/"},
				{TText, "\n"},
			},
		},
		{
			name: "comment content is opaque",
			in:   "/-\n::: x\n{r}`y`\n-/\n",
			want: []tokCheck{
				{TCommentOpen, "/-"},
				{TText, "\n::: x\n{r}`y`\n"},
				{TCommentClose, "-/"},
				{TText, "\n"},
			},
		},
		{
			name: "code keyword lines",
			in:   "import Mathlib\nexample : True := trivial\n",
			want: []tokCheck{
				{TCodeLine, "import Mathlib"},
				{TText, "\n"},
				{TCodeLine, "example : True := trivial"},
				{TText, "\n"},
			},
		},
		{
			name: "keyword prefix needs a word boundary",
			in:   "definitions matter\n",
			want: []tokCheck{{TText, "definitions matter\n"}},
		},
		{
			name: "empty input",
			in:   "",
			want: []tokCheck{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			got := project(toks)
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestTokenizeCoverage(t *testing.T) {
	in := `#doc (Manual) "Everything" =>

Intro with {lean}` + "`Array`" + ` and {tech}[induction].

:::: section "Code"
::: example
` + "```lean (name := \"ex1\", keep := true)" + `
theorem t : True := trivial
` + "```" + `
:::
::::

%%%
title: "Doc"
%%%

: term

  A definition.
`
	toks, err := Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	for i := range toks {
		buf.Write(toks[i].Bytes)
	}
	if buf.String() != in {
		t.Errorf("token literals do not reconstruct input:\ngot  %q\nwant %q", buf.String(), in)
	}
}

func TestTokenizeDeterminism(t *testing.T) {
	in := "a {r}`b`\n::: c\nd\n:::\n"
	first, err := Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(project(first), project(second)); d != "" {
		t.Errorf("tokenizing twice differs:\n%s", d)
	}
}

func TestTokenizeBadUTF8(t *testing.T) {
	toks, err := Tokenize(nil, []byte{'a', 0xff, 'b'})
	if err == nil {
		t.Fatal("expected error for invalid utf8")
	}
	if !errors.Is(err, ErrBadUTF8) {
		t.Errorf("got %v, want ErrBadUTF8", err)
	}
	if toks != nil {
		t.Errorf("got %d tokens, want none", len(toks))
	}
	var te *TokenizeErr
	if !errors.As(err, &te) {
		t.Fatalf("got %T, want *TokenizeErr", err)
	}
	if te.Pos.I != 1 {
		t.Errorf("got offset %d, want 1", te.Pos.I)
	}
}
