package token

import (
	"testing"
)

func TestLineCol(t *testing.T) {
	d := NewPosDoc([]byte("ab\ncd\n\nef"))
	checks := []struct {
		off, line, col int
	}{
		{0, 1, 0},
		{1, 1, 1},
		{2, 1, 2}, // the newline belongs to its line
		{3, 2, 0},
		{5, 2, 2},
		{6, 3, 0},
		{7, 4, 0},
		{8, 4, 1},
	}
	for _, c := range checks {
		line, col := d.LineCol(c.off)
		if line != c.line || col != c.col {
			t.Errorf("LineCol(%d) = (%d, %d), want (%d, %d)", c.off, line, col, c.line, c.col)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	type posCheck struct {
		typ       TokenType
		line, col int
	}
	tests := []struct {
		name   string
		input  string
		checks []posCheck
	}{
		{
			name:  "text spanning lines is one token",
			input: "a\nb",
			checks: []posCheck{
				{TText, 1, 0},
			},
		},
		{
			name:  "directive on second line",
			input: "x\n#doc t =>\n",
			checks: []posCheck{
				{TText, 1, 0},
				{TDirective, 2, 0},
				{TText, 2, 9},
			},
		},
		{
			name:  "role positions",
			input: "ab {r}`c`",
			checks: []posCheck{
				{TText, 1, 0},
				{TRole, 1, 3},
				{TBacktickSpan, 1, 6},
			},
		},
		{
			name:  "delimiters at line starts",
			input: ":::: a\n::: b\n:::\n::::",
			checks: []posCheck{
				{TContainerOpen, 1, 0},
				{TText, 1, 6},
				{TBlockOpen, 2, 0},
				{TText, 2, 5},
				{TBlockClose, 3, 0},
				{TText, 3, 3},
				{TContainerClose, 4, 0},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tc.input))
			if err != nil {
				t.Fatal(err)
			}
			if len(toks) != len(tc.checks) {
				t.Fatalf("got %d tokens, want %d", len(toks), len(tc.checks))
			}
			for i, c := range tc.checks {
				tok := &toks[i]
				if tok.Type != c.typ {
					t.Errorf("token %d: type %s, want %s", i, tok.Type, c.typ)
				}
				line, col := tok.Pos.LineCol()
				if line != c.line || col != c.col {
					t.Errorf("token %d (%s): at (%d, %d), want (%d, %d)", i, tok.Type, line, col, c.line, c.col)
				}
			}
		})
	}
}
