package token

import (
	"bytes"
	"testing"
)

func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"",
		"plain text",
		"#doc (Manual) \"Intro\" =>\nbody\n",
		"#doc broken\n",
		"#doc (Manual\n\"still open\") =>\n",
		":::: section\ntext\n::::\n",
		"::: example\n:::\n",
		":::::\n",
		"```lean (name := ex)\ncode\n```\n",
		"%%%\nauthor: x\n%%%\n",
		"{kw}`simp`",
		"{ref}[see {kw}`simp`]",
		"{include lib.lean}",
		": term\n\ndefinition body\n",
		"`{kw}` literal",
		"::::\n:::\n::::\n",
		"text : not a marker\n",
		"# Heading\n\nbody\n",
		"/- note\n-/\n",
		"/- never closed\n",
		"import Mathlib\nend Foo\n",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, src []byte) {
		toks, err := Tokenize(nil, src)
		if err != nil {
			if len(toks) != 0 {
				t.Fatalf("tokens returned alongside error %v", err)
			}
			return
		}
		var buf bytes.Buffer
		for i := range toks {
			buf.Write(toks[i].Bytes)
		}
		if !bytes.Equal(buf.Bytes(), src) {
			t.Fatalf("coverage mismatch:\ngot  %q\nwant %q", buf.Bytes(), src)
		}
		again, err := Tokenize(nil, src)
		if err != nil {
			t.Fatalf("second pass errored: %v", err)
		}
		if len(again) != len(toks) {
			t.Fatalf("non-deterministic: %d vs %d tokens", len(toks), len(again))
		}
	})
}
