package format

import (
	"errors"
	"testing"
)

func TestParseArtifact(t *testing.T) {
	cases := map[string]Artifact{
		"input":  RawArtifact,
		"raw":    RawArtifact,
		"i":      RawArtifact,
		"tokens": TokensArtifact,
		"k":      TokensArtifact,
		"tree":   TreeArtifact,
		"t":      TreeArtifact,
		"report": ReportArtifact,
		"r":      ReportArtifact,
	}
	for in, want := range cases {
		got, err := ParseArtifact(in)
		if err != nil {
			t.Errorf("ParseArtifact(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseArtifact(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseArtifact("nope"); !errors.Is(err, ErrBadArtifact) {
		t.Errorf("got %v, want ErrBadArtifact", err)
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	for _, a := range AllArtifacts() {
		d, err := a.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Artifact
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != a {
			t.Errorf("round trip %s: got %s", a, back)
		}
	}
}

func TestArtifactFilenames(t *testing.T) {
	want := map[Artifact]string{
		RawArtifact:    "input.md",
		TokensArtifact: "tokens.json",
		TreeArtifact:   "tree.json",
		ReportArtifact: "report.txt",
	}
	for a, name := range want {
		if a.Filename() != name {
			t.Errorf("%s filename = %q, want %q", a, a.Filename(), name)
		}
	}
}
