package format

import (
	"errors"
	"fmt"
)

// Artifact names one of the outputs a parse run produces.
type Artifact int

const (
	RawArtifact Artifact = iota
	TokensArtifact
	TreeArtifact
	ReportArtifact
)

var ErrBadArtifact = errors.New("bad artifact")

func ParseArtifact(v string) (Artifact, error) {
	a, ok := map[string]Artifact{
		"i":      RawArtifact,
		"input":  RawArtifact,
		"raw":    RawArtifact,
		"k":      TokensArtifact,
		"tokens": TokensArtifact,
		"t":      TreeArtifact,
		"tree":   TreeArtifact,
		"r":      ReportArtifact,
		"report": ReportArtifact,
	}[v]
	if ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadArtifact, v)
}

func (a Artifact) String() string {
	d, err := a.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (a Artifact) MarshalText() ([]byte, error) {
	switch a {
	case RawArtifact:
		return []byte("input"), nil
	case TokensArtifact:
		return []byte("tokens"), nil
	case TreeArtifact:
		return []byte("tree"), nil
	case ReportArtifact:
		return []byte("report"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not an artifact>", a)
	}
}

func (a *Artifact) UnmarshalText(d []byte) error {
	pa, err := ParseArtifact(string(d))
	if err != nil {
		return err
	}
	*a = pa
	return nil
}

// Filename returns the name this artifact is written under in an output
// directory.
func (a Artifact) Filename() string {
	switch a {
	case RawArtifact:
		return "input.md"
	case TokensArtifact:
		return "tokens.json"
	case TreeArtifact:
		return "tree.json"
	case ReportArtifact:
		return "report.txt"
	default:
		return ""
	}
}

// AllArtifacts returns all artifacts in the order they are written.
func AllArtifacts() []Artifact {
	return []Artifact{RawArtifact, TokensArtifact, TreeArtifact, ReportArtifact}
}
