package parse

import (
	"fmt"

	"github.com/versodoc/markup/token"
)

type DiagKind int

const (
	// StructuralImbalance marks a block or container delimiter with no
	// matching counterpart by the end of its scope.
	StructuralImbalance DiagKind = iota
	// MalformedDirective marks a directive lacking its closing arrow.
	MalformedDirective
)

func (k DiagKind) String() string {
	switch k {
	case StructuralImbalance:
		return "StructuralImbalance"
	case MalformedDirective:
		return "MalformedDirective"
	}
	return "<unknown diagnostic>"
}

func (k DiagKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *DiagKind) UnmarshalText(d []byte) error {
	switch string(d) {
	case "StructuralImbalance":
		*k = StructuralImbalance
	case "MalformedDirective":
		*k = MalformedDirective
	default:
		return fmt.Errorf("unrecognized diagnostic kind %q", d)
	}
	return nil
}

// Diagnostic records one non-fatal anomaly resolved during tree building.
type Diagnostic struct {
	Kind    DiagKind `json:"kind"`
	Message string   `json:"message"`
	Line    int      `json:"line"`
	Column  int      `json:"column"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (line=%d, col=%d)", d.Kind, d.Message, d.Line, d.Column)
}

func (b *builder) diag(k DiagKind, msg string, pos *token.Pos) {
	line, col := 0, 0
	if pos != nil {
		line, col = pos.LineCol()
	}
	b.diags = append(b.diags, Diagnostic{Kind: k, Message: msg, Line: line, Column: col})
}
