// Package encode serializes token streams, trees, and summary reports to
// the interchange formats the command line tools exchange.
package encode

import (
	"encoding/json"
	"io"

	"github.com/versodoc/markup/token"
)

// TokenRecord is the interchange shape of one token: the kind name, the
// exact literal, and the 1-based line / 0-based column where it starts.
type TokenRecord struct {
	Type   token.TokenType `json:"type"`
	Value  string          `json:"value"`
	Line   int             `json:"line"`
	Column int             `json:"column"`
}

func TokenRecords(toks []token.Token) []TokenRecord {
	recs := make([]TokenRecord, len(toks))
	for i := range toks {
		t := &toks[i]
		line, col := t.Pos.LineCol()
		recs[i] = TokenRecord{
			Type:   t.Type,
			Value:  t.String(),
			Line:   line,
			Column: col,
		}
	}
	return recs
}

// EncodeTokens writes the token stream as an ordered JSON array, one
// record per token in source order.
func EncodeTokens(w io.Writer, toks []token.Token) error {
	d, err := json.MarshalIndent(TokenRecords(toks), "", "  ")
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}
