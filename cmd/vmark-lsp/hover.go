package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/versodoc/markup/ast"
	"github.com/versodoc/markup/token"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.toks == nil {
		return nil, nil
	}

	pos := params.Position
	line := int(pos.Line) + 1
	col := int(pos.Character)

	tok := tokenAtPosition(doc.toks, line, col)
	if tok == nil || tok.Type == token.TText {
		return nil, nil
	}

	hoverText := buildHoverText(doc, tok)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// tokenAtPosition returns the token whose span covers the given 1-based
// line and 0-based column, nil when the position falls outside every
// token.
func tokenAtPosition(toks []token.Token, line, col int) *token.Token {
	for i := range toks {
		tok := &toks[i]
		sl, sc := tok.Pos.LineCol()
		if sl > line || (sl == line && sc > col) {
			break
		}
		el, ec := tok.Pos.D.Pos(tok.Pos.I + len(tok.Bytes)).LineCol()
		if line < el || (line == el && col < ec) {
			return tok
		}
	}
	return nil
}

func buildHoverText(doc *document, tok *token.Token) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("**Token:** %s", tok.Type))

	lit := tok.String()
	if j := strings.IndexByte(lit, '\n'); j >= 0 {
		lit = lit[:j] + "..."
	}
	if len(lit) > 50 {
		lit = lit[:50] + "..."
	}
	if lit != "" {
		parts = append(parts, fmt.Sprintf("**Literal:** `%s`", lit))
	}

	if n := nodeAtToken(doc, tok); n != nil {
		parts = append(parts, fmt.Sprintf("**Node:** %s", n.Kind()))
	}

	return strings.Join(parts, "\n\n")
}

// nodeAtToken finds the tree node whose recorded position matches the
// token's offset, if the builder produced one there.
func nodeAtToken(doc *document, tok *token.Token) ast.Node {
	for n, pos := range doc.positions {
		if pos != nil && pos.I == tok.Pos.I {
			return n
		}
	}
	return nil
}
