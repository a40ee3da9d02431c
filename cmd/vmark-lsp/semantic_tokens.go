package main

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.lsp.dev/protocol"

	"github.com/versodoc/markup/token"
)

// The legend advertised in Initialize; indices below must match.
var semanticTokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
}

const (
	semComment = iota
	semKeyword
	semString
	semOperator
	semProperty
)

func semanticTokenType(t token.TokenType) (uint32, bool) {
	switch t {
	case token.TDirective, token.TCodeFenceOpen, token.TCodeFenceClose, token.THeader:
		return semKeyword, true
	case token.TContainerOpen, token.TContainerClose,
		token.TBlockOpen, token.TBlockClose, token.TDefMarker:
		return semOperator, true
	case token.TMetaFence, token.TCommentOpen, token.TCommentClose:
		return semComment, true
	case token.TRole:
		return semProperty, true
	case token.TBacktickSpan, token.TBracketArg:
		return semString, true
	default:
		// Plain text and bare code lines are left to the editor.
		return 0, false
	}
}

// collectSemanticTokens encodes the scanner's token stream in the LSP
// relative format. Only the first line of a multi-line literal is
// highlighted.
func (s *Server) collectSemanticTokens(doc *document) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for i := range doc.toks {
		tok := &doc.toks[i]
		tt, ok := semanticTokenType(tok.Type)
		if !ok {
			continue
		}
		lit := tok.String()
		if j := strings.IndexByte(lit, '\n'); j >= 0 {
			lit = lit[:j]
		}
		if lit == "" {
			continue
		}
		l, c := tok.Pos.LineCol()
		line := uint32(l - 1)
		char := uint32(c)
		length := uint32(utf8.RuneCountInString(lit))

		deltaLine := line - prevLine
		deltaChar := char
		if deltaLine == 0 {
			deltaChar = char - prevChar
		}
		data = append(data, deltaLine, deltaChar, length, tt, 0)
		prevLine = line
		prevChar = char
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.toks == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: s.collectSemanticTokens(doc),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.toks == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	// Filtering by range is left to the client; all tokens are returned.
	return &protocol.SemanticTokens{
		Data: s.collectSemanticTokens(doc),
	}, nil
}
