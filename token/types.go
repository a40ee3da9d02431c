package token

import (
	"fmt"
)

type TokenType int

const (
	TText TokenType = iota
	TDirective
	TContainerOpen
	TContainerClose
	TBlockOpen
	TBlockClose
	TMetaFence
	TCodeFenceOpen
	TCodeFenceClose
	TRole
	TBacktickSpan
	TBracketArg
	TDefMarker
	THeader
	TCodeLine
	TCommentOpen
	TCommentClose
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TText:           "Text",
		TDirective:      "Directive",
		TContainerOpen:  "ContainerOpen",
		TContainerClose: "ContainerClose",
		TBlockOpen:      "BlockOpen",
		TBlockClose:     "BlockClose",
		TMetaFence:      "MetaFence",
		TCodeFenceOpen:  "CodeFenceOpen",
		TCodeFenceClose: "CodeFenceClose",
		TRole:           "Role",
		TBacktickSpan:   "BacktickSpan",
		TBracketArg:     "BracketArg",
		TDefMarker:      "DefMarker",
		THeader:         "Header",
		TCodeLine:       "CodeLine",
		TCommentOpen:    "CommentOpen",
		TCommentClose:   "CommentClose",
	}[t]
}

func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TokenType) UnmarshalText(d []byte) error {
	tt, ok := map[string]TokenType{
		"Text":           TText,
		"Directive":      TDirective,
		"ContainerOpen":  TContainerOpen,
		"ContainerClose": TContainerClose,
		"BlockOpen":      TBlockOpen,
		"BlockClose":     TBlockClose,
		"MetaFence":      TMetaFence,
		"CodeFenceOpen":  TCodeFenceOpen,
		"CodeFenceClose": TCodeFenceClose,
		"Role":           TRole,
		"BacktickSpan":   TBacktickSpan,
		"BracketArg":     TBracketArg,
		"DefMarker":      TDefMarker,
		"Header":         THeader,
		"CodeLine":       TCodeLine,
		"CommentOpen":    TCommentOpen,
		"CommentClose":   TCommentClose,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized token type %q", d)
	}
	*t = tt
	return nil
}

func Types() []TokenType {
	return []TokenType{
		TText,
		TDirective,
		TContainerOpen,
		TContainerClose,
		TBlockOpen,
		TBlockClose,
		TMetaFence,
		TCodeFenceOpen,
		TCodeFenceClose,
		TRole,
		TBacktickSpan,
		TBracketArg,
		TDefMarker,
		THeader,
		TCodeLine,
		TCommentOpen,
		TCommentClose,
	}
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
