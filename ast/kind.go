// Package ast defines the syntax tree produced from Verso manual markup.
package ast

import "fmt"

type Kind int

const (
	TextKind Kind = iota
	ParagraphKind
	DocDirectiveKind
	CodeBlockKind
	ContainerKind
	MetadataBlockKind
	InlineRoleKind
	DefinitionListKind
	IncludeKind
	DocstringKind
	HeaderKind
	DocCommentKind
	CodeLineKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		TextKind:           "Text",
		ParagraphKind:      "Paragraph",
		DocDirectiveKind:   "DocDirective",
		CodeBlockKind:      "CodeBlock",
		ContainerKind:      "Container",
		MetadataBlockKind:  "MetadataBlock",
		InlineRoleKind:     "InlineRole",
		DefinitionListKind: "DefinitionList",
		IncludeKind:        "Include",
		DocstringKind:      "Docstring",
		HeaderKind:         "Header",
		DocCommentKind:     "DocComment",
		CodeLineKind:       "CodeLine",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Text":           TextKind,
		"Paragraph":      ParagraphKind,
		"DocDirective":   DocDirectiveKind,
		"CodeBlock":      CodeBlockKind,
		"Container":      ContainerKind,
		"MetadataBlock":  MetadataBlockKind,
		"InlineRole":     InlineRoleKind,
		"DefinitionList": DefinitionListKind,
		"Include":        IncludeKind,
		"Docstring":      DocstringKind,
		"Header":         HeaderKind,
		"DocComment":     DocCommentKind,
		"CodeLine":       CodeLineKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		TextKind,
		ParagraphKind,
		DocDirectiveKind,
		CodeBlockKind,
		ContainerKind,
		MetadataBlockKind,
		InlineRoleKind,
		DefinitionListKind,
		IncludeKind,
		DocstringKind,
		HeaderKind,
		DocCommentKind,
		CodeLineKind,
	}
}
