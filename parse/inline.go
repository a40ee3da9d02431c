package parse

import (
	"regexp"
	"strings"

	"github.com/versodoc/markup/ast"
	"github.com/versodoc/markup/token"
)

var roleMarkerRE = regexp.MustCompile(`^\{([A-Za-z_][A-Za-z0-9_]*)\s*([^}]*)\}$`)

// flow consumes a run of inline-level tokens (plus any text carried over
// from a definition list) and appends one Paragraph per
// blank-line-separated chunk.
func (b *builder) flow() {
	var children []ast.Node
	var text strings.Builder
	var startPos *token.Pos

	flushText := func() {
		if text.Len() > 0 {
			children = append(children, &ast.Text{Content: text.String()})
			text.Reset()
		}
	}
	endPara := func() {
		flushText()
		children = trimEdges(children)
		if len(children) > 0 {
			b.appendNode(b.top(), &ast.Paragraph{Children: children}, startPos)
		}
		children = nil
		startPos = nil
	}
	addText := func(content string, doc *token.PosDoc, off int) {
		for {
			loc := blankLineRE.FindStringIndex(content)
			if loc == nil {
				break
			}
			if startPos == nil {
				startPos = doc.Pos(off)
			}
			text.WriteString(content[:loc[0]])
			endPara()
			content = content[loc[1]:]
			off += loc[1]
		}
		if content != "" && startPos == nil {
			startPos = doc.Pos(off)
		}
		text.WriteString(content)
	}

	if b.carry != "" {
		addText(b.carry, b.carryPos.D, b.carryPos.I)
		b.carry, b.carryPos = "", nil
	}
	for b.i < len(b.toks) {
		tok := &b.toks[b.i]
		switch tok.Type {
		case token.TText:
			addText(tok.String(), tok.Pos.D, tok.Pos.I)
			b.i++
		case token.TRole:
			if startPos == nil {
				startPos = tok.Pos
			}
			flushText()
			children = append(children, b.role(tok))
		case token.TBacktickSpan, token.TBracketArg:
			// spans normally follow role markers; stray ones are text
			if startPos == nil {
				startPos = tok.Pos
			}
			text.WriteString(tok.String())
			b.i++
		default:
			endPara()
			return
		}
	}
	endPara()
}

// role turns a role marker token, plus its following span token when one
// is present, into a node. Bracketed arguments are themselves markup and
// are parsed into child nodes; backtick arguments stay literal.
func (b *builder) role(tok *token.Token) ast.Node {
	b.i++
	name, attrs := "", ""
	if m := roleMarkerRE.FindStringSubmatch(tok.String()); m != nil {
		name, attrs = m[1], strings.TrimSpace(m[2])
	}
	switch name {
	case "include":
		return &ast.Include{Target: strings.Trim(attrs, `"`)}
	case "docstring":
		return &ast.Docstring{Target: strings.Trim(attrs, `"`)}
	}
	role := &ast.InlineRole{Role: name, Attrs: attrs}
	if b.i < len(b.toks) {
		next := &b.toks[b.i]
		switch next.Type {
		case token.TBacktickSpan:
			b.i++
			role.Arg = strings.Trim(next.String(), "`")
		case token.TBracketArg:
			b.i++
			arg := next.String()
			role.Arg = strings.TrimSuffix(strings.TrimPrefix(arg, "["), "]")
			role.Children = b.inline(role.Arg)
		}
	}
	return role
}

// inline runs a second, inline-level scan over a bracketed role argument
// so roles can nest. Backtick spans inside the argument stay literal.
func (b *builder) inline(content string) []ast.Node {
	toks, err := token.Tokenize(nil, []byte(content))
	if err != nil {
		return []ast.Node{&ast.Text{Content: content}}
	}
	sub := &builder{toks: toks, opts: b.opts}
	var res []ast.Node
	var text strings.Builder
	flushText := func() {
		if text.Len() > 0 {
			res = append(res, &ast.Text{Content: text.String()})
			text.Reset()
		}
	}
	for sub.i < len(toks) {
		tok := &toks[sub.i]
		if tok.Type == token.TRole {
			flushText()
			res = append(res, sub.role(tok))
			continue
		}
		text.WriteString(tok.String())
		sub.i++
	}
	flushText()
	return res
}

// definitionList groups consecutive term/definition pairs into one node.
// A term line not followed by further definition markers terminates the
// list.
func (b *builder) definitionList() {
	start := b.toks[b.i].Pos
	var items []ast.DefItem
	for b.i < len(b.toks) && b.carry == "" && b.toks[b.i].Type == token.TDefMarker {
		marker := &b.toks[b.i]
		b.i++
		term := strings.TrimSpace(strings.TrimPrefix(marker.String(), ":"))
		items = append(items, ast.DefItem{Term: term, Definition: b.definition()})
	}
	b.appendNode(b.top(), &ast.DefinitionList{Items: items}, start)
}

// definition collects one definition body: inline content up to the next
// definition marker, the next block-level token, or the first blank line
// after the body begins. Blank lines before any body content are part of
// the definition; text after the terminating blank line is carried back
// to block-level flow.
func (b *builder) definition() []ast.Node {
	var def []ast.Node
	var text strings.Builder
	seen := false
	flushText := func() {
		if text.Len() > 0 {
			def = append(def, &ast.Text{Content: text.String()})
			text.Reset()
		}
	}
	done := false
	for !done && b.i < len(b.toks) {
		tok := &b.toks[b.i]
		switch tok.Type {
		case token.TText:
			content := tok.String()
			off := 0
			b.i++
			for {
				loc := blankLineRE.FindStringIndex(content)
				if loc == nil {
					if strings.TrimSpace(content) != "" {
						seen = true
					}
					text.WriteString(content)
					break
				}
				head := content[:loc[0]]
				if strings.TrimSpace(head) != "" {
					seen = true
				}
				if !seen {
					text.WriteString(content[:loc[1]])
					content = content[loc[1]:]
					off += loc[1]
					continue
				}
				text.WriteString(head)
				if rest := content[loc[1]:]; strings.TrimSpace(rest) != "" {
					b.carry = rest
					b.carryPos = tok.Pos.D.Pos(tok.Pos.I + off + loc[1])
				}
				done = true
				break
			}
		case token.TRole:
			seen = true
			flushText()
			def = append(def, b.role(tok))
		case token.TBacktickSpan, token.TBracketArg:
			seen = true
			text.WriteString(tok.String())
			b.i++
		default:
			done = true
		}
	}
	flushText()
	return trimEdges(def)
}

// trimEdges strips outer whitespace from the first and last text children
// and drops the ones that end up empty.
func trimEdges(children []ast.Node) []ast.Node {
	for len(children) > 0 {
		t, ok := children[0].(*ast.Text)
		if !ok {
			break
		}
		t.Content = strings.TrimLeft(t.Content, " \t\r\n")
		if t.Content != "" {
			break
		}
		children = children[1:]
	}
	for len(children) > 0 {
		t, ok := children[len(children)-1].(*ast.Text)
		if !ok {
			break
		}
		t.Content = strings.TrimRight(t.Content, " \t\r\n")
		if t.Content != "" {
			break
		}
		children = children[:len(children)-1]
	}
	return children
}
