package parse

import (
	"strings"

	"github.com/versodoc/markup/ast"
	"github.com/versodoc/markup/debug"
	"github.com/versodoc/markup/token"
)

type frameKind int

const (
	frameTop frameKind = iota
	frameContainer
	frameCodeFence
	frameMeta
	frameComment
)

// frame is one block context on the explicit stack.
type frame struct {
	kind frameKind

	// container frames
	weight    int
	blockKind string
	title     string
	params    []ast.Param
	open      string

	// code fence frames
	lang        string
	fenceWeight int

	// raw content of code fences and metadata regions
	raw strings.Builder

	openPos  *token.Pos
	children []ast.Node

	// metadata block waiting for the next node produced in this frame
	meta *ast.MetadataBlock
}

type builder struct {
	toks  []token.Token
	i     int
	st    []*frame
	diags []Diagnostic
	opts  *buildOpts

	// text left over when a blank line ends a definition mid-token
	carry    string
	carryPos *token.Pos
}

// Build turns a token sequence into an ordered sequence of top-level nodes
// plus the diagnostics for every recovery taken. It never fails: frames
// still open at the end of input are closed implicitly and unmatched
// closing delimiters become plain text.
func Build(toks []token.Token, opts ...BuildOption) ([]ast.Node, []Diagnostic) {
	bOpts := &buildOpts{}
	for _, o := range opts {
		o(bOpts)
	}
	b := &builder{toks: toks, opts: bOpts}
	b.st = []*frame{{kind: frameTop}}

	for b.i < len(b.toks) || b.carry != "" {
		if b.carry != "" {
			b.flow()
			continue
		}
		tok := &b.toks[b.i]
		top := b.top()
		switch top.kind {
		case frameCodeFence:
			b.codeFenceToken(tok, top)
		case frameMeta:
			b.metaToken(tok, top)
		case frameComment:
			b.commentToken(tok, top)
		default:
			b.blockToken(tok)
		}
	}

	for len(b.st) > 1 {
		fr := b.pop()
		b.diag(StructuralImbalance, implicitCloseMsg(fr), fr.openPos)
		b.appendNode(b.top(), b.closeFrame(fr), fr.openPos)
	}
	root := b.st[0]
	if root.meta != nil {
		root.children = append(root.children, root.meta)
		root.meta = nil
	}
	if debug.Build() {
		debug.LogAny(b.diags)
	}
	return root.children, b.diags
}

func (b *builder) top() *frame {
	return b.st[len(b.st)-1]
}

func (b *builder) pop() *frame {
	fr := b.st[len(b.st)-1]
	b.st = b.st[:len(b.st)-1]
	return fr
}

// appendNode attaches n to fr, wrapping it in the frame's pending metadata
// block if one is waiting.
func (b *builder) appendNode(fr *frame, n ast.Node, pos *token.Pos) {
	if fr.meta != nil {
		fr.meta.Node = n
		n = fr.meta
		fr.meta = nil
	}
	fr.children = append(fr.children, n)
	b.trackPos(n, pos)
}

func (b *builder) trackPos(n ast.Node, pos *token.Pos) {
	if b.opts.positions != nil && pos != nil {
		b.opts.positions[n] = pos
	}
}

func (b *builder) blockToken(tok *token.Token) {
	switch tok.Type {
	case token.TContainerOpen, token.TBlockOpen:
		b.i++
		if b.opts.maxDepth > 0 && len(b.st)-1 >= b.opts.maxDepth {
			b.diag(StructuralImbalance, "nesting depth limit reached", tok.Pos)
			b.appendNode(b.top(), &ast.Text{Content: tok.String()}, tok.Pos)
			return
		}
		b.st = append(b.st, newContainerFrame(tok))
	case token.TContainerClose, token.TBlockClose:
		b.i++
		w := 3
		if tok.Type == token.TContainerClose {
			w = 4
		}
		// closing matches by delimiter weight, never by kind tag
		if top := b.top(); top.kind == frameContainer && top.weight == w {
			fr := b.pop()
			b.appendNode(b.top(), b.closeFrame(fr), fr.openPos)
			return
		}
		b.diag(StructuralImbalance, "unmatched closing delimiter "+strings.TrimSpace(tok.String()), tok.Pos)
		b.appendNode(b.top(), &ast.Text{Content: tok.String()}, tok.Pos)
	case token.TCodeFenceOpen:
		b.i++
		b.st = append(b.st, newCodeFenceFrame(tok))
	case token.TCodeFenceClose:
		b.i++
		b.diag(StructuralImbalance, "unmatched code fence close", tok.Pos)
		b.appendNode(b.top(), &ast.Text{Content: tok.String()}, tok.Pos)
	case token.TMetaFence:
		b.i++
		b.st = append(b.st, &frame{kind: frameMeta, openPos: tok.Pos})
	case token.TDirective:
		b.i++
		b.directive(tok)
	case token.THeader:
		b.i++
		b.header(tok)
	case token.TCodeLine:
		b.i++
		b.appendNode(b.top(), &ast.CodeLine{Content: tok.String()}, tok.Pos)
	case token.TCommentOpen:
		b.i++
		b.st = append(b.st, &frame{kind: frameComment, openPos: tok.Pos})
	case token.TCommentClose:
		b.i++
		b.diag(StructuralImbalance, "unmatched doc comment close", tok.Pos)
		b.appendNode(b.top(), &ast.Text{Content: tok.String()}, tok.Pos)
	case token.TDefMarker:
		b.definitionList()
	default:
		b.flow()
	}
}

func (b *builder) codeFenceToken(tok *token.Token, top *frame) {
	b.i++
	if tok.Type == token.TCodeFenceClose {
		fr := b.pop()
		b.appendNode(b.top(), b.closeFrame(fr), fr.openPos)
		return
	}
	top.raw.Write(tok.Bytes)
}

func (b *builder) metaToken(tok *token.Token, top *frame) {
	b.i++
	if tok.Type == token.TMetaFence {
		fr := b.pop()
		mb := &ast.MetadataBlock{Pairs: parsePairs(fr.raw.String())}
		b.trackPos(mb, fr.openPos)
		parent := b.top()
		if parent.meta != nil {
			// a second region in a row: the first never finds its node
			b.diag(StructuralImbalance, "metadata region never applied to a node", fr.openPos)
			parent.children = append(parent.children, parent.meta)
		}
		parent.meta = mb
		return
	}
	top.raw.Write(tok.Bytes)
}

func (b *builder) commentToken(tok *token.Token, top *frame) {
	b.i++
	if tok.Type == token.TCommentClose {
		fr := b.pop()
		b.appendNode(b.top(), b.closeFrame(fr), fr.openPos)
		return
	}
	top.raw.Write(tok.Bytes)
}

func (b *builder) directive(tok *token.Token) {
	lit := tok.String()
	node := &ast.DocDirective{FullContent: lit}
	if m := directiveTitleRE.FindStringSubmatch(lit); m != nil {
		node.Original = m[1]
	}
	if !strings.HasSuffix(strings.TrimRight(lit, " \t"), "=>") {
		b.diag(MalformedDirective, "directive missing closing arrow", tok.Pos)
	}
	b.appendNode(b.top(), node, tok.Pos)
}

func (b *builder) header(tok *token.Token) {
	lit := tok.String()
	level := 0
	for level < len(lit) && lit[level] == '#' {
		level++
	}
	b.appendNode(b.top(), &ast.Header{
		Level:    level,
		Original: strings.TrimSpace(lit[level:]),
	}, tok.Pos)
}

func (b *builder) closeFrame(fr *frame) ast.Node {
	switch fr.kind {
	case frameContainer:
		if fr.meta != nil {
			fr.children = append(fr.children, fr.meta)
			fr.meta = nil
		}
		return &ast.Container{
			BlockKind: fr.blockKind,
			Weight:    fr.weight,
			Title:     fr.title,
			Params:    fr.params,
			Open:      fr.open,
			Children:  fr.children,
		}
	case frameCodeFence:
		return &ast.CodeBlock{
			Language: fr.lang,
			Params:   fr.params,
			Body:     fenceBody(fr.raw.String()),
			Fence:    fr.fenceWeight,
		}
	case frameMeta:
		return &ast.MetadataBlock{Pairs: parsePairs(fr.raw.String())}
	case frameComment:
		return &ast.DocComment{Original: strings.TrimSpace(fr.raw.String())}
	}
	return nil
}

func implicitCloseMsg(fr *frame) string {
	switch fr.kind {
	case frameContainer:
		return "unclosed " + delimiterOf(fr.weight) + " block"
	case frameCodeFence:
		return "unclosed code fence"
	case frameMeta:
		return "unclosed metadata region"
	case frameComment:
		return "unclosed doc comment"
	}
	return "unclosed block"
}

func delimiterOf(weight int) string {
	return strings.Repeat(":", weight)
}

func fenceBody(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	return s
}
