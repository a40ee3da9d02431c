package ast

// Node is the closed set of tree node variants. Adding a variant requires
// touching every exhaustive switch over Kind, which is the point: consumers
// find out about new markup constructs at compile time.
type Node interface {
	Kind() Kind
	node()
}

// Text is a literal text span, either a block of prose between markup
// constructs or a plain run inside a paragraph.
type Text struct {
	Content string
}

func (*Text) Kind() Kind { return TextKind }
func (*Text) node()      {}

// Paragraph is a run of inline content: Text, InlineRole, Include and
// Docstring children in source order.
type Paragraph struct {
	Children []Node
}

func (*Paragraph) Kind() Kind { return ParagraphKind }
func (*Paragraph) node()      {}

// DocDirective is a document-level #doc instruction. Original holds the
// quoted title, Translated stays empty until an external translation step
// fills it, and FullContent retains the directive text verbatim for
// round-tripping.
type DocDirective struct {
	Original    string
	Translated  string
	FullContent string
}

func (*DocDirective) Kind() Kind { return DocDirectiveKind }
func (*DocDirective) node()      {}

// Param is one key/value pair from a delimiter parameter list,
// e.g. (name := foo).
type Param struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CodeBlock is a fenced code region. Fence records the opening marker
// weight so the source span can be reconstructed.
type CodeBlock struct {
	Language string
	Params   []Param
	Body     string
	Fence    int
}

func (*CodeBlock) Kind() Kind { return CodeBlockKind }
func (*CodeBlock) node()      {}

// Container is a delimited block region holding child blocks. BlockKind is
// the kind tag following the opening delimiter, captured verbatim; Weight
// is the delimiter weight (4 for containers, 3 for simple blocks). Open
// retains the opening delimiter line.
type Container struct {
	BlockKind string
	Weight    int
	Title     string
	Params    []Param
	Open      string
	Children  []Node
}

func (*Container) Kind() Kind { return ContainerKind }
func (*Container) node()      {}

// Pair is one metadata key/value entry.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// MetadataBlock holds the ordered key/value pairs of a %%% region and
// wraps the node the region describes. Node is nil when the region is the
// last thing in its scope.
type MetadataBlock struct {
	Pairs []Pair
	Node  Node
}

func (*MetadataBlock) Kind() Kind { return MetadataBlockKind }
func (*MetadataBlock) node()      {}

// InlineRole is an inline annotation such as {name}`Array.map` or
// {ref "x"}[text]. Attrs is anything after the role tag inside the braces.
// Backtick arguments are literal and land in Arg; bracketed arguments are
// themselves markup and land in Children, with Arg holding the raw span.
type InlineRole struct {
	Role     string
	Attrs    string
	Arg      string
	Children []Node
}

func (*InlineRole) Kind() Kind { return InlineRoleKind }
func (*InlineRole) node()      {}

// DefItem is one term/definition pair of a definition list.
type DefItem struct {
	Term       string
	Definition []Node
}

// DefinitionList groups consecutive term/definition pairs.
type DefinitionList struct {
	Items []DefItem
}

func (*DefinitionList) Kind() Kind { return DefinitionListKind }
func (*DefinitionList) node()      {}

// Include references another document for inclusion. The reference is not
// resolved here.
type Include struct {
	Target string
}

func (*Include) Kind() Kind { return IncludeKind }
func (*Include) node()      {}

// Docstring is a placeholder resolved against an external code graph by a
// later stage.
type Docstring struct {
	Target string
}

func (*Docstring) Kind() Kind { return DocstringKind }
func (*Docstring) node()      {}

// Header is a # heading. Level counts the leading # run. Original holds
// the heading text and Translated stays empty until an external
// translation step fills it.
type Header struct {
	Level      int
	Original   string
	Translated string
}

func (*Header) Kind() Kind { return HeaderKind }
func (*Header) node()      {}

// DocComment is the content of a /- -/ region. Like Header it is a
// translatable unit.
type DocComment struct {
	Original   string
	Translated string
}

func (*DocComment) Kind() Kind { return DocCommentKind }
func (*DocComment) node()      {}

// CodeLine is a bare source line starting with a code keyword, kept
// verbatim and never translated.
type CodeLine struct {
	Content string
}

func (*CodeLine) Kind() Kind { return CodeLineKind }
func (*CodeLine) node()      {}

// Walk calls f for n and then every descendant of n in source order.
func Walk(n Node, f func(Node)) {
	if n == nil {
		return
	}
	f(n)
	switch x := n.(type) {
	case *Paragraph:
		for _, c := range x.Children {
			Walk(c, f)
		}
	case *Container:
		for _, c := range x.Children {
			Walk(c, f)
		}
	case *MetadataBlock:
		Walk(x.Node, f)
	case *InlineRole:
		for _, c := range x.Children {
			Walk(c, f)
		}
	case *DefinitionList:
		for _, it := range x.Items {
			for _, c := range it.Definition {
				Walk(c, f)
			}
		}
	case *Text, *DocDirective, *CodeBlock, *Include, *Docstring,
		*Header, *DocComment, *CodeLine:
	}
}
