package parse

import (
	"github.com/versodoc/markup/ast"
	"github.com/versodoc/markup/token"
)

type buildOpts struct {
	positions map[ast.Node]*token.Pos
	maxDepth  int
}

type BuildOption func(*buildOpts)

// BuildPositions records the opening position of every block node in m.
func BuildPositions(m map[ast.Node]*token.Pos) BuildOption {
	return func(o *buildOpts) {
		o.positions = m
	}
}

// BuildMaxDepth bounds container nesting. Opens beyond the limit are
// demoted to plain text with a StructuralImbalance diagnostic. Zero means
// unlimited.
func BuildMaxDepth(n int) BuildOption {
	return func(o *buildOpts) {
		o.maxDepth = n
	}
}
