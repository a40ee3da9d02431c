package parse

import (
	"regexp"
	"strings"

	"github.com/versodoc/markup/ast"
	"github.com/versodoc/markup/token"
)

// Compiled once at init, never mutated, so Build stays a pure function.
var (
	directiveTitleRE = regexp.MustCompile(`"([^"]*)"`)
	paramRE          = regexp.MustCompile(`(\w+)\s*:=\s*(?:"([^"]*)"|([^\s,)]+))`)
	fenceHeadRE      = regexp.MustCompile(`^(\w+)\s*\(([^)]*)\)`)
	blankLineRE      = regexp.MustCompile(`\n[ \t]*\n`)
)

func newContainerFrame(tok *token.Token) *frame {
	lit := tok.String()
	w := 3
	if tok.Type == token.TContainerOpen {
		w = 4
	}
	rest := strings.TrimSpace(strings.TrimLeft(lit, ":"))
	kind, remainder := splitWord(rest)
	title, params := headerTitleParams(remainder)
	return &frame{
		kind:      frameContainer,
		weight:    w,
		blockKind: kind,
		title:     title,
		params:    params,
		open:      lit,
		openPos:   tok.Pos,
	}
}

func newCodeFenceFrame(tok *token.Token) *frame {
	lit := tok.String()
	w := 0
	for w < len(lit) && lit[w] == '`' {
		w++
	}
	fr := &frame{kind: frameCodeFence, fenceWeight: w, openPos: tok.Pos}
	head := strings.TrimSpace(lit[w:])
	if m := fenceHeadRE.FindStringSubmatch(head); m != nil {
		fr.lang = m[1]
		fr.params = parseParams(m[2])
	} else {
		fr.lang = head
	}
	return fr
}

func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// headerTitleParams splits the remainder of an opening delimiter line into
// a title and a (key := value, ...) parameter list. The title may sit
// before or after the parameter group; a trailing title wins.
func headerTitleParams(s string) (string, []ast.Param) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	lp := strings.Index(s, "(")
	rp := strings.LastIndex(s, ")")
	if lp >= 0 && rp > lp {
		params := parseParams(s[lp+1 : rp])
		before := strings.Trim(strings.TrimSpace(s[:lp]), `"`)
		after := strings.Trim(strings.TrimSpace(s[rp+1:]), `"`)
		if after != "" {
			return after, params
		}
		return before, params
	}
	return strings.Trim(s, `"`), nil
}

func parseParams(s string) []ast.Param {
	var res []ast.Param
	for _, m := range paramRE.FindAllStringSubmatch(s, -1) {
		v := m[2]
		if v == "" && m[3] != "" {
			v = m[3]
		}
		res = append(res, ast.Param{Key: m[1], Value: v})
	}
	return res
}
