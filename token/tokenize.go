package token

import (
	"bytes"
	"unicode/utf8"
)

type tkState struct {
	// open code-fence weight, 0 outside fences
	fence int
	// inside a %%% metadata region
	meta bool
	// inside a /- -/ doc comment
	comment bool
	// start offset of the pending text run, -1 when none
	txt int
}

// Tokenize appends the tokens of src to dst and returns the result. The
// token sequence covers src without gaps and is fully determined by src.
// The only error condition is invalid UTF-8, in which case no tokens are
// returned.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := NewPosDoc(src)
	if off, bad := invalidUTF8(posDoc.d); bad {
		return nil, NewTokenizeErr(ErrBadUTF8, posDoc.Pos(off))
	}
	d := posDoc.d
	n := len(d)
	ts := &tkState{txt: -1}

	flush := func(end int) {
		if ts.txt >= 0 && end > ts.txt {
			dst = append(dst, Token{Type: TText, Pos: posDoc.Pos(ts.txt), Bytes: d[ts.txt:end]})
		}
		ts.txt = -1
	}
	emit := func(tt TokenType, start, end int) {
		flush(start)
		dst = append(dst, Token{Type: tt, Pos: posDoc.Pos(start), Bytes: d[start:end]})
	}

	i := 0
	for i < n {
		if i == 0 || d[i-1] == '\n' {
			ls, le := i, lineEnd(d, i)
			line := d[ls:le]
			switch {
			case ts.fence > 0:
				// only a marker of equal or greater weight on its own
				// line closes the fence; everything else is content
				if w := fenceWeight(line); w >= ts.fence && isBlank(line[w:]) {
					emit(TCodeFenceClose, ls, le)
					ts.fence = 0
					i = le
					continue
				}
			case ts.comment:
				// only a -/ at a line start closes; everything else,
				// delimiters included, is comment content
				if j, ok := commentMarker(line, '-', '/'); ok {
					emit(TCommentClose, ls, ls+j)
					ts.comment = false
					i = ls + j
					continue
				}
			case isMetaFence(line):
				emit(TMetaFence, ls, le)
				ts.meta = !ts.meta
				i = le
				continue
			case ts.meta:
				// metadata region content is plain text
			case colonRun(line) == 4 || colonRun(line) == 3:
				w := colonRun(line)
				var tt TokenType
				switch {
				case w == 4 && isBlank(line[w:]):
					tt = TContainerClose
				case w == 4:
					tt = TContainerOpen
				case isBlank(line[w:]):
					tt = TBlockClose
				default:
					tt = TBlockOpen
				}
				emit(tt, ls, le)
				i = le
				continue
			case fenceWeight(line) >= 3:
				emit(TCodeFenceOpen, ls, le)
				ts.fence = fenceWeight(line)
				i = le
				continue
			case isDirectiveStart(line):
				end := scanDirective(d, ls)
				emit(TDirective, ls, end)
				i = end
				continue
			case isCodeKeyword(line):
				emit(TCodeLine, ls, le)
				i = le
				continue
			case startsComment(line):
				j, _ := commentMarker(line, '/', '-')
				emit(TCommentOpen, ls, ls+j)
				ts.comment = true
				i = ls + j
				continue
			case headerWeight(line) > 0:
				emit(THeader, ls, le)
				i = le
				continue
			case isDefMarker(line):
				emit(TDefMarker, ls, le)
				i = le
				continue
			}
		}
		if ts.fence == 0 && !ts.meta && !ts.comment {
			switch d[i] {
			case '{':
				if toks, end, ok := scanRole(d, i, posDoc); ok {
					flush(i)
					dst = append(dst, toks...)
					i = end
					continue
				}
			case '`':
				// a backtick literal span wins once opened: role markers
				// cannot start inside it
				if end, ok := backtickSpanEnd(d, i); ok {
					if ts.txt < 0 {
						ts.txt = i
					}
					i = end
					continue
				}
			}
		}
		if ts.txt < 0 {
			ts.txt = i
		}
		i++
	}
	flush(n)
	return dst, nil
}

// scanDirective returns the end offset of a directive starting at a "#doc"
// line start. The directive runs to the first "=>" outside double quotes
// and parentheses. It continues past a newline only while a quote or
// parenthesis group is still open; a blank line always terminates it.
func scanDirective(d []byte, start int) int {
	n := len(d)
	i, inQuote, paren := start, false, 0
	for i < n {
		switch d[i] {
		case '"':
			if i == 0 || d[i-1] != '\\' {
				inQuote = !inQuote
			}
		case '(':
			if !inQuote {
				paren++
			}
		case ')':
			if !inQuote && paren > 0 {
				paren--
			}
		case '=':
			if !inQuote && paren == 0 && i+1 < n && d[i+1] == '>' {
				return i + 2
			}
		case '\n':
			if !inQuote && paren == 0 {
				return i
			}
			if i+1 >= n || d[i+1] == '\n' {
				return i
			}
		}
		i++
	}
	return n
}

// scanRole recognizes an inline role marker at a '{'. A marker is emitted
// only when immediately followed by a backtick span or a bracketed
// argument; include and docstring markers stand alone. Anything else is
// demoted to plain text by returning ok == false.
func scanRole(d []byte, start int, posDoc *PosDoc) ([]Token, int, bool) {
	n := len(d)
	i := start + 1
	j := i
	for j < n && isRoleNameByte(d[j]) {
		j++
	}
	if j == i {
		return nil, 0, false
	}
	name := string(d[i:j])
	k := j
	for k < n && d[k] != '}' && d[k] != '{' && d[k] != '\n' {
		k++
	}
	if k >= n || d[k] != '}' {
		return nil, 0, false
	}
	k++
	marker := Token{Type: TRole, Pos: posDoc.Pos(start), Bytes: d[start:k]}
	if k < n {
		switch d[k] {
		case '`':
			if end, ok := backtickSpanEnd(d, k); ok {
				span := Token{Type: TBacktickSpan, Pos: posDoc.Pos(k), Bytes: d[k:end]}
				return []Token{marker, span}, end, true
			}
		case '[':
			if end, ok := bracketArgEnd(d, k); ok {
				arg := Token{Type: TBracketArg, Pos: posDoc.Pos(k), Bytes: d[k:end]}
				return []Token{marker, arg}, end, true
			}
		}
	}
	if name == "include" || name == "docstring" {
		return []Token{marker}, k, true
	}
	return nil, 0, false
}

func backtickSpanEnd(d []byte, start int) (int, bool) {
	n := len(d)
	j := start + 1
	for j < n && d[j] != '`' && d[j] != '\n' {
		j++
	}
	if j < n && d[j] == '`' {
		return j + 1, true
	}
	return 0, false
}

// bracketArgEnd uses a counting scan so bracketed arguments may nest
// further bracketed spans. Arguments do not span lines.
func bracketArgEnd(d []byte, start int) (int, bool) {
	n := len(d)
	depth := 0
	for j := start; j < n; j++ {
		switch d[j] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return j + 1, true
			}
		case '\n':
			return 0, false
		}
	}
	return 0, false
}

func lineEnd(d []byte, i int) int {
	if j := bytes.IndexByte(d[i:], '\n'); j >= 0 {
		return i + j
	}
	return len(d)
}

func isBlank(b []byte) bool {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\r':
		default:
			return false
		}
	}
	return true
}

func colonRun(line []byte) int {
	i := 0
	for i < len(line) && line[i] == ':' {
		i++
	}
	return i
}

func fenceWeight(line []byte) int {
	i := 0
	for i < len(line) && line[i] == '`' {
		i++
	}
	if i < 3 {
		return 0
	}
	return i
}

func isMetaFence(line []byte) bool {
	return len(line) >= 3 && line[0] == '%' && line[1] == '%' && line[2] == '%' && isBlank(line[3:])
}

func isDirectiveStart(line []byte) bool {
	if !bytes.HasPrefix(line, []byte("#doc")) {
		return false
	}
	return len(line) > 4 && (line[4] == ' ' || line[4] == '\t')
}

// commentMarker matches a two-byte comment delimiter at a line start,
// allowing leading blanks, and returns the offset just past it.
func commentMarker(line []byte, a, b byte) (int, bool) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i+1 < len(line) && line[i] == a && line[i+1] == b {
		return i + 2, true
	}
	return 0, false
}

func startsComment(line []byte) bool {
	_, ok := commentMarker(line, '/', '-')
	return ok
}

// headerWeight is the length of the leading # run, 0 for non-header
// lines. #doc directive lines are recognized before this check runs.
func headerWeight(line []byte) int {
	i := 0
	for i < len(line) && line[i] == '#' {
		i++
	}
	return i
}

// codeKeywords are the Lean top-level keywords that mark a line as
// source code rather than prose.
var codeKeywords = []string{
	"import", "open", "set_option", "variable", "example",
	"def", "theorem", "lemma", "namespace", "end", "section",
}

func isCodeKeyword(line []byte) bool {
	for _, kw := range codeKeywords {
		if !bytes.HasPrefix(line, []byte(kw)) {
			continue
		}
		if len(line) == len(kw) || !isRoleNameByte(line[len(kw)]) {
			return true
		}
	}
	return false
}

func isDefMarker(line []byte) bool {
	if len(line) < 2 || line[0] != ':' {
		return false
	}
	if line[1] != ' ' && line[1] != '\t' {
		return false
	}
	return !isBlank(line[1:])
}

func isRoleNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
	case c >= 'A' && c <= 'Z':
	case c >= '0' && c <= '9':
	case c == '_':
	default:
		return false
	}
	return true
}

func invalidUTF8(d []byte) (int, bool) {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return i, true
		}
		i += sz
	}
	return 0, false
}
