package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets to line/column positions. Newline offsets are
// recorded once when the document is created; lookups are binary searches.
// Lines are 1-based, columns 0-based.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(src []byte) *PosDoc {
	p := &PosDoc{d: make([]byte, len(src))}
	copy(p.d, src)
	for i, c := range p.d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

func (p *PosDoc) Src() []byte {
	return p.d
}

func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 1, off
	}
	return di + 1, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
