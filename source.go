package blk

import "unicode/utf8"

// source walks an in-memory input string rune by rune, keeping track of the
// line, column, and byte offset of the most recently read rune. It supports
// a single rune of pushback and capture of raw literal text.
type source struct {
	name  string
	input string

	off  int // byte offset of the next rune
	line int
	col  int

	roff  int // position of the most recently read rune
	rline int
	rcol  int

	loff int // start of the literal being captured

	err error
}

func newSource(name, input string) *source {
	return &source{
		name:  name,
		input: input,
		line:  1,
		col:   1,
		roff:  -1,
	}
}

func (s *source) get() rune {
	s.roff, s.rline, s.rcol = s.off, s.line, s.col

	if s.off >= len(s.input) {
		return -1
	}

	r, w := utf8.DecodeRuneInString(s.input[s.off:])
	s.off += w

	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

func (s *source) unget() {
	if s.roff >= 0 {
		s.off, s.line, s.col = s.roff, s.rline, s.rcol
		s.roff = -1
	}
}

func (s *source) getpos() Pos {
	return Pos{
		Name: s.name,
		Line: s.rline,
		Col:  s.rcol,
		Off:  s.roff,
	}
}

func (s *source) startLit() {
	s.loff = s.roff
}

func (s *source) stopLit() string {
	return s.input[s.loff:s.off]
}

func (s *source) errAt(pos Pos, msg string) {
	if s.err == nil {
		s.err = pos.Err(msg)
	}
}
