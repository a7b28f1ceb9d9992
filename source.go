package tinycsv

import (
	"bufio"
	"io"
)

// source yields one character at a time and can take back exactly one of them.
// The pushback slot is checked before the underlying reader is asked for more.
type source struct {
	rr io.RuneReader

	pending    rune
	hasPending bool
	eof        bool

	line, column         int
	prevLine, prevColumn int
}

func newSource(r io.Reader) *source {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &source{rr: rr, line: 1}
}

// next returns the next character. io.EOF is sticky once observed.
func (s *source) next() (rune, error) {
	var c rune
	if s.hasPending {
		c = s.pending
		s.hasPending = false
	} else {
		if s.eof {
			return 0, io.EOF
		}
		var err error
		c, _, err = s.rr.ReadRune()
		if err == io.EOF {
			s.eof = true
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}
	}

	s.prevLine, s.prevColumn = s.line, s.column
	if c == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}
	return c, nil
}

// unread pushes c back so the following next returns it. c must be the
// character most recently returned by next.
func (s *source) unread(c rune) {
	if s.hasPending {
		panic("tinycsv: pushback slot already occupied")
	}
	s.pending = c
	s.hasPending = true
	s.line, s.column = s.prevLine, s.prevColumn
}
