package tinycsv

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

// ErrUnterminatedQuote is returned when the input ends inside a quoted field.
var ErrUnterminatedQuote = errors.New("tinycsv: unterminated quoted field")

// ParseError reports malformed input together with the position where it was detected.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the parse error message with the stored line, column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("tinycsv: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Reader parses rows from a character stream one character at a time.
// A Reader is not safe for concurrent use.
type Reader struct {
	src *source

	field    strings.Builder
	record   []string
	finished bool
}

// NewReader creates a Reader that consumes CSV data from r, panicking if r is nil.
// The underlying reader does not need to support seeking.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("tinycsv: reader source cannot be nil")
	}
	return &Reader{src: newSource(r)}
}

// Read parses the next row. io.EOF signals that no more rows remain. Input ending
// inside a quoted field yields a *ParseError wrapping ErrUnterminatedQuote; errors
// from the underlying reader are returned unchanged.
func (r *Reader) Read() ([]string, error) {
	if r == nil || r.src == nil || r.finished {
		return nil, io.EOF
	}

	r.field.Reset()
	r.record = nil
	inQuotes := false

	for {
		c, err := r.src.next()
		if err == io.EOF {
			r.finished = true
			if inQuotes {
				return nil, r.wrapError(ErrUnterminatedQuote)
			}
			if r.field.Len() > 0 || len(r.record) > 0 {
				return r.flushRecord(), nil
			}
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}

		if inQuotes {
			if c != '"' {
				r.field.WriteRune(c)
				continue
			}
			next, err := r.src.next()
			if err != nil && err != io.EOF {
				return nil, err
			}
			if err == nil && next == '"' {
				r.field.WriteByte('"')
				continue
			}
			inQuotes = false
			if err == nil {
				r.src.unread(next)
			}
			continue
		}

		switch c {
		case '"':
			// Only a quote opening an empty field starts a quoted span.
			if r.field.Len() == 0 {
				inQuotes = true
				continue
			}
			r.field.WriteByte('"')
		case ',':
			r.flushField()
		case '\n':
			return r.flushRecord(), nil
		case '\r':
			next, err := r.src.next()
			if err != nil && err != io.EOF {
				return nil, err
			}
			if err == nil && next != '\n' {
				r.src.unread(next)
			}
			return r.flushRecord(), nil
		default:
			r.field.WriteRune(c)
		}
	}
}

// ReadAll exhausts the reader, repeatedly calling Read to collect rows until io.EOF
// and returning the accumulated rows plus the first non-EOF error encountered.
func (r *Reader) ReadAll() (records [][]string, err error) {
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// All returns an iterator over the remaining rows. Iteration stops after the
// first error, which is yielded with a nil row.
func (r *Reader) All() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		for {
			record, err := r.Read()
			if err == io.EOF {
				return
			}
			if !yield(record, err) || err != nil {
				return
			}
		}
	}
}

func (r *Reader) flushField() {
	r.record = append(r.record, r.field.String())
	r.field.Reset()
}

// flushRecord hands the assembled row to the caller. The reader never touches it again.
func (r *Reader) flushRecord() []string {
	r.flushField()
	record := r.record
	r.record = nil
	return record
}

// wrapError attaches the position just past the last consumed character to err.
func (r *Reader) wrapError(err error) error {
	return &ParseError{Line: r.src.line, Column: r.src.column + 1, Err: err}
}
