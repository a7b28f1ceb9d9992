package tinycsv

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

var (
	errNilWriter      = errors.New("tinycsv: writer is nil")
	errWriterNoTarget = errors.New("tinycsv: writer destination cannot be nil")
)

// Writer emits rows in canonical form: ',' between fields, minimal quoting and
// a single '\n' after every row. A Writer is not safe for concurrent use.
type Writer struct {
	dst *bufio.Writer
	err error
}

// NewWriter creates a new Writer buffering output to w.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{dst: bufio.NewWriterSize(w, defaultBufferSize)}
}

// Reset points the writer at dst and clears any stored error.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.err = nil
}

// Write emits a single row terminated by '\n'. Once a write fails, the error is
// stored and returned by every later call; the sink is left partially written.
// A row without fields is written as a blank line, which reads back as [""].
func (w *Writer) Write(record []string) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}

	for i := range record {
		if i > 0 {
			if err := w.dst.WriteByte(','); err != nil {
				w.err = err
				return err
			}
		}
		if _, err := w.dst.WriteString(QuoteField(record[i])); err != nil {
			w.err = err
			return err
		}
	}
	if err := w.dst.WriteByte('\n'); err != nil {
		w.err = err
		return err
	}
	return nil
}

// WriteAll writes multiple rows, stopping at the first error.
func (w *Writer) WriteAll(records [][]string) error {
	if w == nil {
		return errNilWriter
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

// NeedsQuote reports whether field contains a delimiter, quote or line break.
func NeedsQuote(field string) bool {
	return strings.ContainsAny(field, ",\"\n\r")
}

// QuoteField returns the writable form of field. Fields that need quoting have
// every '"' doubled and are wrapped in quotes; all others are returned as is.
func QuoteField(field string) string {
	if !NeedsQuote(field) {
		return field
	}
	var b strings.Builder
	b.Grow(len(field) + 2)
	b.WriteByte('"')
	start := 0
	for i := 0; i < len(field); i++ {
		if field[i] == '"' {
			b.WriteString(field[start : i+1])
			b.WriteByte('"')
			start = i + 1
		}
	}
	b.WriteString(field[start:])
	b.WriteByte('"')
	return b.String()
}
