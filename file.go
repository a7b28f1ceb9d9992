package tinycsv

import (
	"iter"
	"os"
)

// FileReader is a Reader that owns the file it reads from.
type FileReader struct {
	*Reader
	f *os.File
}

// OpenFile opens name for reading. The caller must Close the returned reader.
func OpenFile(name string) (*FileReader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return &FileReader{Reader: NewReader(f), f: f}, nil
}

// Close releases the underlying file.
func (r *FileReader) Close() error {
	return r.f.Close()
}

// FileWriter is a Writer that owns the file it writes to.
type FileWriter struct {
	*Writer
	f *os.File
}

// CreateFile creates or truncates name for writing. The caller must Close the
// returned writer to flush buffered rows.
func CreateFile(name string) (*FileWriter, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return &FileWriter{Writer: NewWriter(f), f: f}, nil
}

// Close flushes buffered rows and releases the underlying file. The file is
// closed even when the flush fails; the flush error takes precedence.
func (w *FileWriter) Close() error {
	flushErr := w.Flush()
	closeErr := w.f.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// ReadFile calls fn for every row in name, stopping at the first error.
// The file is closed on every return path.
func ReadFile(name string, fn func(row []string) error) error {
	r, err := OpenFile(name)
	if err != nil {
		return err
	}
	defer r.Close()

	for row, err := range r.All() {
		if err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes every row from rows to name, replacing its contents.
func WriteFile(name string, rows iter.Seq[[]string]) (err error) {
	w, err := CreateFile(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	for row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
