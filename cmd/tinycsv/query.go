package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/oleg578/tinycsv"
	"github.com/oleg578/tinycsv/lookup"
)

func runQuery(logger *slog.Logger, in io.Reader, out io.Writer, name string, limit int) error {
	r, err := tinycsv.OpenFile(name)
	if err != nil {
		return err
	}
	defer r.Close()

	idx, err := lookup.Load(r.Reader)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	logger.Debug("index loaded", "file", name, "rows", idx.Len(), "columns", len(idx.Header()))

	fmt.Fprintln(out, "---- CSV LOOKUP ----")
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Ask your question (or type 'exit' to quit): ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		q := strings.TrimSpace(sc.Text())
		switch strings.ToLower(q) {
		case "exit", "quit":
			fmt.Fprintln(out, "Exiting.")
			return nil
		case "":
			continue
		}
		fmt.Fprintf(out, "\n%s\n\n", answer(idx, q, limit))
	}
}

func answer(idx *lookup.Index, query string, limit int) string {
	matches := idx.Search(query, limit)
	if len(matches) == 0 {
		return "No matching records found."
	}
	lines := make([]string, len(matches))
	for i, m := range matches {
		lines[i] = m.String()
	}
	return strings.Join(lines, "\n")
}
