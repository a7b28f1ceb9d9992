package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/oleg578/tinycsv"
)

// runNormalize rewrites input into output in canonical form. The output is
// removed again when input turns out to be malformed.
func runNormalize(logger *slog.Logger, input, output string) error {
	r, err := tinycsv.OpenFile(input)
	if err != nil {
		return err
	}
	defer r.Close()

	var readErr error
	rows := func(yield func([]string) bool) {
		for row, err := range r.All() {
			if err != nil {
				readErr = err
				return
			}
			if !yield(row) {
				return
			}
		}
	}
	if err := tinycsv.WriteFile(output, rows); err != nil {
		return err
	}
	if readErr != nil {
		return errors.Join(readErr, os.Remove(output))
	}
	logger.Info("normalized", "input", input, "output", output)
	return nil
}
