package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oleg578/tinycsv"
)

var sampleRows = [][]string{
	{"PolicyID", "CustomerName", "PlanType", "Premium", "Notes"},
	{"201", "Test User", "Test Plan", "9999", "Benchmark writing test"},
}

type benchOptions struct {
	Input   string
	Output  string
	Results string
	Format  string
}

type benchResults struct {
	ReadTimeSeconds  float64 `json:"read_time_seconds" yaml:"read_time_seconds"`
	WriteTimeSeconds float64 `json:"write_time_seconds" yaml:"write_time_seconds"`
	RowsRead         int     `json:"rows_read" yaml:"rows_read"`
}

func runBench(logger *slog.Logger, out io.Writer, opts benchOptions) error {
	var res benchResults

	start := time.Now()
	err := tinycsv.ReadFile(opts.Input, func([]string) error {
		res.RowsRead++
		return nil
	})
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.Input, err)
	}
	res.ReadTimeSeconds = time.Since(start).Seconds()
	logger.Debug("read finished", "file", opts.Input, "rows", res.RowsRead)

	start = time.Now()
	if err := tinycsv.WriteFile(opts.Output, slices.Values(sampleRows)); err != nil {
		return fmt.Errorf("write %s: %w", opts.Output, err)
	}
	res.WriteTimeSeconds = time.Since(start).Seconds()
	logger.Debug("write finished", "file", opts.Output, "rows", len(sampleRows))

	fmt.Fprintln(out, "---- CSV BENCHMARK RESULTS ----")
	fmt.Fprintf(out, "Read Speed  : %.6f seconds\n", res.ReadTimeSeconds)
	fmt.Fprintf(out, "Write Speed : %.6f seconds\n", res.WriteTimeSeconds)

	if err := saveResults(opts.Results, opts.Format, res); err != nil {
		return fmt.Errorf("save results: %w", err)
	}
	fmt.Fprintf(out, "\nBenchmark results saved to %s\n", opts.Results)
	return nil
}

func saveResults(name, format string, res benchResults) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encodeResults(f, format, res)
}

func encodeResults(w io.Writer, format string, res benchResults) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(4)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(res)
	default:
		return fmt.Errorf("unsupported results format %q", format)
	}
}
