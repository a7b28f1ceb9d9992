// Command tinycsv is a small toolbox around the tinycsv codec: timing runs,
// interactive row lookup, debug dumps and canonical rewrites.
package main

import (
	"log/slog"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app     = kingpin.New("tinycsv", "Read, write and query CSV files with the tinycsv codec.")
	verbose = app.Flag("verbose", "Enable debug logging.").Short('v').Bool()

	benchCmd         = app.Command("bench", "Time reading a CSV file and writing a sample table.")
	benchInput       = benchCmd.Flag("input", "CSV file to read.").Required().String()
	benchOutput      = benchCmd.Flag("output", "CSV file to write.").Default("benchmark_output.csv").String()
	benchResultsPath = benchCmd.Flag("results", "File receiving the timing results.").Default("benchmark_results.json").String()
	benchFormat      = benchCmd.Flag("format", "Results format.").Default("json").Enum("json", "yaml")

	queryCmd   = app.Command("query", "Answer questions against the rows of a CSV file.")
	queryInput = queryCmd.Flag("input", "CSV file with a header row.").Required().String()
	queryLimit = queryCmd.Flag("limit", "Maximum number of rows per answer (0 for all).").Default("5").Int()

	dumpCmd   = app.Command("dump", "Print parsed rows as Go values.")
	dumpInput = dumpCmd.Flag("input", "CSV file to dump.").Required().String()

	normCmd    = app.Command("normalize", "Rewrite a CSV file with LF endings and minimal quoting. No output is kept for malformed input.")
	normInput  = normCmd.Flag("input", "CSV file to read.").Required().String()
	normOutput = normCmd.Flag("output", "CSV file to write.").Required().String()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var err error
	switch cmd {
	case benchCmd.FullCommand():
		err = runBench(logger, os.Stdout, benchOptions{
			Input:   *benchInput,
			Output:  *benchOutput,
			Results: *benchResultsPath,
			Format:  *benchFormat,
		})
	case queryCmd.FullCommand():
		err = runQuery(logger, os.Stdin, os.Stdout, *queryInput, *queryLimit)
	case dumpCmd.FullCommand():
		err = runDump(os.Stdout, *dumpInput)
	case normCmd.FullCommand():
		err = runNormalize(logger, *normInput, *normOutput)
	}
	app.FatalIfError(err, "%s", cmd)
}
