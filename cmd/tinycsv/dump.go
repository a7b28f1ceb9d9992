package main

import (
	"io"

	"github.com/alecthomas/repr"

	"github.com/oleg578/tinycsv"
)

func runDump(out io.Writer, name string) error {
	p := repr.New(out, repr.Indent("  "))
	return tinycsv.ReadFile(name, func(row []string) error {
		p.Println(row)
		return nil
	})
}
