// Command schemagen reads a file of CREATE TABLE statements and emits the
// YAML schema-oracle file internal/schema.FromYAML reads — the
// counterpart that lets a user build a schema.Oracle for a real set of
// tables without hand-writing the YAML (spec §9 Open Question: the
// front-end doesn't prescribe a backing store, but this tool is one way
// to populate the file-backed one).
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/chisql/chisql/internal/ast/stmt"
	"github.com/chisql/chisql/internal/clog"
	"github.com/chisql/chisql/internal/parser"
	"github.com/chisql/chisql/internal/schema"
)

type options struct {
	Output string `short:"o" long:"output" description:"path to write the schema YAML file" value-name:"path" default:"schema.yaml"`
	Args   struct {
		Input string `positional-arg-name:"input.sql"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	p := flags.NewParser(&opts, flags.Default)
	p.Usage = "[options] input.sql"
	if _, err := p.Parse(); err != nil {
		os.Exit(1)
	}

	logger := clog.New(false)
	defer logger.Sync()

	src, err := os.ReadFile(opts.Args.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "schemagen: reading %s: %v\n", opts.Args.Input, err)
		os.Exit(1)
	}

	statements, errs := parser.ParseProgram(string(src))
	if len(errs) > 0 {
		w, color := clog.DiagnosticWriter(false)
		clog.RenderDiagnostics(w, errs, color)
		os.Exit(1)
	}

	tables := make(map[string][]string)
	for _, s := range statements {
		ct, ok := s.(*stmt.CreateTable)
		if !ok {
			continue
		}
		cols := make([]string, len(ct.Columns))
		for i, c := range ct.Columns {
			cols[i] = c.Name
		}
		tables[ct.Name] = cols
	}

	if err := schema.WriteYAML(opts.Output, tables); err != nil {
		fmt.Fprintf(os.Stderr, "schemagen: %v\n", err)
		os.Exit(1)
	}
	logger.Infow("wrote schema", "tables", len(tables), "path", opts.Output)
}
