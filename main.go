// Command geomkit evaluates a geometry script and reports the meshes it
// produces.
//
// Usage:
//
//	geomkit [flags] [script.geom]
//
// The script is read from standard input when no file is given.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chazu/geomkit/pkg/engine"
	"github.com/chazu/geomkit/pkg/kernel/sdfx"
	"github.com/chazu/geomkit/pkg/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, for tests.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("geomkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	timeout := fs.Duration("timeout", engine.DefaultTimeout, "evaluation time limit")
	cells := fs.Int("cells", sdfx.DefaultMeshCells, "marching cubes cells along the longest side")
	verbose := fs.Bool("v", false, "log pipeline details to stderr")
	asJSON := fs.Bool("json", false, "print the full result as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer logging.SetLogger(nil)
	}

	var (
		source []byte
		err    error
	)
	switch fs.NArg() {
	case 0:
		source, err = io.ReadAll(stdin)
	case 1:
		source, err = os.ReadFile(fs.Arg(0))
	default:
		fmt.Fprintln(stderr, "geomkit: at most one script file")
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "geomkit: %v\n", err)
		return 1
	}

	app := NewAppWithConfig(Config{Timeout: *timeout, MeshCells: *cells})
	logging.Logger().Info("evaluating", "bytes", len(source), "cells", *cells)
	result := app.Evaluate(string(source))

	if *asJSON {
		enc := json.NewEncoder(stdout)
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(stderr, "geomkit: %v\n", err)
			return 1
		}
	} else {
		printSummary(stdout, result)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", w.Message)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			if e.Line > 0 {
				fmt.Fprintf(stderr, "error: line %d: %s\n", e.Line, e.Message)
			} else {
				fmt.Fprintf(stderr, "error: %s\n", e.Message)
			}
		}
		return 1
	}
	return 0
}

func printSummary(w io.Writer, r EvalResult) {
	if r.Value != "" {
		fmt.Fprintf(w, "=> %s\n", r.Value)
	}
	for _, m := range r.Meshes {
		fmt.Fprintf(w, "%-20s %8d vertices %8d triangles\n",
			m.PartName, len(m.Vertices)/3, len(m.Indices)/3)
	}
}
