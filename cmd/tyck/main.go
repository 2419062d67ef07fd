// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command tyck checks YAML fixture programs and prints the inferred type of each.
//
//	tyck [flags] fixture.yaml...
//
// Errors are rendered against the fixture's source text. The exit status is 1 when any
// fixture reports errors it does not expect, or when its expectations are not met.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/wdamron/tyck"
	"github.com/wdamron/tyck/ast"
	"github.com/wdamron/tyck/diag"
	"github.com/wdamron/tyck/internal/fixture"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	strict     bool
	scopedPoly bool
	noDefault  bool
	verbose    bool
	dump       bool
	maxErrors  int
	color      bool
}

type annotation struct {
	Id   int
	Expr string
	Type string
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config
	fs := flag.NewFlagSet("tyck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.strict, "strict", false, "report unknown type names instead of treating them as structs")
	fs.BoolVar(&cfg.scopedPoly, "scoped-poly", false, "discard polymorphic bindings with their scope")
	fs.BoolVar(&cfg.noDefault, "no-default", false, "leave unconstrained numeric literals polymorphic")
	fs.BoolVar(&cfg.verbose, "v", false, "log the phases of each check")
	fs.BoolVar(&cfg.dump, "dump", false, "dump the type of every expression")
	fs.IntVar(&cfg.maxErrors, "max-errors", 20, "maximum number of errors printed per fixture (0 for no limit)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: tyck [flags] fixture.yaml...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	if f, ok := stdout.(*os.File); ok {
		cfg.color = diag.ColorEnabled(f)
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	status := 0
	for _, path := range fs.Args() {
		if err := checkFile(path, cfg, logger, stdout); err != nil {
			logger.Error("check failed", "path", path, "err", err)
			status = 1
		}
	}
	return status
}

func checkFile(path string, cfg config, logger *slog.Logger, stdout io.Writer) error {
	f, err := fixture.Load(path)
	if err != nil {
		return err
	}
	logger = logger.With("fixture", f.Name)
	logger.Debug("loaded", "path", path, "names", f.Names.Len())

	collector := diag.NewCollector()
	opts := f.CheckerOptions(collector)
	if cfg.strict {
		opts.StrictTypeNames = true
	}
	if cfg.scopedPoly {
		opts.ScopedPoly = true
	}
	if cfg.noDefault {
		opts.DefaultLiterals = false
	}
	logger.Debug("checking", "strict", opts.StrictTypeNames, "scoped_poly", opts.ScopedPoly, "default_literals", opts.DefaultLiterals)

	c := tyck.NewWithOptions(opts)
	res := c.Check(f.Program)
	typ := c.TypeString(res.Type())
	funs, arrays, refs := c.Universe().Compound.Len()
	logger.Debug("checked", "expressions", res.Len(), "types", c.Universe().Len(),
		"funs", funs, "arrays", arrays, "refs", refs, "errors", res.ErrorCount())

	fmt.Fprintf(stdout, "%s: %s\n", f.Name, typ)
	if cfg.dump {
		dumpAnnotations(stdout, f, res, c)
	}
	if collector.Len() > 0 {
		r := diag.Renderer{Config: diag.RenderConfig{MaxErrors: cfg.maxErrors, Color: cfg.color}}
		if err := r.Render(stdout, collector.Errors(), f.Source, path); err != nil {
			return fmt.Errorf("rendering errors: %w", err)
		}
		if dropped := collector.Dropped(); dropped > 0 {
			logger.Warn("errors dropped", "count", dropped)
		}
	}

	expected := f.Expect.Errors != nil || f.Expect.Type != "" || f.Expect.OK
	if expected {
		return f.Verify(typ, collector.Errors())
	}
	if !res.OK() {
		return fmt.Errorf("%d errors", res.ErrorCount())
	}
	return nil
}

func dumpAnnotations(w io.Writer, f *fixture.Fixture, res *tyck.Result, c *tyck.Checker) {
	table := make([]annotation, 0, res.Len())
	ast.WalkExpr(f.Program, func(e ast.Expr) {
		if e.Id() < 0 || e.Id() != len(table) {
			return
		}
		table = append(table, annotation{
			Id:   e.Id(),
			Expr: ast.ExprString(e, f.Names),
			Type: c.TypeString(res.TypeOf(e)),
		})
	})
	cs := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	cs.Fdump(w, table)
}
