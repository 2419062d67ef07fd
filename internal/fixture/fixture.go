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

// Package fixture loads checker test programs from YAML.
//
// A fixture holds a program written as a YAML tree, the checker options to apply, and
// optionally the type and errors the check is expected to produce:
//
//	name: polymorphic identity
//	options:
//	  default_literals: true
//	program:
//	  let: id
//	  value: {fun: [x], body: x}
//	  in:
//	    - {call: id, args: [1]}
//	    - {call: id, args: [true]}
//	expect:
//	  type: bool
//
// Plain scalars are shorthand: strings are variable references, numbers and booleans
// are literals, null is the unit literal, and a sequence is a block.
package fixture

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/tyck"
	"github.com/wdamron/tyck/ast"
	"github.com/wdamron/tyck/construct"
	"github.com/wdamron/tyck/diag"
	"github.com/wdamron/tyck/symbol"
)

// Fixture is a parsed test program.
type Fixture struct {
	Name string
	// Source is the text which spans within the program refer to. It is only used to
	// render diagnostics.
	Source  string
	Options Options
	Program ast.Expr
	Names   *symbol.Table
	Expect  Expect
}

// Options mirror tyck.Options.
type Options struct {
	ScopedPoly      bool `yaml:"scoped_poly,omitempty"`
	StrictTypeNames bool `yaml:"strict_type_names,omitempty"`
	// DefaultLiterals defaults to true when omitted.
	DefaultLiterals *bool `yaml:"default_literals,omitempty"`
}

// Expect describes the outcome of checking a fixture. Empty fields are not verified.
type Expect struct {
	// Type is the expected type of the program, as printed by Checker.TypeString.
	Type string `yaml:"type,omitempty"`
	// Errors lists the kinds of the expected errors in reporting order, e.g. "type mismatch".
	Errors []string `yaml:"errors,omitempty"`
	// OK requires the check to report no errors.
	OK bool `yaml:"ok,omitempty"`
}

type rawFixture struct {
	Name    string    `yaml:"name"`
	Source  string    `yaml:"source"`
	Options Options   `yaml:"options"`
	Program yaml.Node `yaml:"program"`
	Expect  Expect    `yaml:"expect"`
}

// Load reads and parses a fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses fixture content. The path argument is only used for error messages.
func Parse(data []byte, path string) (*Fixture, error) {
	var raw rawFixture
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if raw.Program.Kind == 0 {
		return nil, fmt.Errorf("%s: missing program", path)
	}
	d := decoder{names: construct.NewNames(nil)}
	program, err := d.expr(&raw.Program)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, kind := range raw.Expect.Errors {
		if _, ok := diag.ParseErrorKind(kind); !ok {
			return nil, fmt.Errorf("%s: unknown error kind %q", path, kind)
		}
	}
	name := raw.Name
	if name == "" {
		name = path
	}
	return &Fixture{
		Name:    name,
		Source:  raw.Source,
		Options: raw.Options,
		Program: program,
		Names:   d.names.Table,
		Expect:  raw.Expect,
	}, nil
}

// CheckerOptions returns the checker options of the fixture, reporting errors to reporter.
func (f *Fixture) CheckerOptions(reporter diag.Reporter) tyck.Options {
	defaults := f.Options.DefaultLiterals == nil || *f.Options.DefaultLiterals
	return tyck.Options{
		Reporter:        reporter,
		Names:           f.Names,
		ScopedPoly:      f.Options.ScopedPoly,
		StrictTypeNames: f.Options.StrictTypeNames,
		DefaultLiterals: defaults,
	}
}

// Verify compares the outcome of a check with the expectations of the fixture.
func (f *Fixture) Verify(typ string, errs []diag.Error) error {
	if f.Expect.OK && len(errs) > 0 {
		return fmt.Errorf("%s: expected no errors, got %d", f.Name, len(errs))
	}
	if f.Expect.Type != "" && typ != f.Expect.Type {
		return fmt.Errorf("%s: expected type %s, found %s", f.Name, f.Expect.Type, typ)
	}
	if f.Expect.Errors == nil {
		return nil
	}
	got := make([]string, len(errs))
	for i, err := range errs {
		got[i] = err.Kind.String()
	}
	if strings.Join(got, ", ") != strings.Join(f.Expect.Errors, ", ") {
		return fmt.Errorf("%s: expected errors [%s], got [%s]", f.Name,
			strings.Join(f.Expect.Errors, ", "), strings.Join(got, ", "))
	}
	return nil
}
