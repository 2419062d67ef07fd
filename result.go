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

package tyck

import (
	"github.com/wdamron/tyck/ast"
	"github.com/wdamron/tyck/diag"
	"github.com/wdamron/tyck/types"
)

// Result is the annotation table produced by Check: the type of each expression,
// indexed by the expression's number.
//
// Types are resolved when they are read, so bindings made by later checks on the same
// Checker are reflected in the result.
type Result struct {
	c      *Checker
	root   types.TyId
	types  []types.TyId
	errs   []diag.Error
	errors int
}

// Type returns the resolved type of the root expression.
func (r *Result) Type() types.TyId { return r.c.Zonk(r.root) }

// TypeOf returns the resolved type of an expression which was numbered by the check.
// The error type is returned for unnumbered expressions.
func (r *Result) TypeOf(e ast.Expr) types.TyId {
	if e == nil {
		return r.c.builtin.err
	}
	return r.At(e.Id())
}

// At returns the resolved type of the expression numbered i.
func (r *Result) At(i int) types.TyId {
	if i < 0 || i >= len(r.types) {
		return r.c.builtin.err
	}
	return r.c.Zonk(r.types[i])
}

// Len returns the number of expressions in the annotation table.
func (r *Result) Len() int { return len(r.types) }

// Errors returns the errors reported during the check, up to diag.MaxErrors.
func (r *Result) Errors() []diag.Error { return r.errs }

// ErrorCount returns the number of errors reported during the check.
func (r *Result) ErrorCount() int { return r.errors }

// OK indicates whether the check reported no errors.
func (r *Result) OK() bool { return r.errors == 0 }

// TypeString returns a string representation of the resolved type of e.
func (r *Result) TypeString(e ast.Expr) string { return r.c.TypeString(r.TypeOf(e)) }
