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

package ast

// WalkExpr calls f for e and each of its sub-expressions, in pre-order.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Lit, *Var:
		f(e)

	case *Unary:
		f(e)
		WalkExpr(e.X, f)

	case *Binary:
		f(e)
		WalkExpr(e.X, f)
		WalkExpr(e.Y, f)

	case *Annot:
		f(e)
		WalkExpr(e.X, f)

	case *Let:
		f(e)
		WalkExpr(e.Value, f)
		WalkExpr(e.Body, f)

	case *LetGroup:
		f(e)
		for _, v := range e.Vars {
			WalkExpr(v.Value, f)
		}
		WalkExpr(e.Body, f)

	case *Func:
		f(e)
		WalkExpr(e.Body, f)

	case *Call:
		f(e)
		WalkExpr(e.Func, f)
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}

	case *If:
		f(e)
		WalkExpr(e.Cond, f)
		WalkExpr(e.Then, f)
		WalkExpr(e.Else, f)

	case *Array:
		f(e)
		for _, elem := range e.Elems {
			WalkExpr(elem, f)
		}

	case *Index:
		f(e)
		WalkExpr(e.X, f)
		WalkExpr(e.Subscript, f)

	case *Ref:
		f(e)
		WalkExpr(e.X, f)

	case *Deref:
		f(e)
		WalkExpr(e.X, f)

	case *Block:
		f(e)
		for _, x := range e.Exprs {
			WalkExpr(x, f)
		}

	case *TypeAlias:
		f(e)
		WalkExpr(e.Body, f)

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}

// Number assigns a distinct index to every expression reachable from root, in
// pre-order starting from 0, and returns the number of expressions. Expressions
// shared between several parents keep the index of their first visit. Numbering an
// already numbered tree replaces the previous indexes.
func Number(root Expr) int {
	WalkExpr(root, func(e Expr) { e.setId(-1) })
	n := 0
	WalkExpr(root, func(e Expr) {
		if e.Id() >= 0 {
			return
		}
		e.setId(n)
		n++
	})
	return n
}
