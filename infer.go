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
	"github.com/wdamron/tyck/internal/astutil"
	"github.com/wdamron/tyck/symbol"
	"github.com/wdamron/tyck/types"
)

// Check infers the type of every expression within root. Expressions are numbered with
// ast.Number before checking, replacing any previous numbering.
//
// Failed expressions are typed with the error type. Expressions whose operands failed
// are also typed with the error type, without reporting further errors.
func (c *Checker) Check(root ast.Expr) *Result {
	c.errs = c.errs[:0]
	before := c.reported
	if root == nil {
		return &Result{c: c, root: c.builtin.unit}
	}
	w := &walker{c: c, types: make([]types.TyId, ast.Number(root))}
	for i := range w.types {
		w.types[i] = c.builtin.err
	}
	t := w.infer(root)
	if c.opts.DefaultLiterals {
		w.defaultLiterals()
	}
	return &Result{
		c:      c,
		root:   t,
		types:  w.types,
		errs:   append([]diag.Error(nil), c.errs...),
		errors: c.reported - before,
	}
}

type walker struct {
	c            *Checker
	types        []types.TyId
	ints, floats []types.TyId
}

func (w *walker) infer(e ast.Expr) types.TyId {
	t := w.inferExpr(e)
	if id := e.Id(); id >= 0 && id < len(w.types) {
		w.types[id] = t
	}
	return t
}

func (w *walker) failed(ts ...types.TyId) bool {
	for _, t := range ts {
		if w.c.Kind(t).IsError() {
			return true
		}
	}
	return false
}

func (w *walker) result(t types.TyId, ok bool) types.TyId {
	if !ok {
		return w.c.builtin.err
	}
	return t
}

func (w *walker) inferExpr(e ast.Expr) types.TyId {
	c := w.c
	switch e := e.(type) {
	case *ast.Lit:
		return w.literal(e)

	case *ast.Var:
		return w.result(c.InferVar(e.Name, e.Span()))

	case *ast.Unary:
		x := w.infer(e.X)
		if w.failed(x) {
			return c.builtin.err
		}
		return w.result(c.InferUnop(e.Op, x, e.Span()))

	case *ast.Binary:
		x, y := w.infer(e.X), w.infer(e.Y)
		if w.failed(x, y) {
			return c.builtin.err
		}
		return w.result(c.InferBinop(e.Op, x, y, e.Span()))

	case *ast.Annot:
		x := w.infer(e.X)
		annotated := w.typeExpr(e.Type)
		if w.failed(x) {
			return annotated
		}
		return w.result(c.HandleTyAnnotation(annotated, x, e.Span()))

	case *ast.Let:
		c.PushScope()
		v := w.infer(e.Value)
		if e.Type != nil {
			annotated := w.typeExpr(e.Type)
			if w.failed(v) {
				v = annotated
			} else if _, ok := c.HandleTyAnnotation(annotated, v, e.Value.Span()); !ok {
				v = c.builtin.err
			}
		}
		c.PopScope()
		snap := c.snapshot()
		w.bindGeneralized(e.Var, v)
		t := w.infer(e.Body)
		c.restore(snap)
		return t

	case *ast.LetGroup:
		snap := c.snapshot()
		for _, scc := range astutil.Order(e) {
			c.PushScope()
			vars := make([]types.TyId, len(scc))
			for i, idx := range scc {
				vars[i] = c.FreshVar()
				c.BindVar(e.Vars[idx].Var, vars[i])
			}
			for i, idx := range scc {
				value := e.Vars[idx].Value
				if v := w.infer(value); !w.failed(v) {
					c.Unify(vars[i], v, value.Span())
				}
			}
			c.PopScope()
			for i, idx := range scc {
				w.bindGeneralized(e.Vars[idx].Var, vars[i])
			}
		}
		t := w.infer(e.Body)
		c.restore(snap)
		return t

	case *ast.Func:
		c.PushScope()
		params := make([]types.TyId, len(e.Params))
		for i, p := range e.Params {
			if p.Type != nil {
				params[i] = w.typeExpr(p.Type)
			} else {
				params[i] = c.FreshVar()
			}
			c.BindVar(p.Name, params[i])
		}
		ret := w.infer(e.Body)
		if e.Ret != nil {
			annotated := w.typeExpr(e.Ret)
			if w.failed(ret) {
				ret = annotated
			} else if _, ok := c.HandleTyAnnotation(annotated, ret, e.Body.Span()); !ok {
				ret = annotated
			}
		}
		c.PopScope()
		return c.universe.Fun(params, ret)

	case *ast.Call:
		f := w.infer(e.Func)
		args := make([]types.TyId, len(e.Args))
		for i, arg := range e.Args {
			args[i] = w.infer(arg)
		}
		if w.failed(f) || w.failed(args...) {
			return c.builtin.err
		}
		ret := c.FreshVar()
		if _, ok := c.Unify(f, c.universe.Fun(args, ret), e.Span()); !ok {
			return c.builtin.err
		}
		return c.Resolve(ret)

	case *ast.If:
		cond := w.infer(e.Cond)
		if !w.failed(cond) {
			c.Unify(c.builtin.bool, cond, e.Cond.Span())
		}
		then := w.infer(e.Then)
		if e.Else == nil {
			if !w.failed(then) {
				c.Unify(c.builtin.unit, then, e.Then.Span())
			}
			return c.builtin.unit
		}
		els := w.infer(e.Else)
		switch {
		case w.failed(then):
			return els
		case w.failed(els):
			return then
		}
		return w.result(c.Unify(then, els, e.Span()))

	case *ast.Array:
		var elem types.TyId
		found := false
		for _, x := range e.Elems {
			t := w.infer(x)
			if w.failed(t) {
				continue
			}
			if !found {
				elem, found = t, true
				continue
			}
			c.Unify(elem, t, x.Span())
		}
		if !found {
			elem = c.FreshVar()
		}
		return c.universe.Array(elem, uint32(len(e.Elems)))

	case *ast.Index:
		x, i := w.infer(e.X), w.infer(e.Subscript)
		if !w.failed(i) {
			if k := c.Kind(i); k.Kind() != types.Int && !k.IsInfer() {
				c.report(diag.TypeMismatch, e.Subscript.Span(), "expected an integer index, found "+c.TypeString(i))
			}
		}
		if w.failed(x) {
			return c.builtin.err
		}
		k := c.Kind(x)
		switch k.Kind() {
		case types.Array:
			aid, _ := k.Array()
			a, _ := c.universe.Compound.Array(aid)
			return c.Resolve(a.Elem)
		case types.Infer:
			elem := c.FreshVar()
			if _, ok := c.Unify(x, c.universe.Slice(elem), e.X.Span()); !ok {
				return c.builtin.err
			}
			return elem
		}
		c.report(diag.TypeMismatch, e.X.Span(), "expected an array, found "+c.TypeString(x))
		return c.builtin.err

	case *ast.Ref:
		x := w.infer(e.X)
		if w.failed(x) {
			return c.builtin.err
		}
		return c.universe.Ref(e.Mut, x)

	case *ast.Deref:
		x := w.infer(e.X)
		if w.failed(x) {
			return c.builtin.err
		}
		k := c.Kind(x)
		switch k.Kind() {
		case types.Ref:
			rid, _ := k.Ref()
			r, _ := c.universe.Compound.Ref(rid)
			return c.Resolve(r.Inner)
		case types.Infer:
			inner := c.FreshVar()
			if _, ok := c.Unify(x, c.universe.Ref(false, inner), e.X.Span()); !ok {
				return c.builtin.err
			}
			return inner
		}
		c.report(diag.TypeMismatch, e.X.Span(), "expected a reference, found "+c.TypeString(x))
		return c.builtin.err

	case *ast.Block:
		c.PushScope()
		t := c.builtin.unit
		for _, x := range e.Exprs {
			t = w.infer(x)
		}
		c.PopScope()
		return t

	case *ast.TypeAlias:
		c.PushScope()
		c.DefineTyAlias(e.Name, w.typeExpr(e.Type))
		t := w.infer(e.Body)
		c.PopScope()
		return t

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}

func (w *walker) literal(e *ast.Lit) types.TyId {
	c := w.c
	switch e.Kind {
	case ast.IntLit:
		t := c.InferIntLiteral()
		w.ints = append(w.ints, t)
		return t
	case ast.FloatLit:
		t := c.InferFloatLiteral()
		w.floats = append(w.floats, t)
		return t
	case ast.BoolLit:
		return c.InferBoolLiteral()
	case ast.CharLit:
		return c.InferCharLiteral()
	case ast.StrLit:
		return c.InferStrLiteral()
	case ast.BytesLit:
		return c.InferBytesLiteral()
	case ast.UnitLit:
		return c.InferUnitLiteral()
	}
	panic("unknown literal kind")
}

func (w *walker) bindGeneralized(name symbol.Symbol, t types.TyId) {
	c := w.c
	if s := c.Generalize(t); !s.Monomorphic() {
		c.BindPoly(name, s)
		return
	}
	c.BindVar(name, t)
}

// Literal type-variables which remain unbound are defaulted in literal order, integers first.
func (w *walker) defaultLiterals() {
	c := w.c
	for _, t := range w.ints {
		if c.Kind(t).IsInfer() {
			c.Unify(t, c.builtin.s32, diag.NoSpan)
		}
	}
	for _, t := range w.floats {
		if c.Kind(t).IsInfer() {
			c.Unify(t, c.builtin.f32, diag.NoSpan)
		}
	}
}

func (w *walker) typeExpr(t ast.TypeExpr) types.TyId {
	c := w.c
	switch t := t.(type) {
	case *ast.NamedType:
		id := c.ResolveTySymbol(t.Name, c.opts.Names)
		if c.Kind(id).IsError() {
			c.report(diag.UndefinedType, t.Span(), "undefined type `"+c.symbolName(t.Name)+"`")
			return c.FreshVar()
		}
		return id
	case *ast.ArrayType:
		elem := w.typeExpr(t.Elem)
		if !t.Sized {
			return c.universe.Slice(elem)
		}
		return c.universe.Array(elem, t.Size)
	case *ast.RefType:
		return c.universe.Ref(t.Mut, w.typeExpr(t.Inner))
	case *ast.FunType:
		params := make([]types.TyId, len(t.Params))
		for i, p := range t.Params {
			params[i] = w.typeExpr(p)
		}
		return c.universe.Fun(params, w.typeExpr(t.Ret))
	case *ast.HoleType:
		return c.FreshVar()
	default:
		panic("unknown type expression: " + t.TypeExprName())
	}
}
