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

// construct provides terse builders for expressions and type expressions.
//
// Builders which take identifiers are methods of Names, which interns the identifiers
// into a symbol table; all other builders are plain functions.
package construct

import (
	"github.com/wdamron/tyck/ast"
	"github.com/wdamron/tyck/diag"
	"github.com/wdamron/tyck/symbol"
)

// Names interns identifiers for the builders which need them.
type Names struct {
	Table *symbol.Table
}

// Create builders over a symbol table. If table is nil, a new table is created.
func NewNames(table *symbol.Table) Names {
	if table == nil {
		table = symbol.NewTable()
	}
	return Names{Table: table}
}

// Sym interns name.
func (n Names) Sym(name string) symbol.Symbol { return n.Table.Intern(name) }

// Spanned sets the span of e and returns it.
func Spanned[E ast.Expr](start uint32, length uint16, e E) E {
	e.SetSpan(diag.NewSpan(start, length))
	return e
}

// Types:

// Named type: `s32`, `bool`, `Point`
func (n Names) TName(name string) *ast.NamedType {
	return &ast.NamedType{Name: n.Sym(name)}
}

// Sized array type: `s32[4]`
func TArray(elem ast.TypeExpr, size uint32) *ast.ArrayType {
	return &ast.ArrayType{Elem: elem, Size: size, Sized: true}
}

// Unsized array type: `s32[]`
func TSlice(elem ast.TypeExpr) *ast.ArrayType {
	return &ast.ArrayType{Elem: elem}
}

// Reference type: `&T`
func TRef(inner ast.TypeExpr) *ast.RefType {
	return &ast.RefType{Inner: inner}
}

// Mutable reference type: `&mut T`
func TRefMut(inner ast.TypeExpr) *ast.RefType {
	return &ast.RefType{Mut: true, Inner: inner}
}

// Function type: `fn(s32, s32) -> s32`
func TFun(params []ast.TypeExpr, ret ast.TypeExpr) *ast.FunType {
	return &ast.FunType{Params: params, Ret: ret}
}

// Inferred type: `_`
func THole() *ast.HoleType {
	return &ast.HoleType{}
}

// Expressions:

// Integer literal: `1`
func Int(syntax string) *ast.Lit {
	return &ast.Lit{Kind: ast.IntLit, Syntax: syntax}
}

// Float literal: `1.5`
func Float(syntax string) *ast.Lit {
	return &ast.Lit{Kind: ast.FloatLit, Syntax: syntax}
}

// Boolean literal: `true`
func Bool(v bool) *ast.Lit {
	if v {
		return &ast.Lit{Kind: ast.BoolLit, Syntax: "true"}
	}
	return &ast.Lit{Kind: ast.BoolLit, Syntax: "false"}
}

// Character literal: `'c'`
func Char(syntax string) *ast.Lit {
	return &ast.Lit{Kind: ast.CharLit, Syntax: syntax}
}

// String literal: `"s"`
func Str(syntax string) *ast.Lit {
	return &ast.Lit{Kind: ast.StrLit, Syntax: syntax}
}

// Bytes literal: `b"s"`
func Bytes(syntax string) *ast.Lit {
	return &ast.Lit{Kind: ast.BytesLit, Syntax: syntax}
}

// Unit literal: `()`
func Unit() *ast.Lit {
	return &ast.Lit{Kind: ast.UnitLit, Syntax: "()"}
}

// Variable
func (n Names) Var(name string) *ast.Var {
	return &ast.Var{Name: n.Sym(name)}
}

// Unary operation: `-x`
func Unary(op ast.UnOp, x ast.Expr) *ast.Unary {
	return &ast.Unary{Op: op, X: x}
}

// Binary operation: `x + y`
func Binary(op ast.BinOp, x, y ast.Expr) *ast.Binary {
	return &ast.Binary{Op: op, X: x, Y: y}
}

// Type annotation: `(x : s32)`
func Annot(x ast.Expr, t ast.TypeExpr) *ast.Annot {
	return &ast.Annot{X: x, Type: t}
}

// Let-binding: `let a = 1 in e`
func (n Names) Let(name string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: n.Sym(name), Value: value, Body: body}
}

// Annotated let-binding: `let a : s32 = 1 in e`
func (n Names) LetAnnot(name string, t ast.TypeExpr, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: n.Sym(name), Type: t, Value: value, Body: body}
}

// Grouped let-bindings: `let a = 1 and b = 2 in e`
func LetGroup(vars []ast.LetBinding, body ast.Expr) *ast.LetGroup {
	return &ast.LetGroup{Vars: vars, Body: body}
}

// Paired identifier and value
func (n Names) LetBinding(name string, value ast.Expr) ast.LetBinding {
	return ast.LetBinding{Var: n.Sym(name), Value: value}
}

// Abstraction: `fun (x, y) -> x`
func (n Names) Func(params []string, body ast.Expr) *ast.Func {
	ps := make([]ast.Param, len(params))
	for i, name := range params {
		ps[i] = ast.Param{Name: n.Sym(name)}
	}
	return &ast.Func{Params: ps, Body: body}
}

// Abstraction: `fun (x) -> x`
func (n Names) Func1(param string, body ast.Expr) *ast.Func {
	return &ast.Func{Params: []ast.Param{{Name: n.Sym(param)}}, Body: body}
}

// Abstraction: `fun (x, y) -> x`
func (n Names) Func2(param1, param2 string, body ast.Expr) *ast.Func {
	return &ast.Func{Params: []ast.Param{{Name: n.Sym(param1)}, {Name: n.Sym(param2)}}, Body: body}
}

// Annotated abstraction: `fun (x : s32) : s32 -> x`
func FuncTyped(params []ast.Param, ret ast.TypeExpr, body ast.Expr) *ast.Func {
	return &ast.Func{Params: params, Ret: ret, Body: body}
}

// Parameter with an optional annotation: `x : s32`
func (n Names) Param(name string, t ast.TypeExpr) ast.Param {
	return ast.Param{Name: n.Sym(name), Type: t}
}

// Application: `f(x)`
func Call(f ast.Expr, args ...ast.Expr) *ast.Call {
	return &ast.Call{Func: f, Args: args}
}

// Conditional: `if c then a else b`
func If(cond, then, els ast.Expr) *ast.If {
	return &ast.If{Cond: cond, Then: then, Else: els}
}

// Array literal: `[a, b]`
func Array(elems ...ast.Expr) *ast.Array {
	return &ast.Array{Elems: elems}
}

// Indexing: `xs[i]`
func Index(x, subscript ast.Expr) *ast.Index {
	return &ast.Index{X: x, Subscript: subscript}
}

// Reference: `&x`
func Ref(x ast.Expr) *ast.Ref {
	return &ast.Ref{X: x}
}

// Mutable reference: `&mut x`
func RefMut(x ast.Expr) *ast.Ref {
	return &ast.Ref{Mut: true, X: x}
}

// Dereference: `*x`
func Deref(x ast.Expr) *ast.Deref {
	return &ast.Deref{X: x}
}

// Block: `{ a; b }`
func Block(exprs ...ast.Expr) *ast.Block {
	return &ast.Block{Exprs: exprs}
}

// Type alias: `type Meters = f64 in e`
func (n Names) TypeAlias(name string, t ast.TypeExpr, body ast.Expr) *ast.TypeAlias {
	return &ast.TypeAlias{Name: n.Sym(name), Type: t, Body: body}
}
