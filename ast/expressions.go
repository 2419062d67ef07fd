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

import (
	"github.com/wdamron/tyck/diag"
	"github.com/wdamron/tyck/symbol"
)

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Span returns the source region of the expression.
	Span() diag.Span
	// SetSpan replaces the source region of the expression.
	SetSpan(diag.Span)
	// Id returns the index assigned to the expression by Number, or -1 before numbering.
	Id() int

	setId(int)
}

var (
	_ Expr = (*Lit)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Unary)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*Annot)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetGroup)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Array)(nil)
	_ Expr = (*Index)(nil)
	_ Expr = (*Ref)(nil)
	_ Expr = (*Deref)(nil)
	_ Expr = (*Block)(nil)
	_ Expr = (*TypeAlias)(nil)
)

// Node holds the source span and index shared by all expressions.
type Node struct {
	At diag.Span
	id int
}

func (n *Node) Span() diag.Span { return n.At }

func (n *Node) SetSpan(s diag.Span) { n.At = s }

func (n *Node) Id() int {
	if n.id == 0 {
		return -1
	}
	return n.id - 1
}

func (n *Node) setId(id int) { n.id = id + 1 }

// LitKind is the syntactic class of a literal.
type LitKind uint8

const (
	IntLit LitKind = iota
	FloatLit
	BoolLit
	CharLit
	StrLit
	BytesLit
	UnitLit
)

// Literal value: `1`, `1.5`, `true`, `'c'`, `"s"`, `b"s"`, `()`
type Lit struct {
	Node
	Kind LitKind
	// Syntax is the literal as written. It is printed when the literal is printed.
	Syntax string
}

// "Lit"
func (e *Lit) ExprName() string { return "Lit" }

// Variable reference: `x`
type Var struct {
	Node
	Name symbol.Symbol
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Unary operation: `-x`, `!x`, `~x`
type Unary struct {
	Node
	Op UnOp
	X  Expr
}

// "Unary"
func (e *Unary) ExprName() string { return "Unary" }

// Binary operation: `x + y`
type Binary struct {
	Node
	Op BinOp
	X  Expr
	Y  Expr
}

// "Binary"
func (e *Binary) ExprName() string { return "Binary" }

// Type annotation: `(x : s32)`
type Annot struct {
	Node
	X    Expr
	Type TypeExpr
}

// "Annot"
func (e *Annot) ExprName() string { return "Annot" }

// Let-binding: `let a = 1 in e` or `let a : s32 = 1 in e`
type Let struct {
	Node
	Var symbol.Symbol
	// Type is an optional annotation of the bound value.
	Type  TypeExpr
	Value Expr
	Body  Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Grouped (mutually recursive) let-bindings: `let f = ... and g = ... in e`
type LetGroup struct {
	Node
	Vars []LetBinding
	Body Expr
}

// "LetGroup"
func (e *LetGroup) ExprName() string { return "LetGroup" }

// Paired identifier and value
type LetBinding struct {
	Var   symbol.Symbol
	Value Expr
}

// Abstraction: `fun (x, y : s32) -> x`
type Func struct {
	Node
	Params []Param
	// Ret is an optional annotation of the return type.
	Ret  TypeExpr
	Body Expr
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

// Function parameter with an optional type annotation
type Param struct {
	Name symbol.Symbol
	Type TypeExpr
}

// Application: `f(x)`
type Call struct {
	Node
	Func Expr
	Args []Expr
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Conditional: `if c then a else b`. A missing else-branch has the unit type.
type If struct {
	Node
	Cond Expr
	Then Expr
	Else Expr
}

// "If"
func (e *If) ExprName() string { return "If" }

// Array literal: `[a, b, c]`
type Array struct {
	Node
	Elems []Expr
}

// "Array"
func (e *Array) ExprName() string { return "Array" }

// Indexing: `xs[i]`
type Index struct {
	Node
	X         Expr
	Subscript Expr
}

// "Index"
func (e *Index) ExprName() string { return "Index" }

// Reference: `&x` or `&mut x`
type Ref struct {
	Node
	Mut bool
	X   Expr
}

// "Ref"
func (e *Ref) ExprName() string { return "Ref" }

// Dereference: `*x`
type Deref struct {
	Node
	X Expr
}

// "Deref"
func (e *Deref) ExprName() string { return "Deref" }

// Block: `{ a; b; c }`. Bindings introduced within a block are not visible after it.
// The type of a block is the type of its last expression, or unit when empty.
type Block struct {
	Node
	Exprs []Expr
}

// "Block"
func (e *Block) ExprName() string { return "Block" }

// Type alias: `type Meters = f64 in e`
type TypeAlias struct {
	Node
	Name symbol.Symbol
	Type TypeExpr
	Body Expr
}

// "TypeAlias"
func (e *TypeAlias) ExprName() string { return "TypeAlias" }
