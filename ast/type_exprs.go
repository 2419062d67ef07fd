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

// TypeExpr is a type as written in an annotation.
type TypeExpr interface {
	TypeExprName() string
	Span() diag.Span
}

var (
	_ TypeExpr = (*NamedType)(nil)
	_ TypeExpr = (*ArrayType)(nil)
	_ TypeExpr = (*RefType)(nil)
	_ TypeExpr = (*FunType)(nil)
	_ TypeExpr = (*HoleType)(nil)
)

// Named type: `s32`, `bool`, an alias, or a struct name
type NamedType struct {
	At   diag.Span
	Name symbol.Symbol
}

func (t *NamedType) TypeExprName() string { return "NamedType" }
func (t *NamedType) Span() diag.Span      { return t.At }

// Array type: `s32[4]` or `s32[]`
type ArrayType struct {
	At    diag.Span
	Elem  TypeExpr
	Size  uint32
	Sized bool
}

func (t *ArrayType) TypeExprName() string { return "ArrayType" }
func (t *ArrayType) Span() diag.Span      { return t.At }

// Reference type: `&T` or `&mut T`
type RefType struct {
	At    diag.Span
	Mut   bool
	Inner TypeExpr
}

func (t *RefType) TypeExprName() string { return "RefType" }
func (t *RefType) Span() diag.Span      { return t.At }

// Function type: `fn(s32, s32) -> s32`
type FunType struct {
	At     diag.Span
	Params []TypeExpr
	Ret    TypeExpr
}

func (t *FunType) TypeExprName() string { return "FunType" }
func (t *FunType) Span() diag.Span      { return t.At }

// Placeholder for a type to be inferred: `_`
type HoleType struct {
	At diag.Span
}

func (t *HoleType) TypeExprName() string { return "HoleType" }
func (t *HoleType) Span() diag.Span      { return t.At }
