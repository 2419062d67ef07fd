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

package ast_test

import (
	"testing"

	"github.com/wdamron/tyck/ast"
	. "github.com/wdamron/tyck/construct"
)

func TestExprString(t *testing.T) {
	n := NewNames(nil)
	expr := n.Let("id", n.Func1("x", n.Var("x")),
		Block(
			Call(n.Var("id"), Int("1")),
			Binary(ast.Add, n.Var("a"), Binary(ast.Mul, Int("2"), n.Var("b"))),
			If(Bool(true), Annot(Float("1.5"), n.TName("f64")), Unary(ast.Neg, Float("2.0"))),
			Index(Array(Int("1"), Int("2")), Int("0")),
			RefMut(Deref(n.Var("p"))),
		))

	s := ast.ExprString(expr, n.Table)
	want := "let id = fun (x) -> x in { id(1); a + (2 * b); if true then (1.5 : f64) else -2.0; [1, 2][0]; &mut *p }"
	if s != want {
		t.Fatalf("expr:\n%s\nwant:\n%s", s, want)
	}
	t.Logf("expr: %s", s)
}

func TestTypeExprString(t *testing.T) {
	n := NewNames(nil)
	te := TFun([]ast.TypeExpr{TArray(n.TName("s32"), 4), TRef(THole())}, TRefMut(TSlice(n.TName("u8"))))
	if s := ast.TypeExprString(te, n.Table); s != "fn(s32[4], &_) -> &mut u8[]" {
		t.Fatalf("type: %s", s)
	}
}

func TestNumberPreorder(t *testing.T) {
	n := NewNames(nil)
	x := n.Var("x")
	one := Int("1")
	add := Binary(ast.Add, x, one)
	fn := n.Func1("x", add)

	if count := ast.Number(fn); count != 4 {
		t.Fatalf("expected 4 expressions, got %d", count)
	}
	if fn.Id() != 0 || add.Id() != 1 || x.Id() != 2 || one.Id() != 3 {
		t.Fatalf("unexpected numbering: %d %d %d %d", fn.Id(), add.Id(), x.Id(), one.Id())
	}

	// Renumbering a subtree restarts from zero:
	if count := ast.Number(add); count != 3 || add.Id() != 0 || one.Id() != 2 {
		t.Fatalf("unexpected renumbering")
	}
}

func TestNumberSharedNodes(t *testing.T) {
	shared := Int("7")
	block := Block(shared, shared)
	if count := ast.Number(block); count != 2 {
		t.Fatalf("shared nodes must be numbered once, got %d", count)
	}
	if shared.Id() != 1 {
		t.Fatalf("expected shared node to keep its first index, got %d", shared.Id())
	}
}

func TestUnnumbered(t *testing.T) {
	if id := Int("1").Id(); id != -1 {
		t.Fatalf("expected -1 before numbering, got %d", id)
	}
}

func TestSpanned(t *testing.T) {
	lit := Spanned(3, 2, Int("42"))
	if sp := lit.Span(); sp.Start != 3 || sp.Len != 2 {
		t.Fatalf("unexpected span %v", sp)
	}
}

func TestOperators(t *testing.T) {
	for _, s := range []string{"+", "==", "&&", "<<", "%"} {
		op, ok := ast.ParseBinOp(s)
		if !ok || op.String() != s {
			t.Fatalf("round-trip failed for %q", s)
		}
	}
	if !ast.Rem.Arithmetic() || !ast.Gte.Comparison() || !ast.Or.Logical() || !ast.Shr.Bitwise() {
		t.Fatalf("operator classification failed")
	}
	if ast.Eq.Arithmetic() || ast.And.Bitwise() {
		t.Fatalf("operator classification failed")
	}
	if op, ok := ast.ParseUnOp("~"); !ok || op != ast.BitNot {
		t.Fatalf("unexpected unary operator")
	}
	if _, ok := ast.ParseBinOp("**"); ok {
		t.Fatalf("unexpected operator")
	}
}
