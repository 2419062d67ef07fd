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

package tyck_test

import (
	"testing"

	"github.com/wdamron/tyck"
	"github.com/wdamron/tyck/ast"
	. "github.com/wdamron/tyck/construct"
	"github.com/wdamron/tyck/diag"
)

func newChecker(n Names) *tyck.Checker {
	return tyck.NewWithOptions(tyck.Options{Names: n.Table, DefaultLiterals: true})
}

func expectType(t *testing.T, c *tyck.Checker, res *tyck.Result, want string) {
	t.Helper()
	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors())
	}
	if got := c.TypeString(res.Type()); got != want {
		t.Fatalf("expected %s, found %s", want, got)
	}
}

func expectErrors(t *testing.T, res *tyck.Result, kinds ...diag.ErrorKind) {
	t.Helper()
	errs := res.Errors()
	if len(errs) != len(kinds) || res.ErrorCount() != len(kinds) {
		t.Fatalf("expected %d errors, got %v", len(kinds), errs)
	}
	for i, k := range kinds {
		if errs[i].Kind != k {
			t.Fatalf("expected %s, got %v", k, errs[i])
		}
	}
}

func TestLetPolymorphism(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	idCall := Call(n.Var("id"), Int("1"))
	expr := n.Let("id", n.Func1("x", n.Var("x")),
		Block(idCall, Call(n.Var("id"), Bool(true))))

	res := c.Check(expr)
	expectType(t, c, res, "bool")
	if s := res.TypeString(idCall); s != "s32" {
		t.Fatalf("expected the integer literal to default to s32, found %s", s)
	}
	s, ok := c.Scheme(n.Sym("id"))
	if !ok || c.SchemeString(s) != "forall 'a. fn('a) -> 'a" {
		t.Fatalf("unexpected scheme for id")
	}
}

func TestMonomorphicParams(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	expr := n.Func1("f", Block(Call(n.Var("f"), Str(`"s"`)), Call(n.Var("f"), Bool(true))))
	res := c.Check(expr)
	expectErrors(t, res, diag.TypeMismatch)
	if msg := res.Errors()[0].Message; msg != "expected str, found bool" {
		t.Fatalf("unexpected message: %s", msg)
	}
}

func TestSelfApplication(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	res := c.Check(n.Func1("x", Call(n.Var("x"), n.Var("x"))))
	expectErrors(t, res, diag.InfiniteType)
	if s := c.TypeString(res.Type()); s != "fn('a) -> <error>" {
		t.Fatalf("unexpected type: %s", s)
	}
}

func TestCallArity(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	expr := n.Let("f", n.Func2("a", "b", n.Var("a")), Call(n.Var("f"), Int("1")))
	res := c.Check(expr)
	expectErrors(t, res, diag.ArgumentCountMismatch)
	if res.Type() != c.ErrorType() {
		t.Fatalf("expected the error type for a failed call")
	}
}

func TestCallNonFunction(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	res := c.Check(Call(Bool(true), Int("1")))
	expectErrors(t, res, diag.TypeMismatch)
	if msg := res.Errors()[0].Message; msg != "expected bool, found fn('a) -> 'b" {
		t.Fatalf("unexpected message: %s", msg)
	}
}

func TestArraySizes(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	takes3 := FuncTyped([]ast.Param{n.Param("xs", TArray(n.TName("s32"), 3))}, nil, n.Var("xs"))
	res := c.Check(Call(takes3, Array(Int("1"), Int("2"))))
	expectErrors(t, res, diag.ArraySizeMismatch)

	res = c.Check(Call(takes3, Array(Int("1"), Int("2"), Int("3"))))
	expectType(t, c, res, "s32[3]")
}

func TestArrayElements(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	res := c.Check(Index(Array(Int("1"), Int("2"), Int("3")), Int("0")))
	expectType(t, c, res, "s32")

	res = c.Check(Array(Str(`"a"`), Bool(false)))
	expectErrors(t, res, diag.TypeMismatch)

	res = c.Check(Array())
	if s := c.TypeString(res.Type()); s != "'a[0]" {
		t.Fatalf("unexpected type for an empty array: %s", s)
	}

	res = c.Check(Index(Bool(true), Int("0")))
	expectErrors(t, res, diag.TypeMismatch)
	res = c.Check(Index(Array(Int("1")), Str(`"0"`)))
	expectErrors(t, res, diag.TypeMismatch)
}

func TestIndexUnknownArray(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	res := c.Check(n.Func1("xs", Binary(ast.Add, Index(n.Var("xs"), Int("0")), Float("1.0"))))
	expectType(t, c, res, "fn(f32[]) -> f32")
}

func TestReferences(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	res := c.Check(Deref(RefMut(Int("5"))))
	expectType(t, c, res, "s32")

	res = c.Check(n.Func1("r", Binary(ast.Add, Deref(n.Var("r")), Float("1.0"))))
	expectType(t, c, res, "fn(&f32) -> f32")

	res = c.Check(Annot(Ref(Int("1")), TRefMut(n.TName("s32"))))
	expectErrors(t, res, diag.TypeMismatch)

	res = c.Check(Deref(Bool(true)))
	expectErrors(t, res, diag.TypeMismatch)
}

func TestConditionals(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	res := c.Check(If(Bool(true), Int("1"), Int("2")))
	expectType(t, c, res, "s32")

	cond := Spanned(3, 3, Str(`"s"`))
	res = c.Check(If(cond, Int("1"), Int("2")))
	expectErrors(t, res, diag.TypeMismatch)
	if res.Errors()[0].Span != cond.Span() {
		t.Fatalf("expected the error at the condition")
	}

	res = c.Check(If(Bool(true), Bool(false), Str(`"s"`)))
	expectErrors(t, res, diag.TypeMismatch)

	res = c.Check(If(Bool(true), Unit(), nil))
	expectType(t, c, res, "()")
}

func TestOperators(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	expr := n.Func2("a", "b",
		If(Binary(ast.And, Binary(ast.Lt, n.Var("a"), n.Var("b")), Unary(ast.Not, Bool(false))),
			Binary(ast.Shl, n.Var("a"), Int("1")),
			Unary(ast.BitNot, n.Var("b"))))
	res := c.Check(expr)
	expectType(t, c, res, "fn(s32, s32) -> s32")

	res = c.Check(Binary(ast.Add, Str(`"a"`), Str(`"b"`)))
	expectErrors(t, res, diag.TypeMismatch)
}

func TestAnnotations(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	res := c.Check(Annot(Int("1"), n.TName("u8")))
	expectType(t, c, res, "u8")

	res = c.Check(n.LetAnnot("x", n.TName("f64"), Float("1.0"), n.Var("x")))
	expectType(t, c, res, "f64")

	res = c.Check(FuncTyped([]ast.Param{n.Param("x", THole())}, n.TName("s64"), n.Var("x")))
	expectType(t, c, res, "fn(s64) -> s64")

	res = c.Check(n.LetAnnot("x", n.TName("bool"), Str(`"s"`), n.Var("x")))
	expectErrors(t, res, diag.TypeMismatch)
	if res.Type() != c.ErrorType() {
		t.Fatalf("expected the error type for a binding with a failed annotation")
	}

	// Holes within annotations are generalized with the binding:
	res = c.Check(n.LetAnnot("id", TFun([]ast.TypeExpr{THole()}, THole()), n.Func1("x", n.Var("x")),
		Block(Call(n.Var("id"), Bool(true)), Call(n.Var("id"), Char("'c'")))))
	expectType(t, c, res, "char")
}

func TestTypeAliases(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	res := c.Check(n.TypeAlias("Meters", n.TName("f64"), Annot(Float("1.5"), n.TName("Meters"))))
	expectType(t, c, res, "f64")

	res = c.Check(Annot(Int("1"), n.TName("Meters")))
	expectType(t, c, res, "Meters")
}

func TestStrictTypeNames(t *testing.T) {
	n := NewNames(nil)
	c := tyck.NewWithOptions(tyck.Options{Names: n.Table, StrictTypeNames: true})
	res := c.Check(Annot(Bool(true), n.TName("Meters")))
	expectErrors(t, res, diag.UndefinedType)
	if msg := res.Errors()[0].Message; msg != "undefined type `Meters`" {
		t.Fatalf("unexpected message: %s", msg)
	}
	if s := c.TypeString(res.Type()); s != "bool" {
		t.Fatalf("expected the annotation to be replaced by a hole, found %s", s)
	}
}

func TestErrorRecovery(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)

	res := c.Check(Binary(ast.Add, n.Var("missing"), Str(`"s"`)))
	expectErrors(t, res, diag.UndefinedVariable)

	res = c.Check(n.Let("x", n.Var("missing"), Block(
		Call(n.Var("x"), Int("1")),
		Binary(ast.Add, n.Var("x"), Bool(true)),
		Deref(n.Var("x")),
		Unary(ast.Neg, Index(n.Var("x"), Int("0"))),
	)))
	expectErrors(t, res, diag.UndefinedVariable)

	res = c.Check(Block(
		Call(n.Var("f"), n.Var("y")),
		Binary(ast.Add, Bool(true), Int("1")),
		If(Str(`"s"`), Unit(), Unit()),
	))
	expectErrors(t, res, diag.UndefinedVariable, diag.UndefinedVariable, diag.TypeMismatch, diag.TypeMismatch)
	if res.Type() != c.UnitType() {
		t.Fatalf("expected checking to continue after errors")
	}
}

func TestMutuallyRecursiveLet(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	f, g, h, id, x := n.Var("f"), n.Var("g"), n.Var("h"), n.Var("id"), n.Var("x")

	expr := LetGroup(
		[]ast.LetBinding{
			n.LetBinding("id", n.Func1("x", x)),
			n.LetBinding("f", n.Func1("x", If(Call(id, Bool(true)), Call(id, x), Call(g, Binary(ast.Add, x, x))))),
			n.LetBinding("g", n.Func1("x", If(Bool(false), x, Call(id, Call(f, x))))),
		},
		n.Let("h", n.Func1("x", Call(id, Call(f, x))),
			Block(Call(h, Float("1.0")), Call(g, Char("'c'")), Call(f, Bool(true)))))

	exprString := ast.ExprString(expr, n.Table)
	expect := "" +
		"let id = fun (x) -> x" +
		" and f = fun (x) -> if id(true) then id(x) else g(x + x)" +
		" and g = fun (x) -> if false then x else id(f(x))" +
		" in let h = fun (x) -> id(f(x))" +
		" in { h(1.0); g('c'); f(true) }"
	if exprString != expect {
		t.Fatalf("expr: %s", exprString)
	}
	t.Logf("expr: %s", exprString)

	// Check twice to ensure state from the first check does not interfere:
	for i := 0; i < 2; i++ {
		res := c.Check(expr)
		expectType(t, c, res, "bool")
		for _, name := range []string{"id", "f", "g", "h"} {
			s, ok := c.Scheme(n.Sym(name))
			if !ok || c.SchemeString(s) != "forall 'a. fn('a) -> 'a" {
				t.Fatalf("unexpected scheme for %s", name)
			}
		}
	}
}

func TestRecursiveLet(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	expr := LetGroup([]ast.LetBinding{
		n.LetBinding("count", n.Func1("x",
			If(Binary(ast.Eq, n.Var("x"), Int("0")), n.Var("x"),
				Call(n.Var("count"), Binary(ast.Sub, n.Var("x"), Int("1")))))),
	}, Call(n.Var("count"), Annot(Int("10"), n.TName("u64"))))
	res := c.Check(expr)
	expectType(t, c, res, "u64")
}

func TestScopedPoly(t *testing.T) {
	n := NewNames(nil)
	expr := n.Let("id", n.Func1("x", n.Var("x")),
		n.Func1("id", Binary(ast.Add, n.Var("id"), Int("1"))))

	// By default the polymorphic binding is found before the parameter:
	c := newChecker(n)
	res := c.Check(expr)
	expectErrors(t, res, diag.TypeMismatch)

	c = tyck.NewWithOptions(tyck.Options{Names: n.Table, DefaultLiterals: true, ScopedPoly: true})
	res = c.Check(expr)
	expectType(t, c, res, "fn(s32) -> s32")
	if _, ok := c.Scheme(n.Sym("id")); ok {
		t.Fatalf("expected the polymorphic binding to be discarded after its body")
	}
}

func TestLetScoping(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	res := c.Check(Block(n.Let("x", Bool(true), n.Var("x")), n.Var("x")))
	expectErrors(t, res, diag.UndefinedVariable)
}

func TestLetBoundLiteralIsMonomorphic(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	x := n.Var("x")
	expr := n.Let("x", Int("5"), Block(
		Binary(ast.And, n.Var("x"), Bool(true)),
		Binary(ast.Add, n.Var("x"), Float("1.5")),
		Annot(x, n.TName("str"))))
	res := c.Check(expr)
	expectErrors(t, res, diag.TypeMismatch, diag.TypeMismatch)
	if msg := res.Errors()[0].Message; msg != "expected a numeric type for +, found bool" {
		t.Fatalf("unexpected message: %s", msg)
	}
	if msg := res.Errors()[1].Message; msg != "expected str, found bool" {
		t.Fatalf("unexpected message: %s", msg)
	}
	if s := res.TypeString(x); s != "bool" {
		t.Fatalf("expected the first use to pin the literal to bool, found %s", s)
	}
	if _, ok := c.Scheme(n.Sym("x")); ok {
		t.Fatalf("a let-bound literal must not be generalized")
	}

	res = c.Check(n.Let("y", Int("5"), Block(Annot(n.Var("y"), n.TName("u8")), Annot(n.Var("y"), n.TName("s64")))))
	expectErrors(t, res, diag.TypeMismatch)
	if msg := res.Errors()[0].Message; msg != "expected s64, found u8" {
		t.Fatalf("unexpected message: %s", msg)
	}
}

func TestLiteralInFunctionBody(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	expr := n.Let("inc", n.Func1("y", Binary(ast.Add, n.Var("y"), Int("1"))),
		Call(n.Var("inc"), Annot(Int("2"), n.TName("u8"))))
	res := c.Check(expr)
	expectType(t, c, res, "u8")
	if _, ok := c.Scheme(n.Sym("inc")); ok {
		t.Fatalf("a function over a literal's type must not be generalized")
	}
}

func TestAnnotationTable(t *testing.T) {
	n := NewNames(nil)
	c := newChecker(n)
	x := n.Var("x")
	one := Int("1")
	add := Binary(ast.Add, x, one)
	fn := n.Func1("x", add)
	res := c.Check(fn)

	if res.Len() != 4 {
		t.Fatalf("expected 4 annotated expressions, got %d", res.Len())
	}
	for e, want := range map[ast.Expr]string{fn: "fn(s32) -> s32", add: "s32", x: "s32", one: "s32"} {
		if got := res.TypeString(e); got != want {
			t.Fatalf("expected %s for %s, found %s", want, e.ExprName(), got)
		}
	}
	if res.At(fn.Id()) != res.Type() {
		t.Fatalf("the root must be annotated with the result type")
	}
	if res.TypeOf(Int("2")) != c.ErrorType() || res.At(99) != c.ErrorType() {
		t.Fatalf("expected the error type for unknown expressions")
	}
	if got := c.ResolveTy(res.TypeOf(x)); got.Kind().String() != "Int" || got.IntWidth().Bits() != 32 {
		t.Fatalf("unexpected resolved descriptor: %v", got)
	}
}

func TestNoDefaultLiterals(t *testing.T) {
	n := NewNames(nil)
	c := tyck.NewWithOptions(tyck.Options{Names: n.Table})
	res := c.Check(Binary(ast.Add, Int("1"), Int("2")))
	expectType(t, c, res, "'a")
	res = c.Check(nil)
	expectType(t, c, res, "()")
}

func TestCheckPanicsOnUnknownExpr(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	tyck.New().Check(&unknownExpr{})
}

type unknownExpr struct{ ast.Node }

func (*unknownExpr) ExprName() string { return "Unknown" }
