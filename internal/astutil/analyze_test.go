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

package astutil_test

import (
	"testing"

	"github.com/wdamron/tyck/ast"
	. "github.com/wdamron/tyck/construct"
	"github.com/wdamron/tyck/internal/astutil"
)

func TestDependencies(t *testing.T) {
	n := NewNames(nil)
	group := LetGroup([]ast.LetBinding{
		n.LetBinding("a", n.Func1("x", Call(n.Var("b"), n.Var("x")))),
		n.LetBinding("b", n.Func1("y", Call(n.Var("a"), n.Var("y")))),
		// c shadows b with its parameter, so it only depends on a:
		n.LetBinding("c", n.Func1("b", Binary(ast.Add, n.Var("b"), Call(n.Var("a"), Int("1"))))),
		n.LetBinding("d", Int("1")),
	}, n.Var("c"))

	deps := astutil.Dependencies(group)
	if len(deps[0]) != 1 || deps[0][0] != 1 {
		t.Fatalf("unexpected dependencies of a: %v", deps[0])
	}
	if len(deps[1]) != 1 || deps[1][0] != 0 {
		t.Fatalf("unexpected dependencies of b: %v", deps[1])
	}
	if len(deps[2]) != 1 || deps[2][0] != 0 {
		t.Fatalf("unexpected dependencies of c: %v", deps[2])
	}
	if len(deps[3]) != 0 {
		t.Fatalf("unexpected dependencies of d: %v", deps[3])
	}
}

func TestOrder(t *testing.T) {
	n := NewNames(nil)
	group := LetGroup([]ast.LetBinding{
		n.LetBinding("uses", Call(n.Var("isEven"), Int("4"))),
		n.LetBinding("isEven", n.Func1("x", Call(n.Var("isOdd"), n.Var("x")))),
		n.LetBinding("isOdd", n.Func1("x", Call(n.Var("isEven"), n.Var("x")))),
	}, n.Var("uses"))

	sccs := astutil.Order(group)
	if len(sccs) != 2 {
		t.Fatalf("expected 2 components, got %v", sccs)
	}
	if len(sccs[0]) != 2 {
		t.Fatalf("expected the mutually-recursive pair first, got %v", sccs)
	}
	if len(sccs[1]) != 1 || sccs[1][0] != 0 {
		t.Fatalf("expected the dependent binding last, got %v", sccs)
	}
}

func TestDependenciesInnerLet(t *testing.T) {
	n := NewNames(nil)
	// The inner let shadows f within its body but not within its value.
	group := LetGroup([]ast.LetBinding{
		n.LetBinding("f", Int("1")),
		n.LetBinding("g", n.Let("f", n.Var("f"), n.Var("f"))),
	}, n.Var("g"))
	deps := astutil.Dependencies(group)
	if len(deps[1]) != 1 || deps[1][0] != 0 {
		t.Fatalf("unexpected dependencies of g: %v", deps[1])
	}
}
