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

package astutil

import (
	set "github.com/hashicorp/go-set/v2"

	"github.com/wdamron/tyck/ast"
	"github.com/wdamron/tyck/internal/util"
	"github.com/wdamron/tyck/symbol"
)

// Analysis for grouped let-bindings which may be mutually-recursive; borrowed from Haskell.
// https://prime.haskell.org/wiki/RelaxedDependencyAnalysis
//
//	In Haskell 98, a group of bindings is sorted into strongly-connected components, and then type-checked
//	in dependency order (H98 s4.5.1).
//
// Order returns the indices of the bindings of group, partitioned into strongly-connected
// components and sorted so each component follows every component it references.
func Order(group *ast.LetGroup) [][]int {
	deps := Dependencies(group)
	g := util.NewGraph(len(group.Vars))
	for user, used := range deps {
		for _, dep := range used {
			g.AddEdge(dep, user)
		}
	}
	return g.SCC()
}

// Dependencies returns, for each binding of group, the indices of the bindings within
// group which its value references. References to names shadowed by an inner binding
// are not dependencies.
func Dependencies(group *ast.LetGroup) [][]int {
	a := analysis{
		group:  make(map[symbol.Symbol]int, len(group.Vars)),
		shadow: make(map[symbol.Symbol]int),
	}
	for i, b := range group.Vars {
		a.group[b.Var] = i
	}
	deps := make([][]int, len(group.Vars))
	for i, b := range group.Vars {
		a.refs = set.New[int](len(group.Vars))
		a.order = a.order[:0]
		a.analyzeExpr(b.Value)
		deps[i] = append([]int(nil), a.order...)
	}
	return deps
}

type analysis struct {
	group  map[symbol.Symbol]int
	shadow map[symbol.Symbol]int
	refs   *set.Set[int]
	order  []int
}

func (a *analysis) bind(name symbol.Symbol) { a.shadow[name]++ }

func (a *analysis) unbind(name symbol.Symbol) {
	if a.shadow[name]--; a.shadow[name] <= 0 {
		delete(a.shadow, name)
	}
}

func (a *analysis) analyzeExpr(expr ast.Expr) {
	switch expr := expr.(type) {
	case nil:

	case *ast.Lit:

	case *ast.Var:
		if a.shadow[expr.Name] > 0 {
			return
		}
		if i, ok := a.group[expr.Name]; ok && a.refs.Insert(i) {
			a.order = append(a.order, i)
		}

	case *ast.Unary:
		a.analyzeExpr(expr.X)

	case *ast.Binary:
		a.analyzeExpr(expr.X)
		a.analyzeExpr(expr.Y)

	case *ast.Annot:
		a.analyzeExpr(expr.X)

	case *ast.Let:
		a.analyzeExpr(expr.Value)
		a.bind(expr.Var)
		a.analyzeExpr(expr.Body)
		a.unbind(expr.Var)

	case *ast.LetGroup:
		for _, b := range expr.Vars {
			a.bind(b.Var)
		}
		for _, b := range expr.Vars {
			a.analyzeExpr(b.Value)
		}
		a.analyzeExpr(expr.Body)
		for _, b := range expr.Vars {
			a.unbind(b.Var)
		}

	case *ast.Func:
		for _, p := range expr.Params {
			a.bind(p.Name)
		}
		a.analyzeExpr(expr.Body)
		for _, p := range expr.Params {
			a.unbind(p.Name)
		}

	case *ast.Call:
		a.analyzeExpr(expr.Func)
		for _, arg := range expr.Args {
			a.analyzeExpr(arg)
		}

	case *ast.If:
		a.analyzeExpr(expr.Cond)
		a.analyzeExpr(expr.Then)
		a.analyzeExpr(expr.Else)

	case *ast.Array:
		for _, x := range expr.Elems {
			a.analyzeExpr(x)
		}

	case *ast.Index:
		a.analyzeExpr(expr.X)
		a.analyzeExpr(expr.Subscript)

	case *ast.Ref:
		a.analyzeExpr(expr.X)

	case *ast.Deref:
		a.analyzeExpr(expr.X)

	case *ast.Block:
		for _, x := range expr.Exprs {
			a.analyzeExpr(x)
		}

	case *ast.TypeAlias:
		a.analyzeExpr(expr.Body)

	default:
		panic("unknown expression type: " + expr.ExprName())
	}
}
