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

package util

// Graph is a directed graph over vertices numbered from zero. Each row lists the
// successors of a vertex.
type Graph [][]int

func NewGraph(numVerts int) Graph { return Graph(make([][]int, numVerts)) }

// AddEdge adds an edge, unless it is already present.
func (g Graph) AddEdge(from, to int) {
	if !g.HasEdge(from, to) {
		g[from] = append(g[from], to)
	}
}

func (g Graph) HasEdge(from, to int) bool {
	for _, succ := range g[from] {
		if succ == to {
			return true
		}
	}
	return false
}

// SCC returns the strongly-connected components of g in topological order: when an edge
// leads from u to v, the component of u is listed no later than the component of v.
func (g Graph) SCC() [][]int {
	t := tarjan{
		index:   make([]int, len(g)),
		lowLink: make([]int, len(g)),
		onStack: make([]bool, len(g)),
	}
	for v := range g {
		if t.index[v] == 0 {
			t.visit(g, v)
		}
	}
	sccs := t.sccs
	for i, j := 0, len(sccs)-1; i < j; i, j = i+1, j-1 {
		sccs[i], sccs[j] = sccs[j], sccs[i]
	}
	return sccs
}

type tarjan struct {
	next    int
	index   []int // 1-based visit order; 0 when unvisited
	lowLink []int
	onStack []bool
	stack   []int
	sccs    [][]int
}

// Tarjan's SCC algorithm, based on https://github.com/gonum/gonum/blob/master/graph/topo/tarjan.go
//
// Components are emitted in reverse topological order.
func (t *tarjan) visit(g Graph, v int) {
	t.next++
	t.index[v], t.lowLink[v] = t.next, t.next
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, succ := range g[v] {
		switch {
		case t.index[succ] == 0:
			t.visit(g, succ)
			t.lowLink[v] = min(t.lowLink[v], t.lowLink[succ])
		case t.onStack[succ]:
			t.lowLink[v] = min(t.lowLink[v], t.index[succ])
		}
	}

	if t.lowLink[v] != t.index[v] {
		return
	}
	var scc []int
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[top] = false
		scc = append(scc, top)
		if top == v {
			break
		}
	}
	t.sccs = append(t.sccs, scc)
}
