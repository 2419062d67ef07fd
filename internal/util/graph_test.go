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

import (
	"sort"
	"testing"
)

func TestSCCTopologicalOrder(t *testing.T) {
	// 0 -> 1 -> 2 -> 1, 2 -> 3
	g := NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(2, 3)
	g.AddEdge(2, 3)

	if len(g[2]) != 2 {
		t.Fatalf("duplicate edges must be ignored")
	}

	sccs := g.SCC()
	if len(sccs) != 3 {
		t.Fatalf("expected 3 components, got %v", sccs)
	}
	sort.Ints(sccs[1])
	if len(sccs[0]) != 1 || sccs[0][0] != 0 {
		t.Fatalf("unexpected first component: %v", sccs)
	}
	if len(sccs[1]) != 2 || sccs[1][0] != 1 || sccs[1][1] != 2 {
		t.Fatalf("unexpected second component: %v", sccs)
	}
	if len(sccs[2]) != 1 || sccs[2][0] != 3 {
		t.Fatalf("unexpected last component: %v", sccs)
	}
}

func TestSCCDisconnected(t *testing.T) {
	g := NewGraph(3)
	sccs := g.SCC()
	if len(sccs) != 3 {
		t.Fatalf("expected a component per vertex, got %v", sccs)
	}
	for _, scc := range sccs {
		if len(scc) != 1 {
			t.Fatalf("unexpected component: %v", scc)
		}
	}
}

func TestSCCSelfLoop(t *testing.T) {
	g := NewGraph(2)
	g.AddEdge(0, 0)
	g.AddEdge(1, 0)
	sccs := g.SCC()
	if len(sccs) != 2 || sccs[0][0] != 1 || sccs[1][0] != 0 {
		t.Fatalf("unexpected components: %v", sccs)
	}
}
