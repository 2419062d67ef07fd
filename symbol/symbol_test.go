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

package symbol

import "testing"

func TestInternDeduplicates(t *testing.T) {
	tab := NewTable()
	a := tab.Intern("x")
	b := tab.Intern("y")
	c := tab.Intern("x")
	if a != c {
		t.Fatalf("expected identical symbols for repeated text, got %d and %d", a, c)
	}
	if a == b {
		t.Fatalf("expected distinct symbols for distinct text")
	}
	if tab.Get(b) != "y" {
		t.Fatalf("unexpected text: %q", tab.Get(b))
	}
	if tab.Len() != 2 {
		t.Fatalf("expected 2 symbols, got %d", tab.Len())
	}
}

func TestLookupAndUnknown(t *testing.T) {
	tab := NewTable()
	if _, ok := tab.Lookup("missing"); ok {
		t.Fatalf("lookup should not allocate")
	}
	if tab.Len() != 0 {
		t.Fatalf("lookup allocated a symbol")
	}
	if s := tab.Get(Symbol(42)); s != "" {
		t.Fatalf("expected empty text for unknown symbol, got %q", s)
	}
}
