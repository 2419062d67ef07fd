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

// symbol provides interned identifiers.
//
// A Symbol is a compact handle for a string owned by an Interner. The checker only
// ever needs to read a symbol's text back, for builtin type-name matching and for
// diagnostics, so it depends on the Interner interface rather than on Table.
package symbol

// Symbol is an index into the storage of an Interner.
type Symbol uint32

// Interner resolves symbols to their backing text.
type Interner interface {
	Get(sym Symbol) string
}

var _ Interner = (*Table)(nil)

// Table is a growable Interner. Interning the same text twice yields the same Symbol.
//
// A table cannot be used concurrently.
type Table struct {
	index map[string]Symbol
	names []string
}

// Create an empty symbol table.
func NewTable() *Table {
	return &Table{index: make(map[string]Symbol, 64), names: make([]string, 0, 64)}
}

// Intern returns the symbol for name, allocating one if name has not been seen.
func (t *Table) Intern(name string) Symbol {
	if sym, ok := t.index[name]; ok {
		return sym
	}
	sym := Symbol(len(t.names))
	t.names = append(t.names, name)
	t.index[name] = sym
	return sym
}

// Lookup returns the symbol for name without allocating.
func (t *Table) Lookup(name string) (Symbol, bool) {
	sym, ok := t.index[name]
	return sym, ok
}

// Get returns the text of sym, or the empty string for an unknown symbol.
func (t *Table) Get(sym Symbol) string {
	if int(sym) >= len(t.names) {
		return ""
	}
	return t.names[sym]
}

// Len returns the number of interned symbols.
func (t *Table) Len() int { return len(t.names) }
