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

// diag defines the diagnostics produced by type-checking: source spans, error kinds,
// error records, and the Reporter sink which collects them.
//
// Reporting never aborts a pass. A failing check reports exactly once and returns
// an empty result; the caller decides whether to continue after inspecting the
// collected errors.
package diag

import (
	"strconv"
)

// Span is a region of source text, given by its starting byte offset and length.
// The checker forwards spans into error records without inspecting them.
type Span struct {
	Start uint32
	Len   uint16
}

// The zero span.
var NoSpan = Span{}

// Create a span covering [start, start+len).
func NewSpan(start uint32, len uint16) Span { return Span{Start: start, Len: len} }

// End returns the exclusive end offset of the span.
func (s Span) End() uint32 { return s.Start + uint32(s.Len) }

func (s Span) String() string {
	return strconv.FormatUint(uint64(s.Start), 10) + ".." + strconv.FormatUint(uint64(s.End()), 10)
}

// ErrorKind classifies a type-checking failure.
type ErrorKind uint16

const (
	// Two concrete types differ in kind, signedness, width, or mutability.
	TypeMismatch ErrorKind = iota + 1
	// A type-variable would be bound to a type containing itself.
	InfiniteType
	// Two function types have different arities.
	ArgumentCountMismatch
	// Two array types have different fixed sizes.
	ArraySizeMismatch
	// A name is bound in neither the polymorphic nor the monomorphic environment.
	UndefinedVariable
	// A type name is neither a builtin nor an alias (strict type-name resolution only).
	UndefinedType
)

var kindNames = [...]string{
	TypeMismatch:          "type mismatch",
	InfiniteType:          "infinite type",
	ArgumentCountMismatch: "argument count mismatch",
	ArraySizeMismatch:     "array size mismatch",
	UndefinedVariable:     "undefined variable",
	UndefinedType:         "undefined type",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown error " + strconv.Itoa(int(k))
}

// ParseErrorKind returns the kind named s, as printed by ErrorKind.String.
func ParseErrorKind(s string) (ErrorKind, bool) {
	for k, name := range kindNames {
		if name != "" && name == s {
			return ErrorKind(k), true
		}
	}
	return 0, false
}

// Error is a single diagnostic.
type Error struct {
	Kind ErrorKind
	Span Span
	// Message is an optional human-readable detail, e.g. the two mismatched types.
	Message string
}

// Create an error record without a detail message.
func NewError(kind ErrorKind, span Span) Error { return Error{Kind: kind, Span: span} }

func (e Error) Error() string {
	if e.Message == "" {
		return e.Kind.String() + " at " + e.Span.String()
	}
	return e.Kind.String() + " at " + e.Span.String() + ": " + e.Message
}
