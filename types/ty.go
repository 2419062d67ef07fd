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

package types

import (
	"github.com/wdamron/tyck/symbol"
)

// TyId is the canonical handle of a type in a Universe. Equal concrete types share
// a TyId; type-variables never do.
type TyId uint32

// InferVarId identifies a type-variable. Ids are allocated from a monotonic counter
// and are never reused within a checking pass.
type InferVarId uint32

// Handles into the compound table.
type (
	FunId   uint32
	ArrayId uint32
	RefId   uint32
)

// Kind is the variant tag of a Ty.
type Kind uint8

const (
	// Error is the zero Kind, so an out-of-range lookup yields the error type.
	Error Kind = iota
	Unit
	Bool
	Char
	Str
	Bytes
	// The type of types
	Type
	// Opaque UI-template type
	Template
	Int
	Float
	Infer
	Fun
	Array
	Ref
	// Nominal placeholder, not decomposed
	Struct
)

var kindNames = [...]string{
	Error:    "Error",
	Unit:     "Unit",
	Bool:     "Bool",
	Char:     "Char",
	Str:      "Str",
	Bytes:    "Bytes",
	Type:     "Type",
	Template: "Template",
	Int:      "Int",
	Float:    "Float",
	Infer:    "Infer",
	Fun:      "Fun",
	Array:    "Array",
	Ref:      "Ref",
	Struct:   "Struct",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IntWidth is the bit-width of an integer type.
type IntWidth uint8

const (
	W8 IntWidth = iota + 1
	W16
	W32
	W64
)

// Bits returns the number of bits of the width.
func (w IntWidth) Bits() int {
	switch w {
	case W8:
		return 8
	case W16:
		return 16
	case W32:
		return 32
	case W64:
		return 64
	}
	return 0
}

// FloatWidth is the bit-width of a floating-point type.
type FloatWidth uint8

const (
	F32 FloatWidth = iota + 1
	F64
)

// Bits returns the number of bits of the width.
func (w FloatWidth) Bits() int {
	switch w {
	case F32:
		return 32
	case F64:
		return 64
	}
	return 0
}

// Ty is a type descriptor. Ty is comparable; two descriptors are structurally equal
// iff they compare equal with ==, which is what interning relies on.
//
// The payload is interpreted according to the kind: signedness and width for Int,
// width for Float, and a handle (type-variable, compound id, or symbol) otherwise.
type Ty struct {
	kind   Kind
	signed bool
	width  uint8
	handle uint32
}

// Descriptors for types without a payload.
var (
	ErrorTy    = Ty{kind: Error}
	UnitTy     = Ty{kind: Unit}
	BoolTy     = Ty{kind: Bool}
	CharTy     = Ty{kind: Char}
	StrTy      = Ty{kind: Str}
	BytesTy    = Ty{kind: Bytes}
	TypeTy     = Ty{kind: Type}
	TemplateTy = Ty{kind: Template}
)

// Integer type: `s32`, `u8`, etc
func IntTy(signed bool, width IntWidth) Ty { return Ty{kind: Int, signed: signed, width: uint8(width)} }

// Floating-point type: `f32`, `f64`
func FloatTy(width FloatWidth) Ty { return Ty{kind: Float, width: uint8(width)} }

// Type-variable
func InferTy(v InferVarId) Ty { return Ty{kind: Infer, handle: uint32(v)} }

// Function type, described by an entry in the compound table
func FunTy(id FunId) Ty { return Ty{kind: Fun, handle: uint32(id)} }

// Array type, described by an entry in the compound table
func ArrayTyOf(id ArrayId) Ty { return Ty{kind: Array, handle: uint32(id)} }

// Reference type, described by an entry in the compound table
func RefTyOf(id RefId) Ty { return Ty{kind: Ref, handle: uint32(id)} }

// Nominal placeholder type
func StructTy(name symbol.Symbol) Ty { return Ty{kind: Struct, handle: uint32(name)} }

func (t Ty) Kind() Kind { return t.kind }

// Signed reports the signedness of an integer type.
func (t Ty) Signed() bool { return t.signed }

// IntWidth returns the width of an integer type, or zero for other kinds.
func (t Ty) IntWidth() IntWidth {
	if t.kind != Int {
		return 0
	}
	return IntWidth(t.width)
}

// FloatWidth returns the width of a floating-point type, or zero for other kinds.
func (t Ty) FloatWidth() FloatWidth {
	if t.kind != Float {
		return 0
	}
	return FloatWidth(t.width)
}

// Var returns the type-variable of an Infer type.
func (t Ty) Var() (InferVarId, bool) { return InferVarId(t.handle), t.kind == Infer }

// Fun returns the compound id of a function type.
func (t Ty) Fun() (FunId, bool) { return FunId(t.handle), t.kind == Fun }

// Array returns the compound id of an array type.
func (t Ty) Array() (ArrayId, bool) { return ArrayId(t.handle), t.kind == Array }

// Ref returns the compound id of a reference type.
func (t Ty) Ref() (RefId, bool) { return RefId(t.handle), t.kind == Ref }

// StructName returns the symbol naming a struct placeholder.
func (t Ty) StructName() (symbol.Symbol, bool) { return symbol.Symbol(t.handle), t.kind == Struct }

func (t Ty) IsInfer() bool { return t.kind == Infer }

func (t Ty) IsError() bool { return t.kind == Error }

// IsNumeric reports whether t is an integer or floating-point type.
func (t Ty) IsNumeric() bool { return t.kind == Int || t.kind == Float }

// IsCompound reports whether t refers to an entry in the compound table.
func (t Ty) IsCompound() bool { return t.kind == Fun || t.kind == Array || t.kind == Ref }

// Scheme is a let-polymorphic type: the quantified type-variables of Ty may be
// replaced with fresh type-variables at each use.
type Scheme struct {
	Quantified []InferVarId
	Ty         TyId
}

// Monomorphic indicates whether the scheme quantifies no type-variables.
func (s Scheme) Monomorphic() bool { return len(s.Quantified) == 0 }
