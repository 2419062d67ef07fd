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

package tyck

import (
	"strconv"

	"github.com/wdamron/tyck/ast"
	"github.com/wdamron/tyck/diag"
	"github.com/wdamron/tyck/symbol"
	"github.com/wdamron/tyck/types"
)

// Integer and floating-point literals are typed by a fresh type-variable, which is
// pinned to a concrete numeric type by later unification. Literal type-variables are
// never generalized, so every use of a let-bound literal constrains the same type.
func (c *Checker) InferIntLiteral() types.TyId   { return c.freshLiteralVar() }
func (c *Checker) InferFloatLiteral() types.TyId { return c.freshLiteralVar() }

func (c *Checker) InferBoolLiteral() types.TyId  { return c.builtin.bool }
func (c *Checker) InferCharLiteral() types.TyId  { return c.builtin.char }
func (c *Checker) InferStrLiteral() types.TyId   { return c.builtin.str }
func (c *Checker) InferBytesLiteral() types.TyId { return c.builtin.bytes }
func (c *Checker) InferUnitLiteral() types.TyId  { return c.builtin.unit }

// InferBinop returns the type of a binary operation over operands of type lhs and rhs.
//
// Arithmetic operands are unified and must be numeric. Comparison operands are unified
// and yield bool. Logical operands must be bool. Bitwise operands are unified and must
// be integers. An operand type which is still an unbound type-variable satisfies the
// numeric and integer requirements.
func (c *Checker) InferBinop(op ast.BinOp, lhs, rhs types.TyId, span diag.Span) (types.TyId, bool) {
	switch {
	case op.Arithmetic():
		t, ok := c.Unify(lhs, rhs, span)
		if !ok {
			return 0, false
		}
		if k := c.Kind(t); !k.IsNumeric() && !k.IsInfer() {
			c.report(diag.TypeMismatch, span, "expected a numeric type for "+op.String()+", found "+c.TypeString(t))
			return 0, false
		}
		return c.Resolve(t), true

	case op.Comparison():
		if _, ok := c.Unify(lhs, rhs, span); !ok {
			return 0, false
		}
		return c.builtin.bool, true

	case op.Logical():
		if _, ok := c.Unify(c.builtin.bool, lhs, span); !ok {
			return 0, false
		}
		if _, ok := c.Unify(c.builtin.bool, rhs, span); !ok {
			return 0, false
		}
		return c.builtin.bool, true

	case op.Bitwise():
		t, ok := c.Unify(lhs, rhs, span)
		if !ok {
			return 0, false
		}
		if k := c.Kind(t); k.Kind() != types.Int && !k.IsInfer() {
			c.report(diag.TypeMismatch, span, "expected an integer type for "+op.String()+", found "+c.TypeString(t))
			return 0, false
		}
		return c.Resolve(t), true
	}
	panic("unknown binary operator: " + strconv.Itoa(int(op)))
}

// InferUnop returns the type of a unary operation over an operand of type x.
func (c *Checker) InferUnop(op ast.UnOp, x types.TyId, span diag.Span) (types.TyId, bool) {
	switch op {
	case ast.Neg:
		if k := c.Kind(x); !k.IsNumeric() && !k.IsInfer() {
			c.report(diag.TypeMismatch, span, "expected a numeric type for -, found "+c.TypeString(x))
			return 0, false
		}
		return x, true
	case ast.Not:
		if _, ok := c.Unify(c.builtin.bool, x, span); !ok {
			return 0, false
		}
		return c.builtin.bool, true
	case ast.BitNot:
		if k := c.Kind(x); k.Kind() != types.Int && !k.IsInfer() {
			c.report(diag.TypeMismatch, span, "expected an integer type for ~, found "+c.TypeString(x))
			return 0, false
		}
		return x, true
	}
	panic("unknown unary operator: " + strconv.Itoa(int(op)))
}

// InferVar returns the type of a variable reference. Polymorphic bindings are checked
// first and instantiated at each use, followed by monomorphic bindings.
func (c *Checker) InferVar(name symbol.Symbol, span diag.Span) (types.TyId, bool) {
	if t, ok := c.LookupPoly(name); ok {
		return t, true
	}
	if t, ok := c.LookupVar(name); ok {
		return t, true
	}
	c.report(diag.UndefinedVariable, span, "undefined variable `"+c.symbolName(name)+"`")
	return 0, false
}

// HandleTyAnnotation checks an inferred type against an annotated type.
func (c *Checker) HandleTyAnnotation(annotated, inferred types.TyId, span diag.Span) (types.TyId, bool) {
	return c.Unify(annotated, inferred, span)
}

var builtinTypeNames = map[string]types.Ty{
	"s8":       types.IntTy(true, types.W8),
	"s16":      types.IntTy(true, types.W16),
	"s32":      types.IntTy(true, types.W32),
	"int":      types.IntTy(true, types.W32),
	"s64":      types.IntTy(true, types.W64),
	"u8":       types.IntTy(false, types.W8),
	"u16":      types.IntTy(false, types.W16),
	"u32":      types.IntTy(false, types.W32),
	"uint":     types.IntTy(false, types.W32),
	"u64":      types.IntTy(false, types.W64),
	"f32":      types.FloatTy(types.F32),
	"float":    types.FloatTy(types.F32),
	"f64":      types.FloatTy(types.F64),
	"bool":     types.BoolTy,
	"char":     types.CharTy,
	"str":      types.StrTy,
	"unit":     types.UnitTy,
	"()":       types.UnitTy,
	"bytes":    types.BytesTy,
	"type":     types.TypeTy,
	"template": types.TemplateTy,
}

// ResolveTySymbol returns the type named by sym. Builtin type names are matched by
// their text; any other name is resolved with ResolveTyName.
func (c *Checker) ResolveTySymbol(sym symbol.Symbol, names symbol.Interner) types.TyId {
	if names != nil {
		if t, ok := builtinTypeNames[names.Get(sym)]; ok {
			return c.universe.Intern(t)
		}
	}
	return c.ResolveTyName(sym)
}

// ResolveTyName returns the type bound to an alias named sym. Unknown names are nominal
// struct placeholders, or the error type when StrictTypeNames is set.
func (c *Checker) ResolveTyName(sym symbol.Symbol) types.TyId {
	if t, ok := c.LookupTyAlias(sym); ok {
		return t
	}
	if c.opts.StrictTypeNames {
		return c.builtin.err
	}
	return c.universe.Intern(types.StructTy(sym))
}

func (c *Checker) symbolName(sym symbol.Symbol) string {
	if c.opts.Names != nil {
		if s := c.opts.Names.Get(sym); s != "" {
			return s
		}
	}
	return "$" + strconv.Itoa(int(sym))
}
