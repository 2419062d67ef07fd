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
	"github.com/benbjohnson/immutable"
	set "github.com/hashicorp/go-set/v2"

	"github.com/wdamron/tyck/diag"
	"github.com/wdamron/tyck/symbol"
	"github.com/wdamron/tyck/types"
)

// Options configure a Checker.
type Options struct {
	// Reporter receives every error found by the checker. If nil, errors are collected
	// by a diag.Collector which is available through Checker.Collector.
	Reporter diag.Reporter
	// Names resolves the symbols of type names, variables, and struct placeholders.
	// Without Names, builtin type names cannot be recognized.
	Names symbol.Interner
	// ScopedPoly makes polymorphic bindings obey lexical scoping: they are discarded when
	// the scope which declared them is popped, and a monomorphic binding shadows a
	// polymorphic binding with the same name. By default polymorphic bindings remain
	// visible once declared, and take precedence over monomorphic bindings.
	ScopedPoly bool
	// StrictTypeNames reports UndefinedType for unknown type names instead of treating
	// them as nominal struct placeholders.
	StrictTypeNames bool
	// DefaultLiterals binds the type-variables of integer and floating-point literals
	// which remain unconstrained after checking to s32 and f32.
	DefaultLiterals bool
}

// Checker holds the state of a single checking pass.
//
// A checker cannot be used concurrently.
type Checker struct {
	universe *types.Universe
	opts     Options

	reporter  diag.Reporter
	collector *diag.Collector
	reported  int
	errs      []diag.Error

	// Substitution store: bound type-variables map to the type they were unified with.
	subst   map[types.InferVarId]types.TyId
	levels  []uint32
	nextVar types.InferVarId

	// Type-variables of numeric literals, and the variables they were bound to. These are
	// never quantified.
	literals *set.Set[types.InferVarId]

	level   uint32
	vars    *immutable.Map
	aliases *immutable.Map
	polys   *immutable.Map
	scopes  []scope

	builtin struct {
		err, unit, bool, char, str, bytes, typ, template types.TyId
		s32, u32, f32, f64                               types.TyId
	}
}

// Create a checker with the default options.
func New() *Checker { return NewWithOptions(Options{}) }

// Create a checker with the given options.
func NewWithOptions(opts Options) *Checker {
	c := &Checker{
		universe: types.NewUniverse(),
		opts:     opts,
		reporter: opts.Reporter,
		subst:    make(map[types.InferVarId]types.TyId, 64),
		levels:   make([]uint32, 0, 64),
		literals: set.New[types.InferVarId](16),
		vars:     immutable.NewMap(symbolHasher{}),
		aliases:  immutable.NewMap(symbolHasher{}),
		polys:    immutable.NewMap(symbolHasher{}),
		scopes:   make([]scope, 0, 16),
	}
	if c.reporter == nil {
		c.collector = diag.NewCollector()
		c.reporter = c.collector
	}
	u, b := c.universe, &c.builtin
	b.err = u.Intern(types.ErrorTy)
	b.unit = u.Intern(types.UnitTy)
	b.bool = u.Intern(types.BoolTy)
	b.char = u.Intern(types.CharTy)
	b.str = u.Intern(types.StrTy)
	b.bytes = u.Intern(types.BytesTy)
	b.typ = u.Intern(types.TypeTy)
	b.template = u.Intern(types.TemplateTy)
	b.s32 = u.Intern(types.IntTy(true, types.W32))
	b.u32 = u.Intern(types.IntTy(false, types.W32))
	b.f32 = u.Intern(types.FloatTy(types.F32))
	b.f64 = u.Intern(types.FloatTy(types.F64))
	return c
}

// Universe returns the type universe owned by the checker.
func (c *Checker) Universe() *types.Universe { return c.universe }

// Collector returns the collector which receives errors when no reporter was configured.
func (c *Checker) Collector() *diag.Collector { return c.collector }

// ErrorCount returns the number of errors reported by the checker, including any
// dropped by the reporter.
func (c *Checker) ErrorCount() int { return c.reported }

func (c *Checker) report(kind diag.ErrorKind, span diag.Span, msg string) {
	err := diag.Error{Kind: kind, Span: span, Message: msg}
	c.reported++
	if len(c.errs) < diag.MaxErrors {
		c.errs = append(c.errs, err)
	}
	c.reporter.Add(err)
}

func (c *Checker) mismatch(expected, found types.TyId, span diag.Span) {
	c.report(diag.TypeMismatch, span, "expected "+c.TypeString(expected)+", found "+c.TypeString(found))
}

// FreshVar allocates a type-variable at the current level and returns its type.
func (c *Checker) FreshVar() types.TyId {
	v := c.nextVar
	c.nextVar++
	c.levels = append(c.levels, c.level)
	return c.universe.Intern(types.InferTy(v))
}

// freshLiteralVar allocates a type-variable for a numeric literal.
func (c *Checker) freshLiteralVar() types.TyId {
	t := c.FreshVar()
	v, _ := c.universe.Lookup(t).Var()
	c.literals.Insert(v)
	return t
}

// IsLiteralVar indicates whether v stands for the type of a numeric literal, either
// directly or because a literal's type-variable was bound to it.
func (c *Checker) IsLiteralVar(v types.InferVarId) bool { return c.literals.Contains(v) }

// VarLevel returns the level at which a type-variable was allocated, lowered by any
// unification with types from an outer scope.
func (c *Checker) VarLevel(v types.InferVarId) uint32 {
	if int(v) >= len(c.levels) {
		return 0
	}
	return c.levels[v]
}

// The builtin types are interned once per checker; each accessor returns the same TyId for the
// lifetime of the checker.
func (c *Checker) UnitType() types.TyId     { return c.builtin.unit }
func (c *Checker) BoolType() types.TyId     { return c.builtin.bool }
func (c *Checker) CharType() types.TyId     { return c.builtin.char }
func (c *Checker) StrType() types.TyId      { return c.builtin.str }
func (c *Checker) BytesType() types.TyId    { return c.builtin.bytes }
func (c *Checker) TypeType() types.TyId     { return c.builtin.typ }
func (c *Checker) TemplateType() types.TyId { return c.builtin.template }
func (c *Checker) ErrorType() types.TyId    { return c.builtin.err }
func (c *Checker) S32Type() types.TyId      { return c.builtin.s32 }
func (c *Checker) U32Type() types.TyId      { return c.builtin.u32 }
func (c *Checker) F32Type() types.TyId      { return c.builtin.f32 }
func (c *Checker) F64Type() types.TyId      { return c.builtin.f64 }

// IntType interns an integer type with the given signedness and width.
func (c *Checker) IntType(signed bool, width types.IntWidth) types.TyId {
	return c.universe.Intern(types.IntTy(signed, width))
}

// FloatType interns a floating-point type with the given width.
func (c *Checker) FloatType(width types.FloatWidth) types.TyId {
	return c.universe.Intern(types.FloatTy(width))
}

// InternTy interns a type descriptor.
func (c *Checker) InternTy(t types.Ty) types.TyId { return c.universe.Intern(t) }

// Kind returns the descriptor of the representative of id.
func (c *Checker) Kind(id types.TyId) types.Ty { return c.universe.Lookup(c.Resolve(id)) }

// ResolveTy returns the descriptor of id after applying every substitution, including
// those within compound types.
func (c *Checker) ResolveTy(id types.TyId) types.Ty { return c.universe.Lookup(c.Zonk(id)) }

// Zonk applies every substitution to id, rebuilding compound types whose components
// have been resolved.
func (c *Checker) Zonk(id types.TyId) types.TyId {
	id = c.Resolve(id)
	t := c.universe.Lookup(id)
	switch t.Kind() {
	case types.Fun:
		fid, _ := t.Fun()
		fn, _ := c.universe.Compound.Fun(fid)
		for i, p := range fn.Params {
			fn.Params[i] = c.Zonk(p)
		}
		return c.universe.Fun(fn.Params, c.Zonk(fn.Return))
	case types.Array:
		aid, _ := t.Array()
		a, _ := c.universe.Compound.Array(aid)
		if !a.Sized {
			return c.universe.Slice(c.Zonk(a.Elem))
		}
		return c.universe.Array(c.Zonk(a.Elem), a.Size)
	case types.Ref:
		rid, _ := t.Ref()
		r, _ := c.universe.Compound.Ref(rid)
		return c.universe.Ref(r.Mut, c.Zonk(r.Inner))
	}
	return id
}

// TypeString returns a string representation of id with every substitution applied.
func (c *Checker) TypeString(id types.TyId) string {
	p := types.Printer{Universe: c.universe, Names: c.opts.Names, Resolve: c.Resolve}
	return p.TypeString(id)
}

// SchemeString returns a string representation of a scheme.
func (c *Checker) SchemeString(s types.Scheme) string {
	p := types.Printer{Universe: c.universe, Names: c.opts.Names, Resolve: c.Resolve}
	return p.SchemeString(s)
}
