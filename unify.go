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

	"github.com/wdamron/tyck/diag"
	"github.com/wdamron/tyck/types"
)

// Resolve follows the substitution chain starting at id and returns its representative:
// either a concrete type or an unbound type-variable. Every type-variable visited along
// the chain is re-pointed directly at the representative.
func (c *Checker) Resolve(id types.TyId) types.TyId {
	v, ok := c.universe.Lookup(id).Var()
	if !ok {
		return id
	}
	next, bound := c.subst[v]
	if !bound {
		return id
	}
	root := c.Resolve(next)
	if root != next {
		c.subst[v] = root
	}
	return root
}

// Unify makes t1 and t2 equal, binding type-variables as needed. The representative of
// t1 is returned on success. On failure, exactly one error is reported at span and false
// is returned; bindings made before the failure are kept.
//
// When both operands are unbound type-variables, the variable of t1 is bound to t2.
func (c *Checker) Unify(t1, t2 types.TyId, span diag.Span) (types.TyId, bool) {
	r1, r2 := c.Resolve(t1), c.Resolve(t2)
	if r1 == r2 {
		return r1, true
	}
	ty1, ty2 := c.universe.Lookup(r1), c.universe.Lookup(r2)
	if v, ok := ty1.Var(); ok {
		return c.bindVar(v, r2, span)
	}
	if v, ok := ty2.Var(); ok {
		return c.bindVar(v, r1, span)
	}

	switch {
	case ty1.Kind() == types.Fun && ty2.Kind() == types.Fun:
		fid1, _ := ty1.Fun()
		fid2, _ := ty2.Fun()
		f1, _ := c.universe.Compound.Fun(fid1)
		f2, _ := c.universe.Compound.Fun(fid2)
		if len(f1.Params) != len(f2.Params) {
			c.report(diag.ArgumentCountMismatch, span,
				"expected "+strconv.Itoa(len(f1.Params))+" arguments, found "+strconv.Itoa(len(f2.Params)))
			return 0, false
		}
		for i := range f1.Params {
			if _, ok := c.Unify(f1.Params[i], f2.Params[i], span); !ok {
				return 0, false
			}
		}
		if _, ok := c.Unify(f1.Return, f2.Return, span); !ok {
			return 0, false
		}
		return c.Resolve(r1), true

	case ty1.Kind() == types.Array && ty2.Kind() == types.Array:
		aid1, _ := ty1.Array()
		aid2, _ := ty2.Array()
		a1, _ := c.universe.Compound.Array(aid1)
		a2, _ := c.universe.Compound.Array(aid2)
		if _, ok := c.Unify(a1.Elem, a2.Elem, span); !ok {
			return 0, false
		}
		if a1.Sized != a2.Sized || a1.Size != a2.Size {
			c.report(diag.ArraySizeMismatch, span,
				"expected array of length "+sizeString(a1)+", found length "+sizeString(a2))
			return 0, false
		}
		return c.Resolve(r1), true

	case ty1.Kind() == types.Ref && ty2.Kind() == types.Ref:
		rid1, _ := ty1.Ref()
		rid2, _ := ty2.Ref()
		ref1, _ := c.universe.Compound.Ref(rid1)
		ref2, _ := c.universe.Compound.Ref(rid2)
		if ref1.Mut != ref2.Mut {
			c.mismatch(r1, r2, span)
			return 0, false
		}
		if _, ok := c.Unify(ref1.Inner, ref2.Inner, span); !ok {
			return 0, false
		}
		return c.Resolve(r1), true
	}

	if primitiveEqual(ty1, ty2) {
		return r1, true
	}
	c.mismatch(r1, r2, span)
	return 0, false
}

func sizeString(a types.ArrayTy) string {
	if !a.Sized {
		return "unknown"
	}
	return strconv.FormatUint(uint64(a.Size), 10)
}

func primitiveEqual(a, b types.Ty) bool {
	switch a.Kind() {
	case types.Int:
		return b.Kind() == types.Int && a.Signed() == b.Signed() && a.IntWidth() == b.IntWidth()
	case types.Float:
		return b.Kind() == types.Float && a.FloatWidth() == b.FloatWidth()
	case types.Struct:
		an, _ := a.StructName()
		bn, ok := b.StructName()
		return ok && an == bn
	case types.Unit, types.Bool, types.Char, types.Str, types.Bytes, types.Type, types.Template:
		return a.Kind() == b.Kind()
	}
	return false
}

func (c *Checker) bindVar(v types.InferVarId, t types.TyId, span diag.Span) (types.TyId, bool) {
	if c.occursAdjustLevels(v, c.VarLevel(v), t) {
		c.report(diag.InfiniteType, span,
			"type-variable "+c.TypeString(c.universe.Intern(types.InferTy(v)))+" occurs in "+c.TypeString(t))
		return 0, false
	}
	c.subst[v] = t
	if c.literals.Contains(v) {
		if w, ok := c.Kind(t).Var(); ok {
			c.literals.Insert(w)
		}
	}
	return t, true
}

// Occurs reports whether the unbound type-variable v appears within t.
func (c *Checker) Occurs(v types.InferVarId, t types.TyId) bool {
	return c.occursAdjustLevels(v, ^uint32(0), t)
}

// occursAdjustLevels reports whether v appears within t. Unbound type-variables within t
// which were allocated at a level deeper than level are lowered to level, so they are not
// generalized while v remains reachable from an outer scope.
func (c *Checker) occursAdjustLevels(v types.InferVarId, level uint32, t types.TyId) bool {
	t = c.Resolve(t)
	ty := c.universe.Lookup(t)
	switch ty.Kind() {
	case types.Infer:
		w, _ := ty.Var()
		if w == v {
			return true
		}
		if int(w) < len(c.levels) && c.levels[w] > level {
			c.levels[w] = level
		}
		return false
	case types.Fun:
		fid, _ := ty.Fun()
		fn, _ := c.universe.Compound.Fun(fid)
		for _, p := range fn.Params {
			if c.occursAdjustLevels(v, level, p) {
				return true
			}
		}
		return c.occursAdjustLevels(v, level, fn.Return)
	case types.Array:
		aid, _ := ty.Array()
		a, _ := c.universe.Compound.Array(aid)
		return c.occursAdjustLevels(v, level, a.Elem)
	case types.Ref:
		rid, _ := ty.Ref()
		r, _ := c.universe.Compound.Ref(rid)
		return c.occursAdjustLevels(v, level, r.Inner)
	}
	return false
}
