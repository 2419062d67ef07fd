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
	"github.com/wdamron/tyck/types"
)

// Instantiate replaces the quantified type-variables of s with fresh type-variables
// allocated at the current level. Monomorphic schemes return their type unchanged.
func (c *Checker) Instantiate(s types.Scheme) types.TyId {
	if len(s.Quantified) == 0 {
		return s.Ty
	}
	fresh := make(map[types.InferVarId]types.TyId, len(s.Quantified))
	for _, v := range s.Quantified {
		fresh[v] = c.FreshVar()
	}
	return c.substitute(s.Ty, fresh)
}

func (c *Checker) substitute(t types.TyId, fresh map[types.InferVarId]types.TyId) types.TyId {
	t = c.Resolve(t)
	ty := c.universe.Lookup(t)
	switch ty.Kind() {
	case types.Infer:
		v, _ := ty.Var()
		if f, ok := fresh[v]; ok {
			return f
		}
		return t
	case types.Fun:
		fid, _ := ty.Fun()
		fn, _ := c.universe.Compound.Fun(fid)
		for i, p := range fn.Params {
			fn.Params[i] = c.substitute(p, fresh)
		}
		return c.universe.Fun(fn.Params, c.substitute(fn.Return, fresh))
	case types.Array:
		aid, _ := ty.Array()
		a, _ := c.universe.Compound.Array(aid)
		elem := c.substitute(a.Elem, fresh)
		if !a.Sized {
			return c.universe.Slice(elem)
		}
		return c.universe.Array(elem, a.Size)
	case types.Ref:
		rid, _ := ty.Ref()
		r, _ := c.universe.Compound.Ref(rid)
		return c.universe.Ref(r.Mut, c.substitute(r.Inner, fresh))
	}
	return t
}
