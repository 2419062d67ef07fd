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
	set "github.com/hashicorp/go-set/v2"

	"github.com/wdamron/tyck/types"
)

// Generalize quantifies the unbound type-variables of t which were allocated at a level
// deeper than the current level. Quantified variables are listed in order of first
// appearance. Type-variables of numeric literals are never quantified. Generalization
// only creates a scheme; t is not modified.
func (c *Checker) Generalize(t types.TyId) types.Scheme {
	free := c.FreeVars(t)
	quantified := free[:0]
	for _, v := range free {
		if c.VarLevel(v) > c.level && !c.literals.Contains(v) {
			quantified = append(quantified, v)
		}
	}
	if len(quantified) == 0 {
		quantified = nil
	}
	return types.Scheme{Quantified: quantified, Ty: t}
}

// FreeVars returns the unbound type-variables within t, without duplicates, in order of
// first appearance.
func (c *Checker) FreeVars(t types.TyId) []types.InferVarId {
	fv := freeVars{seen: set.New[types.InferVarId](0)}
	fv.collect(c, t)
	return fv.order
}

type freeVars struct {
	seen  *set.Set[types.InferVarId]
	order []types.InferVarId
}

func (fv *freeVars) collect(c *Checker, t types.TyId) {
	ty := c.Kind(t)
	switch ty.Kind() {
	case types.Infer:
		v, _ := ty.Var()
		if fv.seen.Insert(v) {
			fv.order = append(fv.order, v)
		}
	case types.Fun:
		fid, _ := ty.Fun()
		fn, _ := c.universe.Compound.Fun(fid)
		for _, p := range fn.Params {
			fv.collect(c, p)
		}
		fv.collect(c, fn.Return)
	case types.Array:
		aid, _ := ty.Array()
		a, _ := c.universe.Compound.Array(aid)
		fv.collect(c, a.Elem)
	case types.Ref:
		rid, _ := ty.Ref()
		r, _ := c.universe.Compound.Ref(rid)
		fv.collect(c, r.Inner)
	}
}
