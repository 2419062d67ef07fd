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

// Universe is the interned table of all types created during a checking pass. Every
// concrete descriptor is stored once; type-variables are stored once per allocation.
// Rows are never freed.
//
// A universe cannot be used concurrently.
type Universe struct {
	tys   []Ty
	index map[Ty]TyId
	// Compound holds the descriptors referenced by Fun, Array, and Ref types.
	Compound *Compound
}

// Create an empty universe.
func NewUniverse() *Universe {
	return &Universe{
		tys:      make([]Ty, 0, 1024),
		index:    make(map[Ty]TyId, 256),
		Compound: NewCompound(),
	}
}

// Intern returns the canonical id of t. Type-variables are never deduplicated: each
// call with an Infer descriptor allocates a new row.
func (u *Universe) Intern(t Ty) TyId {
	if t.kind == Infer {
		return u.push(t)
	}
	if id, ok := u.index[t]; ok {
		return id
	}
	id := u.push(t)
	u.index[t] = id
	return id
}

func (u *Universe) push(t Ty) TyId {
	id := TyId(len(u.tys))
	u.tys = append(u.tys, t)
	return id
}

// Lookup returns the descriptor stored at id, or the error descriptor if id is out of range.
func (u *Universe) Lookup(id TyId) Ty {
	if int(id) >= len(u.tys) {
		return ErrorTy
	}
	return u.tys[id]
}

// Len returns the number of rows in the universe.
func (u *Universe) Len() int { return len(u.tys) }

// Fun interns a function type.
func (u *Universe) Fun(params []TyId, ret TyId) TyId {
	return u.Intern(FunTy(u.Compound.InternFun(params, ret)))
}

// Array interns a sized array type.
func (u *Universe) Array(elem TyId, size uint32) TyId {
	return u.Intern(ArrayTyOf(u.Compound.InternArray(elem, size, true)))
}

// Slice interns an array type of unknown size.
func (u *Universe) Slice(elem TyId) TyId {
	return u.Intern(ArrayTyOf(u.Compound.InternArray(elem, 0, false)))
}

// Ref interns a reference type.
func (u *Universe) Ref(mut bool, inner TyId) TyId {
	return u.Intern(RefTyOf(u.Compound.InternRef(mut, inner)))
}
