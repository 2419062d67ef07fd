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
	"encoding/binary"
	"hash/fnv"
)

// Function type: `fn(s32, s32) -> s32`
type FunctionTy struct {
	Params []TyId
	Return TyId
}

// Array type: `s32[4]` (sized) or `s32[]` (unsized)
type ArrayTy struct {
	Elem TyId
	// Size is only meaningful when Sized is set.
	Size  uint32
	Sized bool
}

// Reference type: `&T` or `&mut T`
type RefTy struct {
	Mut   bool
	Inner TyId
}

// funEntry locates the parameters of a function type within the shared pool.
type funEntry struct {
	start, count uint32
	ret          TyId
}

// Compound stores the descriptors of function, array, and reference types, which
// are too large to inline into a Ty. Each descriptor is interned by structural
// equality of its handles: two descriptors over different (even if later unified)
// type-variables are distinct entries.
//
// A compound table cannot be used concurrently.
type Compound struct {
	funs    []funEntry
	params  []TyId
	funKeys map[uint64][]FunId

	arrays   []ArrayTy
	arrayIds map[ArrayTy]ArrayId

	refs   []RefTy
	refIds map[RefTy]RefId
}

// Create an empty compound table.
func NewCompound() *Compound {
	return &Compound{
		funs:     make([]funEntry, 0, 32),
		params:   make([]TyId, 0, 128),
		funKeys:  make(map[uint64][]FunId, 32),
		arrays:   make([]ArrayTy, 0, 16),
		arrayIds: make(map[ArrayTy]ArrayId, 16),
		refs:     make([]RefTy, 0, 16),
		refIds:   make(map[RefTy]RefId, 16),
	}
}

func funHash(params []TyId, ret TyId) uint64 {
	h := fnv.New64a()
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(len(params)))
	h.Write(buf[:])
	for _, p := range params {
		binary.LittleEndian.PutUint32(buf[:], uint32(p))
		h.Write(buf[:])
	}
	binary.LittleEndian.PutUint32(buf[:], uint32(ret))
	h.Write(buf[:])
	return h.Sum64()
}

func (c *Compound) funMatches(id FunId, params []TyId, ret TyId) bool {
	e := c.funs[id]
	if e.ret != ret || int(e.count) != len(params) {
		return false
	}
	for i, p := range c.params[e.start : e.start+e.count] {
		if p != params[i] {
			return false
		}
	}
	return true
}

// InternFun returns the id of the function type with the given parameters and return type.
// The params slice is copied.
func (c *Compound) InternFun(params []TyId, ret TyId) FunId {
	key := funHash(params, ret)
	for _, id := range c.funKeys[key] {
		if c.funMatches(id, params, ret) {
			return id
		}
	}
	id := FunId(len(c.funs))
	c.funs = append(c.funs, funEntry{start: uint32(len(c.params)), count: uint32(len(params)), ret: ret})
	c.params = append(c.params, params...)
	c.funKeys[key] = append(c.funKeys[key], id)
	return id
}

// InternArray returns the id of the array type with the given element type and size.
func (c *Compound) InternArray(elem TyId, size uint32, sized bool) ArrayId {
	if !sized {
		size = 0
	}
	a := ArrayTy{Elem: elem, Size: size, Sized: sized}
	if id, ok := c.arrayIds[a]; ok {
		return id
	}
	id := ArrayId(len(c.arrays))
	c.arrays = append(c.arrays, a)
	c.arrayIds[a] = id
	return id
}

// InternRef returns the id of the reference type with the given mutability and inner type.
func (c *Compound) InternRef(mut bool, inner TyId) RefId {
	r := RefTy{Mut: mut, Inner: inner}
	if id, ok := c.refIds[r]; ok {
		return id
	}
	id := RefId(len(c.refs))
	c.refs = append(c.refs, r)
	c.refIds[r] = id
	return id
}

// Fun returns the descriptor of a function type. The returned Params slice is a copy.
func (c *Compound) Fun(id FunId) (FunctionTy, bool) {
	if int(id) >= len(c.funs) {
		return FunctionTy{}, false
	}
	e := c.funs[id]
	params := make([]TyId, e.count)
	copy(params, c.params[e.start:e.start+e.count])
	return FunctionTy{Params: params, Return: e.ret}, true
}

// Arity returns the number of parameters of a function type.
func (c *Compound) Arity(id FunId) int {
	if int(id) >= len(c.funs) {
		return 0
	}
	return int(c.funs[id].count)
}

// Array returns the descriptor of an array type.
func (c *Compound) Array(id ArrayId) (ArrayTy, bool) {
	if int(id) >= len(c.arrays) {
		return ArrayTy{}, false
	}
	return c.arrays[id], true
}

// Ref returns the descriptor of a reference type.
func (c *Compound) Ref(id RefId) (RefTy, bool) {
	if int(id) >= len(c.refs) {
		return RefTy{}, false
	}
	return c.refs[id], true
}

// Counts of interned function, array, and reference descriptors.
func (c *Compound) Len() (funs, arrays, refs int) { return len(c.funs), len(c.arrays), len(c.refs) }
