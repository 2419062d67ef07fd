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

	"github.com/wdamron/tyck/symbol"
	"github.com/wdamron/tyck/types"
)

// scope holds the environments which were visible before a scope was pushed.
type scope struct {
	vars, aliases, polys *immutable.Map
}

// envSnapshot captures the environments so bindings made afterward can be discarded
// without changing the level.
type envSnapshot scope

type symbolHasher struct{}

func (symbolHasher) Hash(key interface{}) uint32 {
	h := uint32(key.(symbol.Symbol))
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func (symbolHasher) Equal(a, b interface{}) bool { return a.(symbol.Symbol) == b.(symbol.Symbol) }

// Level returns the current scope depth. The outermost scope is level 0.
func (c *Checker) Level() uint32 { return c.level }

// PushScope enters a new scope. Type-variables allocated within the scope are
// generalized when a binding is made after the scope is popped.
func (c *Checker) PushScope() {
	c.scopes = append(c.scopes, scope{vars: c.vars, aliases: c.aliases, polys: c.polys})
	c.level++
}

// PopScope discards the bindings and aliases made since the matching PushScope.
// Popping the outermost scope does nothing.
func (c *Checker) PopScope() {
	if n := len(c.scopes); n > 0 {
		top := c.scopes[n-1]
		c.scopes = c.scopes[:n-1]
		c.vars, c.aliases = top.vars, top.aliases
		if c.opts.ScopedPoly {
			c.polys = top.polys
		}
	}
	if c.level > 0 {
		c.level--
	}
}

func (c *Checker) snapshot() envSnapshot {
	return envSnapshot{vars: c.vars, aliases: c.aliases, polys: c.polys}
}

func (c *Checker) restore(s envSnapshot) {
	c.vars, c.aliases = s.vars, s.aliases
	if c.opts.ScopedPoly {
		c.polys = s.polys
	}
}

// BindVar binds name to a monomorphic type in the current scope, shadowing any outer
// binding with the same name.
func (c *Checker) BindVar(name symbol.Symbol, t types.TyId) {
	c.vars = c.vars.Set(name, t)
	if c.opts.ScopedPoly {
		if _, ok := c.polys.Get(name); ok {
			c.polys = c.polys.Delete(name)
		}
	}
}

// LookupVar returns the monomorphic type bound to name in the innermost scope which binds it.
func (c *Checker) LookupVar(name symbol.Symbol) (types.TyId, bool) {
	t, ok := c.vars.Get(name)
	if !ok {
		return 0, false
	}
	return t.(types.TyId), true
}

// BindPoly binds name to a polymorphic scheme. Unless ScopedPoly is set, the binding
// is visible for the remainder of the checking pass.
func (c *Checker) BindPoly(name symbol.Symbol, s types.Scheme) {
	c.polys = c.polys.Set(name, s)
}

// Scheme returns the polymorphic scheme bound to name.
func (c *Checker) Scheme(name symbol.Symbol) (types.Scheme, bool) {
	s, ok := c.polys.Get(name)
	if !ok {
		return types.Scheme{}, false
	}
	return s.(types.Scheme), true
}

// LookupPoly returns a fresh instance of the scheme bound to name.
func (c *Checker) LookupPoly(name symbol.Symbol) (types.TyId, bool) {
	s, ok := c.Scheme(name)
	if !ok {
		return 0, false
	}
	return c.Instantiate(s), true
}

// DefineTyAlias binds a type name to t in the current scope.
func (c *Checker) DefineTyAlias(name symbol.Symbol, t types.TyId) {
	c.aliases = c.aliases.Set(name, t)
}

// LookupTyAlias returns the type bound to a type name.
func (c *Checker) LookupTyAlias(name symbol.Symbol) (types.TyId, bool) {
	t, ok := c.aliases.Get(name)
	if !ok {
		return 0, false
	}
	return t.(types.TyId), true
}
