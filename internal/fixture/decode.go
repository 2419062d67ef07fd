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

package fixture

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/tyck/ast"
	"github.com/wdamron/tyck/construct"
)

type decoder struct {
	names construct.Names
}

func (d *decoder) errorf(n *yaml.Node, format string, args ...interface{}) error {
	return fmt.Errorf("line %d, column %d: %s", n.Line, n.Column, fmt.Sprintf(format, args...))
}

// fields returns the values of a mapping by key, along with its first key.
func (d *decoder) fields(n *yaml.Node) (map[string]*yaml.Node, string, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) == 0 {
		return nil, "", d.errorf(n, "expected a non-empty mapping")
	}
	f := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		f[n.Content[i].Value] = n.Content[i+1]
	}
	return f, n.Content[0].Value, nil
}

func (d *decoder) require(n *yaml.Node, f map[string]*yaml.Node, key string) (*yaml.Node, error) {
	v, ok := f[key]
	if !ok {
		return nil, d.errorf(n, "missing %q", key)
	}
	return v, nil
}

func (d *decoder) exprs(n *yaml.Node) ([]ast.Expr, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "expected a sequence of expressions")
	}
	exprs := make([]ast.Expr, len(n.Content))
	for i, sub := range n.Content {
		e, err := d.expr(sub)
		if err != nil {
			return nil, err
		}
		exprs[i] = e
	}
	return exprs, nil
}

func (d *decoder) scalar(n *yaml.Node) (ast.Expr, error) {
	switch n.ShortTag() {
	case "!!int":
		return construct.Int(n.Value), nil
	case "!!float":
		return construct.Float(n.Value), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, d.errorf(n, "%v", err)
		}
		return construct.Bool(b), nil
	case "!!null":
		return construct.Unit(), nil
	case "!!str":
		return d.names.Var(n.Value), nil
	}
	return nil, d.errorf(n, "unexpected scalar %q", n.Value)
}

func (d *decoder) expr(n *yaml.Node) (ast.Expr, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return d.scalar(n)
	case yaml.SequenceNode:
		exprs, err := d.exprs(n)
		if err != nil {
			return nil, err
		}
		return construct.Block(exprs...), nil
	case yaml.AliasNode:
		return d.expr(n.Alias)
	}

	f, kind, err := d.fields(n)
	if err != nil {
		return nil, err
	}
	e, err := d.compound(n, f, kind)
	if err != nil {
		return nil, err
	}
	if sp, ok := f["span"]; ok {
		var span [2]uint32
		if err := sp.Decode(&span); err != nil {
			return nil, d.errorf(sp, "span must be [start, length]: %v", err)
		}
		e = construct.Spanned(span[0], uint16(span[1]), e)
	}
	return e, nil
}

func (d *decoder) compound(n *yaml.Node, f map[string]*yaml.Node, kind string) (ast.Expr, error) {
	sub := func(key string) (ast.Expr, error) {
		v, err := d.require(n, f, key)
		if err != nil {
			return nil, err
		}
		return d.expr(v)
	}

	switch kind {
	case "int":
		return construct.Int(f[kind].Value), nil
	case "float":
		return construct.Float(f[kind].Value), nil
	case "bool":
		return d.scalar(f[kind])
	case "char":
		return construct.Char("'" + f[kind].Value + "'"), nil
	case "str":
		return construct.Str(fmt.Sprintf("%q", f[kind].Value)), nil
	case "bytes":
		return construct.Bytes(fmt.Sprintf("b%q", f[kind].Value)), nil
	case "unit":
		return construct.Unit(), nil
	case "var":
		return d.names.Var(f[kind].Value), nil

	case "unary":
		op, ok := ast.ParseUnOp(f[kind].Value)
		if !ok {
			return nil, d.errorf(f[kind], "unknown unary operator %q", f[kind].Value)
		}
		x, err := sub("x")
		if err != nil {
			return nil, err
		}
		return construct.Unary(op, x), nil

	case "binary":
		op, ok := ast.ParseBinOp(f[kind].Value)
		if !ok {
			return nil, d.errorf(f[kind], "unknown binary operator %q", f[kind].Value)
		}
		x, err := sub("x")
		if err != nil {
			return nil, err
		}
		y, err := sub("y")
		if err != nil {
			return nil, err
		}
		return construct.Binary(op, x, y), nil

	case "annot":
		x, err := sub(kind)
		if err != nil {
			return nil, err
		}
		t, err := d.requireType(n, f, "type")
		if err != nil {
			return nil, err
		}
		return construct.Annot(x, t), nil

	case "let":
		value, err := sub("value")
		if err != nil {
			return nil, err
		}
		body, err := sub("in")
		if err != nil {
			return nil, err
		}
		if tn, ok := f["type"]; ok {
			t, err := d.typeExpr(tn)
			if err != nil {
				return nil, err
			}
			return d.names.LetAnnot(f[kind].Value, t, value, body), nil
		}
		return d.names.Let(f[kind].Value, value, body), nil

	case "letrec":
		group := f[kind]
		if group.Kind != yaml.SequenceNode {
			return nil, d.errorf(group, "expected a sequence of bindings")
		}
		bindings := make([]ast.LetBinding, len(group.Content))
		for i, bn := range group.Content {
			bf, _, err := d.fields(bn)
			if err != nil {
				return nil, err
			}
			name, err := d.require(bn, bf, "name")
			if err != nil {
				return nil, err
			}
			vn, err := d.require(bn, bf, "value")
			if err != nil {
				return nil, err
			}
			value, err := d.expr(vn)
			if err != nil {
				return nil, err
			}
			bindings[i] = d.names.LetBinding(name.Value, value)
		}
		body, err := sub("in")
		if err != nil {
			return nil, err
		}
		return construct.LetGroup(bindings, body), nil

	case "fun":
		params, err := d.params(f[kind])
		if err != nil {
			return nil, err
		}
		body, err := sub("body")
		if err != nil {
			return nil, err
		}
		var ret ast.TypeExpr
		if rn, ok := f["ret"]; ok {
			if ret, err = d.typeExpr(rn); err != nil {
				return nil, err
			}
		}
		return construct.FuncTyped(params, ret, body), nil

	case "call":
		fn, err := sub(kind)
		if err != nil {
			return nil, err
		}
		var args []ast.Expr
		if an, ok := f["args"]; ok {
			if args, err = d.exprs(an); err != nil {
				return nil, err
			}
		}
		return construct.Call(fn, args...), nil

	case "if":
		cond, err := sub(kind)
		if err != nil {
			return nil, err
		}
		then, err := sub("then")
		if err != nil {
			return nil, err
		}
		var els ast.Expr
		if en, ok := f["else"]; ok {
			if els, err = d.expr(en); err != nil {
				return nil, err
			}
		}
		return construct.If(cond, then, els), nil

	case "array":
		elems, err := d.exprs(f[kind])
		if err != nil {
			return nil, err
		}
		return construct.Array(elems...), nil

	case "index":
		x, err := sub(kind)
		if err != nil {
			return nil, err
		}
		at, err := sub("at")
		if err != nil {
			return nil, err
		}
		return construct.Index(x, at), nil

	case "ref":
		x, err := sub(kind)
		if err != nil {
			return nil, err
		}
		if mut, ok := f["mut"]; ok && mut.Value == "true" {
			return construct.RefMut(x), nil
		}
		return construct.Ref(x), nil

	case "deref":
		x, err := sub(kind)
		if err != nil {
			return nil, err
		}
		return construct.Deref(x), nil

	case "block":
		exprs, err := d.exprs(f[kind])
		if err != nil {
			return nil, err
		}
		return construct.Block(exprs...), nil

	case "alias":
		t, err := d.requireType(n, f, "type")
		if err != nil {
			return nil, err
		}
		body, err := sub("in")
		if err != nil {
			return nil, err
		}
		return d.names.TypeAlias(f[kind].Value, t, body), nil
	}
	return nil, d.errorf(n, "unknown expression %q", kind)
}

// params decodes `[x, {name: y, type: s32}]`.
func (d *decoder) params(n *yaml.Node) ([]ast.Param, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "expected a sequence of parameters")
	}
	params := make([]ast.Param, len(n.Content))
	for i, pn := range n.Content {
		if pn.Kind == yaml.ScalarNode {
			params[i] = d.names.Param(pn.Value, nil)
			continue
		}
		pf, _, err := d.fields(pn)
		if err != nil {
			return nil, err
		}
		name, err := d.require(pn, pf, "name")
		if err != nil {
			return nil, err
		}
		var t ast.TypeExpr
		if tn, ok := pf["type"]; ok {
			if t, err = d.typeExpr(tn); err != nil {
				return nil, err
			}
		}
		params[i] = d.names.Param(name.Value, t)
	}
	return params, nil
}

func (d *decoder) requireType(n *yaml.Node, f map[string]*yaml.Node, key string) (ast.TypeExpr, error) {
	v, err := d.require(n, f, key)
	if err != nil {
		return nil, err
	}
	return d.typeExpr(v)
}

// typeExpr decodes `s32`, `_`, `{array: u8, size: 4}`, `{ref: str, mut: true}`, and
// `{fn: [s32, bool], ret: s32}`.
func (d *decoder) typeExpr(n *yaml.Node) (ast.TypeExpr, error) {
	if n.Kind == yaml.ScalarNode {
		if n.Value == "_" {
			return construct.THole(), nil
		}
		return d.names.TName(n.Value), nil
	}
	f, kind, err := d.fields(n)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "array":
		elem, err := d.typeExpr(f[kind])
		if err != nil {
			return nil, err
		}
		sn, ok := f["size"]
		if !ok {
			return construct.TSlice(elem), nil
		}
		var size uint32
		if err := sn.Decode(&size); err != nil {
			return nil, d.errorf(sn, "invalid array size: %v", err)
		}
		return construct.TArray(elem, size), nil

	case "ref":
		inner, err := d.typeExpr(f[kind])
		if err != nil {
			return nil, err
		}
		if mut, ok := f["mut"]; ok && mut.Value == "true" {
			return construct.TRefMut(inner), nil
		}
		return construct.TRef(inner), nil

	case "fn":
		pn := f[kind]
		if pn.Kind != yaml.SequenceNode {
			return nil, d.errorf(pn, "expected a sequence of parameter types")
		}
		params := make([]ast.TypeExpr, len(pn.Content))
		for i, p := range pn.Content {
			if params[i], err = d.typeExpr(p); err != nil {
				return nil, err
			}
		}
		ret := ast.TypeExpr(d.names.TName("()"))
		if rn, ok := f["ret"]; ok {
			if ret, err = d.typeExpr(rn); err != nil {
				return nil, err
			}
		}
		return construct.TFun(params, ret), nil
	}
	return nil, d.errorf(n, "unknown type %q", kind)
}
