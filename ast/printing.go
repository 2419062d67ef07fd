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

package ast

import (
	"strconv"
	"strings"

	"github.com/wdamron/tyck/symbol"
)

// ExprString returns a string representation of an expression. Names are resolved
// through names.
func ExprString(e Expr, names symbol.Interner) string {
	var sb strings.Builder
	p := exprPrinter{sb: &sb, names: names}
	p.expr(false, e)
	return sb.String()
}

// TypeExprString returns a string representation of a type expression.
func TypeExprString(t TypeExpr, names symbol.Interner) string {
	var sb strings.Builder
	p := exprPrinter{sb: &sb, names: names}
	p.typeExpr(t)
	return sb.String()
}

type exprPrinter struct {
	sb    *strings.Builder
	names symbol.Interner
}

func (p exprPrinter) name(sym symbol.Symbol) {
	if p.names == nil {
		p.sb.WriteByte('$')
		p.sb.WriteString(strconv.Itoa(int(sym)))
		return
	}
	p.sb.WriteString(p.names.Get(sym))
}

func (p exprPrinter) list(es []Expr) {
	for i, e := range es {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.expr(false, e)
	}
}

func (p exprPrinter) expr(simple bool, e Expr) {
	sb := p.sb
	switch e := e.(type) {
	case *Lit:
		sb.WriteString(e.Syntax)

	case *Var:
		p.name(e.Name)

	case *Unary:
		sb.WriteString(e.Op.String())
		p.expr(true, e.X)

	case *Binary:
		if simple {
			sb.WriteByte('(')
		}
		p.expr(true, e.X)
		sb.WriteByte(' ')
		sb.WriteString(e.Op.String())
		sb.WriteByte(' ')
		p.expr(true, e.Y)
		if simple {
			sb.WriteByte(')')
		}

	case *Annot:
		sb.WriteByte('(')
		p.expr(false, e.X)
		sb.WriteString(" : ")
		p.typeExpr(e.Type)
		sb.WriteByte(')')

	case *Let:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		p.name(e.Var)
		if e.Type != nil {
			sb.WriteString(" : ")
			p.typeExpr(e.Type)
		}
		sb.WriteString(" = ")
		p.expr(false, e.Value)
		sb.WriteString(" in ")
		p.expr(false, e.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *LetGroup:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		for i, v := range e.Vars {
			if i > 0 {
				sb.WriteString(" and ")
			}
			p.name(v.Var)
			sb.WriteString(" = ")
			p.expr(false, v.Value)
		}
		sb.WriteString(" in ")
		p.expr(false, e.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Func:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fun (")
		for i, param := range e.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			p.name(param.Name)
			if param.Type != nil {
				sb.WriteString(" : ")
				p.typeExpr(param.Type)
			}
		}
		sb.WriteByte(')')
		if e.Ret != nil {
			sb.WriteString(" : ")
			p.typeExpr(e.Ret)
		}
		sb.WriteString(" -> ")
		p.expr(false, e.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Call:
		p.expr(true, e.Func)
		sb.WriteByte('(')
		p.list(e.Args)
		sb.WriteByte(')')

	case *If:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("if ")
		p.expr(false, e.Cond)
		sb.WriteString(" then ")
		p.expr(false, e.Then)
		if e.Else != nil {
			sb.WriteString(" else ")
			p.expr(false, e.Else)
		}
		if simple {
			sb.WriteByte(')')
		}

	case *Array:
		sb.WriteByte('[')
		p.list(e.Elems)
		sb.WriteByte(']')

	case *Index:
		p.expr(true, e.X)
		sb.WriteByte('[')
		p.expr(false, e.Subscript)
		sb.WriteByte(']')

	case *Ref:
		if e.Mut {
			sb.WriteString("&mut ")
		} else {
			sb.WriteByte('&')
		}
		p.expr(true, e.X)

	case *Deref:
		sb.WriteByte('*')
		p.expr(true, e.X)

	case *Block:
		sb.WriteByte('{')
		for i, x := range e.Exprs {
			if i > 0 {
				sb.WriteByte(';')
			}
			sb.WriteByte(' ')
			p.expr(false, x)
		}
		sb.WriteString(" }")

	case *TypeAlias:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("type ")
		p.name(e.Name)
		sb.WriteString(" = ")
		p.typeExpr(e.Type)
		sb.WriteString(" in ")
		p.expr(false, e.Body)
		if simple {
			sb.WriteByte(')')
		}
	}
}

func (p exprPrinter) typeExpr(t TypeExpr) {
	sb := p.sb
	switch t := t.(type) {
	case *NamedType:
		p.name(t.Name)

	case *ArrayType:
		p.typeExpr(t.Elem)
		sb.WriteByte('[')
		if t.Sized {
			sb.WriteString(strconv.FormatUint(uint64(t.Size), 10))
		}
		sb.WriteByte(']')

	case *RefType:
		if t.Mut {
			sb.WriteString("&mut ")
		} else {
			sb.WriteByte('&')
		}
		p.typeExpr(t.Inner)

	case *FunType:
		sb.WriteString("fn(")
		for i, param := range t.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			p.typeExpr(param)
		}
		sb.WriteString(") -> ")
		p.typeExpr(t.Ret)

	case *HoleType:
		sb.WriteByte('_')
	}
}
