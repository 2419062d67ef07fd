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
	"strconv"
	"strings"
	"sync"

	"github.com/wdamron/tyck/symbol"
)

// Printer renders types held by a Universe.
type Printer struct {
	Universe *Universe
	// Names resolves the symbols of struct placeholders. If nil, placeholders print by index.
	Names symbol.Interner
	// Resolve maps a type to its representative before printing. If nil, types print as stored.
	Resolve func(TyId) TyId
}

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{varNames: make(map[InferVarId]string, 8)}
	},
}

type typePrinter struct {
	*Printer
	varNames map[InferVarId]string
	sb       strings.Builder
}

func (p *typePrinter) release() {
	for k := range p.varNames {
		delete(p.varNames, k)
	}
	p.sb.Reset()
	p.Printer = nil
	printerPool.Put(p)
}

var _names [52]string

func init() {
	for i := range _names {
		if i >= 26 {
			_names[i] = "'" + string(byte('a'+i%26)) + strconv.Itoa(i/26)
			continue
		}
		_names[i] = "'" + string(byte('a'+i))
	}
}

func varName(i int) string {
	if i < len(_names) {
		return _names[i]
	}
	return "'" + string(byte('a'+i%26)) + strconv.Itoa(i/26)
}

// TypeString returns a string representation of a type. Type-variables are named
// 'a, 'b, ... in order of first appearance.
func (pr *Printer) TypeString(id TyId) string {
	p := printerPool.Get().(*typePrinter)
	p.Printer = pr
	p.typeString(id)
	s := p.sb.String()
	p.release()
	return s
}

// SchemeString returns a string representation of a scheme: `forall 'a. fn('a) -> 'a`.
// Monomorphic schemes print as their type.
func (pr *Printer) SchemeString(s Scheme) string {
	p := printerPool.Get().(*typePrinter)
	p.Printer = pr
	if len(s.Quantified) > 0 {
		p.sb.WriteString("forall")
		for _, v := range s.Quantified {
			p.sb.WriteByte(' ')
			p.sb.WriteString(p.name(v))
		}
		p.sb.WriteString(". ")
	}
	p.typeString(s.Ty)
	out := p.sb.String()
	p.release()
	return out
}

func (p *typePrinter) name(v InferVarId) string {
	if name, ok := p.varNames[v]; ok {
		return name
	}
	name := varName(len(p.varNames))
	p.varNames[v] = name
	return name
}

func (p *typePrinter) typeString(id TyId) {
	if p.Resolve != nil {
		id = p.Resolve(id)
	}
	t := p.Universe.Lookup(id)
	switch t.Kind() {
	case Error:
		p.sb.WriteString("<error>")
	case Unit:
		p.sb.WriteString("()")
	case Bool:
		p.sb.WriteString("bool")
	case Char:
		p.sb.WriteString("char")
	case Str:
		p.sb.WriteString("str")
	case Bytes:
		p.sb.WriteString("bytes")
	case Type:
		p.sb.WriteString("type")
	case Template:
		p.sb.WriteString("template")
	case Int:
		if t.Signed() {
			p.sb.WriteByte('s')
		} else {
			p.sb.WriteByte('u')
		}
		p.sb.WriteString(strconv.Itoa(t.IntWidth().Bits()))
	case Float:
		p.sb.WriteByte('f')
		p.sb.WriteString(strconv.Itoa(t.FloatWidth().Bits()))
	case Infer:
		v, _ := t.Var()
		p.sb.WriteString(p.name(v))
	case Struct:
		name, _ := t.StructName()
		if p.Names != nil {
			p.sb.WriteString(p.Names.Get(name))
		} else {
			p.sb.WriteString("struct#")
			p.sb.WriteString(strconv.Itoa(int(name)))
		}
	case Fun:
		fid, _ := t.Fun()
		fn, ok := p.Universe.Compound.Fun(fid)
		if !ok {
			p.sb.WriteString("<invalid-fun>")
			return
		}
		p.sb.WriteString("fn(")
		for i, param := range fn.Params {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.typeString(param)
		}
		p.sb.WriteString(") -> ")
		p.typeString(fn.Return)
	case Array:
		aid, _ := t.Array()
		arr, ok := p.Universe.Compound.Array(aid)
		if !ok {
			p.sb.WriteString("<invalid-array>")
			return
		}
		p.typeString(arr.Elem)
		p.sb.WriteByte('[')
		if arr.Sized {
			p.sb.WriteString(strconv.FormatUint(uint64(arr.Size), 10))
		}
		p.sb.WriteByte(']')
	case Ref:
		rid, _ := t.Ref()
		ref, ok := p.Universe.Compound.Ref(rid)
		if !ok {
			p.sb.WriteString("<invalid-ref>")
			return
		}
		if ref.Mut {
			p.sb.WriteString("&mut ")
		} else {
			p.sb.WriteByte('&')
		}
		p.typeString(ref.Inner)
	}
}
