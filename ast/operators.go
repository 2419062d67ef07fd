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

// BinOp is a binary operator.
type BinOp uint8

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	Rem
	Eq
	Neq
	Lt
	Lte
	Gt
	Gte
	And
	Or
	BitAnd
	BitOr
	BitXor
	Shl
	Shr
)

var binOpNames = [...]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Rem: "%",
	Eq: "==", Neq: "!=", Lt: "<", Lte: "<=", Gt: ">", Gte: ">=",
	And: "&&", Or: "||",
	BitAnd: "&", BitOr: "|", BitXor: "^", Shl: "<<", Shr: ">>",
}

func (op BinOp) String() string {
	if int(op) < len(binOpNames) {
		return binOpNames[op]
	}
	return "?"
}

// ParseBinOp returns the operator spelled s.
func ParseBinOp(s string) (BinOp, bool) {
	for op, name := range binOpNames {
		if name == s {
			return BinOp(op), true
		}
	}
	return 0, false
}

// Arithmetic reports whether op is one of + - * / %.
func (op BinOp) Arithmetic() bool { return op <= Rem }

// Comparison reports whether op is one of == != < <= > >=.
func (op BinOp) Comparison() bool { return op >= Eq && op <= Gte }

// Logical reports whether op is one of && ||.
func (op BinOp) Logical() bool { return op == And || op == Or }

// Bitwise reports whether op is one of & | ^ << >>.
func (op BinOp) Bitwise() bool { return op >= BitAnd && op <= Shr }

// UnOp is a unary operator.
type UnOp uint8

const (
	Neg UnOp = iota
	Not
	BitNot
)

var unOpNames = [...]string{Neg: "-", Not: "!", BitNot: "~"}

func (op UnOp) String() string {
	if int(op) < len(unOpNames) {
		return unOpNames[op]
	}
	return "?"
}

// ParseUnOp returns the operator spelled s.
func ParseUnOp(s string) (UnOp, bool) {
	for op, name := range unOpNames {
		if name == s {
			return UnOp(op), true
		}
	}
	return 0, false
}
