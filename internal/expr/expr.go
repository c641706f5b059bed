// Copyright 2026 Unto Labs, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package expr is the side-effect-free integer expression language of
// spec.md §3.2: literals, field references, and a small set of binary and
// unary operators, plus SizeOf/AlignOf. Expressions are total except for
// Div/Mod by zero and Pow with a negative exponent; this package assumes an
// upstream front-end has already rejected such schemas (spec.md §3.2).
package expr

import "fmt"

// Op identifies the shape of an Expr node.
type Op int

const (
	OpLiteral Op = iota
	OpFieldRef

	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpBitAnd
	OpBitOr
	OpBitXor
	OpLeftShift
	OpRightShift

	OpNeg
	OpNot
	OpBitNot
	OpPopcount

	OpSizeOf
	OpAlignOf
)

// binary is the set of ops with a Left and a Right operand.
var binary = map[Op]bool{
	OpAdd: true, OpSub: true, OpMul: true, OpDiv: true, OpMod: true,
	OpPow: true, OpBitAnd: true, OpBitOr: true, OpBitXor: true,
	OpLeftShift: true, OpRightShift: true,
}

// unary is the set of ops with a single Operand.
var unary = map[Op]bool{
	OpNeg: true, OpNot: true, OpBitNot: true, OpPopcount: true,
}

// Literal is an integer literal tagged with its declared width and
// signedness, per spec.md §3.2 (`Literal(u8|u16|u32|u64|i8|i16|i32|i64)`).
type Literal struct {
	Bits   int  // 8, 16, 32, or 64
	Signed bool
	Value  uint64 // two's-complement bit pattern
}

// Int64 interprets Value as a signed integer of the literal's width.
func (l Literal) Int64() int64 {
	if !l.Signed {
		return int64(l.Value)
	}
	switch l.Bits {
	case 8:
		return int64(int8(l.Value))
	case 16:
		return int64(int16(l.Value))
	case 32:
		return int64(int32(l.Value))
	default:
		return int64(l.Value)
	}
}

// Expr is a node in the expression tree. Exactly one of the payload fields
// is meaningful, selected by Op; this mirrors the tagged-union shape of
// resolved.Type rather than using an interface, since the set of Ops is
// closed and every consumer dispatches on it exhaustively (see the Design
// Notes' guidance against dynamic dispatch across a closed kind set).
type Expr struct {
	Op Op

	Lit Literal // OpLiteral
	Path []string // OpFieldRef: ordered name segments

	Left, Right *Expr // binary ops
	Operand     *Expr // unary ops

	TypeName string // OpSizeOf / OpAlignOf
}

// LitU8/LitU16/LitU32/LitU64 build unsigned integer literals.
func LitU8(v uint8) *Expr   { return &Expr{Op: OpLiteral, Lit: Literal{Bits: 8, Value: uint64(v)}} }
func LitU16(v uint16) *Expr { return &Expr{Op: OpLiteral, Lit: Literal{Bits: 16, Value: uint64(v)}} }
func LitU32(v uint32) *Expr { return &Expr{Op: OpLiteral, Lit: Literal{Bits: 32, Value: uint64(v)}} }
func LitU64(v uint64) *Expr { return &Expr{Op: OpLiteral, Lit: Literal{Bits: 64, Value: v}} }

// LitI8/LitI16/LitI32/LitI64 build signed integer literals.
func LitI8(v int8) *Expr {
	return &Expr{Op: OpLiteral, Lit: Literal{Bits: 8, Signed: true, Value: uint64(uint8(v))}}
}
func LitI16(v int16) *Expr {
	return &Expr{Op: OpLiteral, Lit: Literal{Bits: 16, Signed: true, Value: uint64(uint16(v))}}
}
func LitI32(v int32) *Expr {
	return &Expr{Op: OpLiteral, Lit: Literal{Bits: 32, Signed: true, Value: uint64(uint32(v))}}
}
func LitI64(v int64) *Expr {
	return &Expr{Op: OpLiteral, Lit: Literal{Bits: 64, Signed: true, Value: uint64(v)}}
}

// Field builds a FieldRef over the given ordered path segments, e.g.
// Field("header", "count") for the nested reference "header.count".
func Field(path ...string) *Expr {
	return &Expr{Op: OpFieldRef, Path: append([]string(nil), path...)}
}

func bin(op Op, l, r *Expr) *Expr { return &Expr{Op: op, Left: l, Right: r} }

func Add(l, r *Expr) *Expr        { return bin(OpAdd, l, r) }
func Sub(l, r *Expr) *Expr        { return bin(OpSub, l, r) }
func Mul(l, r *Expr) *Expr        { return bin(OpMul, l, r) }
func Div(l, r *Expr) *Expr        { return bin(OpDiv, l, r) }
func Mod(l, r *Expr) *Expr        { return bin(OpMod, l, r) }
func Pow(l, r *Expr) *Expr        { return bin(OpPow, l, r) }
func BitAnd(l, r *Expr) *Expr     { return bin(OpBitAnd, l, r) }
func BitOr(l, r *Expr) *Expr      { return bin(OpBitOr, l, r) }
func BitXor(l, r *Expr) *Expr     { return bin(OpBitXor, l, r) }
func LeftShift(l, r *Expr) *Expr  { return bin(OpLeftShift, l, r) }
func RightShift(l, r *Expr) *Expr { return bin(OpRightShift, l, r) }

func un(op Op, x *Expr) *Expr { return &Expr{Op: op, Operand: x} }

func Neg(x *Expr) *Expr      { return un(OpNeg, x) }
func Not(x *Expr) *Expr      { return un(OpNot, x) }
func BitNot(x *Expr) *Expr   { return un(OpBitNot, x) }
func Popcount(x *Expr) *Expr { return un(OpPopcount, x) }

// SizeOf and AlignOf yield compile-time constants for a named type.
func SizeOf(typeName string) *Expr  { return &Expr{Op: OpSizeOf, TypeName: typeName} }
func AlignOf(typeName string) *Expr { return &Expr{Op: OpAlignOf, TypeName: typeName} }

// IsBinary reports whether op takes a Left/Right pair.
func IsBinary(op Op) bool { return binary[op] }

// IsUnary reports whether op takes a single Operand.
func IsUnary(op Op) bool { return unary[op] }

func (o Op) String() string {
	switch o {
	case OpLiteral:
		return "Literal"
	case OpFieldRef:
		return "FieldRef"
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	case OpMod:
		return "Mod"
	case OpPow:
		return "Pow"
	case OpBitAnd:
		return "BitAnd"
	case OpBitOr:
		return "BitOr"
	case OpBitXor:
		return "BitXor"
	case OpLeftShift:
		return "LeftShift"
	case OpRightShift:
		return "RightShift"
	case OpNeg:
		return "Neg"
	case OpNot:
		return "Not"
	case OpBitNot:
		return "BitNot"
	case OpPopcount:
		return "Popcount"
	case OpSizeOf:
		return "SizeOf"
	case OpAlignOf:
		return "AlignOf"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// JoinedPath returns a FieldRef's path joined with "_", the canonical key
// used throughout this repository for naming and reference tracking (e.g.
// ["header", "count"] -> "header_count").
func (e *Expr) JoinedPath() string {
	out := e.Path[0]
	for _, seg := range e.Path[1:] {
		out += "_" + seg
	}
	return out
}

// DottedPath returns a FieldRef's path joined with ".", used when looking up
// an offset recorded under its dotted form (e.g. "header.count").
func (e *Expr) DottedPath() string {
	out := e.Path[0]
	for _, seg := range e.Path[1:] {
		out += "." + seg
	}
	return out
}

// Walk calls visit for e and every descendant, in a deterministic
// pre-order. It is the shared traversal used by reftrack and by tests; the
// rendering code in this package does not use it, since rendering produces
// a string bottom-up rather than visiting for effect.
func Walk(e *Expr, visit func(*Expr)) {
	if e == nil {
		return
	}
	visit(e)
	switch {
	case IsBinary(e.Op):
		Walk(e.Left, visit)
		Walk(e.Right, visit)
	case IsUnary(e.Op):
		Walk(e.Operand, visit)
	}
}

// unsupportedFallback is the set of Ops that every binding mode currently
// renders as a literal zero plus a comment, per spec.md §4.1's "Failure
// conditions" note. Reimplementers must match this set exactly, since
// emitted code's textual stability depends on it.
var unsupportedFallback = map[Op]bool{
	OpPow:        true,
	OpSizeOf:     true,
	OpAlignOf:    true,
	OpLeftShift:  true,
	OpRightShift: true,
}

// Unsupported reports whether op currently falls back to a literal zero in
// every binding mode (spec.md §4.1).
func Unsupported(op Op) bool { return unsupportedFallback[op] }
