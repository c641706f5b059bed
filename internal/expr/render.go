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

package expr

import "fmt"

// Mode selects how a FieldRef leaf renders, per spec.md §4.1.
type Mode int

const (
	// ModeParameter renders a FieldRef as a bare identifier, for functions
	// that take the referenced values as arguments (e.g. a constructor).
	ModeParameter Mode = iota
	// ModeGetter renders a FieldRef as a call against an already-validated
	// view.
	ModeGetter
	// ModeRaw renders a FieldRef as a direct read from a byte buffer at a
	// previously-recorded offset, for use inside the validator itself.
	ModeRaw
)

// Tokens supplies the dialect-specific surface syntax that rendering needs:
// operator spelling, literal spelling, and the two mode-specific leaf forms.
// Both dialect adapters implement this; the recursion shape in Render is
// shared, only leaf handling and operator tokens differ (spec.md §4.1).
type Tokens interface {
	// BinaryOp returns the infix token for a supported binary Op (Add Sub
	// Mul Div Mod BitAnd BitOr BitXor LeftShift RightShift).
	BinaryOp(op Op) string
	// UnaryPrefix returns the prefix token for Neg, Not, or BitNot.
	UnaryPrefix(op Op) string
	// Popcount renders a population-count call over operand.
	Popcount(operand string) string
	// IntLiteral renders an integer literal.
	IntLiteral(lit Literal) string
	// FallbackZero renders the literal-zero-plus-comment fallback used for
	// every Op in Unsupported (spec.md §4.1).
	FallbackZero(op Op) string
	// Getter renders a getter-mode FieldRef: a call to the accessor for
	// joinedPath (e.g. "header_count") against selfExpr.
	Getter(typeName, joinedPath, selfExpr string) string
	// RawRead renders a raw-byte-mode primitive read of prim at offsetExpr
	// bytes into bufferExpr.
	RawRead(bufferExpr, offsetExpr string, prim Primitive) string
}

// Primitive is the subset of resolved.Primitive information RawRead needs
// (byte width and signedness); it is redeclared here rather than imported
// to keep this package free of a dependency on internal/resolved, since
// resolved already depends on expr for size/tag expressions.
type Primitive struct {
	Bits   int
	Signed bool
	Float  bool
}

// Context carries the mode-specific state Render needs beyond the Tokens
// themselves.
type Context struct {
	// TypeName and Self are used in ModeGetter.
	TypeName string
	Self     string

	// Buffer is the raw-buffer variable name used in ModeRaw (e.g. "data").
	Buffer string
	// Offsets maps a FieldRef's DottedPath(), and failing that its last
	// path segment, to the offset expression text recorded for that field
	// by the validator (spec.md §4.1, "Raw-byte mode"). A miss in both
	// renders "0", matching original_source's fallback.
	Offsets map[string]string
	// FieldPrims maps a FieldRef's JoinedPath() to its primitive type, so
	// ModeRaw knows how wide a read to emit. The validator fills it from
	// each primitive field's own type as it walks the struct's fields.
	FieldPrims map[string]Primitive
}

// Render lowers e into dialect source text under mode. All three modes
// share the same recursion shape (spec.md §4.1); only FieldRef leaf
// handling differs, and Ops in Unsupported fall back to FallbackZero in
// every mode.
func Render(e *Expr, mode Mode, t Tokens, ctx Context) string {
	switch {
	case e.Op == OpLiteral:
		return t.IntLiteral(e.Lit)

	case e.Op == OpFieldRef:
		return renderFieldRef(e, mode, t, ctx)

	case Unsupported(e.Op):
		return t.FallbackZero(e.Op)

	case IsBinary(e.Op):
		l := Render(e.Left, mode, t, ctx)
		r := Render(e.Right, mode, t, ctx)
		return fmt.Sprintf("(%s %s %s)", l, t.BinaryOp(e.Op), r)

	case e.Op == OpPopcount:
		return t.Popcount(Render(e.Operand, mode, t, ctx))

	case IsUnary(e.Op):
		x := Render(e.Operand, mode, t, ctx)
		return fmt.Sprintf("%s%s", t.UnaryPrefix(e.Op), x)

	default:
		// Unreachable for a well-formed Expr tree built through this
		// package's constructors; fall back rather than panicking, since
		// emission must never abort (spec.md §4.1).
		return t.FallbackZero(e.Op)
	}
}

func renderFieldRef(e *Expr, mode Mode, t Tokens, ctx Context) string {
	joined := e.JoinedPath()
	switch mode {
	case ModeParameter:
		return joined
	case ModeGetter:
		return t.Getter(ctx.TypeName, joined, ctx.Self)
	case ModeRaw:
		offsetExpr, ok := ctx.Offsets[e.DottedPath()]
		if !ok {
			offsetExpr, ok = ctx.Offsets[e.Path[len(e.Path)-1]]
		}
		if !ok {
			return "0"
		}
		prim := ctx.FieldPrims[joined]
		return t.RawRead(ctx.Buffer, offsetExpr, prim)
	default:
		return joined
	}
}
