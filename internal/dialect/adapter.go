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

// Package dialect declares the Adapter interface spec.md §4.6 describes:
// the two emission dialects differ only in how they render five surface
// primitives, never in the offset plan itself.
package dialect

import (
	"strings"

	"github.com/unto-labs/abigen/internal/expr"
	"github.com/unto-labs/abigen/internal/resolved"
)

// ErrorKind is one of the five structural error conditions spec.md §7
// names.
type ErrorKind int

const (
	ErrBufferTooSmall ErrorKind = iota
	ErrInvalidTag
	ErrNoMatchingVariant
	ErrBodySizeMismatch
	ErrIndexOutOfBounds
)

func (k ErrorKind) String() string {
	switch k {
	case ErrBufferTooSmall:
		return "BufferTooSmall"
	case ErrInvalidTag:
		return "InvalidTag"
	case ErrNoMatchingVariant:
		return "NoMatchingVariant"
	case ErrBodySizeMismatch:
		return "BodySizeMismatch"
	case ErrIndexOutOfBounds:
		return "IndexOutOfBounds"
	default:
		return "Unknown"
	}
}

// Param is one function parameter or local-variable declaration: a name
// paired with its dialect-rendered type.
type Param struct {
	Name string
	Type string
}

// Case is one integer-keyed arm of a Switch, plus the trailing line comment
// naming the variant it belongs to (e.g. enum and SDU variant dispatch,
// spec.md §4.4).
type Case struct {
	Value   int
	Comment string
	Body    []string
}

// Adapter bundles the dialect-specific rendering primitives of §4.6 (read,
// write, sub-view, error report, view-type declaration, function/control-flow
// syntax) plus the expr.Tokens a dialect needs to render size/tag
// expressions, and the naming escape table every emitted identifier must
// flow through (§4.4).
//
// This mirrors the teacher's compiler.Options.Backend /
// tdp/compiler/archetype.go shape: one interface selected by the caller,
// rather than a kind switch inside the emitter. Every method here renders a
// real fragment of the target language's own declaration or control-flow
// grammar (return-type-first C, `fn`/`match`/`let` Rust) rather than a
// shared placeholder scaffold, so the emitter's output differs in actual
// syntax between dialects, not only in leaf tokens (spec.md §1, §4.6).
type Adapter interface {
	expr.Tokens

	// Name identifies this dialect ("manual" or "owned"); Generate prints
	// it in the doc-comment banner at the top of that dialect's output.
	Name() string

	// Prelude renders any shared declarations this dialect's output needs
	// exactly once, regardless of how many structs are emitted (e.g. the
	// generic borrowed-view type returned by array-element, enum-body, and
	// SDU-variant accessors).
	Prelude() string

	// PrimitiveType names prim's surface type in this dialect (e.g.
	// "uint16_t" vs "u16").
	PrimitiveType(prim resolved.Primitive) string
	// RawViewType names the generic borrowed byte-range type FuncOpen/Let
	// callers use for an accessor that returns an arbitrary sub-range
	// rather than a specific struct's view.
	RawViewType() string
	// SizeType names this dialect's byte-count/offset integer type.
	SizeType() string

	// ReadLE renders an expression reading a little-endian prim from
	// bufferExpr at byte offsetExpr.
	ReadLE(bufferExpr, offsetExpr string, prim resolved.Primitive) string
	// WriteLE renders a statement writing valueExpr as prim's little-endian
	// encoding into bufferExpr at byte offsetExpr.
	WriteLE(bufferExpr, offsetExpr, valueExpr string, prim resolved.Primitive) string
	// SubView renders an expression forming a borrowed sub-view over
	// bufferExpr[fromExpr:toExpr], of type RawViewType.
	SubView(bufferExpr, fromExpr, toExpr string) string
	// ReportError renders a return/result statement for the given
	// structural error kind, naming the offending field.
	ReportError(kind ErrorKind, field string) string
	// ViewDecl and MutViewDecl render the view and mutable-view type
	// declarations for a top-level struct named typeName.
	ViewDecl(typeName string) string
	MutViewDecl(typeName string) string

	// ConstParam and MutParam render the const/mutable view parameter a
	// field accessor or mutator receives, over a view of typeName.
	ConstParam(typeName string) Param
	MutParam(typeName string) Param
	// SelfData and SelfLen render, from a view-typed expression bound to
	// selfExpr, the underlying byte buffer and its length.
	SelfData(selfExpr string) string
	SelfLen(selfExpr string) string
	// BufferLen renders the length of a raw (not-yet-viewed) buffer
	// expression, e.g. the validator's own "data" parameter.
	BufferLen(bufferExpr string) string

	// FuncOpen renders a complete function signature, in this dialect's
	// real declaration syntax, and opens its body block.
	FuncOpen(name string, params []Param, ret string) string
	// FuncClose renders the matching closing brace.
	FuncClose() string
	// Return renders an explicit return of expr.
	Return(expr string) string
	// TailExpr renders the final expression of a single-expression
	// function body: an explicit return in manual, a bare tail expression
	// in owned (matching original_source's idiomatic one-line getters).
	TailExpr(expr string) string

	// Let declares and initializes one immutable local.
	Let(name, typ, value string) string
	// LetMut declares and initializes one local that is reassigned later
	// in the same function (a running offset accumulator, a loop cursor).
	LetMut(name, typ, value string) string

	// Ternary renders a conditional expression: then if cond holds, else
	// otherwise. Both C's `?:` and an `if {} else {}` block are valid
	// expression forms, so a field's tag-keyed size can always be rendered
	// as a single inline expression rather than a separate statement.
	Ternary(cond, then, els string) string

	// IfNoElse renders `if (cond) { body }` with no else arm.
	IfNoElse(cond string, body []string) string
	// CountedLoop renders a loop that starts counter at zero and advances
	// it by one while it remains less than bound.
	CountedLoop(counter, bound string, body []string) string
	// Switch renders an integer-keyed switch/match over subject, with one
	// arm per case plus a trailing default arm.
	Switch(subject string, cases []Case, defaultBody []string) string

	// ValidateParams and ValidateReturn render the validator's
	// dialect-specific signature: manual reports the measured size through
	// a trailing out-parameter and returns a status code, owned returns
	// Result<usize, &'static str> directly (spec.md §4.3).
	ValidateParams() []Param
	ValidateReturn() string
	// ReturnMeasured renders the validator's success-path return of the
	// measured size expr.
	ReturnMeasured(expr string) string

	// NewParams and NewReturn render the constructor's dialect-specific
	// signature: construction is infallible by precondition (the caller
	// supplies a buffer already sized to fit), so unlike ValidateParams
	// this never carries an out-parameter or Result wrapper.
	NewParams() []Param
	NewReturn() string

	// OffsetData renders bufferExpr advanced by offsetExpr bytes, in this
	// dialect's own idiom for "the remaining bytes starting here" (pointer
	// arithmetic in manual, a tail slice in owned) — the form
	// CallValidateTrusted's data argument needs while walking a jagged
	// array's variable-size elements.
	OffsetData(bufferExpr, offsetExpr string) string

	// CallValidateTrusted renders the lines that call funcName's validate
	// entry point over dataExpr/lenExpr and bind its measured size to
	// bindVar, trusting success (used while walking a jagged array's
	// already-validated buffer, where a prior validate pass is the only
	// caller, so the measure cannot fail).
	CallValidateTrusted(funcName, dataExpr, lenExpr, bindVar string) []string

	// Reserved reports whether ident collides with this dialect's
	// keywords.
	Reserved(ident string) bool
	// ReservedSuffix is the uniform suffix §4.4 appends to escape a
	// reserved-word identifier in this dialect.
	ReservedSuffix() string
}

// Escape applies a's reserved-word table to ident via internal/naming's
// uniform escaping rule.
func Escape(a Adapter, ident string) string {
	if a.Reserved(ident) {
		return ident + a.ReservedSuffix()
	}
	return ident
}

// Indent prefixes every non-empty line of lines with one tab per level,
// the shared block-formatting helper both dialects' FuncOpen/IfNoElse/
// CountedLoop/Switch callers use.
func Indent(lines []string, level int) []string {
	prefix := strings.Repeat("\t", level)
	out := make([]string, len(lines))
	for i, l := range lines {
		if l == "" {
			out[i] = l
			continue
		}
		out[i] = prefix + l
	}
	return out
}
