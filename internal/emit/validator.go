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

package emit

import (
	"fmt"
	"strings"

	"github.com/unto-labs/abigen/internal/dialect"
	"github.com/unto-labs/abigen/internal/expr"
	"github.com/unto-labs/abigen/internal/ir"
	"github.com/unto-labs/abigen/internal/layout"
	"github.com/unto-labs/abigen/internal/naming"
	"github.com/unto-labs/abigen/internal/resolved"
)

// validator emits the "validate(buffer) -> measured_size | error" function
// of spec.md §4.3: per field in declaration order, compute its byte need in
// raw-byte binding mode, bounds-check, and either fold the amount into the
// running offset or save it under a named local when a later field's
// expression needs to read it back.
func validator(p *ir.Plan, a dialect.Adapter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", a.FuncOpen(funcName(p.Layout.TypeName, "validate"), a.ValidateParams(), a.ValidateReturn()))
	fmt.Fprintf(&b, "\t%s\n", a.LetMut(runningOffset, a.SizeType(), "0"))

	ctx := expr.Context{Buffer: bufferVar, Offsets: map[string]string{}, FieldPrims: map[string]expr.Primitive{}}
	needVar := dialect.Escape(a, "need")

	for _, f := range p.Layout.Fields {
		if f.Type.Kind == resolved.KindPrimitive {
			ctx.FieldPrims[f.Name] = expr.Primitive{
				Bits: f.Type.Primitive.Size() * 8, Signed: f.Type.Primitive.Signed(), Float: f.Type.Primitive.Float(),
			}
		}

		if f.Type.Kind == resolved.KindArray && f.Type.Array.Jagged && !f.Type.Array.Element.Size.IsConst() {
			jaggedRawNeed(&b, f, a, needVar, ctx)
		} else {
			need := fieldNeed(f, a, ctx)
			fmt.Fprintf(&b, "\t%s\n", a.LetMut(needVar, a.SizeType(), need))
		}

		tooSmall := a.IfNoElse(fmt.Sprintf("(%s + %s) > %s", runningOffset, needVar, a.BufferLen(bufferVar)),
			[]string{a.ReportError(dialect.ErrBufferTooSmall, f.Name)})
		b.WriteString(indentBlock(tooSmall, 1))
		b.WriteString("\n")

		switch f.Type.Kind {
		case resolved.KindEnum:
			tag := expr.Render(f.Type.Enum.TagExpression, expr.ModeRaw, a, ctx)
			cond := enumValidTagCond(f.Type.Enum.Variants, tag)
			check := a.IfNoElse(fmt.Sprintf("!(%s)", cond), []string{a.ReportError(dialect.ErrInvalidTag, f.Name)})
			b.WriteString(indentBlock(check, 1))
			b.WriteString("\n")
		case resolved.KindSDU:
			available := fmt.Sprintf("(%s - %s)", a.BufferLen(bufferVar), runningOffset)
			cond := sduValidVariantCond(f.Type.SDU.Variants, available)
			check := a.IfNoElse(fmt.Sprintf("!(%s)", cond), []string{a.ReportError(dialect.ErrNoMatchingVariant, f.Name)})
			b.WriteString(indentBlock(check, 1))
			b.WriteString("\n")
		}

		if f.SaveOffset {
			fmt.Fprintf(&b, "\t%s\n", a.Let(offsetVar(f.Name), a.SizeType(), runningOffset))
			ctx.Offsets[f.Name] = offsetVar(f.Name)
			ctx.Offsets[strings.ReplaceAll(f.Name, "_", ".")] = offsetVar(f.Name)
		}
		fmt.Fprintf(&b, "\t%s += %s;\n", runningOffset, needVar)
	}

	fmt.Fprintf(&b, "\t%s\n", a.ReturnMeasured(runningOffset))
	fmt.Fprintf(&b, "%s\n", a.FuncClose())
	return b.String()
}

// fieldNeed renders the byte-need expression for one field, in raw-byte
// binding mode, per the five offset(i) summand shapes of spec.md §4.2. A
// jagged field with a variable-size element is handled by jaggedRawNeed
// before this is reached, since that case needs a loop, not a single
// expression.
func fieldNeed(f *layout.FieldPlan, a dialect.Adapter, ctx expr.Context) string {
	switch f.Type.Kind {
	case resolved.KindEnum:
		tag := expr.Render(f.Type.Enum.TagExpression, expr.ModeRaw, a, ctx)
		return enumSizeExpr(f.Type.Enum.Variants, tag, a)
	case resolved.KindSDU:
		return fmt.Sprintf("(%s - %s)", a.BufferLen(bufferVar), runningOffset)
	case resolved.KindArray:
		if f.Type.Array.Jagged {
			count := expr.Render(f.Type.Array.SizeExpr, expr.ModeRaw, a, ctx)
			return fmt.Sprintf("(%s * %d)", count, f.Type.Array.Element.Size.Const)
		}
		if f.Term.Kind == layout.TermConst {
			return fmt.Sprintf("%d", f.Term.Const)
		}
		count := expr.Render(f.Term.CountExpr, expr.ModeRaw, a, ctx)
		return fmt.Sprintf("(%s * %d)", count, f.Term.ElemSize)
	default:
		if f.Term.Kind == layout.TermConst {
			return fmt.Sprintf("%d", f.Term.Const)
		}
		// An unflattened, variable-size TypeRef/struct field: the opaque
		// recursive-validate case of §4.3 step 6, not otherwise measured
		// here (matches subViewAccessor's placeholder width).
		return "0"
	}
}

// jaggedRawNeed emits the statements that measure a variable-size-element
// jagged field's total byte width by walking it element by element, calling
// each element's own validate entry point and trusting it to succeed (the
// buffer bytes before this field were already bounds-checked by the loop
// iterations so far, and this field's own bytes are exactly what the walk
// consumes). Binds the result to needVar, matching the single-expression
// `need` binding fieldNeed's other branches produce.
func jaggedRawNeed(b *strings.Builder, f *layout.FieldPlan, a dialect.Adapter, needVar string, ctx expr.Context) {
	cursor := dialect.Escape(a, "cursor")
	elemSizeVar := dialect.Escape(a, "elem_size")
	counter := dialect.Escape(a, "k")

	elemCount := expr.Render(f.Type.Array.SizeExpr, expr.ModeRaw, a, ctx)

	fmt.Fprintf(b, "\t%s\n", a.LetMut(cursor, a.SizeType(), runningOffset))
	fmt.Fprintf(b, "\t%s\n", a.LetMut(needVar, a.SizeType(), "0"))

	elemValidate := naming.Flatten(f.Type.Array.Element.TypeRef) + "_validate"
	data := a.OffsetData(bufferVar, cursor)
	remaining := fmt.Sprintf("(%s - %s)", a.BufferLen(bufferVar), cursor)
	measure := a.CallValidateTrusted(elemValidate, data, remaining, elemSizeVar)
	body := append(measure, fmt.Sprintf("%s += %s;", needVar, elemSizeVar), fmt.Sprintf("%s += %s;", cursor, elemSizeVar))
	b.WriteString(indentBlock(a.CountedLoop(counter, elemCount, body), 1))
	b.WriteString("\n")
}

func enumValidTagCond(variants []resolved.EnumVariant, tag string) string {
	parts := make([]string, len(variants))
	for i, v := range variants {
		parts[i] = fmt.Sprintf("%s == %d", tag, v.Tag)
	}
	return strings.Join(parts, " || ")
}

func sduValidVariantCond(variants []resolved.SDUVariant, available string) string {
	parts := make([]string, len(variants))
	for i, v := range variants {
		parts[i] = fmt.Sprintf("%s == %d", available, v.ExpectedSize)
	}
	return strings.Join(parts, " || ")
}
