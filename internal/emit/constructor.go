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
	"github.com/unto-labs/abigen/internal/resolved"
)

// constructor emits `new`, spec.md §4.4: for a top-level struct, a function
// taking the buffer plus the reference-tracker's parameters (referenced
// primitives in declaration order, then one {field}_tag per SDU field), that
// computes the required size from those parameters, writes the
// reference-affecting primitives into their slots, leaves the rest
// zero-filled, and returns the number of bytes used.
func constructor(p *ir.Plan, a dialect.Adapter) string {
	paramSet := make(map[string]bool, len(p.Params))
	for _, param := range p.Params {
		paramSet[param.Name] = true
	}

	params := a.NewParams()
	for _, param := range p.Params {
		typ := a.PrimitiveType(resolved.U8)
		if !param.IsTag {
			typ = a.PrimitiveType(param.Primitive)
		}
		params = append(params, dialect.Param{Name: dialect.Escape(a, param.Name), Type: typ})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", a.FuncOpen(funcName(p.Layout.TypeName, "new"), params, a.NewReturn()))
	fmt.Fprintf(&b, "\t%s\n", a.LetMut(runningOffset, a.SizeType(), "0"))

	ctx := expr.Context{Buffer: bufferVar}
	needVar := dialect.Escape(a, "need")
	for _, f := range p.Layout.Fields {
		need := fieldNeedParam(f, a, ctx)
		fmt.Fprintf(&b, "\t%s\n", a.LetMut(needVar, a.SizeType(), need))
		if f.Type.Kind == resolved.KindPrimitive && paramSet[f.Name] {
			fmt.Fprintf(&b, "\t%s\n", a.WriteLE(bufferVar, runningOffset, dialect.Escape(a, f.Name), f.Type.Primitive))
		}
		fmt.Fprintf(&b, "\t%s += %s;\n", runningOffset, needVar)
	}

	fmt.Fprintf(&b, "\t%s\n", a.Return(runningOffset))
	fmt.Fprintf(&b, "%s\n", a.FuncClose())
	return b.String()
}

// fieldNeedParam mirrors fieldNeed but renders any field-ref operands in
// parameter binding mode, since a constructor only ever has its own
// parameters (and not-yet-written buffer bytes) to read from. An SDU
// field's need is simply its {field}_tag parameter: that parameter already
// carries the selected variant's expected byte width (§4.4), so there is
// nothing to look up.
func fieldNeedParam(f *layout.FieldPlan, a dialect.Adapter, ctx expr.Context) string {
	switch f.Type.Kind {
	case resolved.KindEnum:
		tag := expr.Render(f.Type.Enum.TagExpression, expr.ModeParameter, a, ctx)
		return enumSizeExpr(f.Type.Enum.Variants, tag, a)
	case resolved.KindSDU:
		return dialect.Escape(a, f.Name+"_tag")
	case resolved.KindArray:
		if f.Type.Array.Jagged {
			if !f.Type.Array.Element.Size.IsConst() {
				// A variable-size jagged element's total width cannot be
				// known from constructor parameters alone: there is no
				// buffer yet to walk. Out of scope here, matching
				// subViewAccessor's opaque-TypeRef placeholder.
				return "0"
			}
			count := expr.Render(f.Type.Array.SizeExpr, expr.ModeParameter, a, ctx)
			return fmt.Sprintf("(%s * %d)", count, f.Type.Array.Element.Size.Const)
		}
		if f.Term.Kind == layout.TermConst {
			return fmt.Sprintf("%d", f.Term.Const)
		}
		count := expr.Render(f.Term.CountExpr, expr.ModeParameter, a, ctx)
		return fmt.Sprintf("(%s * %d)", count, f.Term.ElemSize)
	default:
		if f.Term.Kind == layout.TermConst {
			return fmt.Sprintf("%d", f.Term.Const)
		}
		return "0"
	}
}
