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

// accessors emits the Read and Write families of spec.md §4.4 for every
// field of the plan, dispatching by Kind to the per-kind helper that knows
// that kind's specific accessor shape.
func accessors(p *ir.Plan, a dialect.Adapter) string {
	var b strings.Builder
	ctx := expr.Context{TypeName: p.Layout.TypeName, Self: "self"}
	for i, f := range p.Layout.Fields {
		offsetExpr := cumulativeOffsetExpr(p.Layout, i, a, ctx)
		switch f.Type.Kind {
		case resolved.KindPrimitive:
			primitiveAccessor(&b, p.Layout.TypeName, f, offsetExpr, a)
		case resolved.KindArray:
			arrayAccessor(&b, p.Layout.TypeName, f, offsetExpr, a)
		case resolved.KindEnum:
			enumAccessor(&b, p.Layout.TypeName, f, offsetExpr, a)
		case resolved.KindSDU:
			sduAccessor(&b, p.Layout.TypeName, f, offsetExpr, a)
		case resolved.KindTypeRef, resolved.KindStruct:
			subViewAccessor(&b, p.Layout.TypeName, f, offsetExpr, a)
		}
	}
	return b.String()
}

// cumulativeOffsetExpr renders offset(i), the sum of every prior field's
// Term, in getter binding mode (spec.md §4.2's "Field-address resolution
// rule": there is never a stored struct-wide offset table; each accessor
// recomputes its own offset).
func cumulativeOffsetExpr(l *layout.Plan, i int, a dialect.Adapter, ctx expr.Context) string {
	terms := l.PriorTerms(i)
	if len(terms) == 0 {
		return "0"
	}
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		parts = append(parts, termExpr(t, a, ctx))
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

func termExpr(t layout.Term, a dialect.Adapter, ctx expr.Context) string {
	switch t.Kind {
	case layout.TermConst:
		return fmt.Sprintf("%d", t.Const)
	case layout.TermSizeExpr:
		count := expr.Render(t.CountExpr, expr.ModeGetter, a, ctx)
		return fmt.Sprintf("(%s * %d)", count, t.ElemSize)
	case layout.TermHelperCall:
		return fmt.Sprintf("%s(%s)", t.HelperName, ctx.Self)
	default:
		return "0"
	}
}

// funcName joins typeName and parts under the "Type_verb_field[...]"
// convention every accessor/mutator/helper name in this package follows
// (spec.md §4.4).
func funcName(typeName string, parts ...string) string {
	return naming.Join(append([]string{typeName}, parts...)...)
}

// primitiveAccessor emits a scalar field's `_get` and, unless a later
// field's expression reads this field back (SaveOffset), its `_set`.
func primitiveAccessor(b *strings.Builder, typeName string, f *layout.FieldPlan, offsetExpr string, a dialect.Adapter) {
	self := a.ConstParam(typeName)
	getName := funcName(typeName, "get", f.Name)
	retType := a.PrimitiveType(f.Type.Primitive)
	fmt.Fprintf(b, "%s\n", a.FuncOpen(getName, []dialect.Param{self}, retType))
	fmt.Fprintf(b, "\t%s\n", a.TailExpr(a.ReadLE(a.SelfData(self.Name), offsetExpr, f.Type.Primitive)))
	fmt.Fprintf(b, "%s\n\n", a.FuncClose())

	if f.SaveOffset {
		// Referenced by another field's expression: frozen, no setter
		// (spec.md §4.4 write family).
		return
	}

	selfMut := a.MutParam(typeName)
	value := dialect.Param{Name: dialect.Escape(a, "value"), Type: retType}
	setName := funcName(typeName, "set", f.Name)
	fmt.Fprintf(b, "%s\n", a.FuncOpen(setName, []dialect.Param{selfMut, value}, ""))
	fmt.Fprintf(b, "\t%s\n", a.WriteLE(a.SelfData(selfMut.Name), offsetExpr, value.Name, f.Type.Primitive))
	fmt.Fprintf(b, "%s\n\n", a.FuncClose())
}

// subViewAccessor emits a nested composite or unflattened TypeRef field's
// `_get`, returning a borrowed sub-view of known or (for a variable-size
// TypeRef target) zero placeholder width — a variable-size TypeRef is the
// "opaque helper call" case of spec.md §4.2 and is not yet measured here.
func subViewAccessor(b *strings.Builder, typeName string, f *layout.FieldPlan, offsetExpr string, a dialect.Adapter) {
	size := "0"
	if f.Type.Size.IsConst() {
		size = fmt.Sprintf("%d", f.Type.Size.Const)
	}
	self := a.ConstParam(typeName)
	getName := funcName(typeName, "get", f.Name)
	to := fmt.Sprintf("(%s + %s)", offsetExpr, size)
	fmt.Fprintf(b, "%s\n", a.FuncOpen(getName, []dialect.Param{self}, a.RawViewType()))
	fmt.Fprintf(b, "\t%s\n", a.TailExpr(a.SubView(a.SelfData(self.Name), offsetExpr, to)))
	fmt.Fprintf(b, "%s\n\n", a.FuncClose())
}
