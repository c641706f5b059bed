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
	"github.com/unto-labs/abigen/internal/layout"
	"github.com/unto-labs/abigen/internal/resolved"
)

// enumAccessor emits an enum field's internal `_size()` (evaluate the tag
// expression, switch on it to pick the variant's constant size, per §4.4),
// its `_body()` byte-range accessor, and a body setter that enforces the
// caller-supplied slice length equals the currently selected variant's
// size (§4.4 write family; BodySizeMismatch on violation, §7).
func enumAccessor(b *strings.Builder, typeName string, f *layout.FieldPlan, offsetExpr string, a dialect.Adapter) {
	ctx := expr.Context{TypeName: typeName, Self: "self"}
	tag := expr.Render(f.Type.Enum.TagExpression, expr.ModeGetter, a, ctx)

	self := a.ConstParam(typeName)
	sizeName := funcName(typeName, "get", f.Name, "size")
	cases := make([]dialect.Case, 0, len(f.Type.Enum.Variants))
	for _, v := range f.Type.Enum.Variants {
		size := variantSize(v)
		cases = append(cases, dialect.Case{Value: int(v.Tag), Comment: v.Name, Body: []string{a.Return(fmt.Sprintf("%d", size))}})
	}
	fmt.Fprintf(b, "%s\n", a.FuncOpen(sizeName, []dialect.Param{self}, a.SizeType()))
	b.WriteString(indentBlock(a.Switch(tag, cases, []string{a.ReportError(dialect.ErrInvalidTag, f.Name)}), 1))
	b.WriteString("\n")
	fmt.Fprintf(b, "%s\n\n", a.FuncClose())

	bodyName := funcName(typeName, "get", f.Name, "body")
	to := fmt.Sprintf("(%s + %s(%s))", offsetExpr, sizeName, self.Name)
	fmt.Fprintf(b, "%s\n", a.FuncOpen(bodyName, []dialect.Param{self}, a.RawViewType()))
	fmt.Fprintf(b, "\t%s\n", a.TailExpr(a.SubView(a.SelfData(self.Name), offsetExpr, to)))
	fmt.Fprintf(b, "%s\n\n", a.FuncClose())

	if f.SaveOffset {
		return
	}

	selfMut := a.MutParam(typeName)
	bodyParam := dialect.Param{Name: dialect.Escape(a, "body"), Type: a.RawViewType()}
	setBodyName := funcName(typeName, "set", f.Name, "body")
	wantSize := fmt.Sprintf("%s(%s)", sizeName, selfMut.Name)
	fmt.Fprintf(b, "%s\n", a.FuncOpen(setBodyName, []dialect.Param{selfMut, bodyParam}, ""))
	mismatch := a.IfNoElse(fmt.Sprintf("%s != %s", a.SelfLen(bodyParam.Name), wantSize), []string{a.ReportError(dialect.ErrBodySizeMismatch, f.Name)})
	b.WriteString(indentBlock(mismatch, 1))
	b.WriteString("\n")
	fmt.Fprintf(b, "\t// copy %s into %s[%s..]\n", bodyParam.Name, a.SelfData(selfMut.Name), offsetExpr)
	fmt.Fprintf(b, "%s\n\n", a.FuncClose())
}

func variantSize(v resolved.EnumVariant) int {
	if v.VariantType != nil && v.VariantType.Size.IsConst() {
		return v.VariantType.Size.Const
	}
	return 0
}

// enumSizeExpr builds the tag-keyed ternary chain validator.go/constructor.go
// inline in place of a named raw-mode size helper: "tag == v0.Tag ? size0 :
// tag == v1.Tag ? size1 : ... : 0", evaluated left to right over the
// variants in declaration order.
func enumSizeExpr(variants []resolved.EnumVariant, tagExpr string, a dialect.Adapter) string {
	out := "0"
	for i := len(variants) - 1; i >= 0; i-- {
		v := variants[i]
		cond := fmt.Sprintf("%s == %d", tagExpr, v.Tag)
		out = a.Ternary(cond, fmt.Sprintf("%d", variantSize(v)), out)
	}
	return out
}
