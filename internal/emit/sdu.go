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
	"github.com/unto-labs/abigen/internal/layout"
)

// sduAccessor emits a size-discriminated-union field's `_tag()` (computed
// from the bytes remaining in the buffer, not a stored value), `_size()`
// (the selected variant's expected_size), and one `_variant()` typed-view
// accessor per variant, plus that variant's setter (§4.4). A variant's
// setter copies a caller-supplied typed view's bytes in wholesale, since an
// SDU has no tag byte to rewrite: selecting a variant is purely a matter of
// how many bytes are present.
func sduAccessor(b *strings.Builder, typeName string, f *layout.FieldPlan, offsetExpr string, a dialect.Adapter) {
	self := a.ConstParam(typeName)
	available := fmt.Sprintf("(%s - %s)", a.SelfLen(self.Name), offsetExpr)

	tagName := funcName(typeName, "get", f.Name, "tag")
	cases := make([]dialect.Case, 0, len(f.Type.SDU.Variants))
	for _, v := range f.Type.SDU.Variants {
		cases = append(cases, dialect.Case{Value: v.ExpectedSize, Comment: v.Name, Body: []string{a.Return(fmt.Sprintf("%d", v.ExpectedSize))}})
	}
	fmt.Fprintf(b, "%s\n", a.FuncOpen(tagName, []dialect.Param{self}, a.SizeType()))
	fmt.Fprintf(b, "\t%s\n", a.Let(dialect.Escape(a, "available"), a.SizeType(), available))
	b.WriteString(indentBlock(a.Switch(dialect.Escape(a, "available"), cases, []string{a.ReportError(dialect.ErrNoMatchingVariant, f.Name)}), 1))
	b.WriteString("\n")
	fmt.Fprintf(b, "%s\n\n", a.FuncClose())

	sizeName := funcName(typeName, "get", f.Name, "size")
	fmt.Fprintf(b, "%s\n", a.FuncOpen(sizeName, []dialect.Param{self}, a.SizeType()))
	fmt.Fprintf(b, "\t%s\n", a.TailExpr(available))
	fmt.Fprintf(b, "%s\n\n", a.FuncClose())

	selfMut := a.MutParam(typeName)
	for _, v := range f.Type.SDU.Variants {
		variantName := funcName(typeName, "get", f.Name, v.Name)
		fmt.Fprintf(b, "%s\n", a.FuncOpen(variantName, []dialect.Param{self}, a.RawViewType()))
		fmt.Fprintf(b, "\t%s\n", a.TailExpr(a.SubView(a.SelfData(self.Name), offsetExpr, a.SelfLen(self.Name))))
		fmt.Fprintf(b, "%s\n\n", a.FuncClose())

		setVariantName := funcName(typeName, "set", f.Name, v.Name)
		bodyParam := dialect.Param{Name: dialect.Escape(a, "body"), Type: a.RawViewType()}
		fmt.Fprintf(b, "%s\n", a.FuncOpen(setVariantName, []dialect.Param{selfMut, bodyParam}, ""))
		mismatch := a.IfNoElse(fmt.Sprintf("%s != %d", a.SelfLen(bodyParam.Name), v.ExpectedSize), []string{a.ReportError(dialect.ErrBodySizeMismatch, f.Name)})
		b.WriteString(indentBlock(mismatch, 1))
		b.WriteString("\n")
		fmt.Fprintf(b, "\t// copy %s into %s[%s..]\n", bodyParam.Name, a.SelfData(selfMut.Name), offsetExpr)
		fmt.Fprintf(b, "%s\n\n", a.FuncClose())
	}
}
