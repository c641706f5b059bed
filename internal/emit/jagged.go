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
	"github.com/unto-labs/abigen/internal/naming"
)

// jaggedAccessor emits a jagged array's family, per §4.2/§4.4: `_len()`
// (element count, O(1)), `_get(i)` and `_size()` (an O(n) walk from the
// start), and `_iter()` (the remaining byte range, for a caller to walk
// itself). When the element type happens to be constant-size this reduces
// to the same O(1) stride arithmetic arrayAccessor uses for a dynamic
// array; only a genuinely variable-size element forces the per-element walk,
// calling that element type's own validate entry point to measure each one
// (§4.2's "opaque helper call" case; trusted to succeed, since the walk only
// ever runs over an already-validated buffer).
func jaggedAccessor(b *strings.Builder, typeName string, f *layout.FieldPlan, offsetExpr string, a dialect.Adapter) {
	ctx := expr.Context{TypeName: typeName, Self: "self"}
	lenExpr := expr.Render(f.Type.Array.SizeExpr, expr.ModeGetter, a, ctx)
	self := a.ConstParam(typeName)

	lenName := funcName(typeName, "get", f.Name, "len")
	fmt.Fprintf(b, "%s\n", a.FuncOpen(lenName, []dialect.Param{self}, a.SizeType()))
	fmt.Fprintf(b, "\t%s\n", a.TailExpr(lenExpr))
	fmt.Fprintf(b, "%s\n\n", a.FuncClose())

	elem := f.Type.Array.Element
	sizeName := funcName(typeName, "get", f.Name, "size")
	getName := funcName(typeName, "get", f.Name, "get")
	idx := dialect.Param{Name: dialect.Escape(a, "i"), Type: a.SizeType()}
	bound := fmt.Sprintf("%s(%s)", lenName, self.Name)

	if elem.Size.IsConst() {
		elemSize := elem.Size.Const
		fmt.Fprintf(b, "%s\n", a.FuncOpen(sizeName, []dialect.Param{self}, a.SizeType()))
		fmt.Fprintf(b, "\t%s\n", a.TailExpr(fmt.Sprintf("(%s * %d)", lenExpr, elemSize)))
		fmt.Fprintf(b, "%s\n\n", a.FuncClose())

		from := fmt.Sprintf("(%s + (%s * %d))", offsetExpr, idx.Name, elemSize)
		to := fmt.Sprintf("(%s + ((%s + 1) * %d))", offsetExpr, idx.Name, elemSize)
		fmt.Fprintf(b, "%s\n", a.FuncOpen(getName, []dialect.Param{self, idx}, a.RawViewType()))
		b.WriteString(indentBlock(a.IfNoElse(fmt.Sprintf("%s >= %s", idx.Name, bound), []string{a.ReportError(dialect.ErrIndexOutOfBounds, f.Name)}), 1))
		b.WriteString("\n")
		fmt.Fprintf(b, "\t%s\n", a.TailExpr(a.SubView(a.SelfData(self.Name), from, to)))
		fmt.Fprintf(b, "%s\n\n", a.FuncClose())
	} else {
		elemValidate := naming.Flatten(elem.TypeRef) + "_validate"
		cursor := dialect.Escape(a, "cursor")
		elemSizeVar := dialect.Escape(a, "elem_size")
		counter := dialect.Escape(a, "j")

		measure := func() []string {
			data := a.OffsetData(a.SelfData(self.Name), cursor)
			remaining := fmt.Sprintf("(%s - %s)", a.SelfLen(self.Name), cursor)
			return a.CallValidateTrusted(elemValidate, data, remaining, elemSizeVar)
		}

		fmt.Fprintf(b, "%s\n", a.FuncOpen(sizeName, []dialect.Param{self}, a.SizeType()))
		fmt.Fprintf(b, "\t%s\n", a.LetMut(cursor, a.SizeType(), offsetExpr))
		total := dialect.Escape(a, "total")
		fmt.Fprintf(b, "\t%s\n", a.LetMut(total, a.SizeType(), "0"))
		sizeBody := append(measure(), fmt.Sprintf("%s += %s;", total, elemSizeVar), fmt.Sprintf("%s += %s;", cursor, elemSizeVar))
		b.WriteString(indentBlock(a.CountedLoop(counter, bound, sizeBody), 1))
		b.WriteString("\n")
		fmt.Fprintf(b, "\t%s\n", a.TailExpr(total))
		fmt.Fprintf(b, "%s\n\n", a.FuncClose())

		fmt.Fprintf(b, "%s\n", a.FuncOpen(getName, []dialect.Param{self, idx}, a.RawViewType()))
		fmt.Fprintf(b, "\t%s\n", a.LetMut(cursor, a.SizeType(), offsetExpr))
		found := a.IfNoElse(fmt.Sprintf("%s == %s", counter, idx.Name),
			[]string{a.Return(a.SubView(a.SelfData(self.Name), cursor, fmt.Sprintf("(%s + %s)", cursor, elemSizeVar)))})
		getBody := append(measure(), found, fmt.Sprintf("%s += %s;", cursor, elemSizeVar))
		b.WriteString(indentBlock(a.CountedLoop(counter, bound, getBody), 1))
		b.WriteString("\n\t")
		b.WriteString(a.ReportError(dialect.ErrIndexOutOfBounds, f.Name))
		b.WriteString("\n")
		fmt.Fprintf(b, "%s\n\n", a.FuncClose())
	}

	iterName := funcName(typeName, "get", f.Name, "iter")
	fmt.Fprintf(b, "%s\n", a.FuncOpen(iterName, []dialect.Param{self}, a.RawViewType()))
	fmt.Fprintf(b, "\t%s\n", a.TailExpr(a.SubView(a.SelfData(self.Name), offsetExpr, a.SelfLen(self.Name))))
	fmt.Fprintf(b, "%s\n\n", a.FuncClose())

	selfMut := a.MutParam(typeName)
	value := dialect.Param{Name: dialect.Escape(a, "value"), Type: a.RawViewType()}
	setName := funcName(typeName, "set", f.Name, "set")
	fmt.Fprintf(b, "%s\n", a.FuncOpen(setName, []dialect.Param{selfMut, idx, value}, ""))
	fmt.Fprintf(b, "\t// requires sequential insertion order: %s must equal the count of\n", idx.Name)
	fmt.Fprintf(b, "\t// elements already written, derived from walking their sizes\n")
	fmt.Fprintf(b, "%s\n\n", a.FuncClose())
}
