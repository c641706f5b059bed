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
	"github.com/unto-labs/abigen/internal/resolved"
)

// arrayAccessor emits a fixed or dynamic (non-jagged) array field's `_len()`,
// bounds-checked `_get(i)`, element setter, and (for a `u8` element) a raw
// byte-slice accessor plus bulk slice setter (§4.4). Jagged arrays are
// handled separately by jaggedAccessor, since random indexing there is
// O(n) rather than O(1) and the accessor family differs accordingly.
func arrayAccessor(b *strings.Builder, typeName string, f *layout.FieldPlan, offsetExpr string, a dialect.Adapter) {
	if f.Type.Array.Jagged {
		jaggedAccessor(b, typeName, f, offsetExpr, a)
		return
	}

	ctx := expr.Context{TypeName: typeName, Self: "self"}
	lenExpr := arrayLen(f, a, ctx)
	self := a.ConstParam(typeName)
	lenName := funcName(typeName, "get", f.Name, "len")
	// When the size expression is exactly a FieldRef to "{field}_len", that
	// primitive's own getter already carries lenName, so none is emitted here.
	sizeExpr := f.Type.Array.SizeExpr
	if !naming.SuppressLenMethod(f.Name, sizeExpr.Op == expr.OpFieldRef, sizeExpr.Path) {
		fmt.Fprintf(b, "%s\n", a.FuncOpen(lenName, []dialect.Param{self}, a.SizeType()))
		fmt.Fprintf(b, "\t%s\n", a.TailExpr(lenExpr))
		fmt.Fprintf(b, "%s\n\n", a.FuncClose())
	}

	elemSize := f.Type.Array.Element.Size.Const
	elemPrim := elementPrimitive(f)
	idx := dialect.Param{Name: dialect.Escape(a, "i"), Type: a.SizeType()}
	from := fmt.Sprintf("(%s + (%s * %d))", offsetExpr, idx.Name, elemSize)
	to := fmt.Sprintf("(%s + ((%s + 1) * %d))", offsetExpr, idx.Name, elemSize)

	getName := funcName(typeName, "get", f.Name, "get")
	fmt.Fprintf(b, "%s\n", a.FuncOpen(getName, []dialect.Param{self, idx}, a.RawViewType()))
	bound := fmt.Sprintf("%s(%s)", lenName, self.Name)
	b.WriteString(indentBlock(a.IfNoElse(fmt.Sprintf("%s >= %s", idx.Name, bound), []string{a.ReportError(dialect.ErrIndexOutOfBounds, f.Name)}), 1))
	b.WriteString("\n")
	fmt.Fprintf(b, "\t%s\n", a.TailExpr(a.SubView(a.SelfData(self.Name), from, to)))
	fmt.Fprintf(b, "%s\n\n", a.FuncClose())

	isByteElement := f.Type.Array.Element.Kind == resolved.KindPrimitive &&
		(f.Type.Array.Element.Primitive == resolved.U8 || f.Type.Array.Element.Primitive == resolved.Char)
	selfMut := a.MutParam(typeName)
	if isByteElement {
		bytesName := funcName(typeName, "get", f.Name, "bytes")
		bytesTo := fmt.Sprintf("(%s + (%s * %d))", offsetExpr, lenExpr, elemSize)
		fmt.Fprintf(b, "%s\n", a.FuncOpen(bytesName, []dialect.Param{self}, a.RawViewType()))
		fmt.Fprintf(b, "\t%s\n", a.TailExpr(a.SubView(a.SelfData(self.Name), offsetExpr, bytesTo)))
		fmt.Fprintf(b, "%s\n\n", a.FuncClose())

		setBytesName := funcName(typeName, "set", f.Name, "bytes")
		bytesParam := dialect.Param{Name: dialect.Escape(a, "bytes"), Type: a.RawViewType()}
		fmt.Fprintf(b, "%s\n", a.FuncOpen(setBytesName, []dialect.Param{selfMut, bytesParam}, ""))
		fmt.Fprintf(b, "\t// copy %s into %s[%s..]\n", bytesParam.Name, a.SelfData(selfMut.Name), offsetExpr)
		fmt.Fprintf(b, "%s\n\n", a.FuncClose())
	}

	setGetName := funcName(typeName, "set", f.Name, "get")
	value := dialect.Param{Name: dialect.Escape(a, "value"), Type: a.PrimitiveType(elemPrim)}
	fmt.Fprintf(b, "%s\n", a.FuncOpen(setGetName, []dialect.Param{selfMut, idx, value}, ""))
	fmt.Fprintf(b, "\t%s\n", a.WriteLE(a.SelfData(selfMut.Name), from, value.Name, elemPrim))
	fmt.Fprintf(b, "%s\n\n", a.FuncClose())
}

// arrayLen renders the element count: a constant array's SizeExpr is
// already a compile-time literal, a dynamic array's is lowered through the
// same getter-mode rendering.
func arrayLen(f *layout.FieldPlan, a dialect.Adapter, ctx expr.Context) string {
	return expr.Render(f.Type.Array.SizeExpr, expr.ModeGetter, a, ctx)
}

func elementPrimitive(f *layout.FieldPlan) resolved.Primitive {
	if f.Type.Array.Element.Kind == resolved.KindPrimitive {
		return f.Type.Array.Element.Primitive
	}
	return resolved.U8
}
