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

// Package reftrack computes, for a struct's field list, the set of field
// names referenced by any sibling field's size or tag expression (spec.md
// §4.1's Reference-Tracker). Those fields become frozen constructor
// parameters (no setter is emitted for them, spec.md §4.4).
package reftrack

import (
	"github.com/unto-labs/abigen/internal/expr"
	"github.com/unto-labs/abigen/internal/resolved"
)

// Referenced returns the set of underscore-joined field-ref paths appearing
// in any Enum tag expression or non-constant Array size expression among
// fields, including one level of inline-nested Struct fields. This mirrors
// original_source's extract_referenced_fields exactly, including its
// one-level recursion into nested structs (it does not walk arbitrarily
// deep), rather than generalizing it.
func Referenced(fields []resolved.Field) map[string]bool {
	refs := make(map[string]bool)
	for _, f := range fields {
		switch f.Type.Kind {
		case resolved.KindEnum:
			collect(f.Type.Enum.TagExpression, refs)
		case resolved.KindArray:
			if !f.Type.Size.IsConst() {
				collect(f.Type.Array.SizeExpr, refs)
			}
		case resolved.KindStruct:
			for _, nested := range f.Type.Struct.Fields {
				switch nested.Type.Kind {
				case resolved.KindEnum:
					collect(nested.Type.Enum.TagExpression, refs)
				case resolved.KindArray:
					if !nested.Type.Size.IsConst() {
						collect(nested.Type.Array.SizeExpr, refs)
					}
				}
			}
		}
	}
	return refs
}

// collect walks e and records the joined path of every FieldRef leaf.
func collect(e *expr.Expr, refs map[string]bool) {
	if e == nil {
		return
	}
	expr.Walk(e, func(node *expr.Expr) {
		if node.Op == expr.OpFieldRef {
			refs[node.JoinedPath()] = true
		}
	})
}

// Primitives returns the primitive type of every field named in refs,
// including one level of inline-nested lookups (joined-path keyed, e.g.
// "header_count"), for use by expr.Context.FieldPrims when rendering in
// ModeRaw.
func Primitives(fields []resolved.Field, refs map[string]bool) map[string]expr.Primitive {
	out := make(map[string]expr.Primitive)
	record := func(joined string, t *resolved.Type) {
		if !refs[joined] || t.Kind != resolved.KindPrimitive {
			return
		}
		out[joined] = expr.Primitive{
			Bits:   t.Primitive.Size() * 8,
			Signed: t.Primitive.Signed(),
			Float:  t.Primitive.Float(),
		}
	}
	for _, f := range fields {
		record(f.Name, f.Type)
		if f.Type.Kind == resolved.KindStruct {
			for _, nested := range f.Type.Struct.Fields {
				record(f.Name+"_"+nested.Name, nested.Type)
			}
		}
	}
	return out
}
