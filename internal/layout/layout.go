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

// Package layout computes the Layout Calculus of spec.md §4.2: for a
// top-level struct, the ordered list of fields together with, for each
// field, the sum of terms that precede it (offset(i)) and its own
// contribution to that sum. Inline nested structs are flattened onto their
// parent, so a nested primitive's joined name ("header_count") appears as
// an ordinary field of the plan, matching the "transparent child accessors"
// behavior §4.2 requires.
package layout

import (
	"github.com/unto-labs/abigen/internal/expr"
	"github.com/unto-labs/abigen/internal/naming"
	"github.com/unto-labs/abigen/internal/reftrack"
	"github.com/unto-labs/abigen/internal/resolved"
)

// TermKind selects which of §4.2's five offset-summand shapes a field's
// byte-size term takes.
type TermKind int

const (
	// TermConst is a compile-time integer: a primitive, a constant-size
	// array or nested composite, or an enum whose variants are all one
	// size.
	TermConst TermKind = iota
	// TermSizeExpr is count * elem_size for a dynamic (non-jagged) array,
	// where count is CountExpr lowered in the current binding mode.
	TermSizeExpr
	// TermHelperCall is a call to a generated size helper: an enum or SDU
	// whose body length varies with a stored tag (or, for an SDU, with
	// the remaining buffer length), or a jagged array's walking `_size()`.
	TermHelperCall
)

// Term is one field's contribution to a struct's byte footprint.
type Term struct {
	Kind TermKind

	// TermConst.
	Const int

	// TermSizeExpr.
	CountExpr *expr.Expr
	ElemSize  int

	// TermHelperCall. HelperName is the full name of the function this
	// field's size is obtained from (naming.SizeHelperName /
	// naming.WalkHelperName already applied, e.g. "Log_get_entries_size").
	HelperName string
}

// FieldPlan is one emitted field: its flattened name, its resolved type,
// its own size Term, and whether a later field's size/tag expression reads
// it back from the buffer (forcing the validator to remember this field's
// offset under a named local rather than folding it into the running sum).
type FieldPlan struct {
	Name       string
	Type       *resolved.Type
	Term       Term
	SaveOffset bool

	// NestedParent is the flattened name of the inline struct this field
	// was flattened out of, or "" for a direct field of the top-level
	// struct.
	NestedParent string
}

// Plan is the full offset layout of one top-level struct.
type Plan struct {
	TypeName string
	Fields   []*FieldPlan

	// Constant is true when every field has a TermConst contribution, so
	// the struct's total size is known at generation time.
	Constant  bool
	ConstSize int
}

// PriorTerms returns the Terms of every field before index i, the operands
// of offset(i)'s summation.
func (p *Plan) PriorTerms(i int) []Term {
	out := make([]Term, 0, i)
	for _, f := range p.Fields[:i] {
		out = append(out, f.Term)
	}
	return out
}

// Build computes the Plan for a top-level KindStruct type.
func Build(t *resolved.Type) *Plan {
	flatName := naming.Flatten(t.Name)
	refs := reftrack.Referenced(t.Struct.Fields)

	p := &Plan{TypeName: flatName, Constant: true}
	total := 0
	walkFields(p, flatName, t.Struct.Fields, refs, "")
	for _, f := range p.Fields {
		if f.Term.Kind != TermConst {
			p.Constant = false
			break
		}
		total += f.Term.Const
	}
	if p.Constant {
		p.ConstSize = total
	}
	return p
}

func walkFields(p *Plan, flatName string, fields []resolved.Field, refs map[string]bool, nestedParent string) {
	for _, f := range fields {
		if f.Type.Kind == resolved.KindStruct && f.Type.IsNested() {
			// Flatten: the nested struct's own fields become fields of
			// the parent's plan, joined as "parent_child" (§4.2
			// "transparent child accessors"). refs was computed at the
			// top level and already folds in one level of nested
			// Enum/Array children by joined name, matching
			// reftrack.Referenced's one-level recursion.
			walkFields(p, flatName, f.Type.Struct.Fields, refs, joinNested(nestedParent, f.Name))
			continue
		}
		name := joinNested(nestedParent, f.Name)
		p.Fields = append(p.Fields, &FieldPlan{
			Name:         name,
			Type:         f.Type,
			Term:         fieldTerm(flatName, name, f.Type),
			SaveOffset:   refs[name],
			NestedParent: nestedParent,
		})
	}
}

func joinNested(parent, name string) string {
	if parent == "" {
		return name
	}
	return naming.Join(parent, name)
}

// fieldTerm classifies field name's byte-size contribution, using the
// already-computed resolved.Size classification as the authority (spec.md
// §3.1: the front-end, not the layout calculus, decides Const vs
// Variable) and dispatching on Kind only to decide *which* Variable shape
// applies.
func fieldTerm(structFlatName, fieldName string, t *resolved.Type) Term {
	if t.Size.IsConst() {
		return Term{Kind: TermConst, Const: t.Size.Const}
	}

	switch t.Kind {
	case resolved.KindEnum:
		return Term{Kind: TermHelperCall, HelperName: naming.SizeHelperName(structFlatName, fieldName)}
	case resolved.KindSDU:
		return Term{Kind: TermHelperCall, HelperName: naming.SizeHelperName(structFlatName, fieldName)}
	case resolved.KindArray:
		if t.Array.Jagged {
			return Term{Kind: TermHelperCall, HelperName: naming.WalkHelperName(structFlatName, fieldName)}
		}
		elemSize := t.Array.Element.Size.Const
		return Term{Kind: TermSizeExpr, CountExpr: t.Array.SizeExpr, ElemSize: elemSize}
	default:
		// A variable-size nested composite or TypeRef that was not
		// flattened (e.g. a TypeRef to a variable-size named type):
		// treat as an opaque helper call, the recursive-validate case
		// §4.3 step 6 names.
		return Term{Kind: TermHelperCall, HelperName: naming.SizeHelperName(structFlatName, fieldName)}
	}
}
