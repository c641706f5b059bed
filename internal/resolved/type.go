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

package resolved

import (
	"strings"

	"github.com/unto-labs/abigen/internal/expr"
)

// Type is a ResolvedType (spec.md §3.1): a fully-qualified name, a kind, and
// a size classification. "Parent::child" is the model-level spelling of an
// inline nested type; flattening to "Parent_child" is strictly an emission
// concern (internal/naming), per invariant 6.
type Type struct {
	Name string
	Kind Kind
	Size Size

	// Exactly one of the following is populated, selected by Kind.
	Primitive Primitive
	Array     *ArrayType
	TypeRef   string
	Struct    *StructType
	Enum      *EnumType
	SDU       *SDUType
	Union     *UnionType
}

// IsNested reports whether this type's name is an inline-nested
// "Parent::child" name rather than a top-level name.
func (t *Type) IsNested() bool { return strings.Contains(t.Name, "::") }

// Parent returns the enclosing type's name for a nested type, and ok=false
// for a top-level type.
func (t *Type) Parent() (string, bool) {
	idx := strings.LastIndex(t.Name, "::")
	if idx < 0 {
		return "", false
	}
	return t.Name[:idx], true
}

// ArrayType is the payload of a KindArray Type (spec.md §3.1).
type ArrayType struct {
	Element  *Type
	SizeExpr *expr.Expr
	// Constant caches whether SizeExpr evaluates to a compile-time
	// constant byte length (size_constant_status).
	Constant bool
	// Jagged arrays have per-element variable size; random indexing is
	// O(n) (spec.md §4.2).
	Jagged bool
}

// Field is a ResolvedField: a name and a field type (spec.md §3.1).
type Field struct {
	Name string
	Type *Type
}

// StructType is the payload of a KindStruct Type: fields laid out
// contiguously with no padding (spec.md invariant 1).
type StructType struct {
	Fields []Field
}

// EnumVariant is one arm of a KindEnum Type.
type EnumVariant struct {
	Name        string
	Tag         uint8
	VariantType *Type
}

// EnumType is the payload of a KindEnum Type: a tagged union whose body
// immediately follows the tag location (spec.md invariant 2).
type EnumType struct {
	Variants      []EnumVariant
	TagExpression *expr.Expr
}

// SDUVariant is one arm of a KindSDU Type, distinguished by expected size
// rather than a stored tag.
type SDUVariant struct {
	Name         string
	ExpectedSize int
}

// SDUType is the payload of a KindSDU Type (spec.md §3.1): the variant is
// inferred from the available byte count remaining in the buffer.
type SDUType struct {
	Variants []SDUVariant
}

// UnionVariant is one arm of a KindUnion Type.
type UnionVariant struct {
	Name string
	Type *Type
}

// UnionType is a conventional overlay union, enumerated for completeness but
// out of scope for opaque-wrapper accessor/validator synthesis (spec.md
// §3.1; see SPEC_FULL.md's "Supplemented feature: Union").
type UnionType struct {
	Variants []UnionVariant
}
