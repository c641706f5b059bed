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

// Package naming centralizes the naming discipline spec.md §4.4 requires
// both dialect emitters to reproduce verbatim: "Parent::child" flattening,
// reserved-word escaping, variant naming, and the "_inner" suffix. Every
// identifier either dialect adapter or synthesizer emits is expected to
// flow through this package, so cross-dialect agreement (spec.md §8) is a
// consequence of sharing one naming function rather than two independently
// maintained copies.
package naming

import (
	"strings"

	"github.com/stoewer/go-strcase"
)

// Flatten applies invariant 6: "Parent::child" in the resolved model
// becomes "Parent_child" in every emitted dialect.
func Flatten(name string) string {
	return strings.ReplaceAll(name, "::", "_")
}

// Escape appends the dialect's reserved-word suffix to ident if ident
// collides with one of that dialect's keywords, per §4.4's "Naming
// discipline": "Reserved words in either dialect are escaped with a
// uniform suffix."
func Escape(ident string, reserved map[string]bool, suffix string) string {
	if reserved[ident] {
		return ident + suffix
	}
	return ident
}

// VariantTypeName builds the "Parent_Field_Variant" concatenation §4.4
// requires for an enum or SDU variant's own type name.
func VariantTypeName(parentFlat, field, variant string) string {
	return parentFlat + "_" + field + "_" + strcase.UpperCamelCase(variant)
}

// InnerSuffix appends the "_inner" suffix §4.4 mandates for a variant's
// wrapped inner type.
func InnerSuffix(name string) string { return name + "_inner" }

// SizeHelperName builds the "type_name_get_fieldname_size" helper identifier
// §4.2 names literally, for an enum, SDU, or opaque variable-size composite
// field.
func SizeHelperName(structFlatName, fieldName string) string {
	return structFlatName + "_get_" + fieldName + "_size"
}

// WalkHelperName builds a jagged array's walking `_size()` helper name
// (§4.2's "a call to a generated `*_size()` helper that walks every
// element").
func WalkHelperName(structFlatName, fieldName string) string {
	return structFlatName + "_get_" + fieldName + "_size"
}

// LenHelperName builds a dynamic array's `_len()` helper name (§4.2's "a
// call to a generated `*_len()` helper for dynamic arrays").
func LenHelperName(structFlatName, fieldName string) string {
	return structFlatName + "_get_" + fieldName + "_len"
}

// Join underscore-joins an ordered path of name segments, the canonical key
// shape used by the reference tracker and by getter-mode expression
// rendering (e.g. ["header", "count"] -> "header_count").
func Join(path ...string) string { return strings.Join(path, "_") }

// SuppressLenMethod implements the §9 "duplicate method names from
// collision with size-expression field names" rule: if a dynamic array
// field's size expression is exactly a FieldRef to "{field}_len", the
// natural `{field}_len()` accessor would collide with that primitive's own
// accessor, so the emitter must suppress the synthesized length method and
// inline the size expression at call sites instead.
func SuppressLenMethod(fieldName string, sizeExprIsFieldRef bool, sizeExprPath []string) bool {
	if !sizeExprIsFieldRef || len(sizeExprPath) != 1 {
		return false
	}
	return sizeExprPath[0] == fieldName+"_len"
}
