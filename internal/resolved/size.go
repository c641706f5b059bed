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

// SizeClass distinguishes a field whose byte size is known at generation
// time from one that depends on instance contents (spec.md §3.1).
type SizeClass int

const (
	SizeConst SizeClass = iota
	SizeVariable
)

// Size is a field's size classification. For SizeVariable, Refs maps every
// field-ref path (joined with "_", e.g. "header_count") appearing in the
// governing size/tag expression to the primitive type needed to read it
// back from bytes (spec.md §3.1).
type Size struct {
	Class SizeClass
	Const int
	Refs  map[string]Primitive
}

// ConstSize builds a Size for a field with a fixed byte length.
func ConstSize(n int) Size { return Size{Class: SizeConst, Const: n} }

// VariableSize builds a Size for a field whose length depends on refs.
func VariableSize(refs map[string]Primitive) Size {
	return Size{Class: SizeVariable, Refs: refs}
}

// IsConst reports whether this size is known at generation time.
func (s Size) IsConst() bool { return s.Class == SizeConst }
