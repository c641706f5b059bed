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

// Package resolved holds the canonical, already-resolved type model that
// the rest of this generator operates on. Nothing in this package parses a
// schema; it is the normal form a front-end (out of scope here) is expected
// to deliver.
package resolved

import "fmt"

// Kind is the closed set of tagged variants a Type can be. New kinds are
// never added dynamically; every switch over Kind in this repository is
// expected to be exhaustive.
type Kind int

const (
	KindPrimitive Kind = iota
	KindArray
	KindTypeRef
	KindStruct
	KindEnum
	KindSDU
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindArray:
		return "Array"
	case KindTypeRef:
		return "TypeRef"
	case KindStruct:
		return "Struct"
	case KindEnum:
		return "Enum"
	case KindSDU:
		return "SizeDiscriminatedUnion"
	case KindUnion:
		return "Union"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Primitive is one of the eleven wire primitives, plus the Char alias.
type Primitive int

const (
	U8 Primitive = iota
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F16
	F32
	F64
	// Char behaves exactly as U8 (an alias, per spec.md §3.1); it exists as
	// a distinct value only so dialect adapters can choose a different
	// surface type name (e.g. `char` vs `uint8_t`) for the same one-byte
	// wire representation.
	Char
)

// Size returns the primitive's constant wire size in bytes, looked up from
// the generated primitiveTable rather than a hand-maintained switch (see
// primitive_table.gen.go).
func (p Primitive) Size() int {
	if int(p) < 0 || int(p) >= len(primitiveTable) {
		panic(fmt.Sprintf("resolved: unknown primitive %d", int(p)))
	}
	return primitiveTable[p].bits / 8
}

// Signed reports whether p is a signed integral type.
func (p Primitive) Signed() bool { return primitiveTable[p].signed }

// Float reports whether p is a floating-point type.
func (p Primitive) Float() bool { return primitiveTable[p].float }

func (p Primitive) String() string {
	switch p {
	case U8:
		return "U8"
	case U16:
		return "U16"
	case U32:
		return "U32"
	case U64:
		return "U64"
	case I8:
		return "I8"
	case I16:
		return "I16"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case F16:
		return "F16"
	case F32:
		return "F32"
	case F64:
		return "F64"
	case Char:
		return "Char"
	default:
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
}
