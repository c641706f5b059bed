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

package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unto-labs/abigen/internal/expr"
	"github.com/unto-labs/abigen/internal/layout"
	"github.com/unto-labs/abigen/internal/resolved"
)

func primitive(name string, p resolved.Primitive) resolved.Field {
	return resolved.Field{Name: name, Type: &resolved.Type{Name: name, Kind: resolved.KindPrimitive, Primitive: p, Size: resolved.ConstSize(p.Size())}}
}

func TestBuildConstantStruct(t *testing.T) {
	t.Parallel()

	s := &resolved.Type{
		Name: "Header",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{
				primitive("version", resolved.U16),
				primitive("flags", resolved.U8),
			},
		},
	}
	p := layout.Build(s)

	assert.Equal(t, "Header", p.TypeName)
	require.Len(t, p.Fields, 2)
	assert.True(t, p.Constant)
	assert.Equal(t, 3, p.ConstSize)
	assert.Equal(t, layout.TermConst, p.Fields[0].Term.Kind)
	assert.Equal(t, 2, p.Fields[0].Term.Const)
	assert.Equal(t, layout.TermConst, p.Fields[1].Term.Kind)
	assert.Equal(t, 1, p.Fields[1].Term.Const)
}

func TestBuildDynamicArrayUsesSizeExprTerm(t *testing.T) {
	t.Parallel()

	s := &resolved.Type{
		Name: "Packet",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{
				primitive("count", resolved.U16),
				{
					Name: "body",
					Type: &resolved.Type{
						Name: "body",
						Kind: resolved.KindArray,
						Size: resolved.VariableSize(map[string]resolved.Primitive{"count": resolved.U16}),
						Array: &resolved.ArrayType{
							Element:  &resolved.Type{Kind: resolved.KindPrimitive, Primitive: resolved.U8, Size: resolved.ConstSize(1)},
							SizeExpr: expr.Field("count"),
						},
					},
				},
			},
		},
	}
	p := layout.Build(s)

	require.Len(t, p.Fields, 2)
	assert.False(t, p.Constant)
	assert.True(t, p.Fields[0].SaveOffset, "count is referenced by body's size expr")
	assert.False(t, p.Fields[1].SaveOffset)

	bodyTerm := p.Fields[1].Term
	assert.Equal(t, layout.TermSizeExpr, bodyTerm.Kind)
	assert.Equal(t, 1, bodyTerm.ElemSize)
	assert.Equal(t, expr.OpFieldRef, bodyTerm.CountExpr.Op)
}

func TestBuildJaggedArrayUsesHelperCall(t *testing.T) {
	t.Parallel()

	s := &resolved.Type{
		Name: "Log",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{
				{
					Name: "entries",
					Type: &resolved.Type{
						Name: "entries",
						Kind: resolved.KindArray,
						Size: resolved.VariableSize(nil),
						Array: &resolved.ArrayType{
							Element: &resolved.Type{Kind: resolved.KindPrimitive, Primitive: resolved.U8, Size: resolved.ConstSize(1)},
							Jagged:  true,
						},
					},
				},
			},
		},
	}
	p := layout.Build(s)

	require.Len(t, p.Fields, 1)
	assert.Equal(t, layout.TermHelperCall, p.Fields[0].Term.Kind)
	assert.Equal(t, "Log_get_entries_size", p.Fields[0].Term.HelperName)
}

func TestBuildEnumUsesHelperCallWhenVariable(t *testing.T) {
	t.Parallel()

	s := &resolved.Type{
		Name: "Frame",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{
				primitive("kind", resolved.U8),
				{
					Name: "payload",
					Type: &resolved.Type{
						Name: "payload",
						Kind: resolved.KindEnum,
						Size: resolved.VariableSize(map[string]resolved.Primitive{"kind": resolved.U8}),
						Enum: &resolved.EnumType{TagExpression: expr.Field("kind")},
					},
				},
			},
		},
	}
	p := layout.Build(s)

	assert.True(t, p.Fields[0].SaveOffset)
	assert.Equal(t, layout.TermHelperCall, p.Fields[1].Term.Kind)
	assert.Equal(t, "Frame_get_payload_size", p.Fields[1].Term.HelperName)
}

func TestBuildFlattensInlineNestedStruct(t *testing.T) {
	t.Parallel()

	inner := &resolved.Type{
		Name: "Outer::inner",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{primitive("a", resolved.U8), primitive("b", resolved.U16)},
		},
	}
	s := &resolved.Type{
		Name: "Outer",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{{Name: "inner", Type: inner}},
		},
	}
	p := layout.Build(s)

	require.Len(t, p.Fields, 2)
	assert.Equal(t, "inner_a", p.Fields[0].Name)
	assert.Equal(t, "inner_b", p.Fields[1].Name)
	assert.Equal(t, "inner", p.Fields[0].NestedParent)
	assert.True(t, p.Constant)
	assert.Equal(t, 3, p.ConstSize)
}

func TestPriorTerms(t *testing.T) {
	t.Parallel()

	s := &resolved.Type{
		Name: "Three",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{
				primitive("a", resolved.U8),
				primitive("b", resolved.U16),
				primitive("c", resolved.U32),
			},
		},
	}
	p := layout.Build(s)

	assert.Empty(t, p.PriorTerms(0))
	require.Len(t, p.PriorTerms(1), 1)
	assert.Equal(t, 1, p.PriorTerms(1)[0].Const)
	require.Len(t, p.PriorTerms(2), 2)
	assert.Equal(t, 2, p.PriorTerms(2)[1].Const)
}
