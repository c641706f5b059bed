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

package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unto-labs/abigen/internal/expr"
	"github.com/unto-labs/abigen/internal/ir"
	"github.com/unto-labs/abigen/internal/resolved"
)

func primitive(name string, p resolved.Primitive) resolved.Field {
	return resolved.Field{Name: name, Type: &resolved.Type{Name: name, Kind: resolved.KindPrimitive, Primitive: p, Size: resolved.ConstSize(p.Size())}}
}

func TestBuildRejectsNonStruct(t *testing.T) {
	t.Parallel()

	_, err := ir.Build(&resolved.Type{Name: "X", Kind: resolved.KindPrimitive, Primitive: resolved.U8})
	assert.Error(t, err)
}

func TestBuildRejectsNestedStruct(t *testing.T) {
	t.Parallel()

	_, err := ir.Build(&resolved.Type{Name: "Outer::inner", Kind: resolved.KindStruct, Struct: &resolved.StructType{}})
	assert.Error(t, err)
}

func TestBuildParamsOrderAndShape(t *testing.T) {
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
				{
					Name: "variant",
					Type: &resolved.Type{
						Name: "variant",
						Kind: resolved.KindSDU,
						Size: resolved.VariableSize(nil),
						SDU: &resolved.SDUType{
							Variants: []resolved.SDUVariant{{Name: "A", ExpectedSize: 4}},
						},
					},
				},
			},
		},
	}

	plan, err := ir.Build(s)
	require.NoError(t, err)
	require.Len(t, plan.Params, 2)
	assert.Equal(t, "count", plan.Params[0].Name)
	assert.Equal(t, resolved.U16, plan.Params[0].Primitive)
	assert.False(t, plan.Params[0].IsTag)

	assert.Equal(t, "variant_tag", plan.Params[1].Name)
	assert.True(t, plan.Params[1].IsTag)
}

func TestForDialectProducesIndependentCopy(t *testing.T) {
	t.Parallel()

	s := &resolved.Type{
		Name: "Header",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{primitive("version", resolved.U16)},
		},
	}
	plan, err := ir.Build(s)
	require.NoError(t, err)

	copyA, err := ir.ForDialect(plan)
	require.NoError(t, err)
	copyB, err := ir.ForDialect(plan)
	require.NoError(t, err)

	require.NotSame(t, copyA, copyB)
	require.NotSame(t, copyA.Layout, copyB.Layout)
	assert.Equal(t, copyA.Layout.TypeName, copyB.Layout.TypeName)

	copyA.Layout.Fields[0].Name = "mutated"
	assert.Equal(t, "version", copyB.Layout.Fields[0].Name)
	assert.Equal(t, "version", plan.Layout.Fields[0].Name)
}
