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

package abigen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unto-labs/abigen"
	"github.com/unto-labs/abigen/internal/expr"
	"github.com/unto-labs/abigen/internal/resolved"
)

func TestGenerateReportsUnresolvedTypeRef(t *testing.T) {
	t.Parallel()

	reg := resolved.NewRegistry()
	err := reg.Add(&resolved.Type{
		Name: "Outer",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{{Name: "inner", Type: &resolved.Type{Kind: resolved.KindTypeRef, TypeRef: "Missing"}}},
		},
	})
	assert.NoError(t, err)

	_, err = abigen.Generate(reg)
	assert.Error(t, err)
	assert.ErrorIs(t, err, resolved.ErrUnresolvedType)
}

func TestGenerateReportsDuplicateSDU(t *testing.T) {
	t.Parallel()

	sduField := func(name string) resolved.Field {
		return resolved.Field{
			Name: name,
			Type: &resolved.Type{
				Name: name, Kind: resolved.KindSDU, Size: resolved.VariableSize(nil),
				SDU: &resolved.SDUType{Variants: []resolved.SDUVariant{{Name: "A", ExpectedSize: 4}}},
			},
		}
	}
	reg := resolved.NewRegistry()
	assert.NoError(t, reg.Add(&resolved.Type{
		Name: "Bad",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{sduField("first"), sduField("second")},
		},
	}))

	_, err := abigen.Generate(reg)
	assert.Error(t, err)
	assert.ErrorIs(t, err, abigen.ErrDuplicateSDU)
}

func TestGenerateReportsReferenceNotEarlier(t *testing.T) {
	t.Parallel()

	reg := resolved.NewRegistry()
	assert.NoError(t, reg.Add(&resolved.Type{
		Name: "Bad",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{
				{
					Name: "body",
					Type: &resolved.Type{
						Name: "body", Kind: resolved.KindArray,
						Size: resolved.VariableSize(map[string]resolved.Primitive{"count": resolved.U16}),
						Array: &resolved.ArrayType{
							Element:  &resolved.Type{Kind: resolved.KindPrimitive, Primitive: resolved.U8, Size: resolved.ConstSize(1)},
							SizeExpr: expr.Field("count"),
						},
					},
				},
				{Name: "count", Type: &resolved.Type{Name: "count", Kind: resolved.KindPrimitive, Primitive: resolved.U16, Size: resolved.ConstSize(2)}},
			},
		},
	}))

	_, err := abigen.Generate(reg)
	assert.Error(t, err)
	assert.ErrorIs(t, err, abigen.ErrReferenceNotEarlier)
}

func TestGenErrorUnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	reg := resolved.NewRegistry()
	assert.NoError(t, reg.Add(&resolved.Type{Name: "U", Kind: resolved.KindUnion, Union: &resolved.UnionType{}}))

	_, err := abigen.Generate(reg)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, abigen.ErrUnsupportedKind))
	assert.Contains(t, err.Error(), "abigen:")
	assert.Contains(t, err.Error(), "U")
}
