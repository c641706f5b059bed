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

package resolved_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unto-labs/abigen/internal/resolved"
)

func primitiveField(name string, p resolved.Primitive) resolved.Field {
	return resolved.Field{
		Name: name,
		Type: &resolved.Type{Name: name, Kind: resolved.KindPrimitive, Primitive: p, Size: resolved.ConstSize(p.Size())},
	}
}

func TestRegistryAddAndLookup(t *testing.T) {
	t.Parallel()

	r := resolved.NewRegistry()
	header := &resolved.Type{
		Name: "Header",
		Kind: resolved.KindStruct,
		Size: resolved.ConstSize(2),
		Struct: &resolved.StructType{
			Fields: []resolved.Field{primitiveField("version", resolved.U16)},
		},
	}
	require.NoError(t, r.Add(header))

	got, ok := r.Lookup("Header")
	assert.True(t, ok)
	assert.Same(t, header, got)

	_, ok = r.Lookup("Missing")
	assert.False(t, ok)
}

func TestRegistryAddRejectsNilAndDuplicate(t *testing.T) {
	t.Parallel()

	r := resolved.NewRegistry()
	assert.Error(t, r.Add(nil))

	t1 := &resolved.Type{Name: "A", Kind: resolved.KindPrimitive, Primitive: resolved.U8, Size: resolved.ConstSize(1)}
	require.NoError(t, r.Add(t1))
	assert.Error(t, r.Add(t1))
}

func TestRegistryAddRejectsNestedName(t *testing.T) {
	t.Parallel()

	r := resolved.NewRegistry()
	nested := &resolved.Type{Name: "Header::Flags", Kind: resolved.KindStruct}
	assert.Error(t, r.Add(nested))
}

func TestRegistryTopLevelPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	r := resolved.NewRegistry()
	names := []string{"C", "A", "B"}
	for _, n := range names {
		require.NoError(t, r.Add(&resolved.Type{Name: n, Kind: resolved.KindPrimitive, Primitive: resolved.U8, Size: resolved.ConstSize(1)}))
	}
	var got []string
	for _, t := range r.TopLevel() {
		got = append(got, t.Name)
	}
	assert.Equal(t, names, got)
}

func typeRef(name, target string) *resolved.Type {
	return &resolved.Type{Name: name, Kind: resolved.KindTypeRef, TypeRef: target}
}

func TestValidateUnresolvedTypeRef(t *testing.T) {
	t.Parallel()

	r := resolved.NewRegistry()
	s := &resolved.Type{
		Name: "Outer",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{{Name: "inner", Type: typeRef("inner", "Missing")}},
		},
	}
	require.NoError(t, r.Add(s))

	err := r.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, resolved.ErrUnresolvedType)
}

func TestValidateCyclicTypeRef(t *testing.T) {
	t.Parallel()

	r := resolved.NewRegistry()
	a := &resolved.Type{
		Name: "A",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{{Name: "b", Type: typeRef("b", "B")}},
		},
	}
	b := &resolved.Type{
		Name: "B",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{{Name: "a", Type: typeRef("a", "A")}},
		},
	}
	require.NoError(t, r.Add(a))
	require.NoError(t, r.Add(b))

	err := r.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, resolved.ErrCyclicTypeRef)
}

func TestValidateAcceptsAcyclicDiamond(t *testing.T) {
	t.Parallel()

	r := resolved.NewRegistry()
	leaf := &resolved.Type{Name: "Leaf", Kind: resolved.KindPrimitive, Primitive: resolved.U8, Size: resolved.ConstSize(1)}
	mid1 := &resolved.Type{
		Name: "Mid1", Kind: resolved.KindStruct,
		Struct: &resolved.StructType{Fields: []resolved.Field{{Name: "leaf", Type: typeRef("leaf", "Leaf")}}},
	}
	mid2 := &resolved.Type{
		Name: "Mid2", Kind: resolved.KindStruct,
		Struct: &resolved.StructType{Fields: []resolved.Field{{Name: "leaf", Type: typeRef("leaf", "Leaf")}}},
	}
	top := &resolved.Type{
		Name: "Top", Kind: resolved.KindStruct,
		Struct: &resolved.StructType{Fields: []resolved.Field{
			{Name: "mid1", Type: typeRef("mid1", "Mid1")},
			{Name: "mid2", Type: typeRef("mid2", "Mid2")},
		}},
	}
	require.NoError(t, r.Add(leaf))
	require.NoError(t, r.Add(mid1))
	require.NoError(t, r.Add(mid2))
	require.NoError(t, r.Add(top))

	assert.NoError(t, r.Validate())

	order, err := r.TopologicalOrder()
	require.NoError(t, err)

	indexOf := func(name string) int {
		for i, t := range order {
			if t.Name == name {
				return i
			}
		}
		t.Fatalf("type %q missing from order", name)
		return -1
	}
	assert.Less(t, indexOf("Leaf"), indexOf("Mid1"))
	assert.Less(t, indexOf("Leaf"), indexOf("Mid2"))
	assert.Less(t, indexOf("Mid1"), indexOf("Top"))
	assert.Less(t, indexOf("Mid2"), indexOf("Top"))
}

func TestValidateFlattenedNameCollision(t *testing.T) {
	t.Parallel()

	r := resolved.NewRegistry()
	require.NoError(t, r.Add(&resolved.Type{Name: "A_b", Kind: resolved.KindPrimitive, Primitive: resolved.U8, Size: resolved.ConstSize(1)}))
	require.NoError(t, r.Add(&resolved.Type{
		Name: "A",
		Kind: resolved.KindStruct,
		Struct: &resolved.StructType{
			Fields: []resolved.Field{
				{Name: "b", Type: &resolved.Type{Name: "A::b", Kind: resolved.KindStruct, Struct: &resolved.StructType{}}},
			},
		},
	}))

	err := r.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, resolved.ErrNameCollision)
}

func TestTopologicalOrderPropagatesCycleError(t *testing.T) {
	t.Parallel()

	r := resolved.NewRegistry()
	require.NoError(t, r.Add(typeRef("A", "A")))

	_, err := r.TopologicalOrder()
	require.Error(t, err)
	assert.ErrorIs(t, err, resolved.ErrCyclicTypeRef)
}
