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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unto-labs/abigen"
	"github.com/unto-labs/abigen/internal/resolved"
)

func headerRegistry(t *testing.T) *resolved.Registry {
	t.Helper()
	reg := resolved.NewRegistry()
	require.NoError(t, reg.Add(&resolved.Type{
		Name: "Header",
		Kind: resolved.KindStruct,
		Size: resolved.ConstSize(3),
		Struct: &resolved.StructType{
			Fields: []resolved.Field{
				{Name: "version", Type: &resolved.Type{Name: "version", Kind: resolved.KindPrimitive, Primitive: resolved.U16, Size: resolved.ConstSize(2)}},
				{Name: "flags", Type: &resolved.Type{Name: "flags", Kind: resolved.KindPrimitive, Primitive: resolved.U8, Size: resolved.ConstSize(1)}},
			},
		},
	}))
	return reg
}

func TestGenerateDefaultProducesBothDialects(t *testing.T) {
	t.Parallel()

	out, err := abigen.Generate(headerRegistry(t))
	require.NoError(t, err)
	require.Contains(t, out, abigen.Manual)
	require.Contains(t, out, abigen.Owned)
	assert.Contains(t, out[abigen.Manual], "Header_view")
	assert.Contains(t, out[abigen.Owned], "HeaderView")
}

func TestGenerateWithDialectsRestrictsOutput(t *testing.T) {
	t.Parallel()

	out, err := abigen.Generate(headerRegistry(t), abigen.WithDialects(abigen.Manual))
	require.NoError(t, err)
	assert.Len(t, out, 1)
	_, hasOwned := out[abigen.Owned]
	assert.False(t, hasOwned)
}

func TestGenerateWithDocCommentsToggle(t *testing.T) {
	t.Parallel()

	withComments, err := abigen.Generate(headerRegistry(t), abigen.WithDialects(abigen.Manual), abigen.WithDocComments(true))
	require.NoError(t, err)
	assert.Contains(t, withComments[abigen.Manual], "// manual:")

	withoutComments, err := abigen.Generate(headerRegistry(t), abigen.WithDialects(abigen.Manual), abigen.WithDocComments(false))
	require.NoError(t, err)
	assert.NotContains(t, withoutComments[abigen.Manual], "// manual:")
}

func TestGenerateFailsForUnregisteredDialect(t *testing.T) {
	t.Parallel()

	_, err := abigen.Generate(headerRegistry(t),
		abigen.WithDialects(abigen.Dialect(99)))
	assert.Error(t, err, "a dialect with no registered backend must fail clearly")
}
