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

package owned_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unto-labs/abigen/internal/dialect"
	"github.com/unto-labs/abigen/internal/dialect/owned"
	"github.com/unto-labs/abigen/internal/expr"
	"github.com/unto-labs/abigen/internal/resolved"
)

func TestName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "owned", owned.Adapter{}.Name())
}

func TestReadWriteLE(t *testing.T) {
	t.Parallel()

	a := owned.Adapter{}
	assert.Equal(t, "u16::from_le_bytes(data[4..4 + 2].try_into().unwrap())", a.ReadLE("data", "4", resolved.U16))
	assert.Contains(t, a.WriteLE("data", "offset", "v", resolved.I32), "copy_from_slice")
}

func TestSubView(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "&data[4..8]", owned.Adapter{}.SubView("data", "4", "8"))
}

func TestReportErrorDistinctPerKind(t *testing.T) {
	t.Parallel()

	a := owned.Adapter{}
	seen := make(map[string]bool)
	for _, k := range []dialect.ErrorKind{
		dialect.ErrBufferTooSmall, dialect.ErrInvalidTag, dialect.ErrNoMatchingVariant,
		dialect.ErrBodySizeMismatch, dialect.ErrIndexOutOfBounds,
	} {
		out := a.ReportError(k, "field")
		assert.False(t, seen[out], "duplicate error rendering for %s", k)
		seen[out] = true
		assert.Contains(t, out, "return Err(")
	}
}

func TestViewDecls(t *testing.T) {
	t.Parallel()

	a := owned.Adapter{}
	assert.Contains(t, a.ViewDecl("Header"), "HeaderView")
	assert.Contains(t, a.MutViewDecl("Header"), "HeaderViewMut")
}

func TestReservedWordsEscaped(t *testing.T) {
	t.Parallel()

	a := owned.Adapter{}
	assert.True(t, a.Reserved("struct"))
	assert.True(t, a.Reserved("dyn"))
	assert.False(t, a.Reserved("count"))
	assert.Equal(t, "struct_field", dialect.Escape(a, "struct"))
}

func TestTokensGetterAndPopcount(t *testing.T) {
	t.Parallel()

	a := owned.Adapter{}
	assert.Equal(t, "Header_get_count(self)", a.Getter("Header", "count", "self"))
	assert.Equal(t, "(x).count_ones()", a.Popcount("x"))
}

func TestFuncOpenIsPubFn(t *testing.T) {
	t.Parallel()

	a := owned.Adapter{}
	got := a.FuncOpen("Header_get_count", []dialect.Param{a.ConstParam("Header")}, "u32")
	assert.Equal(t, "pub fn Header_get_count(self: &HeaderView<'_>) -> u32 {", got)
}

func TestTokensIntLiteral(t *testing.T) {
	t.Parallel()

	a := owned.Adapter{}
	assert.Equal(t, "7", a.IntLiteral(expr.Literal{Bits: 8, Value: 7}))
	assert.Equal(t, "-1", a.IntLiteral(expr.Literal{Bits: 8, Signed: true, Value: 0xff}))
}
