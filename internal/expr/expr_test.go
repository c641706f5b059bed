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

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unto-labs/abigen/internal/expr"
)

func TestLiteralInt64SignedWidths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(-1), expr.LitI8(-1).Lit.Int64())
	assert.Equal(t, int64(-1), expr.LitI16(-1).Lit.Int64())
	assert.Equal(t, int64(-1), expr.LitI32(-1).Lit.Int64())
	assert.Equal(t, int64(-1), expr.LitI64(-1).Lit.Int64())
	assert.Equal(t, int64(255), expr.LitU8(255).Lit.Int64())
}

func TestFieldJoinedAndDottedPath(t *testing.T) {
	t.Parallel()

	f := expr.Field("header", "count")
	assert.Equal(t, "header_count", f.JoinedPath())
	assert.Equal(t, "header.count", f.DottedPath())

	single := expr.Field("count")
	assert.Equal(t, "count", single.JoinedPath())
	assert.Equal(t, "count", single.DottedPath())
}

func TestIsBinaryIsUnary(t *testing.T) {
	t.Parallel()

	assert.True(t, expr.IsBinary(expr.OpAdd))
	assert.False(t, expr.IsBinary(expr.OpNeg))
	assert.True(t, expr.IsUnary(expr.OpNeg))
	assert.False(t, expr.IsUnary(expr.OpAdd))
}

func TestUnsupportedOps(t *testing.T) {
	t.Parallel()

	for _, op := range []expr.Op{expr.OpPow, expr.OpSizeOf, expr.OpAlignOf, expr.OpLeftShift, expr.OpRightShift} {
		assert.True(t, expr.Unsupported(op), op.String())
	}
	assert.False(t, expr.Unsupported(expr.OpAdd))
}

func TestOpString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Add", expr.OpAdd.String())
	assert.Contains(t, expr.Op(999).String(), "Op(999)")
}

func TestWalkVisitsEveryNode(t *testing.T) {
	t.Parallel()

	e := expr.Add(expr.Field("a"), expr.Neg(expr.LitU8(3)))
	var visited []expr.Op
	expr.Walk(e, func(n *expr.Expr) { visited = append(visited, n.Op) })
	assert.Equal(t, []expr.Op{expr.OpAdd, expr.OpFieldRef, expr.OpNeg, expr.OpLiteral}, visited)
}

func TestWalkNilIsNoOp(t *testing.T) {
	t.Parallel()

	called := false
	expr.Walk(nil, func(*expr.Expr) { called = true })
	assert.False(t, called)
}
