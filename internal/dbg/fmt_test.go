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

package dbg_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unto-labs/abigen/internal/dbg"
)

func TestFprintfIsLazy(t *testing.T) {
	t.Parallel()

	called := false
	f := dbg.Fprintf("calls: %d", func() int { called = true; return 1 }())
	assert.True(t, called, "arguments to Fprintf are evaluated eagerly, only the Sprintf call is lazy")
	assert.Equal(t, "calls: 1", fmt.Sprintf("%v", f))
}

func TestFprintfNonVVerb(t *testing.T) {
	t.Parallel()

	f := dbg.Fprintf("x")
	assert.Contains(t, fmt.Sprintf("%d", f), "%d(")
}

func TestDict(t *testing.T) {
	t.Parallel()

	got := fmt.Sprintf("%v", dbg.Dict("header", "a", 1, "b", 2))
	assert.Equal(t, "header{a: 1, b: 2}", got)
}

func TestDictEmpty(t *testing.T) {
	t.Parallel()

	got := fmt.Sprintf("%v", dbg.Dict("header"))
	assert.Equal(t, "header{}", got)
}

func TestValueSetGet(t *testing.T) {
	t.Parallel()

	var v dbg.Value[int]
	v.Set(42)
	assert.Equal(t, 42, *v.Get())
	assert.Equal(t, "42", fmt.Sprintf("%v", v))
}
