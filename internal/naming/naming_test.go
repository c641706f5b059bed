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

package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unto-labs/abigen/internal/naming"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Header", naming.Flatten("Header"))
	assert.Equal(t, "Header_Flags", naming.Flatten("Header::Flags"))
	assert.Equal(t, "Outer_Middle_Inner", naming.Flatten("Outer::Middle::Inner"))
}

func TestEscape(t *testing.T) {
	t.Parallel()

	reserved := map[string]bool{"struct": true, "type": true}

	assert.Equal(t, "struct_field", naming.Escape("struct", reserved, "_field"))
	assert.Equal(t, "count", naming.Escape("count", reserved, "_field"))
}

func TestVariantTypeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Header_kind_TcpHeader", naming.VariantTypeName("Header", "kind", "tcp_header"))
}

func TestInnerSuffix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Header_kind_TcpHeader_inner", naming.InnerSuffix("Header_kind_TcpHeader"))
}

func TestHelperNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Header_get_body_size", naming.SizeHelperName("Header", "body"))
	assert.Equal(t, "Header_get_items_size", naming.WalkHelperName("Header", "items"))
	assert.Equal(t, "Header_get_items_len", naming.LenHelperName("Header", "items"))
}

func TestJoin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "header_count", naming.Join("header", "count"))
	assert.Equal(t, "count", naming.Join("count"))
	assert.Equal(t, "", naming.Join())
}

func TestSuppressLenMethod(t *testing.T) {
	t.Parallel()

	assert.True(t, naming.SuppressLenMethod("items", true, []string{"items_len"}))
	assert.False(t, naming.SuppressLenMethod("items", true, []string{"other_len"}))
	assert.False(t, naming.SuppressLenMethod("items", false, []string{"items_len"}))
	assert.False(t, naming.SuppressLenMethod("items", true, []string{"header", "items_len"}))
}
