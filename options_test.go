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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/unto-labs/abigen"
)

func TestDialectString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "manual", abigen.Manual.String())
	assert.Equal(t, "owned", abigen.Owned.String())
	assert.Equal(t, "unknown", abigen.Dialect(99).String())
}

func TestConfigOptionsFromYAML(t *testing.T) {
	t.Parallel()

	var cfg abigen.Config
	err := yaml.Unmarshal([]byte("dialects: [manual]\ndoc_comments: false\n"), &cfg)
	assert.NoError(t, err)
	assert.Equal(t, []string{"manual"}, cfg.Dialects)
	assert.False(t, cfg.DocComment)

	opts := cfg.Options()
	assert.Len(t, opts, 2)
}

func TestConfigOptionsEmptyDialectsKeepsDefault(t *testing.T) {
	t.Parallel()

	cfg := abigen.Config{DocComment: true}
	opts := cfg.Options()
	// Only the doc-comment option is appended when Dialects is empty; the
	// generator's own default-profile dialect list applies.
	assert.Len(t, opts, 1)
}

func TestConfigOptionsFromFixtureFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path       string
		dialects   []string
		docComment bool
	}{
		{"testdata/schemas/manual_only.yaml", []string{"manual"}, false},
		{"testdata/schemas/both_dialects.yaml", []string{"manual", "owned"}, true},
	}
	for _, tt := range tests {
		raw, err := os.ReadFile(tt.path)
		require.NoError(t, err, tt.path)

		var cfg abigen.Config
		require.NoError(t, yaml.Unmarshal(raw, &cfg), tt.path)
		assert.Equal(t, tt.dialects, cfg.Dialects, tt.path)
		assert.Equal(t, tt.docComment, cfg.DocComment, tt.path)
		assert.NotEmpty(t, cfg.Options(), tt.path)
	}
}
