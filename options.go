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

package abigen

import (
	"github.com/unto-labs/abigen/internal/dialect"
	"github.com/unto-labs/abigen/internal/dialect/manual"
	"github.com/unto-labs/abigen/internal/dialect/owned"
)

// Dialect selects one of the two emission targets.
type Dialect int

const (
	// Manual is the manual-memory (C-like) dialect.
	Manual Dialect = iota
	// Owned is the ownership-checked (Rust-like) dialect.
	Owned
)

func (d Dialect) String() string {
	switch d {
	case Manual:
		return "manual"
	case Owned:
		return "owned"
	default:
		return "unknown"
	}
}

// profile is the resolved configuration an Option mutates, mirroring
// hyperpb.CompileOption's (*compiler) receiver shape.
type profile struct {
	dialects   []Dialect
	docComment bool
	backend    map[Dialect]dialect.Adapter
}

func defaultProfile() *profile {
	return &profile{
		dialects:   []Dialect{Manual, Owned},
		docComment: true,
		backend: map[Dialect]dialect.Adapter{
			Manual: manual.Adapter{},
			Owned:  owned.Adapter{},
		},
	}
}

// Option configures a Generate call.
type Option func(*profile)

// WithDialects restricts generation to the given dialects, in any order.
// The default is both.
func WithDialects(ds ...Dialect) Option {
	return func(p *profile) { p.dialects = append([]Dialect(nil), ds...) }
}

// WithDocComments controls whether emitted functions carry a doc comment
// banner. Default true.
func WithDocComments(enabled bool) Option {
	return func(p *profile) { p.docComment = enabled }
}

// WithBackend overrides the dialect.Adapter implementation used for d,
// mirroring compiler.Options.Backend's "give the backend an opportunity to"
// extension point: a caller may substitute a custom adapter (e.g. for a
// third dialect, or an instrumented one for testing) without this package
// needing to know about it.
func WithBackend(d Dialect, a dialect.Adapter) Option {
	return func(p *profile) {
		if p.backend == nil {
			p.backend = make(map[Dialect]dialect.Adapter)
		}
		p.backend[d] = a
	}
}

// Config is the YAML-loadable shape of a Profile, for test fixtures
// (SPEC_FULL.md §1, matching the teacher's use of gopkg.in/yaml.v3 for
// structured test data).
type Config struct {
	Dialects   []string `yaml:"dialects"`
	DocComment bool     `yaml:"doc_comments"`
}

// Options converts a loaded Config into the equivalent []Option.
func (c Config) Options() []Option {
	var opts []Option
	if len(c.Dialects) > 0 {
		var ds []Dialect
		for _, name := range c.Dialects {
			switch name {
			case "manual":
				ds = append(ds, Manual)
			case "owned":
				ds = append(ds, Owned)
			}
		}
		opts = append(opts, WithDialects(ds...))
	}
	opts = append(opts, WithDocComments(c.DocComment))
	return opts
}
