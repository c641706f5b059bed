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

package resolved

import "fmt"

// Registry is the name-indexed table of top-level ResolvedTypes a
// generation run operates on (spec.md §3.4). It holds no identity beyond
// each type's fully-qualified name, and is held immutable for the duration
// of a run once built.
type Registry struct {
	byName map[string]*Type
	order  []string // insertion order, for deterministic iteration
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Type)}
}

// Add registers a top-level type. It is an error to add a nested
// ("Parent::child") name directly; nested types are reachable only through
// their parent's Struct.Fields.
func (r *Registry) Add(t *Type) error {
	if t == nil {
		return fmt.Errorf("resolved: cannot add a nil type")
	}
	if t.IsNested() {
		return fmt.Errorf("resolved: %q is a nested type name; only top-level types may be registered directly", t.Name)
	}
	if _, exists := r.byName[t.Name]; exists {
		return fmt.Errorf("resolved: duplicate top-level type %q", t.Name)
	}
	r.byName[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Lookup returns the top-level type registered under name, if any.
func (r *Registry) Lookup(name string) (*Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// TopLevel returns every registered type, in the order it was added.
func (r *Registry) TopLevel() []*Type {
	out := make([]*Type, len(r.order))
	for i, name := range r.order {
		out[i] = r.byName[name]
	}
	return out
}
