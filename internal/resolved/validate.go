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

import (
	"fmt"
	"sort"

	"github.com/unto-labs/abigen/internal/naming"
	"github.com/unto-labs/abigen/internal/typeorder"
)

// Validate checks the registry-wide invariants that span more than one
// type: every TypeRef target exists, the TypeRef graph has no cycle (an
// infinite byte footprint is impossible, spec.md §3.1), and every inline
// nested type's flattened "Parent_child" name is unique (invariant 6).
func (r *Registry) Validate() error {
	for _, t := range r.TopLevel() {
		if err := walkTypeRefs(t, func(target string) error {
			if _, ok := r.byName[target]; !ok {
				return fmt.Errorf("%w: %q references undefined type %q", ErrUnresolvedType, t.Name, target)
			}
			return nil
		}); err != nil {
			return err
		}
	}

	if err := r.checkAcyclic(); err != nil {
		return err
	}
	return r.checkFlattenedNamesUnique()
}

// walkTypeRefs calls visit for every TypeRef target name reachable from t,
// including nested struct/enum/SDU/union members, union variants, and
// array elements.
func walkTypeRefs(t *Type, visit func(target string) error) error {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case KindTypeRef:
		return visit(t.TypeRef)
	case KindArray:
		return walkTypeRefs(t.Array.Element, visit)
	case KindStruct:
		for _, f := range t.Struct.Fields {
			if err := walkTypeRefs(f.Type, visit); err != nil {
				return err
			}
		}
	case KindEnum:
		for _, v := range t.Enum.Variants {
			if err := walkTypeRefs(v.VariantType, visit); err != nil {
				return err
			}
		}
	case KindUnion:
		for _, v := range t.Union.Variants {
			if err := walkTypeRefs(v.Type, visit); err != nil {
				return err
			}
		}
	}
	return nil
}

// typeRefDeps returns the top-level type names that t directly depends on
// through a TypeRef anywhere in its definition.
func (r *Registry) typeRefDeps(name string) []string {
	t, ok := r.byName[name]
	if !ok {
		return nil
	}
	var deps []string
	_ = walkTypeRefs(t, func(target string) error {
		deps = append(deps, target)
		return nil
	})
	return deps
}

func (r *Registry) checkAcyclic() error {
	dag := typeorder.SortAll(r.order, func(name string) []string {
		return r.typeRefDeps(name)
	})
	for _, comp := range dag.Topological() {
		if comp.Cyclic() {
			members := append([]string(nil), comp.Members()...)
			sort.Strings(members)
			return fmt.Errorf("%w: %v", ErrCyclicTypeRef, members)
		}
	}
	return nil
}

func (r *Registry) checkFlattenedNamesUnique() error {
	seen := make(map[string]string) // flattened -> original
	var walk func(t *Type) error
	walk = func(t *Type) error {
		flat := naming.Flatten(t.Name)
		if prior, ok := seen[flat]; ok && prior != t.Name {
			return fmt.Errorf("%w: %q and %q both flatten to %q", ErrNameCollision, prior, t.Name, flat)
		}
		seen[flat] = t.Name
		if t.Kind == KindStruct {
			for _, f := range t.Struct.Fields {
				if f.Type.Kind == KindStruct && f.Type.IsNested() {
					if err := walk(f.Type); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
	for _, t := range r.TopLevel() {
		if err := walk(t); err != nil {
			return err
		}
	}
	return nil
}

// TopologicalOrder returns every registered top-level type such that a type
// referenced (via TypeRef) by another always appears before it. Used by
// both dialect emitters so a struct embedding a named type always sees that
// type already defined in the output (SPEC_FULL.md §3.4).
func (r *Registry) TopologicalOrder() ([]*Type, error) {
	dag := typeorder.SortAll(r.order, func(name string) []string {
		return r.typeRefDeps(name)
	})
	var out []*Type
	for _, comp := range dag.Topological() {
		if comp.Cyclic() {
			members := append([]string(nil), comp.Members()...)
			sort.Strings(members)
			return nil, fmt.Errorf("%w: %v", ErrCyclicTypeRef, members)
		}
		for _, name := range comp.Members() {
			out = append(out, r.byName[name])
		}
	}
	return out, nil
}
