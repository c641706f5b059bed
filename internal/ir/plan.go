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

// Package ir combines the offset Plan of internal/layout with the
// constructor parameter list spec.md §4.4 specifies, into the single
// hand-off artifact (§2's "IR") each dialect emitter consumes. A fresh deep
// copy is handed to each dialect so neither emitter's bookkeeping can leak
// into the other's (§5).
package ir

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"github.com/unto-labs/abigen/internal/layout"
	"github.com/unto-labs/abigen/internal/resolved"
)

// Param is one constructor parameter: either a referenced primitive field
// or an SDU variant tag, in the order §4.4 mandates.
type Param struct {
	Name string

	// Exactly one of the following describes this parameter.
	Primitive resolved.Primitive // referenced-primitive parameter
	IsTag     bool               // SDU {field}_tag parameter
}

// Plan is the combined IR for one top-level struct: its offset layout plus
// its constructor's parameter list.
type Plan struct {
	Type   *resolved.Type
	Layout *layout.Plan
	Params []Param
}

// Build computes the combined IR for a top-level (non-nested) KindStruct
// type. Nested structs have no constructor (§6: "no constructor; construction
// goes only through a top-level buffer"), so Build rejects them.
func Build(t *resolved.Type) (*Plan, error) {
	if t.Kind != resolved.KindStruct {
		return nil, fmt.Errorf("ir: %q is not a struct", t.Name)
	}
	if t.IsNested() {
		return nil, fmt.Errorf("ir: %q is an inline nested struct, which has no constructor", t.Name)
	}

	l := layout.Build(t)
	params := buildParams(t, l)
	return &Plan{Type: t, Layout: l, Params: params}, nil
}

// buildParams walks l.Fields in declaration order (flattened, so a nested
// primitive's joined name is used directly), collecting every referenced
// primitive, then appends one tag parameter per SDU field, matching §4.4's
// "buffer, then referenced primitives in declaration order, then
// {field}_tag: u8 per SDU field".
func buildParams(t *resolved.Type, l *layout.Plan) []Param {
	var params []Param
	for _, f := range l.Fields {
		if f.SaveOffset && f.Type.Kind == resolved.KindPrimitive {
			params = append(params, Param{Name: f.Name, Primitive: f.Type.Primitive})
		}
	}
	for _, f := range l.Fields {
		if f.Type.Kind == resolved.KindSDU {
			params = append(params, Param{Name: f.Name + "_tag", IsTag: true})
		}
	}
	return params
}

// ForDialect returns an independent deep copy of p, so the manual and owned
// emitters can each annotate/mutate their own copy (e.g. while resolving
// dialect-specific reserved-word escaping) without cross-contamination.
func ForDialect(p *Plan) (*Plan, error) {
	var out *Plan
	if err := deepcopy.Copy(&out, &p); err != nil {
		return nil, fmt.Errorf("ir: deep copy: %w", err)
	}
	return out, nil
}
