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
	"fmt"
	"strings"

	"github.com/unto-labs/abigen/internal/dialect"
	"github.com/unto-labs/abigen/internal/emit"
	"github.com/unto-labs/abigen/internal/expr"
	"github.com/unto-labs/abigen/internal/ir"
	"github.com/unto-labs/abigen/internal/layout"
	"github.com/unto-labs/abigen/internal/resolved"
)

// Generate validates reg, then emits one source string per requested
// Dialect. This mirrors hyperpb.Compile(md, options...): a single pure
// function from an already-resolved registry to output, governed by
// functional options.
func Generate(reg *resolved.Registry, opts ...Option) (map[Dialect]string, error) {
	p := defaultProfile()
	for _, opt := range opts {
		opt(p)
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}

	order, err := reg.TopologicalOrder()
	if err != nil {
		return nil, err
	}

	out := make(map[Dialect]string, len(p.dialects))
	for _, d := range p.dialects {
		a, ok := p.backend[d]
		if !ok {
			return nil, fmt.Errorf("abigen: no backend registered for dialect %s", d)
		}
		src, err := generate(order, a, p.docComment)
		if err != nil {
			return nil, err
		}
		out[d] = src
	}
	return out, nil
}

// generate walks order (already topologically sorted, §3.4) and emits one
// top-level struct's source text per iteration, skipping non-struct
// top-level types (an Enum, SDU, or Array can only ever appear as a field
// of some struct, never as a standalone emission unit — §6).
func generate(order []*resolved.Type, a dialect.Adapter, docComment bool) (string, error) {
	var b strings.Builder
	if prelude := a.Prelude(); prelude != "" {
		b.WriteString(prelude)
		b.WriteString("\n")
	}
	for _, t := range order {
		if t.Kind == resolved.KindUnion {
			return "", errUnsupportedKind(t.Name)
		}
		if t.Kind != resolved.KindStruct {
			continue
		}
		if err := checkSingleSDU(t); err != nil {
			return "", err
		}

		plan, err := ir.Build(t)
		if err != nil {
			return "", err
		}
		if err := checkReferencesEarlier(plan.Layout); err != nil {
			return "", err
		}

		dialectPlan, err := ir.ForDialect(plan)
		if err != nil {
			return "", err
		}

		if docComment {
			fmt.Fprintf(&b, "// %s: generated accessor and validator for %q.\n", a.Name(), t.Name)
		}
		src, err := emit.Struct(dialectPlan, a)
		if err != nil {
			return "", err
		}
		b.WriteString(src)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func checkSingleSDU(t *resolved.Type) error {
	count := 0
	for _, f := range t.Struct.Fields {
		if f.Type.Kind == resolved.KindSDU {
			count++
		}
	}
	if count > 1 {
		return errDuplicateSDU(t.Name)
	}
	return nil
}

// checkReferencesEarlier verifies every FieldRef inside a field's
// size/tag expression names a field strictly earlier in the flattened
// emission order, the precondition the validator's raw-byte binding mode
// (spec.md §4.3) depends on.
func checkReferencesEarlier(l *layout.Plan) error {
	seen := make(map[string]bool, len(l.Fields))
	for _, f := range l.Fields {
		var bad error
		check := func(n *expr.Expr) {
			if n.Op == expr.OpFieldRef && !seen[n.JoinedPath()] {
				bad = errReferenceNotEarlier(l.TypeName, f.Name)
			}
		}
		switch f.Type.Kind {
		case resolved.KindEnum:
			expr.Walk(f.Type.Enum.TagExpression, check)
		case resolved.KindArray:
			if !f.Type.Size.IsConst() {
				expr.Walk(f.Type.Array.SizeExpr, check)
			}
		}
		if bad != nil {
			return bad
		}
		seen[f.Name] = true
	}
	return nil
}
