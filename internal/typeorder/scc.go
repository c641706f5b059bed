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

// Package typeorder computes the topological order of a directed graph
// (here, the TypeRef dependency graph of a resolved.Registry) using
// Tarjan's strongly-connected-components algorithm, and reports cycles.
//
// A cycle in the TypeRef graph is never valid for this generator: a TypeRef
// field's bytes are the referenced type's layout embedded in place, so a
// cycle would mean an infinite byte footprint (spec.md §3.1's "Used for
// composition without inlining" note explains why TypeRef exists at all,
// but does not itself permit recursive composition).
package typeorder

import "slices"

// Graph exposes the outgoing edges (dependencies) of a node.
type Graph[Node comparable] func(Node) []Node

// DAG is the strongly-connected-component DAG of a directed graph, in
// topological order (a dependency always has a lower Index than its
// dependent).
type DAG[Node comparable] struct {
	keys       map[Node]int
	components []Component[Node]
}

// Component is a strongly connected component. A component with more than
// one member, or a single member with a self-edge, is a cycle.
type Component[Node comparable] struct {
	members []Node
	deps     []int // indices of components this one depends on
	selfEdge bool
}

// Sort computes the SCC DAG reachable from root.
func Sort[Node comparable](root Node, graph Graph[Node]) *DAG[Node] {
	return SortAll([]Node{root}, graph)
}

// SortAll computes the SCC DAG reachable from any of roots. A registry's
// top-level types rarely form a single connected graph, so this is the
// entry point resolved.Registry actually uses.
func SortAll[Node comparable](roots []Node, graph Graph[Node]) *DAG[Node] {
	d := &DAG[Node]{keys: make(map[Node]int)}
	t := &tarjan[Node]{
		graph:    graph,
		dag:      d,
		metadata: make(map[Node]*metadata),
	}
	for _, root := range roots {
		if _, visited := t.metadata[root]; !visited {
			t.rec(root)
		}
	}
	return d
}

// ForNode returns the component containing node, or nil if node was never
// visited.
func (d *DAG[Node]) ForNode(node Node) *Component[Node] {
	idx, ok := d.keys[node]
	if !ok {
		return nil
	}
	return &d.components[idx]
}

// Topological ranges over every component in dependency-first order.
func (d *DAG[Node]) Topological() []*Component[Node] {
	out := make([]*Component[Node], len(d.components))
	for i := range d.components {
		out[i] = &d.components[i]
	}
	return out
}

// Members returns this component's nodes. Order is unspecified beyond
// "reachability order discovered by Tarjan's algorithm"; callers that need
// a stable order should sort Members() themselves.
func (c *Component[Node]) Members() []Node { return c.members }

// Cyclic reports whether this component represents a cycle: more than one
// member, or a single member that depends on itself.
func (c *Component[Node]) Cyclic() bool {
	return len(c.members) > 1 || c.selfEdge
}

type tarjan[Node comparable] struct {
	graph Graph[Node]
	dag   *DAG[Node]

	index    int
	stack    []Node
	metadata map[Node]*metadata
}

type metadata struct {
	index, low int
	onStack    bool
}

func (t *tarjan[Node]) rec(node Node) *metadata {
	meta := &metadata{index: t.index, low: t.index, onStack: true}
	t.metadata[node] = meta
	t.index++
	offset := len(t.stack)
	t.stack = append(t.stack, node)

	selfEdge := false
	for _, dep := range t.graph(node) {
		if dep == node {
			selfEdge = true
		}
		m := t.metadata[dep]
		if m == nil {
			m = t.rec(dep)
			meta.low = min(meta.low, m.low)
			continue
		}
		if m.onStack {
			meta.low = min(meta.low, m.index)
		}
	}

	if meta.low != meta.index {
		return meta
	}

	// node is the root of its SCC: pop everything above offset.
	members := append([]Node(nil), t.stack[offset:]...)
	t.stack = t.stack[:offset]
	for _, m := range members {
		t.metadata[m].onStack = false
	}

	idx := len(t.dag.components)
	comp := Component[Node]{members: members, selfEdge: selfEdge && len(members) == 1}

	// Dependencies of this component: components reached by any member's
	// outgoing edge that lands in a different, already-finalized
	// component.
	seen := make(map[int]bool)
	for _, m := range members {
		for _, dep := range t.graph(m) {
			if depIdx, ok := t.dag.keys[dep]; ok && depIdx != idx && !seen[depIdx] {
				seen[depIdx] = true
				comp.deps = append(comp.deps, depIdx)
			}
		}
	}
	slices.Sort(comp.deps)

	t.dag.components = append(t.dag.components, comp)
	for _, m := range members {
		t.dag.keys[m] = idx
	}
	return meta
}
