// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex queries and degree statistics.
//
// Determinism:
//   - Vertices() and Neighbors() return IDs sorted lexicographically ascending.

package core

import "sort"

// HasVertex reports whether id was mentioned by any AddEdge call.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// VertexCount returns the number of distinct companies in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Vertices returns every company name, sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Neighbors returns the neighbor IDs of id, sorted ascending.
//
// Returns ErrVertexNotFound when id is unknown. A vertex with a self-edge is
// included in its own neighbor list.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(nbs))
	for nid := range nbs {
		out = append(out, nid)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the size of id's neighbor set, or 0 for an unknown id.
// A self-edge contributes 1.
// Complexity: O(1).
func (g *Graph) Degree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// Degrees returns Degree for every vertex.
// Complexity: O(V).
func (g *Graph) Degrees() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]int, len(g.adjacency))
	for id, nbs := range g.adjacency {
		out[id] = len(nbs)
	}

	return out
}

// DegreeCentrality returns degree/(n-1) for every vertex, where n is the
// vertex count. When n <= 1 every value is 0.
//
// A vertex whose only neighbor is itself scores 1/(n-1); centrality is not
// clamped to 1 because the neighbor set may include the vertex itself.
// Complexity: O(V).
func (g *Graph) DegreeCentrality() map[string]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adjacency)
	out := make(map[string]float64, n)
	if n <= 1 {
		for id := range g.adjacency {
			out[id] = 0
		}
		return out
	}

	denom := float64(n - 1)
	for id, nbs := range g.adjacency {
		out[id] = float64(len(nbs)) / denom
	}

	return out
}
