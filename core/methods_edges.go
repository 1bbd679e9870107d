// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge insertion and edge queries: AddEdge/HasEdge/EdgeCount.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

// AddEdge records an undirected relation between companies a and b.
//
// Steps:
//  1. Lock mu.
//  2. ensureVertex(a), ensureVertex(b).
//  3. adjacency[a][b] and adjacency[b][a] (a single entry when a == b).
//
// AddEdge never fails: any string is a valid key, repeated edges are
// idempotent and a self-edge makes the vertex its own neighbor.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ensureVertex(g, a)
	ensureVertex(g, b)
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
}

// HasEdge reports whether a and b are directly related.
// Symmetric by construction: HasEdge(a, b) == HasEdge(b, a).
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[a][b]

	return ok
}

// EdgeCount returns the number of distinct undirected edges.
// A self-edge counts once.
// Complexity: O(V + E).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var loops, ends int
	for id, nbs := range g.adjacency {
		if _, ok := nbs[id]; ok {
			loops++
			ends += len(nbs) - 1
			continue
		}
		ends += len(nbs)
	}

	return loops + ends/2
}

// ensureVertex creates the neighbor set for id if missing.
// Caller must hold mu for writing.
func ensureVertex(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]struct{})
	}
}
