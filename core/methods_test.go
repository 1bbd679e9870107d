// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in the symmetry invariant of AddEdge.
//   - Validate vertex/edge queries and degree statistics.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/layoffgraph/core"
)

const (
	companyA = "Company A"
	companyB = "Company B"
	companyC = "Company C"
	companyD = "Company D"
	companyE = "Company E"
)

func TestGraph_AddEdgeSymmetric(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(companyA, companyB)
	g.AddEdge(companyB, companyC)
	g.AddEdge(companyC, companyD)

	for _, id := range []string{companyA, companyB, companyC, companyD} {
		assert.True(t, g.HasVertex(id), "vertex %q", id)
	}

	pairs := [][2]string{{companyA, companyB}, {companyB, companyC}, {companyC, companyD}}
	for _, p := range pairs {
		assert.True(t, g.HasEdge(p[0], p[1]), "%s→%s", p[0], p[1])
		assert.True(t, g.HasEdge(p[1], p[0]), "%s→%s", p[1], p[0])
	}

	assert.False(t, g.HasEdge(companyA, companyC))
	assert.False(t, g.HasEdge(companyA, "missing"))
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_AddEdgeIdempotent(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(companyA, companyB)
	g.AddEdge(companyB, companyA)
	g.AddEdge(companyA, companyB)

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.Degree(companyA))
	assert.Equal(t, 1, g.Degree(companyB))
}

func TestGraph_SelfEdge(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(companyA, companyA)

	require.True(t, g.HasVertex(companyA))
	assert.True(t, g.HasEdge(companyA, companyA))
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.Degree(companyA))

	nbs, err := g.Neighbors(companyA)
	require.NoError(t, err)
	assert.Equal(t, []string{companyA}, nbs)

	// Self-edge plus a regular edge.
	g.AddEdge(companyA, companyB)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, g.Degree(companyA))
}

func TestGraph_NeighborsSortedAndMissing(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(companyC, companyA)
	g.AddEdge(companyC, companyE)
	g.AddEdge(companyC, companyB)

	nbs, err := g.Neighbors(companyC)
	require.NoError(t, err)
	assert.Equal(t, []string{companyA, companyB, companyE}, nbs)

	_, err = g.Neighbors("nobody")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_VerticesSorted(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(companyD, companyE)
	g.AddEdge(companyB, companyA)

	assert.Equal(t, []string{companyA, companyB, companyD, companyE}, g.Vertices())
	assert.Empty(t, core.NewGraph().Vertices())
}

func TestGraph_KeysAreExact(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("acme", "Acme")
	g.AddEdge("Acme ", "acme")

	assert.Equal(t, 3, g.VertexCount(), "keys are case and whitespace sensitive")
}

func TestGraph_Degrees(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(companyA, companyB)
	g.AddEdge(companyA, companyC)
	g.AddEdge(companyA, companyD)

	deg := g.Degrees()
	assert.Equal(t, map[string]int{companyA: 3, companyB: 1, companyC: 1, companyD: 1}, deg)
	assert.Equal(t, 0, g.Degree("missing"))
}

func TestGraph_DegreeCentrality(t *testing.T) {
	tests := []struct {
		name  string
		edges [][2]string
		want  map[string]float64
	}{
		{
			name: "empty",
			want: map[string]float64{},
		},
		{
			name:  "single self-edge",
			edges: [][2]string{{companyA, companyA}},
			want:  map[string]float64{companyA: 0},
		},
		{
			name:  "star",
			edges: [][2]string{{companyA, companyB}, {companyA, companyC}, {companyA, companyD}},
			want:  map[string]float64{companyA: 1, companyB: 1.0 / 3, companyC: 1.0 / 3, companyD: 1.0 / 3},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			for _, e := range tc.edges {
				g.AddEdge(e[0], e[1])
			}
			got := g.DegreeCentrality()
			require.Len(t, got, len(tc.want))
			for id, w := range tc.want {
				assert.InDelta(t, w, got[id], 1e-12, id)
			}
		})
	}
}
