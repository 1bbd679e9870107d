// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/layoffgraph/core"
)

// BenchmarkClusters_Chain10000 measures Clusters on a single 10,000-vertex chain.
// Complexity: O(V + E) per iteration.
func BenchmarkClusters_Chain10000(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 10000; i++ {
		g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1))
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.Clusters()
	}
}

// BenchmarkClusters_Islands measures Clusters on 5,000 disjoint pairs.
func BenchmarkClusters_Islands(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 5000; i++ {
		g.AddEdge(fmt.Sprintf("L%d", i), fmt.Sprintf("R%d", i))
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.Clusters()
	}
}
