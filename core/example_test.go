// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/layoffgraph/core"
)

// ExampleGraph_Clusters groups companies connected by shared layoff events.
//
//	A───B───C      D───E
func ExampleGraph_Clusters() {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("D", "E")

	for i, c := range g.Clusters(core.WithSortedClusters()) {
		fmt.Printf("cluster %d: %s\n", i+1, strings.Join(c, " "))
	}

	// Output:
	// cluster 1: A B C
	// cluster 2: D E
}

// ExampleGraph_DegreeCentrality shows the hub of a star scoring 1.
func ExampleGraph_DegreeCentrality() {
	g := core.NewGraph()
	g.AddEdge("Hub", "X")
	g.AddEdge("Hub", "Y")

	c := g.DegreeCentrality()
	fmt.Printf("Hub=%.2f X=%.2f\n", c["Hub"], c["X"])

	// Output:
	// Hub=1.00 X=0.50
}
