// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/layoffgraph/core"
)

// TestGraph_ConcurrentReads runs query methods from many goroutines once the
// graph is built. Meant to be run with -race.
func TestGraph_ConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i%10))
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, g.Clusters(), 10)
			assert.Equal(t, 100, g.VertexCount())
			_ = g.DegreeCentrality()
		}()
	}
	wg.Wait()
}
