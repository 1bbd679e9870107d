// SPDX-License-Identifier: MIT

package core

import "sort"

// Clusters partitions every known company into maximal connected components.
//
// Implementation:
//   - Stage 1: Snapshot vertex IDs under the read lock.
//   - Stage 2: For each unvisited vertex, start a new cluster and walk its
//     component with an explicit stack (no recursion, so long chains cannot
//     exhaust the goroutine stack).
//   - Stage 3: Optionally sort (WithSortedClusters).
//
// A vertex is marked visited before it is pushed, so self-edges and cycles
// never re-enter the stack. Each vertex appears in exactly one cluster.
//
// Without WithSortedClusters both cluster order and member order follow map
// iteration and must be treated as unordered.
//
// Complexity: Time O(V + E), Memory O(V).
func (g *Graph) Clusters(opts ...ClusterOption) [][]string {
	var o clusterOptions
	for _, opt := range opts {
		opt(&o)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	visited := make(map[string]bool, len(g.adjacency))
	clusters := make([][]string, 0)

	var stack []string
	for start := range g.adjacency {
		if visited[start] {
			continue
		}

		visited[start] = true
		if o.onVisit != nil {
			o.onVisit(start)
		}
		cluster := []string{start}
		stack = append(stack[:0], start)

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for nid := range g.adjacency[top] {
				if visited[nid] {
					continue
				}
				visited[nid] = true
				if o.onVisit != nil {
					o.onVisit(nid)
				}
				cluster = append(cluster, nid)
				stack = append(stack, nid)
			}
		}

		clusters = append(clusters, cluster)
	}

	if o.sorted {
		sortClusters(clusters)
	}

	return clusters
}

// sortClusters sorts members of each cluster and then the clusters themselves
// by size descending, ties broken by first member ascending.
func sortClusters(clusters [][]string) {
	for _, c := range clusters {
		sort.Strings(c)
	}
	sort.Slice(clusters, func(i, j int) bool {
		if len(clusters[i]) != len(clusters[j]) {
			return len(clusters[i]) > len(clusters[j])
		}
		return clusters[i][0] < clusters[j][0]
	})
}
