// SPDX-License-Identifier: MIT
// Package core defines the RelationGraph used to cluster companies that share
// layoff events, together with its functional options and sentinel errors.
//
// This file declares Graph, ClusterOption, the sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - requested company does not exist in the graph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates a lookup referenced a company that was never
	// mentioned by AddEdge.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Graph is an undirected relation graph over company names.
//
// adjacency[a][b] exists iff adjacency[b][a] exists. A self-edge stores the
// vertex in its own neighbor set exactly once.
// mu guards adjacency; mutation happens during ingestion, reads afterwards.
type Graph struct {
	mu sync.RWMutex

	// adjacency[company] = set of neighbor companies
	adjacency map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]struct{}),
	}
}

// ClusterOption configures the output shape of Clusters.
type ClusterOption func(o *clusterOptions)

// clusterOptions holds Clusters settings.
type clusterOptions struct {
	// sorted orders members inside a cluster lexicographically and clusters
	// by size descending, then by their first member.
	sorted bool

	// onVisit, if non-nil, is called once per vertex when it is discovered.
	onVisit func(id string)
}

// WithSortedClusters makes Clusters output deterministic: members sorted
// ascending, clusters ordered by size descending and then by first member.
func WithSortedClusters() ClusterOption {
	return func(o *clusterOptions) { o.sorted = true }
}

// WithOnVisit installs a hook called when a vertex is first discovered.
func WithOnVisit(fn func(id string)) ClusterOption {
	return func(o *clusterOptions) { o.onVisit = fn }
}
