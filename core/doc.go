// SPDX-License-Identifier: MIT
// Package core provides the RelationGraph: a thread-safe, undirected,
// unweighted in-memory graph over company names, used to discover clusters of
// companies connected by shared layoff events.
//
// The Graph G = (V,E) keeps a symmetric adjacency map:
//
//	adjacency[a][b] = struct{}{}  ⇔  adjacency[b][a] = struct{}{}
//
// Lifecycle:
//
//   - Build: repeated AddEdge(a, b) calls during ingestion. AddEdge creates
//     missing endpoints and never fails. Self-edges (a == b) are allowed.
//   - Query: Clusters, Neighbors, Degree, DegreeCentrality, Vertices.
//
// Core Methods:
//
//	AddEdge(a, b string)                       // O(1)
//	HasVertex(id string) bool                  // O(1)
//	HasEdge(a, b string) bool                  // O(1)
//	Neighbors(id string) ([]string, error)     // O(d log d), sorted
//	Vertices() []string                        // O(V log V), sorted
//	Degree(id string) int                      // O(1)
//	DegreeCentrality() map[string]float64      // O(V)
//	Clusters(opts ...ClusterOption) [][]string // O(V+E), iterative DFS
//
// Cluster Options:
//
//	– WithSortedClusters()
//	    Deterministic output: members ascending, clusters by size desc.
//	– WithOnVisit(fn)
//	    Hook called once per vertex on discovery.
//
// Quick ASCII example:
//
//	A───B───C      D───E
//
// yields two clusters: {A,B,C} and {D,E}.
package core
