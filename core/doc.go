// Package core provides the undirected, integer-labelled Graph that the
// vertexrank algorithms operate on.
//
// The Graph G = (V,E) is stored as an adjacency mapping
//
//	adjacency[u] = [v1, v2, ...]   // ordered, duplicates allowed
//
// with the symmetry invariant v ∈ adjacency[u] ⇔ u ∈ adjacency[v].
// Vertex labels are whatever the input uses; they need not be contiguous
// or zero-based.
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph     // O(1)
//	FromPairs(pairs [][2]int) *Graph         // EdgeExist-gated insertion
//	AddEdge(u, v int)                        // O(1)†, no duplicate check
//	AddVertex(v int)                         // O(1), isolated vertex
//
//	// Query
//	EdgeExist(u, v int) bool                 // O(deg(u))
//	HasVertex(v int) bool                    // O(1)
//	Neighbors(v int) ([]int, error)          // O(deg(v)), insertion order
//	Degree(v int) int                        // O(1), duplicates counted
//	Vertices() []int                         // O(V·log V), ascending (dense index map)
//	IndexOf() map[int]int                    // O(V·log V), label → dense index
//
//	// Counts
//	VertexCount() int                        // declared count
//	Order() int                              // vertices with an adjacency entry
//	EdgeCount() int                          // O(V)
//
//	// Copies
//	Induced(labels []int) *Graph             // component subgraph, label-preserving
//	Clone() *Graph                           // deep copy
//
// † amortized.
//
// Duplicate suppression is only performed by FromPairs (and the loader
// package built on it): a pair (u,v) is skipped when v is already listed
// under u. Direct AddEdge calls never check.
//
// Concurrency:
//
//	All methods are safe for concurrent use; a finished Graph is typically
//	shared read-only between goroutines computing different measures.
package core
