// Package core defines the undirected, integer-labelled Graph used by every
// other vertexrank package, together with its construction options.
//
// A Graph owns two things:
//
//	vertexCount - the declared number of vertices (set independently of the
//	              adjacency content when a component subgraph is built).
//	adjacency   - vertex label → ordered list of neighbor labels; the list may
//	              contain duplicates when edges are added without EdgeExist.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex has no adjacency entry.
package core

import (
	"errors"
	"sync"
)

// ErrVertexNotFound indicates an operation referenced a vertex that has no adjacency entry.
var ErrVertexNotFound = errors.New("core: vertex not found")

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithVertexCount sets the declared vertex count. Negative values are ignored.
func WithVertexCount(n int) GraphOption {
	return func(g *Graph) {
		if n >= 0 {
			g.vertexCount = n
		}
	}
}

// Graph is an undirected multigraph over integer vertex labels.
//
// Symmetry invariant: for every stored edge (u,v), v appears in adjacency[u]
// and u appears in adjacency[v]. Self-loops are not suppressed; AddEdge(u,u)
// appends u to adjacency[u] twice.
//
// mu guards adjacency and vertexCount, so a built Graph may be read from
// several goroutines at once (e.g. one centrality per goroutine).
type Graph struct {
	mu sync.RWMutex

	vertexCount int

	// adjacency[label] = neighbor labels in insertion order.
	adjacency map[int][]int
}

// NewGraph creates an empty Graph with a declared vertex count of zero
// unless overridden by WithVertexCount.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[int][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
