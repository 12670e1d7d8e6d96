// File: methods.go
// Role: edge insertion, adjacency queries and subgraph extraction.
//
// Determinism:
//   - Vertices() returns labels in ascending order; it doubles as the dense
//     index map (index i ↔ Vertices()[i]).
//   - Neighbors() preserves insertion order, duplicates included.
//
// Concurrency:
//   - Mutations take the write lock; queries take the read lock.
package core

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// AddEdge appends v to adjacency[u] and u to adjacency[v], creating empty
// lists on first reference to either vertex. No duplicate check is made;
// callers that need one consult EdgeExist first.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
}

// AddVertex registers v with an empty neighbor list if it is absent.
// It is the only way to represent a vertex with no incident edges.
//
// Complexity: O(1)
func (g *Graph) AddVertex(v int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = []int{}
	}
}

// EdgeExist reports whether v is present in u's neighbor list.
// An unknown u yields false.
//
// Complexity: O(deg(u))
func (g *Graph) EdgeExist(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[u]
	if !ok {
		return false
	}

	return slices.Contains(nbrs, v)
}

// HasVertex reports whether v has an adjacency entry.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[v]
	return ok
}

// Neighbors returns a copy of v's neighbor list in insertion order.
// Returns ErrVertexNotFound if v has no adjacency entry.
//
// Complexity: O(deg(v))
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return slices.Clone(nbrs), nil
}

// Degree returns the length of v's neighbor list, counting duplicate edges
// and both ends of a self-loop. Unknown vertices have degree 0.
func (g *Graph) Degree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v])
}

// Vertices returns every label with an adjacency entry in ascending order.
//
// Complexity: O(V log V)
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// IndexOf returns the inverse of the dense index map: label → position in Vertices().
func (g *Graph) IndexOf() map[int]int {
	labels := g.Vertices()
	idx := make(map[int]int, len(labels))
	for i, v := range labels {
		idx[v] = i
	}

	return idx
}

// VertexCount returns the declared vertex count.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertexCount
}

// Order returns the number of vertices that have an adjacency entry.
// For graphs built by loader or Induced this equals VertexCount.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of stored edges, duplicates included.
// A self-loop counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, nbrs := range g.adjacency {
		total += len(nbrs)
	}

	return total / 2
}

// Induced returns a new Graph holding copies of the neighbor lists of the
// given labels, with vertexCount set to len(labels). Labels are preserved.
// Neighbors outside labels are dropped, so the result is closed even when
// labels is not a union of components. Unknown labels become isolated vertices.
//
// Complexity: O(Σ deg(v)) over labels.
func (g *Graph) Induced(labels []int) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keep := make(map[int]struct{}, len(labels))
	for _, v := range labels {
		keep[v] = struct{}{}
	}

	sub := NewGraph(WithVertexCount(len(keep)))
	for v := range keep {
		nbrs := g.adjacency[v]
		list := make([]int, 0, len(nbrs))
		for _, w := range nbrs {
			if _, ok := keep[w]; ok {
				list = append(list, w)
			}
		}
		sub.adjacency[v] = list
	}

	return sub
}

// Clone returns a deep copy of g, declared vertex count included.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithVertexCount(g.vertexCount))
	for v, nbrs := range g.adjacency {
		c.adjacency[v] = slices.Clone(nbrs)
	}

	return c
}

// UniqueVertices returns the sorted distinct labels appearing in pairs.
func UniqueVertices(pairs [][2]int) []int {
	seen := mapset.NewThreadUnsafeSetWithSize[int](2 * len(pairs))
	for _, p := range pairs {
		seen.Append(p[0], p[1])
	}
	out := seen.ToSlice()
	slices.Sort(out)

	return out
}

// FromPairs builds a Graph from an edge-pair stream: a pair is skipped when
// EdgeExist(u, v) already holds, otherwise it is inserted with AddEdge.
// The declared vertex count is the number of unique labels.
func FromPairs(pairs [][2]int) *Graph {
	g := NewGraph(WithVertexCount(len(UniqueVertices(pairs))))
	for _, p := range pairs {
		if !g.EdgeExist(p[0], p[1]) {
			g.AddEdge(p[0], p[1])
		}
	}

	return g
}
