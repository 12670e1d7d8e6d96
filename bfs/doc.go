// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from every vertex → distance from start (Unreached = -1 if not reached)
//   - Distances(g, src) is the shorthand used by the centrality package.
//
// Determinism
//
//	Neighbors are expanded in the order they are stored in the adjacency list
//	(insertion order). Ties inside a BFS layer follow that order and nothing else.
//
// Start-vertex skip
//
//	When the start vertex shows up in another vertex's neighbor list it is skipped
//	before the Unreached test. The start already has depth 0, so this never
//	changes the result.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V·log V + E)  (sorted vertex enumeration to seed Depth, then O(V + E))
//   - Memory: O(V)
//
// Usage
//
//	dist, err := bfs.Distances(component, 7)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, or ctx.Err()
//	}
//
//	res, err := bfs.BFS(g, 7,
//	    bfs.WithContext(ctx),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ctx.Err()               if the context is cancelled mid-search.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
