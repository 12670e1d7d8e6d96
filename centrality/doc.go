// Package centrality scores the vertices of a connected component of a
// core.Graph with one of four measures and ranks the result.
//
// What
//
//   - DegreeCentrality:      |adjacency[v]|, duplicate edges included.
//   - ClosenessCentrality:   1 / Σ_u d(v,u), not normalized by n-1.
//   - KatzCentrality:        Σ_{u: d(v,u)>0} alpha^d(v,u) (distance-decay variant).
//   - BetweennessCentrality: raw Brandes betweenness, halved for undirected pairs.
//   - Compute(kind, g, opts...): dispatch by Kind; ParseKind maps names to Kinds.
//   - Rank / Top:            descending score, ascending label on ties.
//
// Every function is a pure computation over one component graph: no state is
// kept between calls, so several measures or components may run concurrently.
//
// Katz variant
//
//	The textbook Katz centrality sums alpha^k over all walks of length k
//	(a matrix series). This package keeps a simpler form on purpose: every
//	other vertex of the component contributes alpha raised to its shortest-path
//	distance, exactly once. With alpha = 1 the score is the component size
//	minus one.
//
// Single-vertex components
//
//	Closeness (1/0) and Katz (empty sum) have nothing to measure on a lone
//	vertex. The default policy scores it 0; WithStrict returns
//	ErrDegenerateComponent instead.
//
// Determinism
//
//	Vertices are enumerated in ascending label order; Brandes' BFS walks each
//	vertex's distinct neighbors in ascending label order. Floating-point sums
//	are therefore reproducible run to run.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Degree:                    O(V·log V)
//   - Closeness, Katz:           O(V·(V·log V + E))  (one BFS per vertex)
//   - Betweenness:               O(V·E) time, O(V + E) memory
//
// Usage
//
//	comps, _ := components.Split(g)
//	for _, c := range comps {
//	    scores, err := centrality.Compute(centrality.Katz, c,
//	        centrality.WithAlpha(0.5),
//	        centrality.WithContext(ctx),
//	    )
//	    if errors.Is(err, centrality.ErrUnsupportedMetric) {
//	        // recoverable: report and move on
//	    }
//	    top := centrality.Top(scores, centrality.DefaultTopK)
//	    _ = top
//	}
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per source vertex and inside BFS.
//   - WithAlpha(a):      Katz attenuation factor; must be positive and finite.
//   - WithStrict():      single-vertex closeness/Katz becomes an error.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrUnsupportedMetric    for an unknown Kind or name.
//   - ErrBadAlpha             for a missing, non-positive, NaN or infinite alpha.
//   - ErrDegenerateComponent  for closeness/Katz on a lone vertex under WithStrict.
//   - ctx.Err()               on cancellation.
package centrality
