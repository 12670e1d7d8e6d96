package centrality

import "github.com/katalvlaran/vertexrank/core"

// DegreeCentrality scores every vertex with the length of its neighbor list,
// counting any duplicate edges the graph holds.
//
// Complexity: O(V·log V).
func DegreeCentrality(g *core.Graph) (Scores, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	out := make(Scores, len(vertices))
	for _, v := range vertices {
		out[v] = float64(g.Degree(v))
	}

	return out, nil
}
