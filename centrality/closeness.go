package centrality

import (
	"fmt"

	"github.com/katalvlaran/vertexrank/bfs"
	"github.com/katalvlaran/vertexrank/core"
)

// ClosenessCentrality scores every vertex v with
//
//	1 / Σ_u d(v,u)
//
// over the vertices u of v's component (v itself contributes 0). The value is
// not normalized by n-1. A vertex with nothing to reach scores 0, or yields
// ErrDegenerateComponent under WithStrict.
//
// Complexity: O(V·(V·log V + E)).
func ClosenessCentrality(g *core.Graph, opts ...Option) (Scores, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)

	vertices := g.Vertices()
	out := make(Scores, len(vertices))
	for _, v := range vertices {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		dist, err := bfs.Distances(g, v, bfs.WithContext(o.Ctx))
		if err != nil {
			return nil, err
		}

		sum := 0
		for _, d := range dist {
			if d > 0 {
				sum += d
			}
		}
		if sum == 0 {
			if o.Strict {
				return nil, fmt.Errorf("closeness of %d: %w", v, ErrDegenerateComponent)
			}
			out[v] = 0
			continue
		}
		out[v] = 1 / float64(sum)
	}

	return out, nil
}
