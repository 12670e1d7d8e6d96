package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vertexrank/bfs"
	"github.com/katalvlaran/vertexrank/core"
)

// KatzCentrality scores every vertex v with
//
//	Σ_u alpha^d(v,u)   over u with d(v,u) > 0
//
// where d is the shortest-path hop count. This is a distance-decay variant,
// not the walk-counting Katz centrality: each reachable vertex contributes
// once, through its shortest distance only. With alpha = 1 the score is the
// number of other vertices in v's component.
//
// A single-vertex component scores 0 (empty sum), or yields
// ErrDegenerateComponent under WithStrict.
//
// Complexity: O(V·(V·log V + E)).
func KatzCentrality(g *core.Graph, alpha float64, opts ...Option) (Scores, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := validAlpha(alpha); err != nil {
		return nil, err
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

		score, terms := 0.0, 0
		for _, u := range vertices {
			d := dist[u]
			if d <= 0 {
				continue
			}
			score += math.Pow(alpha, float64(d))
			terms++
		}
		if terms == 0 && o.Strict {
			return nil, fmt.Errorf("katz of %d: %w", v, ErrDegenerateComponent)
		}
		out[v] = score
	}

	return out, nil
}
