package centrality

import (
	"slices"

	"github.com/katalvlaran/vertexrank/core"
)

// denseGraph is the dense-index view of a component used by Brandes'
// algorithm: labels[i] is the vertex with index i, and adj[i] lists the
// distinct neighbor indices of i in ascending order, self-loops removed.
type denseGraph struct {
	labels []int
	adj    [][]int
}

func newDenseGraph(g *core.Graph) (*denseGraph, error) {
	labels := g.Vertices()
	index := make(map[int]int, len(labels))
	for i, v := range labels {
		index[v] = i
	}

	adj := make([][]int, len(labels))
	for i, v := range labels {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		row := make([]int, 0, len(nbrs))
		for _, w := range nbrs {
			j, ok := index[w]
			if !ok || j == i {
				continue
			}
			row = append(row, j)
		}
		slices.Sort(row)
		adj[i] = slices.Compact(row)
	}

	return &denseGraph{labels: labels, adj: adj}, nil
}

// brandes holds the per-source buffers of Brandes' algorithm; they are
// reset, not reallocated, between sources.
type brandes struct {
	g     *denseGraph
	sigma []float64 // shortest-path counts from the source
	dist  []int     // hop distance, -1 until discovered
	preds [][]int   // predecessors on shortest paths
	delta []float64 // dependency accumulators
	stack []int     // vertices in visitation order
	queue []int
}

func newBrandes(g *denseGraph) *brandes {
	n := len(g.labels)
	return &brandes{
		g:     g,
		sigma: make([]float64, n),
		dist:  make([]int, n),
		preds: make([][]int, n),
		delta: make([]float64, n),
		stack: make([]int, 0, n),
		queue: make([]int, 0, n),
	}
}

// shortestPaths runs the counting BFS from s, filling sigma, dist, preds and
// the visitation stack.
func (b *brandes) shortestPaths(s int) {
	for i := range b.dist {
		b.sigma[i] = 0
		b.dist[i] = -1
		b.preds[i] = b.preds[i][:0]
		b.delta[i] = 0
	}
	b.stack = b.stack[:0]
	b.queue = append(b.queue[:0], s)
	b.sigma[s] = 1
	b.dist[s] = 0

	for head := 0; head < len(b.queue); head++ {
		v := b.queue[head]
		b.stack = append(b.stack, v)
		for _, w := range b.g.adj[v] {
			switch {
			case b.dist[w] < 0:
				// First discovery: inherit v's path count.
				b.queue = append(b.queue, w)
				b.dist[w] = b.dist[v] + 1
				b.sigma[w] = b.sigma[v]
				b.preds[w] = append(b.preds[w], v)
			case b.dist[w] == b.dist[v]+1:
				// Another shortest route into w through v.
				b.sigma[w] += b.sigma[v]
				b.preds[w] = append(b.preds[w], v)
			}
		}
	}
}

// accumulate pops the stack in reverse visitation order, pushing dependency
// back to predecessors and adding it to cb for every vertex except s.
func (b *brandes) accumulate(s int, cb []float64) {
	for i := len(b.stack) - 1; i >= 0; i-- {
		w := b.stack[i]
		for _, p := range b.preds[w] {
			b.delta[p] += (b.sigma[p] / b.sigma[w]) * (1 + b.delta[w])
		}
		if w != s {
			cb[w] += b.delta[w]
		}
	}
}

// BetweennessCentrality returns the raw (unnormalized) betweenness of every
// vertex using Brandes' algorithm for undirected, unweighted graphs:
//
//	C_B(v) = ½ · Σ_{s ≠ v ≠ t} σ_st(v) / σ_st
//
// Each unordered pair is seen once from each endpoint, hence the final halving.
// Parallel edges are counted once and self-loops are ignored.
//
// Complexity: O(V·E) time, O(V + E) memory.
func BetweennessCentrality(g *core.Graph, opts ...Option) (Scores, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)

	dg, err := newDenseGraph(g)
	if err != nil {
		return nil, err
	}
	b := newBrandes(dg)
	cb := make([]float64, len(dg.labels))

	for s := range dg.labels {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		b.shortestPaths(s)
		b.accumulate(s, cb)
	}

	out := make(Scores, len(dg.labels))
	for i, v := range dg.labels {
		out[v] = cb[i] / 2
	}

	return out, nil
}
