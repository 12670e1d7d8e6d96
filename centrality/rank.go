package centrality

import (
	"cmp"
	"slices"
)

// DefaultTopK is the number of vertices reported per component.
const DefaultTopK = 5

// Ranked is one vertex of a ranking.
type Ranked struct {
	Vertex int
	Score  float64
}

// Rank orders every vertex of scores by descending score, breaking ties by
// ascending label so that equal inputs always rank identically.
func Rank(scores Scores) []Ranked {
	out := make([]Ranked, 0, len(scores))
	for v, s := range scores {
		out = append(out, Ranked{Vertex: v, Score: s})
	}
	slices.SortFunc(out, func(a, b Ranked) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Vertex, b.Vertex)
	})

	return out
}

// Top returns the first k entries of Rank(scores). A component with fewer
// than k vertices yields all of them; k ≤ 0 yields none.
func Top(scores Scores, k int) []Ranked {
	if k <= 0 {
		return nil
	}
	ranked := Rank(scores)
	if len(ranked) > k {
		ranked = ranked[:k]
	}

	return ranked
}

// Labels extracts the vertex labels of a ranking, in order.
func Labels(r []Ranked) []int {
	out := make([]int, len(r))
	for i, e := range r {
		out[i] = e.Vertex
	}

	return out
}
