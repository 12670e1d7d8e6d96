package converters_test

import (
	"cmp"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/vertexrank/bfs"
	"github.com/katalvlaran/vertexrank/builder"
	"github.com/katalvlaran/vertexrank/centrality"
	"github.com/katalvlaran/vertexrank/components"
	"github.com/katalvlaran/vertexrank/converters"
	"github.com/katalvlaran/vertexrank/core"
)

const eps = 1e-9

// mixed builds a graph with several shapes and an isolated vertex:
// path 0..5, cycle 10..15, star 20..26, K5 30..34, isolated 40.
func mixed(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.Build(nil,
		builder.Path(6),
		builder.Shifted(10, builder.Cycle(6)),
		builder.Shifted(20, builder.Star(7)),
		builder.Shifted(30, builder.Complete(5)),
		builder.Shifted(40, builder.Isolated(1)),
	)
	require.NoError(t, err)
	// a chord with two equal-length routes around the cycle
	g.AddEdge(10, 13)

	return g
}

// connectedMixed is mixed without the isolated vertex and with bridges
// between the shapes, so every pair has a finite distance.
func connectedMixed(t *testing.T) *core.Graph {
	t.Helper()
	g := mixed(t)
	g = g.Induced(slices.DeleteFunc(g.Vertices(), func(v int) bool { return v == 40 }))
	g.AddEdge(5, 10)
	g.AddEdge(13, 20)
	g.AddEdge(26, 30)

	return g
}

func nodeIDs(nodes []graph.Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = int(n.ID())
	}
	slices.Sort(out)

	return out
}

func TestToGonum_Shape(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(1, 2) // parallel
	g.AddEdge(3, 3) // self-loop
	g.AddVertex(9)

	ug := converters.ToGonum(g)
	assert.Equal(t, []int{1, 2, 3, 9}, nodeIDs(graph.NodesOf(ug.Nodes())))
	assert.True(t, ug.HasEdgeBetween(1, 2))
	assert.False(t, ug.HasEdgeBetween(3, 3))
	assert.Equal(t, 1, ug.Edges().Len())
}

func TestToGonum_Nil(t *testing.T) {
	ug := converters.ToGonum(nil)
	assert.Equal(t, 0, ug.Nodes().Len())
}

func TestFromGonum_RoundTrip(t *testing.T) {
	g := mixed(t)
	back := converters.FromGonum(converters.ToGonum(g))

	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.VertexCount(), back.VertexCount())
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())
	for _, u := range g.Vertices() {
		nbrs, err := g.Neighbors(u)
		require.NoError(t, err)
		for _, v := range nbrs {
			assert.True(t, back.EdgeExist(u, v), "edge %d-%d lost", u, v)
		}
	}
}

func TestFromGonum_Independent(t *testing.T) {
	ug := simple.NewUndirectedGraph()
	ug.SetEdge(simple.Edge{F: simple.Node(7), T: simple.Node(8)})
	ug.AddNode(simple.Node(100))

	g := converters.FromGonum(ug)
	assert.Equal(t, []int{7, 8, 100}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 0, g.Degree(100))
}

// TestComponents_MatchGonum compares component labelling with topo.ConnectedComponents.
func TestComponents_MatchGonum(t *testing.T) {
	g := mixed(t)

	lab, err := components.Label(g)
	require.NoError(t, err)

	var want [][]int
	for _, cc := range topo.ConnectedComponents(converters.ToGonum(g)) {
		want = append(want, nodeIDs(cc))
	}
	slices.SortFunc(want, func(a, b []int) int { return cmp.Compare(a[0], b[0]) })

	assert.Equal(t, want, lab.Members)
}

// TestDistances_MatchGonum compares BFS depths with traverse.BreadthFirst.
func TestDistances_MatchGonum(t *testing.T) {
	g := mixed(t)
	ug := converters.ToGonum(g)

	for _, src := range []int{0, 3, 10, 20, 26, 32, 40} {
		dist, err := bfs.Distances(g, src)
		require.NoError(t, err)

		want := make(map[int]int, len(dist))
		for v := range dist {
			want[v] = bfs.Unreached
		}
		var w traverse.BreadthFirst
		w.Walk(ug, simple.Node(int64(src)), func(n graph.Node, d int) bool {
			want[int(n.ID())] = d
			return false
		})

		assert.Equal(t, want, dist, "source %d", src)
	}
}

// TestCloseness_MatchGonum compares closeness with network.Closeness, which
// also ignores unreachable vertices.
func TestCloseness_MatchGonum(t *testing.T) {
	g := connectedMixed(t)
	ug := converters.ToGonum(g)

	got, err := centrality.ClosenessCentrality(g)
	require.NoError(t, err)
	want := network.Closeness(ug, path.DijkstraAllPaths(ug))

	require.Len(t, got, len(want))
	for id, c := range want {
		assert.InDelta(t, c, got[int(id)], eps, "vertex %d", id)
	}
}

// TestBetweenness_MatchGonum checks against network.Betweenness, which counts
// every undirected path from both ends.
func TestBetweenness_MatchGonum(t *testing.T) {
	g := connectedMixed(t)

	got, err := centrality.BetweennessCentrality(g)
	require.NoError(t, err)
	want := network.Betweenness(converters.ToGonum(g))

	for _, v := range g.Vertices() {
		// gonum omits zero scores
		assert.InDelta(t, want[int64(v)]/2, got[v], eps, "vertex %d", v)
	}
}

func TestKatz_FiniteOnConnected(t *testing.T) {
	g := connectedMixed(t)
	scores, err := centrality.KatzCentrality(g, 0.5)
	require.NoError(t, err)
	for v, s := range scores {
		assert.False(t, math.IsInf(s, 0) || math.IsNaN(s), "vertex %d", v)
		assert.Positive(t, s)
	}
}
