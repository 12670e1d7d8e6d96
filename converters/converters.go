package converters

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/vertexrank/core"
)

// ToGonum copies g into a new simple.UndirectedGraph.
// Self-loops are dropped and parallel edges collapse to one. A nil g yields
// an empty graph.
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	if g == nil {
		return ug
	}

	vertices := g.Vertices()
	for _, v := range vertices {
		ug.AddNode(simple.Node(int64(v)))
	}
	for _, u := range vertices {
		nbrs, _ := g.Neighbors(u)
		for _, v := range nbrs {
			if u == v || ug.HasEdgeBetween(int64(u), int64(v)) {
				continue
			}
			ug.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(v))})
		}
	}

	return ug
}

// FromGonum builds a core.Graph from any gonum undirected graph. Node IDs
// become labels; each undirected edge is inserted once. The declared vertex
// count equals the number of nodes.
func FromGonum(ug graph.Undirected) *core.Graph {
	nodes := graph.NodesOf(ug.Nodes())
	g := core.NewGraph(core.WithVertexCount(len(nodes)))
	for _, n := range nodes {
		g.AddVertex(int(n.ID()))
	}

	for _, n := range nodes {
		uid := n.ID()
		to := ug.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			// each edge is seen from both ends; keep one
			if vid < uid {
				continue
			}
			g.AddEdge(int(uid), int(vid))
		}
	}

	return g
}
