// Package converters provides two-way adapters between core.Graph and
// gonum's graph packages (gonum.org/v1/gonum/graph).
//
// Mapping
//
//	core label v  <->  simple.Node(int64(v))
//	edge {u, v}   <->  simple.Edge{F: u, T: v}
//
// gonum's simple graphs hold at most one edge per vertex pair and reject
// self edges, so ToGonum collapses parallel edges and drops self-loops.
// Every vertex is added as a node first, which keeps isolated vertices.
//
// Use the converters to run gonum's topo, traverse, path and network
// algorithms over a vertexrank graph, e.g. to cross-check results.
package converters
