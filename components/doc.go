// Package components implements connected-component decomposition of a core.Graph.
//
// Key features:
//   - Label(g): component id per vertex, component count, members per component
//   - Split(g): label-preserving component subgraphs with their own adjacency copies
//   - Deterministic: vertices scanned and neighbors explored in ascending label order
//   - Iterative: an explicit stack replaces recursion, so long chains cannot exhaust
//     the goroutine stack
//
// Guarantees (checked in components_test.go):
//
//   - The vertex sets of Split's output are pairwise disjoint and their union is
//     the vertex set of the input.
//   - Every component is internally connected.
//   - Components are ordered by their smallest label.
//
// Complexity:
//
//   - Time:   O(V·log V + E·log d) (sorted vertex and neighbor scans).
//   - Memory: O(V + E) for the stack, labels and copied adjacency.
//
// Errors:
//
//   - ErrGraphNil  if g is nil.
package components
