// SPDX-License-Identifier: MIT
// Package: vertexrank/builder
//
// impl_complete.go - implementation of Complete(n) and Isolated(n) constructors.
//
// Contract:
//   - Complete: n ≥ 1; emits every pair i<j once, in lexicographic (i,j) order.
//   - Isolated: n ≥ 1; registers n vertices with no incident edges.
//
// Complexity: Complete O(n²), Isolated O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/vertexrank/core"
)

const (
	methodComplete   = "Complete"
	methodIsolated   = "Isolated"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
// K_1 is a single isolated vertex.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if n == 1 {
			g.AddVertex(cfg.label(0))
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(cfg.label(i), cfg.label(j))
			}
		}

		return nil
	}
}

// Isolated returns a Constructor that adds n vertices without edges.
func Isolated(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodIsolated, n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.label(i))
		}

		return nil
	}
}
