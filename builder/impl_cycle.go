// SPDX-License-Identifier: MIT
// Package: vertexrank/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the path 0–1–…–(n-1), then the closing edge (n-1)–0.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/vertexrank/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			g.AddEdge(cfg.label(i-1), cfg.label(i))
		}
		g.AddEdge(cfg.label(n-1), cfg.label(0))

		return nil
	}
}
