// SPDX-License-Identifier: MIT
// Package: vertexrank/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1)–i for i=1..n-1 in increasing order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/vertexrank/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			g.AddEdge(cfg.label(i-1), cfg.label(i))
		}

		return nil
	}
}
