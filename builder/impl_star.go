// SPDX-License-Identifier: MIT
// Package: vertexrank/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Index 0 is the hub; leaves 1..n-1 are attached in increasing order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/vertexrank/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.label(0)
		for i := 1; i < n; i++ {
			g.AddEdge(hub, cfg.label(i))
		}

		return nil
	}
}
