// SPDX-License-Identifier: MIT
// Package: vertexrank/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same options and constructor order ⇒ identical graphs.
//   - Constructors insert through core.AddEdge/AddVertex only and never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vertexrank/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors wrapped with the constructor name.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build creates a new core.Graph, resolves the builder configuration from
// bopts, and applies all constructors in order. The declared vertex count of
// the result is set to the number of distinct labels inserted.
//
// Errors:
//   - Wraps constructor errors as "Build: %w"; branch with errors.Is against
//     ErrTooFewVertices or ErrConstructFailed.
func Build(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := core.NewGraph()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	// Re-wrap with the declared count now that the label set is final.
	return g.Induced(g.Vertices()), nil
}

// Shifted wraps c so that its labels start offset past the current first label.
// It lets one Build call assemble several disjoint fixtures.
func Shifted(offset int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Shifted: nil constructor: %w", ErrConstructFailed)
		}
		cfg.first += offset

		return c(g, cfg)
	}
}
