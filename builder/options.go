// SPDX-License-Identifier: MIT
// Package: vertexrank/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • No hidden globals; everything flows through builderConfig.

package builder

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved, immutable configuration handed to constructors.
type builderConfig struct {
	// first is the label of index 0; index i maps to first+i.
	first int
}

// label maps a constructor-local index to a vertex label.
func (c builderConfig) label(i int) int { return c.first + i }

// newBuilderConfig applies bopts over the defaults (labels start at 0).
func newBuilderConfig(bopts ...BuilderOption) builderConfig {
	cfg := builderConfig{first: 0}
	for _, opt := range bopts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithFirstLabel shifts all labels so that index 0 becomes first.
// Use it to place several fixtures side by side without label collisions.
func WithFirstLabel(first int) BuilderOption {
	return func(c *builderConfig) {
		c.first = first
	}
}
