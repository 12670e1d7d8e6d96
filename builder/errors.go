// SPDX-License-Identifier: MIT
// Package: vertexrank/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that the builder could not run a constructor
// (for example a nil Constructor was supplied).
var ErrConstructFailed = errors.New("builder: construction failed")
