// Package pipeline drives a complete vertexrank run:
//
//	load edge list → split into components → rank every component by every
//	requested measure → Result
//
// Computations are independent, one per (measure, component) pair, and run
// on a bounded github.com/sourcegraph/conc pool. Each shares the read-only
// component graph and has its own deadline when Settings.Timeout is set.
// Reports come back sorted by (measure order, component order) whatever
// order the workers finish in.
//
// Errors
//
//   - Load errors (loader.ErrFileAccess, loader.ErrParse) abort the run.
//   - An unknown measure name yields centrality.ErrUnsupportedMetric in each
//     of its ComponentReports; other measures are still computed.
//   - A missing Katz alpha yields centrality.ErrBadAlpha the same way.
//   - A deadline hit yields context.DeadlineExceeded for that computation.
//   - Cancelling the parent context aborts the run.
package pipeline
