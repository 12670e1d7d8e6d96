// Package pipeline defines the run settings, errors and result types of a
// vertexrank run.
package pipeline

import (
	"errors"
	"runtime"
	"time"

	"github.com/katalvlaran/vertexrank/centrality"
)

var (
	// ErrNoInput is returned by Run when Settings.Input is empty.
	ErrNoInput = errors.New("pipeline: no input file")

	// ErrNoMetrics is returned when no centrality measure was requested.
	ErrNoMetrics = errors.New("pipeline: no metrics requested")

	// ErrGraphNil is returned by RunGraph for a nil graph.
	ErrGraphNil = errors.New("pipeline: graph is nil")
)

// Settings configures a run.
type Settings struct {
	// Input is the edge-list path read by Run.
	Input string

	// Metrics are measure names, computed in this order. Unknown names are
	// kept and reported per component rather than rejected up front.
	Metrics []string

	// Alpha is the Katz attenuation factor. Zero means "not given".
	Alpha float64

	// TopK is the number of vertices kept per component (≤0: centrality.DefaultTopK).
	TopK int

	// Workers bounds concurrent computations (≤0: runtime.NumCPU()).
	Workers int

	// Timeout bounds each single computation (0: none).
	Timeout time.Duration
}

func (s Settings) normalized() Settings {
	if s.TopK <= 0 {
		s.TopK = centrality.DefaultTopK
	}
	if s.Workers <= 0 {
		s.Workers = runtime.NumCPU()
	}

	return s
}

// ComponentReport is the outcome of one measure on one component.
type ComponentReport struct {
	// Index is the 0-based component id (components ordered by smallest label).
	Index int

	// Size is the number of vertices in the component.
	Size int

	// Top holds the best TopK vertices, best first. Empty when Err is set.
	Top []centrality.Ranked

	// Elapsed is the wall-clock time of the computation alone.
	Elapsed time.Duration

	// Err is the failure of this computation, if any. Other computations
	// are unaffected.
	Err error
}

// MetricReport groups the component reports of one requested measure.
type MetricReport struct {
	// Name is the measure as requested.
	Name string

	// Kind is the parsed measure; empty when Name is not supported.
	Kind centrality.Kind

	// Components has one entry per component, in component order.
	Components []ComponentReport
}

// Result is the outcome of a whole run.
type Result struct {
	Input      string
	Vertices   int
	Edges      int
	TopK       int
	Components int
	Metrics    []MetricReport
	Elapsed    time.Duration
}

// Failed counts the component reports that carry an error.
func (r *Result) Failed() int {
	n := 0
	for _, m := range r.Metrics {
		for _, c := range m.Components {
			if c.Err != nil {
				n++
			}
		}
	}

	return n
}
