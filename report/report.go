// Package report renders a pipeline.Result as the plain-text console report:
//
//	Top 5 vertices in each connected component by degree centrality:
//
//	Component 1:
//
//	2
//	3
//	...
//
//	The calculation took 0.042 millisecs
//
// One such block is written per requested measure. A computation that failed
// prints a single error line in place of its labels and timing.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/vertexrank/centrality"
	"github.com/katalvlaran/vertexrank/pipeline"
)

// ErrResultNil is returned by Write for a nil result.
var ErrResultNil = errors.New("report: result is nil")

// InvalidMetricLine is printed for a measure name that is not supported.
const InvalidMetricLine = "Invalid centrality type. Please try again."

// Options tunes the report layout.
type Options struct {
	// Scores appends each vertex's score after its label.
	Scores bool

	// Summary appends one line with totals for the whole run.
	Summary bool
}

// Option configures Options.
type Option func(*Options)

// WithScores prints "label<TAB>score" instead of the bare label.
func WithScores() Option { return func(o *Options) { o.Scores = true } }

// WithSummary appends a closing line with vertex, edge and component totals.
func WithSummary() Option { return func(o *Options) { o.Summary = true } }

// Write renders res to w. The first write error is returned.
func Write(w io.Writer, res *pipeline.Result, opts ...Option) error {
	if res == nil {
		return ErrResultNil
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	for _, m := range res.Metrics {
		fmt.Fprintf(bw, "\nTop %d vertices in each connected component by %s centrality:\n", res.TopK, m.Name)
		for _, c := range m.Components {
			fmt.Fprintf(bw, "\nComponent %d:\n\n", c.Index+1)
			writeComponent(bw, c, o)
		}
	}
	if o.Summary {
		fmt.Fprintf(bw, "\n%d vertices, %d edges, %d components; total %s millisecs\n",
			res.Vertices, res.Edges, res.Components, millis(res.Elapsed))
	}

	return bw.Flush()
}

func writeComponent(w io.Writer, c pipeline.ComponentReport, o Options) {
	switch {
	case errors.Is(c.Err, centrality.ErrUnsupportedMetric):
		fmt.Fprintln(w, InvalidMetricLine)
		return
	case c.Err != nil:
		fmt.Fprintf(w, "Error: %v\n", c.Err)
		return
	}

	for _, r := range c.Top {
		if o.Scores {
			fmt.Fprintf(w, "%d\t%.6g\n", r.Vertex, r.Score)
			continue
		}
		fmt.Fprintln(w, r.Vertex)
	}
	fmt.Fprintf(w, "\nThe calculation took %s millisecs\n", millis(c.Elapsed))
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d)/float64(time.Millisecond))
}
