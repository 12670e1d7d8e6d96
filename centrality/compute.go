package centrality

import (
	"fmt"

	"github.com/katalvlaran/vertexrank/core"
)

// Compute runs the measure named by kind on component g.
//
// Alpha is read from WithAlpha and is required only for Katz; the other
// measures ignore it. An unknown kind yields ErrUnsupportedMetric, which the
// caller may treat as recoverable.
func Compute(kind Kind, g *core.Graph, opts ...Option) (Scores, error) {
	switch kind {
	case Degree:
		return DegreeCentrality(g)
	case Closeness:
		return ClosenessCentrality(g, opts...)
	case Betweenness:
		return BetweennessCentrality(g, opts...)
	case Katz:
		o := resolve(opts)
		if !o.alphaSet {
			return nil, fmt.Errorf("%w: katz requires WithAlpha", ErrBadAlpha)
		}
		return KatzCentrality(g, o.Alpha, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMetric, string(kind))
	}
}
