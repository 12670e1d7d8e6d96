// Package centrality defines the measure kinds, options, error definitions
// and result types shared by the vertex-centrality functions.
package centrality

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for centrality computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrUnsupportedMetric is returned for an unrecognized measure name or Kind.
	// It is recoverable: callers may continue with other measures or components.
	ErrUnsupportedMetric = errors.New("centrality: unsupported metric")

	// ErrBadAlpha is returned when the Katz attenuation factor is missing,
	// not positive, or not finite.
	ErrBadAlpha = errors.New("centrality: alpha must be a positive finite number")

	// ErrDegenerateComponent is returned under WithStrict when closeness or Katz
	// is requested on a single-vertex component, where the distance sum is empty.
	ErrDegenerateComponent = errors.New("centrality: degenerate single-vertex component")
)

// Kind names a centrality measure.
type Kind string

// Supported measures.
const (
	Degree      Kind = "degree"
	Closeness   Kind = "closeness"
	Betweenness Kind = "betweenness"
	Katz        Kind = "katz"
)

// Kinds lists the supported measures in a stable order.
func Kinds() []Kind {
	return []Kind{Degree, Closeness, Betweenness, Katz}
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// ParseKind maps a measure name (case-insensitive, surrounding space ignored)
// to its Kind, or returns ErrUnsupportedMetric.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	switch k {
	case Degree, Closeness, Betweenness, Katz:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMetric, name)
	}
}

// Scores maps each vertex label of a component to its score.
type Scores map[int]float64

// Option configures a centrality computation via functional arguments.
type Option func(*Options)

// Options holds parameters for a centrality computation.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per source vertex.
	Ctx context.Context

	// Alpha is the Katz attenuation factor. Ignored by the other measures.
	Alpha float64

	// Strict turns the single-vertex policy for closeness and Katz
	// (score 0) into ErrDegenerateComponent.
	Strict bool

	alphaSet bool
}

// DefaultOptions returns Options with a background context, no alpha,
// and the lenient single-vertex policy.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAlpha sets the Katz attenuation factor.
func WithAlpha(alpha float64) Option {
	return func(o *Options) {
		o.Alpha = alpha
		o.alphaSet = true
	}
}

// WithStrict makes closeness and Katz fail with ErrDegenerateComponent on a
// single-vertex component instead of scoring it 0.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func validAlpha(alpha float64) error {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadAlpha, alpha)
	}

	return nil
}
