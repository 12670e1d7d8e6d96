package pipeline

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/vertexrank/centrality"
	"github.com/katalvlaran/vertexrank/components"
	"github.com/katalvlaran/vertexrank/core"
	"github.com/katalvlaran/vertexrank/loader"
)

// job is one (measure, component) computation.
type job struct {
	metric int
	report ComponentReport
}

// Run loads s.Input and ranks the vertices of every component by every
// requested measure.
//
// Load failures abort the run and no Result is returned. Failures of single
// computations, unsupported measure names included, are recorded in the
// matching ComponentReport and the run continues.
func Run(ctx context.Context, s Settings, log zerolog.Logger) (*Result, error) {
	if s.Input == "" {
		return nil, ErrNoInput
	}

	start := time.Now()
	g, err := loader.ReadFile(s.Input)
	if err != nil {
		log.Error().Err(err).Str("input", s.Input).Msg("load failed")
		return nil, err
	}
	log.Debug().
		Str("input", s.Input).
		Dur("took", time.Since(start)).
		Msg("graph loaded")

	res, err := RunGraph(ctx, g, s, log)
	if err != nil {
		return nil, err
	}
	res.Input = s.Input
	res.Elapsed = time.Since(start)

	return res, nil
}

// RunGraph is Run over an already built graph.
func RunGraph(ctx context.Context, g *core.Graph, s Settings, log zerolog.Logger) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(s.Metrics) == 0 {
		return nil, ErrNoMetrics
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s = s.normalized()
	start := time.Now()

	comps, err := components.Split(g)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Int("components", len(comps)).
		Strs("metrics", s.Metrics).
		Int("workers", s.Workers).
		Msg("graph split")

	res := &Result{
		Vertices:   g.VertexCount(),
		Edges:      g.EdgeCount(),
		TopK:       s.TopK,
		Components: len(comps),
		Metrics:    make([]MetricReport, len(s.Metrics)),
	}

	p := pool.NewWithResults[job]().WithMaxGoroutines(s.Workers)
	for mi, name := range s.Metrics {
		mi := mi
		kind, kerr := centrality.ParseKind(name)
		res.Metrics[mi] = MetricReport{Name: name, Kind: kind}
		if kerr != nil {
			log.Warn().Str("metric", name).Msg("unsupported metric")
		}

		for ci, comp := range comps {
			ci, comp := ci, comp
			if kerr != nil {
				p.Go(func() job {
					return job{metric: mi, report: ComponentReport{Index: ci, Size: comp.VertexCount(), Err: kerr}}
				})
				continue
			}
			p.Go(func() job {
				return job{metric: mi, report: compute(ctx, kind, ci, comp, s, log)}
			})
		}
	}

	jobs := p.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slices.SortFunc(jobs, func(a, b job) int {
		if c := cmp.Compare(a.metric, b.metric); c != 0 {
			return c
		}
		return cmp.Compare(a.report.Index, b.report.Index)
	})
	for _, j := range jobs {
		m := &res.Metrics[j.metric]
		m.Components = append(m.Components, j.report)
	}
	res.Elapsed = time.Since(start)

	log.Info().
		Dur("took", res.Elapsed).
		Int("failed", res.Failed()).
		Msg("run finished")

	return res, nil
}

// compute runs one measure on one component under the per-computation deadline.
func compute(ctx context.Context, kind centrality.Kind, idx int, comp *core.Graph, s Settings, log zerolog.Logger) ComponentReport {
	rep := ComponentReport{Index: idx, Size: comp.VertexCount()}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	opts := []centrality.Option{centrality.WithContext(ctx)}
	if s.Alpha != 0 {
		opts = append(opts, centrality.WithAlpha(s.Alpha))
	}

	start := time.Now()
	scores, err := centrality.Compute(kind, comp, opts...)
	rep.Elapsed = time.Since(start)
	if err != nil {
		rep.Err = fmt.Errorf("%s on component %d: %w", kind, idx+1, err)
		log.Warn().Err(err).Str("metric", string(kind)).Int("component", idx+1).Msg("computation failed")
		return rep
	}
	rep.Top = centrality.Top(scores, s.TopK)

	log.Debug().
		Str("metric", string(kind)).
		Int("component", idx+1).
		Int("size", rep.Size).
		Dur("took", rep.Elapsed).
		Msg("computed")

	return rep
}
