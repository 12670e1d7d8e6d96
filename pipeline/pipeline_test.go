package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vertexrank/builder"
	"github.com/katalvlaran/vertexrank/centrality"
	"github.com/katalvlaran/vertexrank/loader"
	"github.com/katalvlaran/vertexrank/pipeline"
)

// twoComponents is a path 1..5 and a star centred on 10.
const twoComponents = "1 2\n2 3\n3 4\n4 5\n10 11\n10 12\n"

func writeEdges(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func labelsOf(rep pipeline.ComponentReport) []int {
	return centrality.Labels(rep.Top)
}

func TestRun_DegreeAndBetweenness(t *testing.T) {
	res, err := pipeline.Run(context.Background(), pipeline.Settings{
		Input:   writeEdges(t, twoComponents),
		Metrics: []string{"degree", "betweenness"},
		Workers: 3,
	}, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 8, res.Vertices)
	assert.Equal(t, 6, res.Edges)
	assert.Equal(t, 2, res.Components)
	assert.Equal(t, centrality.DefaultTopK, res.TopK)
	assert.Zero(t, res.Failed())
	require.Len(t, res.Metrics, 2)

	deg := res.Metrics[0]
	assert.Equal(t, centrality.Degree, deg.Kind)
	require.Len(t, deg.Components, 2)
	assert.Equal(t, []int{2, 3, 4, 1, 5}, labelsOf(deg.Components[0]))
	assert.Equal(t, []int{10, 11, 12}, labelsOf(deg.Components[1]))
	assert.Equal(t, 5, deg.Components[0].Size)
	assert.Equal(t, 1, deg.Components[1].Index)

	btw := res.Metrics[1]
	assert.Equal(t, []int{3, 2, 4, 1, 5}, labelsOf(btw.Components[0]))
	assert.InDelta(t, 4.0, btw.Components[0].Top[0].Score, 1e-12)
}

func TestRun_TopKTruncates(t *testing.T) {
	res, err := pipeline.Run(context.Background(), pipeline.Settings{
		Input:   writeEdges(t, twoComponents),
		Metrics: []string{"closeness"},
		TopK:    2,
	}, zerolog.Nop())
	require.NoError(t, err)

	comps := res.Metrics[0].Components
	assert.Equal(t, []int{3, 2}, labelsOf(comps[0]))
	assert.Equal(t, []int{10, 11}, labelsOf(comps[1]))
}

func TestRun_UnsupportedMetricIsRecoverable(t *testing.T) {
	res, err := pipeline.Run(context.Background(), pipeline.Settings{
		Input:   writeEdges(t, twoComponents),
		Metrics: []string{"pagerank", "degree"},
	}, zerolog.Nop())
	require.NoError(t, err)

	bad := res.Metrics[0]
	assert.Equal(t, "pagerank", bad.Name)
	assert.Empty(t, bad.Kind)
	require.Len(t, bad.Components, 2)
	for _, c := range bad.Components {
		assert.ErrorIs(t, c.Err, centrality.ErrUnsupportedMetric)
		assert.Empty(t, c.Top)
	}
	assert.Equal(t, 2, res.Failed())

	good := res.Metrics[1]
	for _, c := range good.Components {
		assert.NoError(t, c.Err)
		assert.NotEmpty(t, c.Top)
	}
}

func TestRun_KatzNeedsAlpha(t *testing.T) {
	path := writeEdges(t, twoComponents)

	res, err := pipeline.Run(context.Background(), pipeline.Settings{
		Input:   path,
		Metrics: []string{"katz"},
	}, zerolog.Nop())
	require.NoError(t, err)
	assert.ErrorIs(t, res.Metrics[0].Components[0].Err, centrality.ErrBadAlpha)

	res, err = pipeline.Run(context.Background(), pipeline.Settings{
		Input:   path,
		Metrics: []string{"katz"},
		Alpha:   0.5,
	}, zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, res.Failed())
	assert.Equal(t, 3, res.Metrics[0].Components[0].Top[0].Vertex)
}

func TestRun_LoadErrorsAbort(t *testing.T) {
	_, err := pipeline.Run(context.Background(), pipeline.Settings{
		Input:   filepath.Join(t.TempDir(), "missing.txt"),
		Metrics: []string{"degree"},
	}, zerolog.Nop())
	assert.ErrorIs(t, err, loader.ErrFileAccess)

	res, err := pipeline.Run(context.Background(), pipeline.Settings{
		Input:   writeEdges(t, "1 2\n3 oops\n"),
		Metrics: []string{"degree"},
	}, zerolog.Nop())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, loader.ErrParse)
}

func TestRun_SettingsErrors(t *testing.T) {
	_, err := pipeline.Run(context.Background(), pipeline.Settings{Metrics: []string{"degree"}}, zerolog.Nop())
	assert.ErrorIs(t, err, pipeline.ErrNoInput)

	_, err = pipeline.Run(context.Background(), pipeline.Settings{Input: writeEdges(t, "1 2")}, zerolog.Nop())
	assert.ErrorIs(t, err, pipeline.ErrNoMetrics)

	_, err = pipeline.RunGraph(context.Background(), nil, pipeline.Settings{Metrics: []string{"degree"}}, zerolog.Nop())
	assert.ErrorIs(t, err, pipeline.ErrGraphNil)
}

func TestRunGraph_Cancelled(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(10))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pipeline.RunGraph(ctx, g, pipeline.Settings{Metrics: []string{"degree"}}, zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunGraph_TimeoutIsPerComputation(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(3000), builder.Shifted(5000, builder.Path(2)))
	require.NoError(t, err)

	res, err := pipeline.RunGraph(context.Background(), g, pipeline.Settings{
		Metrics: []string{"closeness", "degree"},
		Timeout: time.Nanosecond,
		Workers: 1,
	}, zerolog.Nop())
	require.NoError(t, err)

	big := res.Metrics[0].Components[0]
	assert.True(t, errors.Is(big.Err, context.DeadlineExceeded), "got %v", big.Err)

	// degree never blocks, so the deadline does not affect it
	for _, c := range res.Metrics[1].Components {
		assert.NoError(t, c.Err)
	}
}

func TestRunGraph_DeterministicAcrossWorkers(t *testing.T) {
	g, err := builder.Build(nil,
		builder.Cycle(7),
		builder.Shifted(100, builder.Star(6)),
		builder.Shifted(200, builder.Complete(4)),
		builder.Shifted(300, builder.Isolated(2)),
	)
	require.NoError(t, err)
	s := pipeline.Settings{Metrics: []string{"degree", "closeness", "betweenness", "katz"}, Alpha: 0.3}

	s.Workers = 1
	serial, err := pipeline.RunGraph(context.Background(), g, s, zerolog.Nop())
	require.NoError(t, err)

	s.Workers = 8
	parallel, err := pipeline.RunGraph(context.Background(), g, s, zerolog.Nop())
	require.NoError(t, err)

	require.Equal(t, len(serial.Metrics), len(parallel.Metrics))
	for i := range serial.Metrics {
		for j := range serial.Metrics[i].Components {
			a, b := serial.Metrics[i].Components[j], parallel.Metrics[i].Components[j]
			assert.Equal(t, a.Index, b.Index)
			assert.Equal(t, a.Top, b.Top)
			assert.Equal(t, a.Err, b.Err)
		}
	}
	assert.Equal(t, 5, serial.Components)
}

func TestRunGraph_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	g, err := builder.Build(nil, builder.Path(4))
	require.NoError(t, err)
	_, err = pipeline.RunGraph(context.Background(), g, pipeline.Settings{Metrics: []string{"degree", "nope"}}, log)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"graph split"`)
	assert.Contains(t, out, `"components":1`)
	assert.Contains(t, out, `"metric":"nope"`)
	assert.Contains(t, out, `"message":"run finished"`)
}
