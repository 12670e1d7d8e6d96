package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vertexrank/builder"
)

func TestPath(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(5))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.Vertices())
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.EdgeExist(2, 3))
	assert.False(t, g.EdgeExist(0, 4))
}

func TestCycle(t *testing.T) {
	g, err := builder.Build(nil, builder.Cycle(4))
	require.NoError(t, err)

	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.EdgeExist(3, 0))
	for _, v := range g.Vertices() {
		assert.Equal(t, 2, g.Degree(v))
	}
}

func TestStar(t *testing.T) {
	g, err := builder.Build([]builder.BuilderOption{builder.WithFirstLabel(10)}, builder.Star(4))
	require.NoError(t, err)

	assert.Equal(t, []int{10, 11, 12, 13}, g.Vertices())
	assert.Equal(t, 3, g.Degree(10))
	assert.Equal(t, 1, g.Degree(13))
}

func TestComplete(t *testing.T) {
	g, err := builder.Build(nil, builder.Complete(5))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())

	single, err := builder.Build(nil, builder.Complete(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, single.Vertices())
	assert.Equal(t, 0, single.EdgeCount())
}

func TestShiftedComposition(t *testing.T) {
	g, err := builder.Build(nil,
		builder.Path(3),
		builder.Shifted(10, builder.Cycle(3)),
		builder.Shifted(20, builder.Isolated(2)),
	)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 10, 11, 12, 20, 21}, g.Vertices())
	assert.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
}

func TestBuild_Errors(t *testing.T) {
	_, err := builder.Build(nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(nil, builder.Star(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(nil, builder.Isolated(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.Build(nil, builder.Shifted(1, nil))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}
