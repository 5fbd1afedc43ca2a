package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessel/builder"
	"github.com/katalvlaran/tessel/dfs"
	"github.com/katalvlaran/tessel/topology"
)

// buildGrid creates a cols×rows plane.
func buildGrid(t testing.TB, cols, rows int) *topology.Topology {
	t.Helper()
	g, err := builder.QuadGrid(cols, rows)
	require.NoError(t, err)
	topo, err := builder.Build(g)
	require.NoError(t, err)
	return topo
}

// wallAt blocks every step into or out of column x of a grid with the given width.
func wallAt(topo *topology.Topology, cols, x int) func(topology.Edge) bool {
	return func(e topology.Edge) bool {
		return int(topo.NearFace(e))%cols != x && int(topo.FarFace(e))%cols != x
	}
}

func TestComponents_NilTopology(t *testing.T) {
	res, err := dfs.Components(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrTopologyNil)

	_, err = dfs.ComponentOf(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrTopologyNil)
}

func TestComponents_SinglePlane(t *testing.T) {
	topo := buildGrid(t, 4, 4)
	res, err := dfs.Components(topo)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count())
	assert.Equal(t, []int{16}, res.Sizes)
	assert.Equal(t, dfs.Unlabeled, res.Labels[topo.FirstExternalFace()])
	assert.True(t, res.Connected(0, 15))
	assert.False(t, res.Connected(0, topo.FirstExternalFace()))
}

func TestComponents_DisjointQuads(t *testing.T) {
	mesh, err := builder.NewMesh(8, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}}, nil)
	require.NoError(t, err)
	topo, err := builder.Build(mesh)
	require.NoError(t, err)

	res, err := dfs.Components(topo)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count())
	assert.False(t, res.Connected(0, 1))
}

func TestComponents_Wall(t *testing.T) {
	topo := buildGrid(t, 5, 5)
	res, err := dfs.Components(topo, dfs.WithPassable(wallAt(topo, 5, 2)))
	require.NoError(t, err)

	// Left block, right block, and five isolated wall cells.
	assert.Equal(t, 7, res.Count())
	assert.Equal(t, 0, res.Largest())
	assert.Equal(t, 10, res.Sizes[0])
	assert.True(t, res.Connected(0, 21))
	assert.False(t, res.Connected(0, 4))
	assert.True(t, res.Connected(3, 24))
}

func TestComponentOf(t *testing.T) {
	topo := buildGrid(t, 5, 5)
	faces, err := dfs.ComponentOf(topo, 4, dfs.WithPassable(wallAt(topo, 5, 2)))
	require.NoError(t, err)
	assert.Len(t, faces, 10)
	for _, f := range faces {
		assert.GreaterOrEqual(t, int(f)%5, 3)
	}

	_, err = dfs.ComponentOf(topo, topo.FirstExternalFace())
	assert.ErrorIs(t, err, dfs.ErrFaceNotFound)
}

func TestComponents_HookAbort(t *testing.T) {
	topo := buildGrid(t, 3, 3)
	stop := errors.New("stop")
	seen := 0
	_, err := dfs.Components(topo, dfs.WithOnVisit(func(topology.Face, int) error {
		seen++
		if seen == 4 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 4, seen)
}

func TestComponents_Cancellation(t *testing.T) {
	topo := buildGrid(t, 3, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.Components(topo, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
