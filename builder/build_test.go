package builder_test

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessel/builder"
	"github.com/katalvlaran/tessel/edgewrap"
	"github.com/katalvlaran/tessel/topology"
)

// requireManifold asserts the structural properties every built store must have.
func requireManifold(t *testing.T, topo *topology.Topology) {
	t.Helper()
	require.NoError(t, topo.Validate())
	for e := topology.Edge(0); int(e) < topo.EdgeCount(); e++ {
		require.Equal(t, e, topo.Twin(topo.Twin(e)), "twin of twin of edge %d", e)
		// The near face owns e: walking it from its first edge must reach e.
		owner := topo.NearFace(e)
		found := false
		for x := range topo.FaceEdgeSeq(owner) {
			found = found || x == e
		}
		require.True(t, found, "edge %d missing from face %d", e, owner)
	}
}

func TestBuild_SingleQuad(t *testing.T) {
	mesh, err := builder.NewMesh(4, [][]int{{0, 1, 2, 3}}, nil)
	require.NoError(t, err)

	topo, err := builder.Build(mesh)
	require.NoError(t, err)
	requireManifold(t, topo)

	assert.Equal(t, 1, topo.InternalFaceCount())
	assert.Equal(t, 1, topo.ExternalFaceCount())
	assert.Equal(t, 8, topo.EdgeCount())
	for v := topology.Vertex(0); v < 4; v++ {
		assert.Equal(t, 2, topo.VertexNeighborCount(v), "vertex %d", v)
	}
	assert.Equal(t, 4, topo.FaceNeighborCount(topo.FirstExternalFace()))

	// Face 0's edge i points at neighbor i.
	i := 0
	for e := range topo.FaceEdgeSeq(0) {
		assert.Equal(t, topology.Vertex(i), topo.FarVertex(e))
		assert.Equal(t, topo.FirstExternalFace(), topo.FarFace(e))
		assert.True(t, topo.IsOuterBoundary(e))
		i++
	}
}

func TestBuild_GridShapes(t *testing.T) {
	tests := []struct {
		name                           string
		cols, rows                     int
		opts                           []builder.GridOption
		wantV, wantE, wantInt, wantExt int
	}{
		{"Plane3x2", 3, 2, nil, 12, 4*6 + 2*2 + 2*3, 6, 1},
		{"CylinderX3x2", 3, 2, []builder.GridOption{builder.WithWrapX()}, 9, 4*6 + 2*3, 6, 2},
		{"CylinderY2x3", 2, 3, []builder.GridOption{builder.WithWrapY()}, 9, 4*6 + 2*3, 6, 2},
		{"Torus3x3", 3, 3, []builder.GridOption{builder.WithWrapX(), builder.WithWrapY()}, 9, 36, 9, 0},
		{"Strip1x1", 1, 1, nil, 4, 8, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			grid, err := builder.QuadGrid(tc.cols, tc.rows, tc.opts...)
			require.NoError(t, err)
			topo, err := builder.Build(grid)
			require.NoError(t, err)
			requireManifold(t, topo)

			assert.Equal(t, tc.wantV, topo.VertexCount())
			assert.Equal(t, tc.wantE, topo.EdgeCount())
			assert.Equal(t, tc.wantInt, topo.InternalFaceCount())
			assert.Equal(t, tc.wantExt, topo.ExternalFaceCount())
			assert.True(t, topo.IsWrapped())
		})
	}
}

func TestBuild_Torus3x3AllNeighborsInternal(t *testing.T) {
	grid, err := builder.QuadGrid(3, 3, builder.WithWrapX(), builder.WithWrapY())
	require.NoError(t, err)
	topo, err := builder.Build(grid)
	require.NoError(t, err)

	require.Zero(t, topo.ExternalFaceCount())
	for f := topology.Face(0); int(f) < topo.FaceCount(); f++ {
		require.Equal(t, 4, topo.FaceNeighborCount(f))
		neighbors := topo.FaceNeighbors(f)
		require.Len(t, neighbors, 4)
		for _, n := range neighbors {
			assert.True(t, topo.IsInternal(n), "face %d neighbor %d", f, n)
			assert.NotEqual(t, f, n)
		}
	}
	for v := topology.Vertex(0); int(v) < topo.VertexCount(); v++ {
		assert.Equal(t, 4, topo.VertexNeighborCount(v))
	}
}

// offset turns a generic wrap into a translation.
func offset(g edgewrap.Wrap, axis0, axis1 mgl64.Vec3) mgl64.Vec3 {
	return axis0.Mul(float64(g.Axis0())).Add(axis1.Mul(float64(g.Axis1())))
}

func TestBuild_WrapsPlaceNeighborsAdjacent(t *testing.T) {
	const cell = 2.0
	shapes := map[string][]builder.GridOption{
		"Plane":     {builder.WithCellSize(cell)},
		"CylinderX": {builder.WithCellSize(cell), builder.WithWrapX()},
		"CylinderY": {builder.WithCellSize(cell), builder.WithWrapY()},
		"Torus":     {builder.WithCellSize(cell), builder.WithWrapX(), builder.WithWrapY()},
	}
	for name, opts := range shapes {
		t.Run(name, func(t *testing.T) {
			grid, err := builder.QuadGrid(4, 3, opts...)
			require.NoError(t, err)
			topo, err := builder.Build(grid)
			require.NoError(t, err)

			verts, faces := grid.Positions(), grid.FacePositions()
			a0, a1 := grid.Periods()
			for e := topology.Edge(0); int(e) < topo.EdgeCount(); e++ {
				w := topo.Wrap(e)
				near, far := topo.NearVertex(e), topo.FarVertex(e)
				d := verts[far].Add(offset(w.VertToVert(), a0, a1)).Sub(verts[near]).Len()
				require.InDelta(t, cell, d, 1e-9, "VertToVert of edge %d (%s)", e, w)

				nf, ff := topo.NearFace(e), topo.FarFace(e)
				if topo.IsInternal(nf) {
					d = verts[far].Add(offset(w.FaceToVert(), a0, a1)).Sub(faces[nf]).Len()
					require.InDelta(t, cell*math.Sqrt2/2, d, 1e-9, "FaceToVert of edge %d (%s)", e, w)
				}
				if topo.IsInternal(nf) && topo.IsInternal(ff) {
					d = faces[ff].Add(offset(w.FaceToFace(), a0, a1)).Sub(faces[nf]).Len()
					require.InDelta(t, cell, d, 1e-9, "FaceToFace of edge %d (%s)", e, w)
				}
				if topo.IsInternal(ff) {
					d = faces[ff].Add(offset(w.VertToFace(), a0, a1)).Sub(verts[near]).Len()
					require.InDelta(t, cell*math.Sqrt2/2, d, 1e-9, "VertToFace of edge %d (%s)", e, w)
				}
			}
		})
	}
}

func TestBuild_WithoutWrapTracking(t *testing.T) {
	grid, err := builder.QuadGrid(3, 3, builder.WithWrapX())
	require.NoError(t, err)
	topo, err := builder.Build(grid, builder.WithWrapTracking(false))
	require.NoError(t, err)
	assert.False(t, topo.IsWrapped())
	assert.Equal(t, edgewrap.EdgeWrap(0), topo.Wrap(0))
}

func TestBuild_TwinWrapsMirror(t *testing.T) {
	shapes := map[string][]builder.GridOption{
		"CylinderX": {builder.WithWrapX()},
		"Torus":     {builder.WithWrapX(), builder.WithWrapY()},
	}
	for name, opts := range shapes {
		t.Run(name, func(t *testing.T) {
			grid, err := builder.QuadGrid(4, 3, opts...)
			require.NoError(t, err)
			topo, err := builder.Build(grid)
			require.NoError(t, err)

			seam := 0
			for e := topology.Edge(0); int(e) < topo.EdgeCount(); e++ {
				w := topo.Wrap(e)
				require.True(t, w.IsCanonical(), "edge %d: %s", e, w)
				require.Equal(t, w.Mirror(), topo.Wrap(topo.Twin(e)), "edge %d", e)
				if !w.FaceToFace().IsNone() {
					seam++
				}
			}
			assert.Positive(t, seam)
		})
	}
}

// Two closed tetrahedra sharing only vertex 0: each half is closed, so
// the face list has no boundary, but vertex 0 would need two rings.
func TestBuild_PinchedSolidsRejected(t *testing.T) {
	tetra := func(a, b, c, d int) [][]int {
		return [][]int{{a, b, c}, {a, c, d}, {a, d, b}, {b, d, c}}
	}
	faces := append(tetra(0, 1, 2, 3), tetra(0, 4, 5, 6)...)
	mesh, err := builder.NewMesh(7, faces, nil)
	require.NoError(t, err)
	assert.Zero(t, mesh.ExternalFaceCount())

	_, err = builder.Build(mesh)
	assert.ErrorIs(t, err, builder.ErrInvalidTopology)
}

func TestBuild_PlatonicSolids(t *testing.T) {
	tests := []struct {
		name        builder.PlatonicName
		v, f, sides int
	}{
		{builder.Tetrahedron, 4, 4, 3},
		{builder.Cube, 8, 6, 4},
		{builder.Octahedron, 6, 8, 3},
		{builder.Dodecahedron, 20, 12, 5},
		{builder.Icosahedron, 12, 20, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name.String(), func(t *testing.T) {
			mesh, err := builder.PlatonicSolid(tc.name, builder.WithRadius(3))
			require.NoError(t, err)
			topo, err := builder.Build(mesh)
			require.NoError(t, err)
			requireManifold(t, topo)

			assert.Equal(t, tc.v, topo.VertexCount())
			assert.Equal(t, tc.f, topo.InternalFaceCount())
			assert.Zero(t, topo.ExternalFaceCount())
			// Euler characteristic of a sphere: V - E + F = 2.
			assert.Equal(t, 2, topo.VertexCount()-topo.EdgeCount()/2+topo.FaceCount())
			for f := topology.Face(0); int(f) < topo.FaceCount(); f++ {
				assert.Equal(t, tc.sides, topo.FaceNeighborCount(f))
			}
			for _, p := range mesh.Positions() {
				assert.InDelta(t, 3.0, p.Len(), 1e-9)
			}
		})
	}
}

func TestBuild_Geodesic(t *testing.T) {
	for n := 0; n <= 3; n++ {
		mesh, err := builder.Geodesic(n)
		require.NoError(t, err)
		topo, err := builder.Build(mesh)
		require.NoError(t, err)
		requireManifold(t, topo)

		pow := 1 << (2 * n)
		assert.Equal(t, 20*pow, topo.InternalFaceCount())
		assert.Equal(t, 2*30*pow, topo.EdgeCount())
		assert.Equal(t, 10*pow+2, topo.VertexCount())
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name  string
		faces [][]int
		nv    int
		want  error
	}{
		{"NoFaces", nil, 3, builder.ErrTooFewFaces},
		{"Digon", [][]int{{0, 1}}, 2, builder.ErrBadSize},
		{"OutOfRange", [][]int{{0, 1, 5}}, 3, builder.ErrIndexOutOfRange},
		{"DuplicateDirectedEdge", [][]int{{0, 1, 2}, {0, 1, 3}}, 4, builder.ErrInvalidTopology},
		{"Bowtie", [][]int{{0, 1, 2}, {0, 3, 4}}, 5, builder.ErrInvalidTopology},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewMesh(tc.nv, tc.faces, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

// lyingIndexer misreports its totals.
type lyingIndexer struct{ *builder.Mesh }

func (l lyingIndexer) EdgeCount() int { return l.Mesh.EdgeCount() + 1 }

// unusedVertex declares one vertex no face touches.
type unusedVertex struct{ *builder.Mesh }

func (u unusedVertex) VertexCount() int { return u.Mesh.VertexCount() + 1 }

func TestBuild_IndexerErrors(t *testing.T) {
	mesh, err := builder.NewMesh(3, [][]int{{0, 1, 2}}, nil)
	require.NoError(t, err)

	_, err = builder.Build(nil)
	assert.ErrorIs(t, err, builder.ErrOptionViolation)

	_, err = builder.Build(lyingIndexer{mesh})
	assert.ErrorIs(t, err, builder.ErrInvalidTopology)

	_, err = builder.Build(unusedVertex{mesh})
	assert.ErrorIs(t, err, builder.ErrInvalidTopology)
}

func TestQuadGrid_Errors(t *testing.T) {
	_, err := builder.QuadGrid(0, 3)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.QuadGrid(2, 3, builder.WithWrapX())
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.QuadGrid(3, 2, builder.WithWrapY())
	assert.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.PlatonicSolid(builder.PlatonicName(42))
	assert.ErrorIs(t, err, builder.ErrUnknownSolid)
	_, err = builder.Geodesic(-1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithCellSize(0) })
	assert.Panics(t, func() { builder.WithRadius(-1) })
	assert.Panics(t, func() { builder.WithLogger(nil) })
}

func TestParsePlatonicName(t *testing.T) {
	p, ok := builder.ParsePlatonicName("Dodecahedron")
	assert.True(t, ok)
	assert.Equal(t, builder.Dodecahedron, p)
	p, ok = builder.ParsePlatonicName("cube")
	assert.True(t, ok)
	assert.Equal(t, builder.Cube, p)
	_, ok = builder.ParsePlatonicName("Sphere")
	assert.False(t, ok)
}

func BenchmarkBuild_Torus64(b *testing.B) {
	grid, err := builder.QuadGrid(64, 64, builder.WithWrapX(), builder.WithWrapY())
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Build(grid); err != nil {
			b.Fatal(err)
		}
	}
}
