package topology_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tessel/builder"
	"github.com/katalvlaran/tessel/edgewrap"
	"github.com/katalvlaran/tessel/topology"
)

// TopologySuite exercises the store on a 4×4 plane and a 4×4 torus.
type TopologySuite struct {
	suite.Suite
	planeGrid *builder.Grid
	plane     *topology.Topology
	torusGrid *builder.Grid
	torus     *topology.Topology
}

func (s *TopologySuite) SetupTest() {
	var err error
	s.planeGrid, err = builder.QuadGrid(4, 4)
	s.Require().NoError(err)
	s.plane, err = builder.Build(s.planeGrid)
	s.Require().NoError(err)

	s.torusGrid, err = builder.QuadGrid(4, 4, builder.WithWrapX(), builder.WithWrapY())
	s.Require().NoError(err)
	s.torus, err = builder.Build(s.torusGrid)
	s.Require().NoError(err)
}

// TestStructuralInvariants checks twin symmetry, both closures and face ownership.
func (s *TopologySuite) TestStructuralInvariants() {
	for _, topo := range []*topology.Topology{s.plane, s.torus} {
		r := s.Require()
		r.NoError(topo.Validate())
		for e := topology.Edge(0); int(e) < topo.EdgeCount(); e++ {
			r.Equal(e, topo.Twin(topo.Twin(e)))
			r.Equal(topo.NextFaceEdge(e), topo.NextVertexEdge(topo.Twin(e)))
			r.Equal(e, topo.PrevFaceEdge(topo.NextFaceEdge(e)))
			r.Equal(e, topo.PrevVertexEdge(topo.NextVertexEdge(e)))
		}
		for f := topology.Face(0); int(f) < topo.FaceCount(); f++ {
			n := 0
			for e := range topo.FaceEdgeSeq(f) {
				r.Equal(f, topo.NearFace(e))
				n++
			}
			r.Equal(topo.FaceNeighborCount(f), n)
		}
		for v := topology.Vertex(0); int(v) < topo.VertexCount(); v++ {
			n := 0
			for e := range topo.VertexEdgeSeq(v) {
				r.Equal(v, topo.NearVertex(e))
				n++
			}
			r.Equal(topo.VertexNeighborCount(v), n)
		}
	}
}

// TestIteratorReset checks that struct iterators restart from the first edge.
func (s *TopologySuite) TestIteratorReset() {
	it := s.plane.FaceEdges(5)
	var first []topology.Edge
	for it.Next() {
		first = append(first, it.Edge())
	}
	s.Require().Len(first, 4)
	s.Require().False(it.Next())

	it.Reset()
	var second []topology.Edge
	for it.Next() {
		second = append(second, it.Edge())
	}
	s.Require().Equal(first, second)
	s.Require().Equal(s.plane.FaceFirstEdge(5), first[0])

	vit := s.torus.VertexEdges(0)
	n := 0
	for vit.Next() {
		n++
	}
	s.Require().Equal(4, n)
}

// TestExtendedWalk checks that an interior quad reaches its 8 surrounding cells.
func (s *TopologySuite) TestExtendedWalk() {
	check := func(topo *topology.Topology, f topology.Face) {
		seen := map[topology.Face]int{}
		it := topo.FaceExtendedEdges(f)
		corners := 0
		for it.Next() {
			seen[topo.FarFace(it.Edge())]++
			if it.IsCorner() {
				corners++
			}
		}
		s.Require().Len(seen, 8, "face %d", f)
		s.Require().Equal(4, corners)
		for g, n := range seen {
			s.Require().Equal(1, n, "face %d reached %d times from %d", g, n, f)
			s.Require().NotEqual(f, g)
		}
	}
	check(s.plane, topology.Face(s.planeGrid.Face(1, 1)))
	check(s.plane, topology.Face(s.planeGrid.Face(2, 2)))
	for f := topology.Face(0); int(f) < s.torus.FaceCount(); f++ {
		check(s.torus, f)
	}

	// A corner cell: two edge neighbors, one diagonal, the outside.
	seen := map[topology.Face]bool{}
	for e := range s.plane.FaceExtendedEdgeSeq(topology.Face(s.planeGrid.Face(0, 0))) {
		seen[s.plane.FarFace(e)] = true
	}
	s.Require().Len(seen, 4)
	s.Require().True(seen[s.plane.FirstExternalFace()])
}

// TestFindEdge checks lookup by vertex pair.
func (s *TopologySuite) TestFindEdge() {
	g := s.planeGrid
	e, ok := s.plane.FindEdge(topology.Vertex(g.Vertex(1, 1)), topology.Vertex(g.Vertex(2, 1)))
	s.Require().True(ok)
	s.Require().Equal(topology.Vertex(g.Vertex(2, 1)), s.plane.FarVertex(e))
	s.Require().Equal(topology.Vertex(g.Vertex(1, 1)), s.plane.NearVertex(e))

	_, ok = s.plane.FindEdge(topology.Vertex(g.Vertex(1, 1)), topology.Vertex(g.Vertex(2, 2)))
	s.Require().False(ok)
}

// TestCloneIsIndependent mutates a clone and checks that the original is untouched.
func (s *TopologySuite) TestCloneIsIndependent() {
	before := snapshot(s.torus)
	clone := s.torus.Clone()
	s.Require().Equal(before, snapshot(clone))

	spun := false
	for e := topology.Edge(0); int(e) < clone.EdgeCount() && !spun; e++ {
		if clone.CanSpinEdgeForward(e) {
			s.Require().NoError(clone.SpinEdgeForward(e))
			spun = true
		}
	}
	s.Require().True(spun)
	s.Require().NoError(clone.Validate())
	s.Require().NotEqual(before, snapshot(clone))
	s.Require().Equal(before, snapshot(s.torus))
	s.Require().NoError(s.torus.Validate())
}

// TestSpinRoundTrip spins every spinnable edge forward then backward.
func (s *TopologySuite) TestSpinRoundTrip() {
	for _, topo := range []*topology.Topology{s.plane, s.torus} {
		want := snapshot(topo)
		spins := 0
		for e := topology.Edge(0); int(e) < topo.EdgeCount(); e++ {
			if !topo.CanSpinEdgeForward(e) {
				continue
			}
			c := topo.Clone()
			near, far := c.NearVertex(e), c.FarVertex(e)
			degNear, degFar := c.VertexNeighborCount(near), c.VertexNeighborCount(far)

			s.Require().NoError(c.SpinEdgeForward(e))
			s.Require().NoError(c.Validate(), "after forward spin of %d", e)
			s.Require().Equal(degNear-1, c.VertexNeighborCount(near))
			s.Require().Equal(degFar-1, c.VertexNeighborCount(far))
			s.Require().NotEqual(near, c.NearVertex(e))

			s.Require().True(c.CanSpinEdgeBackward(e))
			s.Require().NoError(c.SpinEdgeBackward(e))
			s.Require().NoError(c.Validate(), "after backward spin of %d", e)
			s.Require().Equal(want, snapshot(c), "round trip of edge %d", e)
			spins++
		}
		s.Require().Positive(spins)
	}
}

// TestSpinKeepsWrapsLocal checks the wraps of a spun torus geometrically:
// the spun edge spans a 2×1 rectangle diagonally, every other edge stays a
// cell side, and faces that became adjacent through the spin are diagonal.
func (s *TopologySuite) TestSpinKeepsWrapsLocal() {
	verts, faces := s.torusGrid.Positions(), s.torusGrid.FacePositions()
	a0, a1 := s.torusGrid.Periods()
	offset := func(g edgewrap.Wrap) mgl64.Vec3 {
		return a0.Mul(float64(g.Axis0())).Add(a1.Mul(float64(g.Axis1())))
	}

	for e := topology.Edge(0); int(e) < s.torus.EdgeCount(); e++ {
		c := s.torus.Clone()
		s.Require().NoError(c.SpinEdgeForward(e))
		for x := topology.Edge(0); int(x) < c.EdgeCount(); x++ {
			w := c.Wrap(x)
			vv := verts[c.FarVertex(x)].Add(offset(w.VertToVert())).Sub(verts[c.NearVertex(x)]).Len()
			if x == e || x == c.Twin(e) {
				s.Require().InDelta(math.Sqrt(5), vv, 1e-9, "spun edge %d", e)
			} else {
				s.Require().InDelta(1.0, vv, 1e-9, "edge %d after spinning %d", x, e)
			}
			ff := faces[c.FarFace(x)].Add(offset(w.FaceToFace())).Sub(faces[c.NearFace(x)]).Len()
			s.Require().True(math.Abs(ff-1) < 1e-9 || math.Abs(ff-math.Sqrt2) < 1e-9,
				"face distance %g across edge %d after spinning %d", ff, x, e)
		}
	}
}

// TestSpinGuards checks the illegal spins.
func (s *TopologySuite) TestSpinGuards() {
	r := s.Require()

	// Boundary edges of the plane border the outside face.
	for e := topology.Edge(0); int(e) < s.plane.EdgeCount(); e++ {
		if s.plane.IsBoundary(e) {
			r.False(s.plane.CanSpinEdgeForward(e))
			r.False(s.plane.CanSpinEdgeBackward(e))
		}
	}

	before := snapshot(s.plane)
	err := s.plane.SpinEdgeForward(s.plane.FaceFirstEdge(s.plane.FirstExternalFace()))
	r.True(errors.Is(err, topology.ErrInvalidArgument))
	err = s.plane.SpinEdgeBackward(topology.Edge(-1))
	r.True(errors.Is(err, topology.ErrInvalidArgument))
	r.Equal(before, snapshot(s.plane))

	// Every tetrahedron spin would duplicate an existing edge.
	mesh, err := builder.PlatonicSolid(builder.Tetrahedron)
	r.NoError(err)
	tetra, err := builder.Build(mesh)
	r.NoError(err)
	for e := topology.Edge(0); int(e) < tetra.EdgeCount(); e++ {
		r.False(tetra.CanSpinEdgeForward(e))
		r.False(tetra.CanSpinEdgeBackward(e))
	}
}

// TestNewRejectsCorruption checks that New validates adopted arrays.
func (s *TopologySuite) TestNewRejectsCorruption() {
	r := s.Require()
	good := cloneData(s.plane.Raw())
	_, err := topology.New(good)
	r.NoError(err)

	tests := map[string]func(d *topology.Data){
		"BrokenTwin":     func(d *topology.Data) { d.Edges[0].Twin = 2 },
		"OpenFaceCycle":  func(d *topology.Data) { d.Edges[0].FNext = 0 },
		"WrongCount":     func(d *topology.Data) { d.FaceNeighborCounts[0] = 5 },
		"ThresholdRange": func(d *topology.Data) { d.FirstExternalFace = len(d.FaceNeighborCounts) + 1 },
		"ShortWraps":     func(d *topology.Data) { d.Wraps = d.Wraps[:1] },
		"OutOfRange":     func(d *topology.Data) { d.Edges[3].VNext = -7 },
	}
	for name, corrupt := range tests {
		d := cloneData(s.plane.Raw())
		corrupt(&d)
		_, err := topology.New(d)
		r.Error(err, name)
		r.True(errors.Is(err, topology.ErrInvalidTopology), "%s: %v", name, err)
	}
}

func TestTopologySuite(t *testing.T) {
	suite.Run(t, new(TopologySuite))
}

// state is the comparable part of a store: links, counts and wraps.
// First edges are excluded because spins may move them.
type state struct {
	edges       []topology.EdgeRecord
	vertexCount []int
	faceCount   []int
	wraps       []edgewrap.EdgeWrap
}

func snapshot(t *topology.Topology) state {
	d := t.Raw()
	return state{
		edges:       slices.Clone(d.Edges),
		vertexCount: slices.Clone(d.VertexNeighborCounts),
		faceCount:   slices.Clone(d.FaceNeighborCounts),
		wraps:       slices.Clone(d.Wraps),
	}
}

func cloneData(d topology.Data) topology.Data {
	return topology.Data{
		VertexNeighborCounts: slices.Clone(d.VertexNeighborCounts),
		VertexFirstEdges:     slices.Clone(d.VertexFirstEdges),
		Edges:                slices.Clone(d.Edges),
		FaceNeighborCounts:   slices.Clone(d.FaceNeighborCounts),
		FaceFirstEdges:       slices.Clone(d.FaceFirstEdges),
		FirstExternalFace:    d.FirstExternalFace,
		Wraps:                slices.Clone(d.Wraps),
	}
}

func TestEdgeHandles(t *testing.T) {
	require.Equal(t, 3, topology.Edge(3).Index())
	require.Equal(t, -1, topology.NoFace.Index())
	require.Equal(t, -1, topology.NoVertex.Index())
}
