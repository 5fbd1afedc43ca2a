package attr

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/tessel/edgewrap"
	"github.com/katalvlaran/tessel/topology"
)

// Positions stores a canonical position per vertex and per face and
// resolves neighbor positions across wrap seams.
//
// Every "Far...FromNear..." method returns the far element of e placed in
// the frame of the near element: its stored position plus the translation
// named by the matching wrap relation of e.
type Positions struct {
	topo    *topology.Topology
	surface Surface
	verts   *Vertex[mgl64.Vec3]
	faces   *Face[mgl64.Vec3]
}

// NewPositions binds vertex positions, and optionally face positions, to
// topo. faces may be nil, in which case face centroids are computed; it may
// also cover only the internal faces. External faces keep a zero position.
func NewPositions(topo *topology.Topology, surface Surface, verts, faces []mgl64.Vec3) (*Positions, error) {
	vc, err := VertexFrom(topo, verts)
	if err != nil {
		return nil, fmt.Errorf("attr: vertex positions: %w", err)
	}
	p := &Positions{topo: topo, surface: surface, verts: vc}
	if faces == nil {
		faces = p.centroids()
	}
	if p.faces, err = FaceFrom(topo, faces); err != nil {
		return nil, fmt.Errorf("attr: face positions: %w", err)
	}
	return p, nil
}

// centroids averages the corners of every internal face in the face's own frame.
func (p *Positions) centroids() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, p.topo.FaceCount())
	for f := topology.Face(0); int(f) < p.topo.InternalFaceCount(); f++ {
		var sum mgl64.Vec3
		n := 0
		for e := range p.topo.FaceEdgeSeq(f) {
			sum = sum.Add(p.FarVertexFromNearFace(e))
			n++
		}
		out[f] = sum.Mul(1 / float64(n))
	}
	return out
}

// Topology returns the store the positions annotate.
func (p *Positions) Topology() *topology.Topology { return p.topo }

// Surface returns the periods the positions are laid out on.
func (p *Positions) Surface() Surface { return p.surface }

// Vertex returns the canonical position of v.
func (p *Positions) Vertex(v topology.Vertex) mgl64.Vec3 { return p.verts.Get(v) }

// Face returns the canonical position of f.
func (p *Positions) Face(f topology.Face) mgl64.Vec3 { return p.faces.Get(f) }

// Vertices exposes the vertex column.
func (p *Positions) Vertices() *Vertex[mgl64.Vec3] { return p.verts }

// Faces exposes the face column.
func (p *Positions) Faces() *Face[mgl64.Vec3] { return p.faces }

func (p *Positions) offset(e topology.Edge, r edgewrap.Relation) mgl64.Vec3 {
	return p.surface.Offset(p.topo.Wrap(e).Get(r))
}

// FarVertexFromNearVertex places the far vertex of e next to its near vertex.
func (p *Positions) FarVertexFromNearVertex(e topology.Edge) mgl64.Vec3 {
	return p.verts.Far(e).Add(p.offset(e, edgewrap.VertToVert))
}

// FarVertexFromNearFace places the far vertex of e in the frame of its near face.
func (p *Positions) FarVertexFromNearFace(e topology.Edge) mgl64.Vec3 {
	return p.verts.Far(e).Add(p.offset(e, edgewrap.FaceToVert))
}

// FarFaceFromNearFace places the far face of e next to its near face.
func (p *Positions) FarFaceFromNearFace(e topology.Edge) mgl64.Vec3 {
	return p.faces.Far(e).Add(p.offset(e, edgewrap.FaceToFace))
}

// FarFaceFromNearVertex places the far face of e in the frame of its near vertex.
func (p *Positions) FarFaceFromNearVertex(e topology.Edge) mgl64.Vec3 {
	return p.faces.Far(e).Add(p.offset(e, edgewrap.VertToFace))
}

// EdgeVector returns the displacement from the near vertex of e to its far vertex.
func (p *Positions) EdgeVector(e topology.Edge) mgl64.Vec3 {
	return p.FarVertexFromNearVertex(e).Sub(p.verts.Near(e))
}

// FaceStep returns the displacement from the near face of e to its far face.
func (p *Positions) FaceStep(e topology.Edge) mgl64.Vec3 {
	return p.FarFaceFromNearFace(e).Sub(p.faces.Near(e))
}

// FaceDelta returns the shortest displacement from face a to face b,
// taking periods into account.
func (p *Positions) FaceDelta(a, b topology.Face) mgl64.Vec3 {
	from := p.faces.Get(a)
	return p.surface.Nearest(from, p.faces.Get(b)).Sub(from)
}
