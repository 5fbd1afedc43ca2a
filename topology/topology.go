package topology

import (
	"fmt"

	"github.com/katalvlaran/tessel/edgewrap"
)

// New adopts the arrays in d as a store and validates them.
// The store takes ownership of the slices; callers must not modify them afterwards.
// Returns an error wrapping ErrInvalidTopology if any invariant fails.
//
// Complexity: O(V + E + F).
func New(d Data) (*Topology, error) {
	if d.Wraps != nil && len(d.Wraps) != len(d.Edges) {
		return nil, fmt.Errorf("%w: %d wraps for %d edges", ErrInvalidTopology, len(d.Wraps), len(d.Edges))
	}
	t := &Topology{
		vertexNeighborCounts: d.VertexNeighborCounts,
		vertexFirstEdges:     d.VertexFirstEdges,
		edges:                d.Edges,
		faceNeighborCounts:   d.FaceNeighborCounts,
		faceFirstEdges:       d.FaceFirstEdges,
		firstExternalFace:    d.FirstExternalFace,
		wraps:                d.Wraps,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Raw exposes the backing arrays for attribute containers and tooling.
// The returned slices alias the store and must be treated as read-only.
func (t *Topology) Raw() Data {
	return Data{
		VertexNeighborCounts: t.vertexNeighborCounts,
		VertexFirstEdges:     t.vertexFirstEdges,
		Edges:                t.edges,
		FaceNeighborCounts:   t.faceNeighborCounts,
		FaceFirstEdges:       t.faceFirstEdges,
		FirstExternalFace:    t.firstExternalFace,
		Wraps:                t.wraps,
	}
}

// VertexCount returns the number of vertices.
func (t *Topology) VertexCount() int { return len(t.vertexNeighborCounts) }

// EdgeCount returns the number of half-edges, internal and external.
func (t *Topology) EdgeCount() int { return len(t.edges) }

// FaceCount returns the number of faces, internal and external.
func (t *Topology) FaceCount() int { return len(t.faceNeighborCounts) }

// InternalFaceCount returns the number of real polygons.
func (t *Topology) InternalFaceCount() int { return t.firstExternalFace }

// ExternalFaceCount returns the number of synthetic outside faces.
func (t *Topology) ExternalFaceCount() int { return len(t.faceNeighborCounts) - t.firstExternalFace }

// FirstExternalFace returns the index of the first external face.
func (t *Topology) FirstExternalFace() Face { return Face(t.firstExternalFace) }

// IsWrapped reports whether the store tracks edge wrap bits.
func (t *Topology) IsWrapped() bool { return t.wraps != nil }

// ---- vertices ----

// VertexNeighborCount returns the number of half-edges leaving v.
func (t *Topology) VertexNeighborCount(v Vertex) int { return t.vertexNeighborCounts[v] }

// VertexFirstEdge returns the designated first outgoing half-edge of v.
func (t *Topology) VertexFirstEdge(v Vertex) Edge { return Edge(t.vertexFirstEdges[v]) }

// HasVertex reports whether v is a valid index in t.
func (t *Topology) HasVertex(v Vertex) bool { return v >= 0 && int(v) < len(t.vertexNeighborCounts) }

// ---- faces ----

// FaceNeighborCount returns the number of half-edges bounding f.
func (t *Topology) FaceNeighborCount(f Face) int { return t.faceNeighborCounts[f] }

// FaceFirstEdge returns the designated first bounding half-edge of f.
func (t *Topology) FaceFirstEdge(f Face) Edge { return Edge(t.faceFirstEdges[f]) }

// HasFace reports whether f is a valid index in t.
func (t *Topology) HasFace(f Face) bool { return f >= 0 && int(f) < len(t.faceNeighborCounts) }

// IsInternal reports whether f is a real polygon.
func (t *Topology) IsInternal(f Face) bool { return f >= 0 && int(f) < t.firstExternalFace }

// IsExternal reports whether f is a synthetic outside face.
func (t *Topology) IsExternal(f Face) bool { return int(f) >= t.firstExternalFace }

// ---- edges ----

// HasEdge reports whether e is a valid index in t.
func (t *Topology) HasEdge(e Edge) bool { return e >= 0 && int(e) < len(t.edges) }

// Twin returns the oppositely directed half-edge of e.
func (t *Topology) Twin(e Edge) Edge { return Edge(t.edges[e].Twin) }

// FarVertex returns the vertex e points at.
func (t *Topology) FarVertex(e Edge) Vertex { return Vertex(t.edges[e].Vertex) }

// NearVertex returns the vertex e leaves from.
func (t *Topology) NearVertex(e Edge) Vertex { return Vertex(t.edges[t.edges[e].Twin].Vertex) }

// FarFace returns the face on the other side of e.
func (t *Topology) FarFace(e Edge) Face { return Face(t.edges[e].Face) }

// NearFace returns the face whose boundary cycle contains e.
func (t *Topology) NearFace(e Edge) Face { return Face(t.edges[t.edges[e].Twin].Face) }

// NextVertexEdge returns the next half-edge leaving the same vertex (vNext).
func (t *Topology) NextVertexEdge(e Edge) Edge { return Edge(t.edges[e].VNext) }

// NextFaceEdge returns the next half-edge around the near face (fNext).
func (t *Topology) NextFaceEdge(e Edge) Edge { return Edge(t.edges[e].FNext) }

// PrevVertexEdge returns the half-edge whose vNext is e.
// Complexity: O(deg); walks the ring.
func (t *Topology) PrevVertexEdge(e Edge) Edge {
	p := int(e)
	for t.edges[p].VNext != int(e) {
		p = t.edges[p].VNext
	}
	return Edge(p)
}

// PrevFaceEdge returns the half-edge whose fNext is e.
// Complexity: O(face size); walks the cycle.
func (t *Topology) PrevFaceEdge(e Edge) Edge {
	p := int(e)
	for t.edges[p].FNext != int(e) {
		p = t.edges[p].FNext
	}
	return Edge(p)
}

// IsBoundary reports whether either side of e is an external face.
func (t *Topology) IsBoundary(e Edge) bool {
	return t.IsExternal(t.FarFace(e)) || t.IsExternal(t.NearFace(e))
}

// IsOuterBoundary reports whether e leads from an internal face to an external one.
func (t *Topology) IsOuterBoundary(e Edge) bool {
	return t.IsExternal(t.FarFace(e)) && !t.IsExternal(t.NearFace(e))
}

// Wrap returns the wrap bits of e, or zero when wrap tracking is disabled.
func (t *Topology) Wrap(e Edge) edgewrap.EdgeWrap {
	if t.wraps == nil {
		return 0
	}
	return t.wraps[e]
}

// FindEdge returns the half-edge leaving from and pointing at to.
// Complexity: O(deg(from)).
func (t *Topology) FindEdge(from, to Vertex) (Edge, bool) {
	first := t.vertexFirstEdges[from]
	e := first
	for {
		if t.edges[e].Vertex == int(to) {
			return Edge(e), true
		}
		e = t.edges[e].VNext
		if e == first {
			return NoEdge, false
		}
	}
}
