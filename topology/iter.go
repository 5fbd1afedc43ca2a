package topology

import "iter"

// FaceEdgeIter walks the half-edges bounding one face in fNext order,
// starting at the face's first edge. It visits the first edge, then stops
// only when the next step would repeat it.
//
// Usage:
//
//	it := topo.FaceEdges(f)
//	for it.Next() {
//	    e := it.Edge()
//	    ...
//	}
type FaceEdgeIter struct {
	t       *Topology
	first   int
	current int
	next    int
}

// FaceEdges returns a fresh iterator over the edges of f.
func (t *Topology) FaceEdges(f Face) FaceEdgeIter {
	first := t.faceFirstEdges[f]
	return FaceEdgeIter{t: t, first: first, current: -1, next: first}
}

// Next advances to the next edge and reports whether there was one.
func (it *FaceEdgeIter) Next() bool {
	if it.next < 0 {
		return false
	}
	it.current = it.next
	if n := it.t.edges[it.current].FNext; n != it.first {
		it.next = n
	} else {
		it.next = -1
	}
	return true
}

// Edge returns the edge the iterator is positioned on.
func (it *FaceEdgeIter) Edge() Edge { return Edge(it.current) }

// Reset rewinds the iterator to the face's first edge.
func (it *FaceEdgeIter) Reset() {
	it.current, it.next = -1, it.first
}

// VertexEdgeIter walks the half-edges leaving one vertex in vNext order.
type VertexEdgeIter struct {
	t       *Topology
	first   int
	current int
	next    int
}

// VertexEdges returns a fresh iterator over the outgoing edges of v.
func (t *Topology) VertexEdges(v Vertex) VertexEdgeIter {
	first := t.vertexFirstEdges[v]
	return VertexEdgeIter{t: t, first: first, current: -1, next: first}
}

// Next advances to the next edge and reports whether there was one.
func (it *VertexEdgeIter) Next() bool {
	if it.next < 0 {
		return false
	}
	it.current = it.next
	if n := it.t.edges[it.current].VNext; n != it.first {
		it.next = n
	} else {
		it.next = -1
	}
	return true
}

// Edge returns the edge the iterator is positioned on.
func (it *VertexEdgeIter) Edge() Edge { return Edge(it.current) }

// Reset rewinds the iterator to the vertex's first edge.
func (it *VertexEdgeIter) Reset() {
	it.current, it.next = -1, it.first
}

// FaceExtendedEdgeIter walks the edges of a face and, after each face edge
// e, the outgoing edges around e's far vertex that lead to faces touching
// the face only at that vertex. Every face sharing an edge or a vertex with
// the start face is reached as the far face of exactly one visited edge on a
// manifold mesh.
//
// For face edge e with far vertex T, the corner walk starts after
// NextFaceEdge(e) and stops before the edge whose vNext is Twin(e): the
// far faces of those two edges are the edge neighbors already produced by
// the face walk. A vertex of degree 2 or 3 contributes no corner edges.
type FaceExtendedEdgeIter struct {
	t       *Topology
	first   int
	face    int // current face edge
	ring    int // next corner edge, or -1
	current int
	started bool
	done    bool
}

// FaceExtendedEdges returns a fresh extended iterator for f.
func (t *Topology) FaceExtendedEdges(f Face) FaceExtendedEdgeIter {
	first := t.faceFirstEdges[f]
	return FaceExtendedEdgeIter{t: t, first: first, face: -1, ring: -1, current: -1, done: first < 0}
}

// Next advances the walk and reports whether an edge was produced.
func (it *FaceExtendedEdgeIter) Next() bool {
	if it.done {
		return false
	}
	edges := it.t.edges
	if !it.started {
		it.started = true
		it.enterFaceEdge(it.first)
		return true
	}
	if it.ring >= 0 {
		it.current = it.ring
		stop := edges[it.face].Twin
		if n := edges[it.ring].VNext; n != stop && edges[n].VNext != stop {
			it.ring = n
		} else {
			it.ring = -1
		}
		return true
	}
	n := edges[it.face].FNext
	if n == it.first {
		it.done = true
		return false
	}
	it.enterFaceEdge(n)
	return true
}

// enterFaceEdge positions the walk on face edge e and primes its corner.
func (it *FaceExtendedEdgeIter) enterFaceEdge(e int) {
	edges := it.t.edges
	it.face, it.current = e, e
	stop := edges[e].Twin
	x := edges[edges[e].FNext].VNext
	if x == stop || edges[x].VNext == stop {
		it.ring = -1
	} else {
		it.ring = x
	}
}

// Edge returns the edge the iterator is positioned on.
func (it *FaceExtendedEdgeIter) Edge() Edge { return Edge(it.current) }

// IsCorner reports whether the current edge came from a corner walk rather
// than from the face boundary itself.
func (it *FaceExtendedEdgeIter) IsCorner() bool { return it.current != it.face }

// Reset rewinds the iterator to the start.
func (it *FaceExtendedEdgeIter) Reset() {
	it.face, it.ring, it.current = -1, -1, -1
	it.started, it.done = false, it.first < 0
}

// FaceEdgeSeq returns a restartable sequence over the edges of f.
func (t *Topology) FaceEdgeSeq(f Face) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		it := t.FaceEdges(f)
		for it.Next() {
			if !yield(it.Edge()) {
				return
			}
		}
	}
}

// VertexEdgeSeq returns a restartable sequence over the outgoing edges of v.
func (t *Topology) VertexEdgeSeq(v Vertex) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		it := t.VertexEdges(v)
		for it.Next() {
			if !yield(it.Edge()) {
				return
			}
		}
	}
}

// FaceExtendedEdgeSeq returns a restartable sequence over the extended walk of f.
func (t *Topology) FaceExtendedEdgeSeq(f Face) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		it := t.FaceExtendedEdges(f)
		for it.Next() {
			if !yield(it.Edge()) {
				return
			}
		}
	}
}

// FaceNeighbors returns the far faces of the edges of f, in order.
func (t *Topology) FaceNeighbors(f Face) []Face {
	out := make([]Face, 0, t.faceNeighborCounts[f])
	for e := range t.FaceEdgeSeq(f) {
		out = append(out, t.FarFace(e))
	}
	return out
}

// VertexNeighbors returns the far vertices of the edges leaving v, in order.
func (t *Topology) VertexNeighbors(v Vertex) []Vertex {
	out := make([]Vertex, 0, t.vertexNeighborCounts[v])
	for e := range t.VertexEdgeSeq(v) {
		out = append(out, t.FarVertex(e))
	}
	return out
}
