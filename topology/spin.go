package topology

import (
	"fmt"

	"github.com/katalvlaran/tessel/edgewrap"
)

// quad names the half-edges around an edge e: S→T that a spin touches.
// Near face N holds ... nPrev2 → nPrev → e → nNext → nNext2 ...; far face R
// holds ... rPrev2 → rPrev → t → rNext → rNext2 ... where t is the twin of e.
type quad struct {
	e, t          int
	s, tv         int // near and far vertex of e
	n, r          int // near and far face of e
	nPrev, nPrev2 int
	nNext, nNext2 int
	rPrev, rPrev2 int
	rNext, rNext2 int
}

// quadAround gathers the neighborhood of e. It walks both face cycles once.
func (t *Topology) quadAround(e int) quad {
	ed := t.edges
	q := quad{e: e, t: ed[e].Twin}
	q.s, q.tv = ed[q.t].Vertex, ed[e].Vertex
	q.n, q.r = ed[q.t].Face, ed[e].Face
	q.nPrev = int(t.PrevFaceEdge(Edge(e)))
	q.nPrev2 = int(t.PrevFaceEdge(Edge(q.nPrev)))
	q.nNext = ed[e].FNext
	q.nNext2 = ed[q.nNext].FNext
	q.rPrev = int(t.PrevFaceEdge(Edge(q.t)))
	q.rPrev2 = int(t.PrevFaceEdge(Edge(q.rPrev)))
	q.rNext = ed[q.t].FNext
	q.rNext2 = ed[q.rNext].FNext
	return q
}

// canSpin holds the guards shared by both directions and returns the
// neighborhood when they pass.
func (t *Topology) canSpin(e Edge) (quad, bool) {
	if !t.HasEdge(e) {
		return quad{}, false
	}
	q := t.quadAround(int(e))
	switch {
	case q.n == q.r:
		return q, false
	case !t.IsInternal(Face(q.n)) || !t.IsInternal(Face(q.r)):
		return q, false
	case t.faceNeighborCounts[q.n] <= MinNeighborCount || t.faceNeighborCounts[q.r] <= MinNeighborCount:
		return q, false
	case t.vertexNeighborCounts[q.s] <= MinNeighborCount || t.vertexNeighborCounts[q.tv] <= MinNeighborCount:
		return q, false
	}
	return q, true
}

// CanSpinEdgeForward reports whether SpinEdgeForward(e) would succeed.
func (t *Topology) CanSpinEdgeForward(e Edge) bool {
	q, ok := t.canSpin(e)
	if !ok {
		return false
	}
	w, y := t.edges[q.rNext].Vertex, t.edges[q.nNext].Vertex
	return t.canConnect(q, w, y)
}

// CanSpinEdgeBackward reports whether SpinEdgeBackward(e) would succeed.
func (t *Topology) CanSpinEdgeBackward(e Edge) bool {
	q, ok := t.canSpin(e)
	if !ok {
		return false
	}
	x, z := t.edges[t.edges[q.nPrev].Twin].Vertex, t.edges[t.edges[q.rPrev].Twin].Vertex
	return t.canConnect(q, x, z)
}

// canConnect reports whether the spun edge may run from "from" to "to".
func (t *Topology) canConnect(q quad, from, to int) bool {
	if from == to || from == q.tv || to == q.s {
		return false
	}
	_, exists := t.FindEdge(Vertex(from), Vertex(to))
	return !exists
}

// SpinEdgeForward rotates e and its twin one step forward around the two
// faces they separate: e: S→T becomes W→Y where W follows S around the far
// face and Y follows T around the near face. Both faces keep their neighbor
// counts; S and T lose a neighbor, W and Y gain one.
//
// Returns an error wrapping ErrInvalidArgument, with the store untouched,
// when CanSpinEdgeForward(e) is false.
//
// Complexity: O(size of both faces + deg(W)).
func (t *Topology) SpinEdgeForward(e Edge) error {
	if !t.CanSpinEdgeForward(e) {
		return fmt.Errorf("%w: edge %d cannot spin forward", ErrInvalidArgument, e)
	}
	q := t.quadAround(int(e))
	ed := t.edges
	a, b, b2 := q.nPrev, q.nNext, q.nNext2
	c, d, d2 := q.rPrev, q.rNext, q.rNext2
	w, y := ed[d].Vertex, ed[b].Vertex

	if t.wraps != nil {
		t.spinWrapsForward(q)
	}

	// 1) Face cycles: N = a→d→e→b2, R = c→b→t→d2.
	ed[a].FNext, ed[d].FNext, ed[q.e].FNext = d, q.e, b2
	ed[c].FNext, ed[b].FNext, ed[q.t].FNext = b, q.t, d2

	// 2) Endpoints and ownership.
	ed[q.e].Vertex, ed[q.t].Vertex = y, w
	ed[ed[d].Twin].Face, ed[ed[b].Twin].Face = q.n, q.r

	// 3) Vertex rings follow from the face cycles.
	for _, x := range [...]int{a, d, q.e, c, b, q.t} {
		ed[ed[x].Twin].VNext = ed[x].FNext
	}

	t.vertexNeighborCounts[q.s]--
	t.vertexNeighborCounts[q.tv]--
	t.vertexNeighborCounts[w]++
	t.vertexNeighborCounts[y]++
	t.fixFirsts(q, d, b, b, d)

	return nil
}

// SpinEdgeBackward is the inverse of SpinEdgeForward: e: S→T becomes X→Z
// where X precedes S around the near face and Z precedes T around the far
// face.
//
// Returns an error wrapping ErrInvalidArgument, with the store untouched,
// when CanSpinEdgeBackward(e) is false.
func (t *Topology) SpinEdgeBackward(e Edge) error {
	if !t.CanSpinEdgeBackward(e) {
		return fmt.Errorf("%w: edge %d cannot spin backward", ErrInvalidArgument, e)
	}
	q := t.quadAround(int(e))
	ed := t.edges
	a, a2, b := q.nPrev, q.nPrev2, q.nNext
	c, c2, d := q.rPrev, q.rPrev2, q.rNext
	x, z := ed[ed[a].Twin].Vertex, ed[ed[c].Twin].Vertex

	if t.wraps != nil {
		t.spinWrapsBackward(q)
	}

	// 1) Face cycles: N = a2→e→c→b, R = c2→t→a→d.
	ed[a2].FNext, ed[q.e].FNext, ed[c].FNext = q.e, c, b
	ed[c2].FNext, ed[q.t].FNext, ed[a].FNext = q.t, a, d

	// 2) Endpoints and ownership.
	ed[q.e].Vertex, ed[q.t].Vertex = z, x
	ed[ed[c].Twin].Face, ed[ed[a].Twin].Face = q.n, q.r

	// 3) Vertex rings.
	for _, y := range [...]int{a2, q.e, c, c2, q.t, a} {
		ed[ed[y].Twin].VNext = ed[y].FNext
	}

	t.vertexNeighborCounts[q.s]--
	t.vertexNeighborCounts[q.tv]--
	t.vertexNeighborCounts[x]++
	t.vertexNeighborCounts[z]++
	t.fixFirsts(q, d, b, a, c)

	return nil
}

// fixFirsts moves first-edge designations off the edges that changed owner.
// sRepl and tRepl replace e and t as first edges of S and T; nLeft and
// rLeft are the edges that left N and R.
func (t *Topology) fixFirsts(q quad, sRepl, tRepl, nLeft, rLeft int) {
	if t.vertexFirstEdges[q.s] == q.e {
		t.vertexFirstEdges[q.s] = sRepl
	}
	if t.vertexFirstEdges[q.tv] == q.t {
		t.vertexFirstEdges[q.tv] = tRepl
	}
	if t.faceFirstEdges[q.n] == nLeft {
		t.faceFirstEdges[q.n] = q.e
	}
	if t.faceFirstEdges[q.r] == rLeft {
		t.faceFirstEdges[q.r] = q.t
	}
}

// spinWrapsForward recomputes the wraps touched by a forward spin. It must
// run before any link changes. e keeps its frame; its far vertex moves one
// step along b and its near vertex one step along d. d joins N and b joins R.
func (t *Topology) spinWrapsForward(q quad) {
	w := t.wraps
	b, d := q.nNext, q.rNext
	tb, td := t.edges[b].Twin, t.edges[d].Twin
	we := w[q.e]

	we = we.Set(edgewrap.EdgeToVert, edgewrap.Compose(we.Get(edgewrap.EdgeToVert), w[b].VertToVert()))
	we = we.Set(edgewrap.VertToEdge, edgewrap.Compose(we.Get(edgewrap.VertToEdge), w[d].VertToVert().Invert()))
	wtd := w[td].Set(edgewrap.EdgeToFace, edgewrap.Compose(w[td].Get(edgewrap.EdgeToFace), w[q.t].FaceToFace()))
	wtb := w[tb].Set(edgewrap.EdgeToFace, edgewrap.Compose(w[tb].Get(edgewrap.EdgeToFace), w[q.e].FaceToFace()))

	t.storePair(q.e, we)
	t.storePair(td, wtd)
	t.storePair(tb, wtb)
}

// spinWrapsBackward is the counterpart of spinWrapsForward: the far vertex
// of e steps back along c and its near vertex back along a; a joins R and c
// joins N.
func (t *Topology) spinWrapsBackward(q quad) {
	w := t.wraps
	a, c := q.nPrev, q.rPrev
	ta, tc := t.edges[a].Twin, t.edges[c].Twin
	we := w[q.e]

	we = we.Set(edgewrap.EdgeToVert, edgewrap.Compose(we.Get(edgewrap.EdgeToVert), w[c].VertToVert().Invert()))
	we = we.Set(edgewrap.VertToEdge, edgewrap.Compose(we.Get(edgewrap.VertToEdge), w[a].VertToVert()))
	wta := w[ta].Set(edgewrap.EdgeToFace, edgewrap.Compose(w[ta].Get(edgewrap.EdgeToFace), w[q.e].FaceToFace()))
	wtc := w[tc].Set(edgewrap.EdgeToFace, edgewrap.Compose(w[tc].Get(edgewrap.EdgeToFace), w[q.t].FaceToFace()))

	t.storePair(q.e, we)
	t.storePair(ta, wta)
	t.storePair(tc, wtc)
}

// storePair writes wrap v for e and its mirror for e's twin.
func (t *Topology) storePair(e int, v edgewrap.EdgeWrap) {
	v = v.Derive()
	t.wraps[e] = v
	t.wraps[t.edges[e].Twin] = v.Mirror()
}
