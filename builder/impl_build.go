// SPDX-License-Identifier: MIT
// Package: tessel/builder
//
// impl_build.go - the passes behind Build.
//
// Passes:
//  1. seed internal half-edges, face cycles and unordered vertex rings;
//  2. resolve twins, emitting an external half-edge for every boundary edge;
//  3. order every vertex ring so that vNext(twin(e)) == fNext(e);
//  4. wind the external faces along the ordered rings;
//  5. (optional) derive per-edge wraps and merge them across twins.
//
// Pass 3 splices whole chains of already ordered edges. Instead of relying
// on edge index order to know which side of a link is already in place,
// every edge carries a fixed flag once its successor is final. An edge is
// moved only while no fixed link points at it, a fixed link is never
// rewritten, and after the pass every edge leaving a face corner must be
// fixed. Build asserts all three; a violation is a non-manifold vertex and
// is reported as ErrInvalidTopology.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tessel/edgewrap"
	"github.com/katalvlaran/tessel/topology"
)

// assembler owns the arrays while Build runs.
type assembler struct {
	ix Indexer

	internalEdges int
	internalFaces int

	edges      []topology.EdgeRecord
	near       []int // source vertex of each internal edge
	fixed      []bool
	vCounts    []int
	vFirst     []int
	fCounts    []int
	fFirst     []int
	wrapValues []edgewrap.EdgeWrap
}

// newAssembler validates the declared shape of ix and allocates the arrays.
func newAssembler(ix Indexer) (*assembler, error) {
	nf := ix.InternalFaceCount()
	if nf < 1 {
		return nil, fmt.Errorf("%s: %d internal faces: %w", MethodBuild, nf, ErrTooFewFaces)
	}
	if ix.FaceCount() != nf+ix.ExternalFaceCount() {
		return nil, builderErrorf(MethodBuild, ErrBadSize, "face count %d != %d internal + %d external",
			ix.FaceCount(), nf, ix.ExternalFaceCount())
	}
	nv := ix.VertexCount()
	internalEdges := 0
	for f := 0; f < nf; f++ {
		n := ix.NeighborCount(f)
		if n < MinFaceNeighbors {
			return nil, builderErrorf(MethodBuild, ErrBadSize, "face %d has %d neighbors (min %d)", f, n, MinFaceNeighbors)
		}
		for i := 0; i < n; i++ {
			if v := ix.NeighborVertex(f, i); v < 0 || v >= nv {
				return nil, builderErrorf(MethodBuild, ErrIndexOutOfRange, "face %d neighbor %d is vertex %d of %d", f, i, v, nv)
			}
		}
		internalEdges += n
	}

	capEdges := max(ix.EdgeCount(), internalEdges)
	b := &assembler{
		ix:            ix,
		internalEdges: internalEdges,
		internalFaces: nf,
		edges:         make([]topology.EdgeRecord, internalEdges, capEdges),
		near:          make([]int, internalEdges),
		vCounts:       make([]int, nv),
		vFirst:        make([]int, nv),
		fCounts:       make([]int, nf, max(ix.FaceCount(), nf)),
		fFirst:        make([]int, nf, max(ix.FaceCount(), nf)),
	}
	for v := range b.vFirst {
		b.vFirst[v] = -1
	}

	return b, nil
}

// run executes passes 1-4 and checks the declared totals.
func (b *assembler) run() error {
	b.seed()
	if err := b.resolveTwins(); err != nil {
		return err
	}
	if err := b.orderRings(); err != nil {
		return err
	}
	if err := b.windExternal(); err != nil {
		return err
	}
	return b.checkTotals()
}

// 1) seed: one half-edge per (face, neighbor); edge i of a face points at
// neighbor i and leaves neighbor i-1.
func (b *assembler) seed() {
	e := 0
	for f := 0; f < b.internalFaces; f++ {
		n := b.ix.NeighborCount(f)
		b.fFirst[f], b.fCounts[f] = e, n
		for i := 0; i < n; i++ {
			x := e + i
			b.edges[x] = topology.EdgeRecord{
				Vertex: b.ix.NeighborVertex(f, i),
				Face:   -1,
				Twin:   -1,
				FNext:  e + (i+1)%n,
			}
			b.near[x] = b.ix.NeighborVertex(f, (i+n-1)%n)
			b.insert(b.near[x], x)
		}
		e += n
	}
}

// insert adds edge x to v's ring right after v's first edge.
func (b *assembler) insert(v, x int) {
	if b.vFirst[v] < 0 {
		b.vFirst[v] = x
		b.edges[x].VNext = x
	} else {
		f := b.vFirst[v]
		b.edges[x].VNext = b.edges[f].VNext
		b.edges[f].VNext = x
	}
	b.vCounts[v]++
}

// 2) resolveTwins pairs every internal P→V edge with the V→P edge found in
// V's ring, or with a fresh external edge when there is none.
func (b *assembler) resolveTwins() error {
	for e := 0; e < b.internalEdges; e++ {
		if b.edges[e].Twin >= 0 {
			continue
		}
		v, p := b.edges[e].Vertex, b.near[e]
		if v == p {
			return builderErrorf(MethodBuild, ErrInvalidTopology, "edge %d joins vertex %d to itself", e, v)
		}
		x, found := b.findInRing(v, p)
		if found {
			if b.edges[x].Twin >= 0 {
				return builderErrorf(MethodBuild, ErrInvalidTopology, "directed edge %d->%d used twice", p, v)
			}
		} else {
			x = len(b.edges)
			b.edges = append(b.edges, topology.EdgeRecord{Vertex: p, Face: -1, Twin: -1, FNext: -1})
			b.insert(v, x)
		}
		b.edges[e].Twin, b.edges[x].Twin = x, e
	}
	b.fixed = make([]bool, len(b.edges))
	return nil
}

// findInRing returns the edge leaving v that points at target.
func (b *assembler) findInRing(v, target int) (int, bool) {
	first := b.vFirst[v]
	x := first
	for {
		if b.edges[x].Vertex == target {
			return x, true
		}
		x = b.edges[x].VNext
		if x == first {
			return -1, false
		}
	}
}

// 3) orderRings fixes vNext(twin(e)) = fNext(e) for every internal edge and
// records the near face on the twin.
func (b *assembler) orderRings() error {
	for f := 0; f < b.internalFaces; f++ {
		first := b.fFirst[f]
		e := first
		for {
			if err := b.link(b.edges[e].Twin, b.edges[e].FNext); err != nil {
				return fmt.Errorf("face %d: %w", f, err)
			}
			b.edges[b.edges[e].Twin].Face = f
			e = b.edges[e].FNext
			if e == first {
				break
			}
		}
	}
	for e := 0; e < b.internalEdges; e++ {
		if t := b.edges[e].Twin; !b.fixed[t] {
			return builderErrorf(MethodBuild, ErrInvalidTopology, "edge %d has no fixed successor after ordering", t)
		}
	}
	return nil
}

// link makes n follow t in their shared ring. The chain of fixed links that
// starts at n moves as a whole; t's own out-link becomes fixed.
func (b *assembler) link(t, n int) error {
	ed := b.edges
	if b.fixed[t] {
		return builderErrorf(MethodBuild, ErrInvalidTopology, "edge %d already has a successor", t)
	}
	if ed[t].VNext != n {
		// c: last edge of n's fixed chain.
		c := n
		for b.fixed[c] {
			c = ed[c].VNext
			if c == n {
				return builderErrorf(MethodBuild, ErrInvalidTopology, "closed ring does not contain edge %d", t)
			}
		}
		if c == t {
			// Closing the ring would orphan the edges between t and n.
			return builderErrorf(MethodBuild, ErrInvalidTopology, "non-manifold vertex at edge %d", t)
		}
		p := n
		for ed[p].VNext != n {
			p = ed[p].VNext
		}
		if b.fixed[p] {
			return builderErrorf(MethodBuild, ErrInvalidTopology, "edge %d is already fixed after edge %d", n, p)
		}
		ed[p].VNext = ed[c].VNext
		ed[c].VNext = ed[t].VNext
		ed[t].VNext = n
	}
	b.fixed[t] = true
	return nil
}

// 4) windExternal traces one external face per loop of boundary edges.
func (b *assembler) windExternal() error {
	ed := b.edges
	external := len(ed) - b.internalEdges
	visited := make([]bool, external)
	for x := b.internalEdges; x < len(ed); x++ {
		if ed[x].FNext >= 0 {
			continue
		}
		face := len(b.fCounts)
		count := 0
		for cur := x; ; {
			if visited[cur-b.internalEdges] || count >= external {
				return builderErrorf(MethodBuild, ErrInvalidTopology, "external loop through edge %d does not close", x)
			}
			visited[cur-b.internalEdges] = true
			next := ed[ed[cur].Twin].VNext
			if next < b.internalEdges {
				return builderErrorf(MethodBuild, ErrInvalidTopology, "boundary edge %d is followed by internal edge %d", cur, next)
			}
			ed[cur].FNext = next
			ed[ed[cur].Twin].Face = face
			count++
			if next == x {
				break
			}
			cur = next
		}
		b.fCounts = append(b.fCounts, count)
		b.fFirst = append(b.fFirst, x)
	}
	return nil
}

// checkTotals compares the built arrays with the indexer's declared totals.
func (b *assembler) checkTotals() error {
	ix := b.ix
	for v, n := range b.vCounts {
		if n == 0 {
			return builderErrorf(MethodBuild, ErrInvalidTopology, "vertex %d is not used by any face", v)
		}
	}
	if got := len(b.edges); got != ix.EdgeCount() {
		return builderErrorf(MethodBuild, ErrInvalidTopology, "built %d edges, declared %d", got, ix.EdgeCount())
	}
	if got := len(b.fCounts) - b.internalFaces; got != ix.ExternalFaceCount() {
		return builderErrorf(MethodBuild, ErrInvalidTopology, "built %d external faces, declared %d", got, ix.ExternalFaceCount())
	}
	return nil
}

// 5) wraps derives every half-edge's wrap from the per-(face, neighbor)
// FaceToVert values. Each twin pair adopts the frame of its lower-index
// edge, which is always internal: that edge is expressed in its own face's
// frame and CrossMerge mirrors it onto the twin. The higher-index edge of
// an internal pair contributes nothing of its own.
func (b *assembler) wraps(wx WrapIndexer) {
	ed := b.edges
	fv := make([]edgewrap.Wrap, b.internalEdges)
	for f := 0; f < b.internalFaces; f++ {
		for i := 0; i < b.fCounts[f]; i++ {
			fv[b.fFirst[f]+i] = wx.EdgeWrap(f, i).FaceToVert()
		}
	}

	w := make([]edgewrap.EdgeWrap, len(ed))
	for f := 0; f < b.internalFaces; f++ {
		n := b.fCounts[f]
		for i := 0; i < n; i++ {
			e := b.fFirst[f] + i
			t := ed[e].Twin
			if t < e {
				continue
			}
			prev := b.fFirst[f] + (i+n-1)%n
			v := edgewrap.Make(edgewrap.EdgeToVert, fv[e]).
				Set(edgewrap.VertToEdge, fv[prev].Invert())
			if t < b.internalEdges {
				v = v.Set(edgewrap.EdgeToFace, edgewrap.Compose(fv[prev], fv[t].Invert()))
			}
			w[e], w[t] = edgewrap.CrossMerge(v, 0)
		}
	}
	b.wrapValues = w
}

// data hands the arrays over in the store's raw form.
func (b *assembler) data() topology.Data {
	return topology.Data{
		VertexNeighborCounts: b.vCounts,
		VertexFirstEdges:     b.vFirst,
		Edges:                b.edges,
		FaceNeighborCounts:   b.fCounts,
		FaceFirstEdges:       b.fFirst,
		FirstExternalFace:    b.internalFaces,
		Wraps:                b.wrapValues,
	}
}
