// Package bfs expands rings of faces around a source face, breadth first.
package bfs

import (
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/tessel/topology"
)

// queueItem pairs a face with its ring index.
type queueItem struct {
	face  topology.Face
	depth int
}

// walker encapsulates mutable expansion state.
type walker struct {
	topo    *topology.Topology
	opts    Options
	ctx     context.Context
	limit   int
	queue   []queueItem
	visited []bool
	res     *Result
}

// FaceRings collects every face within depth steps of source.
// Returns ErrTopologyNil, ErrStartFaceNotFound or ErrBadDepth for invalid
// input, the context error on cancellation, or any OnVisit error.
//
// Complexity: O(F + E) over the faces and half-edges within reach.
func FaceRings(topo *topology.Topology, source topology.Face, depth int, opts ...Option) (*Result, error) {
	if topo == nil {
		return nil, ErrTopologyNil
	}
	if depth <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !topo.HasFace(source) || (topo.IsExternal(source) && !o.IncludeExternal) {
		return nil, fmt.Errorf("%w: face %d", ErrStartFaceNotFound, source)
	}

	w := &walker{
		topo:    topo,
		opts:    o,
		ctx:     o.Ctx,
		limit:   depth,
		queue:   make([]queueItem, 0, topo.FaceCount()),
		visited: make([]bool, topo.FaceCount()),
		res: &Result{
			Order:  make([]topology.Face, 0, topo.FaceCount()),
			Rings:  make([][]topology.Face, 0, depth+1),
			Depth:  make(map[topology.Face]int),
			Parent: make(map[topology.Face]topology.Face),
		},
	}
	w.enqueue(source, 0, topology.NoFace)

	return w.res, w.loop()
}

// enqueue marks f visited at ring d and records its parent.
func (w *walker) enqueue(f topology.Face, d int, parent topology.Face) {
	w.visited[f] = true
	w.res.Depth[f] = d
	if parent != topology.NoFace {
		w.res.Parent[f] = parent
	}
	if d == len(w.res.Rings) {
		w.res.Rings = append(w.res.Rings, nil)
	}
	w.res.Rings[d] = append(w.res.Rings[d], f)
	w.queue = append(w.queue, queueItem{face: f, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.face)
		if err := w.opts.OnVisit(item.face, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at face %d: %w", item.face, err)
		}
		if item.depth < w.limit {
			w.enqueueNeighbors(item)
		}
	}
	return nil
}

// steps picks the edge walk matching the adjacency mode.
func (w *walker) steps(f topology.Face) iter.Seq[topology.Edge] {
	if w.opts.Extended {
		return w.topo.FaceExtendedEdgeSeq(f)
	}
	return w.topo.FaceEdgeSeq(f)
}

// enqueueNeighbors enqueues each unseen, allowed neighbor of item.
func (w *walker) enqueueNeighbors(item queueItem) {
	for e := range w.steps(item.face) {
		nbr := w.topo.FarFace(e)
		if w.visited[nbr] {
			continue
		}
		if w.topo.IsExternal(nbr) && !w.opts.IncludeExternal {
			continue
		}
		if !w.opts.FilterNeighbor(item.face, nbr) {
			continue
		}
		w.enqueue(nbr, item.depth+1, item.face)
	}
}
