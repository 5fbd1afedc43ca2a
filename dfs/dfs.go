// Package dfs labels the connected components of a topology's face graph
// with depth-first search.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/tessel/topology"
)

// walker encapsulates state during labeling.
type walker struct {
	topo  *topology.Topology
	opts  Options
	res   *Result
	stack []topology.Face
}

// Components labels every internal face with the index of its component.
// Two faces are connected when a chain of passable edges joins them without
// entering an external face. Components are numbered in order of their
// lowest face index.
//
// Complexity: O(F + E) time, O(F) memory.
func Components(topo *topology.Topology, opts ...Option) (*Result, error) {
	// 1. Validate input
	if topo == nil {
		return nil, ErrTopologyNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Every face starts unlabeled
	res := &Result{Labels: make([]int, topo.FaceCount())}
	for i := range res.Labels {
		res.Labels[i] = Unlabeled
	}
	w := &walker{topo: topo, opts: o, res: res}

	// 4. One traversal per unlabeled internal face
	for f := topology.Face(0); int(f) < topo.InternalFaceCount(); f++ {
		if res.Labels[f] != Unlabeled {
			continue
		}
		res.Sizes = append(res.Sizes, 0)
		if err := w.traverse(f, len(res.Sizes)-1); err != nil {
			return res, err
		}
	}

	return res, nil
}

// ComponentOf labels only the component containing f.
func ComponentOf(topo *topology.Topology, f topology.Face, opts ...Option) ([]topology.Face, error) {
	if topo == nil {
		return nil, ErrTopologyNil
	}
	if !topo.IsInternal(f) {
		return nil, fmt.Errorf("%w: %d", ErrFaceNotFound, f)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	res := &Result{Labels: make([]int, topo.FaceCount()), Sizes: []int{0}}
	for i := range res.Labels {
		res.Labels[i] = Unlabeled
	}
	var faces []topology.Face
	o.OnVisit = chainVisit(o.OnVisit, func(g topology.Face, _ int) error {
		faces = append(faces, g)
		return nil
	})
	w := &walker{topo: topo, opts: o, res: res}
	if err := w.traverse(f, 0); err != nil {
		return nil, err
	}
	return faces, nil
}

func chainVisit(first, then func(topology.Face, int) error) func(topology.Face, int) error {
	if first == nil {
		return then
	}
	return func(f topology.Face, c int) error {
		if err := first(f, c); err != nil {
			return err
		}
		return then(f, c)
	}
}

// traverse labels everything reachable from start with component c.
// An explicit stack replaces recursion so large meshes cannot exhaust it.
func (w *walker) traverse(start topology.Face, c int) error {
	w.stack = append(w.stack[:0], start)
	if err := w.label(start, c); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Pop
		f := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// 3. Push unlabeled internal neighbors across passable edges
		for e := range w.topo.FaceEdgeSeq(f) {
			nb := w.topo.FarFace(e)
			if !w.topo.IsInternal(nb) || w.res.Labels[nb] != Unlabeled {
				continue
			}
			if w.opts.Passable != nil && !w.opts.Passable(e) {
				continue
			}
			if err := w.label(nb, c); err != nil {
				return err
			}
			w.stack = append(w.stack, nb)
		}
	}

	return nil
}

// label records f in component c and runs the visit hook.
func (w *walker) label(f topology.Face, c int) error {
	w.res.Labels[f] = c
	w.res.Sizes[c]++
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(f, c); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for face %d: %w", f, err)
		}
	}
	return nil
}
