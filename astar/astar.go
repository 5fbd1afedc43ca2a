package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/tessel/topology"
)

// Pathfinder runs A* searches over the face graph of a topology. Its scratch
// queue and maps are reused between calls, so a Pathfinder must not be
// shared by concurrent searches; use one per goroutine.
type Pathfinder struct {
	open   map[int]*node      // face → queued entry
	closed map[int]closedNode // face → how it was finalized
	pq     nodePQ
	seq    uint64
}

// node is an open-set entry.
type node struct {
	face   int
	from   int // face the best known step came from, -1 for the source
	edge   int // half-edge of that step, -1 for the source
	g      float64
	f      float64
	length int    // edges walked to reach face
	seq    uint64 // insertion order, breaks ties on f
	index  int    // position in the heap
}

// closedNode records the step that finalized a face.
type closedNode struct {
	from int
	edge int
	g    float64
}

// NewPathfinder returns a Pathfinder with empty scratch structures.
func NewPathfinder(opts ...Option) *Pathfinder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Pathfinder{
		open:   make(map[int]*node, cfg.Capacity),
		closed: make(map[int]closedNode, cfg.Capacity),
		pq:     make(nodePQ, 0, cfg.Capacity),
	}
}

// FindPath searches for the cheapest sequence of half-edges leading from the
// source face to the target face.
//
// Returns an empty Path and a nil error when the target is an external face,
// when the source is external, when source == target, or when no step
// sequence with finite cost reaches the target.
//
// Preconditions and validation (in order):
//  1. topo must be non-nil (ErrNilTopology).
//  2. heuristic and cost must be non-nil (ErrNilFunc).
//  3. source and target must be faces of topo (ErrFaceOutOfRange).
//
// A cost returning a negative value or NaN aborts the search with
// ErrNegativeCost. A closed face is never re-expanded, so the result is
// optimal only when heuristic is admissible.
//
// Complexity: O((F + E) log F) for F faces and E half-edges touched.
func (p *Pathfinder) FindPath(topo *topology.Topology, source, target topology.Face, heuristic Heuristic, cost EdgeCost) (Path, error) {
	if topo == nil {
		return Path{}, ErrNilTopology
	}
	if heuristic == nil || cost == nil {
		return Path{}, ErrNilFunc
	}
	if !topo.HasFace(source) {
		return Path{}, fmt.Errorf("%w: source %d of %d", ErrFaceOutOfRange, source, topo.FaceCount())
	}
	if !topo.HasFace(target) {
		return Path{}, fmt.Errorf("%w: target %d of %d", ErrFaceOutOfRange, target, topo.FaceCount())
	}
	if source == target || topo.IsExternal(target) || topo.IsExternal(source) {
		return Path{}, nil
	}

	p.reset()
	r := runner{p: p, topo: topo, target: int(target), heuristic: heuristic, cost: cost}
	r.push(&node{face: int(source), from: -1, edge: -1, f: heuristic(source, target, 0)})

	found, err := r.process()
	if err != nil || !found {
		return Path{}, err
	}
	return p.reconstruct(int(source), int(target)), nil
}

// reset empties the scratch structures while keeping their storage.
func (p *Pathfinder) reset() {
	clear(p.open)
	clear(p.closed)
	clear(p.pq)
	p.pq = p.pq[:0]
	p.seq = 0
}

// reconstruct walks the closed map back from target.
func (p *Pathfinder) reconstruct(source, target int) Path {
	path := Path{Cost: p.closed[target].g}
	for f := target; f != source; {
		c := p.closed[f]
		path.Edges = append(path.Edges, topology.Edge(c.edge))
		f = c.from
	}
	for i, j := 0, len(path.Edges)-1; i < j; i, j = i+1, j-1 {
		path.Edges[i], path.Edges[j] = path.Edges[j], path.Edges[i]
	}
	return path
}

// runner holds the per-call inputs of a single search.
type runner struct {
	p         *Pathfinder
	topo      *topology.Topology
	target    int
	heuristic Heuristic
	cost      EdgeCost
}

func (r *runner) push(n *node) {
	n.seq = r.p.seq
	r.p.seq++
	r.p.open[n.face] = n
	heap.Push(&r.p.pq, n)
}

// process pops faces in order of f until the target is finalized or the
// open set is exhausted.
func (r *runner) process() (bool, error) {
	p := r.p
	for p.pq.Len() > 0 {
		cur := heap.Pop(&p.pq).(*node)
		delete(p.open, cur.face)
		p.closed[cur.face] = closedNode{from: cur.from, edge: cur.edge, g: cur.g}
		if cur.face == r.target {
			return true, nil
		}
		if err := r.relax(cur); err != nil {
			return false, err
		}
	}
	return false, nil
}

// relax prices every step out of cur and opens or improves its far faces.
func (r *runner) relax(cur *node) error {
	p := r.p
	target := topology.Face(r.target)
	for e := range r.topo.FaceEdgeSeq(topology.Face(cur.face)) {
		far := int(r.topo.FarFace(e))
		if _, done := p.closed[far]; done {
			continue
		}
		w := r.cost(e, cur.length)
		if math.IsInf(w, 1) {
			continue
		}
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %d cost=%v", ErrNegativeCost, e, w)
		}
		g := cur.g + w
		if n, ok := p.open[far]; ok {
			if g >= n.g {
				continue
			}
			n.from, n.edge, n.g, n.length = cur.face, int(e), g, cur.length+1
			n.f = g + r.heuristic(topology.Face(far), target, n.length)
			heap.Fix(&p.pq, n.index)
			continue
		}
		length := cur.length + 1
		r.push(&node{
			face:   far,
			from:   cur.face,
			edge:   int(e),
			g:      g,
			f:      g + r.heuristic(topology.Face(far), target, length),
			length: length,
		})
	}
	return nil
}

// nodePQ is a min-heap of open entries ordered by f, then by insertion order.
type nodePQ []*node

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *nodePQ) Push(x any) {
	n := x.(*node)
	n.index = len(*pq)
	*pq = append(*pq, n)
}

func (pq *nodePQ) Pop() any {
	old := *pq
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*pq = old[:last]
	return n
}
