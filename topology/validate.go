package topology

import "fmt"

// Validate checks every structural invariant of the store and returns an
// error wrapping ErrInvalidTopology describing the first violation found.
//
// Checked, in order:
//  1. array lengths agree and the external face threshold is in range;
//  2. every link of every half-edge is in range, twins are mutual and distinct,
//     and no half-edge joins a vertex to itself;
//  3. NextFaceEdge(e) == NextVertexEdge(Twin(e)) for every e;
//  4. every vertex ring and every face cycle closes after exactly its
//     declared neighbor count, contains only edges of that vertex or face,
//     and together the rings (and the cycles) partition the half-edges.
//
// Complexity: O(V + E + F) time, O(E) extra memory.
func (t *Topology) Validate() error {
	nv, ne, nf := len(t.vertexNeighborCounts), len(t.edges), len(t.faceNeighborCounts)

	// 1) Shape of the arrays.
	if len(t.vertexFirstEdges) != nv {
		return fmt.Errorf("%w: %d vertex first edges for %d vertices", ErrInvalidTopology, len(t.vertexFirstEdges), nv)
	}
	if len(t.faceFirstEdges) != nf {
		return fmt.Errorf("%w: %d face first edges for %d faces", ErrInvalidTopology, len(t.faceFirstEdges), nf)
	}
	if t.firstExternalFace < 0 || t.firstExternalFace > nf {
		return fmt.Errorf("%w: first external face %d outside [0,%d]", ErrInvalidTopology, t.firstExternalFace, nf)
	}
	if t.wraps != nil && len(t.wraps) != ne {
		return fmt.Errorf("%w: %d wraps for %d edges", ErrInvalidTopology, len(t.wraps), ne)
	}

	// 2) Per-edge links.
	inRange := func(i, n int) bool { return i >= 0 && i < n }
	for i, r := range t.edges {
		if !inRange(r.Vertex, nv) || !inRange(r.Face, nf) || !inRange(r.Twin, ne) ||
			!inRange(r.VNext, ne) || !inRange(r.FNext, ne) {
			return fmt.Errorf("%w: edge %d has an out-of-range link %+v", ErrInvalidTopology, i, r)
		}
		if r.Twin == i || t.edges[r.Twin].Twin != i {
			return fmt.Errorf("%w: edge %d and twin %d are not mutual", ErrInvalidTopology, i, r.Twin)
		}
		if t.edges[r.Twin].Vertex == r.Vertex {
			return fmt.Errorf("%w: edge %d joins vertex %d to itself", ErrInvalidTopology, i, r.Vertex)
		}
	}

	// 3) Face order and vertex order describe the same surface.
	for i, r := range t.edges {
		if r.FNext != t.edges[r.Twin].VNext {
			return fmt.Errorf("%w: edge %d: fNext %d differs from vNext of twin %d", ErrInvalidTopology, i, r.FNext, t.edges[r.Twin].VNext)
		}
	}

	// 4) Cyclic closure and partition.
	seen := make([]bool, ne)
	total := 0
	for v := 0; v < nv; v++ {
		n, err := t.checkCycle(seen, t.vertexFirstEdges[v], t.vertexNeighborCounts[v], func(e int) int { return t.edges[e].VNext },
			func(e int) bool { return t.edges[t.edges[e].Twin].Vertex == v })
		if err != nil {
			return fmt.Errorf("vertex %d: %w", v, err)
		}
		total += n
	}
	if total != ne {
		return fmt.Errorf("%w: vertex rings cover %d of %d edges", ErrInvalidTopology, total, ne)
	}

	clear(seen)
	total = 0
	for f := 0; f < nf; f++ {
		n, err := t.checkCycle(seen, t.faceFirstEdges[f], t.faceNeighborCounts[f], func(e int) int { return t.edges[e].FNext },
			func(e int) bool { return t.edges[t.edges[e].Twin].Face == f })
		if err != nil {
			return fmt.Errorf("face %d: %w", f, err)
		}
		total += n
	}
	if total != ne {
		return fmt.Errorf("%w: face cycles cover %d of %d edges", ErrInvalidTopology, total, ne)
	}

	return nil
}

// checkCycle walks from first via next and verifies that the cycle closes
// after exactly want steps, that every member satisfies owns, and that no
// member was already claimed by another cycle.
func (t *Topology) checkCycle(seen []bool, first, want int, next func(int) int, owns func(int) bool) (int, error) {
	if want < 1 {
		return 0, fmt.Errorf("%w: neighbor count %d", ErrInvalidTopology, want)
	}
	if first < 0 || first >= len(t.edges) {
		return 0, fmt.Errorf("%w: first edge %d out of range", ErrInvalidTopology, first)
	}
	e, steps := first, 0
	for {
		if seen[e] {
			return 0, fmt.Errorf("%w: edge %d visited twice", ErrInvalidTopology, e)
		}
		if !owns(e) {
			return 0, fmt.Errorf("%w: edge %d does not belong to this cycle", ErrInvalidTopology, e)
		}
		seen[e] = true
		steps++
		e = next(e)
		if e == first {
			break
		}
		if steps >= want {
			return 0, fmt.Errorf("%w: cycle longer than neighbor count %d", ErrInvalidTopology, want)
		}
	}
	if steps != want {
		return 0, fmt.Errorf("%w: cycle of %d edges, neighbor count %d", ErrInvalidTopology, steps, want)
	}

	return steps, nil
}
