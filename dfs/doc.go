// Package dfs labels connected regions of a topology's face graph.
//
// Faces are connected when they share an edge the caller considers
// passable. External faces never join a component, so two islands of
// cells separated by a hole stay apart even though the outside touches
// both.
//
// Key features:
//   - Components(topo, opts...): label every internal face
//   - ComponentOf(topo, f, opts...): the faces reachable from f
//   - Result.Connected(a, b): constant-time reachability after labeling
//   - WithPassable(fn): treat some edges as walls (e.g. impassable terrain)
//   - Cancellation via context.Context, OnVisit hook with error abort
//
// Complexity:
//
//   - Time:   O(F + E) for F faces and E half-edges.
//   - Memory: O(F) for labels and the explicit stack.
//
// A pathfinder caller can label once and answer "is there any route?"
// before running a search:
//
//	comp, _ := dfs.Components(topo, dfs.WithPassable(open))
//	if !comp.Connected(from, to) {
//	    // no path; skip the search
//	}
package dfs
