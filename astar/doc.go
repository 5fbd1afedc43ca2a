// Package astar implements A* search over the face graph of a topology.
//
// Faces are the nodes; every half-edge of a face's boundary is a step from
// its near face to its far face. The caller prices steps and estimates the
// remaining distance:
//
//	cost(e, pathLen)                   – +Inf forbids the step
//	heuristic(face, target, pathLen)   – must not overestimate
//
// pathLen is the number of edges walked so far, so costs may depend on the
// length of the route (turn penalties and the like).
//
// Complexity:
//
//   - Time:  O((F + E) log F) for the F faces and E half-edges touched.
//   - Space: O(F) scratch, kept by the Pathfinder between calls.
//
// Notes on implementation choices:
//
//   - An improved open entry is updated in place and re-heaped with heap.Fix;
//     the queue never holds duplicates.
//   - Ties on f are broken by insertion order, so results are deterministic.
//   - A finalized face is never reopened.
//   - A Pathfinder is not safe for concurrent use; create one per goroutine.
//
// Presets:
//
//	UnitCost, ZeroHeuristic                    – hop counting
//	EuclideanCost, EuclideanHeuristic          – straight lines between face positions, seams included
//	SphericalArcCost, SphericalArcHeuristic    – great-circle arcs on a sphere
//
// Every cost preset forbids steps onto external faces.
//
// Example usage:
//
//	pf := astar.NewPathfinder()
//	path, err := pf.FindPath(topo, from, to, astar.EuclideanHeuristic(pos), astar.EuclideanCost(pos))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path.Len(), path.Cost)
package astar
