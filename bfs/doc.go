// Package bfs expands rings of faces around a source face of a topology.
//
// What
//
//   - Visit faces in non-decreasing step count from a source face, up to a
//     positive depth.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Rings: faces grouped by step count, Rings[0] == {source}
//   - Depth, Parent: ring index and BFS-tree predecessor per face
//   - Steps cross shared edges by default; WithExtended also steps across
//     shared corners, using the extended face-edge walk of the store.
//   - External faces are skipped unless WithIncludeExternal is given.
//
// Determinism
//
//	Neighbors are enqueued in face-cycle order (then corner order for the
//	extended walk), so the visit sequence is reproducible for a given store.
//
// Complexity (F = faces reached, E = half-edges walked)
//
//   - Time:   O(F + E)
//   - Memory: O(total faces) for the visited table, O(F) for the result.
//
// Usage
//
//	res, err := bfs.FaceRings(topo, start, 2, bfs.WithExtended())
//	if err != nil {
//	    // ErrTopologyNil, ErrStartFaceNotFound, ErrBadDepth, ctx or hook errors
//	}
//	for d, ring := range res.Rings {
//	    fmt.Println(d, ring)
//	}
package bfs
