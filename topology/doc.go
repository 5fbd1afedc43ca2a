// Package topology is the half-edge store underneath tessel: vertices,
// half-edges and faces kept in shared parallel arrays and addressed by plain
// integer handles.
//
// Data model:
//
//   - Vertex and Face are indices. A vertex has a neighbor count and a first
//     outgoing half-edge; a face has a neighbor count and a first bounding
//     half-edge.
//   - Edge is a half-edge index. Each record stores its far vertex, its far
//     face, its twin, vNext (next outgoing edge around the same source vertex)
//     and fNext (next edge around the same face).
//   - The near vertex of e is Twin(e)'s far vertex and the near face of e, the
//     face whose boundary cycle contains e, is Twin(e)'s far face.
//
// Invariants (checked by Validate, preserved by every edit):
//
//	Twin(Twin(e)) == e
//	following vNext VertexNeighborCount(v) times returns to the start, and not earlier
//	following fNext FaceNeighborCount(f) times returns to the start, and not earlier
//	NextFaceEdge(e) == NextVertexEdge(Twin(e))
//
// Faces with an index at or above the first external face index are
// synthetic outside faces that close the mesh, so every half-edge always has
// both a face and a twin even on a mesh boundary.
//
// Stores are produced in one piece by the builder package (or by Clone) and
// are afterwards either read (traversal, pathfinding) or edited in place by
// the spin operators, which check their guards before touching any array.
//
// Concurrency: a Topology is not safe for concurrent mutation. Iterators are
// invalidated by edits made while they are live.
package topology
