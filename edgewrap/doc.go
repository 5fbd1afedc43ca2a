// Package edgewrap encodes how positional attributes must be translated
// across wrap boundaries when a topology is embedded in a periodic plane
// (cylinder or torus).
//
// Overview:
//
//   - An EdgeWrap is a packed 32-bit set attached to one half-edge. It holds
//     eight relations, one 4-bit nibble each: for both planar axes it records
//     whether a positive or a negative period must be added.
//   - The four primary relations (VertToEdge, FaceToEdge, EdgeToVert,
//     EdgeToFace) are authoritative. The four derived relations (VertToVert,
//     VertToFace, FaceToVert, FaceToFace) are pre-computed compositions of
//     the primary ones and are refreshed by Derive.
//   - A Wrap is the generic 4-bit view of a single relation: none, ±axis0,
//     ±axis1 or a combination of one sign per axis. A planar surface turns a
//     Wrap into an actual translation by scaling its axis vectors.
//
// Meaning of a relation:
//
//	A relation A→B on half-edge e is the translation added to B's canonical
//	position so that B lands next to A ("B as seen from A"). A is the near
//	element of e (its near vertex, its near face, or the edge itself) and B
//	is the far element (far vertex, far face, or the edge itself).
//
// Twins share one edge frame, so the primary relations of a twin are the
// inverted outward relations of its partner:
//
//	VertToEdge(twin) = -EdgeToVert(e)    EdgeToVert(twin) = -VertToEdge(e)
//	FaceToEdge(twin) = -EdgeToFace(e)    EdgeToFace(twin) = -FaceToEdge(e)
//
// Composition:
//
//   - Opposite signs on the same axis cancel to none.
//   - Equal signs are idempotent (the value stays canonical).
//   - Different axes combine by union.
//
// Both bits of an axis set at once is a transient, non-canonical state that
// composition produces internally; Canonical collapses it to none.
//
// The package has no dependencies and every function is pure.
package edgewrap
