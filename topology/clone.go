// File: clone.go
// Role: Deep copies of a store.
// Determinism:
//   - The clone has identical indices, first edges and wraps; iteration order matches the source.

package topology

import "slices"

// Clone returns a deep copy of t. Edits on the clone never reach t and vice versa.
// A nil wrap array stays nil so the clone tracks wraps exactly when t does.
//
// Complexity: O(V + E + F).
func (t *Topology) Clone() *Topology {
	return &Topology{
		vertexNeighborCounts: slices.Clone(t.vertexNeighborCounts),
		vertexFirstEdges:     slices.Clone(t.vertexFirstEdges),
		edges:                slices.Clone(t.edges),
		faceNeighborCounts:   slices.Clone(t.faceNeighborCounts),
		faceFirstEdges:       slices.Clone(t.faceFirstEdges),
		firstExternalFace:    t.firstExternalFace,
		wraps:                slices.Clone(t.wraps),
	}
}
