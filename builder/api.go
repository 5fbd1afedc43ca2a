// SPDX-License-Identifier: MIT
// Package: tessel/builder
//
// api.go - public entry points of the builder package.
//
// Design contract:
//   - One orchestrator: Build(ix, opts...). Resolves cfg, runs the passes of
//     impl_build.go, hands the arrays to topology.New.
//   - Shapes (impl_mesh.go, impl_grid.go, impl_platonic.go, impl_geodesic.go)
//     are plain Indexers; they never touch a store themselves.
//   - Determinism: the same indexer and options always yield identical arrays.
//   - Safety: never panic; return sentinel errors wrapped with method context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tessel/edgewrap"
	"github.com/katalvlaran/tessel/topology"
)

// Indexer is the minimal face description Build consumes. Internal faces are
// numbered [0, InternalFaceCount()); face f is bounded by NeighborCount(f)
// vertices listed by NeighborVertex in a consistent winding.
//
// The total counts include the external elements that close the mesh:
// EdgeCount is internal plus external half-edges, FaceCount is
// InternalFaceCount plus ExternalFaceCount.
type Indexer interface {
	VertexCount() int
	EdgeCount() int
	FaceCount() int
	InternalFaceCount() int
	ExternalFaceCount() int
	NeighborCount(face int) int
	NeighborVertex(face, neighbor int) int
}

// WrapIndexer is an Indexer embedded in a periodic plane. EdgeWrap(face, i)
// is read through its FaceToVert view: the translation that places neighbor
// vertex i next to the face.
type WrapIndexer interface {
	Indexer
	EdgeWrap(face, neighbor int) edgewrap.EdgeWrap
}

// Build converts the face description of ix into a fully linked store,
// inferring twins, vertex rings and external faces, plus per-edge wraps when
// ix is a WrapIndexer and wrap tracking is enabled.
//
// Errors (all wrapped with "Build: ..."):
//   - ErrOptionViolation if ix is nil.
//   - ErrTooFewFaces if ix has no internal face.
//   - ErrBadSize for a face with fewer than MinFaceNeighbors vertices or
//     inconsistent face totals.
//   - ErrIndexOutOfRange for a neighbor vertex outside [0, VertexCount).
//   - ErrInvalidTopology when the faces do not form a manifold or the
//     declared counts disagree with the built arrays.
//
// Complexity: O(E · d) time where d is the largest vertex degree, O(E) memory.
func Build(ix Indexer, opts ...BuilderOption) (*topology.Topology, error) {
	cfg := newBuilderConfig(opts...)
	if ix == nil {
		return nil, fmt.Errorf("%s: nil indexer: %w", MethodBuild, ErrOptionViolation)
	}

	b, err := newAssembler(ix)
	if err != nil {
		return nil, err
	}
	if err = b.run(); err != nil {
		return nil, err
	}
	if wx, ok := ix.(WrapIndexer); ok && cfg.trackWraps {
		b.wraps(wx)
	}

	topo, err := topology.New(b.data())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	cfg.logger.Debug("builder: topology built",
		"vertices", topo.VertexCount(),
		"edges", topo.EdgeCount(),
		"internal_faces", topo.InternalFaceCount(),
		"external_faces", topo.ExternalFaceCount(),
		"wrapped", topo.IsWrapped())

	return topo, nil
}
