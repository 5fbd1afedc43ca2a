// SPDX-License-Identifier: MIT
// Package: tessel/builder
//
// impl_mesh.go - Mesh, a generic Indexer over an explicit face list.
//
// Contract:
//   - Every face lists at least MinFaceNeighbors vertex indices in [0, vertexCount).
//   - No directed edge appears twice (consistent winding).
//   - The external counts are derived: every directed edge without a reverse
//     partner yields one external half-edge, and every loop of such edges one
//     external face.
//
// Complexity: O(total face size) time and memory.

package builder

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is an Indexer over an explicit list of faces with optional vertex positions.
type Mesh struct {
	vertexCount   int
	faces         [][]int
	positions     []mgl64.Vec3
	externalEdges int
	externalFaces int
}

// directed is an ordered vertex pair.
type directed struct{ from, to int }

// NewMesh validates faces and derives the external counts. positions may be
// nil; otherwise it must hold one entry per vertex. faces and positions are
// copied.
func NewMesh(vertexCount int, faces [][]int, positions []mgl64.Vec3) (*Mesh, error) {
	if len(faces) == 0 {
		return nil, fmt.Errorf("%s: no faces: %w", MethodMesh, ErrTooFewFaces)
	}
	if positions != nil && len(positions) != vertexCount {
		return nil, builderErrorf(MethodMesh, ErrBadSize, "%d positions for %d vertices", len(positions), vertexCount)
	}

	m := &Mesh{vertexCount: vertexCount, faces: make([][]int, len(faces))}
	if positions != nil {
		m.positions = append([]mgl64.Vec3(nil), positions...)
	}

	seen := make(map[directed]struct{})
	for f, face := range faces {
		if len(face) < MinFaceNeighbors {
			return nil, builderErrorf(MethodMesh, ErrBadSize, "face %d has %d vertices (min %d)", f, len(face), MinFaceNeighbors)
		}
		for i, v := range face {
			if v < 0 || v >= vertexCount {
				return nil, builderErrorf(MethodMesh, ErrIndexOutOfRange, "face %d vertex %d is %d of %d", f, i, v, vertexCount)
			}
			d := directed{from: face[(i+len(face)-1)%len(face)], to: v}
			if _, dup := seen[d]; dup {
				return nil, builderErrorf(MethodMesh, ErrInvalidTopology, "directed edge %d->%d used twice", d.from, d.to)
			}
			seen[d] = struct{}{}
		}
		m.faces[f] = append([]int(nil), face...)
	}

	// Boundary analysis: an edge P→V without V→P gets an external twin V→P.
	// External edges chain head to tail; each vertex may start at most one.
	next := make(map[int]int)
	for d := range seen {
		if _, ok := seen[directed{from: d.to, to: d.from}]; ok {
			continue
		}
		if _, dup := next[d.to]; dup {
			return nil, builderErrorf(MethodMesh, ErrInvalidTopology, "vertex %d is pinched by two boundary loops", d.to)
		}
		next[d.to] = d.from
	}
	m.externalEdges = len(next)
	done := make(map[int]bool, len(next))
	for start := range next {
		if done[start] {
			continue
		}
		m.externalFaces++
		for v := start; !done[v]; v = next[v] {
			done[v] = true
		}
	}

	return m, nil
}

// VertexCount implements Indexer.
func (m *Mesh) VertexCount() int { return m.vertexCount }

// EdgeCount implements Indexer.
func (m *Mesh) EdgeCount() int {
	n := m.externalEdges
	for _, f := range m.faces {
		n += len(f)
	}
	return n
}

// FaceCount implements Indexer.
func (m *Mesh) FaceCount() int { return len(m.faces) + m.externalFaces }

// InternalFaceCount implements Indexer.
func (m *Mesh) InternalFaceCount() int { return len(m.faces) }

// ExternalFaceCount implements Indexer.
func (m *Mesh) ExternalFaceCount() int { return m.externalFaces }

// NeighborCount implements Indexer.
func (m *Mesh) NeighborCount(face int) int { return len(m.faces[face]) }

// NeighborVertex implements Indexer.
func (m *Mesh) NeighborVertex(face, neighbor int) int { return m.faces[face][neighbor] }

// Positions returns the vertex positions, or nil when none were supplied.
func (m *Mesh) Positions() []mgl64.Vec3 { return m.positions }

// Faces returns the face list. The slices are shared; do not modify them.
func (m *Mesh) Faces() [][]int { return m.faces }
