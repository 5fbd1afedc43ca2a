// SPDX-License-Identifier: MIT
// Package: tessel/builder
//
// impl_platonic.go - PlatonicSolid(name, opts...): closed convex solids as Mesh indexers.
//
// Contract:
//   - name must be one of the five PlatonicName values (else ErrUnknownSolid).
//   - The mesh is closed: no external edges and no external faces.
//   - Vertices lie on a sphere of the configured radius (WithRadius, default 1).
//
// Complexity: O(V³) triple search over at most 12 vertices; negligible.

package builder

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/tessel/topology"
)

// PlatonicSolid returns a closed Mesh for the named solid.
func PlatonicSolid(name PlatonicName, opts ...SphereOption) (*Mesh, error) {
	cfg := newSphereConfig(opts...)

	var (
		vs    []mgl64.Vec3
		faces [][]int
		err   error
	)
	switch name {
	case Tetrahedron:
		vs = tetrahedronVertices()
		faces = edgeTriangles(vs)
	case Cube:
		vs = cubeVertices()
		faces = orientOutward(vs, cloneFaces(cubeFaces))
	case Octahedron:
		vs = octahedronVertices()
		faces = edgeTriangles(vs)
	case Icosahedron:
		vs = icosahedronVertices()
		faces = edgeTriangles(vs)
	case Dodecahedron:
		if vs, faces, err = dodecahedron(); err != nil {
			return nil, fmt.Errorf("%s(%s): %w", MethodPlatonicSolid, name, err)
		}
	default:
		return nil, fmt.Errorf("%s(%d): %w", MethodPlatonicSolid, int(name), ErrUnknownSolid)
	}

	if len(vs) != platonicVertexCounts[name] || len(faces) != platonicFaceCounts[name] {
		return nil, builderErrorf(MethodPlatonicSolid, ErrInvalidTopology, "%s: %d vertices, %d faces", name, len(vs), len(faces))
	}
	for i := range vs {
		vs[i] = vs[i].Mul(cfg.radius)
	}
	return NewMesh(len(vs), faces, vs)
}

// dodecahedron builds the dual of the icosahedron through its topology.
func dodecahedron() ([]mgl64.Vec3, [][]int, error) {
	ivs := icosahedronVertices()
	ico, err := NewMesh(len(ivs), edgeTriangles(ivs), ivs)
	if err != nil {
		return nil, nil, err
	}
	topo, err := Build(ico)
	if err != nil {
		return nil, nil, err
	}

	vs := make([]mgl64.Vec3, topo.InternalFaceCount())
	for f := range vs {
		var c mgl64.Vec3
		for _, v := range ico.faces[f] {
			c = c.Add(ivs[v])
		}
		vs[f] = c.Normalize()
	}

	faces := make([][]int, topo.VertexCount())
	for v := range faces {
		for e := range topo.VertexEdgeSeq(topology.Vertex(v)) {
			faces[v] = append(faces[v], int(topo.NearFace(e)))
		}
	}
	return vs, orientOutward(vs, faces), nil
}

func cloneFaces(src [][]int) [][]int {
	out := make([][]int, len(src))
	for i, f := range src {
		out[i] = append([]int(nil), f...)
	}
	return out
}
