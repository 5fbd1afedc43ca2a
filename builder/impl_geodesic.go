// SPDX-License-Identifier: MIT
// Package: tessel/builder
//
// impl_geodesic.go - Geodesic(subdivisions, opts...): an icosphere.
//
// Canonical model:
//   - Start from the icosahedron; each level splits every triangle into four
//     through its edge midpoints, pushed back onto the sphere.
//   - Level n has 20·4ⁿ faces, 30·4ⁿ edges and 10·4ⁿ + 2 vertices.
//   - Midpoints are shared between the two triangles of an edge, so the
//     result stays closed.
//
// Contract:
//   - 0 <= subdivisions <= MaxGeodesicSubdivisions (else ErrBadSize).

package builder

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Geodesic returns a closed triangle Mesh approximating a sphere.
func Geodesic(subdivisions int, opts ...SphereOption) (*Mesh, error) {
	if subdivisions < 0 || subdivisions > MaxGeodesicSubdivisions {
		return nil, builderErrorf(MethodGeodesic, ErrBadSize, "subdivisions=%d (must be in [0,%d])", subdivisions, MaxGeodesicSubdivisions)
	}
	cfg := newSphereConfig(opts...)

	vs := icosahedronVertices()
	faces := edgeTriangles(vs)
	for level := 0; level < subdivisions; level++ {
		vs, faces = subdivide(vs, faces)
	}
	for i := range vs {
		vs[i] = vs[i].Mul(cfg.radius)
	}
	return NewMesh(len(vs), faces, vs)
}

// subdivide splits each triangle of faces into four, keeping the winding.
func subdivide(vs []mgl64.Vec3, faces [][]int) ([]mgl64.Vec3, [][]int) {
	mid := make(map[[2]int]int, len(faces)*3/2)
	midpoint := func(a, b int) int {
		key := [2]int{min(a, b), max(a, b)}
		if m, ok := mid[key]; ok {
			return m
		}
		vs = append(vs, vs[a].Add(vs[b]).Normalize())
		mid[key] = len(vs) - 1
		return len(vs) - 1
	}

	out := make([][]int, 0, 4*len(faces))
	for _, f := range faces {
		a, b, c := f[0], f[1], f[2]
		ab, bc, ca := midpoint(a, b), midpoint(b, c), midpoint(c, a)
		out = append(out,
			[]int{a, ab, ca},
			[]int{ab, b, bc},
			[]int{ca, bc, c},
			[]int{ab, bc, ca},
		)
	}
	return vs, out
}
