// SPDX-License-Identifier: MIT
// Package: tessel/builder
//
// variants_platonic.go - canonical vertices and faces of the five Platonic solids.
//
// Design:
//   - Vertices lie on the unit sphere; faces are wound counter-clockwise seen
//     from outside (orientOutward fixes any face listed the other way).
//   - Tetrahedron, octahedron and icosahedron faces are found as the vertex
//     triples at edge distance, so only vertex coordinates are hard-coded.
//   - The dodecahedron is the dual of the icosahedron: one vertex per
//     icosahedron face, one pentagon per icosahedron vertex, ordered by
//     walking that vertex's ring in a built icosahedron topology.
//
// Determinism:
//   - Triples are enumerated in lexicographic order; equal inputs give equal meshes.

package builder

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  F=4
	Cube                             // V=8,  F=6
	Octahedron                       // V=6,  F=8
	Dodecahedron                     // V=20, F=12
	Icosahedron                      // V=12, F=20
)

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// ParsePlatonicName maps a solid name, in any letter case, back to its enum value.
func ParsePlatonicName(s string) (PlatonicName, bool) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if strings.EqualFold(p.String(), s) {
			return p, true
		}
	}
	return 0, false
}

// platonicVertexCounts maps each solid to its vertex count.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicFaceCounts maps each solid to its face count.
var platonicFaceCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         6,
	Octahedron:   8,
	Dodecahedron: 12,
	Icosahedron:  20,
}

// cubeFaces lists the six quads over cubeVertices (bit i of the index selects +1 on axis i).
var cubeFaces = [][]int{
	{0, 2, 3, 1}, // z = -1
	{4, 5, 7, 6}, // z = +1
	{0, 1, 5, 4}, // y = -1
	{2, 6, 7, 3}, // y = +1
	{0, 4, 6, 2}, // x = -1
	{1, 3, 7, 5}, // x = +1
}

func tetrahedronVertices() []mgl64.Vec3 {
	return normalizeAll([]mgl64.Vec3{
		{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
	})
}

func cubeVertices() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 8)
	for i := range out {
		for axis := 0; axis < 3; axis++ {
			out[i][axis] = -1
			if i&(1<<axis) != 0 {
				out[i][axis] = 1
			}
		}
	}
	return normalizeAll(out)
}

func octahedronVertices() []mgl64.Vec3 {
	return []mgl64.Vec3{
		{0, 0, 1}, {0, 0, -1}, {1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0},
	}
}

func icosahedronVertices() []mgl64.Vec3 {
	phi := (1 + math.Sqrt(5)) / 2
	return normalizeAll([]mgl64.Vec3{
		{0, 1, phi}, {0, -1, phi}, {0, 1, -phi}, {0, -1, -phi},
		{1, phi, 0}, {-1, phi, 0}, {1, -phi, 0}, {-1, -phi, 0},
		{phi, 0, 1}, {-phi, 0, 1}, {phi, 0, -1}, {-phi, 0, -1},
	})
}

func normalizeAll(vs []mgl64.Vec3) []mgl64.Vec3 {
	for i := range vs {
		vs[i] = vs[i].Normalize()
	}
	return vs
}

// edgeTriangles returns every vertex triple whose three sides have the
// shortest pairwise distance found among vs, wound outward.
func edgeTriangles(vs []mgl64.Vec3) [][]int {
	shortest := math.Inf(1)
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			shortest = math.Min(shortest, vs[i].Sub(vs[j]).Len())
		}
	}
	const tol = 1e-9
	adjacent := func(i, j int) bool { return math.Abs(vs[i].Sub(vs[j]).Len()-shortest) < tol }

	var faces [][]int
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			if !adjacent(i, j) {
				continue
			}
			for k := j + 1; k < len(vs); k++ {
				if adjacent(i, k) && adjacent(j, k) {
					faces = append(faces, []int{i, j, k})
				}
			}
		}
	}
	return orientOutward(vs, faces)
}

// orientOutward reverses every face whose normal points toward the origin.
func orientOutward(vs []mgl64.Vec3, faces [][]int) [][]int {
	for _, f := range faces {
		var centroid mgl64.Vec3
		for _, v := range f {
			centroid = centroid.Add(vs[v])
		}
		normal := vs[f[1]].Sub(vs[f[0]]).Cross(vs[f[2]].Sub(vs[f[0]]))
		if normal.Dot(centroid) < 0 {
			for i, j := 0, len(f)-1; i < j; i, j = i+1, j-1 {
				f[i], f[j] = f[j], f[i]
			}
		}
	}
	return faces
}
