package astar

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/katalvlaran/tessel/attr"
	"github.com/katalvlaran/tessel/topology"
)

// ZeroHeuristic turns A* into Dijkstra's algorithm.
func ZeroHeuristic(topology.Face, topology.Face, int) float64 { return 0 }

// UnitCost charges 1 per step and forbids steps onto external faces.
func UnitCost(topo *topology.Topology) EdgeCost {
	return func(e topology.Edge, _ int) float64 {
		if topo.IsOuterBoundary(e) {
			return math.Inf(1)
		}
		return 1
	}
}

// EuclideanCost charges the straight-line distance between the two face
// positions of a step, seams included, and forbids steps onto external faces.
func EuclideanCost(pos *attr.Positions) EdgeCost {
	topo := pos.Topology()
	return func(e topology.Edge, _ int) float64 {
		if topo.IsOuterBoundary(e) {
			return math.Inf(1)
		}
		return pos.FaceStep(e).Len()
	}
}

// EuclideanHeuristic estimates the straight-line distance between two faces,
// using the closest periodic image on wrapped surfaces.
func EuclideanHeuristic(pos *attr.Positions) Heuristic {
	return func(source, target topology.Face, _ int) float64 {
		return pos.FaceDelta(source, target).Len()
	}
}

// SphericalArcCost charges the great-circle distance between face positions
// projected onto a sphere of the given radius, and forbids steps onto
// external faces. Panics with ErrBadRadius when radius <= 0.
func SphericalArcCost(pos *attr.Positions, radius float64) EdgeCost {
	points := spherePoints(pos, radius)
	topo := pos.Topology()
	return func(e topology.Edge, _ int) float64 {
		if topo.IsOuterBoundary(e) {
			return math.Inf(1)
		}
		return points[topo.NearFace(e)].Distance(points[topo.FarFace(e)]).Radians() * radius
	}
}

// SphericalArcHeuristic estimates the great-circle distance between two faces
// on a sphere of the given radius. Panics with ErrBadRadius when radius <= 0.
func SphericalArcHeuristic(pos *attr.Positions, radius float64) Heuristic {
	points := spherePoints(pos, radius)
	return func(source, target topology.Face, _ int) float64 {
		return points[source].Distance(points[target]).Radians() * radius
	}
}

// spherePoints projects every face position onto the unit sphere.
func spherePoints(pos *attr.Positions, radius float64) []s2.Point {
	if radius <= 0 {
		panic(ErrBadRadius.Error())
	}
	faces := pos.Faces().Values()
	out := make([]s2.Point, len(faces))
	for i, c := range faces {
		out[i] = s2.PointFromCoords(c.X(), c.Y(), c.Z())
	}
	return out
}
