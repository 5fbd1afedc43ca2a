// Package tessel is a toolkit for tiled surfaces: square grids, tori,
// platonic solids and geodesic spheres, all stored as one half-edge mesh
// and searched with the same face-graph algorithms.
//
// What is inside?
//
//	edgewrap/   the group of seam crossings on a periodic surface
//	topology/   the half-edge store: navigation, iteration, edge spins
//	builder/    grids, tori, solids and spheres turned into topologies
//	attr/       per-vertex, per-edge and per-face columns plus positions
//	astar/      reusable A* pathfinder over faces with pluggable costs
//	bfs/        breadth-first rings of faces around a source
//	dfs/        connected regions of faces behind passable edges
//	cmd/tessel  a small CLI that builds, paths, rings and spins meshes
//
// A topology never owns coordinates. Algorithms that need geometry take
// an attr.Positions, which resolves wrapped edges to their far image, so
// the same code runs on a flat sheet and on a torus.
//
// Quick start:
//
//	grid, _ := builder.QuadGrid(16, 16, builder.WithWrapX())
//	topo, _ := builder.Build(grid, builder.WithWrapTracking(true))
//
//	var surface attr.Surface
//	surface.Axis0, surface.Axis1 = grid.Periods()
//	pos, _ := attr.NewPositions(topo, surface, grid.Positions(), grid.FacePositions())
//
//	pf := astar.NewPathfinder()
//	path, _ := pf.FindPath(topo, 0, 255, astar.EuclideanHeuristic(pos), astar.EuclideanCost(pos))
//	fmt.Println(path.Len(), path.Cost)
//
// Every package reports failures through sentinel errors that callers
// match with errors.Is.
package tessel
