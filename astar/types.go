// Package astar defines the types, options and sentinel errors of the
// face-graph pathfinder.
//
// Errors (sentinel):
//
//	– ErrNilTopology    if the topology pointer is nil.
//	– ErrNilFunc        if the heuristic or the cost function is nil.
//	– ErrFaceOutOfRange if source or target is not a face of the topology.
//	– ErrNegativeCost   if a cost function returns a negative value or NaN.
//	– ErrBadRadius      if a spherical preset is given a non-positive radius.
package astar

import (
	"errors"

	"github.com/katalvlaran/tessel/topology"
)

// Sentinel errors returned by the pathfinder.
var (
	// ErrNilTopology indicates that a nil *topology.Topology was passed to FindPath.
	ErrNilTopology = errors.New("astar: topology is nil")

	// ErrNilFunc indicates a missing heuristic or edge cost function.
	ErrNilFunc = errors.New("astar: heuristic and cost functions are required")

	// ErrFaceOutOfRange indicates a source or target outside [0, FaceCount).
	ErrFaceOutOfRange = errors.New("astar: face out of range")

	// ErrNegativeCost indicates that a cost function returned a negative value or NaN.
	ErrNegativeCost = errors.New("astar: negative edge cost")

	// ErrBadRadius indicates a non-positive sphere radius given to a spherical preset.
	ErrBadRadius = errors.New("astar: radius must be positive")

	// ErrBadCapacity indicates a negative scratch capacity hint.
	ErrBadCapacity = errors.New("astar: capacity must be non-negative")
)

// Heuristic estimates the remaining cost from source to target. pathLen is
// the number of edges walked to reach source. It must never overestimate.
type Heuristic func(source, target topology.Face, pathLen int) float64

// EdgeCost prices stepping across e from its near face to its far face.
// pathLen is the number of edges walked before e. Returning +Inf forbids
// the step.
type EdgeCost func(e topology.Edge, pathLen int) float64

// Path is the result of a search: the half-edges crossed in order, each
// leading from its near face to its far face, and their summed cost.
// An empty path with a nil error means no route exists (or source == target).
type Path struct {
	Edges []topology.Edge
	Cost  float64
}

// Len returns the number of steps in the path.
func (p Path) Len() int { return len(p.Edges) }

// Found reports whether the path has at least one step.
func (p Path) Found() bool { return len(p.Edges) > 0 }

// Faces lists the faces visited by p, starting at the source face.
func (p Path) Faces(topo *topology.Topology) []topology.Face {
	if len(p.Edges) == 0 {
		return nil
	}
	out := make([]topology.Face, 0, len(p.Edges)+1)
	out = append(out, topo.NearFace(p.Edges[0]))
	for _, e := range p.Edges {
		out = append(out, topo.FarFace(e))
	}
	return out
}

// Options configures a Pathfinder.
//
// Capacity – expected number of faces touched per search; presizes the
// scratch maps and queue. Must be ≥ 0. Default 0 (grow on demand).
type Options struct {
	Capacity int
}

// Option represents a functional option for configuring a Pathfinder.
type Option func(*Options)

// WithCapacity presizes the scratch structures for searches touching about n faces.
// Panics with ErrBadCapacity when n < 0.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// DefaultOptions returns the zero-capacity defaults.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}
