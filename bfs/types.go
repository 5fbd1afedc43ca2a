// Package bfs provides tunable options and error definitions
// for breadth-first face rings over a topology.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/tessel/topology"
)

// Sentinel errors for ring expansion.
var (
	// ErrTopologyNil is returned if a nil topology pointer is passed.
	ErrTopologyNil = errors.New("bfs: topology is nil")

	// ErrStartFaceNotFound is returned when the source is not a face of the
	// topology, or is external while external faces are excluded.
	ErrStartFaceNotFound = errors.New("bfs: start face not found")

	// ErrBadDepth is returned when the ring depth is not positive.
	ErrBadDepth = errors.New("bfs: depth must be positive")
)

// Option configures ring expansion via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for FaceRings.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Extended also steps to faces that only share a vertex with the
	// current face (the eight neighbors of a grid cell instead of four).
	Extended bool

	// IncludeExternal lets the expansion enter external faces.
	IncludeExternal bool

	// OnVisit is called when a face is visited. If it returns an error,
	// the expansion aborts and propagates that error.
	OnVisit func(f topology.Face, depth int) error

	// FilterNeighbor can skip steps by returning false.
	FilterNeighbor func(curr, neighbor topology.Face) bool
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - edge-adjacent faces only, external faces excluded
//   - no-op OnVisit, no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(topology.Face, int) error { return nil },
		FilterNeighbor: func(_, _ topology.Face) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithExtended includes faces touching only at a corner.
func WithExtended() Option {
	return func(o *Options) { o.Extended = true }
}

// WithIncludeExternal lets rings contain external faces.
func WithIncludeExternal() Option {
	return func(o *Options) { o.IncludeExternal = true }
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the expansion.
func WithOnVisit(fn func(f topology.Face, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor topology.Face) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a ring expansion:
//   - Order: faces in visit sequence.
//   - Rings: Rings[d] lists the faces first reached at depth d; Rings[0] is the source.
//   - Depth: face → ring index.
//   - Parent: face → the face it was reached from.
type Result struct {
	Order  []topology.Face
	Rings  [][]topology.Face
	Depth  map[topology.Face]int
	Parent map[topology.Face]topology.Face
}

// PathTo reconstructs the face chain from the source to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest topology.Face) ([]topology.Face, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: face %d not reached", dest)
	}
	path := []topology.Face{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
