// Package dfs defines types and options for depth-first labeling of face
// components, including cancellation, a visit hook and an edge filter.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/tessel/topology"
)

var (
	// ErrTopologyNil is returned when a nil *topology.Topology is passed.
	ErrTopologyNil = errors.New("dfs: topology is nil")

	// ErrFaceNotFound indicates a face outside the internal range.
	ErrFaceNotFound = errors.New("dfs: face not found")
)

// Unlabeled marks faces that belong to no component: external faces.
const Unlabeled = -1

// Option configures optional behavior of Components.
type Option func(*Options)

// Options holds configurable parameters for component labeling.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a face is labeled.
	// Returning an error aborts labeling with that error.
	OnVisit func(f topology.Face, component int) error

	// Passable, if non-nil, is called for each face edge before stepping
	// across it. Return false to treat the edge as a wall.
	Passable func(e topology.Edge) bool
}

// DefaultOptions returns Options with a background context, no hook and
// every edge between internal faces passable.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a hook invoked as each face is labeled.
func WithOnVisit(fn func(f topology.Face, component int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithPassable restricts steps to edges for which fn returns true.
func WithPassable(fn func(e topology.Edge) bool) Option {
	return func(o *Options) { o.Passable = fn }
}

// Result holds the labeling:
//   - Labels: component index per face, Unlabeled for external faces.
//   - Sizes:  number of faces per component, in discovery order.
type Result struct {
	Labels []int
	Sizes  []int
}

// Count returns the number of components.
func (r *Result) Count() int { return len(r.Sizes) }

// Connected reports whether a and b are internal faces of the same component.
func (r *Result) Connected(a, b topology.Face) bool {
	if int(a) < 0 || int(a) >= len(r.Labels) || int(b) < 0 || int(b) >= len(r.Labels) {
		return false
	}
	return r.Labels[a] != Unlabeled && r.Labels[a] == r.Labels[b]
}

// Largest returns the index of the biggest component, or -1 when there is none.
func (r *Result) Largest() int {
	best := -1
	for i, n := range r.Sizes {
		if best < 0 || n > r.Sizes[best] {
			best = i
		}
	}
	return best
}
