// SPDX-License-Identifier: MIT
// Package: tessel/builder
//
// options.go - functional options for Build and the shape constructors.
//
// Contract:
//   - Options are functional and resolve into a config value before work starts.
//   - Option constructors validate and panic on meaningless inputs; Build and
//     the shape constructors themselves never panic.

package builder

import (
	"fmt"
	"log/slog"
)

// BuilderOption customizes Build.
type BuilderOption func(*builderConfig)

// WithLogger routes Build's debug summaries to l.
// Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithWrapTracking controls whether a WrapIndexer's wraps are turned into a
// per-edge wrap array. Disabled tracking yields a store without wraps even
// for wrapped inputs. Enabled by default.
func WithWrapTracking(enabled bool) BuilderOption {
	return func(c *builderConfig) {
		c.trackWraps = enabled
	}
}

// GridOption customizes QuadGrid.
type GridOption func(*gridConfig)

// WithWrapX joins the left and right borders of the grid (axis 0).
func WithWrapX() GridOption {
	return func(c *gridConfig) { c.wrapX = true }
}

// WithWrapY joins the bottom and top borders of the grid (axis 1).
func WithWrapY() GridOption {
	return func(c *gridConfig) { c.wrapY = true }
}

// WithCellSize sets the side length of one grid cell (>0).
// Panics if s <= 0.
func WithCellSize(s float64) GridOption {
	if s <= 0 {
		panic(fmt.Sprintf("builder: WithCellSize(%g): size must be > 0", s))
	}
	return func(c *gridConfig) { c.cellSize = s }
}

// SphereOption customizes PlatonicSolid and Geodesic.
type SphereOption func(*sphereConfig)

// WithRadius scales the generated vertex positions to a sphere of radius r (>0).
// Panics if r <= 0.
func WithRadius(r float64) SphereOption {
	if r <= 0 {
		panic(fmt.Sprintf("builder: WithRadius(%g): radius must be > 0", r))
	}
	return func(c *sphereConfig) { c.radius = r }
}
