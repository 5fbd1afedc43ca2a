// SPDX-License-Identifier: MIT
// Package: tessel/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - logger     = slog.Default() (Build only logs at Debug level)
//   - trackWraps = true
//   - cellSize   = 1.0
//   - radius     = 1.0

package builder

import "log/slog"

// builderConfig aggregates the knobs of Build. Passed by value.
type builderConfig struct {
	logger     *slog.Logger
	trackWraps bool
}

// gridConfig aggregates the knobs of QuadGrid.
type gridConfig struct {
	wrapX, wrapY bool
	cellSize     float64
}

// sphereConfig aggregates the knobs of the spherical shapes.
type sphereConfig struct {
	radius float64
}

const (
	defaultCellSize = 1.0
	defaultRadius   = 1.0
)

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		logger:     slog.Default(),
		trackWraps: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func newGridConfig(opts ...GridOption) gridConfig {
	cfg := gridConfig{cellSize: defaultCellSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func newSphereConfig(opts ...SphereOption) sphereConfig {
	cfg := sphereConfig{radius: defaultRadius}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
