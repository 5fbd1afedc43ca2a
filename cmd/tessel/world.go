package main

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/tessel/astar"
	"github.com/katalvlaran/tessel/attr"
	"github.com/katalvlaran/tessel/builder"
	"github.com/katalvlaran/tessel/internal/config"
	"github.com/katalvlaran/tessel/topology"
)

// world is a built surface with the positions the presets need.
type world struct {
	topo   *topology.Topology
	pos    *attr.Positions
	radius float64
}

// buildWorld constructs the surface described by cfg.
func buildWorld(cfg config.ShapeConfig, logger *slog.Logger) (*world, error) {
	var (
		ix      builder.Indexer
		verts   []mgl64.Vec3
		faces   []mgl64.Vec3
		surface attr.Surface
		radius  float64
	)
	switch cfg.Kind {
	case config.ShapeGrid:
		opts := []builder.GridOption{builder.WithCellSize(cfg.CellSize)}
		if cfg.WrapX {
			opts = append(opts, builder.WithWrapX())
		}
		if cfg.WrapY {
			opts = append(opts, builder.WithWrapY())
		}
		g, err := builder.QuadGrid(cfg.Cols, cfg.Rows, opts...)
		if err != nil {
			return nil, err
		}
		ix, verts, faces = g, g.Positions(), g.FacePositions()
		surface.Axis0, surface.Axis1 = g.Periods()
	case config.ShapePlatonic:
		name, ok := builder.ParsePlatonicName(cfg.Solid)
		if !ok {
			return nil, fmt.Errorf("%w: %q", builder.ErrUnknownSolid, cfg.Solid)
		}
		m, err := builder.PlatonicSolid(name, builder.WithRadius(cfg.Radius))
		if err != nil {
			return nil, err
		}
		ix, verts, radius = m, m.Positions(), cfg.Radius
	case config.ShapeGeodesic:
		m, err := builder.Geodesic(cfg.Subdivisions, builder.WithRadius(cfg.Radius))
		if err != nil {
			return nil, err
		}
		ix, verts, radius = m, m.Positions(), cfg.Radius
	default:
		return nil, fmt.Errorf("%w: unknown shape %q", config.ErrInvalidConfig, cfg.Kind)
	}

	topo, err := builder.Build(ix, builder.WithLogger(logger), builder.WithWrapTracking(cfg.TrackWraps))
	if err != nil {
		return nil, err
	}
	pos, err := attr.NewPositions(topo, surface, verts, faces)
	if err != nil {
		return nil, err
	}
	return &world{topo: topo, pos: pos, radius: radius}, nil
}

// presets returns the heuristic and cost for a metric name.
func (w *world) presets(metric string) (astar.Heuristic, astar.EdgeCost, error) {
	switch metric {
	case config.MetricEuclidean:
		return astar.EuclideanHeuristic(w.pos), astar.EuclideanCost(w.pos), nil
	case config.MetricArc:
		if w.radius <= 0 {
			return nil, nil, fmt.Errorf("metric %q needs a spherical shape", metric)
		}
		return astar.SphericalArcHeuristic(w.pos, w.radius), astar.SphericalArcCost(w.pos, w.radius), nil
	case config.MetricUnit:
		return astar.ZeroHeuristic, astar.UnitCost(w.topo), nil
	}
	return nil, nil, fmt.Errorf("%w: unknown metric %q", config.ErrInvalidConfig, metric)
}
