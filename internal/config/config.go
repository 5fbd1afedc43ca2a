// Package config loads settings for the tessel command: shape parameters,
// query defaults and logging. Values come from defaults, then an optional
// YAML file, then TESSEL_* environment variables, and are validated last.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Shape kinds.
const (
	ShapeGrid     = "grid"
	ShapePlatonic = "platonic"
	ShapeGeodesic = "geodesic"
)

// Path metrics.
const (
	MetricEuclidean = "euclidean"
	MetricArc       = "arc"
	MetricUnit      = "unit"
)

// Config is the full configuration of the tessel command.
type Config struct {
	Shape ShapeConfig `yaml:"shape"`
	Path  PathConfig  `yaml:"path"`
	Rings RingsConfig `yaml:"rings"`
	Log   LogConfig   `yaml:"log"`
}

// ShapeConfig selects and sizes the surface to build.
type ShapeConfig struct {
	Kind         string  `yaml:"kind"`
	Cols         int     `yaml:"cols"`
	Rows         int     `yaml:"rows"`
	WrapX        bool    `yaml:"wrap_x"`
	WrapY        bool    `yaml:"wrap_y"`
	CellSize     float64 `yaml:"cell_size"`
	Solid        string  `yaml:"solid"`
	Subdivisions int     `yaml:"subdivisions"`
	Radius       float64 `yaml:"radius"`
	TrackWraps   bool    `yaml:"track_wraps"`
}

// PathConfig holds pathfinding defaults.
type PathConfig struct {
	Metric  string `yaml:"metric"`
	Workers int    `yaml:"workers"`
}

// RingsConfig holds face-ring defaults.
type RingsConfig struct {
	Depth           int  `yaml:"depth"`
	Extended        bool `yaml:"extended"`
	IncludeExternal bool `yaml:"include_external"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration: an 8×8 plane, Euclidean
// paths on 4 workers, single rings, text logs at info level.
func Default() Config {
	return Config{
		Shape: ShapeConfig{
			Kind:         ShapeGrid,
			Cols:         8,
			Rows:         8,
			CellSize:     1,
			Solid:        "icosahedron",
			Subdivisions: 2,
			Radius:       1,
			TrackWraps:   true,
		},
		Path:  PathConfig{Metric: MetricEuclidean, Workers: 4},
		Rings: RingsConfig{Depth: 1},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

// Load returns the configuration with priority: env > file > defaults.
// An empty path or a missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := loadEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// loadEnv applies TESSEL_* overrides. Malformed numbers and booleans are errors.
func loadEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	var errs []error
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok && v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = i
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(key); ok && v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = f
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := lookup(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	str("TESSEL_SHAPE", &cfg.Shape.Kind)
	num("TESSEL_COLS", &cfg.Shape.Cols)
	num("TESSEL_ROWS", &cfg.Shape.Rows)
	flag("TESSEL_WRAP_X", &cfg.Shape.WrapX)
	flag("TESSEL_WRAP_Y", &cfg.Shape.WrapY)
	float("TESSEL_CELL_SIZE", &cfg.Shape.CellSize)
	str("TESSEL_SOLID", &cfg.Shape.Solid)
	num("TESSEL_SUBDIVISIONS", &cfg.Shape.Subdivisions)
	float("TESSEL_RADIUS", &cfg.Shape.Radius)
	flag("TESSEL_TRACK_WRAPS", &cfg.Shape.TrackWraps)

	str("TESSEL_METRIC", &cfg.Path.Metric)
	num("TESSEL_WORKERS", &cfg.Path.Workers)

	num("TESSEL_RING_DEPTH", &cfg.Rings.Depth)
	flag("TESSEL_RING_EXTENDED", &cfg.Rings.Extended)
	flag("TESSEL_RING_INCLUDE_EXTERNAL", &cfg.Rings.IncludeExternal)

	str("TESSEL_LOG_LEVEL", &cfg.Log.Level)
	str("TESSEL_LOG_FORMAT", &cfg.Log.Format)

	if len(errs) > 0 {
		return fmt.Errorf("config: environment: %w", errors.Join(errs...))
	}
	return nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
	}
	switch c.Shape.Kind {
	case ShapeGrid:
		if c.Shape.Cols < 1 || c.Shape.Rows < 1 {
			return invalid("grid size %dx%d", c.Shape.Cols, c.Shape.Rows)
		}
		if c.Shape.CellSize <= 0 {
			return invalid("cell_size %v must be positive", c.Shape.CellSize)
		}
	case ShapePlatonic:
		if c.Shape.Solid == "" {
			return invalid("platonic shape needs a solid")
		}
	case ShapeGeodesic:
		if c.Shape.Subdivisions < 0 {
			return invalid("subdivisions %d must be non-negative", c.Shape.Subdivisions)
		}
	default:
		return invalid("unknown shape %q", c.Shape.Kind)
	}
	if c.Shape.Kind != ShapeGrid && c.Shape.Radius <= 0 {
		return invalid("radius %v must be positive", c.Shape.Radius)
	}

	switch c.Path.Metric {
	case MetricEuclidean, MetricUnit:
	case MetricArc:
		if c.Shape.Kind == ShapeGrid {
			return invalid("metric %q needs a spherical shape", c.Path.Metric)
		}
	default:
		return invalid("unknown metric %q", c.Path.Metric)
	}
	if c.Path.Workers < 1 {
		return invalid("workers %d must be >= 1", c.Path.Workers)
	}
	if c.Rings.Depth < 1 {
		return invalid("ring depth %d must be >= 1", c.Rings.Depth)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return invalid("%v", err)
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return invalid("log format %q", c.Log.Format)
	}
	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(l.Level))
	return lvl, err
}
