package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessel/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tessel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
shape:
  kind: grid
  cols: 16
  rows: 12
  wrap_x: true
path:
  workers: 2
log:
  level: debug
  format: json
`)
	t.Setenv("TESSEL_ROWS", "20")
	t.Setenv("TESSEL_WRAP_Y", "true")
	t.Setenv("TESSEL_RING_DEPTH", "3")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Shape.Cols)
	assert.Equal(t, 20, cfg.Shape.Rows, "env overrides file")
	assert.True(t, cfg.Shape.WrapX)
	assert.True(t, cfg.Shape.WrapY)
	assert.Equal(t, 2, cfg.Path.Workers)
	assert.Equal(t, 3, cfg.Rings.Depth)
	assert.Equal(t, 1.0, cfg.Shape.CellSize, "unset keys keep defaults")

	lvl, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("BadYAML", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "shape: [unterminated"))
		assert.Error(t, err)
	})
	t.Run("BadEnvNumber", func(t *testing.T) {
		t.Setenv("TESSEL_COLS", "many")
		_, err := config.Load("")
		assert.ErrorContains(t, err, "TESSEL_COLS")
	})
	t.Run("BadEnvBool", func(t *testing.T) {
		t.Setenv("TESSEL_WRAP_X", "sometimes")
		_, err := config.Load("")
		assert.ErrorContains(t, err, "TESSEL_WRAP_X")
	})
	t.Run("InvalidAfterEnv", func(t *testing.T) {
		t.Setenv("TESSEL_WORKERS", "0")
		_, err := config.Load("")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*config.Config){
		"UnknownShape":   func(c *config.Config) { c.Shape.Kind = "klein" },
		"EmptyGrid":      func(c *config.Config) { c.Shape.Cols = 0 },
		"ZeroCell":       func(c *config.Config) { c.Shape.CellSize = 0 },
		"NoSolid":        func(c *config.Config) { c.Shape.Kind, c.Shape.Solid = config.ShapePlatonic, "" },
		"NegativeLevels": func(c *config.Config) { c.Shape.Kind, c.Shape.Subdivisions = config.ShapeGeodesic, -1 },
		"ZeroRadius":     func(c *config.Config) { c.Shape.Kind, c.Shape.Radius = config.ShapeGeodesic, 0 },
		"ArcOnGrid":      func(c *config.Config) { c.Path.Metric = config.MetricArc },
		"UnknownMetric":  func(c *config.Config) { c.Path.Metric = "manhattan" },
		"ZeroDepth":      func(c *config.Config) { c.Rings.Depth = 0 },
		"BadLevel":       func(c *config.Config) { c.Log.Level = "loud" },
		"BadFormat":      func(c *config.Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}

	t.Run("ArcOnSphere", func(t *testing.T) {
		cfg := config.Default()
		cfg.Shape.Kind, cfg.Path.Metric = config.ShapeGeodesic, config.MetricArc
		assert.NoError(t, cfg.Validate())
	})
}
