package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/tessel/internal/config"
)

// app carries the state shared by every sub-command.
type app struct {
	cfgPath string
	cfg     config.Config
	logger  *slog.Logger

	// flag overrides, applied only when set on the command line
	shape        string
	cols, rows   int
	wrapX, wrapY bool
	cellSize     float64
	solid        string
	subdivisions int
	radius       float64
	logLevel     string
	logFormat    string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "tessel",
		Short:        "Build half-edge surfaces and query their face graph",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.cfgPath, "config", "c", "", "YAML configuration file")
	f.StringVar(&a.shape, "shape", "", "surface kind: grid, platonic or geodesic")
	f.IntVar(&a.cols, "cols", 0, "grid columns")
	f.IntVar(&a.rows, "rows", 0, "grid rows")
	f.BoolVar(&a.wrapX, "wrap-x", false, "wrap the grid along x")
	f.BoolVar(&a.wrapY, "wrap-y", false, "wrap the grid along y")
	f.Float64Var(&a.cellSize, "cell-size", 0, "grid cell size")
	f.StringVar(&a.solid, "solid", "", "platonic solid name")
	f.IntVar(&a.subdivisions, "subdivisions", 0, "geodesic subdivision levels")
	f.Float64Var(&a.radius, "radius", 0, "sphere radius")
	f.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	f.StringVar(&a.logFormat, "log-format", "", "text or json")

	root.AddCommand(newBuildCmd(a), newPathCmd(a), newRingsCmd(a), newSpinCmd(a))
	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	override(flags, "shape", &cfg.Shape.Kind, a.shape)
	override(flags, "cols", &cfg.Shape.Cols, a.cols)
	override(flags, "rows", &cfg.Shape.Rows, a.rows)
	override(flags, "wrap-x", &cfg.Shape.WrapX, a.wrapX)
	override(flags, "wrap-y", &cfg.Shape.WrapY, a.wrapY)
	override(flags, "cell-size", &cfg.Shape.CellSize, a.cellSize)
	override(flags, "solid", &cfg.Shape.Solid, a.solid)
	override(flags, "subdivisions", &cfg.Shape.Subdivisions, a.subdivisions)
	override(flags, "radius", &cfg.Shape.Radius, a.radius)
	override(flags, "log-level", &cfg.Log.Level, a.logLevel)
	override(flags, "log-format", &cfg.Log.Format, a.logFormat)
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger, err = newLogger(cfg.Log, cmd.ErrOrStderr())
	return err
}

func override[T any](flags *pflag.FlagSet, name string, dst *T, v T) {
	if flags.Changed(name) {
		*dst = v
	}
}

func newLogger(c config.LogConfig, w io.Writer) (*slog.Logger, error) {
	lvl, err := c.SlogLevel()
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
