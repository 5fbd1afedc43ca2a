package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tessel/astar"
	"github.com/katalvlaran/tessel/bfs"
	"github.com/katalvlaran/tessel/dfs"
	"github.com/katalvlaran/tessel/topology"
)

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the configured surface and print its counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := buildWorld(a.cfg.Shape, a.logger)
			if err != nil {
				return err
			}
			t := w.topo
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices: %d\n", t.VertexCount())
			fmt.Fprintf(out, "half-edges: %d\n", t.EdgeCount())
			fmt.Fprintf(out, "faces: %d internal, %d external\n", t.InternalFaceCount(), t.ExternalFaceCount())
			fmt.Fprintf(out, "euler: %d\n", t.VertexCount()-t.EdgeCount()/2+t.FaceCount())
			fmt.Fprintf(out, "wrapped: %v\n", t.IsWrapped())
			comp, err := dfs.Components(t, dfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "components: %d\n", comp.Count())
			if err = t.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(out, "valid: true")
			return nil
		},
	}
}

// query is one source/target pair of the path command.
type query struct {
	from, to topology.Face
	path     astar.Path
}

func parseQuery(s string) (query, error) {
	l, r, ok := strings.Cut(s, ":")
	if !ok {
		return query{}, fmt.Errorf("query %q: want FROM:TO", s)
	}
	from, err := strconv.Atoi(l)
	if err != nil {
		return query{}, fmt.Errorf("query %q: %w", s, err)
	}
	to, err := strconv.Atoi(r)
	if err != nil {
		return query{}, fmt.Errorf("query %q: %w", s, err)
	}
	return query{from: topology.Face(from), to: topology.Face(to)}, nil
}

func newPathCmd(a *app) *cobra.Command {
	var (
		metric  string
		workers int
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "path FROM:TO...",
		Short: "Find shortest face paths, several queries in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("metric") {
				a.cfg.Path.Metric = metric
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Path.Workers = workers
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			queries := make([]query, len(args))
			for i, s := range args {
				q, err := parseQuery(s)
				if err != nil {
					return err
				}
				queries[i] = q
			}
			w, err := buildWorld(a.cfg.Shape, a.logger)
			if err != nil {
				return err
			}
			h, c, err := w.presets(a.cfg.Path.Metric)
			if err != nil {
				return err
			}
			if err = runQueries(cmd.Context(), w.topo, queries, a.cfg.Path.Workers, h, c); err != nil {
				return err
			}
			printPaths(cmd.OutOrStdout(), w.topo, queries, verbose)
			return nil
		},
	}
	cmd.Flags().StringVar(&metric, "metric", "", "euclidean, arc or unit")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel searches")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the faces of every path")
	return cmd
}

// runQueries fans queries out to workers goroutines, each owning one Pathfinder.
func runQueries(ctx context.Context, topo *topology.Topology, queries []query, workers int, h astar.Heuristic, c astar.EdgeCost) error {
	if ctx == nil {
		ctx = context.Background()
	}
	g, gctx := errgroup.WithContext(ctx)
	next := make(chan int)
	g.Go(func() error {
		defer close(next)
		for i := range queries {
			select {
			case next <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	for range min(workers, len(queries)) {
		g.Go(func() error {
			pf := astar.NewPathfinder(astar.WithCapacity(topo.FaceCount()))
			for i := range next {
				q := &queries[i]
				p, err := pf.FindPath(topo, q.from, q.to, h, c)
				if err != nil {
					return fmt.Errorf("path %d:%d: %w", q.from, q.to, err)
				}
				q.path = p
			}
			return nil
		})
	}
	return g.Wait()
}

func printPaths(out io.Writer, topo *topology.Topology, queries []query, verbose bool) {
	for _, q := range queries {
		if !q.path.Found() && q.from != q.to {
			fmt.Fprintf(out, "%d -> %d: unreachable\n", q.from, q.to)
			continue
		}
		fmt.Fprintf(out, "%d -> %d: %d steps, cost %.4g\n", q.from, q.to, q.path.Len(), q.path.Cost)
		if verbose {
			fmt.Fprintf(out, "  faces: %v\n", q.path.Faces(topo))
		}
	}
}

func newRingsCmd(a *app) *cobra.Command {
	var (
		depth            int
		extended, extern bool
	)
	cmd := &cobra.Command{
		Use:   "rings FACE",
		Short: "List the faces around FACE, ring by ring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			face, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("face %q: %w", args[0], err)
			}
			rc := a.cfg.Rings
			if cmd.Flags().Changed("depth") {
				rc.Depth = depth
			}
			if cmd.Flags().Changed("extended") {
				rc.Extended = extended
			}
			if cmd.Flags().Changed("include-external") {
				rc.IncludeExternal = extern
			}
			w, err := buildWorld(a.cfg.Shape, a.logger)
			if err != nil {
				return err
			}
			opts := []bfs.Option{bfs.WithContext(cmd.Context())}
			if rc.Extended {
				opts = append(opts, bfs.WithExtended())
			}
			if rc.IncludeExternal {
				opts = append(opts, bfs.WithIncludeExternal())
			}
			res, err := bfs.FaceRings(w.topo, topology.Face(face), rc.Depth, opts...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for d, ring := range res.Rings {
				fmt.Fprintf(out, "ring %d (%d): %v\n", d, len(ring), ring)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "number of rings")
	cmd.Flags().BoolVar(&extended, "extended", false, "step across shared corners too")
	cmd.Flags().BoolVar(&extern, "include-external", false, "let rings enter external faces")
	return cmd
}

func newSpinCmd(a *app) *cobra.Command {
	var backward bool
	cmd := &cobra.Command{
		Use:   "spin EDGE",
		Short: "Spin one half-edge and check the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("edge %q: %w", args[0], err)
			}
			w, err := buildWorld(a.cfg.Shape, a.logger)
			if err != nil {
				return err
			}
			t, e := w.topo, topology.Edge(n)
			if !t.HasEdge(e) {
				return fmt.Errorf("%w: edge %d of %d", topology.ErrInvalidArgument, n, t.EdgeCount())
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "before: %d -> %d\n", t.NearVertex(e), t.FarVertex(e))
			spin := t.SpinEdgeForward
			if backward {
				spin = t.SpinEdgeBackward
			}
			if err = spin(e); err != nil {
				return err
			}
			fmt.Fprintf(out, "after: %d -> %d\n", t.NearVertex(e), t.FarVertex(e))
			if err = t.Validate(); err != nil {
				return err
			}
			a.logger.Debug("tessel: edge spun", "edge", n, "backward", backward)
			fmt.Fprintln(out, "valid: true")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&backward, "backward", "b", false, "spin against the face winding")
	return cmd
}
