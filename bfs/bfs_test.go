package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/katalvlaran/tessel/bfs"
	"github.com/katalvlaran/tessel/builder"
	"github.com/katalvlaran/tessel/topology"
)

func grid(t testing.TB, cols, rows int, opts ...builder.GridOption) (*builder.Grid, *topology.Topology) {
	t.Helper()
	g, err := builder.QuadGrid(cols, rows, opts...)
	if err != nil {
		t.Fatalf("QuadGrid: %v", err)
	}
	topo, err := builder.Build(g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g, topo
}

func ringSizes(res *bfs.Result) []int {
	out := make([]int, len(res.Rings))
	for i, r := range res.Rings {
		out[i] = len(r)
	}
	return out
}

// TestFaceRings_Errors verifies that invalid inputs are rejected.
func TestFaceRings_Errors(t *testing.T) {
	if _, err := bfs.FaceRings(nil, 0, 1); !errors.Is(err, bfs.ErrTopologyNil) {
		t.Errorf("nil topology: want ErrTopologyNil, got %v", err)
	}
	_, topo := grid(t, 2, 2)
	if _, err := bfs.FaceRings(topo, 0, 0); !errors.Is(err, bfs.ErrBadDepth) {
		t.Errorf("zero depth: want ErrBadDepth, got %v", err)
	}
	if _, err := bfs.FaceRings(topo, 0, -3); !errors.Is(err, bfs.ErrBadDepth) {
		t.Errorf("negative depth: want ErrBadDepth, got %v", err)
	}
	if _, err := bfs.FaceRings(topo, 42, 1); !errors.Is(err, bfs.ErrStartFaceNotFound) {
		t.Errorf("missing face: want ErrStartFaceNotFound, got %v", err)
	}
	if _, err := bfs.FaceRings(topo, topo.FirstExternalFace(), 1); !errors.Is(err, bfs.ErrStartFaceNotFound) {
		t.Errorf("external start: want ErrStartFaceNotFound, got %v", err)
	}
	if _, err := bfs.FaceRings(topo, topo.FirstExternalFace(), 1, bfs.WithIncludeExternal()); err != nil {
		t.Errorf("external start with WithIncludeExternal: unexpected error %v", err)
	}
}

// TestFaceRings_Sizes checks ring layering on planes and tori.
func TestFaceRings_Sizes(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		opts       []builder.GridOption
		x, y       int
		depth      int
		extended   bool
		want       []int
	}{
		{"PlaneDiamond", 5, 5, nil, 2, 2, 2, false, []int{1, 4, 8}},
		{"PlaneSquare", 5, 5, nil, 2, 2, 2, true, []int{1, 8, 16}},
		{"PlaneExhausted", 5, 5, nil, 2, 2, 9, false, []int{1, 4, 8, 8, 4}},
		{"TorusDiamond", 4, 4, []builder.GridOption{builder.WithWrapX(), builder.WithWrapY()}, 0, 0, 2, false, []int{1, 4, 6}},
		{"TorusSquare", 4, 4, []builder.GridOption{builder.WithWrapX(), builder.WithWrapY()}, 0, 0, 2, true, []int{1, 8, 7}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, topo := grid(t, tc.cols, tc.rows, tc.opts...)
			var opts []bfs.Option
			if tc.extended {
				opts = append(opts, bfs.WithExtended())
			}
			res, err := bfs.FaceRings(topo, topology.Face(g.Face(tc.x, tc.y)), tc.depth, opts...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ringSizes(res); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ring sizes = %v; want %v", got, tc.want)
			}
			for f, d := range res.Depth {
				if !slices.Contains(res.Rings[d], f) {
					t.Errorf("face %d has depth %d but is missing from that ring", f, d)
				}
			}
		})
	}
}

// TestFaceRings_IncludeExternal lets the outside count as a neighbor.
func TestFaceRings_IncludeExternal(t *testing.T) {
	_, topo := grid(t, 3, 3)
	res, err := bfs.FaceRings(topo, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rings[1]) != 2 {
		t.Errorf("internal only: ring 1 = %v; want 2 faces", res.Rings[1])
	}

	res, err = bfs.FaceRings(topo, 0, 1, bfs.WithIncludeExternal())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rings[1]) != 3 || !slices.Contains(res.Rings[1], topo.FirstExternalFace()) {
		t.Errorf("with external: ring 1 = %v; want 2 cells and the outside", res.Rings[1])
	}
}

// TestFaceRings_FilterNeighbor blocks a whole column.
func TestFaceRings_FilterNeighbor(t *testing.T) {
	g, topo := grid(t, 5, 5)
	blocked := func(_, nbr topology.Face) bool { return int(nbr)%5 != 1 }
	res, err := bfs.FaceRings(topo, topology.Face(g.Face(0, 0)), 10, bfs.WithFilterNeighbor(blocked))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 5 {
		t.Errorf("reached %v; want column 0 only", res.Order)
	}
}

// TestFaceRings_PathTo reconstructs a face chain.
func TestFaceRings_PathTo(t *testing.T) {
	g, topo := grid(t, 5, 5)
	from, to := topology.Face(g.Face(0, 0)), topology.Face(g.Face(4, 4))
	res, err := bfs.FaceRings(topo, from, 8)
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(to)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 9 || path[0] != from || path[8] != to {
		t.Errorf("path = %v; want 9 faces from %d to %d", path, from, to)
	}

	short, err := bfs.FaceRings(topo, from, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = short.PathTo(to); err == nil {
		t.Error("expected error for unreached face")
	}
}

// TestFaceRings_Hooks verifies OnVisit order and abort.
func TestFaceRings_Hooks(t *testing.T) {
	_, topo := grid(t, 3, 3)
	var seen []int
	_, err := bfs.FaceRings(topo, 4, 1, bfs.WithOnVisit(func(_ topology.Face, d int) error {
		seen = append(seen, d)
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 1, 1, 1}; !reflect.DeepEqual(seen, want) {
		t.Errorf("visit depths = %v; want %v", seen, want)
	}

	stop := errors.New("stop")
	_, err = bfs.FaceRings(topo, 4, 1, bfs.WithOnVisit(func(topology.Face, int) error { return stop }))
	if !errors.Is(err, stop) {
		t.Errorf("want hook error, got %v", err)
	}
}

// TestFaceRings_Cancellation stops on a cancelled context.
func TestFaceRings_Cancellation(t *testing.T) {
	_, topo := grid(t, 3, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.FaceRings(topo, 0, 2, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
