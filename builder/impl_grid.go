// SPDX-License-Identifier: MIT
// Package: tessel/builder
//
// impl_grid.go - QuadGrid(cols, rows, opts...): a plane, cylinder or torus
// of square cells.
//
// Canonical model:
//   - Cell (x, y) is face y·cols + x, bounded counter-clockwise (axis 1 up)
//     by the vertices at (x,y), (x+1,y), (x+1,y+1), (x,y+1).
//   - Vertices are numbered row-major over vcols × vrows lattice points where
//     a wrapped axis has as many points as cells and an open axis one more.
//   - A vertex reached across a wrapped seam is reported with a positive
//     FaceToVert wrap on that axis; the period along axis 0 is cols·cellSize,
//     along axis 1 rows·cellSize.
//
// Contract:
//   - cols, rows >= MinGridDim; a wrapped axis needs >= MinWrappedGridDim cells.
//   - External faces: 1 for a plane, 2 for a cylinder (one per rim), 0 for a torus.
//
// Complexity: O(cols·rows) for every query except Positions (allocates V entries).

package builder

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/tessel/edgewrap"
)

// Grid is a WrapIndexer over a regular quad grid.
type Grid struct {
	cols, rows   int
	vcols, vrows int
	cfg          gridConfig
}

// corner offsets of neighbors 0..3, counter-clockwise.
var gridCorners = [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// QuadGrid validates the dimensions and returns the grid indexer.
func QuadGrid(cols, rows int, opts ...GridOption) (*Grid, error) {
	cfg := newGridConfig(opts...)
	if cols < MinGridDim || rows < MinGridDim {
		return nil, builderErrorf(MethodQuadGrid, ErrBadSize, "cols=%d, rows=%d (each must be >= %d)", cols, rows, MinGridDim)
	}
	if cfg.wrapX && cols < MinWrappedGridDim {
		return nil, builderErrorf(MethodQuadGrid, ErrBadSize, "wrapped cols=%d (must be >= %d)", cols, MinWrappedGridDim)
	}
	if cfg.wrapY && rows < MinWrappedGridDim {
		return nil, builderErrorf(MethodQuadGrid, ErrBadSize, "wrapped rows=%d (must be >= %d)", rows, MinWrappedGridDim)
	}

	g := &Grid{cols: cols, rows: rows, vcols: cols + 1, vrows: rows + 1, cfg: cfg}
	if cfg.wrapX {
		g.vcols = cols
	}
	if cfg.wrapY {
		g.vrows = rows
	}
	return g, nil
}

// Cols returns the number of cells along axis 0.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of cells along axis 1.
func (g *Grid) Rows() int { return g.rows }

// Face returns the face index of cell (x, y).
func (g *Grid) Face(x, y int) int { return y*g.cols + x }

// Vertex returns the vertex index of lattice point (x, y), folding wrapped axes.
func (g *Grid) Vertex(x, y int) int {
	if g.cfg.wrapX {
		x %= g.vcols
	}
	if g.cfg.wrapY {
		y %= g.vrows
	}
	return y*g.vcols + x
}

// VertexCount implements Indexer.
func (g *Grid) VertexCount() int { return g.vcols * g.vrows }

// EdgeCount implements Indexer.
func (g *Grid) EdgeCount() int {
	n := 4 * g.cols * g.rows
	if !g.cfg.wrapX {
		n += 2 * g.rows
	}
	if !g.cfg.wrapY {
		n += 2 * g.cols
	}
	return n
}

// FaceCount implements Indexer.
func (g *Grid) FaceCount() int { return g.InternalFaceCount() + g.ExternalFaceCount() }

// InternalFaceCount implements Indexer.
func (g *Grid) InternalFaceCount() int { return g.cols * g.rows }

// ExternalFaceCount implements Indexer.
func (g *Grid) ExternalFaceCount() int {
	switch {
	case g.cfg.wrapX && g.cfg.wrapY:
		return 0
	case g.cfg.wrapX || g.cfg.wrapY:
		return 2
	default:
		return 1
	}
}

// NeighborCount implements Indexer.
func (g *Grid) NeighborCount(int) int { return 4 }

// NeighborVertex implements Indexer.
func (g *Grid) NeighborVertex(face, neighbor int) int {
	x, y := face%g.cols, face/g.cols
	c := gridCorners[neighbor]
	return g.Vertex(x+c[0], y+c[1])
}

// EdgeWrap implements WrapIndexer.
func (g *Grid) EdgeWrap(face, neighbor int) edgewrap.EdgeWrap {
	x, y := face%g.cols, face/g.cols
	c := gridCorners[neighbor]
	var a0, a1 int
	if g.cfg.wrapX && x+c[0] == g.cols {
		a0 = 1
	}
	if g.cfg.wrapY && y+c[1] == g.rows {
		a1 = 1
	}
	return edgewrap.Make(edgewrap.FaceToVert, edgewrap.FromAxes(a0, a1))
}

// Periods returns the translation of one period along each axis. An open
// axis has a zero period.
func (g *Grid) Periods() (axis0, axis1 mgl64.Vec3) {
	s := g.cfg.cellSize
	if g.cfg.wrapX {
		axis0 = mgl64.Vec3{float64(g.cols) * s, 0, 0}
	}
	if g.cfg.wrapY {
		axis1 = mgl64.Vec3{0, float64(g.rows) * s, 0}
	}
	return axis0, axis1
}

// Positions returns the canonical position of every vertex.
func (g *Grid) Positions() []mgl64.Vec3 {
	s := g.cfg.cellSize
	out := make([]mgl64.Vec3, g.VertexCount())
	for y := 0; y < g.vrows; y++ {
		for x := 0; x < g.vcols; x++ {
			out[y*g.vcols+x] = mgl64.Vec3{float64(x) * s, float64(y) * s, 0}
		}
	}
	return out
}

// FacePositions returns the center of every internal face.
func (g *Grid) FacePositions() []mgl64.Vec3 {
	s := g.cfg.cellSize
	out := make([]mgl64.Vec3, g.InternalFaceCount())
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			out[g.Face(x, y)] = mgl64.Vec3{(float64(x) + 0.5) * s, (float64(y) + 0.5) * s, 0}
		}
	}
	return out
}
