package attr

import (
	"fmt"

	"github.com/katalvlaran/tessel/topology"
)

// Vertex is a column with one value per vertex.
type Vertex[T any] struct {
	topo   *topology.Topology
	values []T
}

// NewVertex returns a zero-filled vertex column for topo.
func NewVertex[T any](topo *topology.Topology) (*Vertex[T], error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	return &Vertex[T]{topo: topo, values: make([]T, topo.VertexCount())}, nil
}

// VertexFrom adopts values as a vertex column; len(values) must equal the vertex count.
func VertexFrom[T any](topo *topology.Topology, values []T) (*Vertex[T], error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	if len(values) != topo.VertexCount() {
		return nil, fmt.Errorf("%w: %d values for %d vertices", ErrSizeMismatch, len(values), topo.VertexCount())
	}
	return &Vertex[T]{topo: topo, values: values}, nil
}

// Get returns the value of vertex v.
func (c *Vertex[T]) Get(v topology.Vertex) T { return c.values[v] }

// Set stores x as the value of vertex v.
func (c *Vertex[T]) Set(v topology.Vertex, x T) { c.values[v] = x }

// Len returns the number of values in the column.
func (c *Vertex[T]) Len() int { return len(c.values) }

// Values exposes the backing slice, indexed by vertex.
func (c *Vertex[T]) Values() []T { return c.values }

// Near returns the value of the vertex e leaves from.
func (c *Vertex[T]) Near(e topology.Edge) T { return c.values[c.topo.NearVertex(e)] }

// Far returns the value of the vertex e points at.
func (c *Vertex[T]) Far(e topology.Edge) T { return c.values[c.topo.FarVertex(e)] }

// Edge is a column with one value per half-edge.
type Edge[T any] struct {
	topo   *topology.Topology
	values []T
}

// NewEdge returns a zero-filled half-edge column for topo.
func NewEdge[T any](topo *topology.Topology) (*Edge[T], error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	return &Edge[T]{topo: topo, values: make([]T, topo.EdgeCount())}, nil
}

// Get returns the value of half-edge e.
func (c *Edge[T]) Get(e topology.Edge) T { return c.values[e] }

// Set stores x as the value of half-edge e.
func (c *Edge[T]) Set(e topology.Edge, x T) { c.values[e] = x }

// Len returns the number of values in the column.
func (c *Edge[T]) Len() int { return len(c.values) }

// Values exposes the backing slice, indexed by half-edge.
func (c *Edge[T]) Values() []T { return c.values }

// Twin returns the value stored on the opposite half-edge of e.
func (c *Edge[T]) Twin(e topology.Edge) T { return c.values[c.topo.Twin(e)] }

// Face is a column with one value per face, external faces included.
type Face[T any] struct {
	topo   *topology.Topology
	values []T
}

// NewFace returns a zero-filled face column for topo.
func NewFace[T any](topo *topology.Topology) (*Face[T], error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	return &Face[T]{topo: topo, values: make([]T, topo.FaceCount())}, nil
}

// FaceFrom adopts values as a face column. values may cover only the
// internal faces; the column then holds a copy extended with zero values
// for the external ones, and never writes into values.
func FaceFrom[T any](topo *topology.Topology, values []T) (*Face[T], error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	switch len(values) {
	case topo.FaceCount():
	case topo.InternalFaceCount():
		padded := make([]T, topo.FaceCount())
		copy(padded, values)
		values = padded
	default:
		return nil, fmt.Errorf("%w: %d values for %d faces", ErrSizeMismatch, len(values), topo.FaceCount())
	}
	return &Face[T]{topo: topo, values: values}, nil
}

// Get returns the value of face f.
func (c *Face[T]) Get(f topology.Face) T { return c.values[f] }

// Set stores x as the value of face f.
func (c *Face[T]) Set(f topology.Face, x T) { c.values[f] = x }

// Len returns the number of values in the column.
func (c *Face[T]) Len() int { return len(c.values) }

// Values exposes the backing slice, indexed by face.
func (c *Face[T]) Values() []T { return c.values }

// Near returns the value of the face whose boundary contains e.
func (c *Face[T]) Near(e topology.Edge) T { return c.values[c.topo.NearFace(e)] }

// Far returns the value of the face on the other side of e.
func (c *Face[T]) Far(e topology.Edge) T { return c.values[c.topo.FarFace(e)] }
