package topology

import (
	"errors"

	"github.com/katalvlaran/tessel/edgewrap"
)

// Sentinel errors for topology operations.
var (
	// ErrInvalidTopology indicates that the arrays of a store are combinatorially
	// inconsistent (a broken twin, an open cycle, a count mismatch).
	ErrInvalidTopology = errors.New("topology: invalid topology")

	// ErrInvalidArgument indicates that an edit operator was called outside its
	// legal domain; the store is left untouched.
	ErrInvalidArgument = errors.New("topology: invalid argument")
)

// MinNeighborCount is the smallest neighbor count a vertex or an internal
// face may be left with by an edit.
const MinNeighborCount = 2

// Vertex is the index of a vertex.
type Vertex int

// Edge is the index of a half-edge.
type Edge int

// Face is the index of a face.
type Face int

// Sentinel handles for "no element".
const (
	NoVertex Vertex = -1
	NoEdge   Edge   = -1
	NoFace   Face   = -1
)

// Index returns the array index of v.
func (v Vertex) Index() int { return int(v) }

// Index returns the array index of e.
func (e Edge) Index() int { return int(e) }

// Index returns the array index of f.
func (f Face) Index() int { return int(f) }

// EdgeRecord is the raw relation record of one half-edge.
type EdgeRecord struct {
	Vertex int // far vertex
	Face   int // far face
	Twin   int // oppositely directed half-edge
	VNext  int // next outgoing half-edge around the source vertex
	FNext  int // next half-edge around the near face
}

// Data is the raw array form of a store. Slices are indexed by vertex, edge
// and face index respectively. Wraps is nil when wrap tracking is disabled.
type Data struct {
	VertexNeighborCounts []int
	VertexFirstEdges     []int
	Edges                []EdgeRecord
	FaceNeighborCounts   []int
	FaceFirstEdges       []int
	FirstExternalFace    int
	Wraps                []edgewrap.EdgeWrap
}

// Topology is the half-edge store. The zero value is an empty store.
type Topology struct {
	vertexNeighborCounts []int
	vertexFirstEdges     []int
	edges                []EdgeRecord
	faceNeighborCounts   []int
	faceFirstEdges       []int
	firstExternalFace    int
	wraps                []edgewrap.EdgeWrap
}
