// SPDX-License-Identifier: MIT
// Package: tessel/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w, prefixed by the method name.
//   - Build and the shape constructors never panic; option constructors do.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tessel/topology"
)

// ErrInvalidTopology is topology.ErrInvalidTopology, re-exported so callers of
// Build need not import the store package to classify failures.
// Typical origins: a directed edge used twice, a non-manifold vertex, an
// external boundary walk that does not close, declared counts that disagree
// with what was built.
var ErrInvalidTopology = topology.ErrInvalidTopology

// ErrTooFewFaces indicates an indexer (or shape) with no internal face.
var ErrTooFewFaces = errors.New("builder: too few faces")

// ErrBadSize indicates invalid sizes: a face with fewer than three
// neighbors, a non-positive grid dimension, a wrapped axis too short to
// wrap, or a subdivision level out of range.
var ErrBadSize = errors.New("builder: invalid size")

// ErrIndexOutOfRange indicates a neighbor vertex index outside [0, VertexCount).
var ErrIndexOutOfRange = errors.New("builder: vertex index out of range")

// ErrUnknownSolid indicates a PlatonicName outside the five known solids.
var ErrUnknownSolid = errors.New("builder: unknown platonic solid")

// ErrOptionViolation indicates an option value that can only be rejected at
// resolution time (e.g. a nil indexer handed to Build).
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf prefixes a wrapped sentinel with the method name:
// "<method>: <message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
