package attr

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/tessel/edgewrap"
)

// Sentinel errors for attribute containers.
var (
	// ErrNilTopology is returned when a column is requested for a nil store.
	ErrNilTopology = errors.New("attr: topology is nil")

	// ErrSizeMismatch is returned when supplied values do not match the
	// number of elements they are meant to annotate.
	ErrSizeMismatch = errors.New("attr: value count does not match element count")
)

// Surface is a periodic plane: one translation per wrap axis. An open axis
// has a zero vector.
type Surface struct {
	Axis0 mgl64.Vec3
	Axis1 mgl64.Vec3
}

// Offset turns a generic wrap into the translation it stands for.
func (s Surface) Offset(g edgewrap.Wrap) mgl64.Vec3 {
	return s.Axis0.Mul(float64(g.Axis0())).Add(s.Axis1.Mul(float64(g.Axis1())))
}

// Nearest returns the image of to, shifted by whole periods, that lies
// closest to from.
func (s Surface) Nearest(from, to mgl64.Vec3) mgl64.Vec3 {
	best, bestLen := to, to.Sub(from).LenSqr()
	for _, k0 := range [3]float64{-1, 0, 1} {
		for _, k1 := range [3]float64{-1, 0, 1} {
			c := to.Add(s.Axis0.Mul(k0)).Add(s.Axis1.Mul(k1))
			if l := c.Sub(from).LenSqr(); l < bestLen {
				best, bestLen = c, l
			}
		}
	}
	return best
}
