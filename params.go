// Package ledwall computes the surface geometry of segmented LED video walls.
//
// A wall is a rectangular grid of identical cabinets. Adjacent cabinet
// columns are tilted against each other by a fixed angle so the wall follows
// a circular arc, or stands flat when the tilt is zero. The package solves
// the arc/chord/radius relationship for a parameter set; the render package
// turns the solved curve into a textured, normal-mapped quad mesh.
package ledwall

import (
	"errors"
	"fmt"
	"math"
)

// MetresPerMillimetre converts cabinet dimensions, which installers quote in
// millimetres, to the metres used by the generated mesh.
const MetresPerMillimetre = 0.001

// ErrInvalidParams reports a parameter set that fails numeric validation.
// Wrapped errors name the offending field.
var ErrInvalidParams = errors.New("invalid wall parameters")

// Params describes a cabinet wall. All dimensional fields must be strictly
// positive and cabinet counts at least 1; the tilt angle is unrestricted and
// may be zero or negative. Call Validate before handing Params to the
// geometry routines, which assume well-formed input.
type Params struct {
	// CabinetsWide and CabinetsHigh are the cabinet grid dimensions.
	CabinetsWide int
	CabinetsHigh int
	// TiltAngle is the angle between adjacent cabinet columns in degrees.
	// Zero yields a flat wall; negative values curve the other way.
	TiltAngle float64
	// CabinetWidth and CabinetHeight are the physical size of one cabinet
	// in millimetres.
	CabinetWidth  float64
	CabinetHeight float64
	// TileWidth and TileHeight are the pixel resolution of one cabinet.
	// Only the addressing test pattern consumes them.
	TileWidth  int
	TileHeight int
}

// Validate checks the positivity constraints on p. It returns an error
// wrapping ErrInvalidParams naming the first field that fails.
func (p Params) Validate() error {
	switch {
	case p.CabinetsWide < 1:
		return fmt.Errorf("%w: cabinets wide is %d, need at least 1", ErrInvalidParams, p.CabinetsWide)
	case p.CabinetsHigh < 1:
		return fmt.Errorf("%w: cabinets high is %d, need at least 1", ErrInvalidParams, p.CabinetsHigh)
	case !(p.CabinetWidth > 0):
		return fmt.Errorf("%w: cabinet width is %gmm, must be positive", ErrInvalidParams, p.CabinetWidth)
	case !(p.CabinetHeight > 0):
		return fmt.Errorf("%w: cabinet height is %gmm, must be positive", ErrInvalidParams, p.CabinetHeight)
	case p.TileWidth < 1:
		return fmt.Errorf("%w: tile width is %dpx, must be positive", ErrInvalidParams, p.TileWidth)
	case p.TileHeight < 1:
		return fmt.Errorf("%w: tile height is %dpx, must be positive", ErrInvalidParams, p.TileHeight)
	case math.IsNaN(p.TiltAngle):
		return fmt.Errorf("%w: tilt angle is NaN", ErrInvalidParams)
	}
	return nil
}

// CabinetWidthMetres returns the cabinet width in metres.
func (p Params) CabinetWidthMetres() float64 { return p.CabinetWidth * MetresPerMillimetre }

// CabinetHeightMetres returns the cabinet height in metres.
func (p Params) CabinetHeightMetres() float64 { return p.CabinetHeight * MetresPerMillimetre }

// Curve solves the wall's arc geometry. Shorthand for Solve with p's fields.
func (p Params) Curve() Curve {
	return Solve(p.CabinetsWide, p.CabinetWidthMetres(), p.TiltAngle)
}
