package ledwall

import "math"

const degree = math.Pi / 180

// Curve is the solved cylindrical geometry of a tilted cabinet wall. It is
// immutable once produced; both the mesh builder and the summary reporter
// consume the same solve so the two derivations cannot drift.
type Curve struct {
	// Radius of the cylinder the wall lies on, in metres. +Inf for a flat
	// wall.
	Radius float64
	// StartAngle is the arc angle of the leftmost vertex column in radians.
	// The arc is centred on the world X axis, so StartAngle is always
	// -CentralAngle/2.
	StartAngle float64
	// CentralAngle is the total angular sweep of the wall in radians.
	// Zero for a flat wall.
	CentralAngle float64
	// ArcLength is the total physical width of the wall laid flat, in metres.
	ArcLength float64
	// ChordLength is the straight-line distance between the wall's two ends
	// once curved, in metres. Equals ArcLength for a flat wall.
	ChordLength float64
}

// Solve derives the arc geometry of a wall of cabinetsWide cabinets, each
// cabinetWidth metres wide, with tiltAngle degrees between adjacent columns.
//
// The flat branch is taken whenever the central angle comes out zero, not
// only on zero tilt: a single-column wall has no tilt joints, so it
// degenerates to the flat case regardless of tiltAngle. Guarding on the
// angle rather than the tilt is what keeps the radius division total.
func Solve(cabinetsWide int, cabinetWidth, tiltAngle float64) Curve {
	arc := float64(cabinetsWide) * cabinetWidth
	central := tiltAngle * degree * float64(cabinetsWide-1)
	if central == 0 {
		return Curve{
			Radius:      math.Inf(1),
			ArcLength:   arc,
			ChordLength: arc,
		}
	}
	radius := arc / central
	return Curve{
		Radius:       radius,
		StartAngle:   -central / 2,
		CentralAngle: central,
		ArcLength:    arc,
		ChordLength:  2 * radius * math.Sin(central/2),
	}
}

// Flat reports whether the wall degenerates to a plane.
func (c Curve) Flat() bool { return c.CentralAngle == 0 }
