package lens

import (
	"math"

	"github.com/ntessore/lensgrid/qtree"
)

// Transform maps an image-plane position to the source plane. Transforms
// are pure functions; they may return non-finite coordinates for degenerate
// input and callers are expected to filter those before use.
type Transform func(p qtree.Point) qtree.Point

// Identity returns p unchanged.
func Identity(p qtree.Point) qtree.Point {
	return p
}

// SIE is a singular isothermal ellipsoid lens.
type SIE struct {
	X, Y float64 // center
	B    float64 // scale radius
	PA   float64 // position angle in degrees
	Q    float64 // axis ratio, 0 < Q < 1
}

// Deflect shoots the ray at p through the lens and returns where it lands
// in the source plane. The deflection is singular at the lens center, where
// the elliptical radius vanishes and the result is non-finite.
func (l SIE) Deflect(p qtree.Point) qtree.Point {
	c := math.Cos(l.PA * math.Pi / 180)
	s := math.Sin(l.PA * math.Pi / 180)

	// in central and rotated coordinate system
	x := (p.X-l.X)*c - (p.Y-l.Y)*s
	y := (p.X-l.X)*s + (p.Y-l.Y)*c

	// elliptical radius
	r := math.Sqrt(l.Q*l.Q*x*x + y*y)

	// deflection angle
	e := math.Sqrt(1 - l.Q*l.Q)
	ax := l.B * math.Sqrt(l.Q) / e * math.Atan(x*e/r)
	ay := l.B * math.Sqrt(l.Q) / e * math.Atanh(y*e/r)

	return qtree.Point{
		X: p.X - (ax*c + ay*s),
		Y: p.Y - (ay*c - ax*s),
	}
}
