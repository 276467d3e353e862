package core

// ShadowBias is the minimum distance along a ray at which an intersection
// counts. Secondary rays start this far off the surface along the normal so a
// surface never shadows or reflects itself through floating point rounding.
const ShadowBias = 1e-9

// Ray represents a ray with an origin and direction.
// Callers are expected to pass unit-length directions.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
