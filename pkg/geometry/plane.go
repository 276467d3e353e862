package geometry

import (
	"math"

	"github.com/Eldriann/go-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Normal vector (unit length)
}

// NewPlane creates a new plane. The normal is normalized; a zero normal stays
// zero, which makes the plane unhittable.
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize()}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane, or degenerate zero normal
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hit := &HitRecord{
		T:     t,
		Point: ray.At(t),
	}
	hit.SetFaceNormal(ray, p.Normal)

	return hit, true
}
