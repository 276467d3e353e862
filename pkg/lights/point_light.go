package lights

import (
	"math"

	"github.com/Eldriann/go-raytracer/pkg/core"
)

// PointLight emits light from a position equally in all directions.
// Received radiance falls off with the inverse square of the distance,
// normalized over the sphere: intensity / (4π·d²).
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, intensity float64) *PointLight {
	return &PointLight{Position: position, Color: color, Intensity: intensity}
}

func (l *PointLight) Type() LightType {
	return LightTypePoint
}

// Direction returns the unit vector from the shading point toward the light
func (l *PointLight) Direction(point core.Vec3) core.Vec3 {
	return l.Position.Subtract(point).Normalize()
}

// Distance returns the distance from the shading point to the light
func (l *PointLight) Distance(point core.Vec3) float64 {
	return l.Position.Subtract(point).Length()
}

// Radiance returns the received light color at the shading point
func (l *PointLight) Radiance(point core.Vec3) core.Vec3 {
	distanceSq := l.Position.Subtract(point).LengthSquared()
	if distanceSq == 0 {
		return core.Vec3{}
	}
	return l.Color.Multiply(l.Intensity / (4 * math.Pi * distanceSq))
}
