package lights

import (
	"math"

	"github.com/Eldriann/go-raytracer/pkg/core"
)

// DirectionalLight emits parallel light in a fixed direction, like the sun.
// It has no position, no falloff, and infinite shadow distance.
type DirectionalLight struct {
	Dir       core.Vec3 // Direction the light travels, normalized
	Color     core.Vec3
	Intensity float64
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction, color core.Vec3, intensity float64) *DirectionalLight {
	return &DirectionalLight{Dir: direction.Normalize(), Color: color, Intensity: intensity}
}

func (l *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Direction returns the unit vector from the shading point toward the light
func (l *DirectionalLight) Direction(point core.Vec3) core.Vec3 {
	return l.Dir.Negate()
}

// Distance returns +Inf: nothing is ever beyond a directional light
func (l *DirectionalLight) Distance(point core.Vec3) float64 {
	return math.Inf(1)
}

// Radiance returns the received light color at the shading point
func (l *DirectionalLight) Radiance(point core.Vec3) core.Vec3 {
	return l.Color.Multiply(l.Intensity)
}
