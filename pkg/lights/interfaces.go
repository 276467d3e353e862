package lights

import "github.com/Eldriann/go-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light interface for sources that contribute direct lighting to a surface point
type Light interface {
	Type() LightType

	// Direction returns the unit vector from the shading point toward the light
	Direction(point core.Vec3) core.Vec3

	// Distance returns the distance from the shading point to the light.
	// Used as the upper bound for shadow occlusion queries; directional
	// lights return +Inf.
	Distance(point core.Vec3) float64

	// Radiance returns the light color scaled by its intensity as received
	// at the shading point
	Radiance(point core.Vec3) core.Vec3
}
