package material

import (
	"math"

	"github.com/Eldriann/go-raytracer/pkg/core"
)

// Material describes how a surface responds to light.
type Material struct {
	Color        core.Vec3 // Diffuse color, components in [0,1]
	Albedo       float64   // Fraction of incoming light scattered diffusely
	Reflectivity float64   // Mirror contribution in [0,1]; 0 means fully diffuse
}

// New creates a new material
func New(color core.Vec3, albedo, reflectivity float64) Material {
	return Material{Color: color, Albedo: albedo, Reflectivity: reflectivity}
}

// DiffuseFactor returns the lambertian scattering factor albedo/π
func (m Material) DiffuseFactor() float64 {
	return m.Albedo / math.Pi
}
