package integrator

import (
	"math"

	"github.com/Eldriann/go-raytracer/pkg/core"
	"github.com/Eldriann/go-raytracer/pkg/geometry"
	"github.com/Eldriann/go-raytracer/pkg/lights"
	"github.com/Eldriann/go-raytracer/pkg/material"
	"github.com/Eldriann/go-raytracer/pkg/scene"
)

// World is the view of a scene the integrator needs. scene.Scene implements
// it; tests substitute instrumented implementations.
type World interface {
	FindNearest(ray core.Ray, tMin, tMax float64) (*scene.Object, *geometry.HitRecord, bool)
	GetBackground() core.Vec3
	GetLights() []lights.Light
}

// Whitted computes pixel colors by recursive ray tracing: direct diffuse
// lighting with shadow tests, plus a mirrored contribution for reflective
// materials up to a fixed depth.
type Whitted struct {
	MaxDepth int     // Reflection recursion ceiling
	Epsilon  float64 // Self-intersection bias, see core.ShadowBias
}

// NewWhitted creates a Whitted integrator with the given recursion ceiling
func NewWhitted(maxDepth int) *Whitted {
	return &Whitted{
		MaxDepth: maxDepth,
		Epsilon:  core.ShadowBias,
	}
}

// RayColor returns the color seen along the ray. Rays that hit nothing return
// the world background unmodified. Recursion terminates because depth strictly
// increases toward MaxDepth.
func (w *Whitted) RayColor(ray core.Ray, world World, depth int) core.Vec3 {
	obj, hit, ok := world.FindNearest(ray, w.Epsilon, math.MaxFloat64)
	if !ok {
		return world.GetBackground()
	}

	base := w.directLighting(world, obj.Material, hit)

	reflectivity := obj.Material.Reflectivity
	if reflectivity > 0 && depth < w.MaxDepth {
		reflected := core.NewRay(
			hit.Point.Add(hit.Normal.Multiply(w.Epsilon)),
			ray.Direction.Reflect(hit.Normal),
		)
		reflectedColor := w.RayColor(reflected, world, depth+1)
		return base.Multiply(1 - reflectivity).
			Add(reflectedColor.Multiply(reflectivity)).
			Clamp(0, 1)
	}

	return base
}

// directLighting sums the shadowed diffuse contribution of every light at the
// hit point, clamped to [0,1] per channel.
func (w *Whitted) directLighting(world World, mat material.Material, hit *geometry.HitRecord) core.Vec3 {
	var total core.Vec3
	diffuseFactor := mat.DiffuseFactor()

	for _, light := range world.GetLights() {
		lightDir := light.Direction(hit.Point)

		// Back-facing lights contribute nothing
		cosine := hit.Normal.Dot(lightDir)
		if cosine <= 0 {
			continue
		}

		// Occluders past the light do not cast a shadow, so the query is
		// bounded by the light distance
		shadowRay := core.NewRay(hit.Point.Add(hit.Normal.Multiply(w.Epsilon)), lightDir)
		if _, _, occluded := world.FindNearest(shadowRay, w.Epsilon, light.Distance(hit.Point)); occluded {
			continue
		}

		contribution := mat.Color.
			MultiplyVec(light.Radiance(hit.Point)).
			Multiply(cosine * diffuseFactor)
		total = total.Add(contribution)
	}

	if !total.IsFinite() {
		return core.Vec3{}
	}
	return total.Clamp(0, 1)
}
