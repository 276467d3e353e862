package scene

import (
	"fmt"
	"math"

	"github.com/Eldriann/go-raytracer/pkg/core"
	"github.com/Eldriann/go-raytracer/pkg/geometry"
	"github.com/Eldriann/go-raytracer/pkg/lights"
	"github.com/Eldriann/go-raytracer/pkg/material"
)

// Object pairs a shape with the material covering it
type Object struct {
	Shape    geometry.Shape
	Material material.Material
}

// NewObject creates a new scene object
func NewObject(shape geometry.Shape, mat material.Material) Object {
	return Object{Shape: shape, Material: mat}
}

// Scene contains all the elements needed for rendering. It is immutable once
// built, so render workers share it without locking.
type Scene struct {
	Fov        float64 // Vertical field of view in degrees, in (0, 180)
	Width      int     // Image width in pixels
	Height     int     // Image height in pixels
	Background core.Vec3
	Objects    []Object
	Lights     []lights.Light
}

// GetBackground returns the color for rays that hit nothing
func (s *Scene) GetBackground() core.Vec3 {
	return s.Background
}

// GetLights returns the lights in the scene
func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}

// FindNearest returns the closest object hit by the ray within (tMin, tMax].
// When two objects are exactly equidistant the one appearing first in the
// object list wins, so renders are reproducible. Hits with a non-finite
// distance are discarded.
func (s *Scene) FindNearest(ray core.Ray, tMin, tMax float64) (*Object, *geometry.HitRecord, bool) {
	var nearestObject *Object
	var nearestHit *geometry.HitRecord
	closestSoFar := tMax

	for i := range s.Objects {
		hit, ok := s.Objects[i].Shape.Hit(ray, tMin, closestSoFar)
		if !ok || math.IsNaN(hit.T) || math.IsInf(hit.T, 0) {
			continue
		}
		// Strict comparison keeps the first of two equidistant objects
		if nearestHit == nil || hit.T < nearestHit.T {
			nearestObject = &s.Objects[i]
			nearestHit = hit
			closestSoFar = hit.T
		}
	}

	return nearestObject, nearestHit, nearestHit != nil
}

// Validate rejects scenes the renderer cannot produce a defined image for
func (s *Scene) Validate() error {
	if math.IsNaN(s.Fov) || math.IsInf(s.Fov, 0) || s.Fov <= 0 || s.Fov >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180) degrees, got %v", s.Fov)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	return nil
}
