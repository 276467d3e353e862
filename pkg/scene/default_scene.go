package scene

import (
	"github.com/Eldriann/go-raytracer/pkg/core"
	"github.com/Eldriann/go-raytracer/pkg/geometry"
	"github.com/Eldriann/go-raytracer/pkg/lights"
	"github.com/Eldriann/go-raytracer/pkg/material"
)

// NewDefaultScene creates a demo scene with a ground plane, a matte sphere, a
// mirror sphere and two lights. Used when no scene file is given.
func NewDefaultScene() *Scene {
	ground := NewObject(
		geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0)),
		material.New(core.NewVec3(0.6, 0.6, 0.6), 1.0, 0),
	)
	matte := NewObject(
		geometry.NewSphere(core.NewVec3(-1.5, 0, -6), 1.5),
		material.New(core.NewVec3(0.9, 0.2, 0.2), 1.0, 0),
	)
	mirror := NewObject(
		geometry.NewSphere(core.NewVec3(1.8, 0.2, -8), 1.7),
		material.New(core.NewVec3(0.9, 0.9, 0.9), 1.0, 0.8),
	)
	small := NewObject(
		geometry.NewSphere(core.NewVec3(0.5, -1.2, -4), 0.6),
		material.New(core.NewVec3(0.2, 0.4, 0.9), 1.0, 0.2),
	)

	return &Scene{
		Fov:        90,
		Width:      800,
		Height:     600,
		Background: core.NewVec3(0.1, 0.15, 0.3),
		Objects:    []Object{ground, matte, mirror, small},
		Lights: []lights.Light{
			lights.NewPointLight(core.NewVec3(0, 6, -4), core.NewVec3(1, 1, 1), 800),
			lights.NewDirectionalLight(core.NewVec3(-0.5, -1, -0.5), core.NewVec3(1, 0.95, 0.8), 0.8),
		},
	}
}
