package scene

import (
	"math"
	"testing"

	"github.com/Eldriann/go-raytracer/pkg/core"
	"github.com/Eldriann/go-raytracer/pkg/geometry"
	"github.com/Eldriann/go-raytracer/pkg/material"
)

func testMaterial(r, g, b float64) material.Material {
	return material.New(core.NewVec3(r, g, b), 1.0, 0)
}

func TestScene_FindNearest(t *testing.T) {
	near := NewObject(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), testMaterial(1, 0, 0))
	far := NewObject(geometry.NewSphere(core.NewVec3(0, 0, -10), 1), testMaterial(0, 1, 0))
	s := &Scene{Objects: []Object{far, near}}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	obj, hit, ok := s.FindNearest(ray, core.ShadowBias, math.MaxFloat64)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if obj.Material.Color != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected the near sphere, got material color %v", obj.Material.Color)
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected hit at t=4, got %v", hit.T)
	}
}

func TestScene_FindNearest_TieBreaksFirstObject(t *testing.T) {
	// Two identical spheres, exactly equidistant from the ray origin
	first := NewObject(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), testMaterial(1, 0, 0))
	second := NewObject(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), testMaterial(0, 0, 1))
	s := &Scene{Objects: []Object{first, second}}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// The winner must be the first object in the list, every time
	for i := 0; i < 10; i++ {
		obj, _, ok := s.FindNearest(ray, core.ShadowBias, math.MaxFloat64)
		if !ok {
			t.Fatal("Expected a hit")
		}
		if obj.Material.Color != core.NewVec3(1, 0, 0) {
			t.Fatalf("Tie broken to the wrong object on iteration %d", i)
		}
	}
}

func TestScene_FindNearest_EmptyScene(t *testing.T) {
	s := &Scene{}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, _, ok := s.FindNearest(ray, core.ShadowBias, math.MaxFloat64); ok {
		t.Error("Empty scene should never report a hit")
	}
}

func TestScene_FindNearest_RespectsTMax(t *testing.T) {
	sphere := NewObject(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), testMaterial(1, 1, 1))
	s := &Scene{Objects: []Object{sphere}}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Shadow-style query capped before the sphere: no occlusion
	if _, _, ok := s.FindNearest(ray, core.ShadowBias, 3); ok {
		t.Error("Hit beyond tMax should be ignored")
	}
}

func TestScene_Validate(t *testing.T) {
	tests := []struct {
		name      string
		scene     Scene
		expectErr bool
	}{
		{"valid scene", Scene{Fov: 90, Width: 800, Height: 600}, false},
		{"zero fov", Scene{Fov: 0, Width: 800, Height: 600}, true},
		{"fov too wide", Scene{Fov: 180, Width: 800, Height: 600}, true},
		{"NaN fov", Scene{Fov: math.NaN(), Width: 800, Height: 600}, true},
		{"infinite fov", Scene{Fov: math.Inf(1), Width: 800, Height: 600}, true},
		{"zero width", Scene{Fov: 90, Width: 0, Height: 600}, true},
		{"negative height", Scene{Fov: 90, Width: 800, Height: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scene.Validate()
			if tt.expectErr && err == nil {
				t.Error("Expected a validation error, got none")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default scene failed validation: %v", err)
	}
	if len(s.Objects) == 0 || len(s.Lights) == 0 {
		t.Error("Default scene should contain objects and lights")
	}
}
