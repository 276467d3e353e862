package material

import (
	"math"
	"testing"

	"github.com/Eldriann/go-raytracer/pkg/core"
)

func TestMaterial_DiffuseFactor(t *testing.T) {
	m := New(core.NewVec3(1, 1, 1), 1.0, 0)
	if math.Abs(m.DiffuseFactor()-1.0/math.Pi) > 1e-12 {
		t.Errorf("Expected 1/π, got %v", m.DiffuseFactor())
	}

	half := New(core.NewVec3(1, 1, 1), 0.5, 0)
	if math.Abs(half.DiffuseFactor()-0.5/math.Pi) > 1e-12 {
		t.Errorf("Expected 0.5/π, got %v", half.DiffuseFactor())
	}
}
