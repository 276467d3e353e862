package core

import (
	"math"
	"testing"
)

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		incident Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "45 degree bounce off ground plane",
			incident: NewVec3(1, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0),
		},
		{
			name:     "head-on reversal",
			incident: NewVec3(0, 0, -1),
			normal:   NewVec3(0, 0, 1),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "grazing along surface is unchanged",
			incident: NewVec3(1, 0, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.incident.Reflect(tt.normal)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Zero vector should normalize to zero, got %v", zero)
	}
	if !zero.IsFinite() {
		t.Errorf("Normalizing zero vector produced non-finite result: %v", zero)
	}
}

func TestVec3_Cross(t *testing.T) {
	result := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0))
	expected := NewVec3(0, 0, 1)
	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestVec3_Clamp(t *testing.T) {
	result := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)
	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Finite vector reported as non-finite")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN vector reported as finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Inf vector reported as finite")
	}
}
