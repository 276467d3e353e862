package renderer

import (
	"image/color"
	"math"
	"testing"

	"github.com/Eldriann/go-raytracer/pkg/core"
)

func TestFramebuffer_SetPixelClampsAndSanitizes(t *testing.T) {
	fb := NewFramebuffer(4, 4)

	fb.SetPixel(0, 0, core.NewVec3(2, -1, 0.5))
	if got := fb.At(0, 0); got != core.NewVec3(1, 0, 0.5) {
		t.Errorf("Expected clamped (1,0,0.5), got %v", got)
	}

	fb.SetPixel(1, 0, core.NewVec3(math.NaN(), 0.5, 0.5))
	if got := fb.At(1, 0); got != (core.Vec3{}) {
		t.Errorf("NaN pixel should collapse to black, got %v", got)
	}

	fb.SetPixel(2, 0, core.NewVec3(math.Inf(1), 0, 0))
	if got := fb.At(2, 0); got != (core.Vec3{}) {
		t.Errorf("Inf pixel should collapse to black, got %v", got)
	}
}

func TestFramebuffer_ToImage(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(0, 0, core.NewVec3(1, 0, 0))
	fb.SetPixel(1, 1, core.NewVec3(0, 0, 1))

	img := fb.ToImage()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("Unexpected image bounds %v", img.Bounds())
	}

	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Expected pure red at (0,0), got %v", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("Expected pure blue at (1,1), got %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("Expected opaque black at (1,0), got %v", got)
	}
}

func TestFramebuffer_Equal(t *testing.T) {
	a := NewFramebuffer(3, 2)
	b := NewFramebuffer(3, 2)
	if !a.Equal(b) {
		t.Error("Fresh identical framebuffers should be equal")
	}

	b.SetPixel(2, 1, core.NewVec3(0.5, 0.5, 0.5))
	if a.Equal(b) {
		t.Error("Framebuffers with different pixels should not be equal")
	}

	c := NewFramebuffer(2, 3)
	if a.Equal(c) {
		t.Error("Framebuffers with different dimensions should not be equal")
	}
}
