package renderer

import (
	"image"
	"image/color"

	"github.com/Eldriann/go-raytracer/pkg/core"
)

// Framebuffer is a row-major grid of RGB colors, one per pixel. Workers write
// disjoint tile regions, so no locking is needed.
type Framebuffer struct {
	Width, Height int
	pixels        []core.Vec3
}

// NewFramebuffer creates a black framebuffer of the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// SetPixel stores a color at (x, y). Non-finite colors collapse to black and
// components are clamped to [0,1], so a bad sample can never corrupt the image.
func (f *Framebuffer) SetPixel(x, y int, c core.Vec3) {
	if !c.IsFinite() {
		c = core.Vec3{}
	}
	f.pixels[y*f.Width+x] = c.Clamp(0, 1)
}

// At returns the color stored at (x, y)
func (f *Framebuffer) At(x, y int) core.Vec3 {
	return f.pixels[y*f.Width+x]
}

// Equal reports whether two framebuffers hold bit-identical pixels
func (f *Framebuffer) Equal(other *Framebuffer) bool {
	if f.Width != other.Width || f.Height != other.Height {
		return false
	}
	for i := range f.pixels {
		if f.pixels[i] != other.pixels[i] {
			return false
		}
	}
	return true
}

// ToImage converts the framebuffer to an 8-bit RGBA image
func (f *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			img.Set(x, y, color.RGBA{
				R: uint8(c.X * 255.0),
				G: uint8(c.Y * 255.0),
				B: uint8(c.Z * 255.0),
				A: 255,
			})
		}
	}
	return img
}
