package renderer

import (
	"fmt"
	"math"

	"github.com/Eldriann/go-raytracer/pkg/core"
)

// Camera generates primary rays for rendering. It sits at the origin looking
// down -Z; there is no transform hierarchy.
type Camera struct {
	width, height int
	aspectRatio   float64
	fovAdjustment float64 // tan(fov/2), precomputed
}

// NewCamera creates a camera for the given field of view (vertical, degrees)
// and image dimensions
func NewCamera(fov float64, width, height int) (*Camera, error) {
	if math.IsNaN(fov) || math.IsInf(fov, 0) || fov <= 0 || fov >= 180 {
		return nil, fmt.Errorf("camera fov must be in (0, 180) degrees, got %v", fov)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", width, height)
	}

	return &Camera{
		width:         width,
		height:        height,
		aspectRatio:   float64(width) / float64(height),
		fovAdjustment: math.Tan(fov * math.Pi / 180.0 / 2.0),
	}, nil
}

// GetRay generates the primary ray through the center of pixel (px, py).
// Pixel (0,0) is the top-left corner of the image.
func (c *Camera) GetRay(px, py int) core.Ray {
	x := ((float64(px)+0.5)/float64(c.width)*2.0 - 1.0) * c.aspectRatio * c.fovAdjustment
	y := (1.0 - (float64(py)+0.5)/float64(c.height)*2.0) * c.fovAdjustment

	return core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(x, y, -1).Normalize())
}
