package output

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// SaveImage writes the rendered image to disk. The encoding is picked from
// the file extension (.png, .jpg, .bmp, .tif, .gif).
func SaveImage(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image to %s: %w", path, err)
	}
	return nil
}

// SavePreview writes a downscaled copy of the image, width pixels wide with
// the aspect ratio preserved. Useful for eyeballing a large render quickly.
func SavePreview(img image.Image, path string, width int) error {
	if width <= 0 {
		return fmt.Errorf("preview width must be positive, got %d", width)
	}

	preview := resize.Resize(uint(width), 0, img, resize.Bilinear)
	if err := imaging.Save(preview, path); err != nil {
		return fmt.Errorf("failed to save preview to %s: %w", path, err)
	}
	return nil
}
