package renderer

import "image"

// NewTileGrid partitions a width×height image into tiles of at most
// tileSize×tileSize pixels. Tiles never overlap and cover every pixel, so
// workers can write their tile regions without synchronization.
func NewTileGrid(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(
				x, y,
				min(x+tileSize, width),
				min(y+tileSize, height),
			))
		}
	}
	return tiles
}
