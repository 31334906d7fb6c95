package palette

import (
	"fmt"
	"image"
	"image/color"
)

// MedianCutExtractor produces palettes with the median cut algorithm. It is
// fully deterministic: the same image and iteration count always yield the
// same palette in the same order.
type MedianCutExtractor struct{}

// NewMedianCutExtractor creates a new MedianCutExtractor.
func NewMedianCutExtractor() *MedianCutExtractor {
	return &MedianCutExtractor{}
}

// Extract flattens img to RGBA samples and reduces them to at most
// 2^iterations colors.
func (e *MedianCutExtractor) Extract(img image.Image, iterations int) ([]Color, error) {
	bucket := FromPixels(Pixels(img))
	if bucket == nil {
		return nil, fmt.Errorf("no pixels found in image")
	}
	return bucket.MakePalette(iterations), nil
}

// Pixels flattens an image to straight-alpha RGBA samples in row-major order,
// top to bottom and left to right within each row.
func Pixels(img image.Image) []Color {
	bounds := img.Bounds()
	pixels := make([]Color, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pixels = append(pixels, Color{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return pixels
}
