package palette

import (
	"fmt"
	"image"
	"slices"

	"github.com/cenkalti/dominantcolor"
)

// DominantExtractor ranks colors by how much of the image they cover and
// keeps the heaviest ones.
type DominantExtractor struct{}

// NewDominantExtractor creates a new DominantExtractor.
func NewDominantExtractor() *DominantExtractor {
	return &DominantExtractor{}
}

// Extract returns up to 2^iterations colors, heaviest first, emitted opaque.
func (e *DominantExtractor) Extract(img image.Image, iterations int) ([]Color, error) {
	k := 1 << iterations

	candidates := dominantcolor.FindWeight(img, k)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no dominant colors found in image")
	}

	slices.SortStableFunc(candidates, func(a, b dominantcolor.Color) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return 0
		}
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	colors := make([]Color, 0, len(candidates))
	for _, c := range candidates {
		colors = append(colors, Color{R: c.RGBA.R, G: c.RGBA.G, B: c.RGBA.B, A: 255})
	}
	return colors, nil
}
