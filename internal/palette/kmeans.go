package palette

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// KMeansExtractor clusters sampled pixels with k-means and returns the
// cluster centers as the palette, largest cluster first. Centroid
// initialization is random, so repeated runs may produce different palettes.
type KMeansExtractor struct {
	maxSamples int
}

// NewKMeansExtractor creates a KMeansExtractor with the default sampling
// limit.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		// Keeps clustering tractable on large images.
		maxSamples: 12000,
	}
}

// Extract clusters the image into at most 2^iterations colors. Fully
// transparent pixels are excluded from clustering and every palette entry is
// emitted opaque.
func (e *KMeansExtractor) Extract(img image.Image, iterations int) ([]Color, error) {
	dataset := e.sample(img)
	if len(dataset) == 0 {
		return nil, fmt.Errorf("no opaque pixels found in image")
	}

	k := 1 << iterations
	if k > len(dataset) {
		k = len(dataset)
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil {
		return nil, fmt.Errorf("failed to cluster pixels: %w", err)
	}

	// Largest cluster first so dominant tones lead the palette.
	slices.SortStableFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	colors := make([]Color, 0, len(cc))
	for _, c := range cc {
		center := c.Center
		if len(center) < 3 {
			continue
		}
		col := colorful.Color{R: center[0], G: center[1], B: center[2]}.Clamped()
		r, g, b := col.RGB255()
		colors = append(colors, Color{R: r, G: g, B: b, A: 255})
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("clustering produced no colors")
	}
	return colors, nil
}

// sample collects pixel observations, thinning large images on a grid so the
// dataset stays below the sampling limit.
func (e *KMeansExtractor) sample(img image.Image) clusters.Observations {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	step := 1
	if width*height > e.maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(e.maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, e.maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r) / 65535.0,
				float64(g) / 65535.0,
				float64(b) / 65535.0,
			})
		}
	}
	return dataset
}
