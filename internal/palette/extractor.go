package palette

import (
	"fmt"
	"image"
)

// Extractor is implemented by all palette extraction backends.
type Extractor interface {
	// Extract produces an ordered color palette from an image. iterations is
	// the median cut split depth; backends that think in color counts derive
	// theirs as 2^iterations.
	Extract(img image.Image, iterations int) ([]Color, error)
}

// Algorithm identifies a palette extraction backend.
type Algorithm string

const (
	// AlgorithmMedianCut recursively splits the color space at channel
	// medians. Deterministic; the default.
	AlgorithmMedianCut Algorithm = "mediancut"

	// AlgorithmKMeans clusters sampled pixels with k-means.
	AlgorithmKMeans Algorithm = "kmeans"

	// AlgorithmDominant keeps the most dominant colors by pixel weight.
	AlgorithmDominant Algorithm = "dominant"
)

// ValidAlgorithms returns the recognized algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmMedianCut,
		AlgorithmKMeans,
		AlgorithmDominant,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// NewExtractor creates a new Extractor for the specified algorithm. Returns
// an error if the algorithm is not recognized.
func NewExtractor(alg Algorithm) (Extractor, error) {
	switch alg {
	case AlgorithmMedianCut:
		return NewMedianCutExtractor(), nil
	case AlgorithmKMeans:
		return NewKMeansExtractor(), nil
	case AlgorithmDominant:
		return NewDominantExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}
