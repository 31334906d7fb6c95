package image

import (
	"image"

	"github.com/disintegration/imaging"
)

// Downscale resizes img to fit within maxDimension on both axes, preserving
// the aspect ratio. Images already within bounds are returned untouched, as
// is any call with maxDimension <= 0. Resampling blends pixel values, so a
// palette extracted from a downscaled image differs from the full-resolution
// one.
func Downscale(img image.Image, maxDimension int) image.Image {
	if maxDimension <= 0 {
		return img
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxDimension && bounds.Dy() <= maxDimension {
		return img
	}

	return imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
}
