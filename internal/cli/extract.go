package cli

import (
	"fmt"
	"time"

	"github.com/Kaesebrot84/iris/internal/export"
	"github.com/Kaesebrot84/iris/internal/image"
	"github.com/Kaesebrot84/iris/internal/palette"
	"github.com/spf13/cobra"
)

// The palette grows as 2^iterations, so the split depth is kept between these
// bounds. Out-of-range values are clamped with a warning, not rejected.
const (
	minIterations = 1
	maxIterations = 4
)

var (
	// Extract command flags
	extractIterations   int
	extractAlgorithm    string
	extractFormat       string
	extractOutput       string
	extractMaxDimension int
	extractShowPreview  bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a color palette from an image",
	Long: `Extract a color palette from an image using median cut quantization.

Each iteration doubles the number of palette candidates: one iteration
yields up to 2 colors, four iterations up to 16. Iteration counts
outside 1-4 are clamped. The palette is printed one color per line and
can additionally be exported to an HTML, JSON or CSV file.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Print up to two colors extracted from an image
  iris extract wallpaper.jpg

  # A sixteen color palette with terminal swatches
  iris extract --preview -i 4 wallpaper.png

  # Export the palette to palette.json
  iris extract -i 3 -f json wallpaper.jpg

  # Export to colors.csv, downscaling large images first
  iris extract -f csv -o colors --max-dimension 400 wallpaper.jpg

  # Cluster with k-means instead of median cut
  iris extract -a kmeans wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	// Define flags for the extract command
	extractCmd.Flags().IntVarP(&extractIterations, "iterations", "i", 1, "number of median cut iterations (1-4)")
	extractCmd.Flags().StringVarP(&extractAlgorithm, "algorithm", "a", string(palette.AlgorithmMedianCut), "extraction algorithm (mediancut, kmeans, dominant)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", string(export.FormatNone), "export format (none, html, json, csv)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "palette", "export file name, without extension")
	extractCmd.Flags().IntVar(&extractMaxDimension, "max-dimension", 0, "downscale images larger than this before extracting (0 = never)")
	extractCmd.Flags().BoolVar(&extractShowPreview, "preview", false, "show color swatches in the terminal")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	// Validate the image path
	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	iterations := clampIterations(extractIterations)

	format := export.Format(extractFormat)
	if !export.IsValidFormat(format) {
		return fmt.Errorf("unsupported format: %s (valid formats: %v)", extractFormat, export.ValidFormats())
	}

	extractor, err := palette.NewExtractor(palette.Algorithm(extractAlgorithm))
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	// Load the image
	start := time.Now()
	img, err := image.NewFileLoader().Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded",
		"path", imagePath,
		"width", bounds.Dx(),
		"height", bounds.Dy(),
		"duration", time.Since(start))

	if extractMaxDimension > 0 {
		img = image.Downscale(img, extractMaxDimension)
		scaled := img.Bounds()
		logger.Debug("image downscaled", "width", scaled.Dx(), "height", scaled.Dy())
	}

	// Extract the color palette
	start = time.Now()
	colors, err := extractor.Extract(img, iterations)
	if err != nil {
		return fmt.Errorf("failed to extract colors: %w", err)
	}
	logger.Debug("palette extracted",
		"algorithm", extractAlgorithm,
		"colors", len(colors),
		"duration", time.Since(start))

	for _, c := range colors {
		fmt.Fprintln(cmd.OutOrStdout(), c)
	}

	if extractShowPreview {
		printPreview(cmd.OutOrStdout(), colors)
	}

	if format != export.FormatNone {
		outPath, err := export.WriteFile(format, extractOutput, imagePath, colors)
		if err != nil {
			return fmt.Errorf("failed to export palette: %w", err)
		}
		logger.Debug("palette exported", "path", outPath)
	}

	return nil
}

// clampIterations bounds the median cut split depth to the supported range.
func clampIterations(iterations int) int {
	switch {
	case iterations > maxIterations:
		logger.Warn("switching to maximum number of iterations", "max", maxIterations)
		return maxIterations
	case iterations < minIterations:
		logger.Warn("switching to minimum number of iterations", "min", minIterations)
		return minIterations
	default:
		return iterations
	}
}
