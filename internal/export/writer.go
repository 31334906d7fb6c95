package export

import (
	"bytes"
	"fmt"
	"os"

	"github.com/Kaesebrot84/iris/internal/palette"
)

// WriteFile renders colors in the given format and writes the result to
// basePath with the format's extension appended. imagePath is only used by
// the HTML format. It returns the path of the written file; FormatNone and
// unrecognized formats are rejected.
func WriteFile(format Format, basePath, imagePath string, colors []palette.Color) (string, error) {
	var buf bytes.Buffer
	var err error

	switch format {
	case FormatHTML:
		err = HTML(&buf, imagePath, colors)
	case FormatJSON:
		err = JSON(&buf, colors)
	case FormatCSV:
		err = CSV(&buf, colors)
	case FormatNone:
		return "", fmt.Errorf("no export format selected")
	default:
		return "", fmt.Errorf("unsupported format: %s (valid formats: %v)", format, ValidFormats())
	}
	if err != nil {
		return "", err
	}

	outPath := basePath + format.Ext()
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	return outPath, nil
}
