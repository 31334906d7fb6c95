// Package export writes extracted palettes to HTML, JSON and CSV files.
package export

// Format identifies a palette export format.
type Format string

const (
	// FormatNone disables file export.
	FormatNone Format = "none"

	// FormatHTML writes an HTML page previewing the palette next to its
	// source image.
	FormatHTML Format = "html"

	// FormatJSON writes the palette as a JSON object.
	FormatJSON Format = "json"

	// FormatCSV writes the palette as a CSV table.
	FormatCSV Format = "csv"
)

// ValidFormats returns the recognized export format names.
func ValidFormats() []Format {
	return []Format{
		FormatNone,
		FormatHTML,
		FormatJSON,
		FormatCSV,
	}
}

// IsValidFormat checks if the given format name is valid.
func IsValidFormat(format Format) bool {
	for _, valid := range ValidFormats() {
		if format == valid {
			return true
		}
	}
	return false
}

// Ext returns the file extension for the format, including the leading dot.
// FormatNone has no extension.
func (f Format) Ext() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatJSON:
		return ".json"
	case FormatCSV:
		return ".csv"
	default:
		return ""
	}
}
