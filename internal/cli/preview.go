package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Kaesebrot84/iris/internal/palette"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"
)

// ANSI escape codes for terminal colors.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

// swatch returns a solid ANSI-colored block for the color followed by its hex
// code. Uses a 24-bit background sequence with spaces for the block.
func swatch(c palette.Color) string {
	hex := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	block := strings.Repeat(" ", swatchWidth)

	return bg + block + ansiReset + "  " + hex
}

// printPreview renders one swatch line per palette color. Escape sequences
// would garble piped output, so the preview only renders when w is a
// terminal.
func printPreview(w io.Writer, colors []palette.Color) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}

	for _, c := range colors {
		fmt.Fprintln(w, swatch(c))
	}
}
