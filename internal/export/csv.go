package export

import (
	"fmt"
	"io"

	"github.com/Kaesebrot84/iris/internal/palette"
)

// CSV writes the palette as a CSV table with an "R, G, B, A" header and one
// row per color, in palette order. Cells are separated by ", " rather than
// the bare comma encoding/csv emits, so rows are formatted by hand.
func CSV(w io.Writer, colors []palette.Color) error {
	if _, err := fmt.Fprint(w, "R, G, B, A\n"); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, c := range colors {
		if _, err := fmt.Fprintf(w, "%d, %d, %d, %d\n", c.R, c.G, c.B, c.A); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	return nil
}
