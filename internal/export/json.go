package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Kaesebrot84/iris/internal/palette"
)

type jsonColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

type jsonPalette struct {
	Palette []jsonColor `json:"palette"`
}

// JSON writes the palette as {"palette":[{"r":0,"g":0,"b":0,"a":0},...]} in
// palette order. An empty palette encodes as an empty array, not null.
func JSON(w io.Writer, colors []palette.Color) error {
	doc := jsonPalette{Palette: make([]jsonColor, 0, len(colors))}
	for _, c := range colors {
		doc.Palette = append(doc.Palette, jsonColor{R: c.R, G: c.G, B: c.B, A: c.A})
	}

	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON palette: %w", err)
	}
	return nil
}
