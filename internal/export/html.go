package export

import (
	"fmt"
	"html/template"
	"io"

	"github.com/Kaesebrot84/iris/internal/palette"
)

// htmlPage lays out the source image centered above one row of solid tiles,
// one per palette color.
var htmlPage = template.Must(template.New("palette").Parse(`<!DOCTYPE html>
<html>
<head>
<meta content="width=device-width, initial-scale=1" http-equiv="Content-Type">
<meta content="utf-8" http-equiv="encoding">
<style>img { display: block; margin-left: auto; margin-right: auto; }</style>
</head>
<body>
<img src="{{.ImagePath}}" alt="Input image" class="centered">
<div style="display: grid; align-items: center; justify-content: center; gap: 5px; width: 100%; padding-top: 10px; grid-auto-flow: column;">
{{- range .Colors}}
<div style="background-color: rgb({{.R}},{{.G}},{{.B}}); display: flex; justify-content: center; align-items: center; height: 100px; width: 100px;"></div>
{{- end}}
</div>
</body>
</html>
`))

type htmlData struct {
	ImagePath string
	Colors    []palette.Color
}

// HTML renders the palette as a standalone HTML page. imagePath is embedded
// as the src of the preview image, so the page shows the image only when it
// is reachable relative to the written file. Tiles appear in palette order;
// alpha is not rendered.
func HTML(w io.Writer, imagePath string, colors []palette.Color) error {
	data := htmlData{ImagePath: imagePath, Colors: colors}
	if err := htmlPage.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render HTML palette: %w", err)
	}
	return nil
}
