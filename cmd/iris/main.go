// Iris - a color palette generator
//
// Iris extracts representative color palettes from images using median cut
// quantization and exports them as HTML, JSON or CSV.
package main

import (
	"os"

	"github.com/Kaesebrot84/iris/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
