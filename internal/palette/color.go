// Package palette implements median cut color quantization over RGBA pixel
// samples, plus the alternative extraction backends selectable from the CLI.
package palette

import "fmt"

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// ColorChannel selects one of the four channels of a Color.
type ColorChannel int

// Channel selectors.
const (
	ChannelR ColorChannel = iota
	ChannelG
	ChannelB
	ChannelA
)

// Channel returns the value of the selected channel. Unknown selectors read
// the alpha channel.
func (c Color) Channel(ch ColorChannel) uint8 {
	switch ch {
	case ChannelR:
		return c.R
	case ChannelG:
		return c.G
	case ChannelB:
		return c.B
	default:
		return c.A
	}
}

// String formats the color for diagnostics output.
func (c Color) String() string {
	return fmt.Sprintf("{ R: %d, G: %d, B: %d, A: %d }", c.R, c.G, c.B, c.A)
}
