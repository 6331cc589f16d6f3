package linechart

import "image/color"

// DefaultPalette colors series that do not set their own stroke.
var DefaultPalette = []color.NRGBA{
	{R: 0xa4, G: 0x63, B: 0x3a, A: 0xff},
	{R: 0x85, G: 0x76, B: 0x25, A: 0xff},
	{R: 0x51, G: 0x85, B: 0x4d, A: 0xff},
	{R: 0x2b, G: 0x7f, B: 0xa8, A: 0xff},
	{R: 0x72, G: 0x6c, B: 0xae, A: 0xff},
	{R: 0x97, G: 0x5f, B: 0x91, A: 0xff},
}

// PaletteColor returns the default color for the i-th series.
func PaletteColor(i int) color.NRGBA {
	return DefaultPalette[i%len(DefaultPalette)]
}
