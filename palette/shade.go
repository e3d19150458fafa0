package palette

import (
	"math"
	"slices"
)

// Glyphs is the shading palette, darkest first.
var Glyphs = [...]rune{'█', '▓', '▒', '░', ' '}

// Border frames every panel. It must never be one of the Glyphs, the atlas
// extractor uses it as the field separator.
const Border = '+'

// step is the luminance width of one bucket: 255/4 = 63.75.
const step = 255.0 / float64(len(Glyphs)-1)

// Luminance is the plain mean of the three channels.
func Luminance(r, g, b uint8) float64 {
	return (float64(r) + float64(g) + float64(b)) / 3
}

// Index returns the palette index for luminance l in [0, 255]. Values outside
// that range are a caller bug and will make Glyph panic.
func Index(l float64) int {
	return int(math.Round(l / step))
}

func Glyph(l float64) rune {
	return Glyphs[Index(l)]
}

func Contains(r rune) bool {
	return slices.Contains(Glyphs[:], r)
}
