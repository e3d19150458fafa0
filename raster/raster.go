package raster

import (
	"image"
	"image/color"
	"strings"

	"asciiatlas/palette"
)

// Rasterize renders img as a bordered panel: a row of Border runes, one
// framed row of palette glyphs per pixel row, a closing row of Border runes.
// Every line, the last one included, ends with a newline.
func Rasterize(img image.Image) string {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var sb strings.Builder
	// glyphs take up to 3 bytes in UTF-8
	sb.Grow((h+2)*(w*3+3) + 2*(w+3))

	border := strings.Repeat(string(palette.Border), w+2)
	sb.WriteString(border)
	sb.WriteByte('\n')

	for y := b.Min.Y; y < b.Max.Y; y++ {
		sb.WriteRune(palette.Border)
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			sb.WriteRune(palette.Glyph(palette.Luminance(c.R, c.G, c.B)))
		}
		sb.WriteRune(palette.Border)
		sb.WriteByte('\n')
	}

	sb.WriteString(border)
	sb.WriteByte('\n')
	return sb.String()
}
