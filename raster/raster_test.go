package raster

import (
	"image"
	"image/color"
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"asciiatlas/palette"
)

func uniform(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRasterizeScenarios(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want string
	}{
		{"black pixel", uniform(1, 1, color.RGBA{0, 0, 0, 255}), "+++\n+█+\n+++\n"},
		{"white pixel", uniform(1, 1, color.RGBA{255, 255, 255, 255}), "+++\n+ +\n+++\n"},
		{"mid grey", uniform(2, 1, color.RGBA{128, 128, 128, 255}), "++++\n+▒▒+\n++++\n"},
		{"no columns", uniform(0, 2, color.Black), "++\n++\n++\n++\n"},
		{"no rows", uniform(3, 0, color.Black), "+++++\n+++++\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rasterize(tt.img); got != tt.want {
				t.Errorf("Rasterize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRasterizeLuminanceBoundary(t *testing.T) {
	// a mean of exactly 31.875 needs a channel sum of 95.625, so check the
	// closest byte sums on either side
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{31, 32, 32, 255}) // 31.67
	img.Set(1, 0, color.RGBA{32, 32, 32, 255}) // 32
	if got, want := Rasterize(img), "++++\n+█▓+\n++++\n"; got != want {
		t.Errorf("Rasterize() = %q, want %q", got, want)
	}
}

func TestRasterizeIgnoresAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 128})
	if got, want := Rasterize(img), "+++\n+ +\n+++\n"; got != want {
		t.Errorf("Rasterize() = %q, want %q", got, want)
	}
}

func TestRasterizeOffsetBounds(t *testing.T) {
	img := uniform(4, 3, color.White)
	sub := img.SubImage(image.Rect(1, 1, 3, 3))
	if got, want := Rasterize(sub), "++++\n+  +\n+  +\n++++\n"; got != want {
		t.Errorf("Rasterize() = %q, want %q", got, want)
	}
}

func TestRasterizeShape(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		w, h := rng.IntN(12), rng.IntN(12)
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for i := range img.Pix {
			img.Pix[i] = uint8(rng.IntN(256))
		}

		panel := Rasterize(img)
		if !strings.HasSuffix(panel, "\n") {
			t.Fatalf("%dx%d panel has no trailing newline", w, h)
		}
		lines := strings.Split(strings.TrimSuffix(panel, "\n"), "\n")
		if len(lines) != h+2 {
			t.Fatalf("%dx%d panel has %d lines, want %d", w, h, len(lines), h+2)
		}

		border := strings.Repeat("+", w+2)
		if lines[0] != border || lines[len(lines)-1] != border {
			t.Fatalf("%dx%d panel has bad border rows: %q", w, h, panel)
		}
		for i, line := range lines[1 : len(lines)-1] {
			if n := utf8.RuneCountInString(line); n != w+2 {
				t.Fatalf("%dx%d line %d has width %d, want %d", w, h, i+1, n, w+2)
			}
			body := []rune(line)
			if body[0] != palette.Border || body[len(body)-1] != palette.Border {
				t.Fatalf("%dx%d line %d is not framed: %q", w, h, i+1, line)
			}
			for _, r := range body[1 : len(body)-1] {
				if !palette.Contains(r) {
					t.Fatalf("%dx%d line %d has non palette rune %q", w, h, i+1, r)
				}
			}
		}
	}
}
