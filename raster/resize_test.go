package raster

import (
	"image"
	"image/color"
	"io"
	"log/slog"
	"testing"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestThumbnailSize(t *testing.T) {
	tests := []struct {
		name          string
		w, h, width   int
		wantW, wantH  int
		wantUntouched bool
	}{
		{"halve", 200, 100, 100, 100, 50, false},
		{"integer division", 300, 101, 100, 100, 33, false},
		{"portrait", 40, 90, 20, 20, 45, false},
		{"same width", 100, 40, 100, 100, 40, true},
		{"no upscale", 10, 10, 100, 10, 10, true},
		{"height floor", 1000, 2, 10, 10, 1, false},
		{"empty", 0, 0, 10, 0, 0, true},
	}

	for _, tt := range tests {
		for _, f := range []Filter{CatmullRom, BiLinear, Lanczos} {
			t.Run(tt.name+"/"+f.String(), func(t *testing.T) {
				src := uniform(tt.w, tt.h, color.Gray{Y: 200})
				got := Thumbnail(discard, src, tt.width, f)
				b := got.Bounds()
				if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
					t.Errorf("Thumbnail() size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
				}
				if tt.wantUntouched && got != image.Image(src) {
					t.Errorf("Thumbnail() returned a new image, want the source")
				}
			})
		}
	}
}

func TestThumbnailKeepsTone(t *testing.T) {
	src := uniform(64, 32, color.White)
	for _, f := range []Filter{CatmullRom, BiLinear, Lanczos} {
		panel := Rasterize(Thumbnail(discard, src, 4, f))
		if want := "++++++\n+    +\n+    +\n++++++\n"; panel != want {
			t.Errorf("%s: Rasterize(Thumbnail()) = %q, want %q", f, panel, want)
		}
	}
}

func TestParseFilter(t *testing.T) {
	for i, name := range FilterNames {
		f, err := ParseFilter(name)
		if err != nil {
			t.Fatalf("ParseFilter(%q) error: %v", name, err)
		}
		if int(f) != i || f.String() != name {
			t.Errorf("ParseFilter(%q) = %v", name, f)
		}
	}
	if _, err := ParseFilter("nearest"); err == nil {
		t.Error("ParseFilter(nearest) should fail")
	}
}
