package raster

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Filter selects the resampling kernel used by Thumbnail.
type Filter int

const (
	CatmullRom Filter = iota
	BiLinear
	Lanczos
)

// FilterNames lists the accepted names, default first.
var FilterNames = []string{"catmullrom", "bilinear", "lanczos"}

func ParseFilter(name string) (Filter, error) {
	for i, n := range FilterNames {
		if n == name {
			return Filter(i), nil
		}
	}
	return 0, fmt.Errorf("unknown resize filter %q", name)
}

func (f Filter) String() string {
	if int(f) < 0 || int(f) >= len(FilterNames) {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return FilterNames[f]
}

// Thumbnail scales img down to width columns, keeping the aspect ratio with
// integer division: height = width*srcHeight/srcWidth. The height is floored
// at 1 on purpose, so a very wide image still renders one body row instead of
// a border-only panel. Images already no wider than width are returned as
// they are.
func Thumbnail(logger *slog.Logger, img image.Image, width int, f Filter) image.Image {
	srcBounds := img.Bounds()
	srcWidth, srcHeight := srcBounds.Dx(), srcBounds.Dy()

	if srcWidth == 0 || srcHeight == 0 || width >= srcWidth {
		logger.Debug("not resizing", "width", srcWidth, "height", srcHeight)
		return img
	}

	height := max(width*srcHeight/srcWidth, 1)

	logger.Debug("resizing", "filter", f, "width", width, "height", height)
	return scale(img, width, height, f)
}

func scale(img image.Image, width, height int, f Filter) image.Image {
	var kernel draw.Interpolator
	switch f {
	case Lanczos:
		return imaging.Resize(img, width, height, imaging.Lanczos)
	case BiLinear:
		kernel = draw.ApproxBiLinear
	default:
		kernel = draw.CatmullRom
	}

	dest := image.NewNRGBA(image.Rect(0, 0, width, height))
	kernel.Scale(dest, dest.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dest
}
