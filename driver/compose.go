package driver

import (
	"fmt"
	"log/slog"

	"asciiatlas/atlas"
	"asciiatlas/fileop"
	"asciiatlas/parallel"
	"asciiatlas/raster"
)

// ComposeParams configures a compose run.
type ComposeParams struct {
	Files   []string
	Targets []string
	Width   int
	Filter  raster.Filter
	Workers int
}

// Compose renders every input image as a panel of Width columns, lays the
// panels side by side in input order and writes the atlas to every target.
func Compose(logger *slog.Logger, p ComposeParams) error {
	pool := parallel.New(p.Workers)
	logger.Info("composing", "inputs", len(p.Files), "width", p.Width,
		"filter", p.Filter, "workers", pool.Workers())

	panels, err := parallel.Map(pool, len(p.Files), func(i int) (string, error) {
		return renderPanel(logger.With("file", p.Files[i]), p.Files[i], p.Width, p.Filter)
	})
	if err != nil {
		return err
	}

	a, err := atlas.Compose(panels...)
	if err != nil {
		return fmt.Errorf("could not compose atlas: %w", err)
	}

	return fileop.WriteTargets(logger, p.Targets, []byte(a))
}

func renderPanel(logger *slog.Logger, path string, width int, f raster.Filter) (string, error) {
	img, _, err := fileop.DecodeImage(logger, path)
	if err != nil {
		return "", err
	}

	img = raster.Thumbnail(logger, img, width, f)
	panel := raster.Rasterize(img)
	logger.Debug("rasterized", "columns", img.Bounds().Dx(), "rows", img.Bounds().Dy())
	return panel, nil
}
