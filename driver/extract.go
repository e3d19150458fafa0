package driver

import (
	"fmt"
	"log/slog"

	"asciiatlas/atlas"
	"asciiatlas/fileop"
)

// ExtractParams configures an extract run.
type ExtractParams struct {
	Source  string
	Index   int
	Targets []string
}

// Extract reads the atlas at Source and writes the body of panel Index to
// every target.
func Extract(logger *slog.Logger, p ExtractParams) error {
	logger = logger.With("atlas", p.Source)

	a, err := fileop.ReadText(p.Source)
	if err != nil {
		return err
	}
	logger.Info("extracting", "index", p.Index, "panels", atlas.Count(a))

	body, err := atlas.Extract(a, p.Index)
	if err != nil {
		return fmt.Errorf("could not extract panel from %q: %w", p.Source, err)
	}

	return fileop.WriteTargets(logger, p.Targets, []byte(body))
}
