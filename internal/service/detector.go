package service

import (
	"context"

	"log/slog"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/sighting"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/storage/images"
)

// heuristicDetector is the stand-in for the vision model: it trusts that
// submitted photos show a dog and extracts attributes from the description
// text alone. Swappable behind DogDetector once a real classifier lands.
type heuristicDetector struct {
	logger *slog.Logger
}

func NewHeuristicDetector(logger *slog.Logger) DogDetector {
	return &heuristicDetector{logger: logger}
}

func (d *heuristicDetector) Describe(ctx context.Context, imgs []images.Image, description string) ([]string, bool, error) {
	attrs := sighting.ExtractAttributes(description)

	d.logger.Debug("detector described submission",
		slog.Int("images", len(imgs)),
		slog.Int("attributes", len(attrs)),
	)

	// Without a vision model there is nothing to reject on; a submission
	// with photos is taken at face value.
	isDog := len(imgs) > 0 || len(attrs) > 0
	return attrs, isDog, nil
}
