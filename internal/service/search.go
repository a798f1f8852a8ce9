package service

import (
	"context"

	"log/slog"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/sighting"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/storage/images"
	"github.com/platanus-hack/platanus-hack-25-team-41/pkg/e"
)

type searchService struct {
	repo     SightingRepository
	geoRepo  GeoRepository
	detector DogDetector
	logger   *slog.Logger
	cfg      config.SearchConfig
}

func NewSearchService(
	repo SightingRepository,
	geoRepo GeoRepository,
	detector DogDetector,
	logger *slog.Logger,
	cfg config.SearchConfig,
) SearchService {
	if cfg.MinMatchScore <= 0 {
		cfg.MinMatchScore = sighting.DefaultMinMatchScore
	}
	if cfg.DefaultRadiusKm <= 0 {
		cfg.DefaultRadiusKm = 5.0
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 20
	}
	return &searchService{
		repo:     repo,
		geoRepo:  geoRepo,
		detector: detector,
		logger:   logger,
		cfg:      cfg,
	}
}

// Search extracts attributes from the submitted photos/description, pulls
// the candidate set (narrowed by PostGIS when a location is given) and
// ranks it by Jaccard similarity.
func (s *searchService) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	if len(req.Images) == 0 && req.Description == "" {
		return domain.SearchResponse{}, e.ErrEmptySearch
	}

	imgs := make([]images.Image, 0, len(req.Images))
	for _, encoded := range req.Images {
		img, err := images.DecodeBase64(encoded)
		if err != nil {
			return domain.SearchResponse{}, err
		}
		imgs = append(imgs, img)
	}

	attrs, _, err := s.detector.Describe(ctx, imgs, req.Description)
	if err != nil {
		s.logger.Error("detector failed", slog.Any("error", err))
		return domain.SearchResponse{}, err
	}
	if len(attrs) == 0 {
		// Nothing recognizable to search on: distinguished 400.
		return domain.SearchResponse{}, e.ErrEmptySearch
	}

	s.logger.Info("searching sightings",
		slog.Int("attributes", len(attrs)),
		slog.Bool("with_location", req.Latitude != nil && req.Longitude != nil),
	)

	var (
		candidates []domain.Sighting
		origin     *geo.Coordinate
		radiusKm   float64
	)
	if req.Latitude != nil && req.Longitude != nil {
		origin = &geo.Coordinate{Lat: *req.Latitude, Lng: *req.Longitude}
		radiusKm = s.cfg.DefaultRadiusKm
		if req.RadiusKm != nil {
			radiusKm = *req.RadiusKm
		}
		candidates, err = s.geoRepo.ListNearby(ctx, *origin, radiusKm)
	} else {
		candidates, err = s.repo.ListActive(ctx)
	}
	if err != nil {
		return domain.SearchResponse{}, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	results := sighting.RankMatches(candidates, attrs, sighting.MatchOptions{
		Origin:   origin,
		RadiusKm: radiusKm,
		MinScore: s.cfg.MinMatchScore,
		Limit:    limit,
	})

	s.logger.Info("search done",
		slog.Int("candidates", len(candidates)),
		slog.Int("results", len(results)),
	)

	return domain.SearchResponse{
		Results:          results,
		SearchAttributes: attrs,
		TotalResults:     len(results),
	}, nil
}
