package service

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/sighting"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/storage/images"
	"github.com/platanus-hack/platanus-hack-25-team-41/pkg/e"
)

type publicSightingService struct {
	repo     SightingRepository
	cache    SightingCacheService
	store    ImageStore
	detector DogDetector
	notify   NotifyQueue
	logger   *slog.Logger
	cacheTTL time.Duration
	now      func() time.Time
}

func NewPublicSightingService(
	repo SightingRepository,
	cache SightingCacheService,
	store ImageStore,
	detector DogDetector,
	notify NotifyQueue,
	logger *slog.Logger,
	cacheTTL time.Duration,
) PublicSightingService {
	if cacheTTL <= 0 {
		cacheTTL = 60 * time.Second
	}
	return &publicSightingService{
		repo:     repo,
		cache:    cache,
		store:    store,
		detector: detector,
		notify:   notify,
		logger:   logger,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// MapSightings loads the active set (cache first, Postgres on a miss),
// applies the conjunctive filters and annotates distance from the user
// when their location is known.
func (s *publicSightingService) MapSightings(ctx context.Context, q MapQuery) (domain.MapSightingsResponse, error) {
	active, err := s.activeSightings(ctx)
	if err != nil {
		return domain.MapSightingsResponse{}, err
	}

	criteria := sighting.Criteria{
		Status:   q.Status,
		Viewport: q.Viewport,
	}
	if q.UserLocation != nil && q.RadiusKm != nil {
		criteria.Proximity = &sighting.Proximity{Origin: *q.UserLocation, RadiusKm: *q.RadiusKm}
	}

	filtered := sighting.Filter(active, criteria)

	// Spatial view: records without a coordinate never reach the map.
	out := make([]domain.Sighting, 0, len(filtered))
	for _, rec := range filtered {
		if rec.Coordinate == nil {
			continue
		}
		if q.UserLocation != nil {
			dist := geo.DistanceKm(*q.UserLocation, *rec.Coordinate)
			rec.DistanceKm = &dist
		}
		out = append(out, rec)
	}

	s.logger.Debug("map sightings filtered",
		slog.Int("active", len(active)),
		slog.Int("shown", len(out)),
	)

	return domain.MapSightingsResponse{Sightings: out, Total: len(out)}, nil
}

// RecentSightings is the non-spatial feed: coordinate-less records are kept
// so a report is never silently hidden from the user.
func (s *publicSightingService) RecentSightings(ctx context.Context, q RecentQuery) (domain.RecentSightingsResponse, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	sightings, total, err := s.repo.ListRecent(ctx, limit, q.Offset, q.Neighborhood, q.Status)
	if err != nil {
		return domain.RecentSightingsResponse{}, err
	}

	return domain.RecentSightingsResponse{
		Sightings: sightings,
		Total:     total,
		HasMore:   int64(q.Offset+limit) < total,
	}, nil
}

func (s *publicSightingService) GetSighting(ctx context.Context, id uuid.UUID) (*domain.Sighting, error) {
	return s.repo.Get(ctx, id)
}

func (s *publicSightingService) SightingRadii(ctx context.Context, id uuid.UUID) (geo.Radii, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return geo.Radii{}, err
	}
	return geo.EstimateRadii(rec.ReportedAt, s.now().UTC()), nil
}

func (s *publicSightingService) CreateSighting(ctx context.Context, req domain.CreateSightingRequest) (*domain.Sighting, error) {
	if len(req.Images) == 0 {
		return nil, fmt.Errorf("create sighting: %w", e.ErrInvalidInput)
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, fmt.Errorf("create sighting: %w", e.ErrInvalidCoordinates)
	}

	imgs := make([]images.Image, 0, len(req.Images))
	for _, encoded := range req.Images {
		img, err := images.DecodeBase64(encoded)
		if err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}

	attrs, isDog, err := s.detector.Describe(ctx, imgs, req.Description)
	if err != nil {
		s.logger.Error("detector failed", slog.Any("error", err))
		return nil, err
	}
	if !isDog {
		return nil, e.ErrNoDogDetected
	}

	urls := make([]string, 0, len(imgs))
	for _, img := range imgs {
		url, err := s.store.Upload(ctx, img)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	now := s.now().UTC()
	cls := sighting.ClassifyAttributes(attrs)

	rec := &domain.Sighting{
		ID:           uuid.New(),
		Name:         sighting.DeriveName(req.Description),
		ReportedAt:   &now,
		Description:  req.Description,
		Attributes:   attrs,
		Size:         cls.Size,
		AgeClass:     cls.AgeClass,
		Color:        cls.Color,
		Status:       domain.StatusPending,
		ImageURLs:    urls,
		Address:      req.Address,
		Neighborhood: req.Neighborhood,
	}
	if req.Latitude != nil && req.Longitude != nil {
		rec.Coordinate = &geo.Coordinate{Lat: *req.Latitude, Lng: *req.Longitude}
	}
	// Contact info is stored only when the reporter supplied it. Never
	// synthesized.
	if req.ContactName != "" || req.ContactPhone != "" || req.ContactEmail != "" {
		rec.Contact = &domain.ContactInfo{
			Name:  req.ContactName,
			Phone: req.ContactPhone,
			Email: req.ContactEmail,
		}
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info("sighting created",
		slog.String("id", rec.ID.String()),
		slog.Int("images", len(urls)),
		slog.Int("attributes", len(attrs)),
	)

	payload := domain.SightingCreatedPayload{
		SightingID: rec.ID,
		Name:       rec.Name,
		Coordinate: rec.Coordinate,
		ReportedAt: now,
	}
	if len(urls) > 0 {
		payload.ImageURL = urls[0]
	}
	if err := s.notify.Enqueue(ctx, payload); err != nil {
		// Notification is best effort; the report itself already landed.
		s.logger.Error("enqueue notify failed", slog.Any("error", err))
	}

	return rec, nil
}

func (s *publicSightingService) activeSightings(ctx context.Context) ([]domain.Sighting, error) {
	cached, err := s.cache.GetActive(ctx)
	if err != nil {
		s.logger.Warn("cache read failed, falling back to db", slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetActive(ctx, active, s.cacheTTL); err != nil {
		s.logger.Warn("cache write failed", slog.Any("error", err))
	}

	return active, nil
}
