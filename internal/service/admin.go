package service

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/sighting"
)

type AdminService struct {
	repo   SightingRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewAdminSightingService(repo SightingRepository, logger *slog.Logger) *AdminService {
	return &AdminService{repo: repo, logger: logger, now: time.Now}
}

func (s *AdminService) List(ctx context.Context, page, limit int) ([]*domain.Sighting, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *AdminService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateSightingRequest) error {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Latitude != nil && req.Longitude != nil {
		rec.Coordinate = &geo.Coordinate{Lat: *req.Latitude, Lng: *req.Longitude}
	}
	if req.Status != nil {
		rec.Status = *req.Status
	}
	return s.repo.Update(ctx, rec)
}

func (s *AdminService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Import runs a batch of heterogeneous partner/scraper records through the
// canonical transformer and persists them. The transformer is total, so one
// malformed record can only fail its own insert, never the whole batch.
func (s *AdminService) Import(ctx context.Context, req domain.ImportSightingsRequest) (domain.ImportSightingsResponse, error) {
	now := s.now().UTC()

	resp := domain.ImportSightingsResponse{IDs: make([]string, 0, len(req.Records))}
	for _, raw := range req.Records {
		rec := sighting.FromRaw(raw, now)
		if err := s.repo.Create(ctx, &rec); err != nil {
			s.logger.Warn("import record failed",
				slog.String("id", rec.ID.String()),
				slog.Any("error", err),
			)
			continue
		}
		resp.Imported++
		resp.IDs = append(resp.IDs, rec.ID.String())
	}

	s.logger.Info("import finished",
		slog.Int("received", len(req.Records)),
		slog.Int("imported", resp.Imported),
	)

	return resp, nil
}
