package service

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/storage/images"
	"github.com/platanus-hack/platanus-hack-25-team-41/pkg/e"
)

type reunionService struct {
	sightings SightingRepository
	reunions  ReunionRepository
	store     ImageStore
	logger    *slog.Logger
	now       func() time.Time
}

func NewReunionService(
	sightings SightingRepository,
	reunions ReunionRepository,
	store ImageStore,
	logger *slog.Logger,
) ReunionService {
	return &reunionService{
		sightings: sightings,
		reunions:  reunions,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateReunion files a claim that the reporter found their dog through the
// platform. The referenced sighting must exist and the verification photo is
// uploaded before anything is persisted; the report lands pending and waits
// for an admin decision.
func (s *reunionService) CreateReunion(ctx context.Context, req domain.CreateReunionRequest) (*domain.ReunionReport, error) {
	sightingID, err := uuid.Parse(req.SightingID)
	if err != nil {
		return nil, fmt.Errorf("create reunion: %w", e.ErrInvalidInput)
	}

	if _, err := s.sightings.Get(ctx, sightingID); err != nil {
		return nil, err
	}

	img, err := images.DecodeBase64(req.VerificationImage)
	if err != nil {
		return nil, err
	}

	url, err := s.store.Upload(ctx, img)
	if err != nil {
		return nil, err
	}

	rep := &domain.ReunionReport{
		ID:                   uuid.New(),
		SightingID:           sightingID,
		VerificationImageURL: url,
		Message:              req.Message,
		Status:               domain.ReunionPending,
		CreatedAt:            s.now().UTC(),
	}

	if err := s.reunions.Create(ctx, rep); err != nil {
		return nil, err
	}

	s.logger.Info("reunion report created",
		slog.String("id", rep.ID.String()),
		slog.String("sighting_id", sightingID.String()),
	)

	return rep, nil
}

func (s *reunionService) ListReunions(ctx context.Context, status string, page, limit int) ([]domain.ReunionReport, int64, error) {
	return s.reunions.List(ctx, status, page, limit)
}

// ValidateReunion resolves a pending report. A confirmed reunion also closes
// the underlying sighting as rescued; the report decision stands even if
// that second write fails, so a retry of the status flip is safe.
func (s *reunionService) ValidateReunion(ctx context.Context, id uuid.UUID, req domain.ValidateReunionRequest) error {
	rep, err := s.reunions.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.reunions.Validate(ctx, id, req.Status, req.ValidatedBy, req.Notes); err != nil {
		return err
	}

	if req.Status != domain.ReunionValidated {
		return nil
	}

	sighting, err := s.sightings.Get(ctx, rep.SightingID)
	if err != nil {
		s.logger.Error("load sighting for reunion failed",
			slog.String("sighting_id", rep.SightingID.String()),
			slog.Any("error", err),
		)
		return nil
	}
	sighting.Status = domain.StatusRescued
	if err := s.sightings.Update(ctx, sighting); err != nil {
		s.logger.Error("mark sighting rescued failed",
			slog.String("sighting_id", rep.SightingID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}
