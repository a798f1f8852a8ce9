package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
)

func (s *Service) CreateReunion(ctx context.Context, req domain.CreateReunionRequest) (*domain.ReunionReport, error) {
	return s.ReunionService.CreateReunion(ctx, req)
}

func (s *Service) ListReunions(ctx context.Context, status string, page, limit int) ([]domain.ReunionReport, int64, error) {
	return s.ReunionService.ListReunions(ctx, status, page, limit)
}

func (s *Service) ValidateReunion(ctx context.Context, id uuid.UUID, req domain.ValidateReunionRequest) error {
	return s.ReunionService.ValidateReunion(ctx, id, req)
}
