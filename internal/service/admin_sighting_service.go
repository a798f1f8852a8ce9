package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
)

func (s *Service) List(ctx context.Context, page, limit int) ([]*domain.Sighting, int64, error) {
	return s.AdminSightingService.List(ctx, page, limit)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req domain.UpdateSightingRequest) error {
	return s.AdminSightingService.Update(ctx, id, req)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.AdminSightingService.Delete(ctx, id)
}

func (s *Service) Import(ctx context.Context, req domain.ImportSightingsRequest) (domain.ImportSightingsResponse, error) {
	return s.AdminSightingService.Import(ctx, req)
}
