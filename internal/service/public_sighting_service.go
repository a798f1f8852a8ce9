package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
)

func (s *Service) MapSightings(ctx context.Context, q MapQuery) (domain.MapSightingsResponse, error) {
	return s.PublicSightingService.MapSightings(ctx, q)
}

func (s *Service) RecentSightings(ctx context.Context, q RecentQuery) (domain.RecentSightingsResponse, error) {
	return s.PublicSightingService.RecentSightings(ctx, q)
}

func (s *Service) GetSighting(ctx context.Context, id uuid.UUID) (*domain.Sighting, error) {
	return s.PublicSightingService.GetSighting(ctx, id)
}

func (s *Service) SightingRadii(ctx context.Context, id uuid.UUID) (geo.Radii, error) {
	return s.PublicSightingService.SightingRadii(ctx, id)
}

func (s *Service) CreateSighting(ctx context.Context, req domain.CreateSightingRequest) (*domain.Sighting, error) {
	return s.PublicSightingService.CreateSighting(ctx, req)
}

func (s *Service) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	return s.SearchService.Search(ctx, req)
}
