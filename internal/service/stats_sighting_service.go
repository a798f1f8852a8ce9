package service

import (
	"context"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
)

func (s *Service) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.SightingStats, error) {
	return s.StatsService.GetStats(ctx, req)
}
