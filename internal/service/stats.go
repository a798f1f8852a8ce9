package service

import (
	"context"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
)

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.SightingStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}

	recent, err := s.repo.CountRecent(ctx, minutes)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.SightingStats{
		ReportCount: recent,
		ByStatus:    byStatus,
		Minutes:     minutes,
	}, nil
}
