package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
)

type SightingRepository interface {
	Create(ctx context.Context, s *domain.Sighting) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Sighting, error)
	List(ctx context.Context, page, limit int) ([]*domain.Sighting, int64, error)
	ListRecent(ctx context.Context, limit, offset int, neighborhood, status string) ([]domain.Sighting, int64, error)
	ListActive(ctx context.Context) ([]domain.Sighting, error)
	Update(ctx context.Context, s *domain.Sighting) error
	Delete(ctx context.Context, id uuid.UUID) error // soft delete
}

type GeoRepository interface {
	ListNearby(ctx context.Context, origin geo.Coordinate, radiusKm float64) ([]domain.Sighting, error)
}

type StatsRepository interface {
	CountRecent(ctx context.Context, minutes int) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type ReunionRepository interface {
	Create(ctx context.Context, rep *domain.ReunionReport) error
	Get(ctx context.Context, id uuid.UUID) (*domain.ReunionReport, error)
	List(ctx context.Context, status string, page, limit int) ([]domain.ReunionReport, int64, error)
	Validate(ctx context.Context, id uuid.UUID, status domain.ReunionStatus, validatedBy, notes string) error
}

func (p *Postgres) Sightings() SightingRepository { return p.Sighting }
func (p *Postgres) GeoSightings() GeoRepository   { return p.Geo }
func (p *Postgres) Stats() StatsRepository        { return p.Stat }
func (p *Postgres) Reunions() ReunionRepository   { return p.Reunion }
