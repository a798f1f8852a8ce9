package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/storage/images"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// MapQuery carries the filter state the map page sends along: an optional
// exact status, the user's resolved location (plus radius to activate the
// proximity filter) and the captured viewport bounds.
type MapQuery struct {
	Status       string
	UserLocation *geo.Coordinate
	RadiusKm     *float64
	Viewport     *geo.Bounds
}

type RecentQuery struct {
	Limit        int
	Offset       int
	Neighborhood string
	Status       string
}

type PublicSightingService interface {
	MapSightings(ctx context.Context, q MapQuery) (domain.MapSightingsResponse, error)
	RecentSightings(ctx context.Context, q RecentQuery) (domain.RecentSightingsResponse, error)
	GetSighting(ctx context.Context, id uuid.UUID) (*domain.Sighting, error)
	SightingRadii(ctx context.Context, id uuid.UUID) (geo.Radii, error)
	CreateSighting(ctx context.Context, req domain.CreateSightingRequest) (*domain.Sighting, error)
}

type SearchService interface {
	Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error)
}

type AdminSightingService interface {
	List(ctx context.Context, page, limit int) ([]*domain.Sighting, int64, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateSightingRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Import(ctx context.Context, req domain.ImportSightingsRequest) (domain.ImportSightingsResponse, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.SightingStats, error)
}

type ReunionService interface {
	CreateReunion(ctx context.Context, req domain.CreateReunionRequest) (*domain.ReunionReport, error)
	ListReunions(ctx context.Context, status string, page, limit int) ([]domain.ReunionReport, int64, error)
	ValidateReunion(ctx context.Context, id uuid.UUID, req domain.ValidateReunionRequest) error
}

// Storage-side collaborators, defined here so services depend on behavior,
// not on the postgres/redis packages.

type SightingRepository interface {
	Create(ctx context.Context, s *domain.Sighting) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Sighting, error)
	List(ctx context.Context, page, limit int) ([]*domain.Sighting, int64, error)
	ListRecent(ctx context.Context, limit, offset int, neighborhood, status string) ([]domain.Sighting, int64, error)
	ListActive(ctx context.Context) ([]domain.Sighting, error)
	Update(ctx context.Context, s *domain.Sighting) error
	Delete(ctx context.Context, id uuid.UUID) error
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

type SightingCacheService interface {
	GetActive(ctx context.Context) ([]domain.Sighting, error)
	SetActive(ctx context.Context, sightings []domain.Sighting, ttl time.Duration) error
}

type NotifyQueue interface {
	Enqueue(ctx context.Context, payload domain.SightingCreatedPayload) error
}

type ImageStore interface {
	Upload(ctx context.Context, img images.Image) (string, error)
}

// DogDetector inspects submitted photos and description and reports whether
// they show a dog at all, along with the attribute tags it could extract.
type DogDetector interface {
	Describe(ctx context.Context, imgs []images.Image, description string) (attrs []string, isDog bool, err error)
}

type Service struct {
	PublicSightingService PublicSightingService
	SearchService         SearchService
	AdminSightingService  AdminSightingService
	StatsService          StatsService
	ReunionService        ReunionService
}

func NewService(
	publicSightingService PublicSightingService,
	searchService SearchService,
	adminSightingService AdminSightingService,
	statsService StatsService,
	reunionService ReunionService,
) *Service {
	return &Service{
		PublicSightingService: publicSightingService,
		SearchService:         searchService,
		AdminSightingService:  adminSightingService,
		StatsService:          statsService,
		ReunionService:        reunionService,
	}
}
