package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
	"github.com/platanus-hack/platanus-hack-25-team-41/pkg/e"
)

type SightingGeo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSightingGeo(pool *pgxpool.Pool, logger *slog.Logger) *SightingGeo {
	return &SightingGeo{pool: pool, logger: logger}
}

// ListNearby returns active sightings within radiusKm of origin. The
// geo_point column is geometry (4326), so ST_DWithin over it would measure
// degrees; casting to geography makes the distance meters.
func (p *SightingGeo) ListNearby(ctx context.Context, origin geo.Coordinate, radiusKm float64) ([]domain.Sighting, error) {
	const op = "postgres.Sighting.ListNearby"

	if origin.Lat < -90 || origin.Lat > 90 || origin.Lng < -180 || origin.Lng > 180 || radiusKm <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	query := `SELECT ` + sightingColumns + `
		FROM sightings
		WHERE status NOT IN ($4, $5)
		  AND geo_point IS NOT NULL
		  AND ST_DWithin(
		    geo_point::geography,
		    ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
		    $3 * 1000
		  )
		ORDER BY reported_at DESC NULLS LAST`

	rows, err := p.pool.Query(ctx, query, origin.Lng, origin.Lat, radiusKm,
		domain.StatusDiscarded, domain.StatusRescued)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	sightings, err := collectSightings(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return sightings, nil
}
