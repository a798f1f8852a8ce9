package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
	"github.com/platanus-hack/platanus-hack-25-team-41/pkg/e"
)

type SightingRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSightingRepo(pool *pgxpool.Pool, logger *slog.Logger) *SightingRepo {
	return &SightingRepo{pool: pool, logger: logger}
}

const sightingColumns = `id,
	   name,
	   ST_Y(geo_point::geometry) AS lat,
	   ST_X(geo_point::geometry) AS lng,
	   reported_at,
	   description,
	   attributes,
	   size,
	   age_class,
	   color,
	   status,
	   image_urls,
	   location_address,
	   neighborhood,
	   contact_name,
	   contact_phone,
	   contact_email`

func (p *SightingRepo) Create(ctx context.Context, s *domain.Sighting) error {
	const op = "postgres.Sighting.Create"

	const query = `
		INSERT INTO sightings
			(id, name, geo_point, reported_at, description, attributes,
			 size, age_class, color, status, image_urls,
			 location_address, neighborhood,
			 contact_name, contact_phone, contact_email, created_at)
		VALUES
			($1, $2,
			 CASE WHEN $3::float8 IS NULL THEN NULL
			      ELSE ST_SetSRID(ST_MakePoint($3, $4), 4326) END,
			 $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = domain.StatusPending
	}

	var lng, lat *float64
	if s.Coordinate != nil {
		lng, lat = &s.Coordinate.Lng, &s.Coordinate.Lat
	}

	var contactName, contactPhone, contactEmail *string
	if s.Contact != nil {
		contactName, contactPhone, contactEmail = &s.Contact.Name, &s.Contact.Phone, &s.Contact.Email
	}

	_, err := p.pool.Exec(ctx, query,
		s.ID,
		s.Name,
		lng,
		lat,
		s.ReportedAt,
		s.Description,
		s.Attributes,
		s.Size,
		s.AgeClass,
		s.Color,
		s.Status,
		s.ImageURLs,
		s.Address,
		s.Neighborhood,
		contactName,
		contactPhone,
		contactEmail,
		time.Now().UTC(),
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *SightingRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Sighting, error) {
	const op = "postgres.Sighting.Get"

	query := `SELECT ` + sightingColumns + ` FROM sightings WHERE id = $1`

	row := p.pool.QueryRow(ctx, query, id)
	s, err := scanSighting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return s, nil
}

func (p *SightingRepo) List(ctx context.Context, page, limit int) ([]*domain.Sighting, int64, error) {
	const op = "postgres.Sighting.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM sightings`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `SELECT ` + sightingColumns + `
		FROM sightings
		ORDER BY reported_at DESC NULLS LAST
		LIMIT $1 OFFSET $2`

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var sightings []*domain.Sighting
	for rows.Next() {
		s, err := scanSighting(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		sightings = append(sightings, s)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return sightings, total, nil
}

func (p *SightingRepo) ListRecent(ctx context.Context, limit, offset int, neighborhood, status string) ([]domain.Sighting, int64, error) {
	const op = "postgres.Sighting.ListRecent"

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if status == "" {
		status = string(domain.StatusPending)
	}

	const countQuery = `
		SELECT COUNT(*)
		FROM sightings
		WHERE status = $1
		  AND ($2 = '' OR neighborhood ILIKE '%' || $2 || '%')
	`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, status, neighborhood).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `SELECT ` + sightingColumns + `
		FROM sightings
		WHERE status = $1
		  AND ($2 = '' OR neighborhood ILIKE '%' || $2 || '%')
		ORDER BY reported_at DESC NULLS LAST
		LIMIT $3 OFFSET $4`

	rows, err := p.pool.Query(ctx, listQuery, status, neighborhood, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	sightings, err := collectSightings(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return sightings, total, nil
}

// ListActive returns every record still worth showing on the map: anything
// not discarded and not already rescued.
func (p *SightingRepo) ListActive(ctx context.Context) ([]domain.Sighting, error) {
	const op = "postgres.Sighting.ListActive"

	query := `SELECT ` + sightingColumns + `
		FROM sightings
		WHERE status NOT IN ($1, $2)
		ORDER BY reported_at DESC NULLS LAST`

	rows, err := p.pool.Query(ctx, query, domain.StatusDiscarded, domain.StatusRescued)
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

func (p *SightingRepo) Update(ctx context.Context, s *domain.Sighting) error {
	const op = "postgres.Sighting.Update"

	const query = `
		UPDATE sightings
		SET geo_point = CASE WHEN $2::float8 IS NULL THEN NULL
		                     ELSE ST_SetSRID(ST_MakePoint($2, $3), 4326) END,
			status     = $4,
			updated_at = NOW()
		WHERE id = $1
	`

	var lng, lat *float64
	if s.Coordinate != nil {
		lng, lat = &s.Coordinate.Lng, &s.Coordinate.Lat
	}

	cmd, err := p.pool.Exec(ctx, query, s.ID, lng, lat, s.Status)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", s.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *SightingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Sighting.Delete"

	const query = `
		UPDATE sightings
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status != $2
	`

	cmd, err := p.pool.Exec(ctx, query, id, domain.StatusDiscarded)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func collectSightings(rows pgx.Rows) ([]domain.Sighting, error) {
	sightings := make([]domain.Sighting, 0, 16)
	for rows.Next() {
		s, err := scanSighting(rows)
		if err != nil {
			return nil, err
		}
		sightings = append(sightings, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sightings, nil
}

func scanSighting(row pgx.Row) (*domain.Sighting, error) {
	var (
		s            domain.Sighting
		lat, lng     *float64
		reportedAt   *time.Time
		contactName  *string
		contactPhone *string
		contactEmail *string
	)

	err := row.Scan(
		&s.ID,
		&s.Name,
		&lat,
		&lng,
		&reportedAt,
		&s.Description,
		&s.Attributes,
		&s.Size,
		&s.AgeClass,
		&s.Color,
		&s.Status,
		&s.ImageURLs,
		&s.Address,
		&s.Neighborhood,
		&contactName,
		&contactPhone,
		&contactEmail,
	)
	if err != nil {
		return nil, err
	}

	if lat != nil && lng != nil {
		s.Coordinate = &geo.Coordinate{Lat: *lat, Lng: *lng}
	}
	s.ReportedAt = reportedAt
	if contactName != nil || contactPhone != nil || contactEmail != nil {
		s.Contact = &domain.ContactInfo{
			Name:  deref(contactName),
			Phone: deref(contactPhone),
			Email: deref(contactEmail),
		}
	}

	return &s, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
