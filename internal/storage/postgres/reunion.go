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
	"github.com/platanus-hack/platanus-hack-25-team-41/pkg/e"
)

type ReunionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReunionRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReunionRepo {
	return &ReunionRepo{pool: pool, logger: logger}
}

const reunionColumns = `id,
	   dog_sighting_id,
	   verification_image_url,
	   user_message,
	   status,
	   validated_by,
	   validated_at,
	   validation_notes,
	   created_at`

func (p *ReunionRepo) Create(ctx context.Context, rep *domain.ReunionReport) error {
	const op = "postgres.Reunion.Create"

	const query = `
		INSERT INTO reunion_reports
			(id, dog_sighting_id, verification_image_url, user_message, status, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6)
	`

	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	if rep.Status == "" {
		rep.Status = domain.ReunionPending
	}
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		rep.ID,
		rep.SightingID,
		rep.VerificationImageURL,
		rep.Message,
		rep.Status,
		rep.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ReunionRepo) Get(ctx context.Context, id uuid.UUID) (*domain.ReunionReport, error) {
	const op = "postgres.Reunion.Get"

	query := `SELECT ` + reunionColumns + ` FROM reunion_reports WHERE id = $1`

	row := p.pool.QueryRow(ctx, query, id)
	rep, err := scanReunion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return rep, nil
}

func (p *ReunionRepo) List(ctx context.Context, status string, page, limit int) ([]domain.ReunionReport, int64, error) {
	const op = "postgres.Reunion.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `
		SELECT COUNT(*)
		FROM reunion_reports
		WHERE ($1 = '' OR status = $1)
	`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, status).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `SELECT ` + reunionColumns + `
		FROM reunion_reports
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := p.pool.Query(ctx, listQuery, status, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	reports := make([]domain.ReunionReport, 0, 16)
	for rows.Next() {
		rep, err := scanReunion(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		reports = append(reports, *rep)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return reports, total, nil
}

// Validate moves a pending report to validated or rejected, stamping who
// decided and when. A report already resolved stays as it is.
func (p *ReunionRepo) Validate(ctx context.Context, id uuid.UUID, status domain.ReunionStatus, validatedBy, notes string) error {
	const op = "postgres.Reunion.Validate"

	const query = `
		UPDATE reunion_reports
		SET status           = $2,
			validated_by     = $3,
			validated_at     = NOW(),
			validation_notes = $4
		WHERE id = $1 AND status = $5
	`

	cmd, err := p.pool.Exec(ctx, query, id, status, validatedBy, notes, domain.ReunionPending)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func scanReunion(row pgx.Row) (*domain.ReunionReport, error) {
	var (
		rep         domain.ReunionReport
		message     *string
		validatedBy *string
		notes       *string
	)

	err := row.Scan(
		&rep.ID,
		&rep.SightingID,
		&rep.VerificationImageURL,
		&message,
		&rep.Status,
		&validatedBy,
		&rep.ValidatedAt,
		&notes,
		&rep.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rep.Message = deref(message)
	rep.ValidatedBy = deref(validatedBy)
	rep.ValidationNotes = deref(notes)

	return &rep, nil
}
