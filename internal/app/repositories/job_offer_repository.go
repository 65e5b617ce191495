package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/db"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
	"github.com/santamartha/hrportal/internal/pkg/logger"
)

var jobOfferColumns = []string{"id", "titulo", "descripcion", "requisitos", "fecha_publicacion"}

// JobOfferRepository handles job offer database operations
type JobOfferRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewJobOfferRepository creates a new JobOfferRepository
func NewJobOfferRepository(conn db.DBTX) *JobOfferRepository {
	return &JobOfferRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanJobOffer(row pgx.Row) (*models.JobOffer, error) {
	offer := &models.JobOffer{}
	err := row.Scan(&offer.ID, &offer.Titulo, &offer.Descripcion, &offer.Requisitos, &offer.FechaPublicacion.Time)
	if err != nil {
		return nil, err
	}
	return offer, nil
}

// Create inserts a job offer and returns its ID
func (r *JobOfferRepository) Create(ctx context.Context, offer *models.JobOffer) (int64, error) {
	sql, args, err := r.sb.Insert("job_offers").
		Columns("titulo", "descripcion", "requisitos", "fecha_publicacion").
		Values(offer.Titulo, offer.Descripcion, offer.Requisitos, offer.FechaPublicacion.Time).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create job offer SQL")
		return 0, fmt.Errorf("failed to build create job offer query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create job offer query")
		return 0, fmt.Errorf("error creating job offer: %w", err)
	}

	return id, nil
}

// GetByID retrieves a job offer by ID
func (r *JobOfferRepository) GetByID(ctx context.Context, id int64) (*models.JobOffer, error) {
	sql, args, err := r.sb.Select(jobOfferColumns...).
		From("job_offers").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get job offer by ID SQL")
		return nil, fmt.Errorf("failed to build get job offer query: %w", err)
	}

	offer, err := scanJobOffer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobOfferNotFound
		}
		logger.Error().Err(err).Int64("offerID", id).Msg("Error scanning job offer row")
		return nil, fmt.Errorf("error getting job offer by ID: %w", err)
	}

	return offer, nil
}

// List retrieves all job offers, newest publication first
func (r *JobOfferRepository) List(ctx context.Context) ([]*models.JobOffer, error) {
	sql, args, err := r.sb.Select(jobOfferColumns...).
		From("job_offers").
		OrderBy("fecha_publicacion DESC", "id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list job offers SQL")
		return nil, fmt.Errorf("failed to build list job offers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list job offers query")
		return nil, fmt.Errorf("error querying job offers: %w", err)
	}
	defer rows.Close()

	offers := []*models.JobOffer{}
	for rows.Next() {
		offer, err := scanJobOffer(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning job offer row during list")
			return nil, fmt.Errorf("error scanning job offer row: %w", err)
		}
		offers = append(offers, offer)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating job offer rows")
		return nil, fmt.Errorf("error iterating job offer rows: %w", err)
	}

	return offers, nil
}

// Update overwrites every mutable column of an existing job offer
func (r *JobOfferRepository) Update(ctx context.Context, offer *models.JobOffer) error {
	sql, args, err := r.sb.Update("job_offers").
		SetMap(map[string]interface{}{
			"titulo":            offer.Titulo,
			"descripcion":       offer.Descripcion,
			"requisitos":        offer.Requisitos,
			"fecha_publicacion": offer.FechaPublicacion.Time,
		}).
		Where(squirrel.Eq{"id": offer.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update job offer SQL")
		return fmt.Errorf("failed to build update job offer query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("offerID", offer.ID).Msg("Error executing update job offer query")
		return fmt.Errorf("error updating job offer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobOfferNotFound
	}

	return nil
}

// Delete removes a job offer. Its applications are removed by ON DELETE CASCADE.
func (r *JobOfferRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("job_offers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete job offer SQL")
		return fmt.Errorf("failed to build delete job offer query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("offerID", id).Msg("Error executing delete job offer query")
		return fmt.Errorf("error deleting job offer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobOfferNotFound
	}

	return nil
}
