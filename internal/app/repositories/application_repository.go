package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/db"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
	"github.com/santamartha/hrportal/internal/pkg/dberrors"
	"github.com/santamartha/hrportal/internal/pkg/logger"
)

const (
	constraintApplicationUserOffer = "applications_user_offer_key"
	constraintApplicationOffer     = "applications_job_offer_id_fkey"
	constraintApplicationUser      = "applications_user_id_fkey"
)

// ApplicationRepository handles job application database operations
type ApplicationRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(conn db.DBTX) *ApplicationRepository {
	return &ApplicationRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an application. The (user, offer) pair is unique at the storage level.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) (int64, error) {
	sql, args, err := r.sb.Insert("applications").
		Columns("user_id", "job_offer_id", "fecha_postulacion").
		Values(application.UserID, application.JobOfferID, application.FechaPostulacion).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create application SQL")
		return 0, fmt.Errorf("failed to build create application query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, constraintApplicationUserOffer):
			return 0, apperrors.ErrAlreadyApplied
		case dberrors.IsForeignKeyError(err, constraintApplicationOffer):
			return 0, apperrors.ErrJobOfferNotFound
		case dberrors.IsForeignKeyError(err, constraintApplicationUser):
			return 0, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).
			Int64("userID", application.UserID).
			Int64("offerID", application.JobOfferID).
			Msg("Error executing create application query")
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	return id, nil
}

// DeleteOwned removes an application only when it belongs to userID
func (r *ApplicationRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	sql, args, err := r.sb.Delete("applications").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete application SQL")
		return fmt.Errorf("failed to build delete application query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing delete application query")
		return fmt.Errorf("error deleting application: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// ListAll returns every application joined with its user and job offer
func (r *ApplicationRepository) ListAll(ctx context.Context) ([]*models.Application, error) {
	return r.list(ctx, nil)
}

// ListByUser returns the applications of one user joined with their job offers
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Application, error) {
	return r.list(ctx, squirrel.Eq{"a.user_id": userID})
}

func (r *ApplicationRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.Application, error) {
	query := r.sb.Select(
		"a.id", "a.user_id", "a.job_offer_id", "a.fecha_postulacion",
		"u.username", "u.email",
		"o.titulo", "o.descripcion",
	).
		From("applications a").
		Join("users u ON u.id = a.user_id").
		Join("job_offers o ON o.id = a.job_offer_id").
		OrderBy("a.fecha_postulacion DESC", "a.id DESC")
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list applications SQL")
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list applications query")
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	applications := []*models.Application{}
	for rows.Next() {
		a := &models.Application{User: &models.User{}, JobOffer: &models.JobOffer{}}
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.JobOfferID, &a.FechaPostulacion,
			&a.User.Username, &a.User.Email,
			&a.JobOffer.Titulo, &a.JobOffer.Descripcion,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning application row")
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		a.User.ID = a.UserID
		a.JobOffer.ID = a.JobOfferID
		applications = append(applications, a)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating application rows")
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return applications, nil
}
