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
	constraintEnrollmentUserCourse = "enrollments_user_course_key"
	constraintEnrollmentCourse     = "enrollments_course_id_fkey"
	constraintEnrollmentUser       = "enrollments_user_id_fkey"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(conn db.DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an enrollment. The (user, course) pair is unique at the storage level.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("user_id", "course_id", "fecha_inscripcion").
		Values(enrollment.UserID, enrollment.CourseID, enrollment.FechaInscripcion).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create enrollment SQL")
		return 0, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, constraintEnrollmentUserCourse):
			return 0, apperrors.ErrAlreadyEnrolled
		case dberrors.IsForeignKeyError(err, constraintEnrollmentCourse):
			return 0, apperrors.ErrCourseNotFound
		case dberrors.IsForeignKeyError(err, constraintEnrollmentUser):
			return 0, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).
			Int64("userID", enrollment.UserID).
			Int64("courseID", enrollment.CourseID).
			Msg("Error executing create enrollment query")
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}

	return id, nil
}

// DeleteOwned removes an enrollment only when it belongs to userID
func (r *EnrollmentRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	sql, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete enrollment SQL")
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error executing delete enrollment query")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// ListAll returns every enrollment joined with its user and course
func (r *EnrollmentRepository) ListAll(ctx context.Context) ([]*models.Enrollment, error) {
	return r.list(ctx, nil)
}

// ListByUser returns the enrollments of one user joined with their courses
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error) {
	return r.list(ctx, squirrel.Eq{"e.user_id": userID})
}

func (r *EnrollmentRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.Enrollment, error) {
	query := r.sb.Select(
		"e.id", "e.user_id", "e.course_id", "e.fecha_inscripcion",
		"u.username", "u.email",
		"c.titulo", "c.descripcion", "c.fecha_inicio", "c.fecha_fin",
	).
		From("enrollments e").
		Join("users u ON u.id = e.user_id").
		Join("courses c ON c.id = e.course_id").
		OrderBy("e.fecha_inscripcion DESC", "e.id DESC")
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list enrollments SQL")
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list enrollments query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		e := &models.Enrollment{User: &models.User{}, Course: &models.Course{}}
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.CourseID, &e.FechaInscripcion,
			&e.User.Username, &e.User.Email,
			&e.Course.Titulo, &e.Course.Descripcion, &e.Course.FechaInicio.Time, &e.Course.FechaFin.Time,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning enrollment row")
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		e.User.ID = e.UserID
		e.Course.ID = e.CourseID
		enrollments = append(enrollments, e)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating enrollment rows")
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}
