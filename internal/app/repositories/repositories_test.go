package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestUserRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	user := &models.User{Username: "ana", Email: "ana@farmacia.com", Password: "hash", Role: models.RoleUsuario}

	t.Run("returns the stored user", func(t *testing.T) {
		mock := newMock(t)
		createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("ana", "ana@farmacia.com", "hash", "usuario").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

		created, err := NewUserRepository(mock).Create(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)
		assert.Equal(t, "ana", created.Username)
		assert.Zero(t, user.ID, "input must not be mutated")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"duplicate username", "users_username_key", apperrors.ErrDuplicateUsername},
		{"duplicate email", "users_email_key", apperrors.ErrDuplicateEmail},
		{"other unique constraint", "users_lower_username_idx", apperrors.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectQuery("INSERT INTO users").
				WithArgs("ana", "ana@farmacia.com", "hash", "usuario").
				WillReturnError(uniqueViolation(tt.constraint))

			_, err := NewUserRepository(mock).Create(ctx, user)
			require.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, apperrors.ErrConflict)
		})
	}

	t.Run("wraps driver errors", func(t *testing.T) {
		mock := newMock(t)
		boom := errors.New("connection reset")
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("ana", "ana@farmacia.com", "hash", "usuario").
			WillReturnError(boom)

		_, err := NewUserRepository(mock).Create(ctx, user)
		require.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestUserRepositoryFind(t *testing.T) {
	ctx := context.Background()

	t.Run("by username", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM users WHERE username").
			WithArgs("ana").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(int64(1), "ana", "ana@farmacia.com", "hash", "admin", time.Now()))

		user, err := NewUserRepository(mock).FindByUsername(ctx, "ana")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.True(t, user.IsAdmin())
	})

	t.Run("missing id", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM users WHERE id").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		_, err := NewUserRepository(mock).FindByID(ctx, 99)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserRepositoryDelete(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM users").WithArgs(int64(3)).WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := NewUserRepository(mock).Delete(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	t.Run("get by id", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM courses WHERE id").
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(courseColumns).
				AddRow(int64(1), "Farmacovigilancia", "Intro", 20, start, end, "Dra. Ruiz", 30, "activo"))

		course, err := NewCourseRepository(mock).GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Farmacovigilancia", course.Titulo)
		assert.Equal(t, "2024-05-31", course.FechaFin.String())
		assert.Equal(t, models.CourseActive, course.Estado)
	})

	t.Run("get missing", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM courses WHERE id").WithArgs(int64(2)).WillReturnError(pgx.ErrNoRows)

		_, err := NewCourseRepository(mock).GetByID(ctx, 2)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})

	t.Run("check violation is a validation error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO courses").
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "courses_dates_check"})

		_, err := NewCourseRepository(mock).Create(ctx, &models.Course{
			Titulo: "x", DuracionHoras: 1, CupoMaximo: 1, Estado: models.CourseActive,
			FechaInicio: models.NewDate(end), FechaFin: models.NewDate(start),
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec("DELETE FROM courses").WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, NewCourseRepository(mock).Delete(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEnrollmentRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	enrollment := &models.Enrollment{UserID: 1, CourseID: 2, FechaInscripcion: time.Now().UTC()}

	tests := []struct {
		name   string
		dbErr  error
		want   error
		wantID int64
	}{
		{name: "created", wantID: 10},
		{name: "already enrolled", dbErr: uniqueViolation("enrollments_user_course_key"), want: apperrors.ErrAlreadyEnrolled},
		{
			name:  "unknown course",
			dbErr: &pgconn.PgError{Code: "23503", ConstraintName: "enrollments_course_id_fkey"},
			want:  apperrors.ErrCourseNotFound,
		},
		{
			name:  "unknown user",
			dbErr: &pgconn.PgError{Code: "23503", ConstraintName: "enrollments_user_id_fkey"},
			want:  apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			exp := mock.ExpectQuery("INSERT INTO enrollments").WithArgs(int64(1), int64(2), pgxmock.AnyArg())
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(tt.wantID))
			}

			id, err := NewEnrollmentRepository(mock).Create(ctx, enrollment)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestEnrollmentRepositoryDeleteOwned(t *testing.T) {
	ctx := context.Background()

	t.Run("other user's row is not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec("DELETE FROM enrollments").
			WithArgs(int64(5), int64(2)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := NewEnrollmentRepository(mock).DeleteOwned(ctx, 5, 2)
		assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec("DELETE FROM enrollments").
			WithArgs(int64(5), int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, NewEnrollmentRepository(mock).DeleteOwned(ctx, 5, 1))
	})
}

func TestEnrollmentRepositoryListByUser(t *testing.T) {
	mock := newMock(t)
	at := time.Date(2024, 4, 2, 9, 30, 0, 0, time.UTC)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM enrollments e JOIN users u").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "course_id", "fecha_inscripcion", "username", "email",
			"titulo", "descripcion", "fecha_inicio", "fecha_fin",
		}).AddRow(int64(3), int64(1), int64(2), at, "ana", "ana@farmacia.com", "GMP", "Buenas prácticas", start, end))

	rows, err := NewEnrollmentRepository(mock).ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ana", rows[0].User.Username)
	assert.Equal(t, int64(2), rows[0].Course.ID)
	assert.Equal(t, "2024-05-01", rows[0].Course.FechaInicio.String())
}

func TestApplicationRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	application := &models.Application{UserID: 1, JobOfferID: 4, FechaPostulacion: time.Now().UTC()}

	t.Run("already applied", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO applications").
			WithArgs(int64(1), int64(4), pgxmock.AnyArg()).
			WillReturnError(uniqueViolation("applications_user_offer_key"))

		_, err := NewApplicationRepository(mock).Create(ctx, application)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
	})

	t.Run("unknown offer", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO applications").
			WithArgs(int64(1), int64(4), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "applications_job_offer_id_fkey"})

		_, err := NewApplicationRepository(mock).Create(ctx, application)
		assert.ErrorIs(t, err, apperrors.ErrJobOfferNotFound)
	})
}

func TestApplicationRepositoryDeleteOwned(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM applications").
		WithArgs(int64(8), int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := NewApplicationRepository(mock).DeleteOwned(context.Background(), 8, 1)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}
