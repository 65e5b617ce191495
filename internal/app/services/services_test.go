package services

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/app/models/dto"
	"github.com/santamartha/hrportal/internal/app/repositories"
	"github.com/santamartha/hrportal/internal/app/repositories/memstore"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
	"github.com/santamartha/hrportal/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

var fixedNow = time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)

type fixture struct {
	svc    *Services
	store  *memstore.Store
	tokens *auth.TokenService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	tokens := auth.NewTokenService(auth.TokenConfig{SecretKey: "test-secret", Issuer: "test"})
	svc := NewServices(Stores{
		Users:        store.Users(),
		Courses:      store.Courses(),
		JobOffers:    store.JobOffers(),
		Enrollments:  store.Enrollments(),
		Applications: store.Applications(),
	}, tokens, auth.BcryptHasher{Cost: bcrypt.MinCost}, func() time.Time { return fixedNow })
	return &fixture{svc: svc, store: store, tokens: tokens}
}

func (f *fixture) signup(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := f.svc.Auth.Signup(context.Background(), &dto.SignupRequest{
		Username: username, Email: username + "@farmacia.com", Password: "secreto", ConfirmPassword: "secreto",
	}, nil)
	require.NoError(t, err)
	return user
}

func (f *fixture) course(t *testing.T) *models.Course {
	t.Helper()
	course, err := f.svc.Courses.Create(context.Background(), &dto.CourseRequest{
		Titulo: "Farmacovigilancia", DuracionHoras: 20, FechaInicio: "2025-05-01", FechaFin: "2025-05-31",
		Instructor: "Dra. Ruiz", CupoMaximo: 30,
	})
	require.NoError(t, err)
	return course
}

func TestSignup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.signup(t, "ana")
	assert.Equal(t, models.RoleUsuario, user.Role)
	assert.NotEqual(t, "secreto", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secreto")))

	_, err := f.svc.Auth.Signup(ctx, &dto.SignupRequest{
		Username: "ana", Email: "otra@farmacia.com", Password: "x", ConfirmPassword: "x",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)

	_, err = f.svc.Auth.Signup(ctx, &dto.SignupRequest{
		Username: "bea", Email: "bea@farmacia.com", Password: "uno", ConfirmPassword: "dos",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

}

func TestAdminSignupNeedsAnAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := func(username string) *dto.SignupRequest {
		return &dto.SignupRequest{
			Username: username, Email: username + "@farmacia.com", Password: "x", ConfirmPassword: "x", Role: models.RoleAdmin,
		}
	}

	_, err := f.svc.Auth.Signup(ctx, req("mallory"), nil)
	assert.ErrorIs(t, err, apperrors.ErrAdminSignupForbidden)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	ana := f.signup(t, "ana")
	_, err = f.svc.Auth.Signup(ctx, req("mallory"), ana)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, lookupErr := f.store.Users().FindByUsername(ctx, "mallory")
	assert.ErrorIs(t, lookupErr, apperrors.ErrUserNotFound)

	jefa, err := f.store.Users().Create(ctx, &models.User{
		Username: "jefa", Email: "jefa@farmacia.com", Password: "hash", Role: models.RoleAdmin,
	})
	require.NoError(t, err)

	admin, err := f.svc.Auth.Signup(ctx, req("segunda"), jefa)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
}

func TestConcurrentDuplicateSignupHasOneWinner(t *testing.T) {
	f := newFixture(t)
	const attempts = 16

	errs := make([]error, attempts)
	var g errgroup.Group
	for i := 0; i < attempts; i++ {
		i := i
		g.Go(func() error {
			_, errs[i] = f.svc.Auth.Signup(context.Background(), &dto.SignupRequest{
				Username:        "ana",
				Email:           fmt.Sprintf("ana%d@farmacia.com", i),
				Password:        "secreto",
				ConfirmPassword: "secreto",
			}, nil)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)
	}
	assert.Equal(t, 1, successes)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.signup(t, "ana")

	resp, err := f.svc.Auth.Login(ctx, &dto.LoginRequest{Username: "ana", Password: "secreto"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, ana.ID, resp.UserID)

	userID, err := f.tokens.Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, ana.ID, userID)

	_, wrongPassword := f.svc.Auth.Login(ctx, &dto.LoginRequest{Username: "ana", Password: "otra"})
	_, unknownUser := f.svc.Auth.Login(ctx, &dto.LoginRequest{Username: "nadie", Password: "secreto"})
	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser)

	padded, err := f.svc.Auth.Login(ctx, &dto.LoginRequest{Username: " ana ", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, ana.ID, padded.UserID)
}

func TestSignupTrimsUsernameForLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.svc.Auth.Signup(ctx, &dto.SignupRequest{
		Username: "ana ", Email: "ana@farmacia.com", Password: "secreto", ConfirmPassword: "secreto",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)

	resp, err := f.svc.Auth.Login(ctx, &dto.LoginRequest{Username: "ana ", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserID)
}

func TestEnrollment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.signup(t, "ana")
	bob := f.signup(t, "bob")
	course := f.course(t)

	enrollment, err := f.svc.Enrollments.Enroll(ctx, ana.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, enrollment.FechaInscripcion)

	_, err = f.svc.Enrollments.Enroll(ctx, ana.ID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)

	_, err = f.svc.Enrollments.Enroll(ctx, ana.ID, 999)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	assert.ErrorIs(t, f.svc.Enrollments.Cancel(ctx, bob.ID, enrollment.ID), apperrors.ErrEnrollmentNotFound)
	require.NoError(t, f.svc.Enrollments.Cancel(ctx, ana.ID, enrollment.ID))

	mine, err := f.svc.Enrollments.ListByUser(ctx, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestCourseDeleteRemovesEnrollments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.signup(t, "ana")
	course := f.course(t)

	_, err := f.svc.Enrollments.Enroll(ctx, ana.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Courses.Delete(ctx, course.ID))

	all, err := f.svc.Enrollments.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.signup(t, "ana")

	offer, err := f.svc.JobOffers.Create(ctx, &dto.JobOfferRequest{Titulo: "Auxiliar", Descripcion: "Turno tarde"})
	require.NoError(t, err)
	assert.Equal(t, "2025-04-02", offer.FechaPublicacion.String())

	_, err = f.svc.Applications.Apply(ctx, ana.ID, offer.ID)
	require.NoError(t, err)

	_, err = f.svc.Applications.Apply(ctx, ana.ID, offer.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)

	_, err = f.svc.Applications.Apply(ctx, ana.ID, offer.ID+1)
	assert.ErrorIs(t, err, apperrors.ErrJobOfferNotFound)

	require.NoError(t, f.svc.JobOffers.Delete(ctx, offer.ID))
	mine, err := f.svc.Applications.ListByUser(ctx, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestCourseValidation(t *testing.T) {
	f := newFixture(t)
	valid := dto.CourseRequest{
		Titulo: "GMP", DuracionHoras: 8, FechaInicio: "2025-05-01", FechaFin: "2025-05-02",
		Instructor: "Dr. Paz", CupoMaximo: 10,
	}

	tests := []struct {
		name   string
		mutate func(r *dto.CourseRequest)
	}{
		{"bad start date", func(r *dto.CourseRequest) { r.FechaInicio = "01/05/2025" }},
		{"end before start", func(r *dto.CourseRequest) { r.FechaFin = "2025-04-30" }},
		{"zero hours", func(r *dto.CourseRequest) { r.DuracionHoras = 0 }},
		{"negative capacity", func(r *dto.CourseRequest) { r.CupoMaximo = -1 }},
		{"unknown estado", func(r *dto.CourseRequest) { r.Estado = "cerrado" }},
		{"blank title", func(r *dto.CourseRequest) { r.Titulo = "  " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			_, err := f.svc.Courses.Create(context.Background(), &req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}

	course, err := f.svc.Courses.Create(context.Background(), &valid)
	require.NoError(t, err)
	assert.Equal(t, models.CourseActive, course.Estado)
}

func TestCoursePartialUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	course := f.course(t)

	estado := "inactivo"
	updated, err := f.svc.Courses.Update(ctx, course.ID, &dto.CourseUpdateRequest{Estado: &estado})
	require.NoError(t, err)
	assert.Equal(t, models.CourseInactive, updated.Estado)
	assert.Equal(t, course.Titulo, updated.Titulo)
	assert.Equal(t, course.FechaFin, updated.FechaFin)

	badEnd := "2025-01-01"
	_, err = f.svc.Courses.Update(ctx, course.ID, &dto.CourseUpdateRequest{FechaFin: &badEnd})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.svc.Courses.Update(ctx, course.ID+100, &dto.CourseUpdateRequest{Estado: &estado})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestReports(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.signup(t, "ana")
	course := f.course(t)
	_, err := f.svc.Enrollments.Enroll(ctx, ana.ID, course.ID)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.svc.Reports.WriteEnrollmentsCSV(ctx, &buf))
	assert.Equal(t,
		"Usuario,Correo,Curso,Fecha de Inscripción\nana,ana@farmacia.com,Farmacovigilancia,2025-04-02\n",
		buf.String())

	buf.Reset()
	require.NoError(t, f.svc.Reports.WriteApplicationsCSV(ctx, &buf))
	assert.Equal(t, "Usuario,Correo,Oferta,Fecha de Postulación\n", buf.String())
}

func TestUserDeleteInvalidatesProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.signup(t, "ana")

	require.NoError(t, f.svc.Users.Delete(ctx, ana.ID))
	_, err := f.svc.Users.GetProfile(ctx, ana.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.ErrorIs(t, f.svc.Users.Delete(ctx, ana.ID), apperrors.ErrUserNotFound)
}

// countOutcomes runs attempts concurrently and returns how many succeeded.
// Every failure must match want.
func countOutcomes(t *testing.T, attempts int, want error, fn func() error) int {
	t.Helper()
	errs := make([]error, attempts)
	var g errgroup.Group
	for i := 0; i < attempts; i++ {
		i := i
		g.Go(func() error {
			errs[i] = fn()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, want)
	}
	return successes
}

func TestConcurrentDuplicateEnrollHasOneWinner(t *testing.T) {
	f := newFixture(t)
	ana := f.signup(t, "ana")
	course := f.course(t)

	successes := countOutcomes(t, 32, apperrors.ErrAlreadyEnrolled, func() error {
		_, err := f.svc.Enrollments.Enroll(context.Background(), ana.ID, course.ID)
		return err
	})
	assert.Equal(t, 1, successes)

	all, err := f.svc.Enrollments.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestConcurrentDuplicateApplyHasOneWinner(t *testing.T) {
	f := newFixture(t)
	ana := f.signup(t, "ana")
	offer, err := f.svc.JobOffers.Create(context.Background(), &dto.JobOfferRequest{Titulo: "Auxiliar", Descripcion: "Turno tarde"})
	require.NoError(t, err)

	successes := countOutcomes(t, 32, apperrors.ErrAlreadyApplied, func() error {
		_, err := f.svc.Applications.Apply(context.Background(), ana.ID, offer.ID)
		return err
	})
	assert.Equal(t, 1, successes)

	mine, err := f.svc.Applications.ListByUser(context.Background(), ana.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

// The existence check passes, then the unique constraint rejects the insert
// because a concurrent request committed first.
func TestDuplicateDetectedByPostgresConstraint(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	newPool := func(t *testing.T) pgxmock.PgxPoolIface {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		t.Cleanup(mock.Close)
		return mock
	}

	t.Run("enrollment", func(t *testing.T) {
		mock := newPool(t)
		mock.ExpectQuery("FROM courses WHERE id").
			WithArgs(int64(2)).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "titulo", "descripcion", "duracion_horas", "fecha_inicio",
				"fecha_fin", "instructor", "cupo_maximo", "estado",
			}).AddRow(int64(2), "GMP", "Buenas prácticas", 8, start, end, "Dr. Paz", 10, "activo"))
		mock.ExpectQuery("INSERT INTO enrollments").
			WithArgs(int64(1), int64(2), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "enrollments_user_course_key"})

		svc := NewEnrollmentService(repositories.NewEnrollmentRepository(mock), repositories.NewCourseRepository(mock),
			func() time.Time { return fixedNow })
		_, err := svc.Enroll(ctx, 1, 2)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("application", func(t *testing.T) {
		mock := newPool(t)
		mock.ExpectQuery("FROM job_offers WHERE id").
			WithArgs(int64(4)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "titulo", "descripcion", "requisitos", "fecha_publicacion"}).
				AddRow(int64(4), "Auxiliar", "Turno tarde", "Bachiller", start))
		mock.ExpectQuery("INSERT INTO applications").
			WithArgs(int64(1), int64(4), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "applications_user_offer_key"})

		svc := NewApplicationService(repositories.NewApplicationRepository(mock), repositories.NewJobOfferRepository(mock),
			func() time.Time { return fixedNow })
		_, err := svc.Apply(ctx, 1, 4)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
