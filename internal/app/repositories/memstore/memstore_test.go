package memstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, s *Store, name string) *models.User {
	t.Helper()
	u, err := s.Users().Create(context.Background(), &models.User{
		Username: name, Email: name + "@farmacia.com", Password: "hash", Role: models.RoleUsuario,
	})
	require.NoError(t, err)
	return u
}

func seedCourse(t *testing.T, s *Store) int64 {
	t.Helper()
	id, err := s.Courses().Create(context.Background(), &models.Course{
		Titulo: "GMP", DuracionHoras: 10, CupoMaximo: 20, Estado: models.CourseActive,
	})
	require.NoError(t, err)
	return id
}

func TestUsersUniqueness(t *testing.T) {
	s := New()
	ctx := context.Background()
	seedUser(t, s, "ana")

	_, err := s.Users().Create(ctx, &models.User{Username: "ana", Email: "other@farmacia.com"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)

	_, err = s.Users().Create(ctx, &models.User{Username: "bea", Email: "ana@farmacia.com"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)

	found, err := s.Users().FindByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ID)
}

func TestEnrollmentsUniquenessAndOwnership(t *testing.T) {
	s := New()
	ctx := context.Background()
	ana := seedUser(t, s, "ana")
	bob := seedUser(t, s, "bob")
	course := seedCourse(t, s)

	id, err := s.Enrollments().Create(ctx, &models.Enrollment{UserID: ana.ID, CourseID: course, FechaInscripcion: time.Now()})
	require.NoError(t, err)

	_, err = s.Enrollments().Create(ctx, &models.Enrollment{UserID: ana.ID, CourseID: course})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)

	_, err = s.Enrollments().Create(ctx, &models.Enrollment{UserID: ana.ID, CourseID: 404})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	assert.ErrorIs(t, s.Enrollments().DeleteOwned(ctx, id, bob.ID), apperrors.ErrEnrollmentNotFound)
	require.NoError(t, s.Enrollments().DeleteOwned(ctx, id, ana.ID))

	_, err = s.Enrollments().Create(ctx, &models.Enrollment{UserID: ana.ID, CourseID: course})
	assert.NoError(t, err, "cancelled enrollment can be recreated")
}

func TestCourseDeleteCascades(t *testing.T) {
	s := New()
	ctx := context.Background()
	ana := seedUser(t, s, "ana")
	course := seedCourse(t, s)
	other := seedCourse(t, s)

	_, err := s.Enrollments().Create(ctx, &models.Enrollment{UserID: ana.ID, CourseID: course})
	require.NoError(t, err)
	_, err = s.Enrollments().Create(ctx, &models.Enrollment{UserID: ana.ID, CourseID: other})
	require.NoError(t, err)

	require.NoError(t, s.Courses().Delete(ctx, course))

	rows, err := s.Enrollments().ListByUser(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, other, rows[0].CourseID)
}

func TestUserDeleteCascades(t *testing.T) {
	s := New()
	ctx := context.Background()
	ana := seedUser(t, s, "ana")
	course := seedCourse(t, s)
	offer, err := s.JobOffers().Create(ctx, &models.JobOffer{Titulo: "Auxiliar", Descripcion: "Turno tarde"})
	require.NoError(t, err)

	_, err = s.Enrollments().Create(ctx, &models.Enrollment{UserID: ana.ID, CourseID: course})
	require.NoError(t, err)
	_, err = s.Applications().Create(ctx, &models.Application{UserID: ana.ID, JobOfferID: offer})
	require.NoError(t, err)

	require.NoError(t, s.Users().Delete(ctx, ana.ID))

	enrollments, _ := s.Enrollments().ListAll(ctx)
	applications, _ := s.Applications().ListAll(ctx)
	assert.Empty(t, enrollments)
	assert.Empty(t, applications)

	again := seedUser(t, s, "ana")
	assert.NotEqual(t, ana.ID, again.ID, "ids are never reused")
}

func TestApplicationsListJoinsOffer(t *testing.T) {
	s := New()
	ctx := context.Background()
	ana := seedUser(t, s, "ana")
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		offer, err := s.JobOffers().Create(ctx, &models.JobOffer{Titulo: fmt.Sprintf("Oferta %d", i)})
		require.NoError(t, err)
		_, err = s.Applications().Create(ctx, &models.Application{
			UserID: ana.ID, JobOfferID: offer, FechaPostulacion: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	rows, err := s.Applications().ListByUser(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Oferta 2", rows[0].JobOffer.Titulo, "newest first")
	assert.Equal(t, "ana", rows[0].User.Username)
}
