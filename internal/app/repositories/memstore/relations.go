package memstore

import (
	"context"
	"sort"

	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
)

// Enrollments implements enrollment storage
type Enrollments struct{ s *Store }

// Create inserts an enrollment, at most one per (user, course)
func (r *Enrollments) Create(_ context.Context, enrollment *models.Enrollment) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[enrollment.UserID]; !ok {
		return 0, apperrors.ErrUserNotFound
	}
	if _, ok := r.s.courses[enrollment.CourseID]; !ok {
		return 0, apperrors.ErrCourseNotFound
	}
	key := pair{enrollment.UserID, enrollment.CourseID}
	if _, exists := r.s.enrolledBy[key]; exists {
		return 0, apperrors.ErrAlreadyEnrolled
	}

	stored := *enrollment
	stored.ID = r.s.id("enrollments")
	stored.User, stored.Course = nil, nil
	r.s.enrollments[stored.ID] = stored
	r.s.enrolledBy[key] = stored.ID
	return stored.ID, nil
}

// DeleteOwned removes an enrollment only when it belongs to userID
func (r *Enrollments) DeleteOwned(_ context.Context, id, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.enrollments[id]
	if !ok || e.UserID != userID {
		return apperrors.ErrEnrollmentNotFound
	}
	r.s.deleteEnrollmentLocked(id)
	return nil
}

// ListAll returns every enrollment joined with its user and course
func (r *Enrollments) ListAll(_ context.Context) ([]*models.Enrollment, error) {
	return r.list(func(*models.Enrollment) bool { return true }), nil
}

// ListByUser returns the enrollments of one user
func (r *Enrollments) ListByUser(_ context.Context, userID int64) ([]*models.Enrollment, error) {
	return r.list(func(e *models.Enrollment) bool { return e.UserID == userID }), nil
}

func (r *Enrollments) list(keep func(*models.Enrollment) bool) []*models.Enrollment {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*models.Enrollment{}
	for _, id := range sortedKeys(r.s.enrollments) {
		e := r.s.enrollments[id]
		if !keep(&e) {
			continue
		}
		user := r.s.users[e.UserID]
		course := r.s.courses[e.CourseID]
		e.User, e.Course = &user, &course
		out = append(out, &e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].FechaInscripcion.Equal(out[j].FechaInscripcion) {
			return out[i].FechaInscripcion.After(out[j].FechaInscripcion)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// Applications implements job application storage
type Applications struct{ s *Store }

// Create inserts an application, at most one per (user, offer)
func (r *Applications) Create(_ context.Context, application *models.Application) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[application.UserID]; !ok {
		return 0, apperrors.ErrUserNotFound
	}
	if _, ok := r.s.offers[application.JobOfferID]; !ok {
		return 0, apperrors.ErrJobOfferNotFound
	}
	key := pair{application.UserID, application.JobOfferID}
	if _, exists := r.s.appliedBy[key]; exists {
		return 0, apperrors.ErrAlreadyApplied
	}

	stored := *application
	stored.ID = r.s.id("applications")
	stored.User, stored.JobOffer = nil, nil
	r.s.applications[stored.ID] = stored
	r.s.appliedBy[key] = stored.ID
	return stored.ID, nil
}

// DeleteOwned removes an application only when it belongs to userID
func (r *Applications) DeleteOwned(_ context.Context, id, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.applications[id]
	if !ok || a.UserID != userID {
		return apperrors.ErrApplicationNotFound
	}
	r.s.deleteApplicationLocked(id)
	return nil
}

// ListAll returns every application joined with its user and job offer
func (r *Applications) ListAll(_ context.Context) ([]*models.Application, error) {
	return r.list(func(*models.Application) bool { return true }), nil
}

// ListByUser returns the applications of one user
func (r *Applications) ListByUser(_ context.Context, userID int64) ([]*models.Application, error) {
	return r.list(func(a *models.Application) bool { return a.UserID == userID }), nil
}

func (r *Applications) list(keep func(*models.Application) bool) []*models.Application {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*models.Application{}
	for _, id := range sortedKeys(r.s.applications) {
		a := r.s.applications[id]
		if !keep(&a) {
			continue
		}
		user := r.s.users[a.UserID]
		offer := r.s.offers[a.JobOfferID]
		a.User, a.JobOffer = &user, &offer
		out = append(out, &a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].FechaPostulacion.Equal(out[j].FechaPostulacion) {
			return out[i].FechaPostulacion.After(out[j].FechaPostulacion)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
