package memstore

import (
	"context"
	"sort"

	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
)

// Courses implements course storage
type Courses struct{ s *Store }

// Create inserts a course and returns its ID
func (r *Courses) Create(_ context.Context, course *models.Course) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *course
	stored.ID = r.s.id("courses")
	r.s.courses[stored.ID] = stored
	return stored.ID, nil
}

// GetByID retrieves a course by ID
func (r *Courses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	course, ok := r.s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return &course, nil
}

// List returns all courses ordered by ID
func (r *Courses) List(_ context.Context) ([]*models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	courses := make([]*models.Course, 0, len(r.s.courses))
	for _, id := range sortedKeys(r.s.courses) {
		course := r.s.courses[id]
		courses = append(courses, &course)
	}
	return courses, nil
}

// Update replaces an existing course
func (r *Courses) Update(_ context.Context, course *models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	r.s.courses[course.ID] = *course
	return nil
}

// Delete removes a course and its enrollments
func (r *Courses) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for eid, e := range r.s.enrollments {
		if e.CourseID == id {
			r.s.deleteEnrollmentLocked(eid)
		}
	}
	delete(r.s.courses, id)
	return nil
}

// JobOffers implements job offer storage
type JobOffers struct{ s *Store }

// Create inserts a job offer and returns its ID
func (r *JobOffers) Create(_ context.Context, offer *models.JobOffer) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *offer
	stored.ID = r.s.id("job_offers")
	r.s.offers[stored.ID] = stored
	return stored.ID, nil
}

// GetByID retrieves a job offer by ID
func (r *JobOffers) GetByID(_ context.Context, id int64) (*models.JobOffer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	offer, ok := r.s.offers[id]
	if !ok {
		return nil, apperrors.ErrJobOfferNotFound
	}
	return &offer, nil
}

// List returns all job offers, newest publication first
func (r *JobOffers) List(_ context.Context) ([]*models.JobOffer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	offers := make([]*models.JobOffer, 0, len(r.s.offers))
	for _, id := range sortedKeys(r.s.offers) {
		offer := r.s.offers[id]
		offers = append(offers, &offer)
	}
	sort.SliceStable(offers, func(i, j int) bool {
		a, b := offers[i], offers[j]
		if !a.FechaPublicacion.Equal(b.FechaPublicacion.Time) {
			return a.FechaPublicacion.After(b.FechaPublicacion.Time)
		}
		return a.ID > b.ID
	})
	return offers, nil
}

// Update replaces an existing job offer
func (r *JobOffers) Update(_ context.Context, offer *models.JobOffer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.offers[offer.ID]; !ok {
		return apperrors.ErrJobOfferNotFound
	}
	r.s.offers[offer.ID] = *offer
	return nil
}

// Delete removes a job offer and its applications
func (r *JobOffers) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.offers[id]; !ok {
		return apperrors.ErrJobOfferNotFound
	}
	for aid, a := range r.s.applications {
		if a.JobOfferID == id {
			r.s.deleteApplicationLocked(aid)
		}
	}
	delete(r.s.offers, id)
	return nil
}
