// Package memstore is an in-process storage backend. It enforces the same
// uniqueness and cascade rules as the Postgres schema under a single mutex.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
)

type pair struct {
	userID, targetID int64
}

// Store holds every table in memory
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	nextID map[string]int64

	users        map[int64]models.User
	usernames    map[string]int64
	emails       map[string]int64
	courses      map[int64]models.Course
	offers       map[int64]models.JobOffer
	enrollments  map[int64]models.Enrollment
	enrolledBy   map[pair]int64
	applications map[int64]models.Application
	appliedBy    map[pair]int64
}

// New creates an empty store
func New() *Store {
	return &Store{
		now:          time.Now,
		nextID:       map[string]int64{},
		users:        map[int64]models.User{},
		usernames:    map[string]int64{},
		emails:       map[string]int64{},
		courses:      map[int64]models.Course{},
		offers:       map[int64]models.JobOffer{},
		enrollments:  map[int64]models.Enrollment{},
		enrolledBy:   map[pair]int64{},
		applications: map[int64]models.Application{},
		appliedBy:    map[pair]int64{},
	}
}

// Ping always succeeds
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op
func (s *Store) Close() {}

// Users returns the credential store view
func (s *Store) Users() *Users { return &Users{s} }

// Courses returns the course table view
func (s *Store) Courses() *Courses { return &Courses{s} }

// JobOffers returns the job offer table view
func (s *Store) JobOffers() *JobOffers { return &JobOffers{s} }

// Enrollments returns the enrollment table view
func (s *Store) Enrollments() *Enrollments { return &Enrollments{s} }

// Applications returns the application table view
func (s *Store) Applications() *Applications { return &Applications{s} }

// id must be called with mu held
func (s *Store) id(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

// deleteEnrollmentLocked must be called with mu held
func (s *Store) deleteEnrollmentLocked(id int64) {
	e, ok := s.enrollments[id]
	if !ok {
		return
	}
	delete(s.enrolledBy, pair{e.UserID, e.CourseID})
	delete(s.enrollments, id)
}

// deleteApplicationLocked must be called with mu held
func (s *Store) deleteApplicationLocked(id int64) {
	a, ok := s.applications[id]
	if !ok {
		return
	}
	delete(s.appliedBy, pair{a.UserID, a.JobOfferID})
	delete(s.applications, id)
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Users implements the credential store
type Users struct{ s *Store }

// Create inserts a user, rejecting a taken username or email
func (r *Users) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.usernames[user.Username]; taken {
		return nil, apperrors.ErrDuplicateUsername
	}
	if _, taken := r.s.emails[user.Email]; taken {
		return nil, apperrors.ErrDuplicateEmail
	}

	created := *user
	created.ID = r.s.id("users")
	created.CreatedAt = r.s.now().UTC()
	r.s.users[created.ID] = created
	r.s.usernames[created.Username] = created.ID
	r.s.emails[created.Email] = created.ID

	return &created, nil
}

// FindByID retrieves a user by ID
func (r *Users) FindByID(_ context.Context, id int64) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

// FindByUsername retrieves a user by username
func (r *Users) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.usernames[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	user := r.s.users[id]
	return &user, nil
}

// Delete removes a user together with their enrollments and applications
func (r *Users) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	for eid, e := range r.s.enrollments {
		if e.UserID == id {
			r.s.deleteEnrollmentLocked(eid)
		}
	}
	for aid, a := range r.s.applications {
		if a.UserID == id {
			r.s.deleteApplicationLocked(aid)
		}
	}
	delete(r.s.usernames, user.Username)
	delete(r.s.emails, user.Email)
	delete(r.s.users, id)
	return nil
}
