package services

import (
	"context"
	"time"

	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/pkg/auth"
)

// Storage ports. Both the Postgres repositories and the in-memory store satisfy them.

// UserRepository is the credential store
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// CourseRepository stores courses
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// JobOfferRepository stores job offers
type JobOfferRepository interface {
	Create(ctx context.Context, offer *models.JobOffer) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.JobOffer, error)
	List(ctx context.Context) ([]*models.JobOffer, error)
	Update(ctx context.Context, offer *models.JobOffer) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentRepository stores enrollments
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) (int64, error)
	DeleteOwned(ctx context.Context, id, userID int64) error
	ListAll(ctx context.Context) ([]*models.Enrollment, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error)
}

// ApplicationRepository stores job applications
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) (int64, error)
	DeleteOwned(ctx context.Context, id, userID int64) error
	ListAll(ctx context.Context) ([]*models.Application, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Application, error)
}

// TokenIssuer signs access tokens
type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

// Stores groups the storage ports
type Stores struct {
	Users        UserRepository
	Courses      CourseRepository
	JobOffers    JobOfferRepository
	Enrollments  EnrollmentRepository
	Applications ApplicationRepository
}

// Services holds all the service instances
type Services struct {
	Auth         AuthService
	Users        UserService
	Courses      CourseService
	JobOffers    JobOfferService
	Enrollments  EnrollmentService
	Applications ApplicationService
	Reports      ReportService
}

// Clock returns the current time; tests replace it
type Clock func() time.Time

// NewServices wires every service over stores
func NewServices(stores Stores, tokens TokenIssuer, hasher auth.PasswordHasher, now Clock) *Services {
	if now == nil {
		now = time.Now
	}
	return &Services{
		Auth:         NewAuthService(stores.Users, tokens, hasher),
		Users:        NewUserService(stores.Users),
		Courses:      NewCourseService(stores.Courses),
		JobOffers:    NewJobOfferService(stores.JobOffers, now),
		Enrollments:  NewEnrollmentService(stores.Enrollments, stores.Courses, now),
		Applications: NewApplicationService(stores.Applications, stores.JobOffers, now),
		Reports:      NewReportService(stores.Enrollments, stores.Applications),
	}
}
