package repositories

import (
	"github.com/santamartha/hrportal/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	CourseRepository      *CourseRepository
	JobOfferRepository    *JobOfferRepository
	EnrollmentRepository  *EnrollmentRepository
	ApplicationRepository *ApplicationRepository
}

// NewRepositories initializes all repositories over conn, which may be a pool or a transaction
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(conn),
		CourseRepository:      NewCourseRepository(conn),
		JobOfferRepository:    NewJobOfferRepository(conn),
		EnrollmentRepository:  NewEnrollmentRepository(conn),
		ApplicationRepository: NewApplicationRepository(conn),
	}
}
