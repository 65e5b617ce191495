package services

import (
	"context"
	"errors"

	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
	"github.com/santamartha/hrportal/internal/pkg/logger"
	"github.com/santamartha/hrportal/internal/pkg/metrics"
)

// EnrollmentService manages the user to course relationship
type EnrollmentService interface {
	Enroll(ctx context.Context, userID, courseID int64) (*models.Enrollment, error)
	Cancel(ctx context.Context, userID, enrollmentID int64) error
	ListAll(ctx context.Context) ([]*models.Enrollment, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error)
}

type enrollmentServiceImpl struct {
	enrollments EnrollmentRepository
	courses     CourseRepository
	now         Clock
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollments EnrollmentRepository, courses CourseRepository, now Clock) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollments: enrollments,
		courses:     courses,
		now:         now,
	}
}

// Enroll creates the (user, course) enrollment. A second attempt fails with
// ErrAlreadyEnrolled, decided by the store's uniqueness constraint.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, userID, courseID int64) (enrollment *models.Enrollment, err error) {
	defer func() { metrics.EnrollmentsTotal.WithLabelValues(metrics.Result(err)).Inc() }()

	if courseID <= 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	enrollment = &models.Enrollment{
		UserID:           userID,
		CourseID:         courseID,
		FechaInscripcion: s.now().UTC().Truncate(timestampPrecision),
	}
	id, err := s.enrollments.Create(ctx, enrollment)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyEnrolled) {
			return nil, apperrors.ErrAlreadyEnrolled.WithDetails(map[string]interface{}{"idCurso": courseID})
		}
		return nil, err
	}
	enrollment.ID = id

	logger.Info().Int64("userID", userID).Int64("courseID", courseID).Msg("User enrolled in course")
	return enrollment, nil
}

// Cancel deletes an enrollment owned by userID. Someone else's enrollment is reported as not found.
func (s *enrollmentServiceImpl) Cancel(ctx context.Context, userID, enrollmentID int64) error {
	if enrollmentID <= 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return s.enrollments.DeleteOwned(ctx, enrollmentID, userID)
}

func (s *enrollmentServiceImpl) ListAll(ctx context.Context) ([]*models.Enrollment, error) {
	return s.enrollments.ListAll(ctx)
}

func (s *enrollmentServiceImpl) ListByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error) {
	return s.enrollments.ListByUser(ctx, userID)
}
