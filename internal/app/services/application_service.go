package services

import (
	"context"
	"errors"
	"time"

	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
	"github.com/santamartha/hrportal/internal/pkg/logger"
	"github.com/santamartha/hrportal/internal/pkg/metrics"
)

// timestampPrecision matches Postgres TIMESTAMPTZ resolution
const timestampPrecision = time.Microsecond

// ApplicationService manages the user to job offer relationship
type ApplicationService interface {
	Apply(ctx context.Context, userID, offerID int64) (*models.Application, error)
	Cancel(ctx context.Context, userID, applicationID int64) error
	ListAll(ctx context.Context) ([]*models.Application, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Application, error)
}

type applicationServiceImpl struct {
	applications ApplicationRepository
	offers       JobOfferRepository
	now          Clock
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(applications ApplicationRepository, offers JobOfferRepository, now Clock) ApplicationService {
	return &applicationServiceImpl{
		applications: applications,
		offers:       offers,
		now:          now,
	}
}

// Apply creates the (user, offer) application, at most once per pair
func (s *applicationServiceImpl) Apply(ctx context.Context, userID, offerID int64) (application *models.Application, err error) {
	defer func() { metrics.ApplicationsTotal.WithLabelValues(metrics.Result(err)).Inc() }()

	if offerID <= 0 {
		return nil, apperrors.ErrJobOfferNotFound
	}
	if _, err := s.offers.GetByID(ctx, offerID); err != nil {
		return nil, err
	}

	application = &models.Application{
		UserID:           userID,
		JobOfferID:       offerID,
		FechaPostulacion: s.now().UTC().Truncate(timestampPrecision),
	}
	id, err := s.applications.Create(ctx, application)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyApplied) {
			return nil, apperrors.ErrAlreadyApplied.WithDetails(map[string]interface{}{"idOferta": offerID})
		}
		return nil, err
	}
	application.ID = id

	logger.Info().Int64("userID", userID).Int64("offerID", offerID).Msg("User applied to job offer")
	return application, nil
}

// Cancel deletes an application owned by userID
func (s *applicationServiceImpl) Cancel(ctx context.Context, userID, applicationID int64) error {
	if applicationID <= 0 {
		return apperrors.ErrApplicationNotFound
	}
	return s.applications.DeleteOwned(ctx, applicationID, userID)
}

func (s *applicationServiceImpl) ListAll(ctx context.Context) ([]*models.Application, error) {
	return s.applications.ListAll(ctx)
}

func (s *applicationServiceImpl) ListByUser(ctx context.Context, userID int64) ([]*models.Application, error) {
	return s.applications.ListByUser(ctx, userID)
}
