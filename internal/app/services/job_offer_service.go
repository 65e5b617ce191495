package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/app/models/dto"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
)

// JobOfferService defines the interface for job offer operations
type JobOfferService interface {
	Create(ctx context.Context, req *dto.JobOfferRequest) (*models.JobOffer, error)
	GetByID(ctx context.Context, id int64) (*models.JobOffer, error)
	List(ctx context.Context) ([]*models.JobOffer, error)
	Update(ctx context.Context, id int64, req *dto.JobOfferUpdateRequest) (*models.JobOffer, error)
	Delete(ctx context.Context, id int64) error
}

type jobOfferServiceImpl struct {
	offers JobOfferRepository
	now    Clock
}

// NewJobOfferService creates a new job offer service instance
func NewJobOfferService(offers JobOfferRepository, now Clock) JobOfferService {
	return &jobOfferServiceImpl{offers: offers, now: now}
}

func validateJobOffer(offer *models.JobOffer) error {
	if strings.TrimSpace(offer.Titulo) == "" {
		return fmt.Errorf("%w: titulo cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(offer.Descripcion) == "" {
		return fmt.Errorf("%w: descripcion cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *jobOfferServiceImpl) Create(ctx context.Context, req *dto.JobOfferRequest) (*models.JobOffer, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: job offer is nil", apperrors.ErrValidationFailed)
	}

	offer := &models.JobOffer{
		Titulo:           strings.TrimSpace(req.Titulo),
		Descripcion:      req.Descripcion,
		Requisitos:       req.Requisitos,
		FechaPublicacion: models.NewDate(s.now()),
	}
	if req.FechaPublicacion != nil && *req.FechaPublicacion != "" {
		published, err := parseDateField("fecha_publicacion", *req.FechaPublicacion)
		if err != nil {
			return nil, err
		}
		offer.FechaPublicacion = published
	}
	if err := validateJobOffer(offer); err != nil {
		return nil, err
	}

	id, err := s.offers.Create(ctx, offer)
	if err != nil {
		return nil, err
	}
	offer.ID = id
	return offer, nil
}

func (s *jobOfferServiceImpl) GetByID(ctx context.Context, id int64) (*models.JobOffer, error) {
	if id <= 0 {
		return nil, apperrors.ErrJobOfferNotFound
	}
	return s.offers.GetByID(ctx, id)
}

func (s *jobOfferServiceImpl) List(ctx context.Context) ([]*models.JobOffer, error) {
	return s.offers.List(ctx)
}

func (s *jobOfferServiceImpl) Update(ctx context.Context, id int64, req *dto.JobOfferUpdateRequest) (*models.JobOffer, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: job offer update is nil", apperrors.ErrValidationFailed)
	}

	offer, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Titulo != nil {
		offer.Titulo = strings.TrimSpace(*req.Titulo)
	}
	if req.Descripcion != nil {
		offer.Descripcion = *req.Descripcion
	}
	if req.Requisitos != nil {
		offer.Requisitos = req.Requisitos
	}
	if req.FechaPublicacion != nil {
		if offer.FechaPublicacion, err = parseDateField("fecha_publicacion", *req.FechaPublicacion); err != nil {
			return nil, err
		}
	}

	if err := validateJobOffer(offer); err != nil {
		return nil, err
	}
	if err := s.offers.Update(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// Delete removes the offer; its applications are removed with it
func (s *jobOfferServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrJobOfferNotFound
	}
	return s.offers.Delete(ctx, id)
}
