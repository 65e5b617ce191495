package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/app/models/dto"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	Create(ctx context.Context, req *dto.CourseRequest) (*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, id int64, req *dto.CourseUpdateRequest) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	courses CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseRepository) CourseService {
	return &courseServiceImpl{courses: courses}
}

func parseDateField(field, value string) (models.Date, error) {
	d, err := models.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return models.Date{}, fmt.Errorf("%w: %s: %v", apperrors.ErrValidationFailed, field, err)
	}
	return d, nil
}

// validateCourse checks a fully populated course before it is written
func validateCourse(course *models.Course) error {
	if strings.TrimSpace(course.Titulo) == "" {
		return fmt.Errorf("%w: titulo cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Instructor) == "" {
		return fmt.Errorf("%w: instructor cannot be empty", apperrors.ErrValidationFailed)
	}
	if course.DuracionHoras <= 0 {
		return fmt.Errorf("%w: duracion_horas must be positive", apperrors.ErrValidationFailed)
	}
	if course.CupoMaximo <= 0 {
		return fmt.Errorf("%w: cupo_maximo must be positive", apperrors.ErrValidationFailed)
	}
	if !course.Estado.Valid() {
		return fmt.Errorf("%w: estado must be activo or inactivo", apperrors.ErrValidationFailed)
	}
	if course.FechaFin.Before(course.FechaInicio.Time) {
		return fmt.Errorf("%w: fecha_fin cannot be before fecha_inicio", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *courseServiceImpl) Create(ctx context.Context, req *dto.CourseRequest) (*models.Course, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	start, err := parseDateField("fecha_inicio", req.FechaInicio)
	if err != nil {
		return nil, err
	}
	end, err := parseDateField("fecha_fin", req.FechaFin)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		Titulo:        strings.TrimSpace(req.Titulo),
		Descripcion:   req.Descripcion,
		DuracionHoras: req.DuracionHoras,
		FechaInicio:   start,
		FechaFin:      end,
		Instructor:    strings.TrimSpace(req.Instructor),
		CupoMaximo:    req.CupoMaximo,
		Estado:        models.CourseStatus(req.Estado),
	}
	if course.Estado == "" {
		course.Estado = models.CourseActive
	}
	if err := validateCourse(course); err != nil {
		return nil, err
	}

	id, err := s.courses.Create(ctx, course)
	if err != nil {
		return nil, err
	}
	course.ID = id
	return course, nil
}

func (s *courseServiceImpl) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	return s.courses.GetByID(ctx, id)
}

func (s *courseServiceImpl) List(ctx context.Context) ([]*models.Course, error) {
	return s.courses.List(ctx)
}

// Update applies the fields present in req and rewrites the course
func (s *courseServiceImpl) Update(ctx context.Context, id int64, req *dto.CourseUpdateRequest) (*models.Course, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: course update is nil", apperrors.ErrValidationFailed)
	}

	course, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Titulo != nil {
		course.Titulo = strings.TrimSpace(*req.Titulo)
	}
	if req.Descripcion != nil {
		course.Descripcion = *req.Descripcion
	}
	if req.DuracionHoras != nil {
		course.DuracionHoras = *req.DuracionHoras
	}
	if req.FechaInicio != nil {
		if course.FechaInicio, err = parseDateField("fecha_inicio", *req.FechaInicio); err != nil {
			return nil, err
		}
	}
	if req.FechaFin != nil {
		if course.FechaFin, err = parseDateField("fecha_fin", *req.FechaFin); err != nil {
			return nil, err
		}
	}
	if req.Instructor != nil {
		course.Instructor = strings.TrimSpace(*req.Instructor)
	}
	if req.CupoMaximo != nil {
		course.CupoMaximo = *req.CupoMaximo
	}
	if req.Estado != nil {
		course.Estado = models.CourseStatus(*req.Estado)
	}

	if err := validateCourse(course); err != nil {
		return nil, err
	}
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes the course; its enrollments are removed with it
func (s *courseServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrCourseNotFound
	}
	return s.courses.Delete(ctx, id)
}
