package dto

import "github.com/santamartha/hrportal/internal/app/models"

// CourseRequest represents the body of a course creation
type CourseRequest struct {
	Titulo        string `json:"titulo" binding:"required,notblank,max=150" example:"Farmacovigilancia"`
	Descripcion   string `json:"descripcion" example:"Notificación de reacciones adversas"`
	DuracionHoras int    `json:"duracion_horas" binding:"required,gt=0" example:"20"`
	FechaInicio   string `json:"fecha_inicio" binding:"required,isodate" example:"2025-05-01"`
	FechaFin      string `json:"fecha_fin" binding:"required,isodate" example:"2025-05-31"`
	Instructor    string `json:"instructor" binding:"required,max=255" example:"Dra. Ruiz"`
	CupoMaximo    int    `json:"cupo_maximo" binding:"required,gt=0" example:"30"`
	Estado        string `json:"estado" binding:"omitempty,oneof=activo inactivo" example:"activo"`
}

// CourseUpdateRequest is a partial course update; absent fields keep their value
type CourseUpdateRequest struct {
	Titulo        *string `json:"titulo" binding:"omitempty,min=1,max=150"`
	Descripcion   *string `json:"descripcion"`
	DuracionHoras *int    `json:"duracion_horas" binding:"omitempty,gt=0"`
	FechaInicio   *string `json:"fecha_inicio" binding:"omitempty,isodate"`
	FechaFin      *string `json:"fecha_fin" binding:"omitempty,isodate"`
	Instructor    *string `json:"instructor" binding:"omitempty,min=1,max=255"`
	CupoMaximo    *int    `json:"cupo_maximo" binding:"omitempty,gt=0"`
	Estado        *string `json:"estado" binding:"omitempty,oneof=activo inactivo"`
}

// CourseResponse wraps a created or updated course
type CourseResponse struct {
	Message string         `json:"message" example:"Curso creado exitosamente"`
	Curso   *models.Course `json:"curso"`
}

// CourseListResponse wraps the course catalog
type CourseListResponse struct {
	Cursos []*models.Course `json:"cursos"`
}
