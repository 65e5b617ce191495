package dto

import "github.com/santamartha/hrportal/internal/app/models"

// EnrollmentTimestampLayout renders fecha_inscripcion in a user's own listing
const EnrollmentTimestampLayout = "2006-01-02 15:04"

// EnrollRequest represents a course enrollment
type EnrollRequest struct {
	CursoID int64 `json:"curso_id" binding:"required,gt=0" example:"1"`
}

// EnrollResponse wraps the created enrollment
type EnrollResponse struct {
	Message     string             `json:"message" example:"Inscripción exitosa"`
	Inscripcion *models.Enrollment `json:"inscripcion"`
}

// EnrollmentRow is one line of the admin enrollment listing
type EnrollmentRow struct {
	ID               int64  `json:"id" example:"1"`
	Usuario          string `json:"usuario" example:"ana"`
	Email            string `json:"email" example:"ana@farmacia.com"`
	Curso            string `json:"curso" example:"Farmacovigilancia"`
	FechaInscripcion string `json:"fecha_inscripcion" example:"2025-04-02"`
}

// UserEnrollmentRow is one course in a user's own enrollment listing
type UserEnrollmentRow struct {
	ID               int64  `json:"id" example:"1"`
	CursoID          int64  `json:"curso_id" example:"1"`
	Titulo           string `json:"titulo" example:"Farmacovigilancia"`
	Descripcion      string `json:"descripcion"`
	FechaInicio      string `json:"fecha_inicio" example:"2025-05-01"`
	FechaFin         string `json:"fecha_fin" example:"2025-05-31"`
	FechaInscripcion string `json:"fecha_inscripcion" example:"2025-04-02 09:30"`
}

// NewEnrollmentRow projects a joined enrollment for the admin listing
func NewEnrollmentRow(e *models.Enrollment) EnrollmentRow {
	row := EnrollmentRow{ID: e.ID, FechaInscripcion: e.FechaInscripcion.UTC().Format(models.DateLayout)}
	if e.User != nil {
		row.Usuario, row.Email = e.User.Username, e.User.Email
	}
	if e.Course != nil {
		row.Curso = e.Course.Titulo
	}
	return row
}

// NewUserEnrollmentRow projects a joined enrollment for its owner
func NewUserEnrollmentRow(e *models.Enrollment) UserEnrollmentRow {
	row := UserEnrollmentRow{
		ID:               e.ID,
		CursoID:          e.CourseID,
		FechaInscripcion: e.FechaInscripcion.UTC().Format(EnrollmentTimestampLayout),
	}
	if e.Course != nil {
		row.Titulo = e.Course.Titulo
		row.Descripcion = e.Course.Descripcion
		row.FechaInicio = e.Course.FechaInicio.String()
		row.FechaFin = e.Course.FechaFin.String()
	}
	return row
}
