package dto

import "github.com/santamartha/hrportal/internal/app/models"

// ApplyRequest represents a job application
type ApplyRequest struct {
	IDOferta int64 `json:"idOferta" binding:"required,gt=0" example:"1"`
}

// ApplyResponse wraps the created application
type ApplyResponse struct {
	Message     string              `json:"message" example:"Postulación realizada con éxito"`
	Postulacion *models.Application `json:"postulacion"`
}

// ApplicantRow is one line of the admin applicant listing
type ApplicantRow struct {
	ID            int64  `json:"id" example:"1"`
	NombreUsuario string `json:"nombre_usuario" example:"ana"`
	Correo        string `json:"correo" example:"ana@farmacia.com"`
	Oferta        string `json:"oferta" example:"Auxiliar de farmacia"`
	Fecha         string `json:"fecha" example:"2025-04-02"`
}

// MyApplicationRow is one entry of a user's own applications
type MyApplicationRow struct {
	IDPostulacion    int64  `json:"id_postulacion" example:"1"`
	Titulo           string `json:"titulo" example:"Auxiliar de farmacia"`
	Descripcion      string `json:"descripcion"`
	FechaPostulacion string `json:"fecha_postulacion" example:"2025-04-02"`
}

// MyApplicationsResponse wraps a user's applications
type MyApplicationsResponse struct {
	Postulaciones []MyApplicationRow `json:"postulaciones"`
}

// NewApplicantRow projects a joined application for the admin listing
func NewApplicantRow(a *models.Application) ApplicantRow {
	row := ApplicantRow{ID: a.ID, Fecha: a.FechaPostulacion.UTC().Format(models.DateLayout)}
	if a.User != nil {
		row.NombreUsuario, row.Correo = a.User.Username, a.User.Email
	}
	if a.JobOffer != nil {
		row.Oferta = a.JobOffer.Titulo
	}
	return row
}

// NewMyApplicationRow projects a joined application for its owner
func NewMyApplicationRow(a *models.Application) MyApplicationRow {
	row := MyApplicationRow{IDPostulacion: a.ID, FechaPostulacion: a.FechaPostulacion.UTC().Format(models.DateLayout)}
	if a.JobOffer != nil {
		row.Titulo, row.Descripcion = a.JobOffer.Titulo, a.JobOffer.Descripcion
	}
	return row
}
