package dto

import "github.com/santamartha/hrportal/internal/app/models"

// JobOfferRequest represents the body of a job offer creation
type JobOfferRequest struct {
	Titulo           string  `json:"titulo" binding:"required,notblank,max=150" example:"Auxiliar de farmacia"`
	Descripcion      string  `json:"descripcion" binding:"required" example:"Atención al público"`
	Requisitos       *string `json:"requisitos" example:"Título técnico"`
	FechaPublicacion *string `json:"fecha_publicacion" binding:"omitempty,isodate" example:"2025-04-01"`
}

// JobOfferUpdateRequest is a partial job offer update
type JobOfferUpdateRequest struct {
	Titulo           *string `json:"titulo" binding:"omitempty,min=1,max=150"`
	Descripcion      *string `json:"descripcion" binding:"omitempty,min=1"`
	Requisitos       *string `json:"requisitos"`
	FechaPublicacion *string `json:"fecha_publicacion" binding:"omitempty,isodate"`
}

// JobOfferResponse wraps a created or updated offer
type JobOfferResponse struct {
	Message string           `json:"message" example:"Oferta creada exitosamente"`
	Oferta  *models.JobOffer `json:"oferta"`
}

// JobOfferListResponse wraps the offer board
type JobOfferListResponse struct {
	Ofertas []*models.JobOffer `json:"ofertas"`
}
