package models

import "time"

// Application links a user to a job offer. At most one exists per (user, offer).
type Application struct {
	ID               int64     `json:"id" db:"id"`
	UserID           int64     `json:"user_id" db:"user_id"`
	JobOfferID       int64     `json:"oferta_id" db:"job_offer_id"`
	FechaPostulacion time.Time `json:"fecha_postulacion" db:"fecha_postulacion"`

	// Relations (populated by listing queries)
	User     *User     `json:"-"`
	JobOffer *JobOffer `json:"-"`
}
