package models

// JobOffer represents an internal job posting
type JobOffer struct {
	ID               int64   `json:"id" db:"id"`
	Titulo           string  `json:"titulo" db:"titulo"`
	Descripcion      string  `json:"descripcion" db:"descripcion"`
	Requisitos       *string `json:"requisitos" db:"requisitos"` // Nullable
	FechaPublicacion Date    `json:"fecha_publicacion" db:"fecha_publicacion"`
}
