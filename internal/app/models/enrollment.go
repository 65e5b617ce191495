package models

import "time"

// Enrollment links a user to a course. At most one exists per (user, course).
type Enrollment struct {
	ID               int64     `json:"id" db:"id"`
	UserID           int64     `json:"user_id" db:"user_id"`
	CourseID         int64     `json:"curso_id" db:"course_id"`
	FechaInscripcion time.Time `json:"fecha_inscripcion" db:"fecha_inscripcion"`

	// Relations (populated by listing queries)
	User   *User   `json:"-"`
	Course *Course `json:"-"`
}
