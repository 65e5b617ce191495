package models

// Course represents a training course offered to employees
type Course struct {
	ID            int64        `json:"id" db:"id"`
	Titulo        string       `json:"titulo" db:"titulo"`
	Descripcion   string       `json:"descripcion" db:"descripcion"`
	DuracionHoras int          `json:"duracion_horas" db:"duracion_horas"`
	FechaInicio   Date         `json:"fecha_inicio" db:"fecha_inicio"`
	FechaFin      Date         `json:"fecha_fin" db:"fecha_fin"`
	Instructor    string       `json:"instructor" db:"instructor"`
	CupoMaximo    int          `json:"cupo_maximo" db:"cupo_maximo"`
	Estado        CourseStatus `json:"estado" db:"estado"`
}
