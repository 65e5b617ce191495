package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleUsuario RoleType = "usuario"
)

// Valid reports whether r is a known role
func (r RoleType) Valid() bool {
	return r == RoleAdmin || r == RoleUsuario
}

// CourseStatus is the lifecycle state of a course
type CourseStatus string

const (
	CourseActive   CourseStatus = "activo"
	CourseInactive CourseStatus = "inactivo"
)

// Valid reports whether s is a known course status
func (s CourseStatus) Valid() bool {
	return s == CourseActive || s == CourseInactive
}
