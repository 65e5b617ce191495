package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"ana"`
	Email     string    `json:"email" db:"email" example:"ana@farmacia.com"`
	Password  string    `json:"-" db:"password"` // bcrypt hash
	Role      RoleType  `json:"role" db:"role" example:"usuario"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
