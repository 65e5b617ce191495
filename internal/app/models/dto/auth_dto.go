package dto

import "github.com/santamartha/hrportal/internal/app/models"

// SignupRequest represents an account registration
type SignupRequest struct {
	Username        string          `json:"username" binding:"required,notblank,max=100" example:"ana"`
	Email           string          `json:"email" binding:"required,email,max=100" example:"ana@farmacia.com"`
	Password        string          `json:"password" binding:"required" example:"secreto123"`
	ConfirmPassword string          `json:"confirm_password" binding:"required" example:"secreto123"`
	Role            models.RoleType `json:"role" binding:"omitempty,oneof=admin usuario" example:"usuario"`
}

// SignupResponse is returned after a successful registration
type SignupResponse struct {
	Message string `json:"message" example:"Usuario registrado exitosamente"`
	UserID  int64  `json:"user_id" example:"1"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"ana"`
	Password string `json:"password" binding:"required" example:"secreto123"`
}

// LoginResponse carries the access token and the identity it was issued for
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	UserID      int64           `json:"user_id" example:"1"`
	Username    string          `json:"username" example:"ana"`
	Role        models.RoleType `json:"role" example:"usuario"`
}
