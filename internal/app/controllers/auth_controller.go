// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/santamartha/hrportal/internal/app/models/dto"
	"github.com/santamartha/hrportal/internal/app/services"
	"github.com/santamartha/hrportal/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup handles user registration
// @Summary Register a new user
// @Description Creates an account. Role defaults to usuario; role admin requires an admin bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SignupRequest true "Registration data"
// @Success 201 {object} dto.SignupResponse "User registered"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or passwords do not match"
// @Failure 401 {object} dto.ErrorResponse "Invalid bearer token"
// @Failure 403 {object} dto.ErrorResponse "Admin role requested without admin credentials"
// @Failure 409 {object} dto.ErrorResponse "Username or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	actor, _ := middleware.CurrentUser(ctx)
	user, err := c.authService.Signup(ctx.Request.Context(), &req, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SignupResponse{
		Message: "Usuario registrado exitosamente",
		UserID:  user.ID,
	})
}

// Login handles user login
// @Summary Log in
// @Description Verifies credentials and returns a one hour access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Access token"
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
