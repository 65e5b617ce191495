package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
	"github.com/santamartha/hrportal/internal/pkg/auth"
	"github.com/santamartha/hrportal/internal/pkg/metrics"
)

// Context keys set by JWTAuth
const (
	ContextUserKey   = "currentUser"
	ContextUserIDKey = "userID"
)

// TokenValidator resolves a token to the user ID it was issued for
type TokenValidator interface {
	Validate(token string) (int64, error)
}

// UserFinder looks users up by ID
type UserFinder interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	tokens TokenValidator
	users  UserFinder
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens TokenValidator, users UserFinder) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
	}
}

// Authenticate resolves an Authorization header value to a stored user.
// The header must start with exactly "Bearer ". The token is checked before
// the store is consulted, and a valid token for a deleted account is rejected.
func (m *AuthMiddleware) Authenticate(ctx context.Context, authHeader string) (*models.User, error) {
	token, err := auth.ExtractBearerToken(authHeader)
	if err != nil {
		return nil, err
	}

	userID, err := m.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := m.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnknownAccount
		}
		return nil, err
	}

	return user, nil
}

func authFailureReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrTokenExpired):
		return "expired"
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return "malformed"
	case errors.Is(err, apperrors.ErrUnknownAccount):
		return "unknown_user"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return "missing_header"
	default:
		return "error"
	}
}

// JWTAuth rejects the request with 401 unless it carries a valid bearer token
// for an existing user. The resolved user is available through CurrentUser.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			metrics.AuthFailuresTotal.WithLabelValues(authFailureReason(err)).Inc()
			HandleAPIError(c, err)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// OptionalAuth resolves the bearer token when one is sent and lets anonymous requests through.
// A header that is present but invalid is still rejected with 401.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		m.JWTAuth()(c)
	}
}

// RoleRequired rejects with 403 when the authenticated user lacks role.
// It must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
			HandleAPIError(c, apperrors.ErrUnauthorized)
			return
		}

		if user.Role != role {
			metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
			HandleAPIError(c, apperrors.NewForbiddenError("you don't have sufficient permissions for this operation"))
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user resolved by JWTAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
