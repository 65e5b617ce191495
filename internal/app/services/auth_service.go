package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/app/models/dto"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
	"github.com/santamartha/hrportal/internal/pkg/auth"
	"github.com/santamartha/hrportal/internal/pkg/logger"
	"github.com/santamartha/hrportal/internal/pkg/metrics"
)

// AuthService handles registration and login
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest, actor *models.User) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	users  UserRepository
	tokens TokenIssuer
	hasher auth.PasswordHasher
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserRepository, tokens TokenIssuer, hasher auth.PasswordHasher) AuthService {
	return &authServiceImpl{
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}

func (s *authServiceImpl) validateSignup(req *dto.SignupRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}
	if req.Password != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}
	if req.Role != "" && !req.Role.Valid() {
		return fmt.Errorf("%w: role must be admin or usuario", apperrors.ErrValidationFailed)
	}
	return nil
}

// Signup registers a new account. Username and email uniqueness is left to the store.
// actor is the authenticated caller, nil for anonymous signups; only an admin may create another admin.
func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest, actor *models.User) (user *models.User, err error) {
	defer func() { metrics.SignupsTotal.WithLabelValues(metrics.Result(err)).Inc() }()

	if err := s.validateSignup(req); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUsuario
	}
	if role == models.RoleAdmin && !actor.IsAdmin() {
		logger.Warn().Str("username", req.Username).Msg("Rejected admin signup without admin credentials")
		return nil, apperrors.ErrAdminSignupForbidden
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err = s.users.Create(ctx, &models.User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		Password: hash,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues an access token.
// An unknown username and a wrong password are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (resp *dto.LoginResponse, err error) {
	defer func() { metrics.LoginsTotal.WithLabelValues(metrics.Result(err)).Inc() }()

	if req == nil || strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidationFailed)
	}

	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Compare(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		UserID:      user.ID,
		Username:    user.Username,
		Role:        user.Role,
	}, nil
}
