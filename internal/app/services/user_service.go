package services

import (
	"context"
	"fmt"

	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
	"github.com/santamartha/hrportal/internal/pkg/logger"
)

// UserService exposes account operations
type UserService interface {
	GetProfile(ctx context.Context, id int64) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type userServiceImpl struct {
	users UserRepository
}

// NewUserService creates a new UserService
func NewUserService(users UserRepository) UserService {
	return &userServiceImpl{users: users}
}

func (s *userServiceImpl) GetProfile(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: user ID must be positive", apperrors.ErrValidationFailed)
	}
	return s.users.FindByID(ctx, id)
}

// Delete removes the account with its enrollments and applications.
// Tokens already issued for it stop working at the auth gate.
func (s *userServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: user ID must be positive", apperrors.ErrValidationFailed)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}
