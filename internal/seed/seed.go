package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
	"github.com/santamartha/hrportal/internal/pkg/auth"
)

// UserStore is the part of the user repository seeding needs
type UserStore interface {
	Create(ctx context.Context, user *appModels.User) (*appModels.User, error)
	FindByUsername(ctx context.Context, username string) (*appModels.User, error)
}

// Admin describes the bootstrap administrator account
type Admin struct {
	Username string
	Email    string
	Password string
}

// CreateDefaultData ensures the admin account exists. Running it again is a no-op.
func CreateDefaultData(ctx context.Context, users UserStore, hasher auth.PasswordHasher, admin Admin, lgr zerolog.Logger) error {
	if admin.Password == "" {
		lgr.Warn().Msg("Seed admin password not set, skipping admin account creation")
		return nil
	}

	lgr.Info().Str("username", admin.Username).Msg("Checking/Creating default admin account...")
	var finalErr error

	existing, err := users.FindByUsername(ctx, admin.Username)
	switch {
	case err == nil:
		if existing.Role != appModels.RoleAdmin {
			lgr.Warn().Str("username", admin.Username).Str("role", string(existing.Role)).
				Msg("Seed admin username is taken by a non-admin account")
		}
		return nil
	case !errors.Is(err, apperrors.ErrUserNotFound):
		lgr.Error().Err(err).Msg("Error looking up admin account")
		return fmt.Errorf("look up admin account: %w", err)
	}

	hashed, err := hasher.Hash(admin.Password)
	if err != nil {
		return errors.Join(finalErr, fmt.Errorf("hash admin password: %w", err))
	}

	_, err = users.Create(ctx, &appModels.User{
		Username: admin.Username,
		Email:    admin.Email,
		Password: hashed,
		Role:     appModels.RoleAdmin,
	})
	if err != nil && !errors.Is(err, apperrors.ErrConflict) {
		lgr.Error().Err(err).Msg("Error creating admin account")
		finalErr = errors.Join(finalErr, err)
	} else if err == nil {
		lgr.Info().Str("username", admin.Username).Msg("Default admin account created")
	}

	return finalErr
}
