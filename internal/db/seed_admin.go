package db

import (
	"context"
	"errors"
	"time"

	"github.com/astrolaunch/launchpad/internal/config"
	"github.com/astrolaunch/launchpad/internal/domain/user"
	"github.com/astrolaunch/launchpad/internal/repo"
	"github.com/astrolaunch/launchpad/internal/security"
	"github.com/google/uuid"
)

// EnsureAdminUser creates the configured administrator account when it does
// not exist yet. With no ADMIN_EMAIL/ADMIN_PASSWORD configured it does
// nothing; there are no baked-in credentials.
func EnsureAdminUser(ctx context.Context, users repo.UsersStore, cfg config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	// check if the user exists

	_, err := users.GetByEmail(ctx, cfg.AdminEmail)

	if err == nil {
		return nil
	}

	if !errors.Is(err, user.ErrNotFound) {
		return err
	}

	hash, err := security.HashPassword(cfg.AdminPassword)

	if err != nil {
		return err
	}

	u := user.User{
		ID:           uuid.NewString(),
		Email:        cfg.AdminEmail,
		Name:         cfg.AdminName,
		PasswordHash: hash,
		Role:         user.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	err = users.Create(ctx, u)

	// lost a race against a concurrent boot; the account is there
	if errors.Is(err, user.ErrEmailTaken) {
		return nil
	}

	return err
}
