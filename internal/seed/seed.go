package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/app/repositories"
	"github.com/edupulse/edupulse/internal/config"
	"github.com/edupulse/edupulse/internal/pkg/auth"
	"github.com/edupulse/edupulse/internal/pkg/logger"
)

// CreateDefaultData seeds the default administrator account so a fresh
// install has a working sign-in. Nothing happens when the account
// already exists, and seeding is skipped entirely when no admin
// password is configured.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	if cfg.Seed.AdminPassword == "" {
		logger.Warn().Msg("No seed admin password configured, skipping default admin creation")
		return nil
	}

	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, cfg.Seed.AdminEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	logger.Info().Str("email", cfg.Seed.AdminEmail).Msg("Creating default admin user")

	hashedPassword, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:    cfg.Seed.AdminEmail,
		Password: hashedPassword,
		IsActive: true,
	}
	profile := &models.Profile{
		FirstName: "System",
		LastName:  "Administrator",
		Email:     cfg.Seed.AdminEmail,
	}

	if err := userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return err
	}

	if err := userRepo.AssignRole(ctx, user.ID, models.RoleAdmin); err != nil {
		return errors.Join(errors.New("admin user created but role assignment failed"), err)
	}

	return nil
}
