package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"collabboard/internal/app/models"
	"collabboard/internal/app/repositories"
	"collabboard/internal/pkg/auth"
)

// Default admin credentials, overridable via environment. The portal
// has no admin registration endpoint; this account is the entry point.
const (
	defaultAdminName     = "Portal Admin"
	defaultAdminEmail    = "admin@collabboard.local"
	defaultAdminPassword = "admin123"
)

// CreateDefaultAdmin inserts the default admin account if no admin
// with that email exists yet.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := repositories.NewAdminRepository(dbPool)

	email := envOrDefault("ADMIN_EMAIL", defaultAdminEmail)
	exists, err := adminRepo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		lgr.Debug().Str("email", email).Msg("Default admin already present")
		return nil
	}

	password := envOrDefault("ADMIN_PASSWORD", defaultAdminPassword)
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return errors.Join(errors.New("failed to hash default admin password"), err)
	}

	admin := &models.Admin{
		Name:     envOrDefault("ADMIN_NAME", defaultAdminName),
		Email:    email,
		Password: hashed,
		Role:     string(models.RoleAdmin),
	}

	id, err := adminRepo.Create(ctx, admin)
	if err != nil {
		return err
	}

	lgr.Info().Int64("adminId", id).Str("email", email).Msg("Default admin account created")
	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
