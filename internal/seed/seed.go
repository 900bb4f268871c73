package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/adeemchu/studentportal/internal/app/repositories"
	"github.com/adeemchu/studentportal/internal/db"
	"github.com/adeemchu/studentportal/internal/pkg/apperrors"
	"github.com/adeemchu/studentportal/internal/pkg/auth"
	"github.com/adeemchu/studentportal/internal/pkg/logger"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// CreateDefaultData ensures the portal has an administrator account to
// log in with on a fresh database.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB) error {
	userRepo := repositories.NewUserRepository(database.Pool)

	_, err := userRepo.GetByUsername(ctx, defaultAdminUsername)
	if err == nil {
		logger.Debug().Msg("Admin user already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	logger.Info().Msg("Creating default admin user")

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO users (username, password_hash, role, full_name)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (username) DO NOTHING`,
			defaultAdminUsername, hash, "admin", "System Administrator")
		return err
	})
}
