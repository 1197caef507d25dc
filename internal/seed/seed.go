package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/otabek/juniorhub/internal/db"
	"github.com/otabek/juniorhub/internal/pkg/auth"
	"github.com/otabek/juniorhub/internal/pkg/logger"
)

const defaultAdminUsername = "admin"

// CreateDefaultData ensures a staff account exists so the back office is
// reachable on a fresh database. The check and the insert run in one
// transaction so concurrent replicas racing on first boot seed exactly one
// account. The password comes from ADMIN_PASSWORD, falling back to a
// development default.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	var created bool

	err := db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM users WHERE username = $1`,
			defaultAdminUsername).Scan(&id)
		if err == nil {
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
			logger.Warn().Msg("ADMIN_PASSWORD not set, seeding admin with the development default")
		}
		hashed, err := auth.HashPassword(password)
		if err != nil {
			return err
		}

		// ON CONFLICT absorbs the race between replicas seeding an empty
		// database at the same time.
		tag, err := tx.Exec(ctx,
			`INSERT INTO users (username, first_name, last_name, email, password, is_staff)
			 VALUES ($1, $2, $3, $4, $5, TRUE)
			 ON CONFLICT (username) DO NOTHING`,
			defaultAdminUsername, "Site", "Administrator", "admin@juniorhub.app", hashed)
		if err != nil {
			return err
		}
		created = tag.RowsAffected() == 1
		return nil
	})
	if err != nil {
		return err
	}

	if created {
		logger.Info().Str("username", defaultAdminUsername).Msg("Seeded default admin account")
	}
	return nil
}
