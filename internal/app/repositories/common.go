package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/otabek/juniorhub/internal/pkg/logger"
)

// setActiveByIDs flips the is_active flag on the addressed rows of a table.
// The returned count is the number of rows matched by the id set, so
// repeating the action on already-toggled rows reports the same count.
func setActiveByIDs(ctx context.Context, db *pgxpool.Pool, sb squirrel.StatementBuilderType, table string, ids []int64, active bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := sb.Update(table).
		Set("is_active", active).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build set active query for %s: %w", table, err)
	}

	cmdTag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error executing set active query")
		return 0, fmt.Errorf("error updating active flag on %s: %w", table, err)
	}

	return cmdTag.RowsAffected(), nil
}
