package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/otabek/juniorhub/internal/app/models"
	"github.com/otabek/juniorhub/internal/pkg/apperrors"
	"github.com/otabek/juniorhub/internal/pkg/dberrors"
	"github.com/otabek/juniorhub/internal/pkg/logger"
)

// monthRepository is the pgx-backed MonthRepository.
type monthRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMonthRepository creates a new MonthRepository.
func NewMonthRepository(db *pgxpool.Pool) MonthRepository {
	return &monthRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a month and fills in its generated id and creation time.
func (r *monthRepository) Create(ctx context.Context, month *models.Month) error {
	sql, args, err := r.sb.Insert("months").
		Columns("name", "description", "is_active").
		Values(month.Name, month.Description, month.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create month query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&month.ID, &month.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrMonthNameExists
		}
		logger.Error().Err(err).Msg("Error executing create month query")
		return fmt.Errorf("error creating month: %w", err)
	}

	return nil
}

// GetByID retrieves a month by id, without its nested heroes.
func (r *monthRepository) GetByID(ctx context.Context, id int64) (*models.Month, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "is_active", "created_at").
		From("months").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get month query: %w", err)
	}

	month := &models.Month{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&month.ID, &month.Name, &month.Description, &month.IsActive, &month.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMonthNotFound
		}
		logger.Error().Err(err).Int64("monthID", id).Msg("Error scanning month row")
		return nil, fmt.Errorf("error getting month by ID: %w", err)
	}

	return month, nil
}

// List retrieves months ordered by creation time descending. Months are
// listed regardless of active state; the is_active facet still applies
// when explicitly requested.
func (r *monthRepository) List(ctx context.Context, params ListParams) ([]*models.Month, int64, error) {
	where := squirrel.And{}
	if params.IsActive != nil {
		where = append(where, squirrel.Eq{"is_active": *params.IsActive})
	}
	if params.Search != "" {
		where = append(where, squirrel.ILike{"name": "%" + strings.TrimSpace(params.Search) + "%"})
	}
	if params.CreatedFrom != nil {
		where = append(where, squirrel.GtOrEq{"created_at": *params.CreatedFrom})
	}
	if params.CreatedTo != nil {
		where = append(where, squirrel.LtOrEq{"created_at": *params.CreatedTo})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("months").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count months query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count months query")
		return nil, 0, fmt.Errorf("failed to count months: %w", err)
	}

	if totalItems == 0 {
		return []*models.Month{}, 0, nil
	}

	querySql, queryArgs, err := r.sb.Select("id", "name", "description", "is_active", "created_at").
		From("months").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(params.Limit)).
		Offset(params.Offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list months query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list months query")
		return nil, 0, fmt.Errorf("failed to query months: %w", err)
	}
	defer rows.Close()

	months := []*models.Month{}
	for rows.Next() {
		month := &models.Month{}
		if err := rows.Scan(&month.ID, &month.Name, &month.Description, &month.IsActive, &month.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning month row: %w", err)
		}
		months = append(months, month)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating month rows: %w", err)
	}

	return months, totalItems, nil
}

// Update rewrites the mutable fields of a month. created_at never changes.
func (r *monthRepository) Update(ctx context.Context, month *models.Month) error {
	sql, args, err := r.sb.Update("months").
		SetMap(map[string]interface{}{
			"name":        month.Name,
			"description": month.Description,
			"is_active":   month.IsActive,
		}).
		Where(squirrel.Eq{"id": month.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update month query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrMonthNameExists
		}
		logger.Error().Err(err).Int64("monthID", month.ID).Msg("Error executing update month query")
		return fmt.Errorf("error updating month: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMonthNotFound
	}
	return nil
}

// Delete removes a month. Its hero awards go with it via ON DELETE CASCADE.
func (r *monthRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("months").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete month query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("monthID", id).Msg("Error executing delete month query")
		return fmt.Errorf("error deleting month: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMonthNotFound
	}
	return nil
}

// SetActive toggles the active flag on the addressed months and returns the
// number of rows matched by the id set.
func (r *monthRepository) SetActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	return setActiveByIDs(ctx, r.db, r.sb, "months", ids, active)
}

// CountActiveHeroes computes the active hero count per month with one
// aggregate query over the addressed months.
func (r *monthRepository) CountActiveHeroes(ctx context.Context, monthIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(monthIDs))
	if len(monthIDs) == 0 {
		return counts, nil
	}

	sql, args, err := r.sb.Select("month_id", "COUNT(*)").
		From("month_heroes").
		Where(squirrel.Eq{"month_id": monthIDs, "is_active": true}).
		GroupBy("month_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build hero count query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing hero count query")
		return nil, fmt.Errorf("failed to count heroes per month: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var monthID, count int64
		if err := rows.Scan(&monthID, &count); err != nil {
			return nil, fmt.Errorf("error scanning hero count row: %w", err)
		}
		counts[monthID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hero count rows: %w", err)
	}

	return counts, nil
}
