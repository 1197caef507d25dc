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
	"github.com/otabek/juniorhub/internal/pkg/logger"
)

// directionRepository is the pgx-backed DirectionRepository.
type directionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDirectionRepository creates a new DirectionRepository.
func NewDirectionRepository(db *pgxpool.Pool) DirectionRepository {
	return &directionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a direction and fills in its generated id and creation time.
func (r *directionRepository) Create(ctx context.Context, direction *models.Direction) error {
	sql, args, err := r.sb.Insert("directions").
		Columns("title", "description", "is_active").
		Values(direction.Title, direction.Description, direction.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create direction query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&direction.ID, &direction.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create direction query")
		return fmt.Errorf("error creating direction: %w", err)
	}

	return nil
}

// GetByID retrieves a direction by id, without its nested mentors.
func (r *directionRepository) GetByID(ctx context.Context, id int64) (*models.Direction, error) {
	sql, args, err := r.sb.Select("id", "title", "description", "is_active", "created_at").
		From("directions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get direction query: %w", err)
	}

	direction := &models.Direction{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&direction.ID, &direction.Title, &direction.Description, &direction.IsActive, &direction.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDirectionNotFound
		}
		logger.Error().Err(err).Int64("directionID", id).Msg("Error scanning direction row")
		return nil, fmt.Errorf("error getting direction by ID: %w", err)
	}

	return direction, nil
}

// List retrieves directions ordered by title ascending.
func (r *directionRepository) List(ctx context.Context, params ListParams) ([]*models.Direction, int64, error) {
	where := squirrel.And{}
	if params.ActiveOnly {
		where = append(where, squirrel.Eq{"is_active": true})
	}
	if params.IsActive != nil {
		where = append(where, squirrel.Eq{"is_active": *params.IsActive})
	}
	if params.Search != "" {
		where = append(where, squirrel.ILike{"title": "%" + strings.TrimSpace(params.Search) + "%"})
	}
	if params.CreatedFrom != nil {
		where = append(where, squirrel.GtOrEq{"created_at": *params.CreatedFrom})
	}
	if params.CreatedTo != nil {
		where = append(where, squirrel.LtOrEq{"created_at": *params.CreatedTo})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("directions").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count directions query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count directions query")
		return nil, 0, fmt.Errorf("failed to count directions: %w", err)
	}

	if totalItems == 0 {
		return []*models.Direction{}, 0, nil
	}

	querySql, queryArgs, err := r.sb.Select("id", "title", "description", "is_active", "created_at").
		From("directions").
		Where(where).
		OrderBy("title ASC").
		Limit(uint64(params.Limit)).
		Offset(params.Offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list directions query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list directions query")
		return nil, 0, fmt.Errorf("failed to query directions: %w", err)
	}
	defer rows.Close()

	directions := []*models.Direction{}
	for rows.Next() {
		direction := &models.Direction{}
		if err := rows.Scan(&direction.ID, &direction.Title, &direction.Description, &direction.IsActive, &direction.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning direction row: %w", err)
		}
		directions = append(directions, direction)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating direction rows: %w", err)
	}

	return directions, totalItems, nil
}

// Update rewrites the mutable fields of a direction.
func (r *directionRepository) Update(ctx context.Context, direction *models.Direction) error {
	sql, args, err := r.sb.Update("directions").
		SetMap(map[string]interface{}{
			"title":       direction.Title,
			"description": direction.Description,
			"is_active":   direction.IsActive,
		}).
		Where(squirrel.Eq{"id": direction.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update direction query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("directionID", direction.ID).Msg("Error executing update direction query")
		return fmt.Errorf("error updating direction: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDirectionNotFound
	}
	return nil
}

// Delete removes a direction. Its mentors survive with a nulled reference
// via ON DELETE SET NULL.
func (r *directionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("directions").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete direction query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("directionID", id).Msg("Error executing delete direction query")
		return fmt.Errorf("error deleting direction: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDirectionNotFound
	}
	return nil
}

// SetActive toggles the active flag on the addressed directions.
func (r *directionRepository) SetActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	return setActiveByIDs(ctx, r.db, r.sb, "directions", ids, active)
}
