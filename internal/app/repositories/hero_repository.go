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

// heroUniqueConstraint is the composite uniqueness guard: one hero type
// per user per month.
const heroUniqueConstraint = "month_heroes_month_user_type_key"

// Foreign key constraint names, as Postgres generates them for the inline
// REFERENCES clauses in the schema.
const (
	heroMonthFKConstraint = "month_heroes_month_id_fkey"
	heroUserFKConstraint  = "month_heroes_user_id_fkey"
)

// heroRepository is the pgx-backed HeroRepository.
type heroRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewHeroRepository creates a new HeroRepository.
func NewHeroRepository(db *pgxpool.Pool) HeroRepository {
	return &heroRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const heroColumns = `h.id, h.month_id, h.user_id, h.type, h.description, h.is_active, h.created_at,
	mo.name,
	u.id, u.username, u.first_name, u.last_name, u.email`

func scanHero(row pgx.Row) (*models.MonthHero, error) {
	hero := &models.MonthHero{User: &models.User{}}
	err := row.Scan(
		&hero.ID, &hero.MonthID, &hero.UserID, &hero.Type, &hero.Description,
		&hero.IsActive, &hero.CreatedAt,
		&hero.MonthName,
		&hero.User.ID, &hero.User.Username, &hero.User.FirstName, &hero.User.LastName, &hero.User.Email,
	)
	if err != nil {
		return nil, err
	}
	return hero, nil
}

func (r *heroRepository) baseSelect() squirrel.SelectBuilder {
	return r.sb.Select(heroColumns).
		From("month_heroes h").
		Join("months mo ON h.month_id = mo.id").
		Join("users u ON h.user_id = u.id")
}

// mapHeroWriteError converts constraint violations into the validation
// errors the service layer reports to the caller.
func mapHeroWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, heroUniqueConstraint):
		return apperrors.ErrHeroAlreadyExists
	case dberrors.IsForeignKeyConstraintError(err, heroUserFKConstraint):
		return apperrors.ErrUserNotFound
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.ErrMonthNotFound
	case dberrors.IsCheckViolation(err):
		return apperrors.NewValidationError("type", "type must be one of: student teacher")
	default:
		return nil
	}
}

// Create inserts a hero award and fills in its generated id and creation time.
func (r *heroRepository) Create(ctx context.Context, hero *models.MonthHero) error {
	sql, args, err := r.sb.Insert("month_heroes").
		Columns("month_id", "user_id", "type", "description", "is_active").
		Values(hero.MonthID, hero.UserID, hero.Type, hero.Description, hero.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create hero query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&hero.ID, &hero.CreatedAt)
	if err != nil {
		if mapped := mapHeroWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Msg("Error executing create hero query")
		return fmt.Errorf("error creating hero: %w", err)
	}

	return nil
}

// GetByID retrieves a hero award with its month name and user joined in.
func (r *heroRepository) GetByID(ctx context.Context, id int64) (*models.MonthHero, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"h.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get hero query: %w", err)
	}

	hero, err := scanHero(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHeroNotFound
		}
		logger.Error().Err(err).Int64("heroID", id).Msg("Error scanning hero row")
		return nil, fmt.Errorf("error getting hero by ID: %w", err)
	}

	return hero, nil
}

// List retrieves hero awards ordered by creation time descending. Search is
// a substring match over the holder's username and the month name.
func (r *heroRepository) List(ctx context.Context, params ListParams) ([]*models.MonthHero, int64, error) {
	where := squirrel.And{}
	if params.ActiveOnly {
		where = append(where, squirrel.Eq{"h.is_active": true})
	}
	if params.IsActive != nil {
		where = append(where, squirrel.Eq{"h.is_active": *params.IsActive})
	}
	if params.Type != nil {
		where = append(where, squirrel.Eq{"h.type": *params.Type})
	}
	if params.MonthID != nil {
		where = append(where, squirrel.Eq{"h.month_id": *params.MonthID})
	}
	if params.Search != "" {
		term := "%" + strings.TrimSpace(params.Search) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"u.username": term},
			squirrel.ILike{"mo.name": term},
		})
	}
	if params.CreatedFrom != nil {
		where = append(where, squirrel.GtOrEq{"h.created_at": *params.CreatedFrom})
	}
	if params.CreatedTo != nil {
		where = append(where, squirrel.LtOrEq{"h.created_at": *params.CreatedTo})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("month_heroes h").
		Join("months mo ON h.month_id = mo.id").
		Join("users u ON h.user_id = u.id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count heroes query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count heroes query")
		return nil, 0, fmt.Errorf("failed to count heroes: %w", err)
	}

	if totalItems == 0 {
		return []*models.MonthHero{}, 0, nil
	}

	querySql, queryArgs, err := r.baseSelect().
		Where(where).
		OrderBy("h.created_at DESC").
		Limit(uint64(params.Limit)).
		Offset(params.Offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list heroes query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list heroes query")
		return nil, 0, fmt.Errorf("failed to query heroes: %w", err)
	}
	defer rows.Close()

	heroes := []*models.MonthHero{}
	for rows.Next() {
		hero, err := scanHero(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning hero row: %w", err)
		}
		heroes = append(heroes, hero)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating hero rows: %w", err)
	}

	return heroes, totalItems, nil
}

// Update rewrites the mutable fields of a hero award.
func (r *heroRepository) Update(ctx context.Context, hero *models.MonthHero) error {
	sql, args, err := r.sb.Update("month_heroes").
		SetMap(map[string]interface{}{
			"month_id":    hero.MonthID,
			"user_id":     hero.UserID,
			"type":        hero.Type,
			"description": hero.Description,
			"is_active":   hero.IsActive,
		}).
		Where(squirrel.Eq{"id": hero.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update hero query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if mapped := mapHeroWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Int64("heroID", hero.ID).Msg("Error executing update hero query")
		return fmt.Errorf("error updating hero: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHeroNotFound
	}
	return nil
}

// Delete removes a hero award.
func (r *heroRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("month_heroes").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete hero query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("heroID", id).Msg("Error executing delete hero query")
		return fmt.Errorf("error deleting hero: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHeroNotFound
	}
	return nil
}

// SetActive toggles the active flag on the addressed hero awards.
func (r *heroRepository) SetActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	return setActiveByIDs(ctx, r.db, r.sb, "month_heroes", ids, active)
}

// SetType reclassifies the addressed awards to the given role. Rows whose
// new triple would collide with an existing award surface the uniqueness
// violation instead of silently skipping.
func (r *heroRepository) SetType(ctx context.Context, ids []int64, heroType models.HeroType) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := r.sb.Update("month_heroes").
		Set("type", heroType).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build set hero type query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, heroUniqueConstraint) {
			return 0, apperrors.ErrHeroAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing set hero type query")
		return 0, fmt.Errorf("error setting hero type: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// ListByMonthIDs returns heroes grouped by month id, newest first within
// each month.
func (r *heroRepository) ListByMonthIDs(ctx context.Context, monthIDs []int64, activeOnly bool) (map[int64][]*models.MonthHero, error) {
	grouped := make(map[int64][]*models.MonthHero, len(monthIDs))
	if len(monthIDs) == 0 {
		return grouped, nil
	}

	where := squirrel.And{squirrel.Eq{"h.month_id": monthIDs}}
	if activeOnly {
		where = append(where, squirrel.Eq{"h.is_active": true})
	}

	sql, args, err := r.baseSelect().
		Where(where).
		OrderBy("h.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build heroes by month query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing heroes by month query")
		return nil, fmt.Errorf("failed to query heroes by month: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		hero, err := scanHero(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning hero row: %w", err)
		}
		grouped[hero.MonthID] = append(grouped[hero.MonthID], hero)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hero rows: %w", err)
	}

	return grouped, nil
}
