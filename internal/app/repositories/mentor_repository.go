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

// mentorRepository is the pgx-backed MentorRepository.
type mentorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMentorRepository creates a new MentorRepository.
func NewMentorRepository(db *pgxpool.Pool) MentorRepository {
	return &mentorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const mentorColumns = "m.id, m.full_name, m.direction_id, m.image, m.description, m.bio, m.is_active, m.created_at, d.title"

func scanMentor(row pgx.Row) (*models.Mentor, error) {
	mentor := &models.Mentor{}
	err := row.Scan(
		&mentor.ID, &mentor.FullName, &mentor.DirectionID, &mentor.Image,
		&mentor.Description, &mentor.Bio, &mentor.IsActive, &mentor.CreatedAt,
		&mentor.DirectionTitle,
	)
	if err != nil {
		return nil, err
	}
	return mentor, nil
}

// Create inserts a mentor and fills in its generated id and creation time.
func (r *mentorRepository) Create(ctx context.Context, mentor *models.Mentor) error {
	sql, args, err := r.sb.Insert("mentors").
		Columns("full_name", "direction_id", "image", "description", "bio", "is_active").
		Values(mentor.FullName, mentor.DirectionID, mentor.Image, mentor.Description, mentor.Bio, mentor.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create mentor query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&mentor.ID, &mentor.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDirectionNotFound
		}
		logger.Error().Err(err).Msg("Error executing create mentor query")
		return fmt.Errorf("error creating mentor: %w", err)
	}

	return nil
}

// GetByID retrieves a mentor by id with its direction title joined in.
func (r *mentorRepository) GetByID(ctx context.Context, id int64) (*models.Mentor, error) {
	sql, args, err := r.sb.Select(mentorColumns).
		From("mentors m").
		LeftJoin("directions d ON m.direction_id = d.id").
		Where(squirrel.Eq{"m.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get mentor query: %w", err)
	}

	mentor, err := scanMentor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorNotFound
		}
		logger.Error().Err(err).Int64("mentorID", id).Msg("Error scanning mentor row")
		return nil, fmt.Errorf("error getting mentor by ID: %w", err)
	}

	return mentor, nil
}

// List retrieves mentors ordered by full name ascending. Search is a
// substring match over full_name, description and bio.
func (r *mentorRepository) List(ctx context.Context, params ListParams) ([]*models.Mentor, int64, error) {
	where := squirrel.And{}
	if params.ActiveOnly {
		where = append(where, squirrel.Eq{"m.is_active": true})
	}
	if params.IsActive != nil {
		where = append(where, squirrel.Eq{"m.is_active": *params.IsActive})
	}
	if params.DirectionID != nil {
		where = append(where, squirrel.Eq{"m.direction_id": *params.DirectionID})
	}
	if params.Search != "" {
		term := "%" + strings.TrimSpace(params.Search) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"m.full_name": term},
			squirrel.ILike{"m.description": term},
			squirrel.ILike{"m.bio": term},
		})
	}
	if params.CreatedFrom != nil {
		where = append(where, squirrel.GtOrEq{"m.created_at": *params.CreatedFrom})
	}
	if params.CreatedTo != nil {
		where = append(where, squirrel.LtOrEq{"m.created_at": *params.CreatedTo})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("mentors m").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count mentors query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count mentors query")
		return nil, 0, fmt.Errorf("failed to count mentors: %w", err)
	}

	if totalItems == 0 {
		return []*models.Mentor{}, 0, nil
	}

	querySql, queryArgs, err := r.sb.Select(mentorColumns).
		From("mentors m").
		LeftJoin("directions d ON m.direction_id = d.id").
		Where(where).
		OrderBy("m.full_name ASC").
		Limit(uint64(params.Limit)).
		Offset(params.Offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list mentors query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list mentors query")
		return nil, 0, fmt.Errorf("failed to query mentors: %w", err)
	}
	defer rows.Close()

	mentors := []*models.Mentor{}
	for rows.Next() {
		mentor, err := scanMentor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning mentor row: %w", err)
		}
		mentors = append(mentors, mentor)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating mentor rows: %w", err)
	}

	return mentors, totalItems, nil
}

// Update rewrites the mutable fields of a mentor.
func (r *mentorRepository) Update(ctx context.Context, mentor *models.Mentor) error {
	sql, args, err := r.sb.Update("mentors").
		SetMap(map[string]interface{}{
			"full_name":    mentor.FullName,
			"direction_id": mentor.DirectionID,
			"image":        mentor.Image,
			"description":  mentor.Description,
			"bio":          mentor.Bio,
			"is_active":    mentor.IsActive,
		}).
		Where(squirrel.Eq{"id": mentor.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update mentor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDirectionNotFound
		}
		logger.Error().Err(err).Int64("mentorID", mentor.ID).Msg("Error executing update mentor query")
		return fmt.Errorf("error updating mentor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorNotFound
	}
	return nil
}

// Delete removes a mentor.
func (r *mentorRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("mentors").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete mentor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("mentorID", id).Msg("Error executing delete mentor query")
		return fmt.Errorf("error deleting mentor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorNotFound
	}
	return nil
}

// SetActive toggles the active flag on the addressed mentors.
func (r *mentorRepository) SetActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	return setActiveByIDs(ctx, r.db, r.sb, "mentors", ids, active)
}

// ListByDirectionIDs returns mentors grouped by direction id, ordered by
// full name within each direction.
func (r *mentorRepository) ListByDirectionIDs(ctx context.Context, directionIDs []int64, activeOnly bool) (map[int64][]*models.Mentor, error) {
	grouped := make(map[int64][]*models.Mentor, len(directionIDs))
	if len(directionIDs) == 0 {
		return grouped, nil
	}

	where := squirrel.And{squirrel.Eq{"m.direction_id": directionIDs}}
	if activeOnly {
		where = append(where, squirrel.Eq{"m.is_active": true})
	}

	sql, args, err := r.sb.Select(mentorColumns).
		From("mentors m").
		LeftJoin("directions d ON m.direction_id = d.id").
		Where(where).
		OrderBy("m.full_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build mentors by direction query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing mentors by direction query")
		return nil, fmt.Errorf("failed to query mentors by direction: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		mentor, err := scanMentor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentor row: %w", err)
		}
		if mentor.DirectionID != nil {
			grouped[*mentor.DirectionID] = append(grouped[*mentor.DirectionID], mentor)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentor rows: %w", err)
	}

	return grouped, nil
}

// CountActiveByDirection computes the active mentor count per direction with
// one aggregate query over the addressed directions.
func (r *mentorRepository) CountActiveByDirection(ctx context.Context, directionIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(directionIDs))
	if len(directionIDs) == 0 {
		return counts, nil
	}

	sql, args, err := r.sb.Select("direction_id", "COUNT(*)").
		From("mentors").
		Where(squirrel.Eq{"direction_id": directionIDs, "is_active": true}).
		GroupBy("direction_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build mentor count query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing mentor count query")
		return nil, fmt.Errorf("failed to count mentors per direction: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var directionID, count int64
		if err := rows.Scan(&directionID, &count); err != nil {
			return nil, fmt.Errorf("error scanning mentor count row: %w", err)
		}
		counts[directionID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentor count rows: %w", err)
	}

	return counts, nil
}
