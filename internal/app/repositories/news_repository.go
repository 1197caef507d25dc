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

// CopyMarker is appended to the title of duplicated news articles.
const CopyMarker = " (Copy)"

// newsRepository is the pgx-backed NewsRepository.
type newsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new NewsRepository.
func NewNewsRepository(db *pgxpool.Pool) NewsRepository {
	return &newsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a news article and fills in its generated id and creation time.
func (r *newsRepository) Create(ctx context.Context, news *models.News) error {
	sql, args, err := r.sb.Insert("news").
		Columns("title", "content", "image", "is_active").
		Values(news.Title, news.Content, news.Image, news.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create news query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&news.ID, &news.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create news query")
		return fmt.Errorf("error creating news: %w", err)
	}

	return nil
}

// GetByID retrieves a news article by id.
func (r *newsRepository) GetByID(ctx context.Context, id int64) (*models.News, error) {
	sql, args, err := r.sb.Select("id", "title", "content", "image", "is_active", "created_at").
		From("news").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get news query: %w", err)
	}

	news := &models.News{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&news.ID, &news.Title, &news.Content, &news.Image, &news.IsActive, &news.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNewsNotFound
		}
		logger.Error().Err(err).Int64("newsID", id).Msg("Error scanning news row")
		return nil, fmt.Errorf("error getting news by ID: %w", err)
	}

	return news, nil
}

// List retrieves news ordered by creation time descending. Search is a
// substring match over the title.
func (r *newsRepository) List(ctx context.Context, params ListParams) ([]*models.News, int64, error) {
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

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("news").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count news query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count news query")
		return nil, 0, fmt.Errorf("failed to count news: %w", err)
	}

	if totalItems == 0 {
		return []*models.News{}, 0, nil
	}

	querySql, queryArgs, err := r.sb.Select("id", "title", "content", "image", "is_active", "created_at").
		From("news").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(params.Limit)).
		Offset(params.Offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list news query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list news query")
		return nil, 0, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	newsList := []*models.News{}
	for rows.Next() {
		news := &models.News{}
		if err := rows.Scan(&news.ID, &news.Title, &news.Content, &news.Image, &news.IsActive, &news.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning news row: %w", err)
		}
		newsList = append(newsList, news)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating news rows: %w", err)
	}

	return newsList, totalItems, nil
}

// Update rewrites the mutable fields of a news article.
func (r *newsRepository) Update(ctx context.Context, news *models.News) error {
	sql, args, err := r.sb.Update("news").
		SetMap(map[string]interface{}{
			"title":     news.Title,
			"content":   news.Content,
			"image":     news.Image,
			"is_active": news.IsActive,
		}).
		Where(squirrel.Eq{"id": news.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update news query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("newsID", news.ID).Msg("Error executing update news query")
		return fmt.Errorf("error updating news: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNewsNotFound
	}
	return nil
}

// Delete removes a news article.
func (r *newsRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("news").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete news query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("newsID", id).Msg("Error executing delete news query")
		return fmt.Errorf("error deleting news: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNewsNotFound
	}
	return nil
}

// SetActive toggles the active flag on the addressed news articles.
func (r *newsRepository) SetActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	return setActiveByIDs(ctx, r.db, r.sb, "news", ids, active)
}

// Duplicate clones the addressed news rows into new independent records in
// one statement. The clone keeps content, image and active state; its title
// gets the copy marker and it receives a fresh id and creation time.
func (r *newsRepository) Duplicate(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql := `INSERT INTO news (title, content, image, is_active)
		SELECT title || $1, content, image, is_active FROM news WHERE id = ANY($2)`

	cmdTag, err := r.db.Exec(ctx, sql, CopyMarker, ids)
	if err != nil {
		// Appending the copy marker can push an already long title past the
		// column limit.
		if dberrors.IsStringTruncation(err) {
			return 0, apperrors.NewValidationError("title", "title is too long to duplicate")
		}
		logger.Error().Err(err).Msg("Error executing duplicate news query")
		return 0, fmt.Errorf("error duplicating news: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
