package services

import (
	"context"
	"mime/multipart"

	"github.com/otabek/juniorhub/internal/app/models"
	"github.com/otabek/juniorhub/internal/app/models/dto"
	"github.com/otabek/juniorhub/internal/app/repositories"
	"github.com/otabek/juniorhub/internal/pkg/apperrors"
	"github.com/otabek/juniorhub/internal/pkg/filestorage"
	"github.com/otabek/juniorhub/internal/pkg/helpers"
	"github.com/otabek/juniorhub/internal/pkg/logger"
)

const newsImageDir = "news"

// NewsService manages news articles and their cover images.
type NewsService struct {
	newsRepo repositories.NewsRepository
	images   filestorage.ImageStorage
}

// NewNewsService creates a new NewsService.
func NewNewsService(newsRepo repositories.NewsRepository, images filestorage.ImageStorage) *NewsService {
	return &NewsService{
		newsRepo: newsRepo,
		images:   images,
	}
}

// Create creates a news article, storing the optional cover image. Articles
// start active unless the request says otherwise.
func (s *NewsService) Create(ctx context.Context, req *dto.CreateNewsRequest, image *multipart.FileHeader) (*dto.NewsResponse, error) {
	news := &models.News{
		Title:    req.Title,
		Content:  req.Content,
		IsActive: boolOrDefault(req.IsActive, true),
	}

	if image != nil {
		path, err := s.images.SaveImage(image, newsImageDir)
		if err != nil {
			return nil, err
		}
		news.Image = &path
	}

	if err := s.newsRepo.Create(ctx, news); err != nil {
		s.removeImage(news.Image)
		return nil, err
	}

	logger.Info().Int64("news_id", news.ID).Str("title", news.Title).Msg("News created")
	return dto.NewNewsResponse(news, s.images.ResolveURL), nil
}

// Get returns an active news article for the public API.
func (s *NewsService) Get(ctx context.Context, id int64) (*dto.NewsResponse, error) {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !news.IsActive {
		return nil, apperrors.ErrNewsNotFound
	}
	return dto.NewNewsResponse(news, s.images.ResolveURL), nil
}

// GetAdmin returns a news article regardless of active status.
func (s *NewsService) GetAdmin(ctx context.Context, id int64) (*dto.NewsResponse, error) {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewNewsResponse(news, s.images.ResolveURL), nil
}

// List returns a page of news articles, newest first.
func (s *NewsService) List(ctx context.Context, params repositories.ListParams, page, size int) (*dto.PaginatedResponse, error) {
	params.Offset, params.Limit = helpers.CalculateOffsetLimit(page, size)

	news, total, err := s.newsRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedResponse{
		Items:      dto.NewNewsResponseList(news, s.images.ResolveURL),
		Pagination: helpers.NewPaginationInfo(total, page, params.Limit),
	}, nil
}

// Update replaces the mutable fields of a news article. A new image
// replaces the stored one; the old file is removed after the row is written.
func (s *NewsService) Update(ctx context.Context, id int64, req *dto.UpdateNewsRequest, image *multipart.FileHeader) (*dto.NewsResponse, error) {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldImage := news.Image
	news.Title = req.Title
	news.Content = req.Content
	news.IsActive = boolOrDefault(req.IsActive, news.IsActive)

	if image != nil {
		path, err := s.images.SaveImage(image, newsImageDir)
		if err != nil {
			return nil, err
		}
		news.Image = &path
	}

	if err := s.newsRepo.Update(ctx, news); err != nil {
		if image != nil {
			s.removeImage(news.Image)
		}
		return nil, err
	}

	if image != nil && oldImage != nil {
		s.removeImage(oldImage)
	}

	return dto.NewNewsResponse(news, s.images.ResolveURL), nil
}

// Delete removes a news article and its stored image.
func (s *NewsService) Delete(ctx context.Context, id int64) error {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.newsRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeImage(news.Image)
	logger.Info().Int64("news_id", id).Msg("News deleted")
	return nil
}

// Bulk applies an admin bulk action to the addressed news articles. News
// supports activate, deactivate and duplicate. Duplicated articles share
// the stored image path with their source.
func (s *NewsService) Bulk(ctx context.Context, req *dto.BulkActionRequest) (*dto.BulkActionResult, error) {
	var (
		matched int64
		err     error
	)
	switch req.Action {
	case dto.BulkActionActivate:
		matched, err = s.newsRepo.SetActive(ctx, req.IDs, true)
	case dto.BulkActionDeactivate:
		matched, err = s.newsRepo.SetActive(ctx, req.IDs, false)
	case dto.BulkActionDuplicate:
		matched, err = s.newsRepo.Duplicate(ctx, req.IDs)
	default:
		return nil, apperrors.NewValidationError("action", "unsupported bulk action for news: "+req.Action)
	}
	if err != nil {
		return nil, err
	}
	return &dto.BulkActionResult{Action: req.Action, Matched: matched}, nil
}

func (s *NewsService) removeImage(path *string) {
	if path == nil {
		return
	}
	if err := s.images.DeleteImage(*path); err != nil {
		logger.Warn().Err(err).Str("path", *path).Msg("Failed to remove news image")
	}
}
