package services

import (
	"context"

	"github.com/otabek/juniorhub/internal/app/models"
	"github.com/otabek/juniorhub/internal/app/models/dto"
	"github.com/otabek/juniorhub/internal/app/repositories"
	"github.com/otabek/juniorhub/internal/pkg/apperrors"
	"github.com/otabek/juniorhub/internal/pkg/helpers"
	"github.com/otabek/juniorhub/internal/pkg/logger"
)

// HeroService manages "hero of the month" awards.
type HeroService struct {
	heroRepo  repositories.HeroRepository
	monthRepo repositories.MonthRepository
	userRepo  repositories.UserRepository
}

// NewHeroService creates a new HeroService.
func NewHeroService(heroRepo repositories.HeroRepository, monthRepo repositories.MonthRepository, userRepo repositories.UserRepository) *HeroService {
	return &HeroService{
		heroRepo:  heroRepo,
		monthRepo: monthRepo,
		userRepo:  userRepo,
	}
}

// Create awards a user as hero of a month. The month and user must exist,
// and the same user cannot hold the same hero type twice in one month.
func (s *HeroService) Create(ctx context.Context, req *dto.CreateHeroRequest) (*dto.HeroResponse, error) {
	if _, err := s.monthRepo.GetByID(ctx, req.MonthID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	hero := &models.MonthHero{
		MonthID:     req.MonthID,
		UserID:      req.UserID,
		Type:        models.HeroType(req.Type),
		Description: req.Description,
		IsActive:    boolOrDefault(req.IsActive, true),
	}

	if err := s.heroRepo.Create(ctx, hero); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("hero_id", hero.ID).
		Int64("month_id", hero.MonthID).
		Int64("user_id", hero.UserID).
		Str("type", string(hero.Type)).
		Msg("Month hero created")

	// Re-read to pick up the joined month name and user fields.
	return s.GetAdmin(ctx, hero.ID)
}

// Get returns an active hero award for the public API. Inactive awards are
// not visible there.
func (s *HeroService) Get(ctx context.Context, id int64) (*dto.HeroResponse, error) {
	hero, err := s.heroRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !hero.IsActive {
		return nil, apperrors.ErrHeroNotFound
	}
	return dto.NewHeroResponse(hero), nil
}

// GetAdmin returns a hero award regardless of active status.
func (s *HeroService) GetAdmin(ctx context.Context, id int64) (*dto.HeroResponse, error) {
	hero, err := s.heroRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewHeroResponse(hero), nil
}

// List returns a page of hero awards, newest first.
func (s *HeroService) List(ctx context.Context, params repositories.ListParams, page, size int) (*dto.PaginatedResponse, error) {
	params.Offset, params.Limit = helpers.CalculateOffsetLimit(page, size)

	heroes, total, err := s.heroRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedResponse{
		Items:      dto.NewHeroResponseList(heroes),
		Pagination: helpers.NewPaginationInfo(total, page, params.Limit),
	}, nil
}

// Update replaces the mutable fields of a hero award.
func (s *HeroService) Update(ctx context.Context, id int64, req *dto.UpdateHeroRequest) (*dto.HeroResponse, error) {
	hero, err := s.heroRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.MonthID != hero.MonthID {
		if _, err := s.monthRepo.GetByID(ctx, req.MonthID); err != nil {
			return nil, err
		}
	}
	if req.UserID != hero.UserID {
		if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
			return nil, err
		}
	}

	hero.MonthID = req.MonthID
	hero.UserID = req.UserID
	hero.Type = models.HeroType(req.Type)
	hero.Description = req.Description
	hero.IsActive = boolOrDefault(req.IsActive, hero.IsActive)

	if err := s.heroRepo.Update(ctx, hero); err != nil {
		return nil, err
	}

	return s.GetAdmin(ctx, id)
}

// Delete removes a hero award.
func (s *HeroService) Delete(ctx context.Context, id int64) error {
	if err := s.heroRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("hero_id", id).Msg("Month hero deleted")
	return nil
}

// Bulk applies an admin bulk action to the addressed hero awards. Heroes
// support activate, deactivate, set_student and set_teacher.
func (s *HeroService) Bulk(ctx context.Context, req *dto.BulkActionRequest) (*dto.BulkActionResult, error) {
	var (
		matched int64
		err     error
	)
	switch req.Action {
	case dto.BulkActionActivate:
		matched, err = s.heroRepo.SetActive(ctx, req.IDs, true)
	case dto.BulkActionDeactivate:
		matched, err = s.heroRepo.SetActive(ctx, req.IDs, false)
	case dto.BulkActionSetStudent:
		matched, err = s.heroRepo.SetType(ctx, req.IDs, models.HeroTypeStudent)
	case dto.BulkActionSetTeacher:
		matched, err = s.heroRepo.SetType(ctx, req.IDs, models.HeroTypeTeacher)
	default:
		return nil, apperrors.NewValidationError("action", "unsupported bulk action for heroes: "+req.Action)
	}
	if err != nil {
		return nil, err
	}
	return &dto.BulkActionResult{Action: req.Action, Matched: matched}, nil
}
