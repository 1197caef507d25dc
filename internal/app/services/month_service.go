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

// MonthService manages program months and their nested hero awards.
type MonthService struct {
	monthRepo repositories.MonthRepository
	heroRepo  repositories.HeroRepository
}

// NewMonthService creates a new MonthService.
func NewMonthService(monthRepo repositories.MonthRepository, heroRepo repositories.HeroRepository) *MonthService {
	return &MonthService{
		monthRepo: monthRepo,
		heroRepo:  heroRepo,
	}
}

// Create creates a new month. Months start inactive unless the request
// says otherwise, so a freshly added month does not surface on the public
// site before its content is ready.
func (s *MonthService) Create(ctx context.Context, req *dto.CreateMonthRequest) (*dto.MonthResponse, error) {
	month := &models.Month{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    boolOrDefault(req.IsActive, false),
	}

	if err := s.monthRepo.Create(ctx, month); err != nil {
		return nil, err
	}

	logger.Info().Int64("month_id", month.ID).Str("name", month.Name).Msg("Month created")
	month.Heroes = []*models.MonthHero{}
	return dto.NewMonthResponse(month), nil
}

// Get returns a month with its active hero awards nested, as shown on the
// public site. Months are not themselves filtered by active status.
func (s *MonthService) Get(ctx context.Context, id int64) (*dto.MonthResponse, error) {
	return s.get(ctx, id, true)
}

// GetAdmin returns a month with all of its hero awards, active or not.
func (s *MonthService) GetAdmin(ctx context.Context, id int64) (*dto.MonthResponse, error) {
	return s.get(ctx, id, false)
}

func (s *MonthService) get(ctx context.Context, id int64, activeHeroesOnly bool) (*dto.MonthResponse, error) {
	month, err := s.monthRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.attachHeroes(ctx, []*models.Month{month}, activeHeroesOnly); err != nil {
		return nil, err
	}
	return dto.NewMonthResponse(month), nil
}

// List returns a page of months for the public API, newest first, each with
// its active hero awards nested.
func (s *MonthService) List(ctx context.Context, params repositories.ListParams, page, size int) (*dto.PaginatedResponse, error) {
	params.Offset, params.Limit = helpers.CalculateOffsetLimit(page, size)

	months, total, err := s.monthRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := s.attachHeroes(ctx, months, true); err != nil {
		return nil, err
	}

	return &dto.PaginatedResponse{
		Items:      dto.NewMonthResponseList(months),
		Pagination: helpers.NewPaginationInfo(total, page, params.Limit),
	}, nil
}

// ListAdmin returns a page of months for the back office with all hero
// awards nested and the computed active hero count per month.
func (s *MonthService) ListAdmin(ctx context.Context, params repositories.ListParams, page, size int) (*dto.PaginatedResponse, error) {
	params.Offset, params.Limit = helpers.CalculateOffsetLimit(page, size)

	months, total, err := s.monthRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := s.attachHeroes(ctx, months, false); err != nil {
		return nil, err
	}

	counts, err := s.monthRepo.CountActiveHeroes(ctx, monthIDs(months))
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AdminMonthResponse, 0, len(months))
	for _, m := range months {
		items = append(items, &dto.AdminMonthResponse{
			MonthResponse: *dto.NewMonthResponse(m),
			HeroCount:     counts[m.ID],
		})
	}

	return &dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, page, params.Limit),
	}, nil
}

// Update replaces the mutable fields of a month. A nil is_active keeps the
// current flag.
func (s *MonthService) Update(ctx context.Context, id int64, req *dto.UpdateMonthRequest) (*dto.MonthResponse, error) {
	month, err := s.monthRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	month.Name = req.Name
	month.Description = req.Description
	month.IsActive = boolOrDefault(req.IsActive, month.IsActive)

	if err := s.monthRepo.Update(ctx, month); err != nil {
		return nil, err
	}

	return s.GetAdmin(ctx, id)
}

// Delete removes a month. Its hero awards are removed with it.
func (s *MonthService) Delete(ctx context.Context, id int64) error {
	if err := s.monthRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("month_id", id).Msg("Month deleted")
	return nil
}

// Bulk applies an admin bulk action to the addressed months. Months support
// activate and deactivate.
func (s *MonthService) Bulk(ctx context.Context, req *dto.BulkActionRequest) (*dto.BulkActionResult, error) {
	var (
		matched int64
		err     error
	)
	switch req.Action {
	case dto.BulkActionActivate:
		matched, err = s.monthRepo.SetActive(ctx, req.IDs, true)
	case dto.BulkActionDeactivate:
		matched, err = s.monthRepo.SetActive(ctx, req.IDs, false)
	default:
		return nil, apperrors.NewValidationError("action", "unsupported bulk action for months: "+req.Action)
	}
	if err != nil {
		return nil, err
	}
	return &dto.BulkActionResult{Action: req.Action, Matched: matched}, nil
}

func (s *MonthService) attachHeroes(ctx context.Context, months []*models.Month, activeOnly bool) error {
	if len(months) == 0 {
		return nil
	}

	grouped, err := s.heroRepo.ListByMonthIDs(ctx, monthIDs(months), activeOnly)
	if err != nil {
		return err
	}
	for _, m := range months {
		heroes := grouped[m.ID]
		if heroes == nil {
			heroes = []*models.MonthHero{}
		}
		m.Heroes = heroes
	}
	return nil
}

func monthIDs(months []*models.Month) []int64 {
	ids := make([]int64, 0, len(months))
	for _, m := range months {
		ids = append(ids, m.ID)
	}
	return ids
}
