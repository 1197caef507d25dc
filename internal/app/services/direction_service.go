package services

import (
	"context"

	"github.com/otabek/juniorhub/internal/app/models"
	"github.com/otabek/juniorhub/internal/app/models/dto"
	"github.com/otabek/juniorhub/internal/app/repositories"
	"github.com/otabek/juniorhub/internal/pkg/apperrors"
	"github.com/otabek/juniorhub/internal/pkg/filestorage"
	"github.com/otabek/juniorhub/internal/pkg/helpers"
	"github.com/otabek/juniorhub/internal/pkg/logger"
)

// DirectionService manages study directions and their nested mentor lists.
type DirectionService struct {
	directionRepo repositories.DirectionRepository
	mentorRepo    repositories.MentorRepository
	images        filestorage.ImageStorage
}

// NewDirectionService creates a new DirectionService.
func NewDirectionService(directionRepo repositories.DirectionRepository, mentorRepo repositories.MentorRepository, images filestorage.ImageStorage) *DirectionService {
	return &DirectionService{
		directionRepo: directionRepo,
		mentorRepo:    mentorRepo,
		images:        images,
	}
}

// Create creates a new direction. Directions start active unless the
// request says otherwise.
func (s *DirectionService) Create(ctx context.Context, req *dto.CreateDirectionRequest) (*dto.DirectionResponse, error) {
	direction := &models.Direction{
		Title:       req.Title,
		Description: req.Description,
		IsActive:    boolOrDefault(req.IsActive, true),
	}

	if err := s.directionRepo.Create(ctx, direction); err != nil {
		return nil, err
	}

	logger.Info().Int64("direction_id", direction.ID).Str("title", direction.Title).Msg("Direction created")
	direction.Mentors = []*models.Mentor{}
	return dto.NewDirectionResponse(direction, s.images.ResolveURL), nil
}

// Get returns an active direction with its active mentors nested, as shown
// on the public site.
func (s *DirectionService) Get(ctx context.Context, id int64) (*dto.DirectionResponse, error) {
	direction, err := s.directionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !direction.IsActive {
		return nil, apperrors.ErrDirectionNotFound
	}

	if err := s.attachMentors(ctx, []*models.Direction{direction}, true); err != nil {
		return nil, err
	}
	return dto.NewDirectionResponse(direction, s.images.ResolveURL), nil
}

// GetAdmin returns a direction with all of its mentors, active or not.
func (s *DirectionService) GetAdmin(ctx context.Context, id int64) (*dto.DirectionResponse, error) {
	direction, err := s.directionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.attachMentors(ctx, []*models.Direction{direction}, false); err != nil {
		return nil, err
	}
	return dto.NewDirectionResponse(direction, s.images.ResolveURL), nil
}

// List returns a page of directions ordered by title, each with its active
// mentors nested.
func (s *DirectionService) List(ctx context.Context, params repositories.ListParams, page, size int) (*dto.PaginatedResponse, error) {
	params.Offset, params.Limit = helpers.CalculateOffsetLimit(page, size)

	directions, total, err := s.directionRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := s.attachMentors(ctx, directions, true); err != nil {
		return nil, err
	}

	return &dto.PaginatedResponse{
		Items:      dto.NewDirectionResponseList(directions, s.images.ResolveURL),
		Pagination: helpers.NewPaginationInfo(total, page, params.Limit),
	}, nil
}

// ListAdmin returns a page of directions for the back office with all
// mentors nested and the computed active mentor count per direction.
func (s *DirectionService) ListAdmin(ctx context.Context, params repositories.ListParams, page, size int) (*dto.PaginatedResponse, error) {
	params.Offset, params.Limit = helpers.CalculateOffsetLimit(page, size)

	directions, total, err := s.directionRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := s.attachMentors(ctx, directions, false); err != nil {
		return nil, err
	}

	counts, err := s.mentorRepo.CountActiveByDirection(ctx, directionIDs(directions))
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AdminDirectionResponse, 0, len(directions))
	for _, d := range directions {
		items = append(items, &dto.AdminDirectionResponse{
			DirectionResponse: *dto.NewDirectionResponse(d, s.images.ResolveURL),
			MentorCount:       counts[d.ID],
		})
	}

	return &dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, page, params.Limit),
	}, nil
}

// Update replaces the mutable fields of a direction.
func (s *DirectionService) Update(ctx context.Context, id int64, req *dto.UpdateDirectionRequest) (*dto.DirectionResponse, error) {
	direction, err := s.directionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	direction.Title = req.Title
	direction.Description = req.Description
	direction.IsActive = boolOrDefault(req.IsActive, direction.IsActive)

	if err := s.directionRepo.Update(ctx, direction); err != nil {
		return nil, err
	}

	return s.GetAdmin(ctx, id)
}

// Delete removes a direction. Its mentors survive with their direction
// reference cleared.
func (s *DirectionService) Delete(ctx context.Context, id int64) error {
	if err := s.directionRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("direction_id", id).Msg("Direction deleted")
	return nil
}

// Bulk applies an admin bulk action to the addressed directions. Directions
// support activate and deactivate.
func (s *DirectionService) Bulk(ctx context.Context, req *dto.BulkActionRequest) (*dto.BulkActionResult, error) {
	var (
		matched int64
		err     error
	)
	switch req.Action {
	case dto.BulkActionActivate:
		matched, err = s.directionRepo.SetActive(ctx, req.IDs, true)
	case dto.BulkActionDeactivate:
		matched, err = s.directionRepo.SetActive(ctx, req.IDs, false)
	default:
		return nil, apperrors.NewValidationError("action", "unsupported bulk action for directions: "+req.Action)
	}
	if err != nil {
		return nil, err
	}
	return &dto.BulkActionResult{Action: req.Action, Matched: matched}, nil
}

func (s *DirectionService) attachMentors(ctx context.Context, directions []*models.Direction, activeOnly bool) error {
	if len(directions) == 0 {
		return nil
	}

	grouped, err := s.mentorRepo.ListByDirectionIDs(ctx, directionIDs(directions), activeOnly)
	if err != nil {
		return err
	}
	for _, d := range directions {
		mentors := grouped[d.ID]
		if mentors == nil {
			mentors = []*models.Mentor{}
		}
		d.Mentors = mentors
	}
	return nil
}

func directionIDs(directions []*models.Direction) []int64 {
	ids := make([]int64, 0, len(directions))
	for _, d := range directions {
		ids = append(ids, d.ID)
	}
	return ids
}
