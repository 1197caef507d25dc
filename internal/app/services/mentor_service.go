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

const mentorImageDir = "mentors"

// MentorService manages mentors and their profile images.
type MentorService struct {
	mentorRepo    repositories.MentorRepository
	directionRepo repositories.DirectionRepository
	images        filestorage.ImageStorage
}

// NewMentorService creates a new MentorService.
func NewMentorService(mentorRepo repositories.MentorRepository, directionRepo repositories.DirectionRepository, images filestorage.ImageStorage) *MentorService {
	return &MentorService{
		mentorRepo:    mentorRepo,
		directionRepo: directionRepo,
		images:        images,
	}
}

// Create creates a new mentor, storing the optional profile image. Mentors
// start active unless the request says otherwise.
func (s *MentorService) Create(ctx context.Context, req *dto.CreateMentorRequest, image *multipart.FileHeader) (*dto.MentorResponse, error) {
	if req.DirectionID != nil {
		if _, err := s.directionRepo.GetByID(ctx, *req.DirectionID); err != nil {
			return nil, err
		}
	}

	mentor := &models.Mentor{
		FullName:    req.FullName,
		DirectionID: req.DirectionID,
		Description: req.Description,
		Bio:         req.Bio,
		IsActive:    boolOrDefault(req.IsActive, true),
	}

	if image != nil {
		path, err := s.images.SaveImage(image, mentorImageDir)
		if err != nil {
			return nil, err
		}
		mentor.Image = &path
	}

	if err := s.mentorRepo.Create(ctx, mentor); err != nil {
		s.removeImage(mentor.Image)
		return nil, err
	}

	logger.Info().Int64("mentor_id", mentor.ID).Str("full_name", mentor.FullName).Msg("Mentor created")
	return s.GetAdmin(ctx, mentor.ID)
}

// Get returns an active mentor for the public API.
func (s *MentorService) Get(ctx context.Context, id int64) (*dto.MentorResponse, error) {
	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !mentor.IsActive {
		return nil, apperrors.ErrMentorNotFound
	}
	return dto.NewMentorResponse(mentor, s.images.ResolveURL), nil
}

// GetAdmin returns a mentor regardless of active status.
func (s *MentorService) GetAdmin(ctx context.Context, id int64) (*dto.MentorResponse, error) {
	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewMentorResponse(mentor, s.images.ResolveURL), nil
}

// List returns a page of mentors ordered by full name.
func (s *MentorService) List(ctx context.Context, params repositories.ListParams, page, size int) (*dto.PaginatedResponse, error) {
	params.Offset, params.Limit = helpers.CalculateOffsetLimit(page, size)

	mentors, total, err := s.mentorRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedResponse{
		Items:      dto.NewMentorResponseList(mentors, s.images.ResolveURL),
		Pagination: helpers.NewPaginationInfo(total, page, params.Limit),
	}, nil
}

// Update replaces the mutable fields of a mentor. A new image replaces the
// stored one; the old file is removed after the row is written.
func (s *MentorService) Update(ctx context.Context, id int64, req *dto.UpdateMentorRequest, image *multipart.FileHeader) (*dto.MentorResponse, error) {
	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DirectionID != nil && (mentor.DirectionID == nil || *req.DirectionID != *mentor.DirectionID) {
		if _, err := s.directionRepo.GetByID(ctx, *req.DirectionID); err != nil {
			return nil, err
		}
	}

	oldImage := mentor.Image
	mentor.FullName = req.FullName
	mentor.DirectionID = req.DirectionID
	mentor.Description = req.Description
	mentor.Bio = req.Bio
	mentor.IsActive = boolOrDefault(req.IsActive, mentor.IsActive)

	if image != nil {
		path, err := s.images.SaveImage(image, mentorImageDir)
		if err != nil {
			return nil, err
		}
		mentor.Image = &path
	}

	if err := s.mentorRepo.Update(ctx, mentor); err != nil {
		if image != nil {
			s.removeImage(mentor.Image)
		}
		return nil, err
	}

	if image != nil && oldImage != nil {
		s.removeImage(oldImage)
	}

	return s.GetAdmin(ctx, id)
}

// Delete removes a mentor and its stored image.
func (s *MentorService) Delete(ctx context.Context, id int64) error {
	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.mentorRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeImage(mentor.Image)
	logger.Info().Int64("mentor_id", id).Msg("Mentor deleted")
	return nil
}

// Bulk applies an admin bulk action to the addressed mentors. Mentors
// support activate and deactivate.
func (s *MentorService) Bulk(ctx context.Context, req *dto.BulkActionRequest) (*dto.BulkActionResult, error) {
	var (
		matched int64
		err     error
	)
	switch req.Action {
	case dto.BulkActionActivate:
		matched, err = s.mentorRepo.SetActive(ctx, req.IDs, true)
	case dto.BulkActionDeactivate:
		matched, err = s.mentorRepo.SetActive(ctx, req.IDs, false)
	default:
		return nil, apperrors.NewValidationError("action", "unsupported bulk action for mentors: "+req.Action)
	}
	if err != nil {
		return nil, err
	}
	return &dto.BulkActionResult{Action: req.Action, Matched: matched}, nil
}

func (s *MentorService) removeImage(path *string) {
	if path == nil {
		return
	}
	if err := s.images.DeleteImage(*path); err != nil {
		logger.Warn().Err(err).Str("path", *path).Msg("Failed to remove mentor image")
	}
}
