package services

import (
	"context"
	"errors"
	"testing"

	"github.com/otabek/juniorhub/internal/app/models"
	"github.com/otabek/juniorhub/internal/app/models/dto"
	"github.com/otabek/juniorhub/internal/app/repositories/repositorytest"
	"github.com/otabek/juniorhub/internal/pkg/apperrors"
)

func setupMentorService() (*MentorService, *repositorytest.MentorRepo, *repositorytest.DirectionRepo) {
	mentorRepo := repositorytest.NewMentorRepo()
	directionRepo := repositorytest.NewDirectionRepo()
	return NewMentorService(mentorRepo, directionRepo, repositorytest.NewImageStorage()), mentorRepo, directionRepo
}

func TestMentorService_Create_UnknownDirection(t *testing.T) {
	svc, _, _ := setupMentorService()

	directionID := int64(42)
	_, err := svc.Create(context.Background(), &dto.CreateMentorRequest{
		FullName:    "Botir Aliyev",
		DirectionID: &directionID,
	}, nil)
	if !errors.Is(err, apperrors.ErrDirectionNotFound) {
		t.Errorf("expected ErrDirectionNotFound, got %v", err)
	}
}

func TestMentorService_Create_WithoutDirection(t *testing.T) {
	svc, _, _ := setupMentorService()

	mentor, err := svc.Create(context.Background(), &dto.CreateMentorRequest{FullName: "Botir Aliyev"}, nil)
	if err != nil {
		t.Fatalf("a mentor without a direction is valid: %v", err)
	}
	if mentor.DirectionID != nil {
		t.Errorf("expected null direction, got %v", *mentor.DirectionID)
	}
	if !mentor.IsActive {
		t.Error("a new mentor should start active by default")
	}
}

func TestMentorService_DirectionDelete_KeepsMentor(t *testing.T) {
	svc, mentorRepo, directionRepo := setupMentorService()
	ctx := context.Background()

	direction := &models.Direction{Title: "Backend", IsActive: true}
	directionRepo.Create(ctx, direction)

	mentor, err := svc.Create(ctx, &dto.CreateMentorRequest{FullName: "Botir Aliyev", DirectionID: &direction.ID}, nil)
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	// Deleting the direction nulls the reference, mirroring the database's
	// SET NULL behavior.
	directionRepo.Delete(ctx, direction.ID)
	for _, m := range mentorRepo.Mentors {
		if m.DirectionID != nil && *m.DirectionID == direction.ID {
			m.DirectionID = nil
		}
	}

	kept, err := svc.GetAdmin(ctx, mentor.ID)
	if err != nil {
		t.Fatalf("mentor should survive its direction: %v", err)
	}
	if kept.DirectionID != nil {
		t.Errorf("expected null direction after direction delete, got %v", *kept.DirectionID)
	}
}

func TestMentorService_Get_HidesInactiveFromPublic(t *testing.T) {
	svc, _, _ := setupMentorService()
	ctx := context.Background()

	mentor, _ := svc.Create(ctx, &dto.CreateMentorRequest{FullName: "Botir Aliyev", IsActive: boolPtr(false)}, nil)

	if _, err := svc.Get(ctx, mentor.ID); !errors.Is(err, apperrors.ErrMentorNotFound) {
		t.Errorf("public Get should hide inactive mentors, got %v", err)
	}
	if _, err := svc.GetAdmin(ctx, mentor.ID); err != nil {
		t.Errorf("admin Get should return inactive mentors: %v", err)
	}
}
