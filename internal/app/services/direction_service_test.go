package services

import (
	"context"
	"errors"
	"testing"

	"github.com/otabek/juniorhub/internal/app/models"
	"github.com/otabek/juniorhub/internal/app/models/dto"
	"github.com/otabek/juniorhub/internal/app/repositories"
	"github.com/otabek/juniorhub/internal/app/repositories/repositorytest"
	"github.com/otabek/juniorhub/internal/pkg/apperrors"
)

func setupDirectionService() (*DirectionService, *repositorytest.DirectionRepo, *repositorytest.MentorRepo) {
	directionRepo := repositorytest.NewDirectionRepo()
	mentorRepo := repositorytest.NewMentorRepo()
	return NewDirectionService(directionRepo, mentorRepo, repositorytest.NewImageStorage()), directionRepo, mentorRepo
}

func TestDirectionService_Create_DefaultsActive(t *testing.T) {
	svc, _, _ := setupDirectionService()

	direction, err := svc.Create(context.Background(), &dto.CreateDirectionRequest{Title: "Frontend"})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if !direction.IsActive {
		t.Error("a new direction should start active by default")
	}
}

func TestDirectionService_Get_NestsActiveMentorsOnly(t *testing.T) {
	svc, _, mentorRepo := setupDirectionService()
	ctx := context.Background()

	direction, err := svc.Create(ctx, &dto.CreateDirectionRequest{Title: "Backend"})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	mentorRepo.Create(ctx, &models.Mentor{FullName: "Botir Aliyev", DirectionID: &direction.ID, IsActive: true})
	mentorRepo.Create(ctx, &models.Mentor{FullName: "Diyor Nazarov", DirectionID: &direction.ID, IsActive: false})

	public, err := svc.Get(ctx, direction.ID)
	if err != nil {
		t.Fatalf("Get should succeed: %v", err)
	}
	if len(public.Mentors) != 1 {
		t.Errorf("public view should nest only active mentors, got %d", len(public.Mentors))
	}

	admin, err := svc.GetAdmin(ctx, direction.ID)
	if err != nil {
		t.Fatalf("GetAdmin should succeed: %v", err)
	}
	if len(admin.Mentors) != 2 {
		t.Errorf("admin view should nest all mentors, got %d", len(admin.Mentors))
	}
}

func TestDirectionService_Get_HidesInactiveFromPublic(t *testing.T) {
	svc, _, _ := setupDirectionService()
	ctx := context.Background()

	direction, _ := svc.Create(ctx, &dto.CreateDirectionRequest{Title: "Design", IsActive: boolPtr(false)})

	if _, err := svc.Get(ctx, direction.ID); !errors.Is(err, apperrors.ErrDirectionNotFound) {
		t.Errorf("public Get should hide inactive directions, got %v", err)
	}
}

func TestDirectionService_ListAdmin_MentorCounts(t *testing.T) {
	svc, _, mentorRepo := setupDirectionService()
	ctx := context.Background()

	direction, _ := svc.Create(ctx, &dto.CreateDirectionRequest{Title: "Mobile"})
	mentorRepo.Create(ctx, &models.Mentor{FullName: "Botir Aliyev", DirectionID: &direction.ID, IsActive: true})
	mentorRepo.Create(ctx, &models.Mentor{FullName: "Diyor Nazarov", DirectionID: &direction.ID, IsActive: false})

	result, err := svc.ListAdmin(ctx, repositories.ListParams{}, 1, 10)
	if err != nil {
		t.Fatalf("ListAdmin should succeed: %v", err)
	}

	directions := result.Items.([]*dto.AdminDirectionResponse)
	if len(directions) != 1 {
		t.Fatalf("expected 1 direction, got %d", len(directions))
	}
	if directions[0].MentorCount != 1 {
		t.Errorf("mentor_count should count active mentors only, got %d", directions[0].MentorCount)
	}
}
