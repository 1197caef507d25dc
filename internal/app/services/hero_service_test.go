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

func setupHeroService() (*HeroService, *repositorytest.MonthRepo, *repositorytest.UserRepo) {
	heroRepo := repositorytest.NewHeroRepo()
	monthRepo := repositorytest.NewMonthRepo()
	userRepo := repositorytest.NewUserRepo()
	return NewHeroService(heroRepo, monthRepo, userRepo), monthRepo, userRepo
}

func seedMonthAndUser(t *testing.T, monthRepo *repositorytest.MonthRepo, userRepo *repositorytest.UserRepo) (int64, int64) {
	t.Helper()
	ctx := context.Background()

	month := &models.Month{Name: "January 2025"}
	if err := monthRepo.Create(ctx, month); err != nil {
		t.Fatalf("seeding month: %v", err)
	}
	user := &models.User{Username: "aziza", FirstName: "Aziza", LastName: "Karimova"}
	if err := userRepo.Create(ctx, user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return month.ID, user.ID
}

func TestHeroService_Create_Success(t *testing.T) {
	svc, monthRepo, userRepo := setupHeroService()
	monthID, userID := seedMonthAndUser(t, monthRepo, userRepo)

	hero, err := svc.Create(context.Background(), &dto.CreateHeroRequest{
		MonthID: monthID,
		UserID:  userID,
		Type:    string(models.HeroTypeStudent),
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if !hero.IsActive {
		t.Error("a new hero award should start active by default")
	}
	if hero.Type != string(models.HeroTypeStudent) {
		t.Errorf("expected type student, got %q", hero.Type)
	}
}

func TestHeroService_Create_UnknownMonth(t *testing.T) {
	svc, monthRepo, userRepo := setupHeroService()
	_, userID := seedMonthAndUser(t, monthRepo, userRepo)

	_, err := svc.Create(context.Background(), &dto.CreateHeroRequest{
		MonthID: 99,
		UserID:  userID,
		Type:    string(models.HeroTypeStudent),
	})
	if !errors.Is(err, apperrors.ErrMonthNotFound) {
		t.Errorf("expected ErrMonthNotFound, got %v", err)
	}
}

func TestHeroService_Create_UnknownUser(t *testing.T) {
	svc, monthRepo, userRepo := setupHeroService()
	monthID, _ := seedMonthAndUser(t, monthRepo, userRepo)

	_, err := svc.Create(context.Background(), &dto.CreateHeroRequest{
		MonthID: monthID,
		UserID:  99,
		Type:    string(models.HeroTypeStudent),
	})
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestHeroService_Create_DuplicateAward(t *testing.T) {
	svc, monthRepo, userRepo := setupHeroService()
	monthID, userID := seedMonthAndUser(t, monthRepo, userRepo)
	ctx := context.Background()

	req := &dto.CreateHeroRequest{MonthID: monthID, UserID: userID, Type: string(models.HeroTypeStudent)}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("first Create should succeed: %v", err)
	}

	if _, err := svc.Create(ctx, req); !errors.Is(err, apperrors.ErrHeroAlreadyExists) {
		t.Errorf("same user, month and type should conflict, got %v", err)
	}

	// The same user may hold the other hero type in the same month.
	teacher := &dto.CreateHeroRequest{MonthID: monthID, UserID: userID, Type: string(models.HeroTypeTeacher)}
	if _, err := svc.Create(ctx, teacher); err != nil {
		t.Errorf("a different type for the same user and month should be allowed: %v", err)
	}
}

func TestHeroService_Get_HidesInactiveFromPublic(t *testing.T) {
	svc, monthRepo, userRepo := setupHeroService()
	monthID, userID := seedMonthAndUser(t, monthRepo, userRepo)
	ctx := context.Background()

	hero, err := svc.Create(ctx, &dto.CreateHeroRequest{
		MonthID:  monthID,
		UserID:   userID,
		Type:     string(models.HeroTypeStudent),
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	if _, err := svc.Get(ctx, hero.ID); !errors.Is(err, apperrors.ErrHeroNotFound) {
		t.Errorf("public Get should hide inactive awards, got %v", err)
	}
	if _, err := svc.GetAdmin(ctx, hero.ID); err != nil {
		t.Errorf("admin Get should return inactive awards: %v", err)
	}
}

func TestHeroService_List_FiltersByType(t *testing.T) {
	svc, monthRepo, userRepo := setupHeroService()
	monthID, userID := seedMonthAndUser(t, monthRepo, userRepo)
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateHeroRequest{MonthID: monthID, UserID: userID, Type: string(models.HeroTypeStudent)})
	svc.Create(ctx, &dto.CreateHeroRequest{MonthID: monthID, UserID: userID, Type: string(models.HeroTypeTeacher)})

	teacherType := models.HeroTypeTeacher
	result, err := svc.List(ctx, repositories.ListParams{Type: &teacherType}, 1, 10)
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if result.Pagination.TotalItems != 1 {
		t.Errorf("expected 1 teacher award, got %d", result.Pagination.TotalItems)
	}
}

func TestHeroService_Bulk_SetTeacher(t *testing.T) {
	svc, monthRepo, userRepo := setupHeroService()
	monthID, userID := seedMonthAndUser(t, monthRepo, userRepo)
	ctx := context.Background()

	hero, _ := svc.Create(ctx, &dto.CreateHeroRequest{MonthID: monthID, UserID: userID, Type: string(models.HeroTypeStudent)})

	result, err := svc.Bulk(ctx, &dto.BulkActionRequest{IDs: []int64{hero.ID}, Action: dto.BulkActionSetTeacher})
	if err != nil {
		t.Fatalf("Bulk should succeed: %v", err)
	}
	if result.Matched != 1 {
		t.Errorf("expected 1 matched, got %d", result.Matched)
	}

	updated, _ := svc.GetAdmin(ctx, hero.ID)
	if updated.Type != string(models.HeroTypeTeacher) {
		t.Errorf("expected type teacher after bulk action, got %q", updated.Type)
	}
}

func TestHeroService_Bulk_RejectsUnknownAction(t *testing.T) {
	svc, _, _ := setupHeroService()

	_, err := svc.Bulk(context.Background(), &dto.BulkActionRequest{IDs: []int64{1}, Action: dto.BulkActionDuplicate})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("heroes do not support duplicate, expected validation error, got %v", err)
	}
}
