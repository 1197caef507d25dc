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

func setupMonthService() (*MonthService, *repositorytest.MonthRepo, *repositorytest.HeroRepo) {
	monthRepo := repositorytest.NewMonthRepo()
	heroRepo := repositorytest.NewHeroRepo()
	return NewMonthService(monthRepo, heroRepo), monthRepo, heroRepo
}

func boolPtr(v bool) *bool { return &v }

func TestMonthService_Create_DefaultsInactive(t *testing.T) {
	svc, _, _ := setupMonthService()

	month, err := svc.Create(context.Background(), &dto.CreateMonthRequest{Name: "January 2025"})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if month.IsActive {
		t.Error("a new month should start inactive by default")
	}
	if month.Heroes == nil || len(month.Heroes) != 0 {
		t.Errorf("a new month should have an empty hero list, got %v", month.Heroes)
	}
}

func TestMonthService_Create_DuplicateName(t *testing.T) {
	svc, _, _ := setupMonthService()

	if _, err := svc.Create(context.Background(), &dto.CreateMonthRequest{Name: "January 2025"}); err != nil {
		t.Fatalf("first Create should succeed: %v", err)
	}

	_, err := svc.Create(context.Background(), &dto.CreateMonthRequest{Name: "January 2025"})
	if !errors.Is(err, apperrors.ErrMonthNameExists) {
		t.Errorf("expected ErrMonthNameExists, got %v", err)
	}
}

func TestMonthService_Get_NestsActiveHeroesOnly(t *testing.T) {
	svc, _, heroRepo := setupMonthService()

	month, err := svc.Create(context.Background(), &dto.CreateMonthRequest{Name: "February 2025"})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	ctx := context.Background()
	heroRepo.Create(ctx, &models.MonthHero{MonthID: month.ID, UserID: 1, Type: models.HeroTypeStudent, IsActive: true})
	heroRepo.Create(ctx, &models.MonthHero{MonthID: month.ID, UserID: 2, Type: models.HeroTypeStudent, IsActive: false})

	public, err := svc.Get(ctx, month.ID)
	if err != nil {
		t.Fatalf("Get should succeed: %v", err)
	}
	if len(public.Heroes) != 1 {
		t.Errorf("public view should nest only active heroes, got %d", len(public.Heroes))
	}

	admin, err := svc.GetAdmin(ctx, month.ID)
	if err != nil {
		t.Fatalf("GetAdmin should succeed: %v", err)
	}
	if len(admin.Heroes) != 2 {
		t.Errorf("admin view should nest all heroes, got %d", len(admin.Heroes))
	}
}

func TestMonthService_Get_NotFound(t *testing.T) {
	svc, _, _ := setupMonthService()

	_, err := svc.Get(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrMonthNotFound) {
		t.Errorf("expected ErrMonthNotFound, got %v", err)
	}
}

func TestMonthService_List_IncludesInactiveMonths(t *testing.T) {
	svc, _, _ := setupMonthService()
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateMonthRequest{Name: "January 2025", IsActive: boolPtr(true)})
	svc.Create(ctx, &dto.CreateMonthRequest{Name: "February 2025"})

	result, err := svc.List(ctx, repositories.ListParams{}, 1, 10)
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if result.Pagination.TotalItems != 2 {
		t.Errorf("months are listed regardless of active status, expected 2 items, got %d", result.Pagination.TotalItems)
	}

	months := result.Items.([]*dto.MonthResponse)
	if months[0].Name != "February 2025" {
		t.Errorf("months should come newest first, got %q first", months[0].Name)
	}
}

func TestMonthService_ListAdmin_HeroCounts(t *testing.T) {
	svc, monthRepo, _ := setupMonthService()
	ctx := context.Background()

	month, _ := svc.Create(ctx, &dto.CreateMonthRequest{Name: "March 2025"})
	monthRepo.HeroCounts[month.ID] = 3

	result, err := svc.ListAdmin(ctx, repositories.ListParams{}, 1, 10)
	if err != nil {
		t.Fatalf("ListAdmin should succeed: %v", err)
	}

	months := result.Items.([]*dto.AdminMonthResponse)
	if len(months) != 1 {
		t.Fatalf("expected 1 month, got %d", len(months))
	}
	if months[0].HeroCount != 3 {
		t.Errorf("expected hero_count 3, got %d", months[0].HeroCount)
	}
}

func TestMonthService_Update_KeepsActiveFlagWhenOmitted(t *testing.T) {
	svc, _, _ := setupMonthService()
	ctx := context.Background()

	month, _ := svc.Create(ctx, &dto.CreateMonthRequest{Name: "April 2025", IsActive: boolPtr(true)})

	updated, err := svc.Update(ctx, month.ID, &dto.UpdateMonthRequest{Name: "April 2025 (revised)"})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if !updated.IsActive {
		t.Error("omitting is_active should keep the current flag")
	}
	if updated.Name != "April 2025 (revised)" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
}

func TestMonthService_Bulk_ActivateIsIdempotent(t *testing.T) {
	svc, _, _ := setupMonthService()
	ctx := context.Background()

	a, _ := svc.Create(ctx, &dto.CreateMonthRequest{Name: "May 2025"})
	b, _ := svc.Create(ctx, &dto.CreateMonthRequest{Name: "June 2025"})

	req := &dto.BulkActionRequest{IDs: []int64{a.ID, b.ID, 999}, Action: dto.BulkActionActivate}

	first, err := svc.Bulk(ctx, req)
	if err != nil {
		t.Fatalf("Bulk should succeed: %v", err)
	}
	if first.Matched != 2 {
		t.Errorf("matched should count existing rows only, got %d", first.Matched)
	}

	second, err := svc.Bulk(ctx, req)
	if err != nil {
		t.Fatalf("repeated Bulk should succeed: %v", err)
	}
	if second.Matched != first.Matched {
		t.Errorf("matched counts rows addressed, not rows changed: first %d, second %d", first.Matched, second.Matched)
	}
}

func TestMonthService_Bulk_RejectsUnknownAction(t *testing.T) {
	svc, _, _ := setupMonthService()

	_, err := svc.Bulk(context.Background(), &dto.BulkActionRequest{IDs: []int64{1}, Action: dto.BulkActionDuplicate})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("months do not support duplicate, expected validation error, got %v", err)
	}
}

func TestMonthService_Delete_NotFound(t *testing.T) {
	svc, _, _ := setupMonthService()

	err := svc.Delete(context.Background(), 7)
	if !errors.Is(err, apperrors.ErrMonthNotFound) {
		t.Errorf("expected ErrMonthNotFound, got %v", err)
	}
}
