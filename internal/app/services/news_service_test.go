package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/otabek/juniorhub/internal/app/models/dto"
	"github.com/otabek/juniorhub/internal/app/repositories"
	"github.com/otabek/juniorhub/internal/app/repositories/repositorytest"
	"github.com/otabek/juniorhub/internal/pkg/apperrors"
)

func setupNewsService() (*NewsService, *repositorytest.NewsRepo, *repositorytest.ImageStorage) {
	newsRepo := repositorytest.NewNewsRepo()
	images := repositorytest.NewImageStorage()
	return NewNewsService(newsRepo, images), newsRepo, images
}

func TestNewsService_Create_DefaultsActive(t *testing.T) {
	svc, _, _ := setupNewsService()

	news, err := svc.Create(context.Background(), &dto.CreateNewsRequest{Title: "Open day", Content: "Details"}, nil)
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if !news.IsActive {
		t.Error("a new article should start active by default")
	}
	if news.Image != nil {
		t.Errorf("no image part should mean a null image, got %v", *news.Image)
	}
}

func TestNewsService_Create_StoresImage(t *testing.T) {
	svc, _, images := setupNewsService()

	file := &multipart.FileHeader{Filename: "cover.png"}
	news, err := svc.Create(context.Background(), &dto.CreateNewsRequest{Title: "Open day", Content: "Details"}, file)
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if len(images.Saved) != 1 {
		t.Fatalf("expected 1 stored image, got %d", len(images.Saved))
	}
	if news.Image == nil || *news.Image != "/media/news/cover.png" {
		t.Errorf("expected resolved media URL, got %v", news.Image)
	}
}

func TestNewsService_Get_HidesInactiveFromPublic(t *testing.T) {
	svc, _, _ := setupNewsService()
	ctx := context.Background()

	news, _ := svc.Create(ctx, &dto.CreateNewsRequest{Title: "Draft", Content: "x", IsActive: boolPtr(false)}, nil)

	if _, err := svc.Get(ctx, news.ID); !errors.Is(err, apperrors.ErrNewsNotFound) {
		t.Errorf("public Get should hide inactive articles, got %v", err)
	}
	if _, err := svc.GetAdmin(ctx, news.ID); err != nil {
		t.Errorf("admin Get should return inactive articles: %v", err)
	}
}

func TestNewsService_Bulk_DuplicateClones(t *testing.T) {
	svc, newsRepo, _ := setupNewsService()
	ctx := context.Background()

	a, _ := svc.Create(ctx, &dto.CreateNewsRequest{Title: "Hackathon results", Content: "x"}, nil)
	b, _ := svc.Create(ctx, &dto.CreateNewsRequest{Title: "New mentors", Content: "y"}, nil)

	result, err := svc.Bulk(ctx, &dto.BulkActionRequest{IDs: []int64{a.ID, b.ID}, Action: dto.BulkActionDuplicate})
	if err != nil {
		t.Fatalf("Bulk duplicate should succeed: %v", err)
	}
	if result.Matched != 2 {
		t.Errorf("expected 2 cloned articles, got %d", result.Matched)
	}

	all, total, err := newsRepo.List(ctx, repositories.ListParams{Limit: 10})
	if err != nil {
		t.Fatalf("listing after duplicate: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected 4 articles after duplicating 2, got %d", total)
	}

	var copies int
	for _, n := range all {
		if strings.HasSuffix(n.Title, repositories.CopyMarker) {
			copies++
			if n.ID == a.ID || n.ID == b.ID {
				t.Error("clones must get fresh ids")
			}
		}
	}
	if copies != 2 {
		t.Errorf("expected 2 copy-marked titles, got %d", copies)
	}
}

func TestNewsService_Delete_RemovesStoredImage(t *testing.T) {
	svc, _, images := setupNewsService()
	ctx := context.Background()

	file := &multipart.FileHeader{Filename: "cover.png"}
	news, _ := svc.Create(ctx, &dto.CreateNewsRequest{Title: "Open day", Content: "x"}, file)

	if err := svc.Delete(ctx, news.ID); err != nil {
		t.Fatalf("Delete should succeed: %v", err)
	}
	if len(images.Deleted) != 1 || images.Deleted[0] != "news/cover.png" {
		t.Errorf("expected stored image to be removed, deleted=%v", images.Deleted)
	}
}

func TestNewsService_Update_ReplacesImage(t *testing.T) {
	svc, _, images := setupNewsService()
	ctx := context.Background()

	news, _ := svc.Create(ctx, &dto.CreateNewsRequest{Title: "Open day", Content: "x"}, &multipart.FileHeader{Filename: "old.png"})

	updated, err := svc.Update(ctx, news.ID, &dto.UpdateNewsRequest{Title: "Open day", Content: "x"}, &multipart.FileHeader{Filename: "new.png"})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if updated.Image == nil || *updated.Image != "/media/news/new.png" {
		t.Errorf("expected new image URL, got %v", updated.Image)
	}
	if len(images.Deleted) != 1 || images.Deleted[0] != "news/old.png" {
		t.Errorf("old image should be removed after replacement, deleted=%v", images.Deleted)
	}
}
