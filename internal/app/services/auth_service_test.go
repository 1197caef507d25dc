package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/otabek/juniorhub/internal/app/models"
	"github.com/otabek/juniorhub/internal/app/models/dto"
	"github.com/otabek/juniorhub/internal/app/repositories/repositorytest"
	"github.com/otabek/juniorhub/internal/pkg/apperrors"
	"github.com/otabek/juniorhub/internal/pkg/auth"
)

func setupAuthService(t *testing.T) (*AuthService, *repositorytest.UserRepo) {
	t.Helper()
	userRepo := repositorytest.NewUserRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "juniorhub.test",
	})
	return NewAuthService(userRepo, jwtService), userRepo
}

func seedAccount(t *testing.T, userRepo *repositorytest.UserRepo, username, password string, staff bool) {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	err = userRepo.Create(context.Background(), &models.User{
		Username: username,
		Password: hashed,
		IsStaff:  staff,
	})
	if err != nil {
		t.Fatalf("seeding account: %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo := setupAuthService(t)
	seedAccount(t, userRepo, "admin", "s3cret", true)

	token, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}
	if token.Token == "" {
		t.Error("expected a signed token")
	}
	if token.ExpiresIn != 3600 {
		t.Errorf("expected expiresIn 3600, got %d", token.ExpiresIn)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo := setupAuthService(t)
	seedAccount(t, userRepo, "admin", "s3cret", true)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "nope"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "x"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("an unknown username should not be distinguishable, got %v", err)
	}
}

func TestAuthService_Login_NonStaffRejected(t *testing.T) {
	svc, userRepo := setupAuthService(t)
	seedAccount(t, userRepo, "member", "s3cret", false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "member", Password: "s3cret"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("non-staff accounts may not log in, got %v", err)
	}
}
