package services

import (
	"context"
	"errors"

	"github.com/otabek/juniorhub/internal/app/models/dto"
	"github.com/otabek/juniorhub/internal/app/repositories"
	"github.com/otabek/juniorhub/internal/pkg/apperrors"
	"github.com/otabek/juniorhub/internal/pkg/auth"
	"github.com/otabek/juniorhub/internal/pkg/logger"
)

// AuthService authenticates back-office users and issues bearer tokens.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies the credentials and returns a signed token. Only staff
// accounts may enter the back office.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsStaff {
		logger.Warn().Str("username", user.Username).Msg("Non-staff login attempt rejected")
		return nil, apperrors.ErrPermissionDenied
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("username", user.Username).Msg("Admin logged in")
	return &dto.TokenResponse{Token: token, ExpiresIn: expiresIn}, nil
}
