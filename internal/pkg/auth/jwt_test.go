package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/otabek/juniorhub/internal/pkg/apperrors"
)

func TestValidateToken_RoundTrip(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "juniorhub.test",
	})

	token, expiresIn, err := svc.GenerateToken(7, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expected expiresIn 3600, got %d", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestValidateToken_ExpiredMapsToSharedSentinel(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: -time.Minute,
		TokenIssuer: "juniorhub.test",
	})

	token, _, err := svc.GenerateToken(7, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateToken_WrongSecretMapsToSharedSentinel(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "one-secret", TokenExpiry: time.Hour, TokenIssuer: "juniorhub.test"})
	verifier := NewJWTService(JWTConfig{SecretKey: "another-secret", TokenExpiry: time.Hour, TokenIssuer: "juniorhub.test"})

	token, _, err := issuer.GenerateToken(7, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	_, err = verifier.ValidateToken(token)
	if !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
