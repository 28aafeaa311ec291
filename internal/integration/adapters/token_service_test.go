package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainerror "github.com/condoledger/backend/internal/domain/error"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims CustomClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func accessClaims(userID uuid.UUID, expiresIn time.Duration) CustomClaims {
	now := time.Now().UTC()
	return CustomClaims{
		UserID:    userID.String(),
		Email:     "admin@example.com",
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID.String(),
		},
	}
}

func TestValidateAccessToken(t *testing.T) {
	service := NewTokenService(testSecret)
	userID := uuid.New()

	token := signToken(t, testSecret, accessClaims(userID, time.Hour))
	claims, err := service.ValidateAccessToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("unexpected email %s", claims.Email)
	}
}

func TestValidateAccessToken_Expired(t *testing.T) {
	service := NewTokenService(testSecret)

	token := signToken(t, testSecret, accessClaims(uuid.New(), -time.Hour))
	_, err := service.ValidateAccessToken(context.Background(), token)
	if !errors.Is(err, domainerror.ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	service := NewTokenService(testSecret)

	token := signToken(t, "other-secret", accessClaims(uuid.New(), time.Hour))
	_, err := service.ValidateAccessToken(context.Background(), token)
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateAccessToken_WrongTokenType(t *testing.T) {
	service := NewTokenService(testSecret)

	claims := accessClaims(uuid.New(), time.Hour)
	claims.TokenType = "refresh"
	token := signToken(t, testSecret, claims)

	_, err := service.ValidateAccessToken(context.Background(), token)
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	service := NewTokenService(testSecret)

	_, err := service.ValidateAccessToken(context.Background(), "not-a-token")
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
