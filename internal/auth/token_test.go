package auth

import (
	"errors"
	"testing"
	"time"

	"fundflow/internal/config/configs"
	"fundflow/internal/core/port"
)

func testConfig() configs.Auth {
	return configs.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour, Issuer: "fundflow-test"}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken(42, cfg)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	userID, err := ValidateToken(token, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42, got %d", userID)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, testConfig())
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if _, err = ValidateToken(token, "other-secret"); !errors.Is(err, port.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testConfig()
	cfg.TokenTTL = -time.Minute

	token, err := GenerateToken(42, cfg)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if _, err = ValidateToken(token, cfg.JWTSecret); !errors.Is(err, port.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token", testConfig().JWTSecret); !errors.Is(err, port.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
