package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"fundflow/internal/auth"
	"fundflow/internal/config/configs"
	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
	"fundflow/internal/core/port/mocks"
)

func testAuthConfig() configs.Auth {
	return configs.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour, Issuer: "fundflow-test"}
}

// TestRegisterHashesPassword ensures the stored hash verifies against the
// original password and the plaintext is never persisted.
func TestRegisterHashesPassword(t *testing.T) {
	users := mocks.NewMockUserRepository(t)

	var stored domain.User
	users.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(ctx context.Context, u *domain.User) {
			u.ID = 1
			stored = *u
		}).
		Return(nil)

	svc := NewAccountUseCase(users, testAuthConfig())

	user, err := svc.Register(context.Background(), " Donor@Example.COM ", "Donor", "correct horse")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.Email != "donor@example.com" {
		t.Fatalf("expected normalised email, got %q", user.Email)
	}
	if stored.PasswordHash == "correct horse" {
		t.Fatal("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")) != nil {
		t.Fatal("stored hash does not verify against the password")
	}
}

// TestRegisterRejectsShortPassword covers the minimum length guard.
func TestRegisterRejectsShortPassword(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	svc := NewAccountUseCase(users, testAuthConfig())

	_, err := svc.Register(context.Background(), "donor@example.com", "Donor", "short")
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// TestLoginIssuesValidToken round-trips the issued token through the
// validator.
func TestLoginIssuesValidToken(t *testing.T) {
	users := mocks.NewMockUserRepository(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	users.EXPECT().
		GetByEmail(mock.Anything, "donor@example.com").
		Return(&domain.User{ID: 42, Email: "donor@example.com", PasswordHash: string(hash)}, nil)

	cfg := testAuthConfig()
	svc := NewAccountUseCase(users, cfg)

	token, err := svc.Login(context.Background(), "donor@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	userID, err := auth.ValidateToken(token, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42 in token, got %d", userID)
	}
}

// TestLoginWrongPassword ensures bad credentials and unknown accounts look
// identical to the caller.
func TestLoginWrongPassword(t *testing.T) {
	users := mocks.NewMockUserRepository(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	users.EXPECT().
		GetByEmail(mock.Anything, "donor@example.com").
		Return(&domain.User{ID: 42, Email: "donor@example.com", PasswordHash: string(hash)}, nil)

	svc := NewAccountUseCase(users, testAuthConfig())

	_, err = svc.Login(context.Background(), "donor@example.com", "wrong")
	if !errors.Is(err, port.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

// TestLoginUnknownEmail maps a missing account to unauthorized, not not
// found.
func TestLoginUnknownEmail(t *testing.T) {
	users := mocks.NewMockUserRepository(t)

	users.EXPECT().
		GetByEmail(mock.Anything, "ghost@example.com").
		Return(nil, port.ErrNotFound)

	svc := NewAccountUseCase(users, testAuthConfig())

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, port.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
