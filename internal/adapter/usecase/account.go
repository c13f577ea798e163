package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"fundflow/internal/auth"
	"fundflow/internal/config/configs"
	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

// AccountUseCase implements port.AccountUseCase.
type AccountUseCase struct {
	users port.UserRepository
	cfg   configs.Auth
}

// NewAccountUseCase creates the usecase with its outbound ports.
func NewAccountUseCase(users port.UserRepository, cfg configs.Auth) *AccountUseCase {
	return &AccountUseCase{users: users, cfg: cfg}
}

// Register creates an account with a bcrypt password hash.
func (u *AccountUseCase) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required: %w", port.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", port.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
	}
	if err = u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and returns a signed bearer token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (u *AccountUseCase) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := u.users.GetByEmail(ctx, email)
	if errors.Is(err, port.ErrNotFound) {
		return "", port.ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", port.ErrUnauthorized
	}
	return auth.GenerateToken(user.ID, u.cfg)
}

// Get returns an account by id.
func (u *AccountUseCase) Get(ctx context.Context, id int64) (*domain.User, error) {
	return u.users.GetByID(ctx, id)
}
