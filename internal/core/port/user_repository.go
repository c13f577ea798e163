package port

import (
	"context"

	"fundflow/internal/core/domain"
)

// UserRepository is the outbound port for account rows. Create returns
// ErrConflict on a duplicate email.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
