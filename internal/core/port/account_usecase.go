package port

import (
	"context"

	"fundflow/internal/core/domain"
)

// AccountUseCase is the primary port for user accounts. Login returns a
// signed bearer token on success and ErrUnauthorized on bad credentials.
type AccountUseCase interface {
	Register(ctx context.Context, email, name, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
}
