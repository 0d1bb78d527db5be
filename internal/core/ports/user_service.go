package ports

import (
	"context"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
)

type UserService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	EnsureAdmin(ctx context.Context, username, password string) error
}
