package ports

import (
	"context"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// Create stores a new account and returns it with its identity assigned.
	// A username collision yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsername returns domain.ErrUserNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
