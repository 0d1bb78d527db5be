package ports

import (
	"context"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
)

// VideoRepository defines persistence operations for raid videos.
type VideoRepository interface {
	Create(ctx context.Context, v *domain.RaidVideo) (*domain.RaidVideo, error)
	// FindAll returns every record in insertion order.
	FindAll(ctx context.Context) ([]domain.RaidVideo, error)
	// Delete removes the record with the given id. Unknown ids are not an error.
	Delete(ctx context.Context, id string) error
}
