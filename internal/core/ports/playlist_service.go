package ports

import (
	"context"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
)

// PlaylistQuery selects a playlist listing. A nil PageSize means the API
// maximum. PageToken is ignored by FetchAll.
type PlaylistQuery struct {
	PlaylistID string
	PageSize   *int
	PageToken  string
}

type PlaylistService interface {
	FetchPage(ctx context.Context, q PlaylistQuery) (*domain.PlaylistPage, error)
	FetchAll(ctx context.Context, q PlaylistQuery) (*domain.PlaylistPage, error)
}
