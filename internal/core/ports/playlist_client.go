package ports

import (
	"context"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
)

// PageRequest is one upstream playlistItems call. PageSize is already
// normalized and PageToken is empty for the first page.
type PageRequest struct {
	PlaylistID string
	PageSize   int
	PageToken  string
}

// PlaylistClient fetches single playlist pages from the video hosting API.
type PlaylistClient interface {
	// HasCredential reports whether an API key is configured.
	HasCredential() bool
	// FetchPage issues exactly one upstream request. Failures are reported as
	// *domain.UpstreamError.
	FetchPage(ctx context.Context, req PageRequest) (*domain.PlaylistPage, error)
}
