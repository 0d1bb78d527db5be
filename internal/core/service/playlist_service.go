package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
	"github.com/ljhwogur/raid-hub/internal/core/ports"
)

type playlistService struct {
	client ports.PlaylistClient
	log    zerolog.Logger
}

// NewPlaylistService returns a PlaylistService over the given upstream client.
func NewPlaylistService(client ports.PlaylistClient, log zerolog.Logger) ports.PlaylistService {
	return &playlistService{client: client, log: log}
}

// FetchPage returns one upstream page exactly as parsed, continuation token
// and total count included.
func (s *playlistService) FetchPage(ctx context.Context, q ports.PlaylistQuery) (*domain.PlaylistPage, error) {
	if err := s.validate(q); err != nil {
		return nil, err
	}

	return s.client.FetchPage(ctx, ports.PageRequest{
		PlaylistID: q.PlaylistID,
		PageSize:   domain.NormalizePageSize(q.PageSize),
		PageToken:  q.PageToken,
	})
}

// FetchAll follows continuation tokens one request at a time until a page
// has none. The result keeps the first page's total, carries no token, and
// holds every item in page order. Any failure discards the pages read so far.
func (s *playlistService) FetchAll(ctx context.Context, q ports.PlaylistQuery) (*domain.PlaylistPage, error) {
	if err := s.validate(q); err != nil {
		return nil, err
	}

	req := ports.PageRequest{
		PlaylistID: q.PlaylistID,
		PageSize:   domain.NormalizePageSize(q.PageSize),
	}

	var (
		total *int
		items = []domain.PlaylistItem{}
		pages int
		seen  = map[string]struct{}{}
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := s.client.FetchPage(ctx, req)
		if err != nil {
			s.log.Error().Err(err).Str("playlist_id", q.PlaylistID).Int("pages_read", pages).Msg("playlist aggregation failed")
			return nil, err
		}
		if pages == 0 {
			total = page.TotalResults
		}
		pages++
		items = append(items, page.Items...)

		if page.NextPageToken == nil || strings.TrimSpace(*page.NextPageToken) == "" {
			break
		}
		next := *page.NextPageToken
		if _, dup := seen[next]; dup {
			s.log.Warn().Str("playlist_id", q.PlaylistID).Str("page_token", next).Int("pages_read", pages).Msg("continuation token repeated, stopping")
			break
		}
		seen[next] = struct{}{}
		req.PageToken = next
	}

	s.log.Debug().Str("playlist_id", q.PlaylistID).Int("pages", pages).Int("items", len(items)).Msg("playlist aggregated")

	playlistID := q.PlaylistID
	return &domain.PlaylistPage{
		PlaylistID:   &playlistID,
		TotalResults: total,
		Items:        items,
	}, nil
}

// validate runs before any network call.
func (s *playlistService) validate(q ports.PlaylistQuery) error {
	if strings.TrimSpace(q.PlaylistID) == "" {
		return domain.ErrPlaylistIDRequired
	}
	if !s.client.HasCredential() {
		return domain.ErrMissingAPIKey
	}
	return nil
}
