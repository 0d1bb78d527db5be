package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
	"github.com/ljhwogur/raid-hub/internal/core/ports"
)

func onePage(q ports.PlaylistQuery) *domain.PlaylistPage {
	id := q.PlaylistID
	video := "v1"
	return &domain.PlaylistPage{
		PlaylistID: &id,
		Items:      []domain.PlaylistItem{{VideoID: &video}},
	}
}

func TestPlaylistHandler_Items_SinglePage(t *testing.T) {
	e := newEcho()
	var got ports.PlaylistQuery
	stub := &stubPlaylistService{
		pageFn: func(ctx context.Context, q ports.PlaylistQuery) (*domain.PlaylistPage, error) {
			got = q
			return onePage(q), nil
		},
		allFn: func(ctx context.Context, q ports.PlaylistQuery) (*domain.PlaylistPage, error) {
			t.Fatalf("FetchAll should not be called")
			return nil, nil
		},
	}

	c, rec := newJSONContext(e, http.MethodGet, "/api/youtube/playlist-items?playlistId=PL1&maxResults=10&pageToken=CAUQAA", nil)
	if err := NewPlaylistHandler(stub).Items(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got.PlaylistID != "PL1" || got.PageToken != "CAUQAA" || got.PageSize == nil || *got.PageSize != 10 {
		t.Fatalf("unexpected query: %+v", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["playlistId"] != "PL1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPlaylistHandler_Items_Defaults(t *testing.T) {
	e := newEcho()
	var got ports.PlaylistQuery
	stub := &stubPlaylistService{
		pageFn: func(ctx context.Context, q ports.PlaylistQuery) (*domain.PlaylistPage, error) {
			got = q
			return onePage(q), nil
		},
	}

	c, _ := newJSONContext(e, http.MethodGet, "/api/youtube/playlist-items?playlistId=PL1&maxResults=&fetchAll=", nil)
	if err := NewPlaylistHandler(stub).Items(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.PageSize != nil {
		t.Fatalf("expected nil page size, got %d", *got.PageSize)
	}
}

func TestPlaylistHandler_Items_FetchAll(t *testing.T) {
	e := newEcho()
	called := false
	stub := &stubPlaylistService{
		pageFn: func(ctx context.Context, q ports.PlaylistQuery) (*domain.PlaylistPage, error) {
			t.Fatalf("FetchPage should not be called")
			return nil, nil
		},
		allFn: func(ctx context.Context, q ports.PlaylistQuery) (*domain.PlaylistPage, error) {
			called = true
			return onePage(q), nil
		},
	}

	c, _ := newJSONContext(e, http.MethodGet, "/api/youtube/playlist-items?playlistId=PL1&fetchAll=true", nil)
	if err := NewPlaylistHandler(stub).Items(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("FetchAll not called")
	}
}

func TestPlaylistHandler_Items_FetchAllSpellings(t *testing.T) {
	cases := []struct {
		raw     string
		wantAll bool
	}{
		{"yes", true},
		{"on", true},
		{"TRUE", true},
		{"1", true},
		{"no", false},
		{"off", false},
		{"False", false},
		{"0", false},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			e := newEcho()
			var calledAll, calledPage bool
			stub := &stubPlaylistService{
				pageFn: func(ctx context.Context, q ports.PlaylistQuery) (*domain.PlaylistPage, error) {
					calledPage = true
					return onePage(q), nil
				},
				allFn: func(ctx context.Context, q ports.PlaylistQuery) (*domain.PlaylistPage, error) {
					calledAll = true
					return onePage(q), nil
				},
			}

			c, _ := newJSONContext(e, http.MethodGet, "/api/youtube/playlist-items?playlistId=PL1&fetchAll="+tc.raw, nil)
			if err := NewPlaylistHandler(stub).Items(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if calledAll != tc.wantAll || calledPage == tc.wantAll {
				t.Fatalf("fetchAll=%s: FetchAll called %v, FetchPage called %v", tc.raw, calledAll, calledPage)
			}
		})
	}
}

func TestPlaylistHandler_Items_InvalidParams(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"playlistId=PL1&maxResults=ten", "maxResults must be an integer"},
		{"playlistId=PL1&maxResults=1.5", "maxResults must be an integer"},
		{"playlistId=PL1&fetchAll=maybe", "fetchAll must be a boolean"},
	}

	for _, tc := range cases {
		e := newEcho()
		stub := &stubPlaylistService{}
		c, _ := newJSONContext(e, http.MethodGet, "/api/youtube/playlist-items?"+tc.query, nil)
		requireHTTPError(t, NewPlaylistHandler(stub).Items(c), http.StatusBadRequest, tc.want)
	}
}

func TestPlaylistHandler_Items_ServiceError(t *testing.T) {
	e := newEcho()
	stub := &stubPlaylistService{
		pageFn: func(ctx context.Context, q ports.PlaylistQuery) (*domain.PlaylistPage, error) {
			return nil, domain.ErrPlaylistIDRequired
		},
	}

	c, _ := newJSONContext(e, http.MethodGet, "/api/youtube/playlist-items", nil)
	if err := NewPlaylistHandler(stub).Items(c); err != domain.ErrPlaylistIDRequired {
		t.Fatalf("expected ErrPlaylistIDRequired, got %v", err)
	}
}
