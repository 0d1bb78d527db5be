package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
	"github.com/ljhwogur/raid-hub/internal/core/ports"
)

type stubUserService struct {
	registerFn     func(ctx context.Context, username, password string) (*domain.User, error)
	existsFn       func(ctx context.Context, username string) (bool, error)
	authenticateFn func(ctx context.Context, username, password string) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubUserService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.existsFn(ctx, username)
}

func (s *stubUserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	return s.authenticateFn(ctx, username, password)
}

func (s *stubUserService) EnsureAdmin(context.Context, string, string) error { return nil }

type stubVideoService struct {
	createFn func(ctx context.Context, input ports.CreateVideoInput) (*domain.RaidVideo, error)
	listFn   func(ctx context.Context) ([]domain.RaidVideo, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubVideoService) CreateVideo(ctx context.Context, input ports.CreateVideoInput) (*domain.RaidVideo, error) {
	return s.createFn(ctx, input)
}

func (s *stubVideoService) ListVideos(ctx context.Context) ([]domain.RaidVideo, error) {
	return s.listFn(ctx)
}

func (s *stubVideoService) DeleteVideo(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubPlaylistService struct {
	pageFn func(ctx context.Context, q ports.PlaylistQuery) (*domain.PlaylistPage, error)
	allFn  func(ctx context.Context, q ports.PlaylistQuery) (*domain.PlaylistPage, error)
}

func (s *stubPlaylistService) FetchPage(ctx context.Context, q ports.PlaylistQuery) (*domain.PlaylistPage, error) {
	return s.pageFn(ctx, q)
}

func (s *stubPlaylistService) FetchAll(ctx context.Context, q ports.PlaylistQuery) (*domain.PlaylistPage, error) {
	return s.allFn(ctx, q)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newJSONContext(e *echo.Echo, method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// requireHTTPError asserts err is an *echo.HTTPError with the given code and
// message.
func requireHTTPError(t *testing.T, err error, code int, message string) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d", code, he.Code)
	}
	if message != "" && he.Message != message {
		t.Fatalf("expected message %q, got %q", message, he.Message)
	}
}
