package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"success": false, "message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind and validation failures, access denials, 404/405 from the router).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var rv *domain.RuleViolationError
	if errors.As(err, &rv) {
		return http.StatusBadRequest, rv.Message
	}

	switch {
	case errors.Is(err, domain.ErrPlaylistIDRequired):
		return http.StatusBadRequest, domain.ErrPlaylistIDRequired.Error()
	case errors.Is(err, domain.ErrMissingAPIKey):
		return http.StatusBadRequest, domain.ErrMissingAPIKey.Error()
	}

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		log.Error().
			Err(err).
			Int("upstream_status", upstream.StatusCode).
			Str("path", c.Path()).
			Msg("upstream request failed")
		return http.StatusBadGateway, upstream.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
