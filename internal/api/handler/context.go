package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ljhwogur/raid-hub/internal/api/middleware"
)

// ctxUsername returns the caller injected by the Auth middleware, or "" for
// an anonymous request.
func ctxUsername(c echo.Context) string {
	username, _ := c.Get(middleware.ContextUsername).(string)
	return username
}
