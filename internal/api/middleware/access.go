package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ljhwogur/raid-hub/internal/api/access"
)

const (
	msgLoginRequired = "로그인이 필요합니다."
	msgForbidden     = "접근 권한이 없습니다."
)

// Access enforces the policy against the principal injected by Auth. The
// policy sees the escaped path so that its segments match the router's.
func Access(policy *access.Policy, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			who := principal(c)

			decision := policy.Decide(req.Method, req.URL.EscapedPath(), who)
			if decision == access.Allow {
				return next(c)
			}

			log.Debug().
				Str("method", req.Method).
				Str("path", req.URL.EscapedPath()).
				Bool("authenticated", who.Authenticated).
				Stringer("decision", decision).
				Msg("request denied")

			if decision == access.DenyUnauthenticated {
				return echo.NewHTTPError(http.StatusUnauthorized, msgLoginRequired)
			}
			return echo.NewHTTPError(http.StatusForbidden, msgForbidden)
		}
	}
}

func principal(c echo.Context) access.Principal {
	username, _ := c.Get(ContextUsername).(string)
	if username == "" {
		return access.Principal{}
	}
	who := access.Principal{Authenticated: true}
	if role, _ := c.Get(ContextRole).(string); role != "" {
		who.Roles = []string{role}
	}
	return who
}
