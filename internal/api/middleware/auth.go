package middleware

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	// SessionName is the cookie and registry name of the login session.
	SessionName = "RAIDHUB_SESSION"

	SessionUsernameKey = "username"
	SessionRoleKey     = "role"

	// Context keys set by Auth.
	ContextUsername = "username"
	ContextRole     = "role"
)

// Auth loads the login session and injects the caller's username and role
// into the context. It never rejects a request: a missing or unreadable
// session leaves the caller anonymous and Access decides what happens next.
func Auth(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(SessionName, c)
			if err != nil {
				log.Warn().Err(err).Str("path", c.Request().URL.Path).Msg("session unavailable, continuing anonymously")
				return next(c)
			}

			username, _ := sess.Values[SessionUsernameKey].(string)
			if username == "" {
				return next(c)
			}
			role, _ := sess.Values[SessionRoleKey].(string)

			c.Set(ContextUsername, username)
			c.Set(ContextRole, role)

			return next(c)
		}
	}
}
