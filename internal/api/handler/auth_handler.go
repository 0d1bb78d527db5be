package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ljhwogur/raid-hub/internal/api/middleware"
	"github.com/ljhwogur/raid-hub/internal/core/domain"
	"github.com/ljhwogur/raid-hub/internal/core/ports"
	"github.com/ljhwogur/raid-hub/internal/pkg/metrics"
)

const (
	msgLoggedIn  = "성공적으로 로그인하였습니다."
	msgLoggedOut = "로그아웃되었습니다."
)

type AuthHandler struct {
	userService ports.UserService
	log         zerolog.Logger
}

func NewAuthHandler(userService ports.UserService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, log: log}
}

// Login authenticates form credentials and starts a session under a new id.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  resultResponse
// @Failure      401       {object}  resultResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := h.userService.Authenticate(c.Request().Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountDisabled):
			metrics.LoginsTotal.WithLabelValues("disabled").Inc()
			return c.JSON(http.StatusUnauthorized, resultResponse{Message: domain.ErrAccountDisabled.Error()})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("bad_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, resultResponse{Message: domain.ErrInvalidCredentials.Error()})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return err
	}
	// An empty id makes the store issue a fresh one and drop the old entry.
	sess.ID = ""
	sess.Values[middleware.SessionUsernameKey] = user.Username
	sess.Values[middleware.SessionRoleKey] = user.Role
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("user logged in")

	return c.JSON(http.StatusOK, resultResponse{
		Success:  true,
		Message:  msgLoggedIn,
		Username: user.Username,
	})
}

// Logout ends the current session, if any.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  resultResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return err
	}
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}

	if username := ctxUsername(c); username != "" {
		h.log.Info().Str("username", username).Msg("user logged out")
	}

	return c.JSON(http.StatusOK, resultResponse{Success: true, Message: msgLoggedOut})
}
