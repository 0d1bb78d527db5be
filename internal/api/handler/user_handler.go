package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ljhwogur/raid-hub/internal/core/ports"
)

const msgRegistered = "사용자가 성공적으로 등록되었습니다."

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a new, disabled USER account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  resultResponse
// @Failure      400   {object}  resultResponse
// @Router       /api/users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, resultResponse{
		Success:  true,
		Message:  msgRegistered,
		Username: user.Username,
	})
}

// CheckUsername reports whether a username is already taken.
//
// @Summary      Check username availability
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  usernameCheckResponse
// @Router       /api/users/check-username/{username} [get]
func (h *UserHandler) CheckUsername(c echo.Context) error {
	username := c.Param("username")

	exists, err := h.userService.ExistsByUsername(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, usernameCheckResponse{Username: username, Exists: exists})
}
