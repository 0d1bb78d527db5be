package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ljhwogur/raid-hub/internal/core/ports"
)

type VideoHandler struct {
	videoService ports.VideoService
}

func NewVideoHandler(videoService ports.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// Create stores a new raid video.
//
// @Summary      Submit a raid video
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        body  body      createVideoRequest  true  "Video details"
// @Success      200   {object}  domain.RaidVideo
// @Failure      400   {object}  resultResponse
// @Failure      401   {object}  resultResponse
// @Failure      403   {object}  resultResponse
// @Router       /api/videos [post]
func (h *VideoHandler) Create(c echo.Context) error {
	var req createVideoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	video, err := h.videoService.CreateVideo(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, video)
}

// List returns every raid video in insertion order.
//
// @Summary      List raid videos
// @Tags         videos
// @Produce      json
// @Success      200  {array}  domain.RaidVideo
// @Router       /api/videos [get]
func (h *VideoHandler) List(c echo.Context) error {
	videos, err := h.videoService.ListVideos(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, videos)
}

// Delete removes a raid video. Unknown ids succeed as well.
//
// @Summary      Delete a raid video
// @Tags         videos
// @Param        id   path  string  true  "Video id"
// @Success      204
// @Failure      401  {object}  resultResponse
// @Failure      403  {object}  resultResponse
// @Router       /api/videos/{id} [delete]
func (h *VideoHandler) Delete(c echo.Context) error {
	if err := h.videoService.DeleteVideo(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
