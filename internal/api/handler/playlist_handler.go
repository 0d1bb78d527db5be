package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ljhwogur/raid-hub/internal/core/ports"
)

type PlaylistHandler struct {
	playlistService ports.PlaylistService
}

func NewPlaylistHandler(playlistService ports.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// Items lists a playlist, either one page or every page concatenated.
//
// @Summary      List playlist items
// @Tags         youtube
// @Produce      json
// @Param        playlistId  query     string   true   "Playlist id"
// @Param        maxResults  query     int      false  "Page size, clamped to 1..50"
// @Param        pageToken   query     string   false  "Page token from a previous response"
// @Param        fetchAll    query     bool     false  "Follow every page"
// @Success      200         {object}  domain.PlaylistPage
// @Failure      400         {object}  resultResponse
// @Failure      502         {object}  resultResponse
// @Router       /api/youtube/playlist-items [get]
func (h *PlaylistHandler) Items(c echo.Context) error {
	q := ports.PlaylistQuery{
		PlaylistID: c.QueryParam("playlistId"),
		PageToken:  c.QueryParam("pageToken"),
	}

	if raw := strings.TrimSpace(c.QueryParam("maxResults")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "maxResults must be an integer").SetInternal(err)
		}
		q.PageSize = &n
	}

	fetchAll := false
	if raw := strings.TrimSpace(c.QueryParam("fetchAll")); raw != "" {
		b, ok := parseFlag(raw)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "fetchAll must be a boolean")
		}
		fetchAll = b
	}

	ctx := c.Request().Context()
	fetch := h.playlistService.FetchPage
	if fetchAll {
		fetch = h.playlistService.FetchAll
	}

	page, err := fetch(ctx, q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// parseFlag accepts the usual spellings of a boolean query flag.
func parseFlag(raw string) (value, ok bool) {
	switch strings.ToLower(raw) {
	case "true", "t", "1", "yes", "y", "on":
		return true, true
	case "false", "f", "0", "no", "n", "off":
		return false, true
	}
	return false, false
}
