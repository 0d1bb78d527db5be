package youtube

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
)

// ParsePage maps one decoded playlistItems response onto a PlaylistPage.
// root is expected to come from a json.Decoder with UseNumber enabled. Missing,
// null, blank and wrongly typed values are all reported as absent.
func ParsePage(root any, playlistID string) *domain.PlaylistPage {
	page := &domain.PlaylistPage{
		PlaylistID:    &playlistID,
		NextPageToken: text(root, "nextPageToken"),
		TotalResults:  integer(root, "pageInfo", "totalResults"),
		Items:         []domain.PlaylistItem{},
	}

	entries, ok := lookup(root, "items").([]any)
	if !ok {
		return page
	}

	for _, entry := range entries {
		snippet := lookup(entry, "snippet")

		videoID := text(entry, "contentDetails", "videoId")
		if videoID == nil {
			videoID = text(snippet, "resourceId", "videoId")
		}

		page.Items = append(page.Items, domain.PlaylistItem{
			VideoID:      videoID,
			Title:        text(snippet, "title"),
			ChannelTitle: text(snippet, "channelTitle"),
			ThumbnailURL: thumbnail(snippet),
			Position:     integer(snippet, "position"),
			PublishedAt:  text(snippet, "publishedAt"),
		})
	}
	return page
}

func thumbnail(snippet any) *string {
	for _, size := range []string{"high", "medium", "default"} {
		if u := text(snippet, "thumbnails", size, "url"); u != nil {
			return u
		}
	}
	return nil
}

// lookup walks object fields and returns nil as soon as a step is missing or
// not an object.
func lookup(node any, path ...string) any {
	for _, field := range path {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		node = obj[field]
	}
	return node
}

// text returns scalar values in their textual form. Objects, arrays, null
// and blank strings are absent.
func text(node any, path ...string) *string {
	var s string
	switch v := lookup(node, path...).(type) {
	case string:
		s = v
	case json.Number:
		s = v.String()
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(v)
	default:
		return nil
	}
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// integer accepts only integral JSON numbers within 32-bit range. Strings and
// fractional numbers are absent.
func integer(node any, path ...string) *int {
	var n int64
	switch v := lookup(node, path...).(type) {
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil
		}
		n = i
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return nil
		}
		n = int64(v)
	default:
		return nil
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return nil
	}
	i := int(n)
	return &i
}
