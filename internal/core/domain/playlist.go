package domain

// MaxPlaylistPageSize is the largest page the playlist API serves.
const MaxPlaylistPageSize = 50

// PlaylistItem is one entry of a playlist page. Every field is optional.
type PlaylistItem struct {
	VideoID      *string `json:"videoId"`
	Title        *string `json:"title"`
	ChannelTitle *string `json:"channelTitle"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Position     *int    `json:"position"`
	PublishedAt  *string `json:"publishedAt"`
}

// PlaylistPage is one page of playlist items, or the concatenation of all
// pages when aggregated.
type PlaylistPage struct {
	PlaylistID    *string        `json:"playlistId"`
	NextPageToken *string        `json:"nextPageToken"`
	TotalResults  *int           `json:"totalResults"`
	Items         []PlaylistItem `json:"items"`
}

// NormalizePageSize clamps a requested page size into [1, MaxPlaylistPageSize],
// defaulting to the maximum when none was requested.
func NormalizePageSize(requested *int) int {
	if requested == nil {
		return MaxPlaylistPageSize
	}
	n := *requested
	if n < 1 {
		return 1
	}
	if n > MaxPlaylistPageSize {
		return MaxPlaylistPageSize
	}
	return n
}
