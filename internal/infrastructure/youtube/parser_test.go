package youtube

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var root any
	require.NoError(t, dec.Decode(&root))
	return root
}

func TestParsePage_FullItem(t *testing.T) {
	root := decode(t, `{
		"nextPageToken": "CAUQAA",
		"pageInfo": {"totalResults": 12, "resultsPerPage": 5},
		"items": [{
			"snippet": {
				"title": "발탄 하드",
				"channelTitle": "raider",
				"position": 0,
				"publishedAt": "2024-01-02T03:04:05Z",
				"thumbnails": {
					"default": {"url": "https://i.ytimg.com/default.jpg"},
					"medium": {"url": "https://i.ytimg.com/mq.jpg"},
					"high": {"url": "https://i.ytimg.com/hq.jpg"}
				},
				"resourceId": {"videoId": "fromSnippet"}
			},
			"contentDetails": {"videoId": "abc123"}
		}]
	}`)

	page := ParsePage(root, "PL1")

	require.NotNil(t, page.PlaylistID)
	assert.Equal(t, "PL1", *page.PlaylistID)
	require.NotNil(t, page.NextPageToken)
	assert.Equal(t, "CAUQAA", *page.NextPageToken)
	require.NotNil(t, page.TotalResults)
	assert.Equal(t, 12, *page.TotalResults)

	require.Len(t, page.Items, 1)
	it := page.Items[0]
	assert.Equal(t, "abc123", *it.VideoID)
	assert.Equal(t, "발탄 하드", *it.Title)
	assert.Equal(t, "raider", *it.ChannelTitle)
	assert.Equal(t, "https://i.ytimg.com/hq.jpg", *it.ThumbnailURL)
	assert.Equal(t, 0, *it.Position)
	assert.Equal(t, "2024-01-02T03:04:05Z", *it.PublishedAt)
}

func TestParsePage_VideoIDFallback(t *testing.T) {
	root := decode(t, `{"items": [
		{"snippet": {"resourceId": {"videoId": "fallback"}}},
		{"snippet": {"resourceId": {"videoId": "fallback"}}, "contentDetails": {"videoId": "   "}},
		{"snippet": {}}
	]}`)

	page := ParsePage(root, "PL1")
	require.Len(t, page.Items, 3)
	assert.Equal(t, "fallback", *page.Items[0].VideoID)
	assert.Equal(t, "fallback", *page.Items[1].VideoID)
	assert.Nil(t, page.Items[2].VideoID)
}

func TestParsePage_ThumbnailPreference(t *testing.T) {
	cases := []struct {
		name       string
		thumbnails string
		want       *string
	}{
		{"medium when high missing", `{"medium": {"url": "m"}, "default": {"url": "d"}}`, strPtr("m")},
		{"default only", `{"default": {"url": "d"}}`, strPtr("d")},
		{"blank high skipped", `{"high": {"url": " "}, "default": {"url": "d"}}`, strPtr("d")},
		{"none", `{}`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := decode(t, `{"items": [{"snippet": {"thumbnails": `+tc.thumbnails+`}}]}`)
			got := ParsePage(root, "PL1").Items[0].ThumbnailURL
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}

	root := decode(t, `{"items": [{"snippet": {"title": "no thumbnails"}}]}`)
	assert.Nil(t, ParsePage(root, "PL1").Items[0].ThumbnailURL)
}

func TestParsePage_BlankStringsAreAbsent(t *testing.T) {
	root := decode(t, `{
		"nextPageToken": "  ",
		"items": [{"snippet": {"title": "", "channelTitle": "   ", "publishedAt": null}}]
	}`)

	page := ParsePage(root, "PL1")
	assert.Nil(t, page.NextPageToken)
	it := page.Items[0]
	assert.Nil(t, it.Title)
	assert.Nil(t, it.ChannelTitle)
	assert.Nil(t, it.PublishedAt)
}

func TestParsePage_IntegerTyping(t *testing.T) {
	cases := []struct {
		name  string
		total string
		want  *int
	}{
		{"integer", `7`, intPtr(7)},
		{"fraction", `7.5`, nil},
		{"exponent", `7e2`, nil},
		{"string", `"7"`, nil},
		{"out of int32 range", `3000000000`, nil},
		{"null", `null`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := decode(t, `{"pageInfo": {"totalResults": `+tc.total+`}, "items": [{"snippet": {"position": `+tc.total+`}}]}`)
			page := ParsePage(root, "PL1")
			if tc.want == nil {
				assert.Nil(t, page.TotalResults)
				assert.Nil(t, page.Items[0].Position)
				return
			}
			require.NotNil(t, page.TotalResults)
			assert.Equal(t, *tc.want, *page.TotalResults)
			assert.Equal(t, *tc.want, *page.Items[0].Position)
		})
	}
}

func TestParsePage_NonTextScalars(t *testing.T) {
	root := decode(t, `{"items": [{"snippet": {"title": 42, "channelTitle": true, "publishedAt": {"nested": "x"}}}]}`)

	it := ParsePage(root, "PL1").Items[0]
	assert.Equal(t, "42", *it.Title)
	assert.Equal(t, "true", *it.ChannelTitle)
	assert.Nil(t, it.PublishedAt)
}

func TestParsePage_ItemsShape(t *testing.T) {
	for _, body := range []string{`{}`, `{"items": null}`, `{"items": {"a": 1}}`, `{"items": "x"}`, `[]`, `"text"`} {
		page := ParsePage(decode(t, body), "PL1")
		assert.NotNil(t, page.Items, body)
		assert.Empty(t, page.Items, body)
		assert.Nil(t, page.TotalResults, body)
	}

	page := ParsePage(decode(t, `{"items": [1, "x", null]}`), "PL1")
	require.Len(t, page.Items, 3)
	for _, it := range page.Items {
		assert.Nil(t, it.VideoID)
		assert.Nil(t, it.Title)
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
