package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
	"github.com/ljhwogur/raid-hub/internal/core/ports"
	"github.com/ljhwogur/raid-hub/internal/pkg/metrics"
)

const (
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 8 << 20
)

// Config configures the playlistItems client. An empty APIKey is allowed;
// requests then fail before reaching the network.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client calls the YouTube Data API playlistItems endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client with its own timeout-bound http.Client.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) HasCredential() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

// FetchPage requests a single page. Anything but HTTP 200 with a JSON body is
// an *domain.UpstreamError.
func (c *Client) FetchPage(ctx context.Context, req ports.PageRequest) (*domain.PlaylistPage, error) {
	q := url.Values{}
	q.Set("part", "snippet,contentDetails")
	q.Set("playlistId", req.PlaylistID)
	q.Set("maxResults", strconv.Itoa(req.PageSize))
	q.Set("key", c.apiKey)
	if strings.TrimSpace(req.PageToken) != "" {
		q.Set("pageToken", req.PageToken)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/playlistItems?"+q.Encode(), nil)
	if err != nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("build request: %w", err)}
	}
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	metrics.UpstreamRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("error").Inc()
		return nil, &domain.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode}
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("decode response: %w", err)}
	}

	return ParsePage(root, req.PlaylistID), nil
}
