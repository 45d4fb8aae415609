package wakapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/masaishi/wakalyze/internal/domain"
)

// DefaultBaseURL is the hosted Wakapi instance used when no base URL is
// configured.
const DefaultBaseURL = "https://wakapi.dev"

// DefaultTimeout bounds each heartbeat request.
const DefaultTimeout = 15 * time.Second

// EncodeAPIKey turns a Wakapi API token into the Basic authorization header
// value the compat API expects.
func EncodeAPIKey(key string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(key))
}

// heartbeatsResponse is the JSON envelope returned by the heartbeats
// endpoint. Some Wakapi versions omit the data field entirely on empty days.
type heartbeatsResponse struct {
	Data []domain.RawHeartbeat `json:"data"`
}

// Client fetches heartbeats from a Wakapi server via the WakaTime compat API.
type Client struct {
	baseURL  string
	user     string
	auth     string
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the given server, user, and Authorization
// header value. A trailing slash on baseURL is tolerated.
func NewClient(baseURL, user, auth string, timeout time.Duration, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		user:     user,
		auth:     auth,
		http:     &http.Client{Timeout: timeout},
		observer: observer,
	}
}

// FetchHeartbeats returns the raw heartbeats reported for one calendar day.
func (c *Client) FetchHeartbeats(ctx context.Context, date time.Time) ([]domain.RawHeartbeat, error) {
	start := time.Now()
	data, err := c.fetch(ctx, date)

	event := FetchEvent{
		Date:      date.Format("2006-01-02"),
		Count:     len(data),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		event.Error = err.Error()
	}
	c.observer.OnFetchComplete(event)

	return data, err
}

func (c *Client) fetch(ctx context.Context, date time.Time) ([]domain.RawHeartbeat, error) {
	url := fmt.Sprintf("%s/api/compat/wakatime/v1/users/%s/heartbeats?date=%s",
		c.baseURL, c.user, date.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", c.auth)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching heartbeats: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wakapi returned status %d for %s", resp.StatusCode, date.Format("2006-01-02"))
	}

	var payload heartbeatsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding heartbeats: %w", err)
	}
	return payload.Data, nil
}
