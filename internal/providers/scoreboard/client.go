package scoreboard

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

	"github.com/preston-bernstein/watchability-service/internal/domain/events"
	"github.com/preston-bernstein/watchability-service/internal/domain/rosters"
	"github.com/preston-bernstein/watchability-service/internal/providers"
)

// Config controls how the scoreboard client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timezone   string
}

// Client fetches events and rosters from the scoreboard API and maps them to
// domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
}

// NewClient constructs a scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		loc:        resolveLocation(cfg.Timezone),
	}
}

// FetchEvents retrieves one day's slate for a category.
func (c *Client) FetchEvents(ctx context.Context, category, date string) ([]events.Event, error) {
	endpoint := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, url.PathEscape(category))
	req, err := c.buildRequest(ctx, endpoint, map[string]string{
		"date": c.resolveDate(date),
	})
	if err != nil {
		return nil, err
	}

	var payload eventsResponse
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}

	fetchedAt := c.now()
	mapped := make([]events.Event, 0, len(payload.Events))
	for _, e := range payload.Events {
		mapped = append(mapped, mapEvent(category, e, fetchedAt))
	}
	return mapped, nil
}

// FetchRoster retrieves one team's current roster.
func (c *Client) FetchRoster(ctx context.Context, category, teamCode string) ([]rosters.Entry, error) {
	endpoint := fmt.Sprintf("%s/%s/teams/%s/roster", c.baseURL, url.PathEscape(category), url.PathEscape(teamCode))
	req, err := c.buildRequest(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var payload rosterResponse
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}
	return mapRoster(payload), nil
}

func (c *Client) buildRequest(ctx context.Context, endpoint string, params map[string]string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for key, value := range params {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, payload any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.SourceError{Provider: providerName, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.SourceError{
			Provider: providerName,
			Message:  fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
		return &providers.SourceError{Provider: providerName, Message: "malformed payload", Err: err}
	}
	return nil
}

func (c *Client) resolveDate(date string) string {
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err == nil {
			return date
		}
	}
	return c.now().In(c.loc).Format("2006-01-02")
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
