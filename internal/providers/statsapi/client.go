package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mlb-calendar-feed/internal/domain/schedule"
	"mlb-calendar-feed/internal/providers"
	"mlb-calendar-feed/internal/timeutil"
)

// Config controls how the statsapi client reaches the upstream schedule endpoint.
type Config struct {
	BaseURL    string
	TeamID     int
	HTTPClient *http.Client
}

// Client fetches a team's schedule from the MLB stats API and maps it to
// domain records.
type Client struct {
	baseURL    string
	teamID     int
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		teamID:     resolveTeamID(cfg.TeamID),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchSchedule retrieves the team's games for the full given year in a single
// request. A season of 0 means the current year. A season with no games yet is
// a valid, empty result, not an error.
func (c *Client) FetchSchedule(ctx context.Context, season int) ([]schedule.Game, error) {
	req, err := c.buildRequest(ctx, c.resolveSeason(season))
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.FetchError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	var payload scheduleResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, &providers.FetchError{Provider: providerName, Err: decodeErr}
	}

	return flattenSchedule(payload), nil
}

func (c *Client) buildRequest(ctx context.Context, season int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+schedulePath, nil)
	if err != nil {
		return nil, err
	}

	startDate, endDate := timeutil.SeasonRange(season)

	q := req.URL.Query()
	q.Set("sportId", sportID)
	q.Set("teamId", strconv.Itoa(c.teamID))
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	q.Set("hydrate", hydrateDirective)
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func (c *Client) resolveSeason(season int) int {
	if season > 0 {
		return season
	}
	return c.now().UTC().Year()
}
