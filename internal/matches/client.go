package matches

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lsbets/config"

	"github.com/shopspring/decimal"
)

// Match is the denormalized view handed to the UI and snapshotted into bets.
type Match struct {
	ID       int64     `json:"id"`
	League   string    `json:"league"`
	TeamA    string    `json:"teamA"`
	TeamB    string    `json:"teamB"`
	Time     string    `json:"time"`
	Date     time.Time `json:"date"`
	Odds     Odds      `json:"odds"`
	Score    string    `json:"score,omitempty"`
	Status   string    `json:"status"`
	Category string    `json:"category"`
}

type Odds struct {
	Home decimal.Decimal `json:"home"`
	Draw decimal.Decimal `json:"draw"`
	Away decimal.Decimal `json:"away"`
}

// Default odds used when the upstream fixture carries none.
var defaultOdds = Odds{
	Home: decimal.NewFromFloat(2.1),
	Draw: decimal.NewFromFloat(3.4),
	Away: decimal.NewFromFloat(3.75),
}

// Client fetches fixtures from the API-FOOTBALL upstream.
type Client struct {
	cfg    *config.SportsConfig
	client *http.Client
}

func NewClient(cfg *config.SportsConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type fixtureResponse struct {
	Response []fixture `json:"response"`
}

type fixture struct {
	Fixture struct {
		ID   int64     `json:"id"`
		Date time.Time `json:"date"`
		Status struct {
			Short string `json:"short"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"league"`
	Teams struct {
		Home struct {
			Name string `json:"name"`
		} `json:"home"`
		Away struct {
			Name string `json:"name"`
		} `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

// Upcoming lists fixtures for the given date (YYYY-MM-DD) that have not
// kicked off yet.
func (c *Client) Upcoming(ctx context.Context, date string) ([]Match, error) {
	var out fixtureResponse
	if err := c.get(ctx, "/fixtures?date="+date, &out); err != nil {
		return nil, err
	}
	now := time.Now()
	matches := make([]Match, 0, len(out.Response))
	for _, f := range out.Response {
		m := mapFixture(f, "upcoming")
		if m.Date.Before(now) {
			continue
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// Live lists fixtures currently in play, with their running score.
func (c *Client) Live(ctx context.Context) ([]Match, error) {
	var out fixtureResponse
	if err := c.get(ctx, "/fixtures?live=all", &out); err != nil {
		return nil, err
	}
	matches := make([]Match, 0, len(out.Response))
	for _, f := range out.Response {
		m := mapFixture(f, "live")
		if f.Goals.Home != nil && f.Goals.Away != nil {
			m.Score = fmt.Sprintf("%d - %d", *f.Goals.Home, *f.Goals.Away)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-rapidapi-key", c.cfg.APIKey)
	req.Header.Set("x-rapidapi-host", strings.TrimPrefix(c.cfg.BaseURL, "https://"))
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("sports api: status %d: %s", resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

func mapFixture(f fixture, status string) Match {
	return Match{
		ID:       f.Fixture.ID,
		League:   f.League.Name,
		TeamA:    f.Teams.Home.Name,
		TeamB:    f.Teams.Away.Name,
		Time:     f.Fixture.Date.Local().Format("Jan 2, 2006 3:04 PM"),
		Date:     f.Fixture.Date,
		Odds:     defaultOdds,
		Status:   status,
		Category: categoryForLeague(f.League.Name),
	}
}

// categoryForLeague buckets leagues into the UI's sport filters. The
// upstream only serves football; the buckets split it by competition kind.
func categoryForLeague(league string) string {
	l := strings.ToLower(league)
	switch {
	case strings.Contains(l, "champions") || strings.Contains(l, "europa") || strings.Contains(l, "conference"):
		return "european"
	case strings.Contains(l, "cup") || strings.Contains(l, "copa") || strings.Contains(l, "trophy"):
		return "cups"
	case strings.Contains(l, "world"):
		return "international"
	default:
		return "football"
	}
}
