package matches

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lsbets/config"

	"go.uber.org/zap"
)

func TestUpcomingTTL(t *testing.T) {
	tests := []struct {
		hour int
		want time.Duration
	}{
		{0, 2 * time.Hour},
		{5, 2 * time.Hour},
		{6, 30 * time.Minute},
		{14, 30 * time.Minute},
		{23, 30 * time.Minute},
	}
	for _, tt := range tests {
		now := time.Date(2026, 8, 31, tt.hour, 0, 0, 0, time.UTC)
		if got := upcomingTTL(now); got != tt.want {
			t.Errorf("upcomingTTL(hour=%d) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestCategoryForLeague(t *testing.T) {
	tests := []struct {
		league string
		want   string
	}{
		{"UEFA Champions League", "european"},
		{"UEFA Europa Conference League", "european"},
		{"FA Cup", "cups"},
		{"Copa del Rey", "cups"},
		{"World Cup - Qualification", "international"},
		{"Premier League", "football"},
		{"Serie A", "football"},
	}
	for _, tt := range tests {
		if got := categoryForLeague(tt.league); got != tt.want {
			t.Errorf("categoryForLeague(%q) = %q, want %q", tt.league, got, tt.want)
		}
	}
}

func TestFilterCategory(t *testing.T) {
	list := []Match{
		{ID: 1, Category: "football"},
		{ID: 2, Category: "european"},
		{ID: 3, Category: "football"},
	}
	if got := filterCategory(list, ""); len(got) != 3 {
		t.Errorf("empty filter returned %d matches, want 3", len(got))
	}
	got := filterCategory(list, "Football")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("case-insensitive filter returned %+v", got)
	}
	if got := filterCategory(list, "cups"); len(got) != 0 {
		t.Errorf("unmatched filter returned %d matches, want 0", len(got))
	}
}

func fixtureJSON(id int64, league string, date time.Time, goalsHome, goalsAway *int) map[string]any {
	return map[string]any{
		"fixture": map[string]any{
			"id":     id,
			"date":   date.Format(time.RFC3339),
			"status": map[string]any{"short": "NS"},
		},
		"league": map[string]any{"id": 39, "name": league},
		"teams": map[string]any{
			"home": map[string]any{"name": "Arsenal"},
			"away": map[string]any{"name": "Chelsea"},
		},
		"goals": map[string]any{"home": goalsHome, "away": goalsAway},
	}
}

func TestClientUpcomingSkipsStarted(t *testing.T) {
	future := time.Now().Add(3 * time.Hour).UTC()
	past := time.Now().Add(-time.Hour).UTC()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-rapidapi-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"response": []any{
				fixtureJSON(1, "Premier League", future, nil, nil),
				fixtureJSON(2, "Premier League", past, nil, nil),
			},
		})
	}))
	defer srv.Close()

	c := NewClient(&config.SportsConfig{APIKey: "test-key", BaseURL: srv.URL})
	got, err := c.Upcoming(context.Background(), future.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("Upcoming returned %+v, want only the future fixture", got)
	}
	m := got[0]
	if m.TeamA != "Arsenal" || m.TeamB != "Chelsea" {
		t.Errorf("teams = %q vs %q", m.TeamA, m.TeamB)
	}
	if m.Status != "upcoming" {
		t.Errorf("status = %q, want upcoming", m.Status)
	}
	if !m.Odds.Home.Equal(defaultOdds.Home) {
		t.Errorf("odds = %+v, want defaults", m.Odds)
	}
}

func TestClientLiveFormatsScore(t *testing.T) {
	home, away := 2, 1
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "live=all" {
			t.Errorf("query = %q, want live=all", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"response": []any{fixtureJSON(5, "FA Cup", time.Now().UTC(), &home, &away)},
		})
	}))
	defer srv.Close()

	c := NewClient(&config.SportsConfig{APIKey: "test-key", BaseURL: srv.URL})
	got, err := c.Live(context.Background())
	if err != nil {
		t.Fatalf("Live: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Live returned %d matches, want 1", len(got))
	}
	if got[0].Score != "2 - 1" {
		t.Errorf("score = %q, want 2 - 1", got[0].Score)
	}
	if got[0].Category != "cups" {
		t.Errorf("category = %q, want cups", got[0].Category)
	}
}

func TestClientUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(&config.SportsConfig{APIKey: "test-key", BaseURL: srv.URL})
	if _, err := c.Upcoming(context.Background(), "2026-08-31"); err == nil {
		t.Fatal("Upcoming on 429 returned nil error")
	}
}

// With no cache configured the service goes straight to the upstream.
func TestServiceWithoutCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]any{
			"response": []any{fixtureJSON(1, "Premier League", time.Now().Add(time.Hour).UTC(), nil, nil)},
		})
	}))
	defer srv.Close()

	svc := NewService(NewClient(&config.SportsConfig{APIKey: "k", BaseURL: srv.URL}), nil, zap.NewNop())
	for i := 0; i < 2; i++ {
		got, err := svc.Upcoming(context.Background(), "")
		if err != nil {
			t.Fatalf("Upcoming: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("Upcoming returned %d matches, want 1", len(got))
		}
	}
	if calls != 2 {
		t.Errorf("upstream calls = %d, want 2 (no cache)", calls)
	}
}
