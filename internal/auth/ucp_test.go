package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lsbets/config"
)

func TestProviderConfigured(t *testing.T) {
	p := NewProvider(&config.OAuthConfig{})
	if p.Configured() {
		t.Error("empty provider reports configured")
	}
	p = NewProvider(&config.OAuthConfig{ClientID: "id", ClientSecret: "secret"})
	if !p.Configured() {
		t.Error("full provider reports unconfigured")
	}
}

func TestAuthURL(t *testing.T) {
	p := NewProvider(&config.OAuthConfig{
		ClientID:    "client-1",
		RedirectURL: "https://app.example/callback",
		AuthURL:     "https://ucp.example/oauth/authorize",
	})
	url := p.AuthURL()
	if !strings.HasPrefix(url, "https://ucp.example/oauth/authorize?") {
		t.Errorf("auth url = %q", url)
	}
	if !strings.Contains(url, "client_id=client-1") {
		t.Errorf("auth url missing client id: %q", url)
	}
}

func TestFetchAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok_abc" {
			t.Errorf("authorization = %q", got)
		}
		_, _ = w.Write([]byte(`{"user":{
			"id": 12,
			"username": "john",
			"character": [
				{"id": 7, "firstname": "John", "lastname": "Doe"},
				{"id": 8, "firstname": "Jane", "lastname": "Doe"}
			]
		}}`))
	}))
	defer srv.Close()

	p := NewProvider(&config.OAuthConfig{UserURL: srv.URL})
	account, err := p.FetchAccount(context.Background(), "tok_abc")
	if err != nil {
		t.Fatalf("FetchAccount: %v", err)
	}
	if account.ID != 12 || account.Username != "john" {
		t.Errorf("account = %+v", account)
	}
	if len(account.Characters) != 2 {
		t.Fatalf("characters = %d, want 2", len(account.Characters))
	}
	if !account.HasCharacter(7) || !account.HasCharacter(8) {
		t.Error("owned character not found")
	}
	if account.HasCharacter(99) {
		t.Error("foreign character reported as owned")
	}
}

func TestFetchAccountUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewProvider(&config.OAuthConfig{UserURL: srv.URL})
	if _, err := p.FetchAccount(context.Background(), "bad"); err == nil {
		t.Fatal("FetchAccount on 401 returned nil error")
	}
}
