package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lsbets/config"

	"golang.org/x/oauth2"
)

// Provider wraps the UCP game-account OAuth server. It only exists at the
// login boundary: it exchanges the callback code and fetches the account's
// characters so a session can be minted for one of them.
type Provider struct {
	cfg    *config.OAuthConfig
	client *http.Client
}

func NewProvider(cfg *config.OAuthConfig) *Provider {
	return &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *Provider) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     p.cfg.ClientID,
		ClientSecret: p.cfg.ClientSecret,
		RedirectURL:  p.cfg.RedirectURL,
		Scopes:       []string{},
		Endpoint: oauth2.Endpoint{
			AuthURL:  p.cfg.AuthURL,
			TokenURL: p.cfg.TokenURL,
		},
	}
}

func (p *Provider) Configured() bool {
	return p.cfg.ClientID != "" && p.cfg.ClientSecret != ""
}

// AuthURL is where the player starts the login flow.
func (p *Provider) AuthURL() string {
	return p.oauth2Config().AuthCodeURL("state")
}

// Exchange trades the callback code for an access token.
func (p *Provider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	return p.oauth2Config().Exchange(ctx, code)
}

type Character struct {
	ID        uint   `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

type Account struct {
	ID         uint        `json:"id"`
	Username   string      `json:"username"`
	Characters []Character `json:"character"`
}

type accountEnvelope struct {
	User Account `json:"user"`
}

// FetchAccount loads the provider profile behind an access token, including
// the account's characters.
func (p *Provider) FetchAccount(ctx context.Context, accessToken string) (*Account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.UserURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ucp user fetch: status %d: %s", resp.StatusCode, body)
	}
	var env accountEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("ucp user fetch: %w", err)
	}
	return &env.User, nil
}

// HasCharacter reports whether the account owns the given character.
func (a *Account) HasCharacter(characterID uint) bool {
	for _, c := range a.Characters {
		if c.ID == characterID {
			return true
		}
	}
	return false
}
