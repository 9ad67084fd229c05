package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// MessageSuccessfulPayment is the only verification message the gateway sends
// for a completed payment. Anything else is a failure.
const MessageSuccessfulPayment = "successful_payment"

// ErrNotConfigured means the gateway URL, token URL or auth key is missing.
// Deposits cannot run at all in that state, so it is raised at construction.
var ErrNotConfigured = errors.New("fleeca gateway not configured")

// Failure reasons carried by *Error.
const (
	ReasonGatewayError    = "gateway_error"
	ReasonInvalidResponse = "invalid_response"
	ReasonPaymentFailed   = "payment_failed"
)

// Error is a failed gateway interaction. Raw keeps the exact response body so
// operators can diagnose what the gateway actually said.
type Error struct {
	Reason string
	Status int
	Raw    []byte
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fleeca gateway: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("fleeca gateway: %s (status %d)", e.Reason, e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// TokenResult is the gateway's token verification payload.
type TokenResult struct {
	Token          string  `json:"token"`
	AuthKey        string  `json:"auth_key"`
	Message        string  `json:"message"`
	Payment        float64 `json:"payment"`
	RoutingFrom    string  `json:"routing_from"`
	RoutingTo      string  `json:"routing_to"`
	Sandbox        bool    `json:"sandbox"`
	TokenExpired   bool    `json:"token_expired"`
	TokenCreatedAt string  `json:"token_created_at"`

	// Raw is the body the result was decoded from, kept for diagnostics.
	Raw []byte `json:"-"`
}

// Client talks to the Fleeca payment gateway. A payment starts by redirecting
// the payer to PaymentURL; the payer comes back with a token that must be
// verified server-side before any funds are credited.
type Client struct {
	gatewayURL string
	tokenURL   string
	authKey    string
	client     *http.Client
}

func NewClient(gatewayURL, tokenURL, authKey string, timeout time.Duration) (*Client, error) {
	if gatewayURL == "" || tokenURL == "" || authKey == "" {
		return nil, ErrNotConfigured
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		gatewayURL: gatewayURL,
		tokenURL:   tokenURL,
		authKey:    authKey,
		client:     &http.Client{Timeout: timeout},
	}, nil
}

// PaymentURL builds the redirect target for a new payment. Type 0 is the only
// payment type the gateway supports.
func (c *Client) PaymentURL(amount decimal.Decimal) string {
	return fmt.Sprintf("%s%s/0/%s", c.gatewayURL, c.authKey, amount.String())
}

// VerifyToken asks the gateway whether the payment behind token completed.
// The call is bounded by the client timeout; on timeout or any transport
// error the payment is indeterminate and must not be credited. Non-2xx and
// non-JSON responses come back as *Error with the raw body preserved.
func (c *Client) VerifyToken(ctx context.Context, token string) (*TokenResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tokenURL+token, nil)
	if err != nil {
		return nil, &Error{Reason: ReasonGatewayError, Err: err}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Reason: ReasonGatewayError, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &Error{Reason: ReasonGatewayError, Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Reason: ReasonGatewayError, Status: resp.StatusCode, Raw: body}
	}
	var out TokenResult
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &Error{Reason: ReasonInvalidResponse, Status: resp.StatusCode, Raw: body, Err: err}
	}
	out.Raw = body
	return &out, nil
}
