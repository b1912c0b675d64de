// Package resend provides a lightweight Resend API client.
// Uses raw HTTP calls (no SDK); only the email and audience-contact endpoints are covered.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production Resend API endpoint.
const DefaultBaseURL = "https://api.resend.com"

// Email is the body of POST /emails.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo []string `json:"reply_to,omitempty"`
}

// Contact is the body of POST /audiences/{audience_id}/contacts.
type Contact struct {
	Email        string `json:"email"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Unsubscribed bool   `json:"unsubscribed"`
}

// Client is the subset of the Resend API used by the site.
type Client interface {
	// SendEmail sends one email and returns the provider message id.
	SendEmail(ctx context.Context, email Email) (string, error)
	// CreateContact adds a contact to the given audience and returns its id.
	CreateContact(ctx context.Context, audienceID string, contact Contact) (string, error)
}

// ErrNotConfigured is returned when no API key has been supplied.
var ErrNotConfigured = errors.New("resend: not configured")

// APIError is a non-2xx response from the Resend API.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("resend: %d %s: %s", e.StatusCode, e.Name, e.Message)
	}
	return fmt.Sprintf("resend: %d: %s", e.StatusCode, e.Message)
}

// IsConflict reports whether err is an explicit 409 Conflict from the API.
// Other statuses, including 422, are not treated as conflicts.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict
}

// Option configures a RealClient.
type Option func(*RealClient)

// WithBaseURL points the client at a different API host (tests, proxies).
func WithBaseURL(baseURL string) Option {
	return func(c *RealClient) {
		if s := strings.TrimRight(strings.TrimSpace(baseURL), "/"); s != "" {
			c.baseURL = s
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *RealClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// RealClient talks to the Resend REST API.
type RealClient struct {
	APIKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a RealClient. An empty apiKey yields a client whose calls
// all fail with ErrNotConfigured.
func NewClient(apiKey string, opts ...Option) *RealClient {
	c := &RealClient{
		APIKey:     strings.TrimSpace(apiKey),
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

var _ Client = (*RealClient)(nil)

// Configured reports whether an API key was supplied.
func (c *RealClient) Configured() bool { return c.APIKey != "" }

// SendEmail sends a single email. There is no retry.
func (c *RealClient) SendEmail(ctx context.Context, email Email) (string, error) {
	var result struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/emails", email, &result); err != nil {
		return "", err
	}
	return result.ID, nil
}

// CreateContact adds contact to the audience identified by audienceID.
func (c *RealClient) CreateContact(ctx context.Context, audienceID string, contact Contact) (string, error) {
	if strings.TrimSpace(audienceID) == "" {
		return "", errors.New("resend create contact: audience id is required")
	}
	var result struct {
		ID string `json:"id"`
	}
	path := "/audiences/" + url.PathEscape(audienceID) + "/contacts"
	if err := c.post(ctx, path, contact, &result); err != nil {
		return "", err
	}
	return result.ID, nil
}

func (c *RealClient) post(ctx context.Context, path string, body, out any) error {
	if c.APIKey == "" {
		return ErrNotConfigured
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("resend %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("resend %s: read body: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{}
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, apiErr)
		}
		apiErr.StatusCode = resp.StatusCode
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("resend %s: decode response: %w", path, err)
	}
	return nil
}
