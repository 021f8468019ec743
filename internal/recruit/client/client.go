// Package client sends a completed application to the submission endpoint
// and translates the HTTP outcome into the message the candidate sees.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/iitm-tech-society/recruit-backend/internal/recruit/domain"
)

// Client posts submissions. One request per submit action, no retries.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Option func(*Client)

// WithHTTPClient swaps the underlying transport, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithToken attaches a bearer token when the endpoint is auth-gated.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Submit serializes the record and posts it. A nil return means the server
// accepted the application; any failure comes back as an error whose
// message is fit to display.
func (c *Client) Submit(ctx context.Context, sub domain.Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("Submission failed. Check your connection or console for details.")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/recruit", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("Submission failed. Check your connection or console for details.")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("Submission failed. Check your connection or console for details.")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Prefer the server's error message, fall back to the status text.
	var parsed submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err == nil && parsed.Error != "" {
		return fmt.Errorf("Submission failed: %s. Please try again.", parsed.Error)
	}

	statusText := http.StatusText(resp.StatusCode)
	if statusText == "" {
		statusText = "Server Error"
	}
	return fmt.Errorf("Submission failed: %s. Please try again.", statusText)
}
