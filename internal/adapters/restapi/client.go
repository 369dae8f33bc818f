// Package restapi talks to the backend resource API: a JSON collection
// server exposing /users and /events with equality filtering via query
// parameters and lookup/mutation by id.
package restapi

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

	apperrors "github.com/target/eventshell/internal/errors"
)

const defaultTimeout = 10 * time.Second

// Config captures the subset of backend behaviour we need.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// Client is a thin JSON client over the backend collection API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a backend client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("backend base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: baseURL,
		client:  hc,
	}, nil
}

// Users returns the users collection bound to this client.
func (c *Client) Users() *UserDirectory { return &UserDirectory{c: c} }

// Events returns the events collection bound to this client.
func (c *Client) Events() *EventCatalog { return &EventCatalog{c: c} }

// do performs one JSON round trip. in is marshaled as the request body
// when non-nil; out is decoded from the response body when non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "encode %s %s body", method, path)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "build %s %s request", method, path)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUnavailable, "backend %s %s", method, path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.NotFoundf("backend %s %s: not found", method, path)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain a little of the body for diagnostics; backends in this
		// family return terse text errors.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return apperrors.Unavailable(fmt.Sprintf(
			"backend %s %s: status %d %s", method, path, resp.StatusCode, strings.TrimSpace(string(snippet))))
	}

	if out == nil {
		return nil
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return apperrors.Wrapf(decodeErr, apperrors.ErrCodeUnavailable, "decode %s %s response", method, path)
	}
	return nil
}
