// Package rest implements the HTTP client for the remote attendance service.
//
// The contract consumed here:
//
//	GET    /absences/{userId} -> []absence.Log
//	POST   /absences/         -> create (idempotent on derived id)
//	DELETE /absences/{id}     -> delete by derived id
//	GET    /ranking/          -> []types.RankingEntry, server-determined order
//	POST   /profile/          -> profile upsert
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"presenca/internal/domain/absence"
	"presenca/internal/domain/types"
)

// Client talks to the remote attendance service.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListAbsences fetches the full absence log for a user.
func (c *Client) ListAbsences(ctx context.Context, userID string) ([]absence.Log, error) {
	var logs []absence.Log
	if err := c.getJSON(ctx, "/absences/"+url.PathEscape(userID), &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// CreateAbsence records one absence. Creation is idempotent per derived id:
// a repeated create collides on identity server-side and is not an error.
func (c *Client) CreateAbsence(ctx context.Context, l absence.Log) error {
	return c.send(ctx, http.MethodPost, "/absences/", l)
}

// DeleteAbsence removes an absence by its derived id.
func (c *Client) DeleteAbsence(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/absences/"+url.PathEscape(id), nil)
}

// Ranking fetches the leaderboard snapshot in server order.
func (c *Client) Ranking(ctx context.Context) ([]types.RankingEntry, error) {
	var entries []types.RankingEntry
	if err := c.getJSON(ctx, "/ranking/", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// PublishProfile upserts the user's leaderboard record.
func (c *Client) PublishProfile(ctx context.Context, p types.Profile) error {
	return c.send(ctx, http.MethodPost, "/profile/", p)
}

// getJSON performs a GET and decodes a JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s returned %d", ErrRemote, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode GET %s: %w", ErrRemote, path, err)
	}
	return nil
}

// send performs a mutating call with an optional JSON body and drains the
// response. Any 2xx status counts as success.
func (c *Client) send(ctx context.Context, method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s %s returned %d", ErrRemote, method, path, resp.StatusCode)
	}
	return nil
}
