// Package gateway is the REST client over the hospital backend. Every
// operation absorbs transport failures, non-2xx statuses and malformed bodies
// into its return value; nothing here ever panics or returns a Go error to
// the caller. The sync coordinator treats a failed result as "not persisted
// remotely" and carries on with local state.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Client wraps an HTTP client pointed at the backend base URL
// (e.g. "http://localhost:8000").
type Client struct {
	base  string
	hc    *http.Client
	log   zerolog.Logger
	token string
}

// New creates a gateway client for the given base URL.
func New(base string, logger zerolog.Logger) *Client {
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 10 * time.Second},
		log:  logger,
	}
}

// SetToken attaches a bearer token sent with every subsequent request.
func (c *Client) SetToken(token string) { c.token = token }

// SetHTTPClient overrides the underlying HTTP client. Used by tests.
func (c *Client) SetHTTPClient(hc *http.Client) { c.hc = hc }

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(body))
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.base+path, nil)
	}
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// Probe performs a lightweight availability check against the backend.
// It never returns an error: any failure means "not available".
func (c *Client) Probe(ctx context.Context) bool {
	req, err := c.newRequest(ctx, http.MethodHead, "/api/patients", nil)
	if err != nil {
		return false
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("server probe failed")
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// List fetches all records of one entity. It returns nil on any failure
// (transport, non-2xx status, malformed body) and logs the cause.
func List[T any](ctx context.Context, c *Client, entity string) []T {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/"+entity, nil)
	if err != nil {
		return nil
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("entity", entity).Msg("fetch failed")
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error().Int("status", resp.StatusCode).Str("entity", entity).Msg("fetch rejected")
		return nil
	}
	var out []T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.log.Error().Err(err).Str("entity", entity).Msg("decode failed")
		return nil
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// Result is the outcome of a mutating call. A non-empty Err means the
// operation did not persist remotely; Fields carries whatever the server
// echoed back (including the assigned id on create).
type Result struct {
	Fields map[string]any
	Err    string
}

// OK reports whether the remote operation succeeded.
func (r Result) OK() bool { return r.Err == "" }

// IntField extracts an integer field (e.g. the server-assigned "PatientID")
// from the response body.
func (r Result) IntField(name string) (int, bool) {
	v, ok := r.Fields[name]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Message returns the server's human-readable message, if any.
func (r Result) Message() string {
	msg, _ := r.Fields["message"].(string)
	return msg
}

func (c *Client) do(ctx context.Context, method, path string, payload any) Result {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return Result{Err: err.Error()}
		}
	}
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return Result{Err: err.Error()}
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("request failed")
		return Result{Err: err.Error()}
	}
	defer resp.Body.Close()

	fields := map[string]any{}
	decodeErr := json.NewDecoder(resp.Body).Decode(&fields)
	if msg, ok := fields["error"].(string); ok && msg != "" {
		c.log.Error().Str("path", path).Str("error", msg).Msg("request rejected")
		return Result{Fields: fields, Err: msg}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error().Int("status", resp.StatusCode).Str("path", path).Msg("request rejected")
		return Result{Fields: fields, Err: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}
	if decodeErr != nil {
		c.log.Error().Err(decodeErr).Str("path", path).Msg("decode failed")
		return Result{Err: decodeErr.Error()}
	}
	return Result{Fields: fields}
}

// Create submits a new record of the given entity.
func (c *Client) Create(ctx context.Context, entity string, payload any) Result {
	return c.do(ctx, http.MethodPost, "/api/"+entity, payload)
}

// Update replaces the record with the given id.
func (c *Client) Update(ctx context.Context, entity string, id int, payload any) Result {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/%s/%d", entity, id), payload)
}

// Delete removes the record with the given id.
func (c *Client) Delete(ctx context.Context, entity string, id int) Result {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/%s/%d", entity, id), nil)
}

// Login exchanges credentials for a bearer token and attaches it to the
// client. It follows the same never-throw contract as the other calls.
func (c *Client) Login(ctx context.Context, username, password string) Result {
	res := c.do(ctx, http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	})
	if res.OK() {
		if tok, ok := res.Fields["token"].(string); ok {
			c.token = tok
		}
	}
	return res
}
