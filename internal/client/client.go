// Package client talks to the lesson-plan backend over HTTP/JSON.
package client

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

	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries a per-call identifier for backend log correlation.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is read looking for {"error"}.
const maxErrorBody = 64 << 10

// Client implements the backend contract. It is safe for concurrent use.
type Client struct {
	base  *url.URL
	http  *http.Client
	log   *zap.Logger
	reqID func() string
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The timeout passed to
// New is ignored; hc's own Timeout applies.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a client rooted at baseURL, e.g. http://localhost:5000/api.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	c := &Client{
		base:  u,
		http:  &http.Client{Timeout: timeout},
		log:   zap.NewNop(),
		reqID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured root.
func (c *Client) BaseURL() string { return c.base.String() }

func (c *Client) ListGroups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	err := c.do(ctx, http.MethodGet, c.endpoint(nil, "groups"), nil, &groups)
	if err != nil {
		return nil, wrapGroupErr("list", models.NoID, err)
	}
	if groups == nil {
		groups = []models.Group{}
	}
	return groups, nil
}

// ListWeeks returns the group's weeks in backend order.
func (c *Client) ListWeeks(ctx context.Context, groupID models.ID) ([]models.Week, error) {
	q := url.Values{"group_id": {groupID.String()}}
	var weeks []models.Week
	err := c.do(ctx, http.MethodGet, c.endpoint(q, "weeks"), nil, &weeks)
	if err != nil {
		return nil, wrapGroupErr("list weeks of", groupID, err)
	}
	if weeks == nil {
		weeks = []models.Week{}
	}
	return weeks, nil
}

func (c *Client) CreateWeek(ctx context.Context, p models.WeekPayload) (models.Week, error) {
	var w models.Week
	if err := c.do(ctx, http.MethodPost, c.endpoint(nil, "weeks"), p, &w); err != nil {
		return models.Week{}, wrapWeekErr("create", models.NoID, err)
	}
	return w, nil
}

// UpdateWeek sends p without its week number, which cannot change.
func (c *Client) UpdateWeek(ctx context.Context, id models.ID, p models.WeekPayload) (models.Week, error) {
	p.WeekNumber = 0
	var w models.Week
	if err := c.do(ctx, http.MethodPut, c.endpoint(nil, "weeks", id.String()), p, &w); err != nil {
		return models.Week{}, wrapWeekErr("update", id, err)
	}
	return w, nil
}

func (c *Client) DeleteWeek(ctx context.Context, id models.ID) error {
	err := c.do(ctx, http.MethodDelete, c.endpoint(nil, "weeks", id.String()), nil, nil)
	return wrapWeekErr("delete", id, err)
}

func (c *Client) endpoint(q url.Values, segments ...string) string {
	u := c.base.JoinPath(segments...)
	if q != nil {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// do performs one call. body is JSON encoded when non-nil; out is decoded from
// a 2xx response when non-nil.
func (c *Client) do(ctx context.Context, method, target string, body, out any) error {
	resp, err := c.send(ctx, method, target, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeFailure(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
	}
	return nil
}

// send issues the request and logs it. Non-2xx responses are returned
// unchanged for the caller to classify.
func (c *Client) send(ctx context.Context, method, target string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	reqID := c.reqID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("path", req.URL.Path),
		zap.String("request_id", reqID),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		c.log.Warn("backend request failed", append(fields, zap.Error(err))...)
		return nil, &NetworkError{Err: err}
	}
	c.log.Debug("backend request", append(fields, zap.Int("status", resp.StatusCode))...)
	return resp, nil
}

type errorPayload struct {
	Error string `json:"error"`
}

func decodeFailure(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &ServerError{Status: resp.StatusCode}
	}
	var payload errorPayload
	if json.Unmarshal(raw, &payload) == nil && strings.TrimSpace(payload.Error) != "" {
		return &ValidationError{Status: resp.StatusCode, Message: payload.Error}
	}
	return &ServerError{Status: resp.StatusCode}
}
