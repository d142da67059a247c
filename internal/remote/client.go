package remote

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

	"github.com/przant/jeopardy-trainer/internal/domain"
	"github.com/przant/jeopardy-trainer/internal/quiz"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// Endpoint names, used in errors and logs.
const (
	EndpointStart  = "POST /session/start"
	EndpointSubmit = "POST /session/submit"
	EndpointStats  = "GET /stats"
	EndpointRoot   = "GET /"
)

// API is the full surface of the session service used by the app.
type API interface {
	quiz.Service
	Stats(ctx context.Context, d domain.Domain) (*Stats, error)
	Version(ctx context.Context) (*ServiceInfo, error)
}

// Client talks to the session service over HTTP. Every call is a single
// attempt; callers decide whether to try again.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ API = (*Client)(nil)

// New constructs a client for baseURL. A non-positive timeout selects
// DefaultTimeout.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid service URL %q", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// BaseURL returns the service root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// StartSession requests count questions for d.
func (c *Client) StartSession(ctx context.Context, d domain.Domain, count int) ([]quiz.Question, error) {
	var resp startResponse
	if err := c.do(ctx, http.MethodPost, "/session/start", EndpointStart, startSchemaName,
		startRequest{Domain: d, Count: count}, &resp); err != nil {
		return nil, err
	}
	return resp.questions(), nil
}

// SubmitSession sends every answer for scoring.
func (c *Client) SubmitSession(ctx context.Context, d domain.Domain, answers []quiz.Submission) (*quiz.Report, error) {
	var resp submitResponse
	if err := c.do(ctx, http.MethodPost, "/session/submit", EndpointSubmit, submitSchemaName,
		newSubmitRequest(d, answers), &resp); err != nil {
		return nil, err
	}
	return resp.report(), nil
}

// Stats fetches the seen-count breakdown for d.
func (c *Client) Stats(ctx context.Context, d domain.Domain) (*Stats, error) {
	var resp Stats
	path := "/stats/" + url.PathEscape(string(d))
	if err := c.do(ctx, http.MethodGet, path, EndpointStats, statsSchemaName, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Domain == "" {
		resp.Domain = string(d)
	}
	return &resp, nil
}

// Version fetches the service banner.
func (c *Client) Version(ctx context.Context) (*ServiceInfo, error) {
	var resp ServiceInfo
	if err := c.do(ctx, http.MethodGet, "/", EndpointRoot, rootSchemaName, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do performs one request and decodes a validated JSON body into out.
func (c *Client) do(ctx context.Context, method, path, endpoint, schema string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", endpoint, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &ErrTransport{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ErrTransport{Endpoint: endpoint, Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(endpoint, resp.StatusCode, raw)
	}

	if err := validateBody(schema, raw); err != nil {
		return &ErrMalformed{Endpoint: endpoint, Body: raw, Err: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ErrMalformed{Endpoint: endpoint, Body: raw, Err: err}
	}
	return nil
}
