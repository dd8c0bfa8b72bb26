package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/srgjo27/travel_agency/internal/core/domain"
	"github.com/srgjo27/travel_agency/internal/core/ports"
	"github.com/srgjo27/travel_agency/internal/metrics"
)

var _ ports.Backend = (*Client)(nil)

// Error is a non-2xx answer from the backend.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// Client is bound to one session for its whole life. A new client is built
// after login; logout invalidates the session so the token stops being sent.
type Client struct {
	baseURL    string
	session    *domain.Session
	httpClient *http.Client
	log        logrus.FieldLogger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

func NewClient(baseURL string, session *domain.Session, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		session:    session,
		httpClient: http.DefaultClient,
		log:        logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Session() *domain.Session {
	return c.session
}

// Factory builds per-session clients sharing one transport.
type Factory struct {
	baseURL string
	opts    []Option
}

func NewFactory(baseURL string, opts ...Option) *Factory {
	return &Factory{baseURL: baseURL, opts: opts}
}

func (f *Factory) ForSession(session *domain.Session) ports.Backend {
	return NewClient(f.baseURL, session, f.opts...)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resource := resourceOf(path)
	start := time.Now()

	resp, err := c.httpClient.Do(req)

	metrics.BackendRequestDuration.WithLabelValues(resource, method).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.BackendRequests.WithLabelValues(resource, method, "error").Inc()
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	defer resp.Body.Close()

	metrics.BackendRequests.WithLabelValues(resource, method, strconv.Itoa(resp.StatusCode)).Inc()

	c.log.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("backend call")

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return nil
}

func decodeError(status int, body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return &Error{Status: status, Message: env.Error}
	}

	return &Error{
		Status:  status,
		Message: fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status)),
	}
}

func resourceOf(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.Index(trimmed, "/"); i >= 0 {
		return trimmed[:i]
	}

	return trimmed
}

func listValues(q ports.ListQuery) url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}

	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}

	return v
}

func escape(id string) string {
	return url.PathEscape(id)
}
