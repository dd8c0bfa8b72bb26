package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/srgjo27/travel_agency/internal/core/ports"
	"github.com/srgjo27/travel_agency/internal/metrics"
)

var _ ports.ImageStorage = (*Client)(nil)

var ErrForeignURL = errors.New("url does not belong to the storage bucket")

type Config struct {
	URL          string
	ServiceKey   string
	Bucket       string
	MaxBytes     int64
	MaxDimension int
}

// Error is a non-2xx answer from the object store.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage: HTTP %d: %s", e.Status, e.Message)
}

type Client struct {
	cfg        Config
	baseURL    string
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

func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		baseURL:    strings.TrimRight(cfg.URL, "/") + "/storage/v1",
		httpClient: http.DefaultClient,
		log:        logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Upload stores data under <folder>/<uuid>.<ext> and returns its public URL.
// filename is only used for logging; the extension comes from the content.
func (c *Client) Upload(ctx context.Context, folder, filename string, data []byte) (string, error) {
	if c.cfg.MaxBytes > 0 && int64(len(data)) > c.cfg.MaxBytes {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	img, err := prepareImage(data, c.cfg.MaxDimension)
	if err != nil {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		return "", err
	}

	objectPath := path.Join(strings.Trim(folder, "/"), uuid.NewString()+img.ext)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.objectURL(objectPath), bytes.NewReader(img.data))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}

	req.Header.Set("Content-Type", img.contentType)
	req.Header.Set("Cache-Control", "max-age=3600")
	req.Header.Set("x-upsert", "false")

	if err := c.send(req); err != nil {
		metrics.ImageUploads.WithLabelValues("error").Inc()
		return "", err
	}

	metrics.ImageUploads.WithLabelValues("ok").Inc()

	c.log.WithFields(logrus.Fields{
		"object":   objectPath,
		"filename": filename,
		"bytes":    len(img.data),
	}).Info("image uploaded")

	return c.PublicURL(objectPath), nil
}

type removeRequest struct {
	Prefixes []string `json:"prefixes"`
}

func (c *Client) Delete(ctx context.Context, publicURL string) error {
	objectPath, err := c.ObjectPath(publicURL)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(removeRequest{Prefixes: []string{objectPath}})
	if err != nil {
		return fmt.Errorf("failed to encode delete request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/object/"+url.PathEscape(c.cfg.Bucket), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.send(req)
}

func (c *Client) PublicURL(objectPath string) string {
	return c.baseURL + "/object/public/" + url.PathEscape(c.cfg.Bucket) + "/" + escapePath(objectPath)
}

// ObjectPath reverses PublicURL.
func (c *Client) ObjectPath(publicURL string) (string, error) {
	prefix := c.baseURL + "/object/public/" + url.PathEscape(c.cfg.Bucket) + "/"

	rest, ok := strings.CutPrefix(publicURL, prefix)
	if !ok || rest == "" {
		return "", fmt.Errorf("%w: %s", ErrForeignURL, publicURL)
	}

	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}

	objectPath, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrForeignURL, err)
	}

	return objectPath, nil
}

func (c *Client) objectURL(objectPath string) string {
	return c.baseURL + "/object/" + url.PathEscape(c.cfg.Bucket) + "/" + escapePath(objectPath)
}

func (c *Client) send(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+c.cfg.ServiceKey)
	req.Header.Set("apikey", c.cfg.ServiceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storage %s: %w", req.Method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, _ := io.ReadAll(resp.Body)

	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	msg := http.StatusText(resp.StatusCode)
	if err := json.Unmarshal(body, &env); err == nil {
		switch {
		case env.Message != "":
			msg = env.Message
		case env.Error != "":
			msg = env.Error
		}
	}

	return &Error{Status: resp.StatusCode, Message: msg}
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}

	return strings.Join(parts, "/")
}
