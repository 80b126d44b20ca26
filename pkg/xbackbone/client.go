// Package xbackbone is a minimal client for an XBackbone file host: one
// multipart upload call plus the URL conventions derived from its response.
package xbackbone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/aretw0/vitae/internal/httpx"
	"github.com/aretw0/vitae/pkg/core"
)

// Client uploads files to an XBackbone host.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
	Logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HTTP = hc
	}
}

// WithInsecureTLS disables certificate verification. XBackbone hosts are
// commonly self-hosted behind self-signed certificates.
func WithInsecureTLS() Option {
	return func(c *Client) {
		c.HTTP = httpx.NewInsecureClient()
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.Logger = logger
	}
}

// New creates a client for the host at baseURL, authenticating with token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{BaseURL: strings.TrimSuffix(baseURL, "/"), Token: token}
	for _, opt := range opts {
		opt(c)
	}
	if c.HTTP == nil {
		c.HTTP = &http.Client{Timeout: httpx.DefaultTimeout}
	}
	return c
}

// Upload is the outcome of a successful upload: the sharable page URL plus
// the host's derived raw and delete URLs.
type Upload struct {
	URL       string
	RawURL    string
	DeleteURL string
}

// Upload sends the file as a multipart form and returns the hosted URLs.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (Upload, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("upload", filename)
	if err != nil {
		return Upload{}, uploadFailed(err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return Upload{}, uploadFailed(err)
	}
	if err := form.WriteField("token", c.Token); err != nil {
		return Upload{}, uploadFailed(err)
	}
	if err := form.Close(); err != nil {
		return Upload{}, uploadFailed(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/upload", &buf)
	if err != nil {
		return Upload{}, uploadFailed(err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	if c.Logger != nil {
		c.Logger.Debug("uploading to xbackbone", "host", c.BaseURL, "file", filename)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Upload{}, uploadFailed(err)
	}
	body, err := httpx.ReadBody(resp)
	if err != nil {
		return Upload{}, uploadFailed(err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Upload{}, &core.UpstreamError{
			Msg:        fmt.Sprintf("Failed to upload to XBackbone with status code %d: %s", resp.StatusCode, httpx.Snippet(body)),
			StatusCode: resp.StatusCode,
			Body:       httpx.Snippet(body),
		}
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.URL == "" {
		return Upload{}, &core.ParseError{
			Msg: fmt.Sprintf("Failed to parse XBackbone upload response: %s", httpx.Snippet(body)),
		}
	}

	return Upload{
		URL:       payload.URL,
		RawURL:    payload.URL + "/raw",
		DeleteURL: fmt.Sprintf("%s/delete/%s", payload.URL, c.Token),
	}, nil
}

// uploadFailed wraps transport-level upload failures with the message the
// tools render for them.
func uploadFailed(err error) *core.NetworkError {
	return &core.NetworkError{Msg: fmt.Sprintf("XBackbone upload failed - %v", err), Err: err}
}
