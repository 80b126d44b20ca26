// Package rxresume is the client for the remote resume service. It covers the
// handful of endpoints the tools use: login, profile, listing, fetch, create,
// patch and PDF export. The service is the sole owner of resume state; this
// client never caches anything beyond the session cookie.
package rxresume

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/vitae/internal/httpx"
	"github.com/aretw0/vitae/pkg/core"
)

// Client issues authenticated calls against a resume service API. The zero
// value is not usable; construct with New. Login must succeed before any
// other method: the session cookie it captures authenticates the rest.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default session client. The provided client
// should carry a cookie jar, or every call after Login will be anonymous.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HTTP = hc
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.Logger = logger
	}
}

// New creates a client for the service at baseURL (the URL up to and
// including the /api prefix).
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{BaseURL: strings.TrimSuffix(baseURL, "/")}
	for _, opt := range opts {
		opt(c)
	}
	if c.HTTP == nil {
		hc, err := httpx.NewSessionClient()
		if err != nil {
			return nil, err
		}
		c.HTTP = hc
	}
	return c, nil
}

// User is the slice of the profile endpoint the tools care about.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateRequest is the body of a resume creation call.
type CreateRequest struct {
	Title      string          `json:"title"`
	Slug       string          `json:"slug"`
	Visibility core.Visibility `json:"visibility,omitempty"`
	Data       core.Data       `json:"data"`
}

// UpdateRequest is the body of a resume patch call. The service expects the
// full document state, not a delta.
type UpdateRequest struct {
	Title      string          `json:"title"`
	Slug       string          `json:"slug"`
	Visibility core.Visibility `json:"visibility"`
	Data       core.Data       `json:"data"`
}

// Login authenticates the session. On success the session cookie lives in
// the client's cookie jar and authenticates every later call.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"identifier": email, "password": password}
	resp, err := c.do(ctx, http.MethodPost, "/auth/login", body)
	if err != nil {
		return err
	}
	if _, err := httpx.ReadBody(resp); err != nil {
		return core.NewNetworkError(err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log("login rejected", "status", resp.StatusCode)
		return &core.AuthError{StatusCode: resp.StatusCode}
	}
	return nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/user/me", nil)
	if err != nil {
		return User{}, err
	}
	body, err := httpx.ReadBody(resp)
	if err != nil {
		return User{}, core.NewNetworkError(err)
	}
	if resp.StatusCode != http.StatusOK {
		return User{}, &core.UpstreamError{
			Msg:        fmt.Sprintf("Failed to get user profile with status code %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       httpx.Snippet(body),
		}
	}
	var u User
	if err := json.Unmarshal(body, &u); err != nil {
		return User{}, &core.ParseError{Msg: "Failed to parse JSON response"}
	}
	return u, nil
}

// List fetches all resumes of the authenticated user.
func (c *Client) List(ctx context.Context) ([]core.Document, error) {
	resp, err := c.do(ctx, http.MethodGet, "/resume", nil)
	if err != nil {
		return nil, err
	}
	body, err := httpx.ReadBody(resp)
	if err != nil {
		return nil, core.NewNetworkError(err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &core.UpstreamError{
			Msg:        fmt.Sprintf("Failed to get resumes with status code %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       httpx.Snippet(body),
		}
	}
	var docs []core.Document
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, &core.ParseError{Msg: "Failed to parse JSON response"}
	}
	return docs, nil
}

// Get fetches one resume by id.
func (c *Client) Get(ctx context.Context, id string) (core.Document, error) {
	resp, err := c.do(ctx, http.MethodGet, "/resume/"+id, nil)
	if err != nil {
		return core.Document{}, err
	}
	body, err := httpx.ReadBody(resp)
	if err != nil {
		return core.Document{}, core.NewNetworkError(err)
	}
	if resp.StatusCode != http.StatusOK {
		return core.Document{}, &core.UpstreamError{
			Msg:        fmt.Sprintf("Failed to get resume with status code %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       httpx.Snippet(body),
		}
	}
	var doc core.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return core.Document{}, &core.ParseError{Msg: "Failed to parse JSON response"}
	}
	return doc, nil
}

// Create persists a new resume. The service assigns the document id and
// every item id.
func (c *Client) Create(ctx context.Context, req CreateRequest) (core.Document, error) {
	resp, err := c.do(ctx, http.MethodPost, "/resume", req)
	if err != nil {
		return core.Document{}, err
	}
	body, err := httpx.ReadBody(resp)
	if err != nil {
		return core.Document{}, core.NewNetworkError(err)
	}
	if resp.StatusCode != http.StatusCreated {
		return core.Document{}, &core.UpstreamError{
			Msg:        fmt.Sprintf("Failed to create resume with status code %d. Response: %s", resp.StatusCode, body),
			StatusCode: resp.StatusCode,
			Body:       httpx.Snippet(body),
		}
	}
	var doc core.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return core.Document{}, &core.ParseError{Msg: "Failed to parse JSON response"}
	}
	return doc, nil
}

// Update submits the full new state of a resume.
func (c *Client) Update(ctx context.Context, id string, req UpdateRequest) (core.Document, error) {
	resp, err := c.do(ctx, http.MethodPatch, "/resume/"+id, req)
	if err != nil {
		return core.Document{}, err
	}
	body, err := httpx.ReadBody(resp)
	if err != nil {
		return core.Document{}, core.NewNetworkError(err)
	}
	if resp.StatusCode != http.StatusOK {
		return core.Document{}, &core.UpstreamError{
			Msg:        fmt.Sprintf("Failed to update resume with status code %d. Response: %s", resp.StatusCode, body),
			StatusCode: resp.StatusCode,
			Body:       httpx.Snippet(body),
		}
	}
	var doc core.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return core.Document{}, &core.ParseError{Msg: "Failed to parse JSON response"}
	}
	return doc, nil
}

// PrintResult is the outcome of a print call. Exactly one field is set:
// PDF when the service answered with the file itself, URL when it answered
// with a pointer to it, Unknown when it answered with neither and the caller
// should fall back to Export.
type PrintResult struct {
	PDF     []byte
	URL     string
	Unknown bool
}

// Print asks the service to render a resume to PDF. Depending on the service
// version the response is the PDF itself or a JSON body carrying its URL.
func (c *Client) Print(ctx context.Context, id string) (PrintResult, error) {
	resp, err := c.do(ctx, http.MethodGet, "/resume/print/"+id, nil)
	if err != nil {
		return PrintResult{}, err
	}
	body, err := httpx.ReadBody(resp)
	if err != nil {
		return PrintResult{}, core.NewNetworkError(err)
	}
	if resp.StatusCode != http.StatusOK {
		return PrintResult{}, &core.UpstreamError{
			Msg:        fmt.Sprintf("Failed to get PDF URL with status code %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       httpx.Snippet(body),
		}
	}

	contentType := resp.Header.Get("Content-Type")
	switch {
	case strings.Contains(contentType, "application/json"):
		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err != nil {
			return PrintResult{}, &core.ParseError{Msg: "Failed to parse JSON response"}
		}
		url, _ := payload["url"].(string)
		if url == "" {
			return PrintResult{}, &core.UpstreamError{
				Msg:        fmt.Sprintf("PDF URL not found in response: %s", body),
				StatusCode: resp.StatusCode,
				Body:       httpx.Snippet(body),
			}
		}
		return PrintResult{URL: url}, nil
	case strings.Contains(contentType, "application/pdf"):
		return PrintResult{PDF: body}, nil
	}
	c.log("print answered with unexpected content type", "contentType", contentType)
	return PrintResult{Unknown: true}, nil
}

// Download fetches the PDF bytes from a URL produced by Print. The session
// client is reused so file URLs behind the same host stay authenticated.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, core.NewNetworkError(err)
	}
	c.log("downloading", "url", url)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, core.NewNetworkError(err)
	}
	body, err := httpx.ReadBody(resp)
	if err != nil {
		return nil, core.NewNetworkError(err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &core.UpstreamError{
			Msg:        fmt.Sprintf("Failed to download PDF with status code %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       httpx.Snippet(body),
		}
	}
	return body, nil
}

// Export fetches the PDF through the alternative export endpoint. Used as a
// fallback when Print answers with an unrecognized content type.
func (c *Client) Export(ctx context.Context, id string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, "/resume/export/"+id, nil)
	if err != nil {
		return nil, err
	}
	body, err := httpx.ReadBody(resp)
	if err != nil {
		return nil, core.NewNetworkError(err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &core.UpstreamError{
			Msg:        fmt.Sprintf("Failed to export resume with status code %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       httpx.Snippet(body),
		}
	}
	return body, nil
}

// do issues one request against the API. Transport failures come back as
// NetworkError; status handling is the caller's.
func (c *Client) do(ctx context.Context, method, endpoint string, body any) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, &buf)
	if err != nil {
		return nil, core.NewNetworkError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log("calling resume service", "method", method, "endpoint", endpoint)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, core.NewNetworkError(err)
	}
	return resp, nil
}

func (c *Client) log(msg string, args ...any) {
	if c.Logger != nil {
		c.Logger.Debug(msg, args...)
	}
}
