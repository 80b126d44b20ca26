// Package httpx holds the small HTTP plumbing shared by the remote service
// clients: client construction, body reading and body snippets for error
// reporting.
package httpx

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// DefaultTimeout bounds every remote call. The source services never stream;
// a request that takes longer than this is stuck.
const DefaultTimeout = 30 * time.Second

// SnippetLen caps the response-body excerpt carried inside error messages.
const SnippetLen = 200

// NewSessionClient returns an http.Client with a cookie jar, so a login
// response's session cookie is replayed on every later request.
func NewSessionClient() (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &http.Client{Timeout: DefaultTimeout, Jar: jar}, nil
}

// NewInsecureClient returns an http.Client that skips TLS verification, for
// hosts behind self-signed certificates.
func NewInsecureClient() *http.Client {
	return &http.Client{
		Timeout: DefaultTimeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
}

// ReadBody drains and closes the response body.
func ReadBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// Snippet truncates a response body for inclusion in an error message.
func Snippet(body []byte) string {
	if len(body) > SnippetLen {
		return string(body[:SnippetLen])
	}
	return string(body)
}
