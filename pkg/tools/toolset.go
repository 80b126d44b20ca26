// Package tools holds the tool façades: one entry point per resume
// operation, each taking a JSON-encoded request string and returning either
// a JSON result or a plain "Error: ..." string. The façades own request
// parsing, configuration resolution and result rendering; document semantics
// live in pkg/core and the network calls in pkg/rxresume and pkg/xbackbone.
package tools

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/vitae/pkg/rxresume"
)

// Toolset bundles the resume tools behind shared configuration. The zero
// value is not usable; construct with New. A Toolset is stateless across
// invocations: every tool call opens its own authenticated session.
type Toolset struct {
	logger     *slog.Logger
	httpClient *http.Client
	cfg        *resolver
}

// New creates a Toolset.
func New(opts ...Option) *Toolset {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Toolset{
		logger:     o.logger,
		httpClient: o.httpClient,
		cfg: &resolver{
			configFile: o.configFile,
			envFile:    o.envFile,
			logger:     o.logger,
		},
	}
}

// session builds a resume-service client and logs it in.
func (t *Toolset) session(ctx context.Context, creds Credentials) (*rxresume.Client, error) {
	opts := []rxresume.Option{rxresume.WithLogger(t.logger)}
	if t.httpClient != nil {
		opts = append(opts, rxresume.WithHTTPClient(t.httpClient))
	}
	client, err := rxresume.New(creds.BaseURL, opts...)
	if err != nil {
		return nil, err
	}
	if err := client.Login(ctx, creds.Email, creds.Password); err != nil {
		return nil, err
	}
	return client, nil
}

// publicBase derives the public site URL from the API base URL: the service
// serves its API under /api of the host that also serves public resumes.
func publicBase(baseURL string) string {
	return strings.TrimSuffix(strings.TrimSuffix(baseURL, "/"), "/api")
}

func (t *Toolset) log(msg string, args ...any) {
	if t.logger != nil {
		t.logger.Debug(msg, args...)
	}
}
