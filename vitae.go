package vitae

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aretw0/vitae/pkg/tools"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Toolset is a public alias for the tool façade bundle.
type Toolset = tools.Toolset

// --- Configuration ---

// Option defines a functional option for configuring a Toolset.
type Option = tools.Option

// WithLogger sets the logger for the toolset and its clients.
func WithLogger(logger *slog.Logger) Option {
	return tools.WithLogger(logger)
}

// WithHTTPClient injects the http.Client used for remote calls.
func WithHTTPClient(hc *http.Client) Option {
	return tools.WithHTTPClient(hc)
}

// WithConfigFile overrides the YAML config file location.
func WithConfigFile(path string) Option {
	return tools.WithConfigFile(path)
}

// WithEnvFile overrides the .env file location.
func WithEnvFile(path string) Option {
	return tools.WithEnvFile(path)
}

// --- Factory ---

// New creates a new Toolset.
func New(opts ...Option) *Toolset {
	return tools.New(opts...)
}

// --- Operations ---
//
// The one-shot functions below build a Toolset per call. They exist for
// callers that invoke a single tool and do not want to hold a Toolset.

// CreateResume creates a new resume.
func CreateResume(ctx context.Context, paramsJSON string, opts ...Option) string {
	return New(opts...).CreateResume(ctx, paramsJSON)
}

// GetResume fetches one resume by id.
func GetResume(ctx context.Context, paramsJSON string, opts ...Option) string {
	return New(opts...).GetResume(ctx, paramsJSON)
}

// ListResumes lists the authenticated user's resumes.
func ListResumes(ctx context.Context, paramsJSON string, opts ...Option) string {
	return New(opts...).ListResumes(ctx, paramsJSON)
}

// UpdateResume updates a whole resume with the loose document merge.
func UpdateResume(ctx context.Context, paramsJSON string, opts ...Option) string {
	return New(opts...).UpdateResume(ctx, paramsJSON)
}

// UpdateResumeSection applies one section-level operation to a resume.
func UpdateResumeSection(ctx context.Context, paramsJSON string, opts ...Option) string {
	return New(opts...).UpdateResumeSection(ctx, paramsJSON)
}

// ExportPDF downloads a resume as PDF and optionally uploads it.
func ExportPDF(ctx context.Context, paramsJSON string, opts ...Option) string {
	return New(opts...).ExportPDF(ctx, paramsJSON)
}
