package tools

import (
	"log/slog"
	"net/http"
)

// options holds the internal configuration for a Toolset.
type options struct {
	logger     *slog.Logger
	httpClient *http.Client
	configFile string
	envFile    string
}

// Option defines a functional option for configuring a Toolset.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		configFile: DefaultConfigFile,
		envFile:    DefaultEnvFile,
	}
}

// WithLogger sets the logger for the toolset and the clients it builds.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHTTPClient injects the http.Client used for every remote call. Mostly
// useful in tests; the default is a fresh session client per invocation, so
// no cookies leak between tool calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithConfigFile overrides the YAML config file location.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}

// WithEnvFile overrides the .env file location.
func WithEnvFile(path string) Option {
	return func(o *options) {
		o.envFile = path
	}
}
