package tools

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/vitae/pkg/core"
)

// Environment variables recognized for configuration. There are no built-in
// fallbacks behind them: a credential that resolves to nothing is an error.
const (
	EnvEmail          = "RX_RESUME_EMAIL"
	EnvPassword       = "RX_RESUME_PASSWORD"
	EnvBaseURL        = "RX_RESUME_BASE_URL"
	EnvXBackboneURL   = "XBACKBONE_URL"
	EnvXBackboneToken = "XBACKBONE_TOKEN"
)

// Default file locations, relative to the working directory.
const (
	DefaultConfigFile = "vitae.yaml"
	DefaultEnvFile    = ".env"
)

// authParams is the nested auth object every tool request accepts. Get, list
// and export also accept the same fields at the request top level, at lower
// precedence.
type authParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	BaseURL  string `json:"base_url"`
}

// Credentials is a fully resolved resume-service configuration.
type Credentials struct {
	Email    string
	Password string
	BaseURL  string
}

// fileConfig is the YAML config file shape.
type fileConfig struct {
	Resume struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		BaseURL  string `yaml:"base_url"`
	} `yaml:"resume"`
	XBackbone struct {
		URL   string `yaml:"url"`
		Token string `yaml:"token"`
	} `yaml:"xbackbone"`
}

// resolver resolves configuration fields in precedence order: explicit
// request parameter, process environment, .env file, YAML config file. The
// files are read once per Toolset and never mutate the process environment.
type resolver struct {
	configFile string
	envFile    string
	logger     *slog.Logger

	once   sync.Once
	dotenv map[string]string
	file   fileConfig
}

func (r *resolver) load() {
	r.once.Do(func() {
		if env, err := godotenv.Read(r.envFile); err == nil {
			r.dotenv = env
		} else if !os.IsNotExist(err) && r.logger != nil {
			r.logger.Debug("env file not readable", "path", r.envFile, "error", err)
		}

		raw, err := os.ReadFile(r.configFile)
		if err != nil {
			return
		}
		if err := yaml.Unmarshal(raw, &r.file); err != nil && r.logger != nil {
			r.logger.Debug("config file not parseable", "path", r.configFile, "error", err)
		}
	})
}

// lookup returns the first non-empty value among the explicit parameters,
// the environment variable, the .env entry and the config-file value.
func (r *resolver) lookup(env, fileValue string, explicit ...string) string {
	r.load()
	for _, v := range explicit {
		if v != "" {
			return v
		}
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	if v := r.dotenv[env]; v != "" {
		return v
	}
	return fileValue
}

// credentials resolves the resume-service login configuration. auth comes
// from the request's nested auth object; legacy carries the top-level fields
// some tools still accept, at lower precedence.
func (r *resolver) credentials(auth, legacy authParams) (Credentials, error) {
	r.load()
	creds := Credentials{
		Email:    r.lookup(EnvEmail, r.file.Resume.Email, auth.Email, legacy.Email),
		Password: r.lookup(EnvPassword, r.file.Resume.Password, auth.Password, legacy.Password),
		BaseURL:  r.lookup(EnvBaseURL, r.file.Resume.BaseURL, auth.BaseURL, legacy.BaseURL),
	}
	switch {
	case creds.Email == "":
		return Credentials{}, requiredField("Resume service email", EnvEmail, "auth.email")
	case creds.Password == "":
		return Credentials{}, requiredField("Resume service password", EnvPassword, "auth.password")
	case creds.BaseURL == "":
		return Credentials{}, requiredField("Resume service base URL", EnvBaseURL, "auth.base_url")
	}
	return creds, nil
}

// hosting resolves the XBackbone configuration. Only called when an upload
// was actually requested; missing values are an error at that point.
func (r *resolver) hosting(url, token string) (string, string, error) {
	r.load()
	resolvedURL := r.lookup(EnvXBackboneURL, r.file.XBackbone.URL, url)
	resolvedToken := r.lookup(EnvXBackboneToken, r.file.XBackbone.Token, token)
	if resolvedURL == "" {
		return "", "", requiredField("XBackbone URL", EnvXBackboneURL, "xbackbone_url")
	}
	if resolvedToken == "" {
		return "", "", requiredField("XBackbone token", EnvXBackboneToken, "xbackbone_token")
	}
	return resolvedURL, resolvedToken, nil
}

func requiredField(what, env, param string) *core.ValidationError {
	return &core.ValidationError{
		Msg: fmt.Sprintf("%s is required (set %s or pass %s)", what, env, param),
	}
}
