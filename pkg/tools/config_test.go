package tools

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/vitae/pkg/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// newResolver builds a resolver backed by files in a temp dir, with the
// process environment cleared for every recognized variable.
func newResolver(t *testing.T, envContent, yamlContent string) *resolver {
	t.Helper()
	for _, env := range []string{EnvEmail, EnvPassword, EnvBaseURL, EnvXBackboneURL, EnvXBackboneToken} {
		t.Setenv(env, "")
	}

	dir := t.TempDir()
	r := &resolver{
		configFile: filepath.Join(dir, "vitae.yaml"),
		envFile:    filepath.Join(dir, ".env"),
	}
	if envContent != "" {
		writeFile(t, r.envFile, envContent)
	}
	if yamlContent != "" {
		writeFile(t, r.configFile, yamlContent)
	}
	return r
}

const yamlAll = `
resume:
  email: yaml@example.com
  password: yaml-pass
  base_url: http://yaml.example.com/api
xbackbone:
  url: http://yaml-files.example.com
  token: yaml-token
`

func TestCredentialsPrecedence(t *testing.T) {
	t.Run("YAML Is The Floor", func(t *testing.T) {
		r := newResolver(t, "", yamlAll)
		creds, err := r.credentials(authParams{}, authParams{})
		if err != nil {
			t.Fatalf("credentials() error = %v", err)
		}
		if creds.Email != "yaml@example.com" || creds.BaseURL != "http://yaml.example.com/api" {
			t.Errorf("creds = %+v", creds)
		}
	})

	t.Run("DotEnv Beats YAML", func(t *testing.T) {
		r := newResolver(t, EnvEmail+"=dotenv@example.com\n", yamlAll)
		creds, err := r.credentials(authParams{}, authParams{})
		if err != nil {
			t.Fatalf("credentials() error = %v", err)
		}
		if creds.Email != "dotenv@example.com" {
			t.Errorf("email = %q, want dotenv value", creds.Email)
		}
		if creds.Password != "yaml-pass" {
			t.Errorf("password = %q, want yaml fallback", creds.Password)
		}
	})

	t.Run("Environment Beats DotEnv", func(t *testing.T) {
		r := newResolver(t, EnvEmail+"=dotenv@example.com\n", yamlAll)
		t.Setenv(EnvEmail, "env@example.com")
		creds, err := r.credentials(authParams{}, authParams{})
		if err != nil {
			t.Fatalf("credentials() error = %v", err)
		}
		if creds.Email != "env@example.com" {
			t.Errorf("email = %q, want env value", creds.Email)
		}
	})

	t.Run("Explicit Param Beats Everything", func(t *testing.T) {
		r := newResolver(t, EnvEmail+"=dotenv@example.com\n", yamlAll)
		t.Setenv(EnvEmail, "env@example.com")
		creds, err := r.credentials(authParams{Email: "param@example.com"}, authParams{})
		if err != nil {
			t.Fatalf("credentials() error = %v", err)
		}
		if creds.Email != "param@example.com" {
			t.Errorf("email = %q, want param value", creds.Email)
		}
	})

	t.Run("Auth Object Beats Legacy Fields", func(t *testing.T) {
		r := newResolver(t, "", yamlAll)
		creds, err := r.credentials(
			authParams{Email: "auth@example.com"},
			authParams{Email: "legacy@example.com", Password: "legacy-pass"},
		)
		if err != nil {
			t.Fatalf("credentials() error = %v", err)
		}
		if creds.Email != "auth@example.com" {
			t.Errorf("email = %q, want auth value", creds.Email)
		}
		if creds.Password != "legacy-pass" {
			t.Errorf("password = %q, want legacy value", creds.Password)
		}
	})
}

func TestCredentialsMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		wantMsg string
	}{
		{
			name:    "Missing Email",
			env:     "",
			wantMsg: "Resume service email is required (set RX_RESUME_EMAIL or pass auth.email)",
		},
		{
			name:    "Missing Password",
			env:     EnvEmail + "=me@example.com\n",
			wantMsg: "Resume service password is required (set RX_RESUME_PASSWORD or pass auth.password)",
		},
		{
			name:    "Missing Base URL",
			env:     EnvEmail + "=me@example.com\n" + EnvPassword + "=pw\n",
			wantMsg: "Resume service base URL is required (set RX_RESUME_BASE_URL or pass auth.base_url)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newResolver(t, tt.env, "")
			_, err := r.credentials(authParams{}, authParams{})
			var vErr *core.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestHostingResolution(t *testing.T) {
	t.Run("Resolved From Files", func(t *testing.T) {
		r := newResolver(t, "", yamlAll)
		url, token, err := r.hosting("", "")
		if err != nil {
			t.Fatalf("hosting() error = %v", err)
		}
		if url != "http://yaml-files.example.com" || token != "yaml-token" {
			t.Errorf("hosting = %q/%q", url, token)
		}
	})

	t.Run("Missing URL", func(t *testing.T) {
		r := newResolver(t, "", "")
		_, _, err := r.hosting("", "tok")
		var vErr *core.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("error = %v, want ValidationError", err)
		}
		if err.Error() != "XBackbone URL is required (set XBACKBONE_URL or pass xbackbone_url)" {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("Missing Token", func(t *testing.T) {
		r := newResolver(t, "", "")
		_, _, err := r.hosting("http://files.example.com", "")
		var vErr *core.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("error = %v, want ValidationError", err)
		}
	})
}

// The .env file must never leak into the process environment.
func TestDotEnvDoesNotMutateEnvironment(t *testing.T) {
	r := newResolver(t, EnvEmail+"=dotenv@example.com\n", "")
	r.load()
	if got := os.Getenv(EnvEmail); got != "" {
		t.Errorf("process env mutated: %s=%q", EnvEmail, got)
	}
}
