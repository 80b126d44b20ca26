package tools

import (
	"github.com/aretw0/introspection"
)

// ToolsetState exposes the resolved configuration for observability, with
// every secret reduced to a set/unset flag.
type ToolsetState struct {
	ConfigFile   string `json:"config_file"`
	EnvFile      string `json:"env_file"`
	BaseURL      string `json:"base_url"`
	EmailSet     bool   `json:"email_set"`
	PasswordSet  bool   `json:"password_set"`
	XBackboneURL string `json:"xbackbone_url"`
	XBackboneSet bool   `json:"xbackbone_token_set"`
}

// State implements introspection.Introspectable.
func (t *Toolset) State() any {
	r := t.cfg
	r.load()
	return ToolsetState{
		ConfigFile:   r.configFile,
		EnvFile:      r.envFile,
		BaseURL:      r.lookup(EnvBaseURL, r.file.Resume.BaseURL),
		EmailSet:     r.lookup(EnvEmail, r.file.Resume.Email) != "",
		PasswordSet:  r.lookup(EnvPassword, r.file.Resume.Password) != "",
		XBackboneURL: r.lookup(EnvXBackboneURL, r.file.XBackbone.URL),
		XBackboneSet: r.lookup(EnvXBackboneToken, r.file.XBackbone.Token) != "",
	}
}

// ComponentType implements introspection.Component.
func (t *Toolset) ComponentType() string {
	return "toolset"
}

var _ introspection.Introspectable = (*Toolset)(nil)
var _ introspection.Component = (*Toolset)(nil)
