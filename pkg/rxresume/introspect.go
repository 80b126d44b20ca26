package rxresume

import (
	"github.com/aretw0/introspection"
)

// ClientState exposes the client's connection target for observability.
type ClientState struct {
	BaseURL    string `json:"base_url"`
	SessionSet bool   `json:"session_set"`
}

// State implements introspection.Introspectable.
func (c *Client) State() any {
	return ClientState{
		BaseURL:    c.BaseURL,
		SessionSet: c.HTTP != nil && c.HTTP.Jar != nil,
	}
}

// ComponentType implements introspection.Component.
func (c *Client) ComponentType() string {
	return "rxresume-client"
}

var _ introspection.Introspectable = (*Client)(nil)
var _ introspection.Component = (*Client)(nil)
