package xbackbone

import (
	"github.com/aretw0/introspection"
)

// ClientState exposes the client's upload target for observability. The
// token is reduced to a set/unset flag.
type ClientState struct {
	BaseURL  string `json:"base_url"`
	TokenSet bool   `json:"token_set"`
}

// State implements introspection.Introspectable.
func (c *Client) State() any {
	return ClientState{
		BaseURL:  c.BaseURL,
		TokenSet: c.Token != "",
	}
}

// ComponentType implements introspection.Component.
func (c *Client) ComponentType() string {
	return "xbackbone-client"
}

var _ introspection.Introspectable = (*Client)(nil)
var _ introspection.Component = (*Client)(nil)
