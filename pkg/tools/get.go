package tools

import (
	"context"

	"github.com/aretw0/vitae/pkg/core"
)

type getParams struct {
	ResumeID string     `json:"resume_id"`
	Auth     authParams `json:"auth"`

	// Top-level credentials, kept for callers predating the auth object.
	Email    string `json:"email"`
	Password string `json:"password"`
	BaseURL  string `json:"base_url"`
}

func (p getParams) legacy() authParams {
	return authParams{Email: p.Email, Password: p.Password, BaseURL: p.BaseURL}
}

type getResult struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Slug       string          `json:"slug"`
	Visibility core.Visibility `json:"visibility"`
	Data       core.Data       `json:"data"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

// GetResume fetches one resume by id and returns its full state.
func (t *Toolset) GetResume(ctx context.Context, paramsJSON string) string {
	var params getParams
	if err := parseParams(paramsJSON, &params); err != nil {
		return renderError(err)
	}
	if params.ResumeID == "" {
		return renderError(&core.ValidationError{Msg: "Resume ID is required"})
	}

	creds, err := t.cfg.credentials(params.Auth, params.legacy())
	if err != nil {
		return renderError(err)
	}
	client, err := t.session(ctx, creds)
	if err != nil {
		return renderError(err)
	}

	doc, err := client.Get(ctx, params.ResumeID)
	if err != nil {
		return renderError(err)
	}

	return renderResult(getResult{
		ID:         doc.ID,
		Title:      doc.Title,
		Slug:       doc.Slug,
		Visibility: doc.Visibility,
		Data:       doc.Data,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	})
}
