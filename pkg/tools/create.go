package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/vitae/pkg/core"
	"github.com/aretw0/vitae/pkg/rxresume"
)

type createParams struct {
	Title      string                         `json:"title"`
	Slug       string                         `json:"slug"`
	Visibility core.Visibility                `json:"visibility"`
	Basics     core.Basics                    `json:"basics"`
	Sections   map[string]core.SectionPayload `json:"sections"`
	Auth       authParams                     `json:"auth"`
}

type createResult struct {
	Message   string `json:"message"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	PublicURL string `json:"public_url"`
}

// CreateResume creates a new resume from a scaffold document folded together
// with the caller's basics and sections. The request is a JSON object with a
// required title; slug, visibility, basics, sections and auth are optional.
func (t *Toolset) CreateResume(ctx context.Context, paramsJSON string) string {
	var params createParams
	if err := parseParams(paramsJSON, &params); err != nil {
		return renderError(err)
	}
	if params.Title == "" {
		return renderError(&core.ValidationError{Msg: "Resume title is required"})
	}

	creds, err := t.cfg.credentials(params.Auth, authParams{})
	if err != nil {
		return renderError(err)
	}
	client, err := t.session(ctx, creds)
	if err != nil {
		return renderError(err)
	}

	data := core.NewDocumentData()
	core.ApplyBasics(&data, params.Basics)
	core.ApplyCreateSections(&data, params.Sections)
	if err := core.ValidateData(data); err != nil {
		return renderError(err)
	}

	slug := params.Slug
	if slug == "" {
		slug = newSlug()
	}

	t.log("creating resume", "title", params.Title, "slug", slug)
	created, err := client.Create(ctx, rxresume.CreateRequest{
		Title:      params.Title,
		Slug:       slug,
		Visibility: params.Visibility,
		Data:       data,
	})
	if err != nil {
		return renderError(err)
	}

	return renderResult(createResult{
		Message:   fmt.Sprintf("Resume created: %s", created.Title),
		ID:        created.ID,
		Title:     created.Title,
		Slug:      created.Slug,
		PublicURL: fmt.Sprintf("%s/r/%s", publicBase(creds.BaseURL), created.Slug),
	})
}

// newSlug generates a short random slug for resumes created without one.
func newSlug() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "resume-" + hex[:8]
}
