package tools

import (
	"context"
	"fmt"

	"github.com/aretw0/vitae/pkg/core"
	"github.com/aretw0/vitae/pkg/rxresume"
)

type updateParams struct {
	ResumeID   string                         `json:"resume_id"`
	Title      string                         `json:"title"`
	Slug       string                         `json:"slug"`
	Visibility core.Visibility                `json:"visibility"`
	Basics     core.Basics                    `json:"basics"`
	Sections   map[string]core.SectionPayload `json:"sections"`
	Auth       authParams                     `json:"auth"`
}

type updateResult struct {
	Message    string          `json:"message"`
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Slug       string          `json:"slug"`
	Visibility core.Visibility `json:"visibility"`
	PublicURL  *string         `json:"public_url"`
}

// UpdateResume updates a whole resume: fetch the current state, fold the
// request over it with the loose document merge, submit the result. This
// path deliberately stays more permissive than UpdateResumeSection — see
// core.MergeDocument.
func (t *Toolset) UpdateResume(ctx context.Context, paramsJSON string) string {
	var params updateParams
	if err := parseParams(paramsJSON, &params); err != nil {
		return renderError(err)
	}
	if params.ResumeID == "" {
		return renderError(&core.ValidationError{Msg: "Resume ID is required"})
	}

	creds, err := t.cfg.credentials(params.Auth, authParams{})
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

	core.MergeDocument(&doc, core.DocumentPatch{
		Title:      params.Title,
		Slug:       params.Slug,
		Visibility: params.Visibility,
		Basics:     params.Basics,
		Sections:   params.Sections,
	})
	if err := core.ValidateData(doc.Data); err != nil {
		return renderError(err)
	}

	t.log("updating resume", "id", params.ResumeID)
	updated, err := client.Update(ctx, params.ResumeID, rxresume.UpdateRequest{
		Title:      doc.Title,
		Slug:       doc.Slug,
		Visibility: doc.Visibility,
		Data:       doc.Data,
	})
	if err != nil {
		return renderError(err)
	}

	var publicURL *string
	if updated.Visibility == core.VisibilityPublic {
		u := fmt.Sprintf("%s/r/%s", publicBase(creds.BaseURL), updated.Slug)
		publicURL = &u
	}

	return renderResult(updateResult{
		Message:    fmt.Sprintf("Resume updated: %s", updated.Title),
		ID:         updated.ID,
		Title:      updated.Title,
		Slug:       updated.Slug,
		Visibility: updated.Visibility,
		PublicURL:  publicURL,
	})
}
