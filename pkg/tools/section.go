package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/vitae/pkg/core"
	"github.com/aretw0/vitae/pkg/rxresume"
)

type sectionParams struct {
	ResumeID  string          `json:"resume_id"`
	Section   string          `json:"section"`
	Operation string          `json:"operation"`
	Data      json.RawMessage `json:"data"`
	Auth      authParams      `json:"auth"`
}

type sectionResult struct {
	Message   string `json:"message"`
	ResumeID  string `json:"resume_id"`
	Section   string `json:"section"`
	Operation string `json:"operation"`
	Timestamp string `json:"timestamp"`
}

// UpdateResumeSection applies one section-level operation (update, add or
// remove) to a resume: fetch the current state, reconcile the operation into
// it, submit the result. All validation happens before anything is sent.
func (t *Toolset) UpdateResumeSection(ctx context.Context, paramsJSON string) string {
	var params sectionParams
	if err := parseParams(paramsJSON, &params); err != nil {
		return renderError(err)
	}
	switch {
	case params.ResumeID == "":
		return renderError(&core.ValidationError{Msg: "Resume ID is required"})
	case params.Section == "":
		return renderError(&core.ValidationError{Msg: "Section name is required"})
	case params.Operation == "":
		return renderError(&core.ValidationError{Msg: "Operation is required"})
	case missingSectionData(params.Data):
		return renderError(&core.ValidationError{Msg: "Section data is required"})
	}

	op := core.Operation(params.Operation)
	if err := op.Validate(); err != nil {
		return renderError(err)
	}
	if err := core.ValidateSectionKey(params.Section); err != nil {
		return renderError(err)
	}

	var payload core.SectionPayload
	if err := json.Unmarshal(params.Data, &payload); err != nil {
		var validationErr *core.ValidationError
		if !errors.As(err, &validationErr) {
			err = &core.ValidationError{Msg: "Section data must be an object"}
		}
		return renderError(err)
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

	data, err := core.Reconcile(doc.Data, params.Section, op, payload)
	if err != nil {
		return renderError(err)
	}
	if err := core.ValidateData(data); err != nil {
		return renderError(err)
	}

	t.log("updating resume section", "id", params.ResumeID, "section", params.Section, "operation", params.Operation)
	updated, err := client.Update(ctx, params.ResumeID, rxresume.UpdateRequest{
		Title:      doc.Title,
		Slug:       doc.Slug,
		Visibility: doc.Visibility,
		Data:       data,
	})
	if err != nil {
		return renderError(err)
	}

	verb := "updated"
	if op == core.OpRemove {
		verb = "removed"
	}
	return renderResult(sectionResult{
		Message:   fmt.Sprintf("Resume section '%s' %s successfully", params.Section, verb),
		ResumeID:  updated.ID,
		Section:   params.Section,
		Operation: params.Operation,
		Timestamp: updated.UpdatedAt,
	})
}

// missingSectionData reports whether the data field is absent, null or an
// empty object. All three count as no data at all; non-object data passes so
// the payload decode can reject it with its own message.
func missingSectionData(raw json.RawMessage) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return true
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false
	}
	return len(fields) == 0
}
