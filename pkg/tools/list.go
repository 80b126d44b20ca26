package tools

import (
	"context"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/vitae/pkg/core"
)

type listParams struct {
	IncludePublicURLs *bool      `json:"include_public_urls"`
	Filter            string     `json:"filter"`
	Auth              authParams `json:"auth"`

	Email    string `json:"email"`
	Password string `json:"password"`
	BaseURL  string `json:"base_url"`
}

func (p listParams) legacy() authParams {
	return authParams{Email: p.Email, Password: p.Password, BaseURL: p.BaseURL}
}

type listEntry struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Slug       string          `json:"slug"`
	Visibility core.Visibility `json:"visibility"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
	PublicURL  string          `json:"public_url,omitempty"`
}

type listResult struct {
	Count   int         `json:"count"`
	Resumes []listEntry `json:"resumes"`
}

// ListResumes lists the authenticated user's resumes. Public resumes get
// their public URL unless include_public_urls is false; an optional filter
// glob narrows the result by slug or title.
func (t *Toolset) ListResumes(ctx context.Context, paramsJSON string) string {
	var params listParams
	if err := parseParams(paramsJSON, &params); err != nil {
		return renderError(err)
	}
	includeURLs := params.IncludePublicURLs == nil || *params.IncludePublicURLs
	if params.Filter != "" && !doublestar.ValidatePattern(params.Filter) {
		return renderError(&core.ValidationError{Msg: fmt.Sprintf("Invalid filter pattern: %s", params.Filter)})
	}

	creds, err := t.cfg.credentials(params.Auth, params.legacy())
	if err != nil {
		return renderError(err)
	}
	client, err := t.session(ctx, creds)
	if err != nil {
		return renderError(err)
	}

	// The username only matters for public URLs, so the profile call is
	// skipped when they are not wanted.
	var username string
	if includeURLs {
		user, err := client.Me(ctx)
		if err != nil {
			return renderError(err)
		}
		username = user.Username
	}

	docs, err := client.List(ctx)
	if err != nil {
		return renderError(err)
	}

	result := listResult{Resumes: []listEntry{}}
	for _, doc := range docs {
		if params.Filter != "" && !matchesFilter(params.Filter, doc) {
			continue
		}
		entry := listEntry{
			ID:         doc.ID,
			Title:      doc.Title,
			Slug:       doc.Slug,
			Visibility: doc.Visibility,
			CreatedAt:  doc.CreatedAt,
			UpdatedAt:  doc.UpdatedAt,
		}
		if includeURLs && doc.Visibility == core.VisibilityPublic && username != "" {
			entry.PublicURL = fmt.Sprintf("%s/%s/resume-%s", publicBase(creds.BaseURL), username, shortID(doc.ID))
		}
		result.Resumes = append(result.Resumes, entry)
	}
	result.Count = len(result.Resumes)

	return renderResult(result)
}

// matchesFilter reports whether the glob pattern matches the document's slug
// or title. The pattern was validated up front, so match errors cannot occur.
func matchesFilter(pattern string, doc core.Document) bool {
	if ok, _ := doublestar.Match(pattern, doc.Slug); ok {
		return true
	}
	ok, _ := doublestar.Match(pattern, doc.Title)
	return ok
}

// shortID is the first 8 characters of a resume id, the form the service
// uses in public resume URLs.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
