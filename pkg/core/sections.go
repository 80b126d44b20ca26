package core

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Section keys with behavior of their own. The summary is the only content
// section; skills, education and experience carry field defaults.
const (
	KeySummary    = "summary"
	KeySkills     = "skills"
	KeyEducation  = "education"
	KeyExperience = "experience"
)

// summaryName is the canonical display name the summary receives whenever it
// is rewritten.
const summaryName = "Professional Summary"

// sectionKeys is the full set of recognized sections, in the order the
// service lays them out.
var sectionKeys = []string{
	"summary", "awards", "certifications", "education",
	"experience", "volunteer", "interests", "languages",
	"profiles", "projects", "publications", "references",
	"skills", "custom",
}

// SectionKeys returns the recognized section keys.
func SectionKeys() []string {
	return slices.Clone(sectionKeys)
}

// IsSectionKey reports whether key names a recognized section.
func IsSectionKey(key string) bool {
	return slices.Contains(sectionKeys, key)
}

// ValidateSectionKey returns a ValidationError for unrecognized section keys.
func ValidateSectionKey(key string) error {
	if IsSectionKey(key) {
		return nil
	}
	return &ValidationError{Msg: fmt.Sprintf("Invalid section name. Must be one of: %s", strings.Join(sectionKeys, ", "))}
}

// Operation is a section-level mutation verb.
type Operation string

const (
	OpUpdate Operation = "update"
	OpAdd    Operation = "add"
	OpRemove Operation = "remove"
)

// Validate returns a ValidationError for unknown operations.
func (op Operation) Validate() error {
	switch op {
	case OpUpdate, OpAdd, OpRemove:
		return nil
	}
	return &ValidationError{Msg: fmt.Sprintf("Invalid operation. Must be one of: %s, %s, %s", OpUpdate, OpAdd, OpRemove)}
}

// titleCase upper-cases the first rune of a section key, the way the service
// names default sections.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// SectionPayload is caller-supplied data for a single section: content for
// the summary, items for everything else. Key presence is tracked so an
// empty payload can be told apart from an explicit null.
type SectionPayload struct {
	Content    *string
	HasContent bool
	Items      []Item
	HasItems   bool
}

// UnmarshalJSON reads the content and items fields and ignores the rest.
func (p *SectionPayload) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	*p = SectionPayload{}
	if raw, ok := fields["content"]; ok {
		p.HasContent = true
		if err := json.Unmarshal(raw, &p.Content); err != nil {
			return &ValidationError{Msg: "Section content must be a string"}
		}
	}
	if raw, ok := fields["items"]; ok {
		p.HasItems = true
		if err := json.Unmarshal(raw, &p.Items); err != nil {
			return &ValidationError{Msg: "Section items must be an array"}
		}
	}
	return nil
}

// defaultURL is the empty link object education and experience items carry.
func defaultURL() map[string]any {
	return map[string]any{"label": "", "href": ""}
}

// applyMergeDefaults re-applies the fields an item must still carry after a
// payload was merged over it: visibility everywhere, plus the per-section
// fields the service never leaves absent.
func applyMergeDefaults(key string, it Item) {
	fill(it, "visible", true)
	switch key {
	case KeySkills:
		fill(it, "description", "")
	case KeyEducation, KeyExperience:
		fill(it, "url", defaultURL())
	}
}

// applyAddDefaults fills the full per-section field set for a freshly added
// item.
func applyAddDefaults(key string, it Item) {
	fill(it, "visible", true)
	switch key {
	case KeySkills:
		fill(it, "name", "")
		fill(it, "description", "")
		fill(it, "level", 0)
		fill(it, "keywords", []any{})
	case KeyEducation:
		fill(it, "institution", "")
		fill(it, "degree", "")
		fill(it, "area", "")
		fill(it, "score", "")
		fill(it, "date", "")
		fill(it, "summary", "")
		fill(it, "studyType", "Full-time")
		fill(it, "url", defaultURL())
	case KeyExperience:
		fill(it, "company", "")
		fill(it, "position", "")
		fill(it, "summary", "")
		fill(it, "date", "")
		fill(it, "location", "")
		fill(it, "url", defaultURL())
	}
}

func fill(it Item, key string, v any) {
	if _, ok := it[key]; !ok {
		it[key] = v
	}
}
