// Package core holds the resume document model and the merge semantics
// applied to it: the section reconciler used by section-level updates and
// the looser merge used by whole-document updates.
package core

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Visibility of a resume document.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Basics represents the profile fields of a resume (name, headline, contact
// details, picture settings). The remote service owns the exact field set, so
// it stays a flexible mapping.
type Basics map[string]any

// Item is one entry of an item-list section. Fields beyond the stable id are
// section-specific and flow through untouched.
type Item map[string]any

// ID returns the item's id, or "" when the item has none.
// Absence of an id means "new item to be appended".
func (it Item) ID() string {
	s, _ := it["id"].(string)
	return s
}

func (it Item) clone() Item {
	if it == nil {
		return nil
	}
	return Item(maps.Clone(it))
}

// Document is the central entity of the domain. It mirrors the wire shape of
// the resume service: identity fields plus the mutable data payload.
type Document struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Visibility Visibility `json:"visibility"`
	Data       Data       `json:"data"`
	CreatedAt  string     `json:"createdAt,omitempty"`
	UpdatedAt  string     `json:"updatedAt,omitempty"`
}

// Data is the mutable payload of a Document: basics plus the section map.
// Any other fields the service stores alongside them (metadata, layout, ...)
// are captured on decode and emitted again on encode, so a fetched document
// can be submitted back without shedding them.
type Data struct {
	Basics   Basics
	Sections Sections

	extra map[string]json.RawMessage
}

// UnmarshalJSON decodes basics and sections and keeps every other field.
func (d *Data) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	*d = Data{}
	for key, raw := range fields {
		switch key {
		case "basics":
			if err := json.Unmarshal(raw, &d.Basics); err != nil {
				return fmt.Errorf("basics: %w", err)
			}
		case "sections":
			if err := json.Unmarshal(raw, &d.Sections); err != nil {
				return err
			}
		default:
			if d.extra == nil {
				d.extra = make(map[string]json.RawMessage)
			}
			d.extra[key] = raw
		}
	}
	return nil
}

// MarshalJSON emits basics, sections and the preserved extra fields. Basics
// and sections are always present, as the service expects.
func (d Data) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(d.extra)+2)
	maps.Copy(out, d.extra)

	basics := d.Basics
	if basics == nil {
		basics = Basics{}
	}
	rawBasics, err := json.Marshal(basics)
	if err != nil {
		return nil, err
	}
	out["basics"] = rawBasics

	sections := d.Sections
	if sections == nil {
		sections = Sections{}
	}
	rawSections, err := json.Marshal(sections)
	if err != nil {
		return nil, err
	}
	out["sections"] = rawSections

	return json.Marshal(out)
}

func (d Data) clone() Data {
	out := Data{
		Basics:   maps.Clone(d.Basics),
		Sections: d.Sections.clone(),
	}
	if d.extra != nil {
		out.extra = maps.Clone(d.extra)
	}
	return out
}

// Sections maps section keys to their typed variants.
type Sections map[string]Section

// UnmarshalJSON decodes each entry into its Section variant.
func (s *Sections) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("sections: %w", err)
	}
	if fields == nil {
		*s = nil
		return nil
	}
	out := make(Sections, len(fields))
	for key, raw := range fields {
		sec, err := decodeSection(key, raw)
		if err != nil {
			return err
		}
		out[key] = sec
	}
	*s = out
	return nil
}

func (s Sections) clone() Sections {
	if s == nil {
		return nil
	}
	out := make(Sections, len(s))
	for key, sec := range s {
		out[key] = sec.clone()
	}
	return out
}

// Section is one named subdivision of a resume: either free-text content
// (summary) or an ordered list of items.
type Section interface {
	json.Marshaler

	// clone seals the union and gives the reconciler copy-on-write semantics.
	clone() Section
}

// ContentSection is the content variant of Section. Only the summary section
// uses it; Content is null until the summary is first written.
type ContentSection struct {
	Name    string
	ID      string
	Content *string

	extra map[string]json.RawMessage
}

// MarshalJSON always emits the content field, null included: a summary never
// carries an items array. An empty id is omitted so the service can assign
// one on creation.
func (s *ContentSection) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.extra)+3)
	maps.Copy(out, s.extra)
	if err := setField(out, "name", s.Name); err != nil {
		return nil, err
	}
	if s.ID != "" {
		if err := setField(out, "id", s.ID); err != nil {
			return nil, err
		}
	}
	if err := setField(out, "content", s.Content); err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

func (s *ContentSection) clone() Section {
	out := *s
	if s.Content != nil {
		c := *s.Content
		out.Content = &c
	}
	if s.extra != nil {
		out.extra = maps.Clone(s.extra)
	}
	return &out
}

// ItemListSection is the item-list variant of Section.
type ItemListSection struct {
	Name  string
	ID    string
	Items []Item

	extra map[string]json.RawMessage
}

// MarshalJSON always emits an items array, empty included. An empty id is
// omitted so the service can assign one on creation.
func (s *ItemListSection) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.extra)+3)
	maps.Copy(out, s.extra)
	if err := setField(out, "name", s.Name); err != nil {
		return nil, err
	}
	if s.ID != "" {
		if err := setField(out, "id", s.ID); err != nil {
			return nil, err
		}
	}
	items := s.Items
	if items == nil {
		items = []Item{}
	}
	if err := setField(out, "items", items); err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

func (s *ItemListSection) clone() Section {
	out := *s
	out.Items = slices.Clone(s.Items)
	if s.extra != nil {
		out.extra = maps.Clone(s.extra)
	}
	return &out
}

// decodeSection picks the Section variant by shape: an items field wins over
// a content field, so a summary polluted with items from an earlier state is
// seen as an item list until normalization coerces it back. With neither
// field present the section key decides.
func decodeSection(key string, raw json.RawMessage) (Section, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("section %q: %w", key, err)
	}

	name, err := stringField(fields, "name", key)
	if err != nil {
		return nil, err
	}
	id, err := stringField(fields, "id", key)
	if err != nil {
		return nil, err
	}

	rawItems, hasItems := fields["items"]
	rawContent, hasContent := fields["content"]

	if !hasItems && (hasContent || key == KeySummary) {
		sec := &ContentSection{Name: name, ID: id, extra: extraFields(fields, "name", "id", "content")}
		if hasContent {
			if err := json.Unmarshal(rawContent, &sec.Content); err != nil {
				return nil, fmt.Errorf("section %q: content: %w", key, err)
			}
		}
		return sec, nil
	}

	sec := &ItemListSection{Name: name, ID: id, extra: extraFields(fields, "name", "id", "items")}
	if hasItems {
		if err := json.Unmarshal(rawItems, &sec.Items); err != nil {
			return nil, fmt.Errorf("section %q: items: %w", key, err)
		}
	}
	return sec, nil
}

func stringField(fields map[string]json.RawMessage, key, section string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("section %q: %s: %w", section, key, err)
	}
	return s, nil
}

func extraFields(fields map[string]json.RawMessage, consumed ...string) map[string]json.RawMessage {
	var out map[string]json.RawMessage
	for key, raw := range fields {
		if slices.Contains(consumed, key) {
			continue
		}
		if out == nil {
			out = make(map[string]json.RawMessage)
		}
		out[key] = raw
	}
	return out
}

func setField(fields map[string]json.RawMessage, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fields[key] = raw
	return nil
}
