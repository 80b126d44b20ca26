package core

import (
	"maps"
	"slices"
)

// DocumentPatch is the whole-document update request: scalar fields plus
// basics and section payloads to fold into the current document.
type DocumentPatch struct {
	Title      string
	Slug       string
	Visibility Visibility
	Basics     Basics
	Sections   map[string]SectionPayload
}

// MergeDocument folds patch into doc, in place. This is the deliberately
// loose strategy of whole-document updates, kept separate from Reconcile:
// scalars overwrite when non-empty, basics overwrite key by key, sections are
// touched only when the document already has them, and items merge by id or
// append silently — no id validation, no not-found failures.
func MergeDocument(doc *Document, patch DocumentPatch) {
	if patch.Title != "" {
		doc.Title = patch.Title
	}
	if patch.Slug != "" {
		doc.Slug = patch.Slug
	}
	if patch.Visibility != "" {
		doc.Visibility = patch.Visibility
	}

	ApplyBasics(&doc.Data, patch.Basics)

	for key, payload := range patch.Sections {
		sec, ok := doc.Data.Sections[key]
		if !ok {
			continue
		}
		if key == KeySummary {
			if s, ok := sec.(*ContentSection); ok && payload.HasContent {
				s.Content = clonePtr(payload.Content)
			}
			continue
		}
		if s, ok := sec.(*ItemListSection); ok && payload.HasItems {
			mergeItems(key, s, payload.Items)
		}
	}
}

// mergeItems folds payload items into the section: an item whose id matches
// an existing one overwrites it field by field in place; everything else is
// appended as-is, id included, with loose defaults.
func mergeItems(key string, sec *ItemListSection, payload []Item) {
	for _, src := range payload {
		idx := -1
		if id := src.ID(); id != "" {
			idx = slices.IndexFunc(sec.Items, func(it Item) bool { return it.ID() == id })
		}
		if idx >= 0 {
			merged := sec.Items[idx].clone()
			maps.Copy(merged, src)
			sec.Items[idx] = merged
			continue
		}

		it := src.clone()
		if it == nil {
			it = Item{}
		}
		applyLooseDefaults(key, it)
		sec.Items = append(sec.Items, it)
	}
}

// applyLooseDefaults mirrors the permissive defaulting this path has always
// had: empty and false-ish values count as unset, so an appended item can
// never end up invisible here.
func applyLooseDefaults(key string, it Item) {
	switch key {
	case KeySkills:
		if falsy(it["visible"]) {
			it["visible"] = true
		}
		if falsy(it["description"]) {
			it["description"] = ""
		}
	case KeyEducation, KeyExperience:
		if falsy(it["visible"]) {
			it["visible"] = true
		}
		if falsy(it["url"]) {
			it["url"] = defaultURL()
		}
	}
}

func falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case float64:
		return x == 0
	case int:
		return x == 0
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	}
	return false
}
