package core

import (
	"encoding/json"
	"maps"
)

// DefaultBasics returns the basics block a new resume starts with.
func DefaultBasics() Basics {
	return Basics{
		"name":         "",
		"headline":     "",
		"email":        "",
		"phone":        "",
		"location":     "",
		"url":          defaultURL(),
		"customFields": []any{},
		"picture": map[string]any{
			"url":          "",
			"size":         64,
			"aspectRatio":  1,
			"borderRadius": 0,
			"effects": map[string]any{
				"hidden":    false,
				"border":    false,
				"grayscale": false,
			},
		},
	}
}

// NewDocumentData returns the data payload a new resume is created with:
// default basics plus the four starter sections. Section ids are left for
// the service to assign.
func NewDocumentData() Data {
	empty := ""
	return Data{
		Basics: DefaultBasics(),
		Sections: Sections{
			KeySummary:    &ContentSection{Name: "Summary", Content: &empty, extra: scaffoldExtra()},
			KeySkills:     &ItemListSection{Name: "Skills", Items: []Item{}, extra: scaffoldExtra()},
			KeyEducation:  &ItemListSection{Name: "Education", Items: []Item{}, extra: scaffoldExtra()},
			KeyExperience: &ItemListSection{Name: "Experience", Items: []Item{}, extra: scaffoldExtra()},
		},
	}
}

func scaffoldExtra() map[string]json.RawMessage {
	return map[string]json.RawMessage{
		"columns": json.RawMessage("1"),
		"visible": json.RawMessage("true"),
	}
}

// ApplyBasics overwrites basics fields key by key.
func ApplyBasics(data *Data, basics Basics) {
	if len(basics) == 0 {
		return
	}
	if data.Basics == nil {
		data.Basics = Basics{}
	}
	maps.Copy(data.Basics, basics)
}

// ApplyCreateSections folds caller sections into a scaffold produced by
// NewDocumentData. Only scaffold keys are honored: the summary takes content,
// item sections take a rebuilt item list.
func ApplyCreateSections(data *Data, sections map[string]SectionPayload) {
	for key, payload := range sections {
		sec, ok := data.Sections[key]
		if !ok {
			continue
		}
		switch s := sec.(type) {
		case *ContentSection:
			if key == KeySummary && payload.HasContent {
				s.Content = clonePtr(payload.Content)
			}
		case *ItemListSection:
			if payload.HasItems {
				s.Items = buildCreateItems(key, payload.Items)
			}
		}
	}
}

// buildCreateItems rebuilds caller items down to the exact field set a new
// resume may carry, visible included. Caller ids are dropped; identity comes
// from the service once the document is persisted.
func buildCreateItems(key string, items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, src := range items {
		if src == nil {
			src = Item{}
		}
		var it Item
		switch key {
		case KeySkills:
			it = Item{
				"name":        pick(src, "name", ""),
				"level":       pick(src, "level", 0),
				"keywords":    pick(src, "keywords", []any{}),
				"visible":     true,
				"description": pick(src, "description", ""),
			}
		case KeyEducation:
			it = Item{
				"institution": pick(src, "institution", ""),
				"degree":      pick(src, "degree", ""),
				"area":        pick(src, "area", ""),
				"score":       pick(src, "score", ""),
				"date":        pick(src, "date", ""),
				"studyType":   pick(src, "studyType", "Full-time"),
				"visible":     true,
				"summary":     pick(src, "summary", ""),
				"url":         pick(src, "url", defaultURL()),
			}
		case KeyExperience:
			it = Item{
				"company":  pick(src, "company", ""),
				"position": pick(src, "position", ""),
				"location": pick(src, "location", ""),
				"date":     pick(src, "date", ""),
				"visible":  true,
				"summary":  pick(src, "summary", ""),
				"url":      pick(src, "url", defaultURL()),
			}
		default:
			it = src.clone()
		}
		out = append(out, it)
	}
	return out
}

func pick(it Item, key string, def any) any {
	if v, ok := it[key]; ok {
		return v
	}
	return def
}
