package core

import (
	"reflect"
	"testing"
)

func TestNewDocumentDataShape(t *testing.T) {
	data := NewDocumentData()

	for _, key := range []string{KeySummary, KeySkills, KeyEducation, KeyExperience} {
		if _, ok := data.Sections[key]; !ok {
			t.Errorf("scaffold missing section %q", key)
		}
	}
	sum, ok := data.Sections[KeySummary].(*ContentSection)
	if !ok {
		t.Fatalf("summary is %T", data.Sections[KeySummary])
	}
	if sum.Content == nil || *sum.Content != "" {
		t.Errorf("scaffold summary content = %v, want empty string", sum.Content)
	}
	if data.Basics["name"] != "" || data.Basics["headline"] != "" {
		t.Errorf("basics not blank: %v", data.Basics)
	}
	picture, ok := data.Basics["picture"].(map[string]any)
	if !ok || picture["size"] != 64 {
		t.Errorf("picture defaults = %v", data.Basics["picture"])
	}
}

func TestApplyCreateSectionsDropsCallerIDs(t *testing.T) {
	data := NewDocumentData()
	ApplyCreateSections(&data, map[string]SectionPayload{
		KeySkills: {HasItems: true, Items: []Item{
			{"id": "mine", "name": "Go", "level": 4, "visible": false},
		}},
	})

	items := data.Sections[KeySkills].(*ItemListSection).Items
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	want := Item{
		"name":        "Go",
		"level":       4,
		"keywords":    []any{},
		"visible":     true,
		"description": "",
	}
	if !reflect.DeepEqual(items[0], want) {
		t.Errorf("item = %v, want %v", items[0], want)
	}
}

func TestApplyCreateSectionsIgnoresNonScaffoldKeys(t *testing.T) {
	data := NewDocumentData()
	ApplyCreateSections(&data, map[string]SectionPayload{
		"awards": {HasItems: true, Items: []Item{{"title": "Best Gopher"}}},
	})

	if _, ok := data.Sections["awards"]; ok {
		t.Error("non-scaffold section was created")
	}
}

func TestApplyCreateSectionsSummaryContent(t *testing.T) {
	data := NewDocumentData()
	content := "Hello."
	ApplyCreateSections(&data, map[string]SectionPayload{
		KeySummary: {HasContent: true, Content: &content},
	})

	sum := data.Sections[KeySummary].(*ContentSection)
	if sum.Content == nil || *sum.Content != content {
		t.Errorf("content = %v, want %q", sum.Content, content)
	}
}

func TestApplyBasicsOverwritesKeyByKey(t *testing.T) {
	data := NewDocumentData()
	ApplyBasics(&data, Basics{"name": "Ada", "headline": "Engineer"})

	if data.Basics["name"] != "Ada" || data.Basics["headline"] != "Engineer" {
		t.Errorf("basics = %v", data.Basics)
	}
	if data.Basics["email"] != "" {
		t.Errorf("untouched key changed: %v", data.Basics["email"])
	}
}
