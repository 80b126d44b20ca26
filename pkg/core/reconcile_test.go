package core

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func skillsData(items ...Item) Data {
	return Data{
		Basics: Basics{"name": "Ada"},
		Sections: Sections{
			KeySkills: &ItemListSection{Name: "Skills", ID: KeySkills, Items: items},
		},
	}
}

func sectionItems(t *testing.T, data Data, key string) []Item {
	t.Helper()
	sec, ok := data.Sections[key].(*ItemListSection)
	if !ok {
		t.Fatalf("section %q is %T, want *ItemListSection", key, data.Sections[key])
	}
	return sec.Items
}

func marshalJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestReconcileUpdateSkills(t *testing.T) {
	current := skillsData(Item{"id": "s1", "name": "Python", "level": 3})
	payload := SectionPayload{HasItems: true, Items: []Item{{"id": "s1", "level": 5}}}

	got, err := Reconcile(current, KeySkills, OpUpdate, payload)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	items := sectionItems(t, got, KeySkills)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	want := Item{"id": "s1", "name": "Python", "level": 5, "description": "", "visible": true}
	if !reflect.DeepEqual(items[0], want) {
		t.Errorf("item = %v, want %v", items[0], want)
	}
}

func TestReconcileUpdateIsIdempotent(t *testing.T) {
	current := skillsData(
		Item{"id": "s1", "name": "Go", "level": 2},
		Item{"id": "s2", "name": "SQL", "level": 4},
	)
	payload := SectionPayload{HasItems: true, Items: []Item{{"id": "s1", "level": 5, "keywords": []any{"backend"}}}}

	once, err := Reconcile(current, KeySkills, OpUpdate, payload)
	if err != nil {
		t.Fatalf("first Reconcile() error = %v", err)
	}
	twice, err := Reconcile(once, KeySkills, OpUpdate, payload)
	if err != nil {
		t.Fatalf("second Reconcile() error = %v", err)
	}

	if a, b := marshalJSON(t, once), marshalJSON(t, twice); a != b {
		t.Errorf("update is not idempotent:\nfirst  = %s\nsecond = %s", a, b)
	}
}

func TestReconcileUpdatePreservesOrder(t *testing.T) {
	current := skillsData(
		Item{"id": "s1", "name": "Go"},
		Item{"id": "s2", "name": "SQL"},
		Item{"id": "s3", "name": "Rust"},
	)
	payload := SectionPayload{HasItems: true, Items: []Item{{"id": "s2", "name": "Postgres"}}}

	got, err := Reconcile(current, KeySkills, OpUpdate, payload)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	items := sectionItems(t, got, KeySkills)
	ids := []string{items[0].ID(), items[1].ID(), items[2].ID()}
	if !reflect.DeepEqual(ids, []string{"s1", "s2", "s3"}) {
		t.Errorf("order changed: %v", ids)
	}
	if items[1]["name"] != "Postgres" {
		t.Errorf("matched item not updated: %v", items[1])
	}
	if items[0]["name"] != "Go" || items[2]["name"] != "Rust" {
		t.Errorf("unmatched items mutated: %v", items)
	}
}

func TestReconcileUpdateErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload SectionPayload
		wantVal bool
		wantNF  bool
	}{
		{
			name:    "Missing Item ID",
			payload: SectionPayload{HasItems: true, Items: []Item{{"name": "Go"}}},
			wantVal: true,
		},
		{
			name:    "Unknown Item ID",
			payload: SectionPayload{HasItems: true, Items: []Item{{"id": "nope"}}},
			wantNF:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := skillsData(Item{"id": "s1", "name": "Python"})
			_, err := Reconcile(current, KeySkills, OpUpdate, tt.payload)
			if err == nil {
				t.Fatal("Reconcile() expected error")
			}
			var vErr *ValidationError
			var nfErr *NotFoundError
			if got := errors.As(err, &vErr); got != tt.wantVal {
				t.Errorf("ValidationError = %v, want %v (err: %v)", got, tt.wantVal, err)
			}
			if got := errors.As(err, &nfErr); got != tt.wantNF {
				t.Errorf("NotFoundError = %v, want %v (err: %v)", got, tt.wantNF, err)
			}
		})
	}
}

func TestReconcileUpdateEmptyPayloadIsNoop(t *testing.T) {
	current := skillsData(Item{"id": "s1", "name": "Go", "visible": false})

	got, err := Reconcile(current, KeySkills, OpUpdate, SectionPayload{HasItems: true, Items: []Item{}})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	items := sectionItems(t, got, KeySkills)
	want := Item{"id": "s1", "name": "Go", "visible": false}
	if len(items) != 1 || !reflect.DeepEqual(items[0], want) {
		t.Errorf("items = %v, want unchanged %v", items, want)
	}
}

func TestReconcileAddEducation(t *testing.T) {
	current := Data{Sections: Sections{
		KeyEducation: &ItemListSection{Name: "Education", ID: KeyEducation, Items: []Item{}},
	}}
	payload := SectionPayload{HasItems: true, Items: []Item{{"institution": "MIT"}}}

	got, err := Reconcile(current, KeyEducation, OpAdd, payload)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	items := sectionItems(t, got, KeyEducation)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	want := Item{
		"institution": "MIT",
		"degree":      "",
		"area":        "",
		"score":       "",
		"date":        "",
		"summary":     "",
		"studyType":   "Full-time",
		"url":         map[string]any{"label": "", "href": ""},
		"visible":     true,
	}
	if !reflect.DeepEqual(items[0], want) {
		t.Errorf("item = %v, want %v", items[0], want)
	}
}

func TestReconcileAddStripsCallerID(t *testing.T) {
	current := skillsData()
	payload := SectionPayload{HasItems: true, Items: []Item{{"id": "mine", "name": "Go", "visible": false}}}

	got, err := Reconcile(current, KeySkills, OpAdd, payload)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	items := sectionItems(t, got, KeySkills)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if id := items[0].ID(); id != "" {
		t.Errorf("caller id survived: %q", id)
	}
	if items[0]["visible"] != false {
		t.Errorf("explicit visible=false was overridden: %v", items[0])
	}
	if items[0]["description"] != "" || items[0]["level"] != 0 {
		t.Errorf("skill defaults not applied: %v", items[0])
	}
}

func TestReconcileAddAppendsInOrder(t *testing.T) {
	current := skillsData(Item{"id": "s1", "name": "Go"})
	payload := SectionPayload{HasItems: true, Items: []Item{
		{"name": "First"},
		{"name": "Second"},
	}}

	got, err := Reconcile(current, KeySkills, OpAdd, payload)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	items := sectionItems(t, got, KeySkills)
	names := make([]string, len(items))
	for i, it := range items {
		names[i], _ = it["name"].(string)
	}
	if !reflect.DeepEqual(names, []string{"Go", "First", "Second"}) {
		t.Errorf("order = %v", names)
	}
}

func TestReconcileRemove(t *testing.T) {
	t.Run("Drops Matching Items In Order", func(t *testing.T) {
		current := skillsData(
			Item{"id": "s1", "name": "Go"},
			Item{"id": "s2", "name": "SQL"},
			Item{"id": "s3", "name": "Rust"},
		)
		payload := SectionPayload{HasItems: true, Items: []Item{{"id": "s2"}}}

		got, err := Reconcile(current, KeySkills, OpRemove, payload)
		if err != nil {
			t.Fatalf("Reconcile() error = %v", err)
		}
		items := sectionItems(t, got, KeySkills)
		ids := make([]string, len(items))
		for i, it := range items {
			ids[i] = it.ID()
		}
		if !reflect.DeepEqual(ids, []string{"s1", "s3"}) {
			t.Errorf("ids = %v, want [s1 s3]", ids)
		}
	})

	t.Run("Unknown ID Fails", func(t *testing.T) {
		current := skillsData(Item{"id": "s1", "name": "Go"})
		payload := SectionPayload{HasItems: true, Items: []Item{{"id": "missing"}}}

		_, err := Reconcile(current, KeySkills, OpRemove, payload)
		var nfErr *NotFoundError
		if !errors.As(err, &nfErr) {
			t.Fatalf("error = %v, want NotFoundError", err)
		}
	})

	t.Run("Missing ID Fails", func(t *testing.T) {
		current := skillsData(Item{"id": "s1"})
		payload := SectionPayload{HasItems: true, Items: []Item{{"id": "s1"}, {"name": "no id"}}}

		_, err := Reconcile(current, KeySkills, OpRemove, payload)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("error = %v, want ValidationError", err)
		}
	})

	t.Run("Empty Payload Fails", func(t *testing.T) {
		current := skillsData(Item{"id": "s1"})

		_, err := Reconcile(current, KeySkills, OpRemove, SectionPayload{HasItems: true})
		var nfErr *NotFoundError
		if !errors.As(err, &nfErr) {
			t.Fatalf("error = %v, want NotFoundError", err)
		}
	})
}

func TestReconcileSummary(t *testing.T) {
	content := "Seasoned gopher."

	t.Run("Update Rewrites Canonical Fields", func(t *testing.T) {
		current := Data{Sections: Sections{
			KeySummary: &ContentSection{Name: "Summary", ID: KeySummary, Content: ptr("old")},
		}}
		payload := SectionPayload{HasContent: true, Content: &content}

		got, err := Reconcile(current, KeySummary, OpUpdate, payload)
		if err != nil {
			t.Fatalf("Reconcile() error = %v", err)
		}
		sec, ok := got.Sections[KeySummary].(*ContentSection)
		if !ok {
			t.Fatalf("summary is %T", got.Sections[KeySummary])
		}
		if sec.Name != "Professional Summary" || sec.ID != KeySummary {
			t.Errorf("canonical fields = %q/%q", sec.Name, sec.ID)
		}
		if sec.Content == nil || *sec.Content != content {
			t.Errorf("content = %v, want %q", sec.Content, content)
		}
	})

	t.Run("Update Without Content Fails", func(t *testing.T) {
		_, err := Reconcile(Data{}, KeySummary, OpUpdate, SectionPayload{})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("error = %v, want ValidationError", err)
		}
	})

	t.Run("Add And Remove Are Rejected", func(t *testing.T) {
		for _, op := range []Operation{OpAdd, OpRemove} {
			_, err := Reconcile(Data{}, KeySummary, op, SectionPayload{HasContent: true, Content: &content})
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("op %s: error = %v, want ValidationError", op, err)
			}
		}
	})
}

func TestReconcileValidatesInputs(t *testing.T) {
	payload := SectionPayload{HasItems: true, Items: []Item{}}

	t.Run("Unknown Section", func(t *testing.T) {
		_, err := Reconcile(Data{}, "hobbies", OpAdd, payload)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("error = %v, want ValidationError", err)
		}
	})

	t.Run("Unknown Operation", func(t *testing.T) {
		_, err := Reconcile(Data{}, KeySkills, Operation("replace"), payload)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("error = %v, want ValidationError", err)
		}
	})
}

func TestReconcileDoesNotMutateInput(t *testing.T) {
	current := skillsData(Item{"id": "s1", "name": "Go", "level": 1})
	before := marshalJSON(t, current)

	if _, err := Reconcile(current, KeySkills, OpUpdate, SectionPayload{HasItems: true, Items: []Item{{"id": "s1", "level": 9}}}); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if _, err := Reconcile(current, KeySkills, OpAdd, SectionPayload{HasItems: true, Items: []Item{{"name": "New"}}}); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if _, err := Reconcile(current, KeySkills, OpRemove, SectionPayload{HasItems: true, Items: []Item{{"id": "s1"}}}); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if after := marshalJSON(t, current); after != before {
		t.Errorf("input mutated:\nbefore = %s\nafter  = %s", before, after)
	}
}

func TestReconcileCanonicalizesSection(t *testing.T) {
	current := Data{Sections: Sections{
		KeySkills: &ItemListSection{Name: "my skills!!", ID: "weird", Items: []Item{}},
	}}

	got, err := Reconcile(current, KeySkills, OpAdd, SectionPayload{HasItems: true, Items: []Item{{"name": "Go"}}})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	sec := got.Sections[KeySkills].(*ItemListSection)
	if sec.Name != "Skills" || sec.ID != KeySkills {
		t.Errorf("canonical fields = %q/%q, want Skills/skills", sec.Name, sec.ID)
	}
}

func TestNormalizeSections(t *testing.T) {
	t.Run("Synthesizes Missing Sections", func(t *testing.T) {
		got := NormalizeSections(nil)
		for _, key := range SectionKeys() {
			sec, ok := got[key]
			if !ok {
				t.Fatalf("section %q missing", key)
			}
			if key == KeySummary {
				cs, ok := sec.(*ContentSection)
				if !ok {
					t.Fatalf("summary is %T", sec)
				}
				if cs.Content != nil {
					t.Errorf("synthesized summary content = %v, want nil", cs.Content)
				}
				continue
			}
			ils, ok := sec.(*ItemListSection)
			if !ok {
				t.Fatalf("section %q is %T", key, sec)
			}
			if ils.Items == nil || len(ils.Items) != 0 {
				t.Errorf("section %q items = %v, want empty non-nil", key, ils.Items)
			}
		}
	})

	t.Run("Coerces Summary With Stray Items", func(t *testing.T) {
		in := Sections{
			KeySummary: &ItemListSection{
				Name:  "Summary",
				ID:    KeySummary,
				Items: []Item{{"id": "junk"}},
				extra: map[string]json.RawMessage{"content": json.RawMessage(`"kept"`)},
			},
		}
		got := NormalizeSections(in)
		cs, ok := got[KeySummary].(*ContentSection)
		if !ok {
			t.Fatalf("summary is %T", got[KeySummary])
		}
		if cs.Name != "Professional Summary" || cs.ID != KeySummary {
			t.Errorf("canonical fields = %q/%q", cs.Name, cs.ID)
		}
		if cs.Content == nil || *cs.Content != "kept" {
			t.Errorf("content = %v, want kept", cs.Content)
		}
	})

	t.Run("Keeps Unrecognized Keys", func(t *testing.T) {
		in := Sections{"sideProjects": &ItemListSection{Name: "Side Projects", Items: []Item{{"id": "x"}}}}
		got := NormalizeSections(in)
		if _, ok := got["sideProjects"]; !ok {
			t.Error("unrecognized section dropped")
		}
	})

	t.Run("Is Idempotent", func(t *testing.T) {
		in := Sections{
			KeySummary: &ItemListSection{Name: "Summary", Items: []Item{}},
			KeySkills:  &ItemListSection{Name: "Skills", Items: []Item{{"id": "s1"}}},
		}
		once := NormalizeSections(in)
		twice := NormalizeSections(once)
		if a, b := marshalJSON(t, once), marshalJSON(t, twice); a != b {
			t.Errorf("normalize is not idempotent:\nonce  = %s\ntwice = %s", a, b)
		}
	})
}

func ptr(s string) *string { return &s }
