package core

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// NormalizeSections returns a copy of the section map in which every
// recognized key is present and well-shaped: missing sections are synthesized
// empty (null content for the summary, an empty items array otherwise), a
// summary polluted with an items field is coerced back to content-only shape
// preserving its content, and item-list sections always carry a non-nil items
// slice. Unrecognized keys pass through untouched. Normalizing twice yields
// the same result as normalizing once.
func NormalizeSections(in Sections) Sections {
	out := make(Sections, len(sectionKeys)+len(in))
	for key, sec := range in {
		out[key] = sec.clone()
	}

	for _, key := range sectionKeys {
		sec, ok := out[key]
		if !ok {
			if key == KeySummary {
				out[key] = &ContentSection{Name: titleCase(key), ID: key}
			} else {
				out[key] = &ItemListSection{Name: titleCase(key), ID: key, Items: []Item{}}
			}
			continue
		}

		switch s := sec.(type) {
		case *ItemListSection:
			if key == KeySummary {
				out[key] = coerceSummary(s)
			} else if s.Items == nil {
				s.Items = []Item{}
			}
		case *ContentSection:
			if key != KeySummary {
				out[key] = coerceItemList(s)
			}
		}
	}
	return out
}

// coerceSummary rebuilds a summary that drifted into item-list shape. Only
// the content survives; the stray items are dropped.
func coerceSummary(s *ItemListSection) *ContentSection {
	content := ""
	if raw, ok := s.extra["content"]; ok {
		var c *string
		if err := json.Unmarshal(raw, &c); err == nil && c != nil {
			content = *c
		}
	}
	return &ContentSection{Name: summaryName, ID: KeySummary, Content: &content}
}

// coerceItemList gives an item section that arrived content-only the items
// array it must have. The stray content is kept as an untyped field.
func coerceItemList(s *ContentSection) *ItemListSection {
	extra := maps.Clone(s.extra)
	if extra == nil {
		extra = make(map[string]json.RawMessage)
	}
	if raw, err := json.Marshal(s.Content); err == nil {
		extra["content"] = raw
	}
	return &ItemListSection{Name: s.Name, ID: s.ID, Items: []Item{}, extra: extra}
}

// Reconcile computes the data payload that results from applying one
// section-level operation to a document's current data. The input is left
// unmodified and no I/O happens here; submitting the result is the caller's
// concern.
//
// Validation failures return a ValidationError; an operation referencing ids
// that do not exist returns a NotFoundError and leaves no partial result.
func Reconcile(data Data, section string, op Operation, payload SectionPayload) (Data, error) {
	if err := ValidateSectionKey(section); err != nil {
		return Data{}, err
	}
	if err := op.Validate(); err != nil {
		return Data{}, err
	}

	out := Data{
		Basics:   maps.Clone(data.Basics),
		Sections: NormalizeSections(data.Sections),
	}
	if data.extra != nil {
		out.extra = maps.Clone(data.extra)
	}

	if section == KeySummary {
		if op != OpUpdate || !payload.HasContent {
			return Data{}, &ValidationError{Msg: "Summary section only supports 'update' operation with 'content' field"}
		}
		sec := out.Sections[KeySummary].(*ContentSection)
		sec.Name = summaryName
		sec.ID = KeySummary
		sec.Content = clonePtr(payload.Content)
		return out, nil
	}

	sec := out.Sections[section].(*ItemListSection)
	if sec.Items == nil {
		sec.Items = []Item{}
	}

	var err error
	switch op {
	case OpUpdate:
		err = updateItems(section, sec, payload.Items)
	case OpAdd:
		addItems(section, sec, payload.Items)
	case OpRemove:
		err = removeItems(sec, payload.Items)
	}
	if err != nil {
		return Data{}, err
	}

	sec.Name = titleCase(section)
	sec.ID = section
	return out, nil
}

// updateItems merges each payload item over the current item with the same
// id. The payload wins field by field; defaults are re-applied afterwards.
// Any unmatched id fails the whole operation.
func updateItems(key string, sec *ItemListSection, payload []Item) error {
	for _, patch := range payload {
		id := patch.ID()
		if id == "" {
			return &ValidationError{Msg: "Item ID is required for update operation"}
		}
		idx := slices.IndexFunc(sec.Items, func(it Item) bool { return it.ID() == id })
		if idx < 0 {
			return &NotFoundError{Msg: fmt.Sprintf("Item with ID %s not found", id)}
		}
		merged := sec.Items[idx].clone()
		maps.Copy(merged, patch)
		applyMergeDefaults(key, merged)
		sec.Items[idx] = merged
	}
	return nil
}

// addItems appends the payload items after the existing ones, in payload
// order. A caller-supplied id never survives: the service assigns identity
// when the document is persisted.
func addItems(key string, sec *ItemListSection, payload []Item) {
	for _, src := range payload {
		it := src.clone()
		if it == nil {
			it = Item{}
		}
		delete(it, "id")
		applyAddDefaults(key, it)
		sec.Items = append(sec.Items, it)
	}
}

// removeItems drops the items whose ids appear in the payload, keeping the
// rest in order. A removal that matches nothing is an error, not a silent
// success.
func removeItems(sec *ItemListSection, payload []Item) error {
	ids := make(map[string]bool, len(payload))
	for _, it := range payload {
		id := it.ID()
		if id == "" {
			return &ValidationError{Msg: "Item ID is required for remove operation"}
		}
		ids[id] = true
	}

	kept := make([]Item, 0, len(sec.Items))
	for _, it := range sec.Items {
		if !ids[it.ID()] {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(sec.Items) {
		return &NotFoundError{Msg: "No matching items found with provided IDs for removal"}
	}
	sec.Items = kept
	return nil
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
