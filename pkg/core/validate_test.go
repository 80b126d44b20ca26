package core

import (
	"errors"
	"testing"
)

func TestValidateDataAcceptsScaffold(t *testing.T) {
	if err := ValidateData(NewDocumentData()); err != nil {
		t.Fatalf("ValidateData() error = %v", err)
	}
}

func TestValidateDataAcceptsReconciledDocument(t *testing.T) {
	data, err := Reconcile(NewDocumentData(), KeySkills, OpAdd, SectionPayload{
		HasItems: true,
		Items:    []Item{{"name": "Go"}},
	})
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if err := ValidateData(data); err != nil {
		t.Fatalf("ValidateData() error = %v", err)
	}
}

func TestValidateDataRejectsBadItemTypes(t *testing.T) {
	tests := []struct {
		name string
		item Item
	}{
		{"Non-String ID", Item{"id": 42, "name": "Go"}},
		{"Non-Boolean Visible", Item{"name": "Go", "visible": "yes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := Data{
				Basics: Basics{},
				Sections: Sections{
					KeySkills: &ItemListSection{Name: "Skills", ID: KeySkills, Items: []Item{tt.item}},
				},
			}
			err := ValidateData(data)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
		})
	}
}
