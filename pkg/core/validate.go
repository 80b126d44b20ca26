package core

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

// ValidateData checks an outgoing data payload against the resume schema
// before it is submitted: basics and sections must be present, every section
// needs a name, and item ids and visibility must be a string and a boolean
// where they appear. Violations are reported as a single ValidationError.
func ValidateData(data Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(resumeSchema), gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return &ValidationError{Msg: fmt.Sprintf("Resume data failed validation: %s", strings.Join(msgs, "; "))}
}
