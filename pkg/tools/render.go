package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/vitae/pkg/core"
)

// renderError is the single place where the error taxonomy becomes caller
// text. Known kinds carry their message verbatim; anything else falls back
// to the generic form.
func renderError(err error) string {
	var (
		parseErr      *core.ParseError
		validationErr *core.ValidationError
		notFoundErr   *core.NotFoundError
		authErr       *core.AuthError
		upstreamErr   *core.UpstreamError
		networkErr    *core.NetworkError
	)
	switch {
	case errors.As(err, &parseErr),
		errors.As(err, &validationErr),
		errors.As(err, &notFoundErr),
		errors.As(err, &authErr),
		errors.As(err, &upstreamErr),
		errors.As(err, &networkErr):
		return "Error: " + err.Error()
	}
	return fmt.Sprintf("Error: Unexpected error - %v", err)
}

// renderResult serializes a success payload with two-space indentation.
func renderResult(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return renderError(err)
	}
	return string(b)
}

// parseParams decodes the request string. An empty request means an empty
// parameter object; anything unparseable is a ParseError, except validation
// failures raised by the payload types themselves.
func parseParams(paramsJSON string, v any) error {
	if paramsJSON == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(paramsJSON), v); err != nil {
		var validationErr *core.ValidationError
		if errors.As(err, &validationErr) {
			return err
		}
		return &core.ParseError{Msg: "Invalid JSON parameters"}
	}
	return nil
}
