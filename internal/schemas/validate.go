// Package schemas provides JSON Schema validation for tool-call arguments.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid arguments:")
	for i, err := range ve.Errors {
		if i > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(fmt.Sprintf(" %s: %s", err.Field, err.Message))
	}
	return sb.String()
}

// ValidateArgs validates raw JSON tool arguments against a JSON-Schema-shaped
// map ({type, properties, required}). Absent arguments are treated as an
// empty object so tools without required parameters accept an omitted
// payload. Returns a *ValidationError listing every violation, or a plain
// error when the arguments are not valid JSON at all.
func ValidateArgs(schema map[string]any, args json.RawMessage) error {
	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}

	var probe any
	if err := json.Unmarshal(args, &probe); err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewBytesLoader(args),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return ve
}
