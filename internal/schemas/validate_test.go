package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editBulletSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"section": map[string]any{
				"type": "string",
				"enum": []string{"experience", "projects", "leadership"},
			},
			"entry_index":  map[string]any{"type": "integer"},
			"bullet_index": map[string]any{"type": "integer"},
			"new_text":     map[string]any{"type": "string"},
		},
		"required":             []string{"section", "entry_index", "bullet_index", "new_text"},
		"additionalProperties": false,
	}
}

func TestValidateArgs_Valid(t *testing.T) {
	args := json.RawMessage(`{"section":"experience","entry_index":0,"bullet_index":1,"new_text":"shorter"}`)
	require.NoError(t, ValidateArgs(editBulletSchema(), args))
}

func TestValidateArgs_MissingRequired(t *testing.T) {
	args := json.RawMessage(`{"section":"experience"}`)
	err := ValidateArgs(editBulletSchema(), args)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.GreaterOrEqual(t, len(ve.Errors), 3)
	assert.Contains(t, ve.Error(), "entry_index")
}

func TestValidateArgs_EnumViolation(t *testing.T) {
	args := json.RawMessage(`{"section":"education","entry_index":0,"bullet_index":0,"new_text":"x"}`)
	err := ValidateArgs(editBulletSchema(), args)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Error(), "section")
}

func TestValidateArgs_WrongType(t *testing.T) {
	args := json.RawMessage(`{"section":"experience","entry_index":"zero","bullet_index":0,"new_text":"x"}`)
	err := ValidateArgs(editBulletSchema(), args)
	require.Error(t, err)
}

func TestValidateArgs_EmptyArgs(t *testing.T) {
	schema := map[string]any{"type": "object", "properties": map[string]any{}}
	require.NoError(t, ValidateArgs(schema, nil))

	// Empty args against a schema with required fields must fail.
	err := ValidateArgs(editBulletSchema(), nil)
	require.Error(t, err)
}

func TestValidateArgs_MalformedJSON(t *testing.T) {
	err := ValidateArgs(editBulletSchema(), json.RawMessage(`{"section":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}
