package llm

import (
	"encoding/json"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGeminiSchema(t *testing.T) {
	schema, err := toGeminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"section": map[string]any{
				"type":        "string",
				"description": "Target section",
				"enum":        []any{"header", "skills"},
			},
			"entry_index": map[string]any{"type": "integer"},
		},
		"required": []any{"section"},
	})
	require.NoError(t, err)

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.Equal(t, []string{"section"}, schema.Required)

	section := schema.Properties["section"]
	require.NotNil(t, section)
	assert.Equal(t, genai.TypeString, section.Type)
	assert.Equal(t, "Target section", section.Description)
	assert.Equal(t, []string{"header", "skills"}, section.Enum)

	index := schema.Properties["entry_index"]
	require.NotNil(t, index)
	assert.Equal(t, genai.TypeInteger, index.Type)
}

func TestToGeminiSchema_StringSlices(t *testing.T) {
	// Schemas built in Go (not decoded from JSON) carry []string values.
	schema, err := toGeminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"section": map[string]any{"type": "string", "enum": []string{"experience"}},
		},
		"required": []string{"section"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"section"}, schema.Required)
	assert.Equal(t, []string{"experience"}, schema.Properties["section"].Enum)
}

func TestToGeminiSchema_UnsupportedType(t *testing.T) {
	_, err := toGeminiSchema(map[string]any{"type": "array"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema type")
}

func TestToFunctionDeclarations_ZeroArgumentTools(t *testing.T) {
	// Reflection-generated schemas always carry a properties map, empty for
	// tools that take no arguments. Gemini rejects empty-properties OBJECT
	// parameters, so those declarations must carry no Parameters at all.
	specs := []ToolSpec{
		{
			Name:        "read_resume",
			Description: "Read the full resume",
			InputSchema: map[string]any{"type": "object", "properties": map[string]any{}},
		},
		{
			Name:        "read_section",
			Description: "Read one section",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"section": map[string]any{"type": "string"},
				},
				"required": []any{"section"},
			},
		},
	}

	decls, err := toFunctionDeclarations(specs)
	require.NoError(t, err)
	require.Len(t, decls, 2)

	assert.Equal(t, "read_resume", decls[0].Name)
	assert.Nil(t, decls[0].Parameters)

	assert.Equal(t, "read_section", decls[1].Name)
	require.NotNil(t, decls[1].Parameters)
	assert.Contains(t, decls[1].Parameters.Properties, "section")
}

func TestToGeminiContents_RolesAndParts(t *testing.T) {
	messages := []Message{
		UserText("shorten my first bullet"),
		{Role: RoleAssistant, Blocks: []Block{
			TextBlock{Text: "Reading first."},
			ToolUseBlock{ID: "call_1", Name: "read_section", Args: json.RawMessage(`{"section":"experience"}`)},
		}},
		{Role: RoleUser, Blocks: []Block{
			ToolResultBlock{CallID: "call_1", ToolName: "read_section", Content: `{"entries":[]}`},
		}},
	}

	contents, err := toGeminiContents(messages)
	require.NoError(t, err)
	require.Len(t, contents, 3)

	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "model", contents[1].Role)
	assert.Equal(t, "user", contents[2].Role)

	call, ok := contents[1].Parts[1].(genai.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "read_section", call.Name)
	assert.Equal(t, map[string]any{"section": "experience"}, call.Args)

	result, ok := contents[2].Parts[0].(genai.FunctionResponse)
	require.True(t, ok)
	assert.Equal(t, "read_section", result.Name)
	assert.Equal(t, `{"entries":[]}`, result.Response["content"])
}

func TestFromGeminiResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role: "model",
				Parts: []genai.Part{
					genai.Text("Updating the bullet now."),
					genai.FunctionCall{Name: "edit_bullet", Args: map[string]any{"section": "experience"}},
				},
			},
		}},
	}

	converted, err := fromGeminiResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, StopToolUse, converted.StopReason)
	require.Len(t, converted.Blocks, 2)

	calls := converted.ToolCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "edit_bullet", calls[0].Name)
	assert.NotEmpty(t, calls[0].ID, "Gemini calls get synthesized ids")
	assert.JSONEq(t, `{"section":"experience"}`, string(calls[0].Args))
}

func TestFromGeminiResponse_Empty(t *testing.T) {
	_, err := fromGeminiResponse(&genai.GenerateContentResponse{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
