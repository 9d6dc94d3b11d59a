package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// GeminiClient implements Client for Google Gemini function calling
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Generate sends one tool-calling request to Gemini
func (c *GeminiClient) Generate(ctx context.Context, req Request) (*Response, error) {
	tier := req.Tier
	if tier == "" {
		tier = TierAdvanced
	}
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return nil, fmt.Errorf("no model configured for tier %s", tier)
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.1) // Low temperature for consistent output
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}
	if len(req.Tools) > 0 {
		decls, err := toFunctionDeclarations(req.Tools)
		if err != nil {
			return nil, err
		}
		model.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	contents, err := toGeminiContents(req.Messages)
	if err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return nil, fmt.Errorf("transcript is empty")
	}

	// Gemini takes history and the latest message separately.
	session := model.StartChat()
	session.History = contents[:len(contents)-1]

	resp, err := session.SendMessage(ctx, contents[len(contents)-1].Parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return fromGeminiResponse(resp)
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// toFunctionDeclarations converts the tool catalog to Gemini function declarations
func toFunctionDeclarations(tools []ToolSpec) ([]*genai.FunctionDeclaration, error) {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, tool := range tools {
		schema, err := toGeminiSchema(tool.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", tool.Name, err)
		}
		// The API rejects OBJECT parameter schemas with no properties;
		// zero-argument tools must omit Parameters entirely.
		if schema != nil && schema.Type == genai.TypeObject && len(schema.Properties) == 0 {
			schema = nil
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  schema,
		})
	}
	return decls, nil
}

// toGeminiSchema converts a {type, properties, required} map to a genai.Schema
func toGeminiSchema(m map[string]any) (*genai.Schema, error) {
	if m == nil {
		return nil, nil
	}
	schema := &genai.Schema{}

	if desc, ok := m["description"].(string); ok {
		schema.Description = desc
	}

	switch typ, _ := m["type"].(string); typ {
	case "object", "":
		schema.Type = genai.TypeObject
	case "string":
		schema.Type = genai.TypeString
	case "integer":
		schema.Type = genai.TypeInteger
	case "number":
		schema.Type = genai.TypeNumber
	case "boolean":
		schema.Type = genai.TypeBoolean
	default:
		return nil, fmt.Errorf("unsupported schema type %q", typ)
	}

	if enum, ok := m["enum"].([]any); ok {
		for _, v := range enum {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("non-string enum value %v", v)
			}
			schema.Enum = append(schema.Enum, s)
		}
	} else if enum, ok := m["enum"].([]string); ok {
		schema.Enum = append(schema.Enum, enum...)
	}

	if props, ok := m["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			prop, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("property %q is not an object", name)
			}
			converted, err := toGeminiSchema(prop)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			schema.Properties[name] = converted
		}
	}

	if required, ok := m["required"].([]any); ok {
		for _, v := range required {
			if s, ok := v.(string); ok {
				schema.Required = append(schema.Required, s)
			}
		}
	} else if required, ok := m["required"].([]string); ok {
		schema.Required = append(schema.Required, required...)
	}

	return schema, nil
}

// toGeminiContents converts the provider-neutral transcript to Gemini contents
func toGeminiContents(messages []Message) ([]*genai.Content, error) {
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		role := "user"
		if msg.Role == RoleAssistant {
			role = "model"
		}

		content := &genai.Content{Role: role}
		for _, block := range msg.Blocks {
			switch b := block.(type) {
			case TextBlock:
				content.Parts = append(content.Parts, genai.Text(b.Text))
			case ToolUseBlock:
				var args map[string]any
				if len(b.Args) > 0 {
					if err := json.Unmarshal(b.Args, &args); err != nil {
						return nil, fmt.Errorf("tool call %s: invalid args: %w", b.Name, err)
					}
				}
				content.Parts = append(content.Parts, genai.FunctionCall{Name: b.Name, Args: args})
			case ToolResultBlock:
				content.Parts = append(content.Parts, genai.FunctionResponse{
					Name:     b.ToolName,
					Response: map[string]any{"content": b.Content, "is_error": b.IsError},
				})
			default:
				return nil, fmt.Errorf("unexpected block type %T", block)
			}
		}
		contents = append(contents, content)
	}
	return contents, nil
}

// fromGeminiResponse converts a Gemini response to provider-neutral blocks.
// Gemini does not issue tool call ids, so one is synthesized per call.
func fromGeminiResponse(resp *genai.GenerateContentResponse) (*Response, error) {
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("no content in response")
	}

	out := &Response{StopReason: StopEndTurn}
	for _, part := range candidate.Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			out.Blocks = append(out.Blocks, TextBlock{Text: string(p)})
		case genai.FunctionCall:
			args, err := json.Marshal(p.Args)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal args for %s: %w", p.Name, err)
			}
			out.Blocks = append(out.Blocks, ToolUseBlock{
				ID:   "call_" + uuid.NewString(),
				Name: p.Name,
				Args: args,
			})
			out.StopReason = StopToolUse
		}
	}

	if len(out.Blocks) == 0 {
		return nil, fmt.Errorf("no usable parts in response")
	}
	return out, nil
}
