package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// defaultMaxTokens bounds one model turn; the Anthropic API requires it
const defaultMaxTokens = 4096

// AnthropicClient implements Client for Anthropic tool use
type AnthropicClient struct {
	client *anthropic.Client
	config *Config
}

// NewAnthropicClient creates a new Anthropic client
func NewAnthropicClient(config *Config, apiKey string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	return &AnthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		config: config,
	}, nil
}

// Generate sends one tool-calling request to Anthropic
func (c *AnthropicClient) Generate(ctx context.Context, req Request) (*Response, error) {
	tier := req.Tier
	if tier == "" {
		tier = TierAdvanced
	}
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return nil, fmt.Errorf("no model configured for tier %s", tier)
	}

	messages, err := toAnthropicMessages(req.Messages)
	if err != nil {
		return nil, err
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.F(anthropic.Model(modelName)),
		MaxTokens: anthropic.Int(defaultMaxTokens),
		Messages:  anthropic.F(messages),
	}
	if req.System != "" {
		params.System = anthropic.F([]anthropic.TextBlockParam{anthropic.NewTextBlock(req.System)})
	}
	if len(req.Tools) > 0 {
		tools := make([]anthropic.ToolUnionUnionParam, 0, len(req.Tools))
		for _, tool := range req.Tools {
			tools = append(tools, anthropic.ToolParam{
				Name:        anthropic.F(tool.Name),
				Description: anthropic.F(tool.Description),
				InputSchema: anthropic.F[interface{}](tool.InputSchema),
			})
		}
		params.Tools = anthropic.F(tools)
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return fromAnthropicResponse(resp)
}

// GetModel returns the model name for a tier
func (c *AnthropicClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *AnthropicClient) Close() error {
	return nil
}

// toAnthropicMessages converts the provider-neutral transcript to Anthropic message params
func toAnthropicMessages(messages []Message) ([]anthropic.MessageParam, error) {
	out := make([]anthropic.MessageParam, 0, len(messages))
	for _, msg := range messages {
		role := anthropic.MessageParamRoleUser
		if msg.Role == RoleAssistant {
			role = anthropic.MessageParamRoleAssistant
		}

		blocks := make([]anthropic.ContentBlockParamUnion, 0, len(msg.Blocks))
		for _, block := range msg.Blocks {
			switch b := block.(type) {
			case TextBlock:
				blocks = append(blocks, anthropic.NewTextBlock(b.Text))
			case ToolUseBlock:
				var input map[string]any
				if len(b.Args) > 0 {
					if err := json.Unmarshal(b.Args, &input); err != nil {
						return nil, fmt.Errorf("tool call %s: invalid args: %w", b.Name, err)
					}
				}
				blocks = append(blocks, anthropic.ToolUseBlockParam{
					Type:  anthropic.F(anthropic.ToolUseBlockParamTypeToolUse),
					ID:    anthropic.F(b.ID),
					Name:  anthropic.F(b.Name),
					Input: anthropic.F[interface{}](input),
				})
			case ToolResultBlock:
				blocks = append(blocks, anthropic.NewToolResultBlock(b.CallID, b.Content, b.IsError))
			default:
				return nil, fmt.Errorf("unexpected block type %T", block)
			}
		}

		out = append(out, anthropic.MessageParam{
			Role:    anthropic.F(role),
			Content: anthropic.F(blocks),
		})
	}
	return out, nil
}

// fromAnthropicResponse converts an Anthropic response to provider-neutral blocks
func fromAnthropicResponse(resp *anthropic.Message) (*Response, error) {
	out := &Response{}

	switch resp.StopReason {
	case anthropic.MessageStopReasonToolUse:
		out.StopReason = StopToolUse
	case anthropic.MessageStopReasonEndTurn:
		out.StopReason = StopEndTurn
	default:
		out.StopReason = StopOther
	}

	for _, block := range resp.Content {
		switch b := block.AsUnion().(type) {
		case anthropic.TextBlock:
			out.Blocks = append(out.Blocks, TextBlock{Text: b.Text})
		case anthropic.ToolUseBlock:
			out.Blocks = append(out.Blocks, ToolUseBlock{
				ID:   b.ID,
				Name: b.Name,
				Args: json.RawMessage(b.Input),
			})
		}
	}

	if len(out.Blocks) == 0 {
		return nil, fmt.Errorf("no content in response")
	}
	return out, nil
}
