// Package llm - types.go defines the provider-neutral conversation contract.
// Providers translate these shapes to and from their own wire formats; the
// orchestrator never sees a vendor type.
package llm

import "encoding/json"

// Role identifies the author of a transcript message
type Role string

// Transcript roles
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// StopReason reports why the model ended its turn
type StopReason string

// Stop reasons surfaced to the orchestrator
const (
	StopEndTurn StopReason = "end_turn"
	StopToolUse StopReason = "tool_use"
	StopOther   StopReason = "other"
)

// ToolSpec describes one callable tool as shown to the model. InputSchema is
// a JSON-Schema-shaped map ({type, properties, required}) that every
// supported provider can consume without modification.
type ToolSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// Block is one content block within a message or response. It is a closed
// union: TextBlock, ToolUseBlock or ToolResultBlock.
type Block interface {
	isBlock()
}

// TextBlock carries model or user prose
type TextBlock struct {
	Text string
}

// ToolUseBlock is one tool invocation requested by the model. ID is the
// opaque call id used to correlate the eventual result; providers without
// native call ids get synthesized ones.
type ToolUseBlock struct {
	ID   string
	Name string
	Args json.RawMessage
}

// ToolResultBlock carries one executed tool's result back to the model.
// Content is the JSON-serialized result payload; IsError marks tool-input
// failures so the model can self-correct.
type ToolResultBlock struct {
	CallID   string
	ToolName string
	Content  string
	IsError  bool
}

func (TextBlock) isBlock()       {}
func (ToolUseBlock) isBlock()    {}
func (ToolResultBlock) isBlock() {}

// Message is one transcript entry
type Message struct {
	Role   Role
	Blocks []Block
}

// UserText builds a plain-text user message
func UserText(text string) Message {
	return Message{Role: RoleUser, Blocks: []Block{TextBlock{Text: text}}}
}

// Request is one model invocation: system prompt, tool catalog and the full
// transcript accumulated so far
type Request struct {
	System   string
	Tools    []ToolSpec
	Messages []Message
	Tier     ModelTier
}

// Response is the provider-neutral model reply: a mix of text and tool-use
// blocks plus the stop reason
type Response struct {
	Blocks     []Block
	StopReason StopReason
}

// ToolCalls returns the tool-use blocks of the response in emitted order
func (r *Response) ToolCalls() []ToolUseBlock {
	var calls []ToolUseBlock
	for _, b := range r.Blocks {
		if call, ok := b.(ToolUseBlock); ok {
			calls = append(calls, call)
		}
	}
	return calls
}

// Text returns the concatenated text blocks of the response
func (r *Response) Text() string {
	var text string
	for _, b := range r.Blocks {
		if t, ok := b.(TextBlock); ok {
			if text != "" {
				text += "\n"
			}
			text += t.Text
		}
	}
	return text
}
