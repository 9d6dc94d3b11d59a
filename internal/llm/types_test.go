package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_ToolCalls_Order(t *testing.T) {
	resp := &Response{
		Blocks: []Block{
			TextBlock{Text: "Let me fix that."},
			ToolUseBlock{ID: "call_1", Name: "read_section", Args: json.RawMessage(`{"section":"experience"}`)},
			ToolUseBlock{ID: "call_2", Name: "edit_bullet", Args: json.RawMessage(`{}`)},
		},
		StopReason: StopToolUse,
	}

	calls := resp.ToolCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "call_1", calls[0].ID)
	assert.Equal(t, "call_2", calls[1].ID)
}

func TestResponse_ToolCalls_Empty(t *testing.T) {
	resp := &Response{Blocks: []Block{TextBlock{Text: "done"}}, StopReason: StopEndTurn}
	assert.Empty(t, resp.ToolCalls())
}

func TestResponse_Text(t *testing.T) {
	resp := &Response{
		Blocks: []Block{
			TextBlock{Text: "First paragraph."},
			ToolUseBlock{ID: "call_1", Name: "read_resume"},
			TextBlock{Text: "Second paragraph."},
		},
	}
	assert.Equal(t, "First paragraph.\nSecond paragraph.", resp.Text())

	empty := &Response{Blocks: []Block{ToolUseBlock{ID: "call_1", Name: "read_resume"}}}
	assert.Equal(t, "", empty.Text())
}

func TestUserText(t *testing.T) {
	msg := UserText("shorten this bullet")
	assert.Equal(t, RoleUser, msg.Role)
	require.Len(t, msg.Blocks, 1)
	assert.Equal(t, TextBlock{Text: "shorten this bullet"}, msg.Blocks[0])
}
