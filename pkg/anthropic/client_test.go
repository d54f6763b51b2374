package anthropic

import (
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSDKMessages(t *testing.T) {
	msgs := toSDKMessages([]Message{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi there"},
		{Role: "unknown", Content: "defaults to user"},
	})

	require.Len(t, msgs, 3)
}

func TestFromSDKMessage_ConcatenatesTextBlocks(t *testing.T) {
	msg := &sdk.Message{
		ID:    "msg_123",
		Model: "claude-haiku-4-5-20251001",
		Content: []sdk.ContentBlockUnion{
			{Type: "text", Text: "Hello "},
			{Type: "text", Text: "world"},
		},
	}

	resp := fromSDKMessage(msg)

	assert.Equal(t, "msg_123", resp.ID)
	assert.Equal(t, "Hello world", resp.Text)
}

func TestFromSDKMessage_IgnoresNonTextBlocks(t *testing.T) {
	msg := &sdk.Message{
		Content: []sdk.ContentBlockUnion{
			{Type: "tool_use"},
			{Type: "text", Text: "only this"},
		},
	}

	resp := fromSDKMessage(msg)

	assert.Equal(t, "only this", resp.Text)
}
