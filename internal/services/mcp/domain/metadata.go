package domain

import (
	"context"
	"fmt"

	"github.com/gridware/sendgrid-mcp/internal/platform/id"
	"github.com/gridware/sendgrid-mcp/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// invocationIDKey names the correlation identifier in tool result metadata.
const invocationIDKey = "sendgrid-mcp-invocation-id"

// ToolCallMetadata carries correlation identifiers for MCP tool calls.
type ToolCallMetadata struct {
	InvocationID string
}

// NewInvocationID generates an invocation identifier for a tool call.
func NewInvocationID() (string, error) {
	return id.NewID()
}

// CallToolResultWithMetadata builds a tool result with correlation metadata.
func CallToolResultWithMetadata(meta ToolCallMetadata) *mcp.CallToolResult {
	result := &mcp.CallToolResult{}
	if meta.InvocationID != "" {
		result.Meta = map[string]any{invocationIDKey: meta.InvocationID}
	}
	return result
}

// toolCall holds the per-invocation state every handler sets up: an
// invocation id for correlation and a run context bounded by the provider
// request deadline.
type toolCall struct {
	RunCtx context.Context
	Cancel context.CancelFunc
	Meta   ToolCallMetadata
}

func newToolCall(ctx context.Context) (toolCall, error) {
	invocationID, err := NewInvocationID()
	if err != nil {
		return toolCall{}, fmt.Errorf("generate invocation id: %w", err)
	}
	runCtx, cancel := context.WithTimeout(ctx, timeouts.ProviderRequest)
	return toolCall{
		RunCtx: runCtx,
		Cancel: cancel,
		Meta:   ToolCallMetadata{InvocationID: invocationID},
	}, nil
}
