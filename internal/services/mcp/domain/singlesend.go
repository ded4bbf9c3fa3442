package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// SendToListInput represents the MCP tool input for the send-to-list flow.
// Exactly one of suppression_group_id or custom_unsubscribe_url must be
// present; the provider refuses to deliver bulk mail without an unsubscribe
// mechanism, so the violation is rejected before any provider call.
type SendToListInput struct {
	Name                 string   `json:"name" jsonschema:"single send name"`
	ListIDs              []string `json:"list_ids" jsonschema:"contact list identifiers to send to"`
	Subject              string   `json:"subject" jsonschema:"email subject line"`
	HTMLContent          string   `json:"html_content" jsonschema:"HTML body"`
	PlainContent         string   `json:"plain_content" jsonschema:"plain text body"`
	SenderID             int      `json:"sender_id" jsonschema:"verified sender identity id"`
	SuppressionGroupID   int      `json:"suppression_group_id,omitempty" jsonschema:"unsubscribe group id (use this or custom_unsubscribe_url)"`
	CustomUnsubscribeURL string   `json:"custom_unsubscribe_url,omitempty" jsonschema:"custom unsubscribe page URL (use this or suppression_group_id)"`
}

// SendToListResult represents the MCP tool output for the send-to-list flow.
type SendToListResult struct {
	Status       string `json:"status" jsonschema:"confirmation that the single send was created and triggered"`
	SingleSendID string `json:"single_send_id" jsonschema:"single send identifier"`
	Name         string `json:"name" jsonschema:"single send name"`
}

// SingleSendGetInput represents the MCP tool input for single send reads.
type SingleSendGetInput struct {
	SingleSendID string `json:"single_send_id" jsonschema:"single send identifier"`
}

// SingleSendResult represents a readable single send record.
type SingleSendResult struct {
	ID      string   `json:"id" jsonschema:"single send identifier"`
	Name    string   `json:"name" jsonschema:"single send name"`
	Status  string   `json:"status" jsonschema:"single send status"`
	SendAt  string   `json:"send_at,omitempty" jsonschema:"scheduled send time"`
	ListIDs []string `json:"list_ids,omitempty" jsonschema:"target contact list identifiers"`
}

// SingleSendListInput represents the MCP tool input for single send listings.
type SingleSendListInput struct{}

// SingleSendListResult represents the MCP tool output for single send listings.
type SingleSendListResult struct {
	SingleSends []SingleSendResult `json:"single_sends" jsonschema:"single sends on the account"`
	Count       int                `json:"count" jsonschema:"number of single sends returned"`
}

// SendToListTool defines the MCP tool schema for the send-to-list flow.
func SendToListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "send_to_list",
		Description: "Creates a single send targeting contact lists and triggers it immediately",
	}
}

// SingleSendGetTool defines the MCP tool schema for single send reads.
func SingleSendGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_single_send",
		Description: "Fetches one single send by id",
	}
}

// SingleSendListTool defines the MCP tool schema for single send listings.
func SingleSendListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_single_sends",
		Description: "Lists every single send on the account",
	}
}
