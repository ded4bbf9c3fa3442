package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// SendEmailInput represents the MCP tool input for a transactional send.
type SendEmailInput struct {
	To                  string         `json:"to" jsonschema:"recipient email address"`
	From                string         `json:"from" jsonschema:"verified sender email address"`
	Subject             string         `json:"subject" jsonschema:"email subject line"`
	Text                string         `json:"text" jsonschema:"plain text body"`
	HTML                string         `json:"html,omitempty" jsonschema:"optional HTML body (defaults to the text body)"`
	TemplateID          string         `json:"template_id,omitempty" jsonschema:"optional dynamic template identifier"`
	DynamicTemplateData map[string]any `json:"dynamic_template_data,omitempty" jsonschema:"optional substitution data for the dynamic template"`
}

// SendEmailResult represents the MCP tool output for a transactional send.
type SendEmailResult struct {
	Status string `json:"status" jsonschema:"acceptance confirmation"`
	To     string `json:"to" jsonschema:"recipient the message was accepted for"`
}

// SendEmailTool defines the MCP tool schema for sending email.
func SendEmailTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "send_email",
		Description: "Sends a transactional email through SendGrid, optionally using a dynamic template",
	}
}
