package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// CampaignCreateInput represents the MCP tool input for campaign creation.
// Content comes either from a template or inline HTML/plain bodies.
type CampaignCreateInput struct {
	Title        string   `json:"title" jsonschema:"campaign title"`
	Subject      string   `json:"subject" jsonschema:"email subject line"`
	SenderID     int      `json:"sender_id" jsonschema:"verified sender identity id"`
	ListIDs      []string `json:"list_ids" jsonschema:"contact list identifiers to send to"`
	TemplateID   string   `json:"template_id,omitempty" jsonschema:"optional template identifier for the content"`
	HTMLContent  string   `json:"html_content,omitempty" jsonschema:"optional inline HTML body"`
	PlainContent string   `json:"plain_content,omitempty" jsonschema:"optional inline plain text body"`
}

// CampaignCreateResult represents the MCP tool output for campaign creation.
type CampaignCreateResult struct {
	ID     string `json:"id" jsonschema:"campaign identifier"`
	Title  string `json:"title" jsonschema:"campaign title"`
	Status string `json:"status" jsonschema:"campaign status (created in draft)"`
}

// CampaignScheduleInput represents the MCP tool input for campaign scheduling.
type CampaignScheduleInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign identifier"`
	SendAt     string `json:"send_at" jsonschema:"RFC 3339 timestamp to send the campaign at"`
}

// CampaignScheduleResult represents the MCP tool output for campaign scheduling.
type CampaignScheduleResult struct {
	Status     string `json:"status" jsonschema:"scheduling confirmation"`
	CampaignID string `json:"campaign_id" jsonschema:"campaign identifier"`
	SendAt     string `json:"send_at" jsonschema:"scheduled send time"`
}

// CampaignStatsInput represents the MCP tool input for campaign statistics.
type CampaignStatsInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign identifier"`
}

// CampaignStatsResult represents the MCP tool output for campaign statistics.
// The stats payload is provider-defined and passed through unchanged.
type CampaignStatsResult struct {
	CampaignID string         `json:"campaign_id" jsonschema:"campaign identifier"`
	Stats      map[string]any `json:"stats" jsonschema:"provider statistics payload, verbatim"`
}

// CampaignCreateTool defines the MCP tool schema for campaign creation.
func CampaignCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_campaign",
		Description: "Creates a marketing campaign in draft status",
	}
}

// CampaignScheduleTool defines the MCP tool schema for campaign scheduling.
func CampaignScheduleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "schedule_campaign",
		Description: "Schedules a draft campaign for delivery at a given time",
	}
}

// CampaignStatsTool defines the MCP tool schema for campaign statistics.
func CampaignStatsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_campaign_stats",
		Description: "Fetches delivery statistics for one campaign",
	}
}
