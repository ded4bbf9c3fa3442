package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ValidateEmailInput represents the MCP tool input for email validation.
type ValidateEmailInput struct {
	Email  string `json:"email" jsonschema:"email address to validate"`
	Source string `json:"source,omitempty" jsonschema:"optional one-word classifier for where the address came from"`
}

// ValidateEmailResult represents the MCP tool output for email validation.
// The verdict shape (score, checks, verdict) is provider-defined and passed
// through unchanged.
type ValidateEmailResult struct {
	Email   string         `json:"email" jsonschema:"validated email address"`
	Verdict map[string]any `json:"verdict" jsonschema:"provider validation payload, verbatim"`
}

// StatsInput represents the MCP tool input for global statistics.
type StatsInput struct {
	StartDate    string `json:"start_date" jsonschema:"start date, YYYY-MM-DD"`
	EndDate      string `json:"end_date,omitempty" jsonschema:"optional end date, YYYY-MM-DD"`
	AggregatedBy string `json:"aggregated_by,omitempty" jsonschema:"optional aggregation bucket: day, week, or month"`
}

// StatsSampleEntry represents one aggregation bucket of email statistics.
type StatsSampleEntry struct {
	Metrics map[string]int64 `json:"metrics"`
	Name    string           `json:"name,omitempty"`
	Type    string           `json:"type,omitempty"`
}

// StatsPeriodEntry represents the statistics for one date.
type StatsPeriodEntry struct {
	Date  string             `json:"date"`
	Stats []StatsSampleEntry `json:"stats"`
}

// StatsResult represents the MCP tool output for global statistics.
type StatsResult struct {
	Periods []StatsPeriodEntry `json:"periods" jsonschema:"statistics per date"`
	Count   int                `json:"count" jsonschema:"number of periods returned"`
}

// VerifiedSendersInput represents the MCP tool input for sender listings.
type VerifiedSendersInput struct{}

// VerifiedSendersResult represents the MCP tool output for sender listings.
type VerifiedSendersResult struct {
	Senders map[string]any `json:"senders" jsonschema:"provider verified-senders payload, verbatim"`
}

// SuppressionGroupsInput represents the MCP tool input for group listings.
type SuppressionGroupsInput struct{}

// SuppressionGroupsResult represents the MCP tool output for group listings.
type SuppressionGroupsResult struct {
	Groups []map[string]any `json:"groups" jsonschema:"provider unsubscribe-group payload, verbatim"`
	Count  int              `json:"count" jsonschema:"number of groups returned"`
}

// ValidateEmailTool defines the MCP tool schema for email validation.
func ValidateEmailTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "validate_email",
		Description: "Runs SendGrid's deliverability validation on a single email address",
	}
}

// StatsTool defines the MCP tool schema for global statistics.
func StatsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_stats",
		Description: "Fetches account-wide email statistics for a date range",
	}
}

// VerifiedSendersTool defines the MCP tool schema for sender listings.
func VerifiedSendersTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_verified_senders",
		Description: "Lists the account's verified sender identities",
	}
}

// SuppressionGroupsTool defines the MCP tool schema for group listings.
func SuppressionGroupsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_suppression_groups",
		Description: "Lists the account's unsubscribe groups",
	}
}
