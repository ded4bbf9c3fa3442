package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ContactAddInput represents the MCP tool input for contact upsert.
type ContactAddInput struct {
	Email        string         `json:"email" jsonschema:"contact email address (natural key, upserts)"`
	FirstName    string         `json:"first_name,omitempty" jsonschema:"optional first name"`
	LastName     string         `json:"last_name,omitempty" jsonschema:"optional last name"`
	CustomFields map[string]any `json:"custom_fields,omitempty" jsonschema:"optional custom field values keyed by field id"`
}

// ContactAddResult represents the MCP tool output for contact upsert.
type ContactAddResult struct {
	Status string `json:"status" jsonschema:"acceptance confirmation (contact writes are processed asynchronously)"`
	Email  string `json:"email" jsonschema:"contact email address"`
	JobID  string `json:"job_id" jsonschema:"provider job identifier for the import"`
}

// ContactDeleteInput represents the MCP tool input for contact deletion.
type ContactDeleteInput struct {
	Emails []string `json:"emails" jsonschema:"email addresses of the contacts to delete"`
}

// ContactDeleteResult represents the MCP tool output for contact deletion.
type ContactDeleteResult struct {
	Status string `json:"status" jsonschema:"deletion confirmation, or no_matches when no email resolved to a contact"`
	JobID  string `json:"job_id,omitempty" jsonschema:"provider job identifier (empty when no emails matched)"`
}

// ContactListInput represents the MCP tool input for listing all contacts.
type ContactListInput struct{}

// ContactEntry represents a readable contact record.
type ContactEntry struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	ListIDs   []string `json:"list_ids,omitempty"`
}

// ContactListResult represents the MCP tool output for contact listings.
type ContactListResult struct {
	Contacts []ContactEntry `json:"contacts" jsonschema:"contacts on the account"`
	Count    int            `json:"count" jsonschema:"number of contacts returned"`
}

// ContactsByListInput represents the MCP tool input for list-scoped contact reads.
type ContactsByListInput struct {
	ListID string `json:"list_id" jsonschema:"contact list identifier"`
}

// ContactsByListResult represents the MCP tool output for list-scoped contact reads.
type ContactsByListResult struct {
	ListID   string         `json:"list_id" jsonschema:"contact list identifier"`
	Contacts []ContactEntry `json:"contacts" jsonschema:"contacts that are members of the list"`
	Count    int            `json:"count" jsonschema:"number of contacts returned"`
}

// ContactAddTool defines the MCP tool schema for contact upsert.
func ContactAddTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_contact",
		Description: "Adds or updates a marketing contact keyed by email address",
	}
}

// ContactDeleteTool defines the MCP tool schema for contact deletion.
func ContactDeleteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_contacts",
		Description: "Deletes marketing contacts by email address",
	}
}

// ContactListTool defines the MCP tool schema for listing all contacts.
func ContactListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_contacts",
		Description: "Lists every marketing contact on the account",
	}
}

// ContactsByListTool defines the MCP tool schema for list-scoped contact reads.
func ContactsByListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_contacts_by_list",
		Description: "Lists the contacts that are members of a contact list",
	}
}
