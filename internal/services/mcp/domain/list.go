package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ListCreateInput represents the MCP tool input for list creation.
type ListCreateInput struct {
	Name string `json:"name" jsonschema:"name for the new contact list"`
}

// ListCreateResult represents the MCP tool output for list creation.
type ListCreateResult struct {
	ID           string `json:"id" jsonschema:"contact list identifier"`
	Name         string `json:"name" jsonschema:"contact list name"`
	ContactCount int    `json:"contact_count" jsonschema:"number of contacts on the list"`
}

// ListDeleteInput represents the MCP tool input for list deletion.
type ListDeleteInput struct {
	ListID string `json:"list_id" jsonschema:"contact list identifier"`
}

// ListDeleteResult represents the MCP tool output for list deletion.
type ListDeleteResult struct {
	Status string `json:"status" jsonschema:"deletion confirmation"`
	ListID string `json:"list_id" jsonschema:"identifier of the deleted list"`
}

// ListIndexInput represents the MCP tool input for listing contact lists.
type ListIndexInput struct{}

// ListEntry represents a readable contact list record.
type ListEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactCount int    `json:"contact_count"`
}

// ListIndexResult represents the MCP tool output for listing contact lists.
type ListIndexResult struct {
	Lists []ListEntry `json:"lists" jsonschema:"contact lists on the account"`
	Count int         `json:"count" jsonschema:"number of lists returned"`
}

// ListAddContactsInput represents the MCP tool input for list membership adds.
type ListAddContactsInput struct {
	ListID string   `json:"list_id" jsonschema:"contact list identifier"`
	Emails []string `json:"emails" jsonschema:"email addresses to add to the list (contacts are upserted)"`
}

// ListAddContactsResult represents the MCP tool output for list membership adds.
type ListAddContactsResult struct {
	Status string `json:"status" jsonschema:"acceptance confirmation"`
	ListID string `json:"list_id" jsonschema:"contact list identifier"`
	JobID  string `json:"job_id" jsonschema:"provider job identifier"`
}

// ListRemoveContactsInput represents the MCP tool input for list membership removals.
type ListRemoveContactsInput struct {
	ListID string   `json:"list_id" jsonschema:"contact list identifier"`
	Emails []string `json:"emails" jsonschema:"email addresses to remove from the list (contacts are kept)"`
}

// ListRemoveContactsResult represents the MCP tool output for list membership removals.
type ListRemoveContactsResult struct {
	Status string `json:"status" jsonschema:"removal confirmation"`
	ListID string `json:"list_id" jsonschema:"contact list identifier"`
}

// ListCreateTool defines the MCP tool schema for list creation.
func ListCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_contact_list",
		Description: "Creates a new marketing contact list",
	}
}

// ListDeleteTool defines the MCP tool schema for list deletion.
func ListDeleteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_list",
		Description: "Deletes a contact list without deleting its contacts",
	}
}

// ListIndexTool defines the MCP tool schema for listing contact lists.
func ListIndexTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_contact_lists",
		Description: "Lists every contact list on the account",
	}
}

// ListAddContactsTool defines the MCP tool schema for list membership adds.
func ListAddContactsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_contacts_to_list",
		Description: "Adds contacts to a list by email, creating missing contacts",
	}
}

// ListRemoveContactsTool defines the MCP tool schema for list membership removals.
func ListRemoveContactsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "remove_contacts_from_list",
		Description: "Removes contacts from a list by email without deleting them",
	}
}
