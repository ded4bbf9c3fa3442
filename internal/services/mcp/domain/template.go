package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// TemplateCreateInput represents the MCP tool input for template creation.
// Supplying subject and html_content also creates a first active version.
type TemplateCreateInput struct {
	Name         string `json:"name" jsonschema:"template name"`
	Generation   string `json:"generation,omitempty" jsonschema:"template generation (dynamic or legacy, defaults to dynamic)"`
	Subject      string `json:"subject,omitempty" jsonschema:"subject for the first version (creates the version when set)"`
	HTMLContent  string `json:"html_content,omitempty" jsonschema:"HTML body for the first version"`
	PlainContent string `json:"plain_content,omitempty" jsonschema:"plain text body for the first version"`
}

// TemplateGetInput represents the MCP tool input for template reads.
type TemplateGetInput struct {
	TemplateID string `json:"template_id" jsonschema:"template identifier"`
}

// TemplateDeleteInput represents the MCP tool input for template deletion.
type TemplateDeleteInput struct {
	TemplateID string `json:"template_id" jsonschema:"template identifier"`
}

// TemplateDeleteResult represents the MCP tool output for template deletion.
type TemplateDeleteResult struct {
	Status     string `json:"status" jsonschema:"deletion confirmation"`
	TemplateID string `json:"template_id" jsonschema:"identifier of the deleted template"`
}

// TemplateUpdateInput represents the MCP tool input for template renames.
type TemplateUpdateInput struct {
	TemplateID string `json:"template_id" jsonschema:"template identifier"`
	Name       string `json:"name" jsonschema:"new template name"`
}

// TemplateDuplicateInput represents the MCP tool input for template duplication.
type TemplateDuplicateInput struct {
	TemplateID string `json:"template_id" jsonschema:"template identifier to duplicate"`
	Name       string `json:"name,omitempty" jsonschema:"optional name for the copy (provider picks one when empty)"`
}

// TemplateListInput represents the MCP tool input for template listings.
type TemplateListInput struct {
	Generations []string `json:"generations,omitempty" jsonschema:"generation filter (dynamic, legacy); both when empty"`
	PageSize    int      `json:"page_size,omitempty" jsonschema:"page size, defaults to 100"`
	PageToken   string   `json:"page_token,omitempty" jsonschema:"cursor from a previous page to continue the listing"`
}

// TemplateVersionEntry represents a readable template version without its
// content bodies. Bodies are fetched per version with get_template_version.
type TemplateVersionEntry struct {
	ID         string `json:"id"`
	TemplateID string `json:"template_id"`
	Active     int    `json:"active"`
	Name       string `json:"name"`
	Subject    string `json:"subject"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// TemplateResult represents a readable template with its version entries.
type TemplateResult struct {
	ID         string                 `json:"id" jsonschema:"template identifier"`
	Name       string                 `json:"name" jsonschema:"template name"`
	Generation string                 `json:"generation" jsonschema:"template generation"`
	UpdatedAt  string                 `json:"updated_at,omitempty" jsonschema:"last update timestamp"`
	Versions   []TemplateVersionEntry `json:"versions" jsonschema:"versions of the template, at most one active"`
}

// TemplateListResult represents the MCP tool output for template listings.
type TemplateListResult struct {
	Templates     []TemplateResult `json:"templates" jsonschema:"one page of templates"`
	Count         int              `json:"count" jsonschema:"number of templates on this page"`
	NextPageToken string           `json:"next_page_token,omitempty" jsonschema:"cursor for the next page, empty on the last page"`
}

// TemplateVersionCreateInput represents the MCP tool input for version creation.
type TemplateVersionCreateInput struct {
	TemplateID           string `json:"template_id" jsonschema:"template identifier"`
	Name                 string `json:"name" jsonschema:"version name"`
	Subject              string `json:"subject" jsonschema:"email subject for this version"`
	HTMLContent          string `json:"html_content" jsonschema:"HTML body"`
	PlainContent         string `json:"plain_content,omitempty" jsonschema:"optional plain text body"`
	GeneratePlainContent *bool  `json:"generate_plain_content,omitempty" jsonschema:"derive plain text from HTML when true"`
	Active               *int   `json:"active,omitempty" jsonschema:"set to 1 to make this the live version"`
	Editor               string `json:"editor,omitempty" jsonschema:"editor used for the version (code or design)"`
	TestData             string `json:"test_data,omitempty" jsonschema:"sample substitution data as a JSON string"`
}

// TemplateVersionGetInput represents the MCP tool input for version reads.
type TemplateVersionGetInput struct {
	TemplateID string `json:"template_id" jsonschema:"template identifier"`
	VersionID  string `json:"version_id" jsonschema:"version identifier"`
}

// TemplateVersionUpdateInput represents the MCP tool input for version updates.
type TemplateVersionUpdateInput struct {
	TemplateID           string `json:"template_id" jsonschema:"template identifier"`
	VersionID            string `json:"version_id" jsonschema:"version identifier"`
	Name                 string `json:"name" jsonschema:"version name"`
	Subject              string `json:"subject" jsonschema:"email subject for this version"`
	HTMLContent          string `json:"html_content" jsonschema:"HTML body"`
	PlainContent         string `json:"plain_content,omitempty" jsonschema:"optional plain text body"`
	GeneratePlainContent *bool  `json:"generate_plain_content,omitempty" jsonschema:"derive plain text from HTML when true"`
	Active               *int   `json:"active,omitempty" jsonschema:"set to 1 to make this the live version"`
	Editor               string `json:"editor,omitempty" jsonschema:"editor used for the version (code or design)"`
	TestData             string `json:"test_data,omitempty" jsonschema:"sample substitution data as a JSON string"`
}

// TemplateVersionDeleteInput represents the MCP tool input for version deletion.
type TemplateVersionDeleteInput struct {
	TemplateID string `json:"template_id" jsonschema:"template identifier"`
	VersionID  string `json:"version_id" jsonschema:"version identifier"`
}

// TemplateVersionDeleteResult represents the MCP tool output for version deletion.
type TemplateVersionDeleteResult struct {
	Status     string `json:"status" jsonschema:"deletion confirmation"`
	TemplateID string `json:"template_id" jsonschema:"template identifier"`
	VersionID  string `json:"version_id" jsonschema:"identifier of the deleted version"`
}

// TemplateVersionActivateInput represents the MCP tool input for version activation.
type TemplateVersionActivateInput struct {
	TemplateID string `json:"template_id" jsonschema:"template identifier"`
	VersionID  string `json:"version_id" jsonschema:"version identifier to make live"`
}

// TemplateVersionResult represents a readable template version including its
// content bodies.
type TemplateVersionResult struct {
	ID           string `json:"id" jsonschema:"version identifier"`
	TemplateID   string `json:"template_id" jsonschema:"template identifier"`
	Active       int    `json:"active" jsonschema:"1 when this is the live version"`
	Name         string `json:"name" jsonschema:"version name"`
	Subject      string `json:"subject" jsonschema:"email subject"`
	HTMLContent  string `json:"html_content,omitempty" jsonschema:"HTML body"`
	PlainContent string `json:"plain_content,omitempty" jsonschema:"plain text body"`
	Editor       string `json:"editor,omitempty" jsonschema:"editor used for the version"`
	TestData     string `json:"test_data,omitempty" jsonschema:"sample substitution data"`
	UpdatedAt    string `json:"updated_at,omitempty" jsonschema:"last update timestamp"`
}

// TemplateCreateTool defines the MCP tool schema for template creation.
func TemplateCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_template",
		Description: "Creates a transactional template, optionally with a first active version",
	}
}

// TemplateGetTool defines the MCP tool schema for template reads.
func TemplateGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_template",
		Description: "Fetches a template and its versions",
	}
}

// TemplateDeleteTool defines the MCP tool schema for template deletion.
func TemplateDeleteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_template",
		Description: "Deletes a template and all of its versions",
	}
}

// TemplateUpdateTool defines the MCP tool schema for template renames.
func TemplateUpdateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_template",
		Description: "Renames a template",
	}
}

// TemplateDuplicateTool defines the MCP tool schema for template duplication.
func TemplateDuplicateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "duplicate_template",
		Description: "Duplicates a template under a new identifier",
	}
}

// TemplateListTool defines the MCP tool schema for template listings.
func TemplateListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_templates",
		Description: "Lists templates one page at a time with cursor pagination",
	}
}

// TemplateVersionCreateTool defines the MCP tool schema for version creation.
func TemplateVersionCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_template_version",
		Description: "Creates a new version under a template",
	}
}

// TemplateVersionGetTool defines the MCP tool schema for version reads.
func TemplateVersionGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_template_version",
		Description: "Fetches one template version including its content bodies",
	}
}

// TemplateVersionUpdateTool defines the MCP tool schema for version updates.
func TemplateVersionUpdateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_template_version",
		Description: "Replaces the editable fields of a template version",
	}
}

// TemplateVersionDeleteTool defines the MCP tool schema for version deletion.
func TemplateVersionDeleteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_template_version",
		Description: "Deletes one version of a template",
	}
}

// TemplateVersionActivateTool defines the MCP tool schema for version activation.
func TemplateVersionActivateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "activate_template_version",
		Description: "Makes a version the live one, deactivating the previous active version",
	}
}
