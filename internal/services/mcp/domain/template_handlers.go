package domain

import (
	"context"

	"github.com/gridware/sendgrid-mcp/internal/sendgrid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func templateResultFromProvider(tpl sendgrid.Template) TemplateResult {
	versions := make([]TemplateVersionEntry, len(tpl.Versions))
	for i, version := range tpl.Versions {
		versions[i] = TemplateVersionEntry{
			ID:         version.ID,
			TemplateID: version.TemplateID,
			Active:     version.Active,
			Name:       version.Name,
			Subject:    version.Subject,
			UpdatedAt:  version.UpdatedAt,
		}
	}
	return TemplateResult{
		ID:         tpl.ID,
		Name:       tpl.Name,
		Generation: tpl.Generation,
		UpdatedAt:  tpl.UpdatedAt,
		Versions:   versions,
	}
}

func templateVersionResultFromProvider(version sendgrid.TemplateVersion) TemplateVersionResult {
	return TemplateVersionResult{
		ID:           version.ID,
		TemplateID:   version.TemplateID,
		Active:       version.Active,
		Name:         version.Name,
		Subject:      version.Subject,
		HTMLContent:  version.HTMLContent,
		PlainContent: version.PlainContent,
		Editor:       version.Editor,
		TestData:     version.TestData,
		UpdatedAt:    version.UpdatedAt,
	}
}

// TemplateCreateHandler executes a template creation request. When content
// fields are present the provider service performs the two-step create with
// rollback of the shell on version failure.
func TemplateCreateHandler(service TemplateService) mcp.ToolHandlerFor[TemplateCreateInput, TemplateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TemplateCreateInput) (*mcp.CallToolResult, TemplateResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, TemplateResult{}, err
		}
		defer call.Cancel()

		tpl, err := service.CreateTemplate(call.RunCtx, sendgrid.CreateTemplateParams{
			Name:         input.Name,
			Generation:   input.Generation,
			Subject:      input.Subject,
			HTMLContent:  input.HTMLContent,
			PlainContent: input.PlainContent,
		})
		if err != nil {
			return nil, TemplateResult{}, providerError("create template", err)
		}

		return CallToolResultWithMetadata(call.Meta), templateResultFromProvider(tpl), nil
	}
}

// TemplateGetHandler executes a template read request.
func TemplateGetHandler(service TemplateService) mcp.ToolHandlerFor[TemplateGetInput, TemplateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TemplateGetInput) (*mcp.CallToolResult, TemplateResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, TemplateResult{}, err
		}
		defer call.Cancel()

		tpl, err := service.GetTemplate(call.RunCtx, input.TemplateID)
		if err != nil {
			return nil, TemplateResult{}, providerError("get template", err)
		}

		return CallToolResultWithMetadata(call.Meta), templateResultFromProvider(tpl), nil
	}
}

// TemplateDeleteHandler executes a template deletion request.
func TemplateDeleteHandler(service TemplateService) mcp.ToolHandlerFor[TemplateDeleteInput, TemplateDeleteResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TemplateDeleteInput) (*mcp.CallToolResult, TemplateDeleteResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, TemplateDeleteResult{}, err
		}
		defer call.Cancel()

		if err := service.DeleteTemplate(call.RunCtx, input.TemplateID); err != nil {
			return nil, TemplateDeleteResult{}, providerError("delete template", err)
		}

		result := TemplateDeleteResult{Status: "deleted", TemplateID: input.TemplateID}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// TemplateUpdateHandler executes a template rename request.
func TemplateUpdateHandler(service TemplateService) mcp.ToolHandlerFor[TemplateUpdateInput, TemplateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TemplateUpdateInput) (*mcp.CallToolResult, TemplateResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, TemplateResult{}, err
		}
		defer call.Cancel()

		tpl, err := service.UpdateTemplate(call.RunCtx, input.TemplateID, input.Name)
		if err != nil {
			return nil, TemplateResult{}, providerError("update template", err)
		}

		return CallToolResultWithMetadata(call.Meta), templateResultFromProvider(tpl), nil
	}
}

// TemplateDuplicateHandler executes a template duplication request.
func TemplateDuplicateHandler(service TemplateService) mcp.ToolHandlerFor[TemplateDuplicateInput, TemplateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TemplateDuplicateInput) (*mcp.CallToolResult, TemplateResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, TemplateResult{}, err
		}
		defer call.Cancel()

		tpl, err := service.DuplicateTemplate(call.RunCtx, input.TemplateID, input.Name)
		if err != nil {
			return nil, TemplateResult{}, providerError("duplicate template", err)
		}

		return CallToolResultWithMetadata(call.Meta), templateResultFromProvider(tpl), nil
	}
}

// TemplateListHandler executes a template listing request. One page per
// call; callers pass next_page_token back to continue.
func TemplateListHandler(service TemplateService) mcp.ToolHandlerFor[TemplateListInput, TemplateListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TemplateListInput) (*mcp.CallToolResult, TemplateListResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, TemplateListResult{}, err
		}
		defer call.Cancel()

		page, err := service.ListTemplates(call.RunCtx, sendgrid.ListTemplatesParams{
			Generations: input.Generations,
			PageSize:    input.PageSize,
			PageToken:   input.PageToken,
		})
		if err != nil {
			return nil, TemplateListResult{}, providerError("list templates", err)
		}

		templates := make([]TemplateResult, len(page.Templates))
		for i, tpl := range page.Templates {
			templates[i] = templateResultFromProvider(tpl)
		}
		result := TemplateListResult{
			Templates:     templates,
			Count:         len(templates),
			NextPageToken: page.NextPageToken,
		}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// TemplateVersionCreateHandler executes a version creation request.
func TemplateVersionCreateHandler(service TemplateService) mcp.ToolHandlerFor[TemplateVersionCreateInput, TemplateVersionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TemplateVersionCreateInput) (*mcp.CallToolResult, TemplateVersionResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, TemplateVersionResult{}, err
		}
		defer call.Cancel()

		version, err := service.CreateTemplateVersion(call.RunCtx, input.TemplateID, sendgrid.TemplateVersionParams{
			Name:                 input.Name,
			Subject:              input.Subject,
			HTMLContent:          input.HTMLContent,
			PlainContent:         input.PlainContent,
			GeneratePlainContent: input.GeneratePlainContent,
			Active:               input.Active,
			Editor:               input.Editor,
			TestData:             input.TestData,
		})
		if err != nil {
			return nil, TemplateVersionResult{}, providerError("create template version", err)
		}

		return CallToolResultWithMetadata(call.Meta), templateVersionResultFromProvider(version), nil
	}
}

// TemplateVersionGetHandler executes a version read request.
func TemplateVersionGetHandler(service TemplateService) mcp.ToolHandlerFor[TemplateVersionGetInput, TemplateVersionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TemplateVersionGetInput) (*mcp.CallToolResult, TemplateVersionResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, TemplateVersionResult{}, err
		}
		defer call.Cancel()

		version, err := service.GetTemplateVersion(call.RunCtx, input.TemplateID, input.VersionID)
		if err != nil {
			return nil, TemplateVersionResult{}, providerError("get template version", err)
		}

		return CallToolResultWithMetadata(call.Meta), templateVersionResultFromProvider(version), nil
	}
}

// TemplateVersionUpdateHandler executes a version update request.
func TemplateVersionUpdateHandler(service TemplateService) mcp.ToolHandlerFor[TemplateVersionUpdateInput, TemplateVersionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TemplateVersionUpdateInput) (*mcp.CallToolResult, TemplateVersionResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, TemplateVersionResult{}, err
		}
		defer call.Cancel()

		version, err := service.UpdateTemplateVersion(call.RunCtx, input.TemplateID, input.VersionID, sendgrid.TemplateVersionParams{
			Name:                 input.Name,
			Subject:              input.Subject,
			HTMLContent:          input.HTMLContent,
			PlainContent:         input.PlainContent,
			GeneratePlainContent: input.GeneratePlainContent,
			Active:               input.Active,
			Editor:               input.Editor,
			TestData:             input.TestData,
		})
		if err != nil {
			return nil, TemplateVersionResult{}, providerError("update template version", err)
		}

		return CallToolResultWithMetadata(call.Meta), templateVersionResultFromProvider(version), nil
	}
}

// TemplateVersionDeleteHandler executes a version deletion request.
func TemplateVersionDeleteHandler(service TemplateService) mcp.ToolHandlerFor[TemplateVersionDeleteInput, TemplateVersionDeleteResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TemplateVersionDeleteInput) (*mcp.CallToolResult, TemplateVersionDeleteResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, TemplateVersionDeleteResult{}, err
		}
		defer call.Cancel()

		if err := service.DeleteTemplateVersion(call.RunCtx, input.TemplateID, input.VersionID); err != nil {
			return nil, TemplateVersionDeleteResult{}, providerError("delete template version", err)
		}

		result := TemplateVersionDeleteResult{
			Status:     "deleted",
			TemplateID: input.TemplateID,
			VersionID:  input.VersionID,
		}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// TemplateVersionActivateHandler executes a version activation request. The
// provider implicitly deactivates the previously active version.
func TemplateVersionActivateHandler(service TemplateService) mcp.ToolHandlerFor[TemplateVersionActivateInput, TemplateVersionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TemplateVersionActivateInput) (*mcp.CallToolResult, TemplateVersionResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, TemplateVersionResult{}, err
		}
		defer call.Cancel()

		version, err := service.ActivateTemplateVersion(call.RunCtx, input.TemplateID, input.VersionID)
		if err != nil {
			return nil, TemplateVersionResult{}, providerError("activate template version", err)
		}

		return CallToolResultWithMetadata(call.Meta), templateVersionResultFromProvider(version), nil
	}
}
