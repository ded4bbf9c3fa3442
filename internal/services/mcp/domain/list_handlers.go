package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListCreateHandler executes a list creation request.
func ListCreateHandler(service ListService) mcp.ToolHandlerFor[ListCreateInput, ListCreateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListCreateInput) (*mcp.CallToolResult, ListCreateResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, ListCreateResult{}, err
		}
		defer call.Cancel()

		list, err := service.CreateList(call.RunCtx, input.Name)
		if err != nil {
			return nil, ListCreateResult{}, providerError("create contact list", err)
		}

		result := ListCreateResult{ID: list.ID, Name: list.Name, ContactCount: list.ContactCount}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// ListDeleteHandler executes a list deletion request.
func ListDeleteHandler(service ListService) mcp.ToolHandlerFor[ListDeleteInput, ListDeleteResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListDeleteInput) (*mcp.CallToolResult, ListDeleteResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, ListDeleteResult{}, err
		}
		defer call.Cancel()

		if err := service.DeleteList(call.RunCtx, input.ListID); err != nil {
			return nil, ListDeleteResult{}, providerError("delete list", err)
		}

		result := ListDeleteResult{Status: "deleted", ListID: input.ListID}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// ListIndexHandler executes a contact list listing request.
func ListIndexHandler(service ListService) mcp.ToolHandlerFor[ListIndexInput, ListIndexResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListIndexInput) (*mcp.CallToolResult, ListIndexResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, ListIndexResult{}, err
		}
		defer call.Cancel()

		lists, err := service.ListLists(call.RunCtx)
		if err != nil {
			return nil, ListIndexResult{}, providerError("list contact lists", err)
		}

		entries := make([]ListEntry, len(lists))
		for i, list := range lists {
			entries[i] = ListEntry{ID: list.ID, Name: list.Name, ContactCount: list.ContactCount}
		}
		result := ListIndexResult{Lists: entries, Count: len(entries)}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// ListAddContactsHandler executes a list membership add request.
func ListAddContactsHandler(service ListService) mcp.ToolHandlerFor[ListAddContactsInput, ListAddContactsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListAddContactsInput) (*mcp.CallToolResult, ListAddContactsResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, ListAddContactsResult{}, err
		}
		defer call.Cancel()

		jobID, err := service.AddContactsToList(call.RunCtx, input.ListID, input.Emails)
		if err != nil {
			return nil, ListAddContactsResult{}, providerError("add contacts to list", err)
		}

		result := ListAddContactsResult{Status: "accepted", ListID: input.ListID, JobID: jobID}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// ListRemoveContactsHandler executes a list membership removal request.
func ListRemoveContactsHandler(service ListService) mcp.ToolHandlerFor[ListRemoveContactsInput, ListRemoveContactsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListRemoveContactsInput) (*mcp.CallToolResult, ListRemoveContactsResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, ListRemoveContactsResult{}, err
		}
		defer call.Cancel()

		if err := service.RemoveContactsFromList(call.RunCtx, input.ListID, input.Emails); err != nil {
			return nil, ListRemoveContactsResult{}, providerError("remove contacts from list", err)
		}

		result := ListRemoveContactsResult{Status: "removed", ListID: input.ListID}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}
