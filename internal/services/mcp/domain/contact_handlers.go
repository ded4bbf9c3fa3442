package domain

import (
	"context"

	"github.com/gridware/sendgrid-mcp/internal/sendgrid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func contactEntryFromProvider(contact sendgrid.Contact) ContactEntry {
	return ContactEntry{
		ID:        contact.ID,
		Email:     contact.Email,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		ListIDs:   contact.ListIDs,
	}
}

func contactEntriesFromProvider(contacts []sendgrid.Contact) []ContactEntry {
	entries := make([]ContactEntry, len(contacts))
	for i, contact := range contacts {
		entries[i] = contactEntryFromProvider(contact)
	}
	return entries
}

// ContactAddHandler executes a contact upsert request.
func ContactAddHandler(service ContactService) mcp.ToolHandlerFor[ContactAddInput, ContactAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ContactAddInput) (*mcp.CallToolResult, ContactAddResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, ContactAddResult{}, err
		}
		defer call.Cancel()

		jobID, err := service.AddContact(call.RunCtx, sendgrid.Contact{
			Email:        input.Email,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			CustomFields: input.CustomFields,
		})
		if err != nil {
			return nil, ContactAddResult{}, providerError("add contact", err)
		}

		result := ContactAddResult{Status: "accepted", Email: input.Email, JobID: jobID}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// ContactDeleteHandler executes a contact deletion request.
func ContactDeleteHandler(service ContactService) mcp.ToolHandlerFor[ContactDeleteInput, ContactDeleteResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ContactDeleteInput) (*mcp.CallToolResult, ContactDeleteResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, ContactDeleteResult{}, err
		}
		defer call.Cancel()

		jobID, err := service.DeleteContacts(call.RunCtx, input.Emails)
		if err != nil {
			return nil, ContactDeleteResult{}, providerError("delete contacts", err)
		}

		result := ContactDeleteResult{Status: "accepted", JobID: jobID}
		if jobID == "" {
			result.Status = "no_matches"
		}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// ContactListHandler executes an account-wide contact listing request.
func ContactListHandler(service ContactService) mcp.ToolHandlerFor[ContactListInput, ContactListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ContactListInput) (*mcp.CallToolResult, ContactListResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, ContactListResult{}, err
		}
		defer call.Cancel()

		contacts, err := service.ListAllContacts(call.RunCtx)
		if err != nil {
			return nil, ContactListResult{}, providerError("list contacts", err)
		}

		entries := contactEntriesFromProvider(contacts)
		result := ContactListResult{Contacts: entries, Count: len(entries)}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// ContactsByListHandler executes a list-scoped contact read request.
func ContactsByListHandler(service ContactService) mcp.ToolHandlerFor[ContactsByListInput, ContactsByListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ContactsByListInput) (*mcp.CallToolResult, ContactsByListResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, ContactsByListResult{}, err
		}
		defer call.Cancel()

		contacts, err := service.ContactsByList(call.RunCtx, input.ListID)
		if err != nil {
			return nil, ContactsByListResult{}, providerError("get contacts by list", err)
		}

		entries := contactEntriesFromProvider(contacts)
		result := ContactsByListResult{ListID: input.ListID, Contacts: entries, Count: len(entries)}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}
