package domain

import (
	"context"
	"fmt"

	"github.com/gridware/sendgrid-mcp/internal/sendgrid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func singleSendResultFromProvider(ss sendgrid.SingleSend) SingleSendResult {
	return SingleSendResult{
		ID:      ss.ID,
		Name:    ss.Name,
		Status:  ss.Status,
		SendAt:  ss.SendAt,
		ListIDs: ss.SendTo.ListIDs,
	}
}

// SendToListHandler executes the send-to-list flow: create the single send,
// then schedule it with the literal "now". The unsubscribe precondition is
// checked first so a violation makes zero provider calls.
func SendToListHandler(service SingleSendService) mcp.ToolHandlerFor[SendToListInput, SendToListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SendToListInput) (*mcp.CallToolResult, SendToListResult, error) {
		hasGroup := input.SuppressionGroupID != 0
		hasURL := input.CustomUnsubscribeURL != ""
		if hasGroup == hasURL {
			return nil, SendToListResult{}, fmt.Errorf("send to list: exactly one of suppression_group_id or custom_unsubscribe_url is required")
		}

		call, err := newToolCall(ctx)
		if err != nil {
			return nil, SendToListResult{}, err
		}
		defer call.Cancel()

		ss, err := service.CreateSingleSend(call.RunCtx, sendgrid.SingleSendParams{
			Name:                 input.Name,
			ListIDs:              input.ListIDs,
			Subject:              input.Subject,
			HTMLContent:          input.HTMLContent,
			PlainContent:         input.PlainContent,
			SenderID:             input.SenderID,
			SuppressionGroupID:   input.SuppressionGroupID,
			CustomUnsubscribeURL: input.CustomUnsubscribeURL,
		})
		if err != nil {
			return nil, SendToListResult{}, providerError("create single send", err)
		}

		scheduled, err := service.ScheduleSingleSend(call.RunCtx, ss.ID, "now")
		if err != nil {
			return nil, SendToListResult{}, providerError("schedule single send", err)
		}

		result := SendToListResult{
			Status:       "triggered",
			SingleSendID: scheduled.ID,
			Name:         ss.Name,
		}
		if result.SingleSendID == "" {
			result.SingleSendID = ss.ID
		}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// SingleSendGetHandler executes a single send read request.
func SingleSendGetHandler(service SingleSendService) mcp.ToolHandlerFor[SingleSendGetInput, SingleSendResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SingleSendGetInput) (*mcp.CallToolResult, SingleSendResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, SingleSendResult{}, err
		}
		defer call.Cancel()

		ss, err := service.GetSingleSend(call.RunCtx, input.SingleSendID)
		if err != nil {
			return nil, SingleSendResult{}, providerError("get single send", err)
		}

		return CallToolResultWithMetadata(call.Meta), singleSendResultFromProvider(ss), nil
	}
}

// SingleSendListHandler executes a single send listing request.
func SingleSendListHandler(service SingleSendService) mcp.ToolHandlerFor[SingleSendListInput, SingleSendListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ SingleSendListInput) (*mcp.CallToolResult, SingleSendListResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, SingleSendListResult{}, err
		}
		defer call.Cancel()

		sends, err := service.ListSingleSends(call.RunCtx)
		if err != nil {
			return nil, SingleSendListResult{}, providerError("list single sends", err)
		}

		entries := make([]SingleSendResult, len(sends))
		for i, ss := range sends {
			entries[i] = singleSendResultFromProvider(ss)
		}
		result := SingleSendListResult{SingleSends: entries, Count: len(entries)}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}
