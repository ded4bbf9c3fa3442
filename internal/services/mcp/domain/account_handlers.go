package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ValidateEmailHandler executes an email validation request.
func ValidateEmailHandler(service AccountService) mcp.ToolHandlerFor[ValidateEmailInput, ValidateEmailResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ValidateEmailInput) (*mcp.CallToolResult, ValidateEmailResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, ValidateEmailResult{}, err
		}
		defer call.Cancel()

		raw, err := service.ValidateEmail(call.RunCtx, input.Email, input.Source)
		if err != nil {
			return nil, ValidateEmailResult{}, providerError("validate email", err)
		}

		verdict := map[string]any{}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &verdict); err != nil {
				return nil, ValidateEmailResult{}, fmt.Errorf("validate email: parse provider payload: %w", err)
			}
		}
		result := ValidateEmailResult{Email: input.Email, Verdict: verdict}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// StatsHandler executes a global statistics read request.
func StatsHandler(service AccountService) mcp.ToolHandlerFor[StatsInput, StatsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StatsInput) (*mcp.CallToolResult, StatsResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, StatsResult{}, err
		}
		defer call.Cancel()

		periods, err := service.GlobalStats(call.RunCtx, input.StartDate, input.EndDate, input.AggregatedBy)
		if err != nil {
			return nil, StatsResult{}, providerError("get stats", err)
		}

		entries := make([]StatsPeriodEntry, len(periods))
		for i, period := range periods {
			samples := make([]StatsSampleEntry, len(period.Stats))
			for j, sample := range period.Stats {
				samples[j] = StatsSampleEntry{
					Metrics: sample.Metrics,
					Name:    sample.Name,
					Type:    sample.Type,
				}
			}
			entries[i] = StatsPeriodEntry{Date: period.Date, Stats: samples}
		}
		result := StatsResult{Periods: entries, Count: len(entries)}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// VerifiedSendersHandler executes a verified sender listing request.
func VerifiedSendersHandler(service AccountService) mcp.ToolHandlerFor[VerifiedSendersInput, VerifiedSendersResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ VerifiedSendersInput) (*mcp.CallToolResult, VerifiedSendersResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, VerifiedSendersResult{}, err
		}
		defer call.Cancel()

		raw, err := service.VerifiedSenders(call.RunCtx)
		if err != nil {
			return nil, VerifiedSendersResult{}, providerError("list verified senders", err)
		}

		senders := map[string]any{}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &senders); err != nil {
				return nil, VerifiedSendersResult{}, fmt.Errorf("list verified senders: parse provider payload: %w", err)
			}
		}
		result := VerifiedSendersResult{Senders: senders}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// SuppressionGroupsHandler executes an unsubscribe group listing request.
func SuppressionGroupsHandler(service AccountService) mcp.ToolHandlerFor[SuppressionGroupsInput, SuppressionGroupsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ SuppressionGroupsInput) (*mcp.CallToolResult, SuppressionGroupsResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, SuppressionGroupsResult{}, err
		}
		defer call.Cancel()

		raw, err := service.SuppressionGroups(call.RunCtx)
		if err != nil {
			return nil, SuppressionGroupsResult{}, providerError("list suppression groups", err)
		}

		var groups []map[string]any
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &groups); err != nil {
				return nil, SuppressionGroupsResult{}, fmt.Errorf("list suppression groups: parse provider payload: %w", err)
			}
		}
		result := SuppressionGroupsResult{Groups: groups, Count: len(groups)}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}
