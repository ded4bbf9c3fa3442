package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gridware/sendgrid-mcp/internal/sendgrid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CampaignCreateHandler executes a campaign creation request.
func CampaignCreateHandler(service CampaignService) mcp.ToolHandlerFor[CampaignCreateInput, CampaignCreateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CampaignCreateInput) (*mcp.CallToolResult, CampaignCreateResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, CampaignCreateResult{}, err
		}
		defer call.Cancel()

		campaign, err := service.CreateCampaign(call.RunCtx, sendgrid.CreateCampaignParams{
			Title:        input.Title,
			Subject:      input.Subject,
			SenderID:     input.SenderID,
			ListIDs:      input.ListIDs,
			TemplateID:   input.TemplateID,
			HTMLContent:  input.HTMLContent,
			PlainContent: input.PlainContent,
		})
		if err != nil {
			return nil, CampaignCreateResult{}, providerError("create campaign", err)
		}

		result := CampaignCreateResult{
			ID:     campaign.ID.String(),
			Title:  campaign.Title,
			Status: campaign.Status,
		}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// CampaignScheduleHandler executes a campaign scheduling request.
func CampaignScheduleHandler(service CampaignService) mcp.ToolHandlerFor[CampaignScheduleInput, CampaignScheduleResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CampaignScheduleInput) (*mcp.CallToolResult, CampaignScheduleResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, CampaignScheduleResult{}, err
		}
		defer call.Cancel()

		if err := service.ScheduleCampaign(call.RunCtx, input.CampaignID, input.SendAt); err != nil {
			return nil, CampaignScheduleResult{}, providerError("schedule campaign", err)
		}

		result := CampaignScheduleResult{
			Status:     "scheduled",
			CampaignID: input.CampaignID,
			SendAt:     input.SendAt,
		}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}

// CampaignStatsHandler executes a campaign statistics read request.
func CampaignStatsHandler(service CampaignService) mcp.ToolHandlerFor[CampaignStatsInput, CampaignStatsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CampaignStatsInput) (*mcp.CallToolResult, CampaignStatsResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, CampaignStatsResult{}, err
		}
		defer call.Cancel()

		raw, err := service.CampaignStats(call.RunCtx, input.CampaignID)
		if err != nil {
			return nil, CampaignStatsResult{}, providerError("get campaign stats", err)
		}

		stats := map[string]any{}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &stats); err != nil {
				return nil, CampaignStatsResult{}, fmt.Errorf("get campaign stats: parse provider payload: %w", err)
			}
		}
		result := CampaignStatsResult{CampaignID: input.CampaignID, Stats: stats}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}
