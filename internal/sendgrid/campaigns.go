package sendgrid

import (
	"context"
	"encoding/json"
	"net/http"
)

// CreateCampaignParams describes a marketing campaign. Content comes either
// from a template or inline HTML/plain bodies.
type CreateCampaignParams struct {
	Title        string   `json:"title"`
	Subject      string   `json:"subject"`
	SenderID     int      `json:"sender_id"`
	ListIDs      []string `json:"list_ids"`
	TemplateID   string   `json:"template_id,omitempty"`
	HTMLContent  string   `json:"html_content,omitempty"`
	PlainContent string   `json:"plain_content,omitempty"`
}

type campaignScheduleRequest struct {
	SendAt string `json:"send_at"`
}

// CreateCampaign creates a campaign in draft status.
func (c *Client) CreateCampaign(ctx context.Context, p CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	if err := c.do(ctx, http.MethodPost, "/marketing/campaigns", nil, p, &campaign); err != nil {
		return Campaign{}, err
	}
	return campaign, nil
}

// ScheduleCampaign sets the campaign's send time. SendAt is an RFC 3339
// timestamp; the draft-to-scheduled transition is provider-owned.
func (c *Client) ScheduleCampaign(ctx context.Context, campaignID, sendAt string) error {
	path := "/marketing/campaigns/" + campaignID + "/schedule"
	return c.do(ctx, http.MethodPut, path, nil, campaignScheduleRequest{SendAt: sendAt}, nil)
}

// CampaignStats returns the provider's stats payload for one campaign
// verbatim; its shape is provider-defined and not normalized here.
func (c *Client) CampaignStats(ctx context.Context, campaignID string) (json.RawMessage, error) {
	var stats json.RawMessage
	path := "/marketing/campaigns/" + campaignID + "/stats"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
