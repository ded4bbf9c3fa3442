package sendgrid

import (
	"context"
	"net/http"
)

// SingleSendParams describes a single send in draft. Exactly one of
// SuppressionGroupID or CustomUnsubscribeURL must be present for the send to
// be schedulable; that precondition is the tool layer's to enforce before
// any call is made.
type SingleSendParams struct {
	Name                 string
	ListIDs              []string
	Subject              string
	HTMLContent          string
	PlainContent         string
	SenderID             int
	SuppressionGroupID   int
	CustomUnsubscribeURL string
}

type singleSendSendTo struct {
	ListIDs []string `json:"list_ids"`
}

type singleSendEmailConfig struct {
	Subject              string `json:"subject"`
	HTMLContent          string `json:"html_content"`
	PlainContent         string `json:"plain_content"`
	SenderID             int    `json:"sender_id"`
	SuppressionGroupID   int    `json:"suppression_group_id,omitempty"`
	CustomUnsubscribeURL string `json:"custom_unsubscribe_url,omitempty"`
}

type singleSendCreateRequest struct {
	Name        string                `json:"name"`
	SendTo      singleSendSendTo      `json:"send_to"`
	EmailConfig singleSendEmailConfig `json:"email_config"`
}

type singleSendScheduleRequest struct {
	SendAt string `json:"send_at"`
}

type singleSendListResponse struct {
	Result []SingleSend `json:"result"`
}

// CreateSingleSend creates a single send in draft status.
func (c *Client) CreateSingleSend(ctx context.Context, p SingleSendParams) (SingleSend, error) {
	var ss SingleSend
	err := c.do(ctx, http.MethodPost, "/marketing/singlesends", nil, singleSendCreateRequest{
		Name:   p.Name,
		SendTo: singleSendSendTo{ListIDs: p.ListIDs},
		EmailConfig: singleSendEmailConfig{
			Subject:              p.Subject,
			HTMLContent:          p.HTMLContent,
			PlainContent:         p.PlainContent,
			SenderID:             p.SenderID,
			SuppressionGroupID:   p.SuppressionGroupID,
			CustomUnsubscribeURL: p.CustomUnsubscribeURL,
		},
	}, &ss)
	if err != nil {
		return SingleSend{}, err
	}
	return ss, nil
}

// ScheduleSingleSend schedules a draft single send. SendAt is either the
// literal "now" or an RFC 3339 timestamp.
func (c *Client) ScheduleSingleSend(ctx context.Context, singleSendID, sendAt string) (SingleSend, error) {
	var ss SingleSend
	path := "/marketing/singlesends/" + singleSendID + "/schedule"
	err := c.do(ctx, http.MethodPut, path, nil, singleSendScheduleRequest{SendAt: sendAt}, &ss)
	if err != nil {
		return SingleSend{}, err
	}
	return ss, nil
}

// GetSingleSend fetches one single send by id.
func (c *Client) GetSingleSend(ctx context.Context, singleSendID string) (SingleSend, error) {
	var ss SingleSend
	if err := c.do(ctx, http.MethodGet, "/marketing/singlesends/"+singleSendID, nil, nil, &ss); err != nil {
		return SingleSend{}, err
	}
	return ss, nil
}

// ListSingleSends returns every single send on the account.
func (c *Client) ListSingleSends(ctx context.Context) ([]SingleSend, error) {
	var resp singleSendListResponse
	if err := c.do(ctx, http.MethodGet, "/marketing/singlesends", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}
