package sendgrid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

type validateEmailRequest struct {
	Email  string `json:"email"`
	Source string `json:"source,omitempty"`
}

// ValidateEmail runs the provider's deliverability check on a single address.
// The verdict payload is returned verbatim; its shape (score, checks, verdict)
// belongs to the provider.
func (c *Client) ValidateEmail(ctx context.Context, email, source string) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.do(ctx, http.MethodPost, "/validations/email", nil, validateEmailRequest{
		Email:  email,
		Source: source,
	}, &raw)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// GlobalStats fetches account-wide email statistics. Dates are YYYY-MM-DD;
// endDate and aggregatedBy are optional, aggregatedBy is one of "day",
// "week" or "month" when set.
func (c *Client) GlobalStats(ctx context.Context, startDate, endDate, aggregatedBy string) ([]StatsPeriod, error) {
	query := url.Values{}
	query.Set("start_date", startDate)
	if endDate != "" {
		query.Set("end_date", endDate)
	}
	if aggregatedBy != "" {
		query.Set("aggregated_by", aggregatedBy)
	}
	var periods []StatsPeriod
	if err := c.do(ctx, http.MethodGet, "/stats", query, nil, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}

// VerifiedSenders lists the account's verified sender identities verbatim.
func (c *Client) VerifiedSenders(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/verified_senders", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// SuppressionGroups lists the account's unsubscribe groups verbatim.
func (c *Client) SuppressionGroups(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/asm/groups", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
