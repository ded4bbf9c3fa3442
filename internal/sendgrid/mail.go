package sendgrid

import (
	"context"
	"net/http"
)

// SendEmailParams describes a transactional mail send. Text is always
// required; HTML is optional and falls back to the text body. Template
// fields switch the send into dynamic-template mode.
type SendEmailParams struct {
	To                  string
	From                string
	Subject             string
	Text                string
	HTML                string
	TemplateID          string
	DynamicTemplateData map[string]any
}

type mailAddress struct {
	Email string `json:"email"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailPersonalization struct {
	To                  []mailAddress  `json:"to"`
	DynamicTemplateData map[string]any `json:"dynamic_template_data,omitempty"`
}

type mailSendRequest struct {
	Personalizations []mailPersonalization `json:"personalizations"`
	From             mailAddress           `json:"from"`
	Subject          string                `json:"subject,omitempty"`
	Content          []mailContent         `json:"content,omitempty"`
	TemplateID       string                `json:"template_id,omitempty"`
}

// SendEmail delivers a single email through the v3 Mail Send API. Address
// validity and sender verification are the provider's to reject; no local
// checks are made.
func (c *Client) SendEmail(ctx context.Context, p SendEmailParams) error {
	req := mailSendRequest{
		Personalizations: []mailPersonalization{{
			To:                  []mailAddress{{Email: p.To}},
			DynamicTemplateData: p.DynamicTemplateData,
		}},
		From:       mailAddress{Email: p.From},
		Subject:    p.Subject,
		TemplateID: p.TemplateID,
	}
	if p.TemplateID == "" {
		html := p.HTML
		if html == "" {
			html = p.Text
		}
		req.Content = []mailContent{
			{Type: "text/plain", Value: p.Text},
			{Type: "text/html", Value: html},
		}
	}
	return c.do(ctx, http.MethodPost, "/mail/send", nil, req, nil)
}
